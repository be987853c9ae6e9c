package cmd

import (
	"github.com/spf13/cobra"
)

// NewTreeCmd creates and returns the tree subcommand for the huffreport CLI.
func NewTreeCmd() *cobra.Command {
	var (
		af alphabetFlags
		rf reportFlags
	)

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the depth of every leaf of the Huffman tree",
		Long: `Build the Huffman tree for the alphabet and list every leaf, left to
right, together with its depth from the root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := rf.options()
			if err != nil {
				return err
			}
			opts.Tree = true
			return runReport(cmd.InOrStdin(), cmd.OutOrStdout(), &af, rf.reference, opts)
		},
	}

	af.register(cmd)
	rf.register(cmd)

	return cmd
}
