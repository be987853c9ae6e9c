package cmd

import (
	"io"

	huffman "github.com/chronos-tachyon/huffreport"
	"github.com/chronos-tachyon/huffreport/internal/report"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// reportFlags are shared by the commands that print a report.
type reportFlags struct {
	format    string
	noColor   bool
	reference bool
}

func (rf *reportFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rf.format, "format", "text", "Report format: text or json")
	cmd.Flags().BoolVar(&rf.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&rf.reference, "reference", false, "Build with the repeated sort-and-merge algorithm")
}

func (rf *reportFlags) options() (report.Options, error) {
	format, err := report.ParseFormat(rf.format)
	if err != nil {
		return report.Options{}, err
	}
	return report.Options{
		Format: format,
		Color:  !rf.noColor && !color.NoColor,
	}, nil
}

// buildTree builds the Huffman tree for an alphabet with the selected
// algorithm.
func buildTree(alphabet []huffman.Weighted, reference bool) (*huffman.Tree, error) {
	table, err := huffman.NewTable(alphabet)
	if err != nil {
		return nil, err
	}
	if reference {
		return huffman.BuildBySorting(table), nil
	}
	return huffman.Build(table), nil
}

// NewCodesCmd creates and returns the codes subcommand for the huffreport
// CLI.
func NewCodesCmd() *cobra.Command {
	var (
		af       alphabetFlags
		rf       reportFlags
		withTree bool
	)

	cmd := &cobra.Command{
		Use:   "codes",
		Short: "Print the Huffman code of every symbol",
		Long: `Build a Huffman code for the alphabet and print the code of every symbol,
followed by the cost of the code (the sum of weight times code length).

Without --symbol or --file, the alphabet {a:0.1, b:0.2, c:0.3, d:0.4} is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := rf.options()
			if err != nil {
				return err
			}
			opts.Codes = true
			opts.Tree = withTree
			return runReport(cmd.InOrStdin(), cmd.OutOrStdout(), &af, rf.reference, opts)
		},
	}

	af.register(cmd)
	rf.register(cmd)
	cmd.Flags().BoolVarP(&withTree, "tree", "t", false, "Also print the depth of every leaf")

	return cmd
}

func runReport(stdin io.Reader, stdout io.Writer, af *alphabetFlags, reference bool, opts report.Options) error {
	alphabet, err := af.load(stdin)
	if err != nil {
		return err
	}
	tree, err := buildTree(alphabet, reference)
	if err != nil {
		return err
	}
	return report.Write(stdout, tree, opts)
}
