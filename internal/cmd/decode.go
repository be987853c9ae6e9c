package cmd

import (
	"fmt"
	"strings"

	huffman "github.com/chronos-tachyon/huffreport"
	"github.com/spf13/cobra"
)

// NewDecodeCmd creates and returns the decode subcommand for the huffreport
// CLI.
func NewDecodeCmd() *cobra.Command {
	var af alphabetFlags

	cmd := &cobra.Command{
		Use:   "decode BITS",
		Short: "Split a bit string into symbols",
		Long: `Build the Huffman code for the alphabet, then split BITS, a string of
'0' and '1' characters, into consecutive codes and print their symbols.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alphabet, err := af.load(cmd.InOrStdin())
			if err != nil {
				return err
			}
			tree, err := huffman.BuildFromWeights(alphabet)
			if err != nil {
				return err
			}
			d, err := huffman.NewDecoder(tree.Codes())
			if err != nil {
				return err
			}
			symbols, err := d.DecodeString(args[0])
			if err != nil {
				return err
			}

			var sb strings.Builder
			for _, symbol := range symbols {
				sb.WriteString(symbol.String())
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Symbols: %s\n", sb.String())
			return err
		},
	}

	af.register(cmd)

	return cmd
}
