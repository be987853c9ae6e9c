package cmd

import (
	"github.com/chronos-tachyon/huffreport/version"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// traceKeys lists the tracers of the library packages.
var traceKeys = []string{"huffman", "linklist"}

// NewRootCmd creates and returns the root cobra command for the huffreport
// CLI.  It sets up all subcommands, command groups, and global flags.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "huffreport",
		Short: "huffreport - Huffman code reports for small alphabets",
		Long: `huffreport builds a Huffman code for an alphabet of single-character
symbols with given weights, and reports the code of every symbol.

Use subcommands to perform different operations:
  - codes: Print the code of every symbol and the cost of the code
  - tree: Print the depth of every leaf of the Huffman tree
  - decode: Split a bit string into symbols
  - linklist: Rewrite a sync log into a list of link paths`,
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := tracing.LevelInfo
			if verbose {
				level = tracing.LevelDebug
			}
			for _, key := range traceKeys {
				tracing.Select(key).SetTraceLevel(level)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug tracing")

	groupHuffman := "huffman"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupHuffman,
		Title: "Huffman Codes",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	codesCmd := NewCodesCmd()
	treeCmd := NewTreeCmd()
	decodeCmd := NewDecodeCmd()
	linkListCmd := NewLinkListCmd()

	codesCmd.GroupID = groupHuffman
	treeCmd.GroupID = groupHuffman
	decodeCmd.GroupID = groupHuffman
	linkListCmd.GroupID = groupUtilities

	rootCmd.AddCommand(codesCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(linkListCmd)

	return rootCmd
}
