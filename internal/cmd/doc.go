// Package cmd provides the command-line interface implementation for
// huffreport.
//
// Each command is implemented in its own file with a constructor that
// returns a *cobra.Command:
//   - root: command tree, global flags and tracing setup
//   - codes: build a Huffman code and print its report
//   - tree: print the depth of every leaf of the Huffman tree
//   - decode: split a bit string into symbols
//   - linklist: rewrite a sync log into a link list
//
// The root command is run through fang by cmd/huffreport.
package cmd
