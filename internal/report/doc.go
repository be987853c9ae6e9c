// Package report renders the human-readable report for a Huffman tree: the
// code of every symbol, optionally the depth of every leaf, and the total
// cost of the code.
package report
