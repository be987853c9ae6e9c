// Package huffman builds Huffman codes for small alphabets of single-byte
// symbols and reports the bit-string code of every symbol.
//
// Construction is the classic greedy merge: the two lowest-weight entries of
// the symbol table are repeatedly combined into a new internal node until a
// single root remains.  Codes are the root-to-leaf paths of the resulting
// strict binary tree, with "0" for every left edge and "1" for every right
// edge, so the code table is prefix-free by construction.
//
// Ties between equal weights are broken by sequence number: input entries are
// numbered by their position in the input, and merged entries are numbered
// after them in the order they are created.  The lower-numbered entry wins,
// and becomes the left child.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'huffman'
func tracer() tracing.Trace {
	return tracing.Select("huffman")
}
