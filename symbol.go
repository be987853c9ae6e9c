package huffman

import (
	"strconv"
)

// Symbol represents a symbol in a single-byte alphabet.  Negative symbols are
// not valid.
type Symbol int32

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(255)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// InternalMarker is the character printed in place of a symbol for internal
// nodes of a tree.
const InternalMarker = Symbol('*')

// IsValid returns true iff the symbol is within 0 .. MaxSymbol.
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// String returns the symbol as a one-character string.  Non-printable
// symbols are rendered as Go byte escapes.
func (s Symbol) String() string {
	if !s.IsValid() {
		return "<invalid>"
	}
	if strconv.IsPrint(rune(s)) && s < 0x80 {
		return string(rune(s))
	}
	q := strconv.QuoteToASCII(string([]byte{byte(s)}))
	return q[1 : len(q)-1]
}
