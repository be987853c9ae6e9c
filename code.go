package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits.  Each bit is stored as one '0' or '1'
// character, the first bit first, so a Code has no upper bound on its length
// and may be used as a map key.
type Code string

// EmptyCode is the code of length zero.
const EmptyCode = Code("")

// ParseCode is a convenience function that validates a string of '0' and '1'
// characters and converts it into a Code.
func ParseCode(str string) (Code, error) {
	for i := 0; i < len(str); i++ {
		if ch := str[i]; ch != '0' && ch != '1' {
			return EmptyCode, fmt.Errorf("%w: invalid bit %q at offset %d", ErrInvalidInput, ch, i)
		}
	}
	return Code(str), nil
}

// Size returns the number of bits in this Code.
func (hc Code) Size() int {
	return len(hc)
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i int) byte {
	return hc[i] - '0'
}

// Append returns the Code formed by adding one bit to the end of this Code.
// Any non-zero bit counts as 1.
func (hc Code) Append(bit byte) Code {
	if bit == 0 {
		return hc + "0"
	}
	return hc + "1"
}

// HasPrefix returns true iff prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	return strings.HasPrefix(string(hc), string(prefix))
}

// Parent returns this Code with its last bit removed.  The parent of the
// empty Code is the empty Code.
func (hc Code) Parent() Code {
	if len(hc) == 0 {
		return hc
	}
	return hc[:len(hc)-1]
}

// Sibling returns this Code with its last bit flipped.
func (hc Code) Sibling() Code {
	if len(hc) == 0 {
		return hc
	}
	last := hc[len(hc)-1]
	return hc.Parent().Append('1' - last)
}

// Bits returns the raw bit characters without quoting.
func (hc Code) Bits() string {
	return string(hc)
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if len(hc) == 0 {
		return "\"\""
	}
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")
