package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// SymbolCode pairs a symbol with its weight and its code.
type SymbolCode struct {
	Symbol Symbol
	Weight float64
	Code   Code
}

// CodeTable maps every symbol of an alphabet to its code.
type CodeTable struct {
	entries []SymbolCode
	index   map[Symbol]int
	minSize int
	maxSize int
}

func (ct *CodeTable) add(sc SymbolCode) {
	size := sc.Code.Size()
	if len(ct.entries) == 0 {
		ct.minSize = size
		ct.maxSize = size
	} else if ct.minSize > size {
		ct.minSize = size
	} else if ct.maxSize < size {
		ct.maxSize = size
	}
	ct.index[sc.Symbol] = len(ct.entries)
	ct.entries = append(ct.entries, sc)
}

// Len returns the number of symbols in the table.
func (ct *CodeTable) Len() int {
	return len(ct.entries)
}

// Entries returns the table's entries in report order, i.e. the order in
// which the tree walk reached them.  The caller must not modify the result.
func (ct *CodeTable) Entries() []SymbolCode {
	return ct.entries
}

// Lookup returns the code for a symbol.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	index, found := ct.index[symbol]
	if !found {
		return EmptyCode, false
	}
	return ct.entries[index].Code, true
}

// MinSize is the bit length of the shortest code.
func (ct *CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct *CodeTable) MaxSize() int {
	return ct.maxSize
}

// Cost returns the sum of weight × code length over all symbols.  When the
// weights are probabilities this is the expected code length.
func (ct *CodeTable) Cost() float64 {
	var sum float64
	for _, sc := range ct.entries {
		sum += sc.Weight * float64(sc.Code.Size())
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, sc := range ct.entries {
		fmt.Fprintf(&buf, "\tLookup(%s) = %s\n", sc.Symbol, sc.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
