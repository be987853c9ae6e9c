package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// Decoder resolves codes back into symbols.
type Decoder struct {
	table      map[Code]decoderData
	numSymbols int
	minSize    int
	maxSize    int
}

// Init initializes this Decoder from a code table.  Every prefix of every
// code is recorded as well, so that a partial code can report how many more
// bits it needs.
//
// Init fails with ErrNotPrefixFree if one code in the table is a prefix of
// another.  An empty table yields a Decoder that rejects every code.
//
func (d *Decoder) Init(ct *CodeTable) error {
	numSymbols := ct.Len()
	if numSymbols == 0 {
		*d = Decoder{}
		return nil
	}

	// len(table) is approximately n×log2(n) when filled.
	numTableSlots := numSymbols * log2int(numSymbols)
	table := make(map[Code]decoderData, numTableSlots)

	for _, sc := range ct.entries {
		if err := fillTable(table, sc.Symbol, sc.Code); err != nil {
			return err
		}
	}

	*d = Decoder{
		table:      table,
		numSymbols: numSymbols,
		minSize:    ct.minSize,
		maxSize:    ct.maxSize,
	}
	return nil
}

// NewDecoder is a convenience function that allocates and initializes a
// Decoder.
func NewDecoder(ct *CodeTable) (*Decoder, error) {
	d := new(Decoder)
	if err := d.Init(ct); err != nil {
		return nil, err
	}
	return d, nil
}

// Decode attempts to decode a Huffman code into a Symbol.
//
// If the Decode is completely successful, symbol >= 0 and minSize == maxSize
// == hc.Size().
//
// If the Decode fails due to insufficient bits, symbol == InvalidSymbol and at
// least (minSize - hc.Size()) additional bits are required to decode this
// symbol.  No more than (maxSize - hc.Size()) additional bits will be
// required.
//
// If the Decode fails due to unreasonable input, symbol == InvalidSymbol and
// minSize == maxSize == 0.
//
func (d Decoder) Decode(hc Code) (symbol Symbol, minSize int, maxSize int) {
	dd, found := d.table[hc]
	if !found {
		return InvalidSymbol, 0, 0
	}
	return dd.symbol, dd.minSize, dd.maxSize
}

// DecodeString splits a string of '0' and '1' characters into consecutive
// codes and returns their symbols.
func (d Decoder) DecodeString(bits string) ([]Symbol, error) {
	input, err := ParseCode(bits)
	if err != nil {
		return nil, err
	}

	var out []Symbol
	start := 0
	for end := 1; end <= input.Size(); end++ {
		hc := input[start:end]
		symbol, minSize, _ := d.Decode(hc)
		switch {
		case symbol != InvalidSymbol:
			out = append(out, symbol)
			start = end
		case minSize == 0:
			return out, fmt.Errorf("%w: %s at offset %d", ErrUnknownCode, hc, start)
		}
	}
	if start != input.Size() {
		return out, fmt.Errorf("%w: %s at offset %d", ErrIncompleteCode, input[start:], start)
	}
	return out, nil
}

// NumSymbols returns the number of symbols the Decoder knows.
func (d Decoder) NumSymbols() int {
	return d.numSymbols
}

// MinSize is the bit length of the shortest legal code.
func (d Decoder) MinSize() int {
	return d.minSize
}

// MaxSize is the bit length of the longest legal code.
func (d Decoder) MaxSize() int {
	return d.maxSize
}

// String returns a short human-readable description of the Decoder.
func (d Decoder) String() string {
	return fmt.Sprintf("(Huffman decoder with %d symbols, with coded lengths of %d .. %d bits)", d.numSymbols, d.minSize, d.maxSize)
}

var _ fmt.Stringer = Decoder{}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", d.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", d.maxSize)
	keys := make(byCode, 0, len(d.table))
	for hc := range d.table {
		keys = append(keys, hc)
	}
	keys.Sort()
	for _, hc := range keys {
		dd := d.table[hc]
		fmt.Fprintf(&buf, "\tDecode(%s) = {%d, %d, %d}\n", hc, dd.symbol, dd.minSize, dd.maxSize)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

type decoderData struct {
	symbol  Symbol
	minSize int
	maxSize int
}

func fillTable(table map[Code]decoderData, symbol Symbol, hc Code) error {
	if _, found := table[hc]; found {
		return fmt.Errorf("%w: code %s of symbol %s is shared with or a prefix of another code", ErrNotPrefixFree, hc, symbol)
	}

	dd := decoderData{symbol, hc.Size(), hc.Size()}
	table[hc] = dd

	for hc.Size() != 0 {
		// Merge the dd's from "xxx...a" (dd) and "xxx...A" (ddSibling),
		// where A = NOT a, into ddNew (the new parent for both).

		ddNew := decoderData{InvalidSymbol, dd.minSize, dd.maxSize}
		if ddSibling, found := table[hc.Sibling()]; found {
			if ddNew.minSize > ddSibling.minSize {
				ddNew.minSize = ddSibling.minSize
			}
			if ddNew.maxSize < ddSibling.maxSize {
				ddNew.maxSize = ddSibling.maxSize
			}
		}

		// Mutate hc from "xxx...a" to "xxx...".

		hc = hc.Parent()

		// A symbol at the parent means another code is a prefix of
		// this one.  If table[hc] already equals ddNew, we can stop
		// recursing.

		ddOld, found := table[hc]
		if found && ddOld.symbol != InvalidSymbol {
			return fmt.Errorf("%w: code %s of symbol %s is a prefix of the code of symbol %s", ErrNotPrefixFree, hc, ddOld.symbol, symbol)
		}
		if found && ddOld == ddNew {
			break
		}

		// Update table[hc] with ddNew and continue recursing.

		table[hc] = ddNew
		dd = ddNew
	}
	return nil
}

// type byCode {{{

type byCode []Code

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.Size() != b.Size() {
		return a.Size() < b.Size()
	}
	return a < b
}

var _ sort.Interface = byCode(nil)

// }}}
