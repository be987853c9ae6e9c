package huffman

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// Weighted pairs a Symbol with its weight, i.e. its probability or frequency.
// Weights need not sum to any particular total.
type Weighted struct {
	Symbol Symbol
	Weight float64
}

// Entry is one slot of a symbol Table.
type Entry struct {
	// Symbol holds the original symbol of an input entry.  Merged entries
	// carry InternalMarker.
	Symbol Symbol

	// Weight holds the weight of everything merged into this entry so far.
	Weight float64

	// seq is the tie-break order; see the package documentation.
	seq int

	// subtree is InvalidNode until a node has been materialized for this
	// entry.
	subtree NodeID
}

// Seq returns the entry's sequence number.
func (entry Entry) Seq() int {
	return entry.seq
}

// HasSubtree returns true iff a tree node has been materialized for this
// entry.
func (entry Entry) HasSubtree() bool {
	return entry.subtree != InvalidNode
}

// Table is the symbol table that the Tree Builder consumes.  A Table is
// single-use: building a tree mutates it in place, and afterward the Table
// holds a single entry that owns the root.
type Table struct {
	entries []Entry
	nextSeq int
	tree    *Tree
}

// NewTable validates the alphabet and constructs a Table holding a copy of
// it, in input order.
func NewTable(alphabet []Weighted) (*Table, error) {
	if err := ValidateAlphabet(alphabet); err != nil {
		return nil, err
	}

	numSymbols := len(alphabet)
	entries := make([]Entry, numSymbols)
	for index, w := range alphabet {
		entries[index] = Entry{
			Symbol:  w.Symbol,
			Weight:  w.Weight,
			seq:     index,
			subtree: InvalidNode,
		}
	}

	return &Table{
		entries: entries,
		nextSeq: numSymbols,
		tree:    newTree(numSymbols),
	}, nil
}

// ValidateAlphabet checks an alphabet without building anything.  The
// returned error, if any, matches ErrInvalidInput.
func ValidateAlphabet(alphabet []Weighted) error {
	if len(alphabet) == 0 {
		return ErrEmptyAlphabet
	}

	var seen [int(MaxSymbol) + 1]bool
	for index, w := range alphabet {
		switch {
		case !w.Symbol.IsValid():
			return fmt.Errorf("%w: entry %d has symbol %d, valid range is 0 .. %d", ErrSymbolRange, index, int32(w.Symbol), int32(MaxSymbol))
		case math.IsNaN(w.Weight) || math.IsInf(w.Weight, 0):
			return fmt.Errorf("%w: entry %d (%s) has weight %v", ErrNonFiniteWeight, index, w.Symbol, w.Weight)
		case w.Weight < 0:
			return fmt.Errorf("%w: entry %d (%s) has weight %v", ErrNegativeWeight, index, w.Symbol, w.Weight)
		case seen[w.Symbol]:
			return fmt.Errorf("%w: entry %d repeats symbol %s", ErrDuplicateSymbol, index, w.Symbol)
		}
		seen[w.Symbol] = true
	}
	return nil
}

// Len returns the number of slots in the Table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entry returns a copy of the i'th slot.
func (t *Table) Entry(i int) Entry {
	return t.entries[i]
}

// Dump writes a programmer-readable debugging dump of the Table's current
// state to the given writer.
func (t *Table) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Table{\n")
	for index, entry := range t.entries {
		fmt.Fprintf(&buf, "\t[%d] = {%s, %g, seq=%d, subtree=%t}\n", index, entry.Symbol, entry.Weight, entry.seq, entry.HasSubtree())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// materialize ensures the entry owns a tree node, creating a fresh leaf the
// first time the entry participates in a merge.
func (t *Table) materialize(entry *Entry) NodeID {
	if entry.subtree == InvalidNode {
		entry.subtree = t.tree.addLeaf(entry.Symbol, entry.Weight)
	}
	return entry.subtree
}

// merged builds the combined entry for two slots, taking ownership of both
// subtrees.
func (t *Table) merged(left Entry, right Entry) Entry {
	node := t.tree.addInternal(left.subtree, right.subtree)
	seq := t.nextSeq
	t.nextSeq++

	tracer().Debugf("huffman: merge %s(seq=%d, w=%g) + %s(seq=%d, w=%g) -> seq=%d, w=%g",
		left.Symbol, left.seq, left.Weight, right.Symbol, right.seq, right.Weight,
		seq, t.tree.nodes[node].Weight)

	return Entry{
		Symbol:  InternalMarker,
		Weight:  t.tree.nodes[node].Weight,
		seq:     seq,
		subtree: node,
	}
}
