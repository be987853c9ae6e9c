package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Build consumes the Table and returns the Huffman tree for it.
//
// The two lowest entries in (weight, sequence number) order are repeatedly
// popped from a min-heap, merged into a new internal node whose left child is
// the lower of the two, and the combined entry is pushed back.  After k-1
// merges the last remaining entry owns the root.
//
func Build(t *Table) *Tree {
	assert.Assertf(t.tree.root == InvalidNode, "Table has already been built")

	// Step 1: build a minheap directly over the table's slots.  Popping
	// shrinks the heap, which compacts the table.

	h := entryHeap{t.entries}
	h.Init()

	// Step 2: pop two, merge, push one.

	for h.Len() > 1 {
		a := heap.Pop(&h).(Entry)
		b := heap.Pop(&h).(Entry)
		t.materialize(&a)
		t.materialize(&b)
		heap.Push(&h, t.merged(a, b))
	}

	return t.finish(h.list)
}

// BuildBySorting consumes the Table and returns the Huffman tree for it,
// using the repeated sort-and-merge loop: on every iteration i the unmerged
// suffix [i, k) is re-sorted, slots i and i+1 are merged, and the combined
// entry replaces slot i+1.  It returns exactly the same tree as Build, in
// O(k² log k) time instead of O(k log k).
//
func BuildBySorting(t *Table) *Tree {
	assert.Assertf(t.tree.root == InvalidNode, "Table has already been built")

	k := len(t.entries)
	for i := 0; i < k-1; i++ {
		t.SortRange(i, k)
		t.materialize(&t.entries[i])
		t.materialize(&t.entries[i+1])
		t.entries[i+1] = t.merged(t.entries[i], t.entries[i+1])
		t.entries[i] = Entry{}
	}

	return t.finish(t.entries[k-1:])
}

// BuildFromWeights validates the alphabet, then builds its Huffman tree.
func BuildFromWeights(alphabet []Weighted) (*Tree, error) {
	t, err := NewTable(alphabet)
	if err != nil {
		return nil, err
	}
	return Build(t), nil
}

// finish installs the sole remaining entry as the root.
func (t *Table) finish(rest []Entry) *Tree {
	assert.Assertf(len(rest) == 1, "expected 1 remaining entry, got %d", len(rest))

	// k = 1: the lone symbol never took part in a merge.
	t.materialize(&rest[0])

	t.entries = rest
	t.tree.root = rest[0].subtree
	tracer().Debugf("huffman: built tree with %d leaves and %d internal nodes",
		t.tree.numLeaves, t.tree.numInternal)
	return t.tree
}

// type entryHeap {{{

type entryHeap struct {
	list []Entry
}

func (h *entryHeap) Init() {
	heap.Init(h)
}

func (h *entryHeap) Len() int {
	return len(h.list)
}

func (h *entryHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *entryHeap) Less(i, j int) bool {
	return lessEntry(h.list[i], h.list[j])
}

func (h *entryHeap) Push(x interface{}) {
	h.list = append(h.list, x.(Entry))
}

func (h *entryHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = Entry{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*entryHeap)(nil)

// }}}
