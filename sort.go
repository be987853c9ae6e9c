package huffman

import (
	"sort"

	"github.com/chronos-tachyon/assert"
)

// SortRange reorders the slots [low, high) of the Table into ascending order
// of (weight, sequence number).  Slots outside the range are untouched.
func (t *Table) SortRange(low, high int) {
	assert.Assertf(low >= 0, "low %d < 0", low)
	assert.Assertf(high <= len(t.entries), "high %d > len %d", high, len(t.entries))
	assert.Assertf(low <= high, "low %d > high %d", low, high)

	byWeight(t.entries[low:high]).Sort()
}

// lessEntry is the single ordering shared by every builder.
func lessEntry(a, b Entry) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return a.seq < b.seq
}

// type byWeight {{{

type byWeight []Entry

func (list byWeight) Sort() {
	sort.Sort(list)
}

func (list byWeight) Len() int {
	return len(list)
}

func (list byWeight) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byWeight) Less(i, j int) bool {
	return lessEntry(list[i], list[j])
}

var _ sort.Interface = byWeight(nil)

// }}}
