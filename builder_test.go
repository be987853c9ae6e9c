package huffman

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeTestTree(t *testing.T, alphabet []Weighted) *Tree {
	t.Helper()
	tree, err := BuildFromWeights(alphabet)
	if err != nil {
		t.Fatalf("BuildFromWeights failed: %v", err)
	}
	if err := tree.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	return tree
}

func TestBuild_FourSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "huffman")
	defer teardown()

	tree := makeTestTree(t, []Weighted{{'a', 0.1}, {'b', 0.2}, {'c', 0.3}, {'d', 0.4}})

	if tree.NumLeaves() != 4 {
		t.Errorf("expected 4 leaves, got %d", tree.NumLeaves())
	}
	if tree.NumInternal() != 3 {
		t.Errorf("expected 3 internal nodes, got %d", tree.NumInternal())
	}
	if tree.NumNodes() != 7 {
		t.Errorf("expected 7 nodes, got %d", tree.NumNodes())
	}

	root := tree.Node(tree.Root())
	if root.IsLeaf() {
		t.Fatalf("expected internal root")
	}
	if root.Symbol != InternalMarker {
		t.Errorf("expected root marker %s, got %s", InternalMarker, root.Symbol)
	}
	if left := tree.Node(root.Left); !left.IsLeaf() || left.Symbol != 'd' {
		t.Errorf("expected leaf d left of the root, got %+v", left)
	}
	if w := tree.Weight(); w < 0.999999 || w > 1.000001 {
		t.Errorf("expected total weight 1, got %g", w)
	}
}

func TestBuild_SingleSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "huffman")
	defer teardown()

	tree := makeTestTree(t, []Weighted{{'a', 1.0}})

	if tree.NumLeaves() != 1 || tree.NumInternal() != 0 {
		t.Errorf("expected 1 leaf and 0 internal nodes, got %d and %d", tree.NumLeaves(), tree.NumInternal())
	}
	if root := tree.Node(tree.Root()); !root.IsLeaf() || root.Symbol != 'a' {
		t.Errorf("expected leaf root a, got %+v", root)
	}
}

func TestBuild_CompactsTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "huffman")
	defer teardown()

	for _, build := range []func(*Table) *Tree{Build, BuildBySorting} {
		table, err := NewTable([]Weighted{{'x', 3}, {'y', 1}, {'z', 2}})
		if err != nil {
			t.Fatalf("NewTable failed: %v", err)
		}
		tree := build(table)

		if table.Len() != 1 {
			t.Fatalf("expected 1 remaining entry, got %d", table.Len())
		}
		entry := table.Entry(0)
		if entry.Symbol != InternalMarker || entry.Weight != 6 || entry.Seq() != 4 {
			t.Errorf("wrong root entry: %+v", entry)
		}
		if !entry.HasSubtree() || entry.subtree != tree.Root() {
			t.Errorf("root entry does not own the root")
		}
	}
}

func TestBuild_RejectsSecondBuild(t *testing.T) {
	table, err := NewTable([]Weighted{{'a', 1}, {'b', 2}})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	_ = Build(table)

	defer func() {
		if recover() == nil {
			t.Errorf("expected second Build to panic")
		}
	}()
	_ = Build(table)
}

func TestBuildBySorting_MatchesBuild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "huffman")
	defer teardown()

	alphabet := []Weighted{
		{'a', 5}, {'b', 9}, {'c', 12}, {'d', 13}, {'e', 16}, {'f', 45},
	}

	heapTable, _ := NewTable(alphabet)
	sortTable, _ := NewTable(alphabet)
	heapTree := Build(heapTable)
	sortTree := BuildBySorting(sortTable)

	var heapDump, sortDump strings.Builder
	_, _ = heapTree.Codes().Dump(&heapDump)
	_, _ = sortTree.Codes().Dump(&sortDump)
	if heapDump.String() != sortDump.String() {
		t.Errorf("builders disagree:\n\theap: %s\n\tsort: %s", heapDump.String(), sortDump.String())
	}

	if heapTree.NumNodes() != sortTree.NumNodes() {
		t.Fatalf("node counts differ: %d vs %d", heapTree.NumNodes(), sortTree.NumNodes())
	}
	for id := NodeID(0); int(id) < heapTree.NumNodes(); id++ {
		if heapTree.Node(id) != sortTree.Node(id) {
			t.Errorf("node %d differs: %+v vs %+v", id, heapTree.Node(id), sortTree.Node(id))
		}
	}
}
