package huffman

// LeafVisit describes one leaf reached by Walk.
type LeafVisit struct {
	Symbol Symbol
	Weight float64

	// Depth is the number of edges from the root to the leaf.
	Depth int

	// Path holds one bit per edge: 0 for a left edge, 1 for a right edge.
	Path Code
}

// Walk visits every leaf of the Tree depth-first, always finishing the left
// subtree before the right one.  The Tree is not modified.  A Tree with a
// single leaf reports that leaf with Depth 0 and an empty Path.
func (tree *Tree) Walk(fn func(LeafVisit)) {
	if tree.root == InvalidNode {
		return
	}

	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Leaves never get pushed onto the stack, only internal nodes, so the
	// stack depth is the depth of the internal node on top.

	type stackItem struct {
		id   NodeID
		path Code
		x    byte
	}

	stack := make([]stackItem, 0, log2int(tree.numLeaves))

	visit := func(id NodeID, path Code) {
		node := tree.nodes[id]
		if !node.IsLeaf() {
			stack = append(stack, stackItem{id: id, path: path})
			return
		}
		fn(LeafVisit{
			Symbol: node.Symbol,
			Weight: node.Weight,
			Depth:  path.Size(),
			Path:   path,
		})
	}

	visit(tree.root, EmptyCode)
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			visit(tree.nodes[top.id].Left, top.path.Append(0))
		case 1:
			visit(tree.nodes[top.id].Right, top.path.Append(1))
		case 2:
			stack[len(stack)-1] = stackItem{}
			stack = stack[:len(stack)-1]
		}
	}
}

// Codes returns the code table of the Tree, in Walk order.
//
// A Tree with a single leaf would give its symbol the empty code.  Codes
// assigns it the one-bit code "0" instead, so that every code in every table
// has at least one bit.
//
func (tree *Tree) Codes() *CodeTable {
	ct := &CodeTable{
		entries: make([]SymbolCode, 0, tree.numLeaves),
		index:   make(map[Symbol]int, tree.numLeaves),
	}
	tree.Walk(func(leaf LeafVisit) {
		hc := leaf.Path
		if hc.Size() == 0 {
			hc = hc.Append(0)
		}
		ct.add(SymbolCode{Symbol: leaf.Symbol, Weight: leaf.Weight, Code: hc})
	})
	return ct
}
