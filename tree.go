package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeID addresses a Node inside a Tree.
type NodeID int32

// InvalidNode marks an absent child or an unset subtree.
const InvalidNode = NodeID(-1)

// Node is one node of a Huffman tree.  A leaf holds exactly one symbol and no
// children; an internal node holds exactly two children and carries
// InternalMarker in place of a symbol.
type Node struct {
	Symbol Symbol
	Weight float64
	Left   NodeID
	Right  NodeID
}

// IsLeaf returns true iff the node has no children.
func (n Node) IsLeaf() bool {
	return n.Left == InvalidNode && n.Right == InvalidNode
}

// Tree is a Huffman tree stored as an arena of nodes.  Every node is owned by
// exactly one parent, except the root.  A Tree is immutable once a builder
// returns it.
type Tree struct {
	nodes       []Node
	root        NodeID
	numLeaves   int
	numInternal int
}

func newTree(numSymbols int) *Tree {
	capacity := 2*numSymbols - 1
	if capacity < 1 {
		capacity = 1
	}
	return &Tree{
		nodes: make([]Node, 0, capacity),
		root:  InvalidNode,
	}
}

func (tree *Tree) addLeaf(symbol Symbol, weight float64) NodeID {
	id := NodeID(len(tree.nodes))
	tree.nodes = append(tree.nodes, Node{
		Symbol: symbol,
		Weight: weight,
		Left:   InvalidNode,
		Right:  InvalidNode,
	})
	tree.numLeaves++
	return id
}

func (tree *Tree) addInternal(left NodeID, right NodeID) NodeID {
	assert.Assertf(left != InvalidNode && right != InvalidNode, "internal node needs two children, got %d and %d", left, right)

	id := NodeID(len(tree.nodes))
	tree.nodes = append(tree.nodes, Node{
		Symbol: InternalMarker,
		Weight: tree.nodes[left].Weight + tree.nodes[right].Weight,
		Left:   left,
		Right:  right,
	})
	tree.numInternal++
	return id
}

// Root returns the ID of the root node.
func (tree *Tree) Root() NodeID {
	return tree.root
}

// Node returns a copy of the node with the given ID.
func (tree *Tree) Node(id NodeID) Node {
	return tree.nodes[id]
}

// NumNodes returns the number of nodes in the Tree.
func (tree *Tree) NumNodes() int {
	return len(tree.nodes)
}

// NumLeaves returns the number of leaves, i.e. the number of symbols.
func (tree *Tree) NumLeaves() int {
	return tree.numLeaves
}

// NumInternal returns the number of internal nodes.  For a strict binary
// tree this is always NumLeaves() - 1.
func (tree *Tree) NumInternal() int {
	return tree.numInternal
}

// Weight returns the total weight of the Tree.
func (tree *Tree) Weight() float64 {
	return tree.nodes[tree.root].Weight
}

// Validate checks that the Tree is a strict binary tree: every node other
// than the root has exactly one parent, every internal node has exactly two
// children, every leaf carries a valid symbol, and children are stored
// before their parents.
func (tree *Tree) Validate() error {
	numNodes := len(tree.nodes)
	if tree.root < 0 || int(tree.root) >= numNodes {
		return fmt.Errorf("huffman: tree has no root")
	}

	parents := make([]int, numNodes)
	for id, node := range tree.nodes {
		hasLeft := node.Left != InvalidNode
		hasRight := node.Right != InvalidNode
		switch {
		case hasLeft != hasRight:
			return fmt.Errorf("huffman: node %d has exactly one child", id)
		case !hasLeft && !node.Symbol.IsValid():
			return fmt.Errorf("huffman: leaf %d has invalid symbol %d", id, int32(node.Symbol))
		case hasLeft:
			for _, child := range [2]NodeID{node.Left, node.Right} {
				if child < 0 || int(child) >= id {
					return fmt.Errorf("huffman: node %d has out-of-order child %d", id, child)
				}
				parents[child]++
			}
		}
	}

	for id, count := range parents {
		isRoot := NodeID(id) == tree.root
		if isRoot && count != 0 {
			return fmt.Errorf("huffman: root %d has a parent", id)
		}
		if !isRoot && count != 1 {
			return fmt.Errorf("huffman: node %d has %d parents", id, count)
		}
	}

	if tree.numInternal != tree.numLeaves-1 {
		return fmt.Errorf("huffman: %d leaves but %d internal nodes", tree.numLeaves, tree.numInternal)
	}
	return nil
}

// Dump writes the depth-annotated listing of every leaf, in left-to-right
// order, to the given writer.
func (tree *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	tree.Walk(func(leaf LeafVisit) {
		fmt.Fprintf(&buf, "Leaf: %s (depth %d)\n", leaf.Symbol, leaf.Depth)
	})
	return buf.WriteTo(w)
}
