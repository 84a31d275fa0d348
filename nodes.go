package exprgraph

import (
	"strconv"
	"strings"
)

// Node is a node in an expression graph: a named leaf constant or a binary
// operator owning two children. Any node can serve as the child of another
// operator, so graphs nest to arbitrary depth.
type Node struct {
	n *node
}

// node is the internal representation of a graph node.
type node struct {
	kind nodeKind

	val  float64 // leaf value
	name string  // leaf name

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeLeaf    // named constant value
	nodeSum     // left + right
	nodeProduct // left * right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeLeaf:
		return "Leaf"
	case nodeSum:
		return "Sum"
	case nodeProduct:
		return "Product"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Leaf creates a leaf node holding a fixed value. The name addresses the
// leaf in derivative queries. Names are not required to be unique; a name
// appearing on several leaves resolves to its leftmost occurrence.
func Leaf(value float64, name string) *Node {
	return &Node{n: &node{kind: nodeLeaf, val: value, name: name}}
}

// Sum creates a node computing the sum of two children. The new node takes
// ownership of both children. Panics if either child is nil.
func Sum(left, right *Node) *Node {
	return operator(nodeSum, left, right)
}

// Product creates a node computing the product of two children. The new node
// takes ownership of both children. Panics if either child is nil.
func Product(left, right *Node) *Node {
	return operator(nodeProduct, left, right)
}

func operator(kind nodeKind, left, right *Node) *Node {
	if left == nil || right == nil {
		panic("exprgraph: " + kind.String() + " with nil child")
	}
	return &Node{n: &node{kind: kind, left: left.n, right: right.n}}
}

// Contains reports whether name is the name of some leaf in n's subtree.
func (n *Node) Contains(name string) bool {
	return n.n.contains(name)
}

func (n *node) contains(name string) bool {
	switch n.kind {
	case nodeLeaf:
		return n.name == name
	case nodeSum, nodeProduct:
		return n.left.contains(name) || n.right.contains(name)
	default:
		panic("exprgraph: invalid node kind " + n.kind.String())
	}
}

func (n *Node) String() string {
	var b strings.Builder
	n.n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeLeaf:
		b.WriteString(n.name)
	case nodeSum:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(" + ")
		n.right.fmt(b)
		b.WriteByte(')')
	case nodeProduct:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(" * ")
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("exprgraph: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
