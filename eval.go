package exprgraph

import (
	"strconv"
)

// Evaluation is the result of evaluating an expression graph. It records the
// value computed at every node, so derivative queries reuse sibling values
// instead of re-walking subtrees. An Evaluation is read-only once created;
// it is safe to run derivative queries on one Evaluation concurrently.
type Evaluation struct {
	root  *node
	vals  map[*node]float64
	names []string
}

// Evaluate computes the value of every node in the graph rooted at root in a
// single bottom-up pass. The returned Evaluation answers value, name, and
// derivative queries against the graph.
func Evaluate(root *Node) *Evaluation {
	ev := &Evaluation{
		root: root.n,
		vals: make(map[*node]float64),
	}
	ev.eval(root.n)
	return ev
}

// eval records the value of n and every node below it, and appends the names
// of the leaves below n in visit order.
func (ev *Evaluation) eval(n *node) float64 {
	var v float64
	switch n.kind {
	case nodeLeaf:
		ev.names = append(ev.names, n.name)
		v = n.val
	case nodeSum:
		v = ev.eval(n.left) + ev.eval(n.right)
	case nodeProduct:
		v = ev.eval(n.left) * ev.eval(n.right)
	default:
		panic("exprgraph: invalid node kind " + n.kind.String())
	}
	ev.vals[n] = v
	return v
}

// Value returns the value of the whole expression.
func (ev *Evaluation) Value() float64 {
	return ev.vals[ev.root]
}

// Names returns the names of the graph's leaves in evaluation order, a left
// operand's names before its sibling's. Duplicate names are preserved.
func (ev *Evaluation) Names() []string {
	r := make([]string, len(ev.names))
	copy(r, ev.names)
	return r
}

// DerivativeOver returns the partial derivative of the expression's value
// with respect to the leaf named name. If several leaves share the name, the
// leftmost occurrence is differentiated; contributions are not summed across
// branches. If no leaf has the name, the error is an *UnknownVariableError.
func (ev *Evaluation) DerivativeOver(name string) (float64, error) {
	return ev.derive(ev.root, name)
}

func (ev *Evaluation) derive(n *node, name string) (float64, error) {
	switch n.kind {
	case nodeLeaf:
		if n.name != name {
			return 0, &UnknownVariableError{Name: name}
		}
		return 1, nil
	case nodeSum:
		// ∂(f+g)/∂x = ∂f/∂x when x occurs only in f.
		switch {
		case n.left.contains(name):
			return ev.derive(n.left, name)
		case n.right.contains(name):
			return ev.derive(n.right, name)
		default:
			return 0, &UnknownVariableError{Name: name}
		}
	case nodeProduct:
		// ∂(f·g)/∂x = g·∂f/∂x when x occurs only in f. The sibling's value
		// was recorded by Evaluate, so its subtree is not re-walked.
		switch {
		case n.left.contains(name):
			d, err := ev.derive(n.left, name)
			if err != nil {
				return 0, err
			}
			return ev.vals[n.right] * d, nil
		case n.right.contains(name):
			d, err := ev.derive(n.right, name)
			if err != nil {
				return 0, err
			}
			return ev.vals[n.left] * d, nil
		default:
			return 0, &UnknownVariableError{Name: name}
		}
	default:
		panic("exprgraph: invalid node kind " + n.kind.String())
	}
}

// Gradient returns the partial derivative over every distinct leaf name in
// the graph, keyed by name.
func (ev *Evaluation) Gradient() map[string]float64 {
	g := make(map[string]float64, len(ev.names))
	for _, name := range ev.names {
		if _, ok := g[name]; ok {
			continue
		}
		d, err := ev.derive(ev.root, name)
		if err != nil {
			// Every name in ev.names belongs to a leaf of this graph.
			panic("exprgraph: " + err.Error())
		}
		g[name] = d
	}
	return g
}

// UnknownVariableError is an error from a derivative query for a name that
// no leaf in the queried graph has.
type UnknownVariableError struct {
	// Name is the name that was queried.
	Name string
}

func (err *UnknownVariableError) Error() string {
	return "unknown variable: " + strconv.Quote(err.Name)
}
