// Package exprgraph evaluates expression graphs built from named constants
// and the binary operators sum and product, and computes partial derivatives
// of a graph's value with respect to any named leaf.
//
// A graph is assembled bottom-up with Leaf, Sum, and Product and is immutable
// afterward. Evaluate walks the graph once and returns an Evaluation, which
// answers value, name, and derivative queries. Derivative queries reuse the
// values recorded during evaluation, so a product's sibling subtree is never
// recomputed, and a derivative can never observe a stale or missing value.
package exprgraph
