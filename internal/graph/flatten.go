package graph

import "github.com/wavecrate/reactive/internal/obslog"

// FlattenNode is the spec's Flatten node, §4.F: it reads a ValueNode
// whose own value is itself a ValueNode (a signal of signals) and
// transparently re-publishes whatever the current inner node holds,
// rewiring its dependency edge to the new inner node whenever the outer
// value changes.
//
// A tick of a FlattenNode does one of two things, never both in the same
// tick (§4.H):
//
//   - if the outer node's current inner target differs from the one
//     f is wired to, f rewires (detaches the old inner edge, attaches
//     the new one) and does NOT publish a value. Rewiring bumps f's
//     newLevel above the new inner's level and re-enqueues f, so the
//     scheduler's level-bump branch ticks it again later, once its level
//     has actually caught up -- by which point the new inner is certain
//     to have settled its own value for this wave.
//   - otherwise f reads the (unchanged) inner's value, gates on equality
//     exactly like a Computed, and republishes if it changed.
type FlattenNode struct {
	base node

	outer  ValueNode
	unwrap func(any) ValueNode
	inner  ValueNode

	outerEdge *Edge
	innerEdge *Edge

	value    any
	hasValue bool

	equal func(a, b any) bool
}

// NewFlatten builds a Flatten node over outer. unwrap extracts the
// current inner ValueNode from whatever outer.Value() returns; it exists
// because outer's value, at the public API layer, is a typed wrapper
// around a ValueNode rather than a ValueNode itself, and package graph
// cannot see through that wrapper on its own. The inner target is read
// and wired immediately so the node has a value before its first tick.
func NewFlatten(g *Graph, outer ValueNode, unwrap func(any) ValueNode, equal func(a, b any) bool) *FlattenNode {
	if equal == nil {
		equal = g.equalValues
	}
	f := &FlattenNode{base: node{graph: g}, outer: outer, unwrap: unwrap, equal: equal}
	f.outerEdge = Link(outer, f)
	f.inner = f.readInner()
	f.innerEdge = Link(f.inner, f)
	return f
}

func (f *FlattenNode) node() *node { return &f.base }

// Value returns the last published value, which is whatever the current
// inner node last reported.
func (f *FlattenNode) Value() any { return f.value }

func (f *FlattenNode) readInner() ValueNode {
	return f.unwrap(f.outer.Value())
}

// ForceEvaluate gives the node its initial published value immediately
// after construction, mirroring ComputedNode.ForceEvaluate.
func (f *FlattenNode) ForceEvaluate() {
	f.value = f.inner.Value()
	f.hasValue = true
}

func (f *FlattenNode) tick(g *Graph) {
	newInner := f.readInner()

	if newInner != f.inner {
		obslog.Debug(obslog.TagFlatten, "outer switched inner target, rewiring")
		g.onDynamicDetach(f, f.inner)
		f.inner = newInner
		g.onDynamicAttach(f, newInner)
		return
	}

	newValue := f.inner.Value()
	if f.hasValue && f.equal(f.value, newValue) {
		return
	}

	f.value = newValue
	f.hasValue = true
	g.onNodePulse(&f.base)
}
