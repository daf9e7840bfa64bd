package graph

import "github.com/wavecrate/reactive/internal/obslog"

// ComputedNode is the spec's Computed (derived) node, §4.E: a Ticker that
// recomputes from its Operation on tick, gates on equality, and republishes
// only when its value actually changes.
//
// §4.E/§9 describe an r-value "steal_op" path where a short-lived
// intermediate Computed node hands its Operation to a larger one being
// built, collapsing two graph nodes into one. This module takes the §9
// re-architecture note's advice for hosts without r-value overloading
// literally: fusion happens one layer down, in the Operation tree itself
// (internal/op's Fuse2/Fuse3/FuseN build a fusedOp whose deps() flattens
// every child's dependencies), so a chained expression like arith's
// Mul(Add(a, b), c) never allocates an intermediate ComputedNode to steal
// from in the first place. A ComputedNode therefore always owns exactly
// one Operation for its whole lifetime; it holds a strong edge to every
// one of that Operation's dependencies (Computed -> predecessor is
// strong, §3).
type ComputedNode struct {
	base node

	op Operation

	value    any
	hasValue bool

	equal func(a, b any) bool
}

// NewComputed builds a Computed node over op, wiring a strong edge to
// every distinct dependency op.deps() reports. A nil equal falls back to
// the owning graph's default equality gate.
func NewComputed(g *Graph, op Operation, equal func(a, b any) bool) *ComputedNode {
	if equal == nil {
		equal = g.equalValues
	}
	c := &ComputedNode{base: node{graph: g}, op: op, equal: equal}
	c.wire()
	return c
}

func (c *ComputedNode) node() *node { return &c.base }

// Value returns the last computed value. Calling it before the node has
// ever ticked returns the zero value (nil); NewComputed's caller is
// expected to force an initial tick, matching the teacher's eager-first-
// run Computed semantics.
func (c *ComputedNode) Value() any { return c.value }

func (c *ComputedNode) wire() {
	seen := make(map[ValueNode]bool)
	for _, dep := range c.op.deps() {
		if seen[dep] {
			continue
		}
		seen[dep] = true
		Link(dep, c)
	}
}

// ForceEvaluate performs the Computed's first evaluation immediately
// after construction, outside of any propagation wave, matching the
// teacher's eager-first-run Computed semantics: a freshly built node
// already has a value before anything can read it.
func (c *ComputedNode) ForceEvaluate() {
	c.value = c.op.evaluate()
	c.hasValue = true
}

// tick recomputes the node's value and, if it changed, marks successors
// for processing (§4.E/§4.H).
func (c *ComputedNode) tick(g *Graph) {
	newValue := c.op.evaluate()
	if c.hasValue && c.equal(c.value, newValue) {
		obslog.Trace(obslog.TagComputed, "recomputed to an equal value, suppressing propagation")
		return
	}

	c.value = newValue
	c.hasValue = true
	obslog.Debug(obslog.TagComputed, "recomputed -> %v", c.value)
	g.onNodePulse(&c.base)
}
