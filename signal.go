package reactive

import "github.com/wavecrate/reactive/internal/graph"

// Signal is the read side common to every node kind that carries a
// value: Var, Computed, and Flatten. Its valueNode method is unexported,
// so only types declared in this package can implement Signal -- callers
// can hold and pass a Signal[T] around, but can never construct a
// conforming type of their own, matching the engine's closed node kinds
// (§3).
type Signal[T any] interface {
	// Value returns the node's current value.
	Value() T

	valueNode() graph.ValueNode
}

// Node exposes a Signal's underlying graph node to other packages within
// this module that need to build custom Operation trees (notably arith's
// fusion helpers). It is the one sanctioned escape hatch through
// Signal's otherwise-closed valueNode method.
func Node[T any](s Signal[T]) graph.ValueNode { return s.valueNode() }
