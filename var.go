package reactive

import "github.com/wavecrate/reactive/internal/graph"

// Var is the spec's Var node (§4.D): a reactive input. Writes made
// outside a Transaction apply and propagate immediately; writes made
// inside one are staged and applied together when the Transaction
// closes.
type Var[T any] struct {
	ctx  *Context
	node *graph.VarNode
}

// NewVar creates a Var holding initial, bound to c.
func NewVar[T any](c *Context, initial T, opts ...VarOption[T]) *Var[T] {
	c.checkAffinity()

	var cfg varConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Var[T]{ctx: c, node: graph.NewVar(c.g, initial, cfg.equal.untyped())}
}

func (v *Var[T]) valueNode() graph.ValueNode { return v.node }

// Value returns the Var's last committed value. Inside a Transaction
// that has already staged a write to v, Value still returns the old,
// committed value -- a write only becomes visible once the transaction
// closes (§4.D).
func (v *Var[T]) Value() T {
	v.ctx.checkAffinity()
	val, _ := v.node.Value().(T) // a nil interface value yields T's zero value
	return val
}

// Set replaces the Var's value outright, superseding any pending Modify
// staged earlier in the same transaction.
func (v *Var[T]) Set(newValue T) {
	v.ctx.checkAffinity()
	v.node.StageSet(newValue)
	v.ctx.g.WriteNow(v.node)
}

// Modify applies fn to the Var's current value (or, inside a
// transaction, to whatever was most recently staged for it) and stages
// the result.
func (v *Var[T]) Modify(fn func(T) T) {
	v.ctx.checkAffinity()
	v.node.StageModify(func(old any) any { return fn(old.(T)) })
	v.ctx.g.WriteNow(v.node)
}
