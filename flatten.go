package reactive

import "github.com/wavecrate/reactive/internal/graph"

// Flatten is the spec's Flatten node (§4.F): it reads a signal of
// signals and transparently republishes whatever the current inner
// signal holds, rewiring itself whenever the outer signal switches to a
// different inner one.
type Flatten[T any] struct {
	ctx  *Context
	node *graph.FlattenNode
}

func (f *Flatten[T]) valueNode() graph.ValueNode { return f.node }

// Value returns the current inner signal's last published value.
func (f *Flatten[T]) Value() T {
	f.ctx.checkAffinity()
	return f.node.Value().(T)
}

// NewFlatten builds a Flatten over outer, a signal whose own value is
// another Signal[T].
func NewFlatten[T any](ctx *Context, outer Signal[Signal[T]], opts ...FlattenOption[T]) *Flatten[T] {
	ctx.checkAffinity()
	ctx.assertSameContext("flatten", outer.valueNode())

	var cfg flattenConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx.assertSameContext("flatten", outer.Value().valueNode())

	unwrap := func(v any) graph.ValueNode { return v.(Signal[T]).valueNode() }

	fn := graph.NewFlatten(ctx.g, outer.valueNode(), unwrap, cfg.equal.untyped())
	f := &Flatten[T]{ctx: ctx, node: fn}
	fn.ForceEvaluate()
	return f
}
