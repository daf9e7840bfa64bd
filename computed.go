package reactive

import (
	"github.com/wavecrate/reactive/internal/graph"
	"github.com/wavecrate/reactive/internal/op"
)

// Computed is the spec's Computed node (§4.E): a derived value recomputed
// from its dependencies whenever any of them changes, republished only
// when the recomputed value differs from the previous one.
type Computed[T any] struct {
	ctx  *Context
	node *graph.ComputedNode
}

func (c *Computed[T]) valueNode() graph.ValueNode { return c.node }

// Value returns the Computed's last recomputed value.
func (c *Computed[T]) Value() T {
	c.ctx.checkAffinity()
	return c.node.Value().(T)
}

func newComputed[T any](ctx *Context, o graph.Operation, cfg computedConfig[T]) *Computed[T] {
	cn := graph.NewComputed(ctx.g, o, cfg.equal.untyped())
	c := &Computed[T]{ctx: ctx, node: cn}
	cn.ForceEvaluate()
	return c
}

// NewComputed1 derives a Computed from a single dependency.
func NewComputed1[A, T any](ctx *Context, dep Signal[A], fn func(A) T, opts ...ComputedOption[T]) *Computed[T] {
	ctx.checkAffinity()
	ctx.assertSameContext("make-signal", dep.valueNode())
	var cfg computedConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}
	o := op.Map(dep.valueNode(), func(a A) any { return fn(a) })
	return newComputed[T](ctx, o, cfg)
}

// NewComputed2 derives a Computed from two dependencies, fusing them
// into a single Operation (§9): no intermediate Computed node is
// allocated for either dependency's read.
func NewComputed2[A, B, T any](ctx *Context, a Signal[A], b Signal[B], fn func(A, B) T, opts ...ComputedOption[T]) *Computed[T] {
	ctx.checkAffinity()
	ctx.assertSameContext("make-signal", a.valueNode())
	ctx.assertSameContext("make-signal", b.valueNode())
	var cfg computedConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}
	o := op.Fuse2(op.Identity(a.valueNode()), op.Identity(b.valueNode()), func(av, bv any) any {
		return fn(av.(A), bv.(B))
	})
	return newComputed[T](ctx, o, cfg)
}

// NewComputed3 derives a Computed from three dependencies, fused the
// same way as NewComputed2.
func NewComputed3[A, B, C, T any](ctx *Context, a Signal[A], b Signal[B], c Signal[C], fn func(A, B, C) T, opts ...ComputedOption[T]) *Computed[T] {
	ctx.checkAffinity()
	ctx.assertSameContext("make-signal", a.valueNode())
	ctx.assertSameContext("make-signal", b.valueNode())
	ctx.assertSameContext("make-signal", c.valueNode())
	var cfg computedConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}
	o := op.Fuse3(op.Identity(a.valueNode()), op.Identity(b.valueNode()), op.Identity(c.valueNode()), func(av, bv, cv any) any {
		return fn(av.(A), bv.(B), cv.(C))
	})
	return newComputed[T](ctx, o, cfg)
}

// Fuse composes an already-built Operation (typically produced by the
// arith package, or by hand via internal/op's generic helpers) into a
// Computed. It exists so packages within this module, and a caller
// building its own arity-N expression tree, can bypass NewComputed1/2/3
// without dropping into the internal/graph package directly.
func Fuse[T any](ctx *Context, o graph.Operation, opts ...ComputedOption[T]) *Computed[T] {
	ctx.checkAffinity()
	var cfg computedConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}
	return newComputed[T](ctx, o, cfg)
}
