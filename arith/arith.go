// Package arith is numeric convenience sugar built on Operation fusion:
// chaining Add/Sub/Mul/Div produces one Expr whose Into call allocates a
// single Computed node for the whole expression tree, no matter how many
// arithmetic steps went into building it. This is the "stealing" note
// from the engine's design (§9) made concrete: reactive.NewComputed2
// chained by hand would allocate one Computed per operator; arith never
// does.
package arith

import (
	"github.com/wavecrate/reactive"
	"github.com/wavecrate/reactive/internal/graph"
	"github.com/wavecrate/reactive/internal/op"
)

// Number is the set of built-in types arith's operators accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Expr is an unmaterialized arithmetic expression over reactive values.
// It holds no graph node of its own until Into is called.
type Expr[T Number] struct {
	op graph.Operation
}

// Lift wraps an existing signal as a leaf Expr.
func Lift[T Number](s reactive.Signal[T]) Expr[T] {
	return Expr[T]{op: op.Identity(reactive.Node(s))}
}

// Const builds a leaf Expr whose value never changes. It still
// participates in fusion like any other Expr, it simply has no
// dependencies of its own.
func Const[T Number](v T) Expr[T] {
	return Expr[T]{op: graph.NewFusedOperation(func([]any) any { return v })}
}

// Add fuses a and b under addition.
func Add[T Number](a, b Expr[T]) Expr[T] {
	return Expr[T]{op: op.Fuse2(a.op, b.op, func(av, bv T) any { return av + bv })}
}

// Sub fuses a and b under subtraction.
func Sub[T Number](a, b Expr[T]) Expr[T] {
	return Expr[T]{op: op.Fuse2(a.op, b.op, func(av, bv T) any { return av - bv })}
}

// Mul fuses a and b under multiplication.
func Mul[T Number](a, b Expr[T]) Expr[T] {
	return Expr[T]{op: op.Fuse2(a.op, b.op, func(av, bv T) any { return av * bv })}
}

// Div fuses a and b under division. It does not guard against division
// by zero: that mirrors the underlying type's own behavior (a panic for
// integers, +Inf/NaN for floats), and that panic is an uncaught
// user-function exception, not a contract violation (§7).
func Div[T Number](a, b Expr[T]) Expr[T] {
	return Expr[T]{op: op.Fuse2(a.op, b.op, func(av, bv T) any { return av / bv })}
}

// Into materializes the expression tree as a single Computed node bound
// to ctx.
func (e Expr[T]) Into(ctx *reactive.Context, opts ...reactive.ComputedOption[T]) *reactive.Computed[T] {
	return reactive.Fuse[T](ctx, e.op, opts...)
}
