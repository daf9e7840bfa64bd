package arith_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wavecrate/reactive"
	"github.com/wavecrate/reactive/arith"
)

func TestExpr(t *testing.T) {
	t.Run("single computed node backs a fused expression", func(t *testing.T) {
		ctx := reactive.NewContext()
		a := reactive.NewVar(ctx, 2)
		b := reactive.NewVar(ctx, 3)
		c := reactive.NewVar(ctx, 4)

		// (a + b) * c, fully fused: one Computed node for the whole tree.
		expr := arith.Mul(arith.Add(arith.Lift(a), arith.Lift(b)), arith.Lift(c))
		result := expr.Into(ctx)

		assert.Equal(t, 20, result.Value())

		ctx.Transaction(func() {
			a.Set(5)
			c.Set(1)
		})
		assert.Equal(t, 8, result.Value())
	})

	t.Run("const participates without a dependency", func(t *testing.T) {
		ctx := reactive.NewContext()
		a := reactive.NewVar(ctx, 10)

		expr := arith.Sub(arith.Lift(a), arith.Const(3))
		result := expr.Into(ctx)

		assert.Equal(t, 7, result.Value())
		a.Set(20)
		assert.Equal(t, 17, result.Value())
	})

	t.Run("division propagates the underlying panic on divide by zero", func(t *testing.T) {
		ctx := reactive.NewContext()
		a := reactive.NewVar(ctx, 10)
		zero := reactive.NewVar(ctx, 0)

		expr := arith.Div(arith.Lift(a), arith.Lift(zero))
		assert.Panics(t, func() { expr.Into(ctx) })
	})

	t.Run("float arithmetic", func(t *testing.T) {
		ctx := reactive.NewContext()
		a := reactive.NewVar(ctx, 1.5)
		b := reactive.NewVar(ctx, 2.5)

		expr := arith.Add(arith.Lift(a), arith.Lift(b))
		result := expr.Into(ctx)
		assert.InDelta(t, 4.0, result.Value(), 0.0001)
	})
}
