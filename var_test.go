package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVar(t *testing.T) {
	t.Run("read and write", func(t *testing.T) {
		ctx := NewContext()
		count := NewVar(ctx, 0)
		assert.Equal(t, 0, count.Value())

		count.Set(10)
		assert.Equal(t, 10, count.Value())
	})

	t.Run("modify applies to the current value", func(t *testing.T) {
		ctx := NewContext()
		count := NewVar(ctx, 5)

		count.Modify(func(n int) int { return n + 1 })
		assert.Equal(t, 6, count.Value())
	})

	t.Run("zero values", func(t *testing.T) {
		ctx := NewContext()
		err := NewVar[error](ctx, nil)
		assert.Nil(t, err.Value())

		err.Set(assert.AnError)
		assert.Equal(t, assert.AnError, err.Value())
	})

	t.Run("equal writes do not trigger observers", func(t *testing.T) {
		ctx := NewContext()
		count := NewVar(ctx, 1)

		fires := 0
		obs := Observe(ctx, count, func(int) { fires++ })
		defer obs.Detach()

		assert.Equal(t, 1, fires)
		count.Set(1)
		assert.Equal(t, 1, fires)
		count.Set(2)
		assert.Equal(t, 2, fires)
	})

	t.Run("custom equal overrides the default gate", func(t *testing.T) {
		ctx := NewContext()
		count := NewVar(ctx, 1, WithVarEqual(EqualFunc[int](func(a, b int) bool { return false })))

		fires := 0
		obs := Observe(ctx, count, func(int) { fires++ })
		defer obs.Detach()

		count.Set(1)
		assert.Equal(t, 2, fires)
	})
}

func TestTransaction(t *testing.T) {
	t.Run("batches writes into a single propagation", func(t *testing.T) {
		ctx := NewContext()
		a := NewVar(ctx, 1)
		b := NewVar(ctx, 2)
		sum := NewComputed2(ctx, a, b, func(x, y int) int { return x + y })

		log := []int{}
		obs := Observe(ctx, sum, func(v int) { log = append(log, v) })
		defer obs.Detach()

		assert.Equal(t, []int{3}, log)

		ctx.Transaction(func() {
			a.Set(10)
			b.Set(20)
		})

		assert.Equal(t, []int{3, 30}, log)
	})

	t.Run("nested transactions only commit at the outermost close", func(t *testing.T) {
		ctx := NewContext()
		count := NewVar(ctx, 0)

		log := []int{}
		obs := Observe(ctx, count, func(v int) { log = append(log, v) })
		defer obs.Detach()

		ctx.Transaction(func() {
			count.Set(1)
			ctx.Transaction(func() {
				count.Set(2)
			})
			assert.Equal(t, []int{0}, log)
		})

		assert.Equal(t, []int{0, 2}, log)
	})

	t.Run("value inside a transaction is not yet visible", func(t *testing.T) {
		ctx := NewContext()
		count := NewVar(ctx, 0)

		ctx.Transaction(func() {
			count.Set(5)
			assert.Equal(t, 0, count.Value())
		})
		assert.Equal(t, 5, count.Value())
	})

	t.Run("set dominates a pending modify", func(t *testing.T) {
		ctx := NewContext()
		count := NewVar(ctx, 1)

		ctx.Transaction(func() {
			count.Modify(func(n int) int { return n + 100 })
			count.Set(9)
		})

		assert.Equal(t, 9, count.Value())
	})
}
