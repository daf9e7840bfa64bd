package reactive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputed(t *testing.T) {
	t.Run("recomputes when a dependency changes", func(t *testing.T) {
		ctx := NewContext()
		count := NewVar(ctx, 2)
		doubled := NewComputed1(ctx, count, func(n int) int { return n * 2 })

		assert.Equal(t, 4, doubled.Value())
		count.Set(10)
		assert.Equal(t, 20, doubled.Value())
	})

	t.Run("diamond dependency only recomputes the sink once", func(t *testing.T) {
		ctx := NewContext()
		count := NewVar(ctx, 1)
		left := NewComputed1(ctx, count, func(n int) int { return n + 1 })
		right := NewComputed1(ctx, count, func(n int) int { return n * 10 })
		sum := NewComputed2(ctx, left, right, func(l, r int) int { return l + r })

		runs := 0
		obs := Observe(ctx, sum, func(int) { runs++ })
		defer obs.Detach()

		assert.Equal(t, 1, runs)
		count.Set(2)
		assert.Equal(t, 2, runs)
		assert.Equal(t, 23, sum.Value())
	})

	t.Run("propagation only continues when the value actually changes", func(t *testing.T) {
		ctx := NewContext()
		count := NewVar(ctx, 4)
		parity := NewComputed1(ctx, count, func(n int) string {
			if n%2 == 0 {
				return "even"
			}
			return "odd"
		})

		log := []string{}
		obs := Observe(ctx, parity, func(v string) { log = append(log, v) })
		defer obs.Detach()

		assert.Equal(t, []string{"even"}, log)
		count.Set(6)
		assert.Equal(t, []string{"even"}, log)
		count.Set(7)
		assert.Equal(t, []string{"even", "odd"}, log)
	})

	t.Run("three-way fan-in via NewComputed3", func(t *testing.T) {
		ctx := NewContext()
		a := NewVar(ctx, 1)
		b := NewVar(ctx, 2)
		c := NewVar(ctx, 3)

		total := NewComputed3(ctx, a, b, c, func(x, y, z int) int { return x + y + z })
		assert.Equal(t, 6, total.Value())

		ctx.Transaction(func() {
			a.Set(10)
			b.Set(20)
			c.Set(30)
		})
		assert.Equal(t, 60, total.Value())
	})

	t.Run("custom equal keeps a no-op computed value stable", func(t *testing.T) {
		ctx := NewContext()
		name := NewVar(ctx, "alice")
		shout := NewComputed1(ctx, name, func(n string) string { return fmt.Sprintf("%s!", n) },
			WithComputedEqual(EqualFunc[string](func(a, b string) bool { return len(a) == len(b) })))

		runs := 0
		obs := Observe(ctx, shout, func(string) { runs++ })
		defer obs.Detach()

		assert.Equal(t, 1, runs)
		name.Set("bobby") // same length as "alice"
		assert.Equal(t, 1, runs)
		name.Set("cy")
		assert.Equal(t, 2, runs)
	})
}
