package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkBumpsLevel(t *testing.T) {
	g := New()
	v := NewVar(g, 1, nil)
	c := NewComputed(g, NewLeafOperation(v, nil), nil)

	assert.Equal(t, 0, v.node().Level())
	assert.Equal(t, 1, c.node().Level())
}

func TestVarWriteNowPropagates(t *testing.T) {
	g := New()
	v := NewVar(g, 1, nil)
	c := NewComputed(g, NewLeafOperation(v, func(x any) any { return x.(int) * 2 }), nil)
	c.ForceEvaluate()

	assert.Equal(t, 2, c.Value())
	v.StageSet(5)
	g.WriteNow(v)
	assert.Equal(t, 10, c.Value())
}

func TestComputedEqualityGate(t *testing.T) {
	g := New()
	v := NewVar(g, 4, nil)
	parity := NewComputed(g, NewLeafOperation(v, func(x any) any {
		if x.(int)%2 == 0 {
			return "even"
		}
		return "odd"
	}), nil)
	parity.ForceEvaluate()

	ticks := 0
	observerFn := func(value any) Action { ticks++; return Next }
	Observe(g, parity, observerFn)
	assert.Equal(t, 1, ticks)

	v.StageSet(6)
	g.WriteNow(v)
	assert.Equal(t, 1, ticks) // still even, no change

	v.StageSet(7)
	g.WriteNow(v)
	assert.Equal(t, 2, ticks)
}

func TestTransactionBatchesWrites(t *testing.T) {
	g := New()
	a := NewVar(g, 1, nil)
	b := NewVar(g, 2, nil)
	sum := NewComputed(g, NewFusedOperation(func(args []any) any {
		return args[0].(int) + args[1].(int)
	}, NewLeafOperation(a, nil), NewLeafOperation(b, nil)), nil)
	sum.ForceEvaluate()

	ticks := 0
	Observe(g, sum, func(any) Action { ticks++; return Next })
	assert.Equal(t, 1, ticks)

	g.BeginTransaction()
	a.StageSet(10)
	g.StageInput(a)
	b.StageSet(20)
	g.StageInput(b)
	g.EndTransaction()

	assert.Equal(t, 2, ticks)
	assert.Equal(t, 30, sum.Value())
}

func TestObserverDetachDefersToWaveEnd(t *testing.T) {
	g := New()
	v := NewVar(g, 0, nil)

	var o *ObserverNode
	log := []any{}
	o = Observe(g, v, func(value any) Action {
		log = append(log, value)
		if value == 1 {
			o.Detach()
		}
		return Next
	})

	v.StageSet(1)
	g.WriteNow(v)

	v.StageSet(2)
	g.WriteNow(v)

	assert.Equal(t, []any{0, 1}, log)
}

func TestObserverStopAndDetach(t *testing.T) {
	g := New()
	v := NewVar(g, 0, nil)

	calls := 0
	Observe(g, v, func(value any) Action {
		calls++
		if calls == 3 {
			return StopAndDetach
		}
		return Next
	})

	for x := 1; x <= 5; x++ {
		v.StageSet(x)
		g.WriteNow(v)
	}

	assert.Equal(t, 3, calls)
}

func TestFlattenRewiresOnOuterChange(t *testing.T) {
	g := New()
	low := NewVar(g, 1, nil)
	high := NewVar(g, 100, nil)
	useHigh := NewVar(g, false, nil)

	selector := NewComputed(g, NewLeafOperation(useHigh, func(b any) any {
		if b.(bool) {
			return ValueNode(high)
		}
		return ValueNode(low)
	}), nil)
	selector.ForceEvaluate()

	unwrap := func(v any) ValueNode { return v.(ValueNode) }
	flat := NewFlatten(g, selector, unwrap, nil)
	flat.ForceEvaluate()
	assert.Equal(t, 1, flat.Value())

	log := []any{}
	Observe(g, flat, func(value any) Action { log = append(log, value); return Next })
	assert.Equal(t, []any{1}, log)

	useHigh.StageSet(true)
	g.WriteNow(useHigh)
	assert.Equal(t, []any{1, 100}, log)

	low.StageSet(999)
	g.WriteNow(low)
	assert.Equal(t, []any{1, 100}, log)

	high.StageSet(200)
	g.WriteNow(high)
	assert.Equal(t, []any{1, 100, 200}, log)
}
