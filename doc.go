// Package reactive implements a push-based reactive value-propagation
// graph: Var inputs, Computed derived values, Flatten nodes for
// signal-of-signals, and Observer side effects, all scheduled by a
// level-ordered topological queue so a change only ever recomputes each
// downstream node once per propagation wave.
//
// A Context owns one graph and is bound to the goroutine that first
// touches it; every Var, Computed, Flatten, and Observer created through
// a Context shares its scheduler and its default equality gate.
//
//	ctx := reactive.NewContext()
//	count := reactive.NewVar(ctx, 0)
//	doubled := reactive.NewComputed1(ctx, count, func(n int) int { return n * 2 })
//	reactive.Observe(ctx, doubled, func(v int) { fmt.Println(v) })
//	count.Set(5) // prints 10
package reactive
