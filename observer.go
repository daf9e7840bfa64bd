package reactive

import "github.com/wavecrate/reactive/internal/graph"

// ObserverAction reports what an Observer's callback wants to happen
// after it runs (§3/§4.G): Next keeps the observer attached for future
// changes; StopAndDetach requests teardown of the observer, deferred to
// the end of the current propagation wave exactly like an explicit
// Detach call (§6's Lifecycle: "until the callback returns
// StopAndDetach").
type ObserverAction = graph.Action

const (
	Next          = graph.Next
	StopAndDetach = graph.StopAndDetach
)

// Observer is the spec's Observer node (§4.G): a side-effecting
// subscriber to a Signal with no value of its own. Observe returns one
// already attached and already fired once with the subject's current
// value.
type Observer struct {
	ctx  *Context
	node *graph.ObserverNode
}

// ObserveAction attaches fn to subject like Observe, but lets fn decide
// whether to keep observing: fn runs immediately with subject's current
// value and again on every subsequent change, until either the returned
// Observer is detached or fn itself returns StopAndDetach (§4.G).
func ObserveAction[T any](ctx *Context, subject Signal[T], fn func(value T) ObserverAction) *Observer {
	ctx.checkAffinity()
	ctx.assertSameContext("observe", subject.valueNode())
	n := graph.Observe(ctx.g, subject.valueNode(), func(v any) graph.Action { return fn(v.(T)) })
	return &Observer{ctx: ctx, node: n}
}

// Observe attaches fn to subject: fn runs immediately with subject's
// current value, and again every time that value changes, until the
// returned Observer is detached. fn's void return is wrapped to always
// report Next, per §4.G's "user functions whose natural return is void
// are wrapped to always yield Next."
func Observe[T any](ctx *Context, subject Signal[T], fn func(value T)) *Observer {
	return ObserveAction(ctx, subject, func(v T) ObserverAction {
		fn(v)
		return Next
	})
}

// Detach stops the Observer from firing again and severs its reference
// to the subject. Detaching twice is a no-op, not an error.
func (o *Observer) Detach() {
	o.ctx.checkAffinity()
	o.node.Detach()
}
