package graph

import "github.com/wavecrate/reactive/internal/obslog"

// subjectRef is an Observer's reference to the subject it watches. It is
// a hand-rolled stand-in for a weak reference (§3/§4.G): the Observer
// must never be the thing keeping a subject alive, and detachObserver
// must sever the link explicitly rather than waiting on a GC finalizer,
// since nothing in this engine's external interface ever destroys a
// signal out from under a live observer -- the only teardown path is
// the observer's own Detach. A stdlib weak.Pointer[T] would need one
// generic instantiation per concrete subject kind for no behavioral gain
// over an explicit severed flag, so we use this instead.
type subjectRef struct {
	target  ValueNode
	severed bool
}

func (r *subjectRef) get() (ValueNode, bool) {
	if r.severed {
		return nil, false
	}
	return r.target, true
}

func (r *subjectRef) sever() { r.severed = true }

// Action reports what an Observer's callback wants to happen after it
// runs (§3/§4.G): Next keeps the observer attached for future changes;
// StopAndDetach requests teardown, deferred to the end of the current
// propagation wave exactly like an explicit Detach call.
type Action int

const (
	Next Action = iota
	StopAndDetach
)

// ObserverNode is the spec's Observer node, §4.G: a Ticker with no value
// of its own that fires a side-effecting callback whenever its subject's
// value changes. The subject holds a strong edge to the observer (so the
// observer keeps getting ticked); the observer's own reference back to
// the subject is the severable subjectRef, never a strong hold.
type ObserverNode struct {
	base node

	subject subjectRef
	edge    *Edge

	fn func(value any) Action

	// detachRequested marks that Detach was called mid-wave; the actual
	// unlink is deferred to the graph's end-of-wave sweep so a detaching
	// observer never perturbs the propagation it is detaching from.
	detachRequested bool
}

// Observe attaches fn to subject and returns the new Observer node. fn
// fires once immediately with the subject's current value, then again on
// every subsequent change, matching the teacher's eager-first-run effect
// semantics (sig.NewEffect). If fn ever returns StopAndDetach, the
// observer requests its own teardown exactly as if Detach had been
// called (§4.G, §6's Lifecycle: "until the callback returns
// StopAndDetach").
func Observe(g *Graph, subject ValueNode, fn func(value any) Action) *ObserverNode {
	o := &ObserverNode{base: node{graph: g}, subject: subjectRef{target: subject}, fn: fn}
	o.edge = Link(subject, o)
	if fn(subject.Value()) == StopAndDetach {
		o.Detach()
	}
	return o
}

func (o *ObserverNode) node() *node { return &o.base }

func (o *ObserverNode) tick(g *Graph) {
	if o.detachRequested {
		return
	}

	subject, ok := o.subject.get()
	if !ok {
		return
	}

	if o.fn(subject.Value()) == StopAndDetach {
		o.Detach()
	}
}

// Detach requests teardown of this observer. Per §4.G, detaching mid-wave
// must not retroactively cancel a tick already in flight for this
// observer in the current wave, so the real unlink happens once the
// graph finishes draining the wave (Graph.detachQueuedObservers).
func (o *ObserverNode) Detach() {
	if o.detachRequested {
		return
	}
	o.detachRequested = true
	o.base.graph.QueueDetach(o)
}

// detachSelf performs the actual, immediate teardown: unlinking the
// subject edge and severing the subject reference. Called only from the
// graph's end-of-wave sweep.
func (o *ObserverNode) detachSelf() {
	Unlink(o.edge)
	o.edge = nil
	o.subject.sever()
	obslog.Trace(obslog.TagObserver, "detached")
}
