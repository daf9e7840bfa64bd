package graph

import "github.com/wavecrate/reactive/internal/obslog"

// Graph is the ReactiveGraph of §4.H: transaction counter, input queue,
// topological priority queue, propagation loop, and observer cleanup
// queue. Exactly one Graph backs a Context.
type Graph struct {
	txnLevel int

	changedInputs []*VarNode
	scheduled     *levelQueue
	detached      []*ObserverNode

	// equal is the current equality gate (§4.J), overridable per Context.
	equal func(a, b any) bool
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		scheduled: newLevelQueue(),
		equal:     Equal,
	}
}

// SetEqual installs a custom equality function used by every Computed and
// Var node created against this graph, unless overridden individually.
func (g *Graph) SetEqual(fn func(a, b any) bool) {
	if fn != nil {
		g.equal = fn
	}
}

func (g *Graph) equalValues(a, b any) bool { return g.equal(a, b) }

// BeginTransaction/EndTransaction implement §4.H's transaction nesting.
// Transaction is the public-facing wrapper that calls these around fn.
func (g *Graph) BeginTransaction() {
	g.txnLevel++
	obslog.Trace(obslog.TagTransaction, "begin, depth now %d", g.txnLevel)
}

// EndTransaction decrements the nesting depth and, at the outermost
// level, applies staged inputs and propagates if anything changed.
func (g *Graph) EndTransaction() {
	g.txnLevel--
	obslog.Trace(obslog.TagTransaction, "end, depth now %d", g.txnLevel)
	if g.txnLevel > 0 {
		return
	}

	propagateNeeded := false
	for _, v := range g.changedInputs {
		if v.apply() {
			propagateNeeded = true
		}
	}
	g.changedInputs = g.changedInputs[:0]

	if propagateNeeded {
		g.propagate()
	}

	g.detachQueuedObservers()
}

// StageInput registers a Var node with a pending write so the next
// transaction close (or the single-write fast path) applies it.
func (g *Graph) StageInput(v *VarNode) {
	g.changedInputs = append(g.changedInputs, v)
}

// WriteNow implements the single-write fast path (§4.H): outside any
// transaction, a write is applied inline and propagated immediately
// instead of being queued.
func (g *Graph) WriteNow(v *VarNode) {
	if g.txnLevel > 0 {
		g.StageInput(v)
		return
	}

	if v.apply() {
		g.propagate()
	}
	g.detachQueuedObservers()
}

// propagate drains the scheduled queue wave by wave, exactly per §4.H's
// pseudocode: a node whose level trails its newLevel is bumped and
// re-enqueued instead of ticked; invalidateSuccessors keeps the bump
// propagating forward without ever ticking a node before a predecessor
// that will change in this wave.
func (g *Graph) propagate() {
	for {
		wave, ok := g.scheduled.fetchNext()
		if !ok {
			break
		}
		obslog.Trace(obslog.TagGraph, "draining wave of %d node(s)", len(wave))

		for _, t := range wave {
			nd := t.node()

			if nd.level < nd.newLevel {
				nd.level = nd.newLevel
				g.invalidateSuccessors(nd)
				g.scheduled.push(t)
				continue
			}

			nd.queued = false
			t.tick(g)
		}
	}
}

// invalidateSuccessors bumps the tentative level of every successor of n,
// per §4.H's invalidate_successors.
func (g *Graph) invalidateSuccessors(n *node) {
	for s := range n.successors {
		snd := s.node()
		if n.level+1 > snd.newLevel {
			snd.newLevel = n.level + 1
		}
	}
}

// processChildren enqueues every not-yet-queued successor of n at its
// current level, per §4.H's process_children.
func (g *Graph) processChildren(n *node) {
	for s := range n.successors {
		g.scheduled.enqueue(s)
	}
}

// onInputChange is called by VarNode.apply when a staged write commits.
func (g *Graph) onInputChange(v *VarNode) {
	g.processChildren(v.node())
}

// onNodePulse is called by a Computed/Flatten node's tick when its value
// changes and successors must be recomputed.
func (g *Graph) onNodePulse(n *node) {
	g.processChildren(n)
}

// onDynamicDetach removes the edge from oldInner to f, per §4.F/§4.H.
func (g *Graph) onDynamicDetach(f *FlattenNode, oldInner ValueNode) {
	Unlink(f.innerEdge)
	f.innerEdge = nil
	_ = oldInner
}

// onDynamicAttach links newInner as f's new dependency. It deliberately
// does not bump f's level directly: it sets newLevel and re-enqueues f,
// letting propagate's level-bumping branch do the rest, so a flatten
// node never produces a stale value at its old level (§4.H).
func (g *Graph) onDynamicAttach(f *FlattenNode, newInner ValueNode) {
	f.innerEdge = Link(newInner, f)

	if f.node().level+1 > f.node().newLevel {
		f.node().newLevel = f.node().level + 1
	}
	if dn := newInner.node(); dn.level+1 > f.node().newLevel {
		f.node().newLevel = dn.level + 1
	}

	g.scheduled.enqueue(f)
}

// QueueDetach defers an observer's self-removal to the end of the current
// wave, so a detaching observer never perturbs propagation mid-flight.
func (g *Graph) QueueDetach(o *ObserverNode) {
	g.detached = append(g.detached, o)
}

func (g *Graph) detachQueuedObservers() {
	pending := g.detached
	g.detached = nil

	for _, o := range pending {
		o.detachSelf()
	}
}
