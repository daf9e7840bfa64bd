// Package graph implements the reactive propagation engine: the DAG of
// nodes, the level-ordered topological scheduler, transaction batching,
// dynamic topology rebuilding (flatten), and observer lifetime management.
package graph

// node is the base embedded by every concrete node kind (var, computed,
// flatten, observer). It carries identity, topology level, and scheduler
// bookkeeping shared across all kinds.
type node struct {
	graph *Graph

	// level is the node's current topological depth. 0 for inputs.
	level int

	// newLevel is the tentative depth discovered while draining a wave;
	// it only ever grows level, never shrinks it (monotonic).
	newLevel int

	// queued reports membership in the scheduler's pending queue, so a
	// node is never enqueued twice within the same propagation pass.
	queued bool

	// subsHead/subsTail form the ordered list of edges whose dep is this
	// node, i.e. this node's successors (consumers of its output).
	subsHead *Edge
	subsTail *Edge
}

// Level reports the node's current topological depth.
func (n *node) Level() int { return n.level }

// Node is implemented by every concrete graph node kind. Only types
// declared within package graph can implement it (the method is
// unexported by design): Var, Computed, Flatten, and Observer nodes.
type Node interface {
	node() *node
}

// GraphOf returns the Graph that owns n. Exposed so the public reactive
// package can assert same-context composition (§2, §4.I) without needing
// to see node internals: every Var/Computed/Flatten/Observer constructor
// that wires a dependency into a Context's graph calls this first to
// confirm the dependency belongs to that same graph, per §6's "ctx
// mismatch: abort" and §7's "cross-context composition" contract
// violation.
func GraphOf(n Node) *Graph { return n.node().graph }

// Ticker is a Node that participates in propagation waves: computed,
// flatten, and observer nodes recompute or fire when ticked.
type Ticker interface {
	Node
	tick(g *Graph)
}

// ValueNode is a Node that carries a readable current value: var,
// computed, and flatten nodes. Operation leaves and Flatten's outer/inner
// read through this interface; it is exported so internal/op can hold
// dependency references without needing to implement Node itself.
type ValueNode interface {
	Node
	Value() any
}

// Edge connects a dependency (producer) to a subscriber (consumer,
// always a Ticker). It is stored in the dependency's subsHead/subsTail
// list; Observer and Flatten nodes hold the edge handle so they can
// unlink it on detach or rewire in O(1).
type Edge struct {
	dep *node
	sub Ticker

	prevSub *Edge
	nextSub *Edge
}

// Link records dep as a predecessor of sub, appends the edge to dep's
// successor list, and immediately bumps sub's level per §4.A: levels are
// monotonic and recomputed eagerly on every edge addition.
func Link(dep ValueNode, sub Ticker) *Edge {
	depNode := dep.node()

	e := &Edge{dep: depNode, sub: sub}

	if depNode.subsTail == nil {
		depNode.subsHead = e
		depNode.subsTail = e
	} else {
		depNode.subsTail.nextSub = e
		e.prevSub = depNode.subsTail
		depNode.subsTail = e
	}

	subNode := sub.node()
	if depNode.level+1 > subNode.level {
		subNode.level = depNode.level + 1
	}

	return e
}

// Unlink removes e from its dependency's successor list. It does not
// lower any node's level (edge removal never lowers levels, §4.A).
func Unlink(e *Edge) {
	if e == nil {
		return
	}

	dep := e.dep

	if e.prevSub != nil {
		e.prevSub.nextSub = e.nextSub
	} else {
		dep.subsHead = e.nextSub
	}

	if e.nextSub != nil {
		e.nextSub.prevSub = e.prevSub
	} else {
		dep.subsTail = e.prevSub
	}

	e.prevSub = nil
	e.nextSub = nil
}

// successors iterates the Tickers that depend on this node, in insertion
// order.
func (n *node) successors(yield func(Ticker) bool) {
	for e := n.subsHead; e != nil; e = e.nextSub {
		if !yield(e.sub) {
			return
		}
	}
}
