package reactive

import (
	"github.com/petermattis/goid"

	"github.com/wavecrate/reactive/internal/graph"
)

// Context is the façade over one ReactiveGraph (§4.I): every Var,
// Computed, Flatten, and Observer created through a Context shares its
// graph, its default equality function, and its single-owner-goroutine
// affinity guard. A Context is not safe to use from more than one
// goroutine (§5's concurrency non-goal): the first call from a goroutine
// binds the Context to it, and every later call from a different
// goroutine is a contract violation.
type Context struct {
	g   *graph.Graph
	gid int64
}

// NewContext creates a fresh, empty Context.
func NewContext(opts ...ContextOption) *Context {
	var cfg contextConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	g := graph.New()
	if cfg.equal != nil {
		g.SetEqual(cfg.equal)
	}

	return &Context{g: g, gid: goid.Get()}
}

// checkAffinity panics with a ContractViolationError if called from a
// goroutine other than the one that first touched this Context.
func (c *Context) checkAffinity() {
	if gid := goid.Get(); gid != c.gid {
		panic(violation("goroutine-affinity", "Context used from goroutine %d, bound to goroutine %d", gid, c.gid))
	}
}

// Equal reports whether c and other are the same Context -- the same
// underlying graph, not merely two Contexts that look alike (§4.I: "`==`
// returns whether two references point to the same context").
func (c *Context) Equal(other *Context) bool {
	return other != nil && c.g == other.g
}

// assertSameContext panics with a ContractViolationError if dep does not
// belong to c's graph (§2's cross-context composition ban, §6's
// `make_signal`/`flatten`/`observe` "ctx mismatch: abort" failure mode,
// §7's "Contract violation" class). Every public constructor that wires
// an existing Signal/Observer into a Context's graph calls this once per
// dependency before linking it in.
func (c *Context) assertSameContext(op string, dep graph.ValueNode) {
	if graph.GraphOf(dep) != c.g {
		panic(violation(op, "dependency bound to a different Context (cross-context composition)"))
	}
}

// Transaction batches every Var write made inside fn into a single
// propagation pass (§4.H): writes made inside fn are staged, not
// applied, until the outermost Transaction call closes, at which point
// every staged write is applied and the graph propagates once. Nested
// Transaction calls just increment the nesting depth.
//
// If fn panics, the deferred close still runs -- so the transaction
// accounting stays consistent -- but any staged writes made before the
// panic are applied as part of that close. The panic itself is never
// recovered here; it propagates to the caller, and per §7 the graph's
// state afterward is whatever the partial execution of fn left staged.
func (c *Context) Transaction(fn func()) {
	c.checkAffinity()
	c.g.BeginTransaction()
	defer c.g.EndTransaction()
	fn()
}
