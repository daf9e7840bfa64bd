package graph

import "github.com/wavecrate/reactive/internal/obslog"

// VarNode is the spec's Var (input) node, §3/§4.D: a signal node that
// stages pending writes and commits them on apply. Var nodes never tick;
// only apply.
type VarNode struct {
	base node

	value any

	stagedValue any
	hasSet      bool
	hasModify   bool

	equal func(a, b any) bool
}

// NewVar creates a fresh input node holding initial. A nil equal falls
// back to the owning graph's default equality gate (§4.J).
func NewVar(g *Graph, initial any, equal func(a, b any) bool) *VarNode {
	if equal == nil {
		equal = g.equalValues
	}
	return &VarNode{
		base:  node{graph: g},
		value: initial,
		equal: equal,
	}
}

func (v *VarNode) node() *node { return &v.base }

// Value returns the currently committed value (never the staged one: a
// reader always sees the last applied value, §4.C).
func (v *VarNode) Value() any { return v.value }

// StageSet copies newValue into stagedValue, per §4.D: a wholesale
// replacement dominates any pending in-place modify.
func (v *VarNode) StageSet(newValue any) {
	v.stagedValue = newValue
	v.hasSet = true
	v.hasModify = false
}

// StageModify applies fn to the live value if no write is pending, or to
// the already-staged value if one is, so successive modifies compound (a
// set-then-modify chain stays on the set path, per §4.D).
func (v *VarNode) StageModify(fn func(any) any) {
	if !v.hasSet && !v.hasModify {
		v.stagedValue = fn(v.value)
	} else {
		v.stagedValue = fn(v.stagedValue)
	}
	v.hasModify = true
}

// apply commits the staged write, if any, and reports whether the value
// actually changed (§4.D). hasSet dominates hasModify when both are set.
func (v *VarNode) apply() bool {
	switch {
	case v.hasSet:
		v.hasSet = false
		v.hasModify = false

		if v.equal(v.value, v.stagedValue) {
			return false
		}

		v.value = v.stagedValue
		v.stagedValue = nil
		obslog.Debug(obslog.TagVar, "set -> %v", v.value)
		v.base.graph.onInputChange(v)
		return true

	case v.hasModify:
		v.hasModify = false

		v.value = v.stagedValue
		v.stagedValue = nil
		obslog.Debug(obslog.TagVar, "modify -> %v", v.value)
		v.base.graph.onInputChange(v)
		return true

	default:
		return false
	}
}
