package reactive

import "fmt"

// ContractViolationError reports a caller mistake the engine can detect
// synchronously: using a Context from the wrong goroutine, composing a
// Signal or Observer across two different Contexts, or otherwise breaking
// an invariant this package asserts rather than tolerates (§7). Detaching
// an already-detached Observer is deliberately NOT one of these cases --
// Observer.Detach is idempotent and never raises. It is distinct from a
// panic raised by user code running inside a Computed or Observer
// callback, which the engine never catches -- see Context.Transaction.
type ContractViolationError struct {
	Op  string
	Msg string
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("reactive: %s: %s", e.Op, e.Msg)
}

func violation(op, format string, args ...any) *ContractViolationError {
	return &ContractViolationError{Op: op, Msg: fmt.Sprintf(format, args...)}
}
