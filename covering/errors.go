package covering

import "fmt"

// PreconditionKind identifies which input precondition failed.
type PreconditionKind string

const (
	// NotMonotone means L(i) > L(i+1) or R(i) > R(i+1) for some i.
	NotMonotone PreconditionKind = "not_monotone"
	// EmptyInterval means L(i) >= R(i) for some i.
	EmptyInterval PreconditionKind = "empty_interval"
	// ChainGap means L(i+1) > R(i) for some i: the union is not a single
	// connected segment.
	ChainGap PreconditionKind = "chain_gap"
)

// PreconditionError reports that input i violates one of the monotonicity,
// non-emptiness, or chain-connectivity preconditions. It is only ever
// returned when Solver.Debug is set; in release mode Run trusts its input
// and the corresponding behavior is undefined.
type PreconditionError struct {
	Index int
	Kind  PreconditionKind
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("covering: precondition %q violated at index %d", e.Kind, e.Index)
}

// InvariantError reports that a computed internal structure (the
// furthest-jump table, the sketch, ...) failed an invariant the algorithm
// guarantees for valid input. It signals a bug in the core rather than a
// caller error, and like PreconditionError is only surfaced in debug mode.
type InvariantError struct {
	Where string
	Index int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("covering: internal invariant violated in %s at index %d", e.Where, e.Index)
}
