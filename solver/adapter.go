// Package solver presents the boolean satisfiability, validity, and
// weighted MaxSAT interface the rest of the analyzer dispatches to,
// hiding whatever concrete solver backend answers the call (spec: "the
// core never imports solver-specific types"). The default Backtracking
// implementation is a plain DPLL search; a production deployment can
// substitute a real SMT/MaxSAT backend by implementing Adapter.
package solver

import (
	"context"
	"errors"

	"github.com/nano-o/tvl/classical"
)

// ErrIndeterminate is returned when the solver could not produce a
// definite answer before its context was cancelled or its deadline
// expired. Callers must not treat this as false; spec.md §4.E requires
// an explicit "unknown" outcome rather than a silent false.
var ErrIndeterminate = errors.New("solver: indeterminate result (timeout)")

// Assignment maps classical variables to truth values, as returned by a
// satisfying model or a Maximize solution.
type Assignment = classical.Assignment

// Adapter is the only boundary between the analyzer's core (tvl,
// quorum, closure, intertwined, overlay) and a concrete SAT/SMT/MaxSAT
// engine.
type Adapter interface {
	// IsSat reports whether f is satisfiable.
	IsSat(ctx context.Context, f classical.Formula) (bool, error)

	// IsValid reports whether f is valid (true under every assignment).
	IsValid(ctx context.Context, f classical.Formula) (bool, error)

	// Maximize solves a weighted partial MaxSAT instance: every formula
	// in hard must be satisfied; weights[i] is the reward for
	// satisfying soft[i]. It returns the satisfying assignment to the
	// hard clauses that maximizes total soft-clause weight.
	Maximize(ctx context.Context, hard []classical.Formula, soft []classical.Formula, weights []int) (Assignment, error)
}
