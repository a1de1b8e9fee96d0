// Package intertwined orchestrates the intertwinedness decision
// procedure (spec component E): build the closure axiom and
// obligation (closure), translate to classical logic (tvl), dispatch
// to a solver (solver), and interpret the result — including the
// three-way "unknown" outcome a solver timeout or indeterminate result
// produces.
package intertwined

// Outcome is the three-way result of an intertwinedness check. Unlike
// a bare bool, it distinguishes "checked and false" from "could not be
// decided" (spec.md §7: "the checker returns an explicit 'unknown'
// variant rather than silently treating it as false").
type Outcome int

const (
	False Outcome = iota
	True
	Unknown
)

func (o Outcome) String() string {
	switch o {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unknown"
	}
}
