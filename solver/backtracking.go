package solver

import (
	"context"

	"github.com/nano-o/tvl/classical"
)

// Backtracking is the default Adapter: a DPLL-style satisfiability
// search over Tseitin-encoded CNF for IsSat/IsValid, and a
// branch-and-bound weighted MaxSAT search for Maximize. No SAT/SMT/
// MaxSAT third-party Go library appears anywhere in the retrieved
// corpus, so this is a deliberate standard-library component — see
// DESIGN.md. checkEvery bounds how many search nodes run between
// ctx.Err() checks; 0 means use the default.
type Backtracking struct {
	checkEvery int
}

// NewBacktracking returns a Backtracking adapter.
func NewBacktracking() *Backtracking {
	return &Backtracking{}
}

const defaultCheckEvery = 4096

func (b *Backtracking) every() int {
	if b.checkEvery > 0 {
		return b.checkEvery
	}
	return defaultCheckEvery
}

// IsSat reports whether f is satisfiable.
func (b *Backtracking) IsSat(ctx context.Context, f classical.Formula) (bool, error) {
	cnf := classical.Tseitin(f)
	ok, _, err := dpllSolve(ctx, cnf, b.every())
	return ok, err
}

// IsValid reports whether f holds under every assignment, by checking
// that its negation is unsatisfiable.
func (b *Backtracking) IsValid(ctx context.Context, f classical.Formula) (bool, error) {
	sat, err := b.IsSat(ctx, classical.Not{X: f})
	if err != nil {
		return false, err
	}
	return !sat, nil
}

// Maximize runs branch-and-bound search over the variables referenced
// by hard and soft, maximizing the total weight of satisfied soft
// formulas subject to every hard formula holding.
func (b *Backtracking) Maximize(ctx context.Context, hard []classical.Formula, soft []classical.Formula, weights []int) (Assignment, error) {
	if len(soft) != len(weights) {
		panic("solver: len(soft) != len(weights)")
	}

	varSet := map[classical.Var]bool{}
	var order []classical.Var
	collect := func(f classical.Formula) {
		for _, v := range classical.Vars(f) {
			if !varSet[v] {
				varSet[v] = true
				order = append(order, v)
			}
		}
	}
	for _, h := range hard {
		collect(h)
	}
	for _, s := range soft {
		collect(s)
	}

	total := 0
	for _, w := range weights {
		total += w
	}

	bb := &branchAndBound{
		ctx:     ctx,
		hard:    hard,
		soft:    soft,
		weights: weights,
		vars:    order,
		every:   b.every(),
		total:   total,
	}
	best, _, err := bb.search(classical.Assignment{}, 0, 0)
	if err != nil {
		return nil, err
	}
	return best, nil
}
