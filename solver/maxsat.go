package solver

import (
	"context"
	"errors"

	"github.com/nano-o/tvl/classical"
)

// branchAndBound searches assignments of vars, pruning as soon as a
// hard formula is determined false, and bounding soft-weight recursion
// with "everything undetermined still goes my way" optimism — the
// standard branch-and-bound relaxation.
type branchAndBound struct {
	ctx     context.Context
	hard    []classical.Formula
	soft    []classical.Formula
	weights []int
	vars    []classical.Var
	every   int
	total   int

	nodes     int
	bestScore int
	bestAssig Assignment
}

// search explores, depth-first, every assignment of vars[idx:], given
// the partial assignment already fixed for vars[:idx] and the soft
// weight already locked in (scoreSoFar, from soft formulas whose value
// is already determined).
func (bb *branchAndBound) search(assign classical.Assignment, idx int, scoreSoFar int) (Assignment, int, error) {
	bb.bestScore = -1
	if err := bb.recurse(assign, idx); err != nil {
		return nil, -1, err
	}
	if bb.bestScore < 0 {
		return nil, -1, errors.New("solver: no assignment satisfies the hard constraints")
	}
	return bb.bestAssig, bb.bestScore, nil
}

func (bb *branchAndBound) recurse(assign classical.Assignment, idx int) error {
	bb.nodes++
	if bb.every > 0 && bb.nodes%bb.every == 0 {
		if err := bb.ctx.Err(); err != nil {
			return ErrIndeterminate
		}
	}

	for _, h := range bb.hard {
		if v, ok := classical.PartialEval(h, assign); ok && !v {
			return nil // pruned: a hard constraint is already violated
		}
	}

	determined, remaining := bb.scoreBounds(assign)
	if determined+remaining <= bb.bestScore {
		return nil // even the optimistic bound can't beat the incumbent
	}

	if idx == len(bb.vars) {
		for _, h := range bb.hard {
			if v, ok := classical.PartialEval(h, assign); !ok || !v {
				return nil // incomplete formula evaluation: not a real solution
			}
		}
		if determined > bb.bestScore {
			bb.bestScore = determined
			bb.bestAssig = cloneClassicalAssignment(assign)
		}
		return nil
	}

	v := bb.vars[idx]
	// Try false first: overlay's soft clauses reward absent edges, so
	// this visits the more-promising branch first and tightens the
	// bound sooner.
	for _, val := range [2]bool{false, true} {
		next := cloneClassicalAssignment(assign)
		next[v] = val
		if err := bb.recurse(next, idx+1); err != nil {
			return err
		}
	}
	return nil
}

// scoreBounds returns (weight of soft formulas already determined true,
// weight of soft formulas not yet determined) under a partial
// assignment.
func (bb *branchAndBound) scoreBounds(assign classical.Assignment) (determined, remaining int) {
	for i, s := range bb.soft {
		v, ok := classical.PartialEval(s, assign)
		switch {
		case ok && v:
			determined += bb.weights[i]
		case !ok:
			remaining += bb.weights[i]
		}
	}
	return determined, remaining
}

func cloneClassicalAssignment(a classical.Assignment) classical.Assignment {
	c := make(classical.Assignment, len(a))
	for k, val := range a {
		c[k] = val
	}
	return c
}
