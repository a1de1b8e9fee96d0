package solver

import (
	"context"

	"github.com/nano-o/tvl/classical"
)

// dpllSolve searches for a satisfying assignment of cnf using unit
// propagation plus chronological backtracking. It checks ctx
// periodically (every checkEvery decision nodes) and returns
// ErrIndeterminate if the context is done before a verdict is reached.
func dpllSolve(ctx context.Context, cnf classical.CNF, checkEvery int) (bool, Assignment, error) {
	nodes := 0
	var recur func(assign Assignment) (bool, Assignment, error)
	recur = func(assign Assignment) (bool, Assignment, error) {
		nodes++
		if checkEvery > 0 && nodes%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return false, nil, ErrIndeterminate
			}
		}

		assign, ok := unitPropagate(cnf.Clauses, assign)
		if !ok {
			return false, nil, nil // conflict
		}

		status := clausesStatus(cnf.Clauses, assign)
		switch status {
		case statusSAT:
			return true, assign, nil
		case statusConflict:
			return false, nil, nil
		}

		branchVar, found := pickUnassigned(cnf.Clauses, assign)
		if !found {
			// Every variable assigned but status is undetermined only
			// when a clause still has an unassigned literal, which
			// pickUnassigned would have found; treat as SAT.
			return true, assign, nil
		}

		for _, v := range [2]bool{true, false} {
			next := cloneAssignment(assign)
			next[branchVar] = v
			ok, model, err := recur(next)
			if err != nil {
				return false, nil, err
			}
			if ok {
				return true, model, nil
			}
		}
		return false, nil, nil
	}

	return recur(Assignment{})
}

type clauseStatus int

const (
	statusUndetermined clauseStatus = iota
	statusSAT
	statusConflict
)

// clausesStatus reports SAT if every clause has a satisfied literal
// under assign, Conflict if some clause has every literal falsified,
// and Undetermined otherwise.
func clausesStatus(clauses []classical.Clause, assign Assignment) clauseStatus {
	allSat := true
	for _, cl := range clauses {
		sat, conflict := clauseEval(cl, assign)
		if conflict {
			return statusConflict
		}
		if !sat {
			allSat = false
		}
	}
	if allSat {
		return statusSAT
	}
	return statusUndetermined
}

// clauseEval reports (satisfied, conflict) for a single clause under a
// partial assignment: conflict means every literal is assigned and
// false.
func clauseEval(cl classical.Clause, assign Assignment) (sat, conflict bool) {
	sawUnassigned := false
	for _, l := range cl {
		v, present := assign[l.Name]
		if !present {
			sawUnassigned = true
			continue
		}
		val := v
		if l.Negated {
			val = !val
		}
		if val {
			return true, false
		}
	}
	if sawUnassigned {
		return false, false
	}
	return false, true
}

// unitPropagate repeatedly finds clauses with exactly one unassigned
// literal and no satisfied literal, forces that literal true, and
// repeats until fixpoint or conflict.
func unitPropagate(clauses []classical.Clause, assign Assignment) (Assignment, bool) {
	assign = cloneAssignment(assign)
	changed := true
	for changed {
		changed = false
		for _, cl := range clauses {
			sat, conflict := clauseEval(cl, assign)
			if conflict {
				return nil, false
			}
			if sat {
				continue
			}
			var unassigned *classical.Literal
			count := 0
			for i := range cl {
				if _, present := assign[cl[i].Name]; !present {
					count++
					unassigned = &cl[i]
					if count > 1 {
						break
					}
				}
			}
			if count == 1 {
				assign[unassigned.Name] = !unassigned.Negated
				changed = true
			}
		}
	}
	return assign, true
}

// pickUnassigned returns an arbitrary variable referenced by clauses
// that assign does not yet cover.
func pickUnassigned(clauses []classical.Clause, assign Assignment) (classical.Var, bool) {
	for _, cl := range clauses {
		for _, l := range cl {
			if _, present := assign[l.Name]; !present {
				return l.Name, true
			}
		}
	}
	return "", false
}

func cloneAssignment(a Assignment) Assignment {
	c := make(Assignment, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}
