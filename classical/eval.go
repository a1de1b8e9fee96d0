package classical

// Assignment maps variables to truth values. Defined here (rather than
// imported from solver) so classical has no dependency on its own
// consumers.
type Assignment map[Var]bool

// Eval evaluates f under a total assignment. Panics if f's value
// cannot be determined from assign (a variable it needs is not
// covered) — callers that only have a partial assignment should use
// PartialEval instead.
func Eval(f Formula, assign Assignment) bool {
	v, ok := PartialEval(f, assign)
	if !ok {
		panic("classical: Eval called with an incomplete assignment")
	}
	return v
}

// PartialEval evaluates f under a partial assignment with three-valued
// short-circuiting: an Or already known true, or an And already known
// false, needs no further information from its other branch. ok is
// false when f's value cannot yet be determined from assign.
//
// This is what lets the overlay synthesizer's branch-and-bound prune a
// partial edge assignment the moment a hard constraint is violated,
// without waiting for every variable to be decided.
func PartialEval(f Formula, assign Assignment) (value, ok bool) {
	switch n := f.(type) {
	case Lit:
		v, present := assign[n.Name]
		return v, present
	case Not:
		v, ok := PartialEval(n.X, assign)
		if !ok {
			return false, false
		}
		return !v, true
	case And:
		xv, xok := PartialEval(n.X, assign)
		if xok && !xv {
			return false, true
		}
		yv, yok := PartialEval(n.Y, assign)
		if yok && !yv {
			return false, true
		}
		if xok && yok {
			return xv && yv, true
		}
		return false, false
	case Or:
		xv, xok := PartialEval(n.X, assign)
		if xok && xv {
			return true, true
		}
		yv, yok := PartialEval(n.Y, assign)
		if yok && yv {
			return true, true
		}
		if xok && yok {
			return xv || yv, true
		}
		return false, false
	case Implies:
		xv, xok := PartialEval(n.X, assign)
		if xok && !xv {
			return true, true
		}
		yv, yok := PartialEval(n.Y, assign)
		if yok && yv {
			return true, true
		}
		if xok && yok {
			return (!xv) || yv, true
		}
		return false, false
	default:
		panic("classical: unknown formula node in PartialEval")
	}
}

// Vars returns the distinct variables referenced by f, in first-seen
// order.
func Vars(f Formula) []Var {
	seen := map[Var]bool{}
	var order []Var
	var walk func(Formula)
	walk = func(f Formula) {
		switch n := f.(type) {
		case Lit:
			if !seen[n.Name] {
				seen[n.Name] = true
				order = append(order, n.Name)
			}
		case Not:
			walk(n.X)
		case And:
			walk(n.X)
			walk(n.Y)
		case Or:
			walk(n.X)
			walk(n.Y)
		case Implies:
			walk(n.X)
			walk(n.Y)
		}
	}
	walk(f)
	return order
}
