package classical

import "fmt"

// Literal is a possibly-negated occurrence of a variable in a clause.
type Literal struct {
	Name    Var
	Negated bool
}

// Clause is a disjunction of literals.
type Clause []Literal

// CNF is a conjunction of clauses.
type CNF struct {
	Clauses []Clause
	// Top is the variable asserted true by the caller of Tseitin; it
	// stands for the original formula's truth value.
	Top Var
}

// tseitinState generates fresh gate variables deterministically by
// counting, not by hashing formula identity — CNF auxiliary variables
// are solver-internal and never observed outside this package, so
// stability across calls is not required the way it is for tvl's
// is_TB/is_FB symbol names.
type tseitinState struct {
	next    int
	clauses []Clause
}

func (s *tseitinState) fresh() Var {
	s.next++
	return Var(fmt.Sprintf("$g%d", s.next))
}

func (s *tseitinState) add(c Clause) {
	s.clauses = append(s.clauses, c)
}

func lit(v Var) Literal    { return Literal{Name: v} }
func negLit(v Var) Literal { return Literal{Name: v, Negated: true} }

// Tseitin converts an arbitrary Formula into an equisatisfiable CNF: f
// is satisfiable iff the returned CNF (including the unit clause
// asserting Top) is satisfiable. This is the only place in the module
// that needs a SAT-specific representation; everything upstream deals
// in Formula values.
func Tseitin(f Formula) CNF {
	s := &tseitinState{}
	top := s.convert(f)
	s.add(Clause{lit(top)})
	return CNF{Clauses: s.clauses, Top: top}
}

// convert returns a variable g such that g <-> f is asserted among
// s.clauses, recursing structurally over the four compound
// constructors plus the variable leaf.
func (s *tseitinState) convert(f Formula) Var {
	switch n := f.(type) {
	case Lit:
		return n.Name
	case Not:
		x := s.convert(n.X)
		g := s.fresh()
		// g <-> !x
		s.add(Clause{negLit(g), negLit(x)})
		s.add(Clause{lit(g), lit(x)})
		return g
	case And:
		x := s.convert(n.X)
		y := s.convert(n.Y)
		g := s.fresh()
		// g <-> (x & y)
		s.add(Clause{negLit(g), lit(x)})
		s.add(Clause{negLit(g), lit(y)})
		s.add(Clause{lit(g), negLit(x), negLit(y)})
		return g
	case Or:
		x := s.convert(n.X)
		y := s.convert(n.Y)
		g := s.fresh()
		// g <-> (x | y)
		s.add(Clause{lit(g), negLit(x)})
		s.add(Clause{lit(g), negLit(y)})
		s.add(Clause{negLit(g), lit(x), lit(y)})
		return g
	case Implies:
		x := s.convert(n.X)
		y := s.convert(n.Y)
		g := s.fresh()
		// g <-> (!x | y)
		s.add(Clause{lit(g), lit(x)})
		s.add(Clause{lit(g), negLit(y)})
		s.add(Clause{negLit(g), negLit(x), lit(y)})
		return g
	default:
		panic(fmt.Sprintf("classical: unknown formula node %T", f))
	}
}
