package tvl

import (
	"fmt"

	"github.com/nano-o/tvl/classical"
)

// encoder performs the single post-order walk described in spec.md
// §4.A: every subformula is visited once (memoized by structural
// value, which in this package's closed, field-comparable formula
// representation coincides with the hash-consing identity the spec
// calls for), and contributes the exclusion constraint plus its
// constructor's truth-table implications.
type encoder struct {
	isTB        map[Formula]classical.Var
	isFB        map[Formula]classical.Var
	constraints []classical.Formula
	next        int
}

func newEncoder() *encoder {
	return &encoder{
		isTB: map[Formula]classical.Var{},
		isFB: map[Formula]classical.Var{},
	}
}

// symbolsFor returns (and lazily allocates) the pair of classical
// symbols standing for "ψ is T or B" and "ψ is F or B". Names are a
// deterministic function of visit order over ψ's own structure, so
// translating the same formula twice reproduces the same names.
func (e *encoder) symbolsFor(f Formula) (tb, fb classical.Var, fresh bool) {
	if tb, ok := e.isTB[f]; ok {
		return tb, e.isFB[f], false
	}
	e.next++
	tb = classical.Var(fmt.Sprintf("is_TB(%d)", e.next))
	fb = classical.Var(fmt.Sprintf("is_FB(%d)", e.next))
	e.isTB[f] = tb
	e.isFB[f] = fb
	return tb, fb, true
}

func (e *encoder) isT(f Formula) classical.Formula {
	tb, fb := e.isTB[f], e.isFB[f]
	return classical.And{X: classical.Lit{Name: tb}, Y: classical.Not{X: classical.Lit{Name: fb}}}
}

func (e *encoder) isB(f Formula) classical.Formula {
	tb, fb := e.isTB[f], e.isFB[f]
	return classical.And{X: classical.Lit{Name: tb}, Y: classical.Lit{Name: fb}}
}

func (e *encoder) isF(f Formula) classical.Formula {
	tb, fb := e.isTB[f], e.isFB[f]
	return classical.And{X: classical.Not{X: classical.Lit{Name: tb}}, Y: classical.Lit{Name: fb}}
}

// walk visits f in post order, memoized, accumulating constraints.
func (e *encoder) walk(f Formula) {
	if _, ok := e.isTB[f]; ok {
		return // already visited this exact subformula
	}

	switch n := f.(type) {
	case Var:
		e.symbolsFor(f)
		e.addExclusion(f)
	case FConst:
		e.symbolsFor(f)
		e.addExclusion(f)
		tb, fb := e.isTB[f], e.isFB[f]
		e.constraints = append(e.constraints, classical.And{
			X: classical.Not{X: classical.Lit{Name: tb}},
			Y: classical.Lit{Name: fb},
		})
	case Not:
		e.walk(n.X)
		e.symbolsFor(f)
		e.addExclusion(f)
		e.constraints = append(e.constraints, classical.AndAll([]classical.Formula{
			classical.Implies{X: e.isT(n.X), Y: e.isF(f)},
			classical.Implies{X: e.isB(n.X), Y: e.isB(f)},
			classical.Implies{X: e.isF(n.X), Y: e.isT(f)},
		}))
	case And:
		e.walk(n.X)
		e.walk(n.Y)
		e.symbolsFor(f)
		e.addExclusion(f)
		e.constraints = append(e.constraints, e.andTable(n.X, n.Y, f))
	case Or:
		e.walk(n.X)
		e.walk(n.Y)
		e.symbolsFor(f)
		e.addExclusion(f)
		e.constraints = append(e.constraints, e.orTable(n.X, n.Y, f))
	case Diamond:
		e.walk(n.X)
		e.symbolsFor(f)
		e.addExclusion(f)
		e.constraints = append(e.constraints, classical.AndAll([]classical.Formula{
			classical.Implies{X: e.isT(n.X), Y: e.isT(f)},
			classical.Implies{X: e.isB(n.X), Y: e.isT(f)},
			classical.Implies{X: e.isF(n.X), Y: e.isF(f)},
		}))
	default:
		panic(fmt.Sprintf("tvl: unknown formula node %T", f))
	}
}

func (e *encoder) addExclusion(f Formula) {
	tb, fb := e.isTB[f], e.isFB[f]
	e.constraints = append(e.constraints, classical.Or{X: classical.Lit{Name: tb}, Y: classical.Lit{Name: fb}})
}

// andTable asserts the nine truth-table implications for And{left,right}=formula.
func (e *encoder) andTable(left, right, formula Formula) classical.Formula {
	cells := []struct {
		l, r func(Formula) classical.Formula
		res  func(Formula) classical.Formula
	}{
		{e.isT, e.isT, e.isT}, {e.isT, e.isB, e.isB}, {e.isT, e.isF, e.isF},
		{e.isB, e.isT, e.isB}, {e.isB, e.isB, e.isB}, {e.isB, e.isF, e.isF},
		{e.isF, e.isT, e.isF}, {e.isF, e.isB, e.isF}, {e.isF, e.isF, e.isF},
	}
	return e.tableConstraints(left, right, formula, cells)
}

// orTable asserts the nine truth-table implications for Or{left,right}=formula.
func (e *encoder) orTable(left, right, formula Formula) classical.Formula {
	cells := []struct {
		l, r func(Formula) classical.Formula
		res  func(Formula) classical.Formula
	}{
		{e.isT, e.isT, e.isT}, {e.isT, e.isB, e.isT}, {e.isT, e.isF, e.isT},
		{e.isB, e.isT, e.isT}, {e.isB, e.isB, e.isB}, {e.isB, e.isF, e.isB},
		{e.isF, e.isT, e.isT}, {e.isF, e.isB, e.isB}, {e.isF, e.isF, e.isF},
	}
	return e.tableConstraints(left, right, formula, cells)
}

func (e *encoder) tableConstraints(left, right, formula Formula, cells []struct {
	l, r func(Formula) classical.Formula
	res  func(Formula) classical.Formula
}) classical.Formula {
	fs := make([]classical.Formula, len(cells))
	for i, c := range cells {
		fs[i] = classical.Implies{
			X: classical.And{X: c.l(left), Y: c.r(right)},
			Y: c.res(formula),
		}
	}
	return classical.AndAll(fs)
}

// Encoded holds the result of translating a three-valued formula: the
// accumulated classical constraints (C(φ) in spec.md §4.A) and the
// symbol standing for "φ is T or B".
type Encoded struct {
	Constraints []classical.Formula
	IsTB        classical.Var
}

// Encode runs the post-order walk over φ and returns its classical
// encoding.
func Encode(phi Formula) Encoded {
	e := newEncoder()
	e.walk(phi)
	return Encoded{Constraints: e.constraints, IsTB: e.isTB[phi]}
}

// TranslateForValidity returns the classical formula that is valid iff
// φ is three-valued-valid: C(φ) -> is_TB(φ).
func TranslateForValidity(phi Formula) classical.Formula {
	enc := Encode(phi)
	return classical.Implies{X: classical.AndAll(enc.Constraints), Y: classical.Lit{Name: enc.IsTB}}
}

// TranslateForSatisfiability returns the classical formula that is
// satisfiable iff φ is three-valued-satisfiable: C(φ) & is_TB(φ).
func TranslateForSatisfiability(phi Formula) classical.Formula {
	enc := Encode(phi)
	return classical.And{X: classical.AndAll(enc.Constraints), Y: classical.Lit{Name: enc.IsTB}}
}
