package closure

import (
	"sort"

	"github.com/nano-o/tvl/quorum"
	"github.com/nano-o/tvl/tvl"
)

// lhsPair holds the two conjunctions that depend only on a quorum
// set's shape (element symbols and threshold), not on which entity is
// asserting them.
type lhsPair struct {
	pos tvl.Formula // AND over witnesses w of (OR_{x in w} sym(x))
	neg tvl.Formula // AND over witnesses w of (OR_{x in w} Not(sym(x)))
}

// builder accumulates a network's closure axiom. Its cache is scoped
// to one ClosedAx call (spec.md §5: "the LHS cache is scoped to a
// single closed_ax invocation and destroyed on return"), keyed by
// *quorum.QuorumSet pointer — safe because Pool interning guarantees
// structural equality coincides with pointer identity, so this is
// exactly the "cache each LHS per quorum-set identity" the spec calls
// for, not an approximation of it.
type builder struct {
	cache map[*quorum.QuorumSet]lhsPair
}

func newBuilder() *builder {
	return &builder{cache: make(map[*quorum.QuorumSet]lhsPair)}
}

// lhsFor computes (and memoizes) q's positive/negative LHS conjunctions.
func (b *builder) lhsFor(q *quorum.QuorumSet) lhsPair {
	if cached, ok := b.cache[q]; ok {
		return cached
	}

	syms := elementSymbols(q)
	var witnesses [][]tvl.Formula
	combinations(syms, q.Threshold, func(w []tvl.Formula) {
		witnesses = append(witnesses, append([]tvl.Formula(nil), w...))
	})

	posClauses := make([]tvl.Formula, len(witnesses))
	negClauses := make([]tvl.Formula, len(witnesses))
	for i, w := range witnesses {
		posClauses[i] = tvl.OrAll(w)
		negated := make([]tvl.Formula, len(w))
		for j, x := range w {
			negated[j] = tvl.Not{X: x}
		}
		negClauses[i] = tvl.OrAll(negated)
	}

	pair := lhsPair{pos: tvl.AndAll(posClauses), neg: tvl.AndAll(negClauses)}
	b.cache[q] = pair
	return pair
}

// axiomsFor returns entity e's (whose agreement is tracked by sym, and
// whose threshold structure is q) positive and negative axioms per
// spec.md §4.D:
//
//	positive: Dimp(LHS+(q), sym)
//	negative: Dimp(LHS-(q), ¬sym)
func (b *builder) axiomsFor(sym tvl.Formula, q *quorum.QuorumSet) (positive, negative tvl.Formula) {
	pair := b.lhsFor(q)
	return tvl.Dimp(pair.pos, sym), tvl.Dimp(pair.neg, tvl.Not{X: sym})
}

// elementSymbols returns the symbol for each direct member of q
// (validators first in sorted order, then inner quorum sets in
// canonical order), the "E = validators ∪ inner" of spec.md §3.3/§4.D.
func elementSymbols(q *quorum.QuorumSet) []tvl.Formula {
	vs := q.Validators.List()
	sort.Strings(vs)
	syms := make([]tvl.Formula, 0, len(vs)+len(q.Inner))
	for _, v := range vs {
		syms = append(syms, ValidatorSymbol(v))
	}
	for _, inner := range q.Inner {
		syms = append(syms, QSetSymbol(inner))
	}
	return syms
}

// combinations calls fn once for every k-element sub-slice of elems.
func combinations(elems []tvl.Formula, k int, fn func([]tvl.Formula)) {
	n := len(elems)
	if k < 0 || k > n {
		return
	}
	if k == 0 {
		fn(nil)
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		chosen := make([]tvl.Formula, k)
		for i, j := range idx {
			chosen[i] = elems[j]
		}
		fn(chosen)

		i := k - 1
		for i >= 0 && idx[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
