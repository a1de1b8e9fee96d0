package closure

import (
	"sort"

	"github.com/nano-o/tvl/quorum"
	"github.com/nano-o/tvl/tvl"
)

// ClosedAx builds the closure axiom of a network: the conjunction of
// every validator's and every reachable quorum set's (validators' own
// and nested inner ones, as returned by Network.Qsets) positive and
// negative agreement axioms (spec.md §4.D). Validators are
// iterated in sorted order and quorum sets in their canonical
// (fingerprint) order so that the resulting formula's structure
// (though not, of course, its semantics) is reproducible across runs.
func ClosedAx(n *quorum.Network) tvl.Formula {
	b := newBuilder()

	ids := make([]string, 0, len(n.Validators))
	for id := range n.Validators {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var conjuncts []tvl.Formula
	for _, id := range ids {
		pos, neg := b.axiomsFor(ValidatorSymbol(id), n.Validators[id])
		conjuncts = append(conjuncts, pos, neg)
	}
	for _, q := range n.Qsets() {
		pos, neg := b.axiomsFor(QSetSymbol(q), q)
		conjuncts = append(conjuncts, pos, neg)
	}

	if len(conjuncts) == 0 {
		return tvl.Not{X: tvl.FormulaF}
	}
	return tvl.AndAll(conjuncts)
}
