package closure

import (
	"sort"
	"time"

	"github.com/nano-o/tvl/quorum"
	"github.com/nano-o/tvl/tvl"
)

// Intertwined is the pairwise intertwinedness predicate of spec.md
// §4.D: intertwined(p,q) := (sym(p) & sym(q)) | (¬sym(p) & ¬sym(q)).
func Intertwined(p, q string) tvl.Formula {
	symP, symQ := ValidatorSymbol(p), ValidatorSymbol(q)
	return tvl.Or{
		X: tvl.And{X: symP, Y: symQ},
		Y: tvl.And{X: tvl.Not{X: symP}, Y: tvl.Not{X: symQ}},
	}
}

// NetInt is the "is the whole network intertwined?" obligation of
// spec.md §4.D. A single-validator network is trivially intertwined
// (there are no distinct pairs to check). metrics is optional; pass
// none to skip instrumentation.
func NetInt(n *quorum.Network, metrics ...*BuildMetrics) tvl.Formula {
	ids := sortedValidatorIDs(n)
	if len(ids) <= 1 {
		return tvl.Not{X: tvl.FormulaF}
	}

	var pairs []tvl.Formula
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			pairs = append(pairs, Intertwined(ids[i], ids[j]))
		}
	}
	return tvl.Dimp(timedClosedAx(n, firstMetrics(metrics)), tvl.AndAll(pairs))
}

// PairInt is "are these two specific validators intertwined?"
// (spec.md §4.D).
func PairInt(n *quorum.Network, p, q string, metrics ...*BuildMetrics) tvl.Formula {
	return tvl.Dimp(timedClosedAx(n, firstMetrics(metrics)), Intertwined(p, q))
}

func firstMetrics(metrics []*BuildMetrics) *BuildMetrics {
	if len(metrics) == 0 {
		return nil
	}
	return metrics[0]
}

// timedClosedAx builds n's closure axiom, recording the build
// duration and conjunct count on m if non-nil.
func timedClosedAx(n *quorum.Network, m *BuildMetrics) tvl.Formula {
	start := time.Now()
	ax := ClosedAx(n)
	// ClosedAx contributes one positive and one negative axiom per
	// validator and per reachable quorum set.
	m.Observe(time.Since(start).Seconds(), 2*(len(n.Qsets())+len(n.Validators)))
	return ax
}

func sortedValidatorIDs(n *quorum.Network) []string {
	ids := make([]string, 0, len(n.Validators))
	for id := range n.Validators {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
