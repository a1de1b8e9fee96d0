// Package overlay synthesizes a minimum-edge undirected graph over a
// network's validators satisfying slice coverage and diameter <= 2
// (spec component F).
package overlay

import (
	"context"
	"fmt"
	"sort"

	"github.com/nano-o/tvl/classical"
	"github.com/nano-o/tvl/quorum"
	"github.com/nano-o/tvl/solver"
)

// Edge is an unordered pair of validator ids, always stored with
// U < V so two Edge values for the same pair compare equal.
type Edge struct{ U, V string }

func newEdge(a, b string) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{U: a, V: b}
}

func edgeVar(e Edge) classical.Var {
	return classical.Var(fmt.Sprintf("e(%s,%s)", e.U, e.V))
}

// Synthesize computes the minimum-edge overlay graph for n (spec.md
// §4.F). Returns the selected edge set.
func Synthesize(ctx context.Context, n *quorum.Network, adapter solver.Adapter) ([]Edge, error) {
	ids := make([]string, 0, len(n.Validators))
	for id := range n.Validators {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	allEdges := allPairs(ids)
	edgeLits := make(map[Edge]classical.Formula, len(allEdges))
	for _, e := range allEdges {
		edgeLits[e] = classical.Lit{Name: edgeVar(e)}
	}

	var hard []classical.Formula
	hard = append(hard, sliceCoverageConstraints(n, ids, edgeLits)...)
	hard = append(hard, diameterConstraints(ids, edgeLits)...)

	var soft []classical.Formula
	weights := make([]int, 0, len(allEdges))
	for _, e := range allEdges {
		soft = append(soft, classical.Not{X: edgeLits[e]})
		weights = append(weights, 1)
	}

	model, err := adapter.Maximize(ctx, hard, soft, weights)
	if err != nil {
		return nil, err
	}

	var result []Edge
	for _, e := range allEdges {
		if model[edgeVar(e)] {
			result = append(result, e)
		}
	}
	return result, nil
}

func allPairs(ids []string) []Edge {
	var out []Edge
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			out = append(out, newEdge(ids[i], ids[j]))
		}
	}
	return out
}

// sliceCoverageConstraints asserts, for every validator v and every
// minimal blocking set B of v's quorum set not containing v, that v
// has at least one edge into B (spec.md §4.F requirement 1).
func sliceCoverageConstraints(n *quorum.Network, ids []string, edgeLits map[Edge]classical.Formula) []classical.Formula {
	var out []classical.Formula
	for _, v := range ids {
		q := n.Validators[v]
		for _, b := range quorum.Minimal(quorum.Blocking(q)) {
			if b.Contains(v) {
				continue
			}
			members := b.List()
			sort.Strings(members)
			disjuncts := make([]classical.Formula, len(members))
			for i, w := range members {
				disjuncts[i] = edgeLits[newEdge(v, w)]
			}
			out = append(out, classical.OrAll(disjuncts))
		}
	}
	return out
}

// diameterConstraints asserts, for every pair (u,v), that they are
// directly connected or share a common neighbor (spec.md §4.F
// requirement 2).
func diameterConstraints(ids []string, edgeLits map[Edge]classical.Formula) []classical.Formula {
	var out []classical.Formula
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			u, v := ids[i], ids[j]
			disjuncts := []classical.Formula{edgeLits[newEdge(u, v)]}
			for k, w := range ids {
				if k == i || k == j {
					continue
				}
				disjuncts = append(disjuncts, classical.And{
					X: edgeLits[newEdge(u, w)],
					Y: edgeLits[newEdge(w, v)],
				})
			}
			out = append(out, classical.OrAll(disjuncts))
		}
	}
	return out
}
