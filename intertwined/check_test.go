package intertwined

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nano-o/tvl/quorum"
	"github.com/nano-o/tvl/solver"
)

func internOrFail(t *testing.T, pool *quorum.Pool, threshold int, validators []string, inner []*quorum.QuorumSet) *quorum.QuorumSet {
	t.Helper()
	q, err := pool.Intern(threshold, validators, inner)
	require.NoError(t, err)
	return q
}

// TestCheckNetworkTwoDisjointCyclesPlusWitness pins spec.md §8.3
// scenario 6: two disjoint 2-cycles A<->B, C<->D, plus E whose quorum
// is (2, {}, [(1,{A,B},{}), (1,{C,D},{})]). Network is not
// intertwined; (A,B) and (A,E) and (D,E) are; (A,C) is not.
func TestCheckNetworkTwoDisjointCyclesPlusWitness(t *testing.T) {
	pool := quorum.NewPool()
	qa := internOrFail(t, pool, 1, []string{"B"}, nil)
	qb := internOrFail(t, pool, 1, []string{"A"}, nil)
	qc := internOrFail(t, pool, 1, []string{"D"}, nil)
	qd := internOrFail(t, pool, 1, []string{"C"}, nil)
	innerAB := internOrFail(t, pool, 1, []string{"A", "B"}, nil)
	innerCD := internOrFail(t, pool, 1, []string{"C", "D"}, nil)
	qe := internOrFail(t, pool, 2, nil, []*quorum.QuorumSet{innerAB, innerCD})

	n := quorum.NewNetwork(map[string]*quorum.QuorumSet{
		"A": qa, "B": qb, "C": qc, "D": qd, "E": qe,
	}, pool)
	require.NoError(t, n.SanityCheck())

	adapter := solver.NewBacktracking()
	ctx := context.Background()

	netResult, err := CheckNetwork(ctx, n, adapter)
	require.NoError(t, err)
	require.Equal(t, False, netResult)

	ab, err := CheckPair(ctx, n, "A", "B", adapter)
	require.NoError(t, err)
	require.Equal(t, True, ab)

	ae, err := CheckPair(ctx, n, "A", "E", adapter)
	require.NoError(t, err)
	require.Equal(t, True, ae)

	de, err := CheckPair(ctx, n, "D", "E", adapter)
	require.NoError(t, err)
	require.Equal(t, True, de)

	ac, err := CheckPair(ctx, n, "A", "C", adapter)
	require.NoError(t, err)
	require.Equal(t, False, ac)
}

func TestCheckPairRejectsUnknownValidator(t *testing.T) {
	pool := quorum.NewPool()
	qa := internOrFail(t, pool, 1, []string{"A"}, nil)
	n := quorum.NewNetwork(map[string]*quorum.QuorumSet{"A": qa}, pool)

	_, err := CheckPair(context.Background(), n, "A", "GHOST", solver.NewBacktracking())
	require.Error(t, err)
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "true", True.String())
	require.Equal(t, "false", False.String())
	require.Equal(t, "unknown", Unknown.String())
}
