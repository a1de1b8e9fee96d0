package quorum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func twoCycleNetwork(t *testing.T) *Network {
	t.Helper()
	pool := NewPool()
	qa := intern(t, pool, 1, []string{"B"}, nil)
	qb := intern(t, pool, 1, []string{"A"}, nil)
	return NewNetwork(map[string]*QuorumSet{"A": qa, "B": qb}, pool)
}

func TestSanityCheckAcceptsWellFormedNetwork(t *testing.T) {
	n := twoCycleNetwork(t)
	require.NoError(t, n.SanityCheck())
}

func TestSanityCheckRejectsUnknownValidator(t *testing.T) {
	pool := NewPool()
	qa := intern(t, pool, 1, []string{"GHOST"}, nil)
	n := NewNetwork(map[string]*QuorumSet{"A": qa}, pool)

	err := n.SanityCheck()
	require.ErrorIs(t, err, ErrUnknownValidator)
}

func TestSanityCheckRejectsEmptyNetwork(t *testing.T) {
	n := NewNetwork(map[string]*QuorumSet{}, NewPool())
	require.ErrorIs(t, n.SanityCheck(), ErrEmptyNetwork)
}

// TestInterningCollapsesEqualQuorumSets pins spec.md §8.1's interning
// invariant: structurally-equal quorum sets, even built from separate
// Intern calls, are the identical *QuorumSet instance.
func TestInterningCollapsesEqualQuorumSets(t *testing.T) {
	pool := NewPool()
	q1 := intern(t, pool, 2, []string{"A", "B", "C"}, nil)
	q2 := intern(t, pool, 2, []string{"C", "B", "A"}, nil) // different order
	require.True(t, q1 == q2, "structurally equal quorum sets must be the same instance")
}

func TestMostFrequentQSet(t *testing.T) {
	pool := NewPool()
	common := intern(t, pool, 1, []string{"X"}, nil)
	rare := intern(t, pool, 1, []string{"Y"}, nil)
	n := NewNetwork(map[string]*QuorumSet{
		"A": common, "B": common, "C": common, "D": rare,
	}, pool)

	got, err := n.MostFrequentQSet()
	require.NoError(t, err)
	require.Equal(t, common, got)
}

func TestTopTier(t *testing.T) {
	pool := NewPool()
	common := intern(t, pool, 2, []string{"A", "B"}, nil)
	rare := intern(t, pool, 1, []string{"A"}, nil)
	n := NewNetwork(map[string]*QuorumSet{
		"A": common, "B": common, "C": rare,
	}, pool)

	top, err := n.TopTier()
	require.NoError(t, err)
	require.Len(t, top.Validators, 2)
	require.Contains(t, top.Validators, "A")
	require.Contains(t, top.Validators, "B")
}

// TestSimplifyKeysIdempotent pins spec.md §8.1: simplify_keys applied
// twice is equivalent to applying it once, up to the trivial identity
// remapping of already-simplified keys.
func TestSimplifyKeysIdempotent(t *testing.T) {
	n := twoCycleNetwork(t)

	once, err := n.SimplifyKeys()
	require.NoError(t, err)

	twice, err := once.SimplifyKeys()
	require.NoError(t, err)

	require.Equal(t, len(once.Validators), len(twice.Validators))
	for id, q := range once.Validators {
		q2, ok := twice.Validators[id]
		require.True(t, ok)
		require.Equal(t, q.Threshold, q2.Threshold)
		require.Equal(t, q.Validators.List(), q2.Validators.List())
	}
}

func TestMembersTransitive(t *testing.T) {
	pool := NewPool()
	inner := intern(t, pool, 1, []string{"X", "Y"}, nil)
	q := intern(t, pool, 2, []string{"A", "B"}, []*QuorumSet{inner})

	members := Members(q)
	require.Equal(t, 4, members.Len())
	for _, v := range []string{"A", "B", "X", "Y"} {
		require.True(t, members.Contains(v))
	}
}
