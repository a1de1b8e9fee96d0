package quorum

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nano-o/tvl/utils/set"
)

// sortedFamily renders a BlockingFamily as a sorted slice of sorted
// validator-id slices, for order-independent comparison against the
// spec.md §8.2 reference table.
func sortedFamily(f BlockingFamily) [][]string {
	out := make([][]string, len(f))
	for i, s := range f {
		members := s.List()
		sort.Strings(members)
		out[i] = members
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		for k := 0; k < len(a) && k < len(b); k++ {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return len(a) < len(b)
	})
	return out
}

func intern(t *testing.T, pool *Pool, threshold int, validators []string, inner []*QuorumSet) *QuorumSet {
	t.Helper()
	q, err := pool.Intern(threshold, validators, inner)
	require.NoError(t, err)
	return q
}

// TestBlockingReferenceCases pins every row of spec.md §8.2 exactly.
func TestBlockingReferenceCases(t *testing.T) {
	t.Run("single slice of two", func(t *testing.T) {
		pool := NewPool()
		q := intern(t, pool, 1, []string{"A", "B"}, nil)
		got := sortedFamily(Blocking(q))
		want := [][]string{{"A", "B"}}
		require.Equal(t, want, got)
	})

	t.Run("two of three", func(t *testing.T) {
		pool := NewPool()
		q := intern(t, pool, 2, []string{"A", "B", "C"}, nil)
		got := sortedFamily(Blocking(q))
		want := [][]string{{"A", "B"}, {"A", "C"}, {"B", "C"}}
		require.Equal(t, want, got)
	})

	t.Run("three of three plus one nested inner", func(t *testing.T) {
		pool := NewPool()
		innerQ := intern(t, pool, 2, []string{"1", "2", "3"}, nil)
		q := intern(t, pool, 3, []string{"A", "B", "C"}, []*QuorumSet{innerQ})
		got := sortedFamily(Blocking(q))
		want := [][]string{
			{"A", "B"}, {"A", "C"}, {"B", "C"},
			{"A", "1", "2"}, {"A", "1", "3"}, {"A", "2", "3"},
			{"B", "1", "2"}, {"B", "1", "3"}, {"B", "2", "3"},
			{"C", "1", "2"}, {"C", "1", "3"}, {"C", "2", "3"},
		}
		for i := range want {
			sort.Strings(want[i])
		}
		sort.Slice(want, func(i, j int) bool {
			a, b := want[i], want[j]
			for k := 0; k < len(a) && k < len(b); k++ {
				if a[k] != b[k] {
					return a[k] < b[k]
				}
			}
			return len(a) < len(b)
		})
		require.Equal(t, want, got)
	})

	t.Run("one of two nested, no direct validators", func(t *testing.T) {
		pool := NewPool()
		left := intern(t, pool, 2, []string{"1", "2", "3"}, nil)
		right := intern(t, pool, 2, []string{"A", "B", "C"}, nil)
		q := intern(t, pool, 1, nil, []*QuorumSet{left, right})
		got := sortedFamily(Blocking(q))
		require.Len(t, got, 9)
		for _, b := range got {
			require.Len(t, b, 4)
		}
	})
}

// TestBlockingWellFormed pins spec.md §8.1's "every blocking set is a
// subset of members(Q)" invariant.
func TestBlockingWellFormed(t *testing.T) {
	pool := NewPool()
	innerQ := intern(t, pool, 1, []string{"X", "Y"}, nil)
	q := intern(t, pool, 2, []string{"A", "B"}, []*QuorumSet{innerQ})

	members := Members(q)
	for _, b := range Blocking(q) {
		for _, v := range b.List() {
			require.True(t, members.Contains(v), "blocking set member %s not in members(Q)", v)
		}
	}
}

// TestMinimalDropsSupersets checks Minimal filters out non-minimal
// elements while keeping all minimal ones, using set inclusion
// (spec.md §9's resolved open question).
func TestMinimalDropsSupersets(t *testing.T) {
	family := BlockingFamily{
		set.Of("A"),
		set.Of("A", "B"),
		set.Of("C", "D"),
	}
	got := sortedFamily(Minimal(family))
	want := [][]string{{"A"}, {"C", "D"}}
	require.Equal(t, want, got)
}

func TestOneOfEachEmptyIsSingletonOfEmptySet(t *testing.T) {
	out := oneOfEach(nil)
	require.Len(t, out, 1)
	require.Equal(t, 0, out[0].Len())
}
