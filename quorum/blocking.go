package quorum

import (
	"sort"
	"strings"

	"github.com/nano-o/tvl/utils/set"
)

// element is a member of a quorum set's threshold structure: either a
// leaf validator or a nested quorum set.
type element struct {
	validator string
	inner     *QuorumSet
	isLeaf    bool
}

func leafElements(q *QuorumSet) []element {
	vs := q.Validators.List()
	out := make([]element, 0, len(vs)+len(q.Inner))
	for _, v := range vs {
		out = append(out, element{validator: v, isLeaf: true})
	}
	for _, inner := range q.Inner {
		out = append(out, element{inner: inner})
	}
	return out
}

// BlockingFamily is the set of sets of validator ids returned by
// Blocking. Represented as a slice rather than a set-of-sets because
// set.Set[T] requires a comparable T; deduplication of identical
// blocking sets is not part of the spec (the family may legitimately
// contain duplicates produced by distinct combinations that happen to
// union to the same validator set — callers that need a true set
// dedupe by a sorted-member key, see Minimal).
type BlockingFamily []set.Set[string]

// Blocking computes Q's blocking-set family per spec.md §3.3: every
// combination of |E|-t+1 elements of E = validators ∪ inner, with each
// chosen inner element contributing one of its own blocking sets,
// unioned together.
//
//	blocking(Q) = ⋃_{C ∈ combinations(E, |E|-t+1)} { ⋃ b_e : e ∈ C, b_e ∈ blocking(e) }
//	blocking(v) = {{v}} for a leaf validator v
func Blocking(q *QuorumSet) BlockingFamily {
	elems := leafElements(q)
	k := len(elems) - q.Threshold + 1
	var out BlockingFamily
	combinations(elems, k, func(chosen []element) {
		out = append(out, oneOfEachUnion(chosen)...)
	})
	return out
}

// oneOfEachUnion returns, for each way of picking one blocking set
// from each chosen element's own blocking family, the union of the
// picked sets. A leaf validator contributes exactly {{v}}. Picking
// from zero elements yields {∅} (spec.md §9's resolved open question),
// which makes this the identity for the fold below.
func oneOfEachUnion(chosen []element) BlockingFamily {
	families := make([]BlockingFamily, len(chosen))
	for i, e := range chosen {
		if e.isLeaf {
			families[i] = BlockingFamily{set.Of(e.validator)}
		} else {
			families[i] = Blocking(e.inner)
		}
	}
	return oneOfEach(families)
}

// oneOfEach returns the set of unions obtained by picking one set from
// each family and unioning the picks. oneOfEach(nil) == {∅}.
func oneOfEach(families []BlockingFamily) BlockingFamily {
	if len(families) == 0 {
		return BlockingFamily{set.NewSet[string](0)}
	}
	rest := oneOfEach(families[1:])
	out := make(BlockingFamily, 0, len(families[0])*len(rest))
	for _, pick := range families[0] {
		for _, tail := range rest {
			union := set.NewSet[string](pick.Len() + tail.Len())
			union.Union(pick)
			union.Union(tail)
			out = append(out, union)
		}
	}
	return out
}

// combinations calls fn once for every k-element sub-slice of elems,
// in lexicographic index order, without allocating the full power set
// up front.
func combinations(elems []element, k int, fn func([]element)) {
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
		chosen := make([]element, k)
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

// Minimal filters a blocking family down to its minimal elements by
// set inclusion (spec.md §9's resolved open question, used by the
// overlay synthesizer's slice-coverage constraint).
func Minimal(family BlockingFamily) BlockingFamily {
	keys := make([]string, len(family))
	for i, b := range family {
		keys[i] = setKey(b)
	}

	var out BlockingFamily
	for i, b := range family {
		minimal := true
		for j, other := range family {
			if i == j || keys[i] == keys[j] {
				continue
			}
			if isSubset(other, b) {
				minimal = false
				break
			}
		}
		if minimal {
			out = append(out, b)
		}
	}
	return dedupe(out)
}

func isSubset(sub, super set.Set[string]) bool {
	if sub.Len() >= super.Len() {
		return false
	}
	for _, e := range sub.List() {
		if !super.Contains(e) {
			return false
		}
	}
	return true
}

func dedupe(family BlockingFamily) BlockingFamily {
	seen := make(map[string]bool, len(family))
	var out BlockingFamily
	for _, b := range family {
		key := setKey(b)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, b)
	}
	return out
}

// setKey renders b's members in sorted order, so equal sets get the
// same key whatever the map iteration order.
func setKey(b set.Set[string]) string {
	members := b.List()
	sort.Strings(members)
	return strings.Join(members, "\x00")
}
