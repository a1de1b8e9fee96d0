package quorum

import (
	"fmt"
	"sort"

	orgsPkg "github.com/nano-o/tvl/orgs"
	"github.com/nano-o/tvl/utils/wrappers"
)

// maxDepth is the soft recursion bound from spec.md §5: real-world
// inputs nest to depth 2, but pathological or adversarial input must
// not overflow the stack.
const maxDepth = 16

// Network maps validator identifier to the quorum set it advertises,
// plus an optional organization map. Once constructed via NewNetwork
// and validated via SanityCheck, it is treated as immutable.
type Network struct {
	Validators map[string]*QuorumSet
	Orgs       orgsPkg.OrgMap // nil if the network carries no organization data

	pool *Pool
}

// NewNetwork constructs a Network from a validator-id -> quorum-set
// map and the Pool that interned those quorum sets. Callers building a
// network programmatically (tests, generators) share one Pool across
// every QuorumSet they intern so equal quorum sets collapse to one
// instance network-wide.
func NewNetwork(validators map[string]*QuorumSet, pool *Pool) *Network {
	return &Network{Validators: validators, pool: pool}
}

// SanityCheck validates the invariants of spec.md §3.2: unique
// identifiers (guaranteed by Go's map type itself), and every
// validator identifier referenced transitively by a quorum set must
// name a validator in the network. Depth is bounded at maxDepth.
// Aggregates every violation found via wrappers.Errs rather than
// failing on the first one, so a caller sees the whole malformed
// input at once.
func (n *Network) SanityCheck() error {
	if len(n.Validators) == 0 {
		return ErrEmptyNetwork
	}

	var errs wrappers.Errs
	for id, q := range n.Validators {
		errs.Add(n.checkReachable(id, q, 0))
	}
	return errs.Err()
}

func (n *Network) checkReachable(owner string, q *QuorumSet, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("%w: validator %s", ErrMaxDepthExceeded, owner)
	}
	var errs wrappers.Errs
	for _, v := range q.Validators.List() {
		if _, ok := n.Validators[v]; !ok {
			errs.Add(fmt.Errorf("%w: %s referenced from %s's quorum set", ErrUnknownValidator, v, owner))
		}
	}
	for _, inner := range q.Inner {
		errs.Add(n.checkReachable(owner, inner, depth+1))
	}
	return errs.Err()
}

// MostFrequentQSet returns the QuorumSet shared by the largest number
// of validators (spec.md §4.C most_frequent_qset). Ties are broken by
// fingerprint ordering, which is deterministic but otherwise
// arbitrary.
func (n *Network) MostFrequentQSet() (*QuorumSet, error) {
	if len(n.Validators) == 0 {
		return nil, ErrEmptyNetwork
	}
	counts := make(map[Fingerprint]int)
	sets := make(map[Fingerprint]*QuorumSet)
	for _, q := range n.Validators {
		fp := q.Fingerprint()
		counts[fp]++
		sets[fp] = q
	}

	var best *QuorumSet
	bestCount := -1
	var bestFP Fingerprint
	for fp, c := range counts {
		if c > bestCount || (c == bestCount && fingerprintLess(fp, bestFP)) {
			best = sets[fp]
			bestCount = c
			bestFP = fp
		}
	}
	return best, nil
}

// TopTier returns the subnetwork whose validator set equals
// members(most_frequent_qset(N)) (spec.md §4.C top_tier).
func (n *Network) TopTier() (*Network, error) {
	q, err := n.MostFrequentQSet()
	if err != nil {
		return nil, err
	}
	members := Members(q)

	sub := make(map[string]*QuorumSet, members.Len())
	for _, v := range members.List() {
		qv, ok := n.Validators[v]
		if !ok {
			return nil, fmt.Errorf("%w: top-tier member %s", ErrUnknownValidator, v)
		}
		sub[v] = qv
	}
	return &Network{Validators: sub, Orgs: n.Orgs, pool: n.pool}, nil
}

// SimplifyKeys returns an equivalent network with validator ids
// remapped to "1", "2", …, "n" in a deterministic (sorted) order,
// preserving quorum-set equivalence classes (spec.md §3.2).
func (n *Network) SimplifyKeys() (*Network, error) {
	ids := make([]string, 0, len(n.Validators))
	for id := range n.Validators {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rename := make(map[string]string, len(ids))
	for i, id := range ids {
		rename[id] = fmt.Sprintf("%d", i+1)
	}

	pool := NewPool()
	remapped := make(map[string]*QuorumSet, len(ids))
	cache := make(map[Fingerprint]*QuorumSet)
	for _, id := range ids {
		q, err := remapQSet(n.Validators[id], rename, pool, cache)
		if err != nil {
			return nil, err
		}
		remapped[rename[id]] = q
	}

	var remappedOrgs orgsPkg.OrgMap
	if n.Orgs != nil {
		remappedOrgs = make(orgsPkg.OrgMap, len(n.Orgs))
		for name, members := range n.Orgs {
			renamed := make([]string, len(members))
			for i, m := range members {
				if r, ok := rename[m]; ok {
					renamed[i] = r
				} else {
					renamed[i] = m
				}
			}
			remappedOrgs[name] = renamed
		}
	}

	return &Network{Validators: remapped, Orgs: remappedOrgs, pool: pool}, nil
}

func remapQSet(q *QuorumSet, rename map[string]string, pool *Pool, cache map[Fingerprint]*QuorumSet) (*QuorumSet, error) {
	if cached, ok := cache[q.Fingerprint()]; ok {
		return cached, nil
	}

	renamedValidators := make([]string, 0, q.Validators.Len())
	for _, v := range q.Validators.List() {
		if r, ok := rename[v]; ok {
			renamedValidators = append(renamedValidators, r)
		} else {
			renamedValidators = append(renamedValidators, v)
		}
	}

	renamedInner := make([]*QuorumSet, len(q.Inner))
	for i, inner := range q.Inner {
		r, err := remapQSet(inner, rename, pool, cache)
		if err != nil {
			return nil, err
		}
		renamedInner[i] = r
	}

	out, err := pool.Intern(q.Threshold, renamedValidators, renamedInner)
	if err != nil {
		return nil, err
	}
	cache[q.Fingerprint()] = out
	return out, nil
}

// Qsets returns every distinct QuorumSet reachable from the network,
// validators' own plus every transitively nested inner set.
func (n *Network) Qsets() []*QuorumSet {
	seen := make(map[Fingerprint]*QuorumSet)
	for _, q := range n.Validators {
		collectQsets(q, seen)
	}
	out := make([]*QuorumSet, 0, len(seen))
	for _, q := range seen {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return fingerprintLess(out[i].fp, out[j].fp) })
	return out
}

func collectQsets(q *QuorumSet, seen map[Fingerprint]*QuorumSet) {
	if _, ok := seen[q.Fingerprint()]; ok {
		return
	}
	seen[q.Fingerprint()] = q
	for _, inner := range q.Inner {
		collectQsets(inner, seen)
	}
}

func (n *Network) String() string {
	ids := make([]string, 0, len(n.Validators))
	for id := range n.Validators {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out string
	for _, id := range ids {
		out += fmt.Sprintf("%s -> %v\n", id, n.Validators[id])
	}
	return out
}
