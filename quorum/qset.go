// Package quorum implements the canonical, interned representation of
// validators and quorum sets (spec component C), and the structural
// queries the closure-axiom builder and overlay synthesizer need:
// members, blocking sets, most-frequent quorum set, top tier.
package quorum

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"

	"github.com/luxfi/ids"

	"github.com/nano-o/tvl/utils/set"
)

// Fingerprint is the content hash a QuorumSet is interned by. Reusing
// ids.ID (rather than a raw [32]byte) keeps the quorum model on the
// same identifier type the rest of the stack uses.
type Fingerprint = ids.ID

// QuorumSet is an immutable threshold structure over validator
// identifiers and nested quorum sets. Values are always obtained
// through a Pool, which guarantees that two QuorumSets with equal
// (threshold, validators, inner) content are the exact same *QuorumSet
// instance — structural equality and pointer identity coincide, so a
// *QuorumSet is safe to use as a map key wherever the spec calls for
// "memoized by identity" (the closure-axiom builder's LHS cache in
// particular).
type QuorumSet struct {
	Threshold  int
	Validators set.Set[string]
	Inner      []*QuorumSet // sorted by Fingerprint, canonical children

	fp Fingerprint
}

// Fingerprint returns Q's content hash. Stable across process runs:
// it is a pure function of Q's sorted validator ids and its children's
// fingerprints.
func (q *QuorumSet) Fingerprint() Fingerprint { return q.fp }

// Elements returns the number of direct members (validators + inner
// quorum sets) of Q.
func (q *QuorumSet) Elements() int { return q.Validators.Len() + len(q.Inner) }

func (q *QuorumSet) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "(%d, {", q.Threshold)
	vs := q.Validators.List()
	sort.Strings(vs)
	b.WriteString(strings.Join(vs, ","))
	b.WriteString("}, {")
	for i, inner := range q.Inner {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(inner.String())
	}
	b.WriteString("})")
	return b.String()
}

// Pool interns QuorumSet values so that structurally-equal trees
// collapse to one shared instance, per spec.md §3.1/§4.C. A Pool is
// not safe for concurrent use; callers building a Network from a
// single input document use one Pool per load.
type Pool struct {
	table map[Fingerprint]*QuorumSet
}

// NewPool returns an empty interning pool.
func NewPool() *Pool {
	return &Pool{table: make(map[Fingerprint]*QuorumSet)}
}

// Intern constructs (or returns the existing instance of) the quorum
// set (threshold, validators, inner). inner need not be pre-sorted;
// Intern canonicalizes it. Returns ErrEmptyQuorumSet or
// ErrThresholdOutOfRange if the spec.md §3.1 invariants are violated.
func (p *Pool) Intern(threshold int, validators []string, inner []*QuorumSet) (*QuorumSet, error) {
	vset := set.Of(validators...)
	elementCount := vset.Len() + len(inner)
	if elementCount == 0 {
		return nil, ErrEmptyQuorumSet
	}
	if threshold < 1 || threshold > elementCount {
		return nil, fmt.Errorf("%w: threshold %d, elements %d", ErrThresholdOutOfRange, threshold, elementCount)
	}

	sortedInner := append([]*QuorumSet(nil), inner...)
	sort.Slice(sortedInner, func(i, j int) bool {
		return fingerprintLess(sortedInner[i].fp, sortedInner[j].fp)
	})

	fp := computeFingerprint(threshold, vset, sortedInner)
	if existing, ok := p.table[fp]; ok {
		return existing, nil
	}

	q := &QuorumSet{
		Threshold:  threshold,
		Validators: vset,
		Inner:      sortedInner,
		fp:         fp,
	}
	p.table[fp] = q
	return q, nil
}

func fingerprintLess(a, b Fingerprint) bool {
	return strings.Compare(a.String(), b.String()) < 0
}

// computeFingerprint hashes a canonical byte encoding of the quorum
// set's content: threshold, sorted validator ids, and sorted inner
// fingerprints. Two structurally-equal quorum sets always hash
// identically regardless of construction order, which is what makes
// interning collapse them to one instance.
func computeFingerprint(threshold int, validators set.Set[string], sortedInner []*QuorumSet) Fingerprint {
	h := sha256.New()

	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(threshold))
	h.Write(lenBuf[:])

	vs := validators.List()
	sort.Strings(vs)
	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(vs)))
	h.Write(lenBuf[:])
	for _, v := range vs {
		binary.BigEndian.PutUint64(lenBuf[:], uint64(len(v)))
		h.Write(lenBuf[:])
		h.Write([]byte(v))
	}

	binary.BigEndian.PutUint64(lenBuf[:], uint64(len(sortedInner)))
	h.Write(lenBuf[:])
	for _, inner := range sortedInner {
		h.Write(inner.fp[:])
	}

	sum := h.Sum(nil)
	id, err := ids.ToID(sum)
	if err != nil {
		// sha256.Sum always yields 32 bytes, the exact width of an
		// ids.ID; ToID only rejects mismatched lengths.
		panic(fmt.Sprintf("quorum: unexpected fingerprint hash width: %v", err))
	}
	return id
}

// Members returns the union of leaf validator ids in Q's transitive
// closure (spec.md §4.C members(Q)).
func Members(q *QuorumSet) set.Set[string] {
	out := set.NewSet[string](q.Validators.Len())
	out.Union(q.Validators)
	for _, inner := range q.Inner {
		out.Union(Members(inner))
	}
	return out
}
