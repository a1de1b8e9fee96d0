package quorum

import (
	"encoding/json"
	"fmt"
	"sort"
)

// rawRecord mirrors one element of validators.json (spec.md §6.1).
// Unknown fields are ignored by encoding/json's default behavior; only
// the fields this type names (publicKey, isValidator, quorumSet) are
// read.
type rawRecord struct {
	PublicKey  string      `json:"publicKey"`
	IsValidator *bool      `json:"isValidator"`
	QuorumSet  rawQuorumSet `json:"quorumSet"`
}

// rawQuorumSet is tolerant to extra fields on quorum-set nodes, per
// spec.md §6.1's "loading is tolerant to extra fields" note: it names
// only the fields it consumes, and json.Unmarshal silently ignores the
// rest.
type rawQuorumSet struct {
	Threshold       int            `json:"threshold"`
	Validators      []string       `json:"validators"`
	InnerQuorumSets []rawQuorumSet `json:"innerQuorumSets"`
}

// LoadNetwork parses a validators.json document into a Network.
// Records whose "isValidator" field is present and false are dropped;
// records with no such field are kept (spec.md: "only isValidator ==
// true nodes are retained" applies to the raw data source's own
// liveness flag — a record with the field entirely absent, as in
// hand-written test fixtures, is treated as a validator).
func LoadNetwork(data []byte) (*Network, error) {
	var records []rawRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("quorum: decoding validators.json: %w", err)
	}

	pool := NewPool()
	validators := make(map[string]*QuorumSet, len(records))
	for _, rec := range records {
		if rec.IsValidator != nil && !*rec.IsValidator {
			continue
		}
		if _, dup := validators[rec.PublicKey]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateValidator, rec.PublicKey)
		}
		q, err := buildQSet(rec.QuorumSet, pool, 0)
		if err != nil {
			return nil, fmt.Errorf("quorum: validator %s: %w", rec.PublicKey, err)
		}
		validators[rec.PublicKey] = q
	}

	n := NewNetwork(validators, pool)
	if err := n.SanityCheck(); err != nil {
		return nil, err
	}
	return n, nil
}

func buildQSet(raw rawQuorumSet, pool *Pool, depth int) (*QuorumSet, error) {
	if depth > maxDepth {
		return nil, ErrMaxDepthExceeded
	}
	inner := make([]*QuorumSet, 0, len(raw.InnerQuorumSets))
	for _, innerRaw := range raw.InnerQuorumSets {
		q, err := buildQSet(innerRaw, pool, depth+1)
		if err != nil {
			return nil, err
		}
		inner = append(inner, q)
	}
	return pool.Intern(raw.Threshold, raw.Validators, inner)
}

// DumpCanonical renders n back into the §6.1 JSON shape (the `<p>.json`
// output named in §6.2), with records sorted by publicKey so the
// output is reproducible across runs.
func DumpCanonical(n *Network) ([]byte, error) {
	ids := make([]string, 0, len(n.Validators))
	for id := range n.Validators {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	records := make([]rawRecord, 0, len(ids))
	for _, id := range ids {
		isValidator := true
		records = append(records, rawRecord{
			PublicKey:   id,
			IsValidator: &isValidator,
			QuorumSet:   toRawQSet(n.Validators[id]),
		})
	}
	return json.MarshalIndent(records, "", "  ")
}

func toRawQSet(q *QuorumSet) rawQuorumSet {
	inner := make([]rawQuorumSet, len(q.Inner))
	for i, in := range q.Inner {
		inner[i] = toRawQSet(in)
	}
	return rawQuorumSet{
		Threshold:       q.Threshold,
		Validators:      q.Validators.List(),
		InnerQuorumSets: inner,
	}
}
