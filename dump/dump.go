// Package dump persists a Network to the three-file format spec.md
// §6.2 names: the canonical `<p>.json`, a stellar-core-flavored
// `<p>_for_stellar_core.json`, and `<p>_orgs.json` (spec component I).
package dump

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nano-o/tvl/internal/randkey"
	"github.com/nano-o/tvl/orgs"
	"github.com/nano-o/tvl/quorum"
)

// coreQSet is the flattened stellar-core quorum-set shape: {"t":
// threshold, "v": [<strkey or nested coreQSet>, …]}.
type coreQSet struct {
	T int           `json:"t"`
	V []interface{} `json:"v"`
}

// WriteAll writes the three dump files with the given path prefix.
func WriteAll(prefix string, n *quorum.Network, orgMap orgs.OrgMap) error {
	canonical, err := quorum.DumpCanonical(n)
	if err != nil {
		return fmt.Errorf("dump: canonical form: %w", err)
	}
	if err := os.WriteFile(prefix+".json", canonical, 0o644); err != nil {
		return fmt.Errorf("dump: writing canonical form: %w", err)
	}

	coreDoc, err := forStellarCore(n)
	if err != nil {
		return fmt.Errorf("dump: stellar-core form: %w", err)
	}
	if err := os.WriteFile(prefix+"_for_stellar_core.json", coreDoc, 0o644); err != nil {
		return fmt.Errorf("dump: writing stellar-core form: %w", err)
	}

	orgsDoc, err := orgs.Dump(orgMap)
	if err != nil {
		return fmt.Errorf("dump: orgs form: %w", err)
	}
	if err := os.WriteFile(prefix+"_orgs.json", orgsDoc, 0o644); err != nil {
		return fmt.Errorf("dump: writing orgs form: %w", err)
	}
	return nil
}

// forStellarCore assigns every validator a fresh random strkey and
// renders its quorum set in the flattened {"t","v"} shape, each "v"
// entry being either another validator's strkey or a nested flattened
// quorum set (spec.md §6.2).
func forStellarCore(n *quorum.Network) ([]byte, error) {
	strkeys := make(map[string]string, len(n.Validators))
	for id := range n.Validators {
		key, err := randkey.New()
		if err != nil {
			return nil, err
		}
		strkeys[id] = key
	}

	out := make(map[string]interface{}, len(n.Validators))
	for id, q := range n.Validators {
		out[strkeys[id]] = flatten(q, strkeys)
	}
	return json.MarshalIndent(out, "", "  ")
}

func flatten(q *quorum.QuorumSet, strkeys map[string]string) coreQSet {
	vs := q.Validators.List()
	v := make([]interface{}, 0, len(vs)+len(q.Inner))
	for _, id := range vs {
		if key, ok := strkeys[id]; ok {
			v = append(v, key)
		} else {
			v = append(v, id)
		}
	}
	for _, inner := range q.Inner {
		v = append(v, flatten(inner, strkeys))
	}
	return coreQSet{T: q.Threshold, V: v}
}
