// Package orgs holds organization-to-validator metadata: flat,
// descriptive data with no semantic role in quorum analysis itself
// (spec component H). It exists purely to round-trip through network
// dumps (spec.md §6.2's third file).
package orgs

import (
	"encoding/json"
	"sort"
)

// OrgMap maps an organization name to the validator ids it controls.
type OrgMap map[string][]string

// record mirrors one element of a `<p>_orgs.json` dump: {"name":…,
// "validators":[…]}.
type record struct {
	Name       string   `json:"name"`
	Validators []string `json:"validators"`
}

// Load parses a `<p>_orgs.json` document into an OrgMap. An empty or
// absent document (nil data) yields an empty, non-nil OrgMap.
func Load(data []byte) (OrgMap, error) {
	if len(data) == 0 {
		return OrgMap{}, nil
	}
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	out := make(OrgMap, len(records))
	for _, r := range records {
		out[r.Name] = r.Validators
	}
	return out, nil
}

// Dump renders m back into the `<p>_orgs.json` shape, sorted by name
// for reproducible output.
func Dump(m OrgMap) ([]byte, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	records := make([]record, len(names))
	for i, name := range names {
		records[i] = record{Name: name, Validators: m[name]}
	}
	return json.MarshalIndent(records, "", "  ")
}
