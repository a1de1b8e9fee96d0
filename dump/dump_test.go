package dump

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nano-o/tvl/orgs"
	"github.com/nano-o/tvl/quorum"
)

func TestWriteAllProducesThreeFiles(t *testing.T) {
	pool := quorum.NewPool()
	qa, err := pool.Intern(1, []string{"B"}, nil)
	require.NoError(t, err)
	qb, err := pool.Intern(1, []string{"A"}, nil)
	require.NoError(t, err)
	n := quorum.NewNetwork(map[string]*quorum.QuorumSet{"A": qa, "B": qb}, pool)
	require.NoError(t, n.SanityCheck())

	orgMap := orgs.OrgMap{"example-org": {"A", "B"}}

	dir := t.TempDir()
	prefix := filepath.Join(dir, "net")
	require.NoError(t, WriteAll(prefix, n, orgMap))

	for _, suffix := range []string{".json", "_for_stellar_core.json", "_orgs.json"} {
		data, err := os.ReadFile(prefix + suffix)
		require.NoError(t, err, "missing %s", suffix)
		require.NotEmpty(t, data)
	}

	coreData, err := os.ReadFile(prefix + "_for_stellar_core.json")
	require.NoError(t, err)
	var coreDoc map[string]coreQSet
	require.NoError(t, json.Unmarshal(coreData, &coreDoc))
	require.Len(t, coreDoc, 2)
	for _, qset := range coreDoc {
		require.Equal(t, 1, qset.T)
		require.Len(t, qset.V, 1)
	}
}
