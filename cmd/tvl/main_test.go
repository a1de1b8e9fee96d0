package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const twoCycleNetworkJSON = `[
	{"publicKey": "A", "quorumSet": {"threshold": 1, "validators": ["B"], "innerQuorumSets": []}},
	{"publicKey": "B", "quorumSet": {"threshold": 1, "validators": ["A"], "innerQuorumSets": []}}
]`

func writeNetworkFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "validators.json")
	require.NoError(t, os.WriteFile(path, []byte(twoCycleNetworkJSON), 0o644))
	return path
}

func TestCheckCmdAgainstFixture(t *testing.T) {
	cmd := checkCmd()
	cmd.SetArgs([]string{"--network", writeNetworkFixture(t)})
	require.NoError(t, cmd.Execute())
}

func TestCheckCmdReportsBuildStats(t *testing.T) {
	cmd := checkCmd()
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--network", writeNetworkFixture(t), "--report-build-stats"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, stderr.String(), "conjuncts")
}

func TestOverlayCmdAgainstFixture(t *testing.T) {
	cmd := overlayCmd()
	cmd.SetArgs([]string{"--network", writeNetworkFixture(t)})
	require.NoError(t, cmd.Execute())
}

func TestSplitPair(t *testing.T) {
	p, q, ok := splitPair("A,B")
	require.True(t, ok)
	require.Equal(t, "A", p)
	require.Equal(t, "B", q)

	_, _, ok = splitPair("no-comma")
	require.False(t, ok)
}
