package buildinfo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringAndTemplate(t *testing.T) {
	old := [3]string{Version, Commit, Date}
	t.Cleanup(func() { Version, Commit, Date = old[0], old[1], old[2] })

	Version, Commit, Date = "v1.2.3", "abc123", "2026-01-02"
	require.Equal(t, "version: v1.2.3\ncommit: abc123\nbuilt: 2026-01-02", String())
	require.Equal(t, "{{.Name}} version v1.2.3\ncommit: abc123\nbuilt: 2026-01-02\n", Template())
}
