package behave_test

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tinytorch-edu/titod/internal/behave"
	"github.com/tinytorch-edu/titod/internal/gateway"
	"github.com/tinytorch-edu/titod/internal/resolver"
)

func TestParseBehaviourFile(t *testing.T) {
	cases, err := behave.Parse(filepath.Join("testdata", "gateway.toml"))
	require.NoError(t, err)
	require.Len(t, cases, 4)

	require.Equal(t, "successful command output is trimmed", cases[0].Name)
	require.Equal(t, "sh", cases[0].Req.Name)
	require.NotEmpty(t, cases[0].Req.InvUuid)
	require.Equal(t, "success", cases[0].Expect.Status)

	require.Equal(t, "nonzero_exit", cases[1].Expect.Status)
	require.NotNil(t, cases[1].Expect.ExitCode)
	require.Equal(t, 4, *cases[1].Expect.ExitCode)
}

func TestParseMissingFile(t *testing.T) {
	_, err := behave.Parse(filepath.Join("testdata", "does-not-exist.toml"))
	require.Error(t, err)
}

func TestRunScenarios(t *testing.T) {
	cases, err := behave.Parse(filepath.Join("testdata", "gateway.toml"))
	require.NoError(t, err)

	tools := resolver.NewToolchain(t.Context(), map[string][]string{
		"sh": nil,
	})
	gw := gateway.New(tools, t.TempDir(), slog.Default())

	for _, c := range cases {
		require.NoError(t, behave.RunCase(t.Context(), gw, gateway.NopSink{}, c), c.Name)
	}
}
