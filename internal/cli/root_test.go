package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/pagenav/internal/cli"
	"github.com/rshade/pagenav/internal/config"
	"github.com/rshade/pagenav/internal/pagination"
)

// setupCLITest isolates the config directory and resets global state.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvConfig, "")
	t.Setenv("PAGENAV_LOG_LEVEL", "error")
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_Help(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "", "--help")
	require.NoError(t, err)
	for _, sub := range []string{"series", "links", "nav", "info", "headers", "parse-headers", "url", "urls", "browse", "config", "version"} {
		assert.Contains(t, out, sub)
	}
}

func TestRootCmd_InvalidOutputFlag(t *testing.T) {
	setupCLITest(t)

	_, _, err := runCLI(t, "", "series", "--count", "10", "-o", "xml")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestRootCmd_MissingConfigFlagFile(t *testing.T) {
	setupCLITest(t)

	_, _, err := runCLI(t, "", "series", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCmd_ConfigFileApplied(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("limit: 10\npage_param: p\n"), 0o600))

	out, _, err := runCLI(t, "", "url", "--page", "2", "--url", "/items")
	require.NoError(t, err)
	assert.Equal(t, "/items?p=2\n", out)

	out, _, err = runCLI(t, "", "series", "--count", "35", "--page", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "4 of 4")
}

func TestRootCmd_DebugLogsConfigPaths(t *testing.T) {
	setupCLITest(t)

	_, errOut, err := runCLI(t, "", "series", "--count", "35", "--debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "command started")
	assert.Contains(t, errOut, "pager configured")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: cli.ExitOK},
		{name: "range error", err: &pagination.RangeError{Page: 9, Pages: 6}, want: cli.ExitOutOfRange},
		{name: "wrapped range error", err: errors.Join(errors.New("outer"), &pagination.RangeError{Page: 0}), want: cli.ExitOutOfRange},
		{name: "config error", err: config.ErrInvalidConfig, want: cli.ExitConfigError},
		{name: "other", err: errors.New("boom"), want: cli.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestVersionCmd(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "", "version", "-o", "json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Contains(t, info, "version")
}
