package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(nil)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	out := runCommand(t, "version")
	require.Contains(t, out, "Themekit dev")
}

func TestResolveFromPersistedState(t *testing.T) {
	out := runCommand(t, "--state-dir", t.TempDir(), "resolve", "--json",
		"--prefix", "--ns-components-button-border")

	var vars map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &vars))
	require.Equal(t, "6px", vars["--ns-components-button-border-radius"])
	require.Equal(t, "1px", vars["--ns-components-button-border-width"])
}

func TestResolveDarkMode(t *testing.T) {
	out := runCommand(t, "--state-dir", t.TempDir(), "--mode", "dark", "resolve", "--json",
		"--prefix", "--ns-components-button-color-layer-0-variant-solid-background")

	var vars map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &vars))
	require.Equal(t, "#3b82f6", vars["--ns-components-button-color-layer-0-variant-solid-background"])
}

func TestResolveFromSourceDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tokens.json"), []byte(`{
		"color": {"black": "#000000"},
		"size": {"default": {"kind": "number", "value": 8, "unit": "px"}}
	}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "theme.json"), []byte(`{
		"light": {"surface": {"collection": "Tokens", "name": "color.black"}},
		"dark": {"surface": {"collection": "Tokens", "name": "color.black"}}
	}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "uikit.json"), []byte(`{
		"Panel": {"color": {"layer-0": {"background": {"collection": "Theme", "name": "surface"}}}}
	}`), 0o644))

	out := runCommand(t, "resolve", "--source", dir, "--json")

	var vars map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &vars))
	require.Equal(t, "#000000", vars["--ns-components-panel-color-layer-0-background"])
}

func TestShadowCommand(t *testing.T) {
	out := runCommand(t, "--state-dir", t.TempDir(), "shadow", "--level", "2")
	require.Contains(t, out, "--ns-ui-kit-elevation-level-2")
	require.Contains(t, out, "16px")
}
