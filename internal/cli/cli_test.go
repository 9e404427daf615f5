package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args against an isolated home and
// config file, returning stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("THEMEFORGE_NO_PROGRESS", "1")
	t.Setenv("THEMEFORGE_NON_INTERACTIVE", "1")

	cfgPath := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  level: error\n"), 0o644))

	resetFlags()
	t.Cleanup(resetFlags)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--config", cfgPath, "--project-dir", home}, args...))
	err := rootCmd.Execute()
	return stdout.String(), err
}

func resetFlags() {
	configPath = ""
	logLevel = ""
	jsonOutput = false
	noProgress = false
	nonInteractive = false
	projectDir = ""
	appConfig = nil

	buildOutDir = ""
	buildThemes = nil
	buildParallelism = 0
	previewSwatches = 0
	previewHex = false
	initForce = false

	unset := func(f *pflag.Flag) { f.Changed = false }
	rootCmd.PersistentFlags().VisitAll(unset)
	for _, cmd := range rootCmd.Commands() {
		cmd.Flags().VisitAll(unset)
	}
}

func TestListJSON(t *testing.T) {
	out, err := runCLI(t, "list", "--json")
	require.NoError(t, err)

	var seeds []seedSummary
	require.NoError(t, json.Unmarshal([]byte(out), &seeds))
	require.NotEmpty(t, seeds)

	names := make(map[string]seedSummary, len(seeds))
	for _, s := range seeds {
		names[s.Slug] = s
	}
	require.Contains(t, names, "gruvbox-dark")
	require.Equal(t, "light", names["rosé-pine-dawn"].Appearance)
	require.Equal(t, "builtin", names["cave-dark"].Source)
}

func TestListTable(t *testing.T) {
	out, err := runCLI(t, "list")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "NAME"))
	require.Contains(t, out, "Solarized Light")
}

func TestBuildWritesSelectedThemes(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "themes")
	out, err := runCLI(t, "build", "--out", outDir, "--theme", "cave-dark", "--theme", "Rosé Pine Dawn", "--json")
	require.NoError(t, err)

	var summary struct {
		RunID  string        `json:"run_id"`
		Themes []buildResult `json:"themes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	require.NotEmpty(t, summary.RunID)
	require.Len(t, summary.Themes, 2)
	require.Equal(t, "dark", summary.Themes[0].Appearance)
	require.Equal(t, "light", summary.Themes[1].Appearance)

	for _, name := range []string{"cave-dark.json", "rosé-pine-dawn.json"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		require.True(t, json.Valid(data))
		require.NotContains(t, string(data), `"extends"`)
	}

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestBuildUnknownTheme(t *testing.T) {
	_, err := runCLI(t, "build", "--out", t.TempDir(), "--theme", "no-such-theme")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no-such-theme")
}

func TestShowSubPath(t *testing.T) {
	out, err := runCLI(t, "show", "gruvbox-dark", "meta.isLight")
	require.NoError(t, err)
	require.Equal(t, "false\n", out)

	out, err = runCLI(t, "show", "gruvbox-light", "meta.appearance")
	require.NoError(t, err)
	require.Equal(t, "light\n", out)

	out, err = runCLI(t, "show", "gruvbox-dark", "editor.syntax.emphasis.strong.weight")
	require.NoError(t, err)
	require.Equal(t, "bold\n", out)

	_, err = runCLI(t, "show", "gruvbox-light", "meta.nope")
	require.Error(t, err)
}

func TestShowWholeTheme(t *testing.T) {
	out, err := runCLI(t, "show", "solarized-dark")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(out)))
	require.True(t, strings.HasSuffix(out, "}\n"))
	require.Contains(t, out, `"tab_bar"`)
}

func TestPreview(t *testing.T) {
	out, err := runCLI(t, "preview", "rosé-pine", "--swatches", "6", "--hex")
	require.NoError(t, err)
	require.Contains(t, out, "Rosé Pine (dark)")
	require.Contains(t, out, "Syntax")
}

func TestInitRefusesOverwriteNonInteractive(t *testing.T) {
	_, err := runCLI(t, "init")
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	out, err := runCLI(t, "init", "--force")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote ")
}

func TestSnakePath(t *testing.T) {
	require.Equal(t, "tab_bar.active_tab.background", snakePath("tabBar.activeTab.background"))
	require.Equal(t, "editor.syntax", snakePath(" .editor.syntax. "))
}

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	require.True(t, confirm(strings.NewReader("y\n"), &out, "Proceed?"))
	require.Contains(t, out.String(), "Proceed? [y/N]")
	require.True(t, confirm(strings.NewReader("YES"), &out, "Proceed?"))
	require.False(t, confirm(strings.NewReader("\n"), &out, "Proceed?"))
	require.False(t, confirm(strings.NewReader(""), &out, "Proceed?"))
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, []string{"A", "LONGER"}, [][]string{{"x", "y"}}))
	require.Equal(t, "A  LONGER\nx  y\n", buf.String())
}
