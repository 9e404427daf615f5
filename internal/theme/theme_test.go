package theme

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/themeforge/internal/color"
	"github.com/opencode-ai/themeforge/internal/scheme"
	"github.com/opencode-ai/themeforge/internal/styletree"
)

const testSeedYAML = `name: Test Dusk
author: tester
appearance: Dark
ramps:
  neutral:
    colors: ["#101010", "#808080", "#f0f0f0"]
    domain: [0, 0.4, 1]
  red: "#e06c75"
  orange: "#d19a66"
  yellow: "#e5c07b"
  green: ["#0b3d0b", "#98c379", "#e0f5d0"]
  cyan: "#56b6c2"
  blue: "#61afef"
  violet: "#c678dd"
  magenta: "#ff79c6"
`

func writeSeed(t *testing.T, dir, file, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, file)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testSeed(t *testing.T) *Seed {
	t.Helper()
	seed, err := decodeSeed(strings.NewReader(testSeedYAML))
	require.NoError(t, err)
	return seed
}

func TestLoadSeed(t *testing.T) {
	path := writeSeed(t, t.TempDir(), "dusk.yaml", testSeedYAML)

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	require.Equal(t, "Test Dusk", seed.Name)
	require.Equal(t, "tester", seed.Author)
	require.Equal(t, "dark", seed.Appearance)
	require.Equal(t, path, seed.Source)

	require.Equal(t, []string{"#e06c75"}, seed.Ramps["red"].Colors)
	require.Len(t, seed.Ramps["green"].Colors, 3)
	require.Equal(t, []float64{0, 0.4, 1}, seed.Ramps["neutral"].Domain)
}

func TestRampSeedExpandsSingleColor(t *testing.T) {
	seed := testSeed(t)
	r, err := seed.Ramps["red"].Ramp()
	require.NoError(t, err)
	require.Len(t, r.Seeds(), 3)
	require.Equal(t, "#e06c75", r.Sample(0.5).String())
}

func TestRampSeedHonoursDomain(t *testing.T) {
	seed := testSeed(t)
	r, err := seed.Ramps["neutral"].Ramp()
	require.NoError(t, err)
	require.Equal(t, "#808080", r.Sample(0.4).String())
}

func TestParseSeedValidation(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		check func(*testing.T, error)
	}{
		{
			name: "missing name",
			body: strings.Replace(testSeedYAML, "name: Test Dusk", "name: \"  \"", 1),
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, ErrSeedNameRequired)
			},
		},
		{
			name: "bad appearance",
			body: strings.Replace(testSeedYAML, "appearance: Dark", "appearance: dim", 1),
			check: func(t *testing.T, err error) {
				var verr *SeedValidationError
				require.True(t, errors.As(err, &verr))
				require.Equal(t, "appearance", verr.Field)
			},
		},
		{
			name: "missing ramp",
			body: strings.Replace(testSeedYAML, "  violet: \"#c678dd\"\n", "", 1),
			check: func(t *testing.T, err error) {
				var verr *SeedValidationError
				require.True(t, errors.As(err, &verr))
				require.Equal(t, "violet", verr.Role)
			},
		},
		{
			name: "bad colour",
			body: strings.Replace(testSeedYAML, "\"#e06c75\"", "\"#zz0000\"", 1),
			check: func(t *testing.T, err error) {
				var verr *SeedValidationError
				require.True(t, errors.As(err, &verr))
				require.Equal(t, "red", verr.Role)
			},
		},
		{
			name: "unknown key",
			body: testSeedYAML + "palette: warm\n",
			check: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "palette")
			},
		},
		{
			name: "empty document",
			body: "",
			check: func(t *testing.T, err error) {
				require.Contains(t, err.Error(), "empty")
			},
		},
		{
			name: "bad ramp in derived seed",
			body: "name: Derived\nbase: Gruvbox Dark\nramps:\n  blue: \"#nothex\"\n",
			check: func(t *testing.T, err error) {
				var verr *SeedValidationError
				require.True(t, errors.As(err, &verr))
				require.Equal(t, "blue", verr.Role)
			},
		},
		{
			name: "bad domain",
			body: strings.Replace(testSeedYAML, "domain: [0, 0.4, 1]", "domain: [0, 1]", 1),
			check: func(t *testing.T, err error) {
				var verr *SeedValidationError
				require.True(t, errors.As(err, &verr))
				require.Equal(t, "neutral", verr.Role)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeSeed(strings.NewReader(tc.body))
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestLoadSeedsFromDirSkipsOtherFiles(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "dusk.yml", testSeedYAML)
	writeSeed(t, dir, "notes.txt", "not a theme")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	seeds, err := LoadSeedsFromDir(dir)
	require.NoError(t, err)
	require.Len(t, seeds, 1)

	seeds, err = LoadSeedsFromDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	require.Empty(t, seeds)
}

func TestLoadSeedsFromSearchPathsPrecedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	extra := t.TempDir()

	override := strings.Replace(testSeedYAML, "name: Test Dusk", "name: Gruvbox Dark", 1)
	writeSeed(t, filepath.Join(project, ".themeforge", "themes"), "gruvbox.yaml", override)
	writeSeed(t, extra, "dusk.yaml", testSeedYAML)

	seeds, err := LoadSeedsFromSearchPaths(project, extra)
	require.NoError(t, err)
	require.Equal(t, "Test Dusk", seeds[0].Name)
	require.Equal(t, "Gruvbox Dark", seeds[1].Name)
	require.NotEqual(t, "builtin", seeds[1].Source)

	builtins, err := LoadBuiltinSeeds()
	require.NoError(t, err)
	require.Len(t, seeds, len(builtins)+1)
}

func TestSeedInheritsFromBase(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	writeSeed(t, filepath.Join(project, ".themeforge", "themes"), "warm.yaml", `name: Gruvbox Warm
base: gruvbox-dark
ramps:
  blue: "#d3869b"
`)
	writeSeed(t, filepath.Join(project, ".themeforge", "themes"), "warm-light.yaml", `name: Gruvbox Warm Light
base: Gruvbox Warm
appearance: light
`)

	seeds, err := LoadSeedsFromSearchPaths(project)
	require.NoError(t, err)

	base, err := FindSeed(seeds, "Gruvbox Dark")
	require.NoError(t, err)
	warm, err := FindSeed(seeds, "Gruvbox Warm")
	require.NoError(t, err)
	require.Equal(t, "dark", warm.Appearance)
	require.Equal(t, base.Author, warm.Author)
	require.Equal(t, []string{"#d3869b"}, warm.Ramps["blue"].Colors)
	require.Equal(t, base.Ramps["neutral"], warm.Ramps["neutral"])
	require.NotEqual(t, base.Ramps["blue"].Colors, warm.Ramps["blue"].Colors)

	light, err := FindSeed(seeds, "gruvbox-warm-light")
	require.NoError(t, err)
	require.Equal(t, "light", light.Appearance)
	require.Equal(t, []string{"#d3869b"}, light.Ramps["blue"].Colors)

	th, err := Build(light, styletree.DefaultLayout())
	require.NoError(t, err)
	require.Equal(t, scheme.Light, th.Appearance)
}

func TestResolveBasesErrors(t *testing.T) {
	derived := func(name, base string) *Seed {
		return &Seed{Name: name, Base: base, Ramps: map[string]RampSeed{}}
	}

	_, err := ResolveBases([]*Seed{derived("Orphan", "Nowhere")})
	var verr *SeedValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	require.Equal(t, "base", verr.Field)
	require.Contains(t, err.Error(), "Nowhere")

	_, err = ResolveBases([]*Seed{derived("One", "Two"), derived("Two", "One")})
	require.True(t, errors.As(err, &verr), "got %v", err)
	require.Contains(t, err.Error(), "cycle One -> Two -> One")

	_, err = ResolveBases([]*Seed{derived("Self", "self")})
	require.True(t, errors.As(err, &verr), "got %v", err)
}

func TestResolveBasesKeepsOrderAndInput(t *testing.T) {
	base := testSeed(t)
	child := &Seed{Name: "Child", Base: base.Name, Ramps: map[string]RampSeed{"red": {Colors: []string{"#ff0000"}}}}

	resolved, err := ResolveBases([]*Seed{child, base})
	require.NoError(t, err)
	require.Equal(t, "Child", resolved[0].Name)
	require.Same(t, base, resolved[1])
	require.Len(t, resolved[0].Ramps, len(base.Ramps))
	require.Len(t, child.Ramps, 1)
	require.Empty(t, child.Appearance)
}

func TestSelect(t *testing.T) {
	builtins, err := LoadBuiltinSeeds()
	require.NoError(t, err)

	all, err := Select(builtins, nil)
	require.NoError(t, err)
	require.Len(t, all, len(builtins))

	picked, err := Select(builtins, []string{"solarized-light", "Gruvbox Dark", "solarized-light"})
	require.NoError(t, err)
	require.Len(t, picked, 2)
	require.Equal(t, "Solarized Light", picked[0].Name)
	require.Equal(t, "Gruvbox Dark", picked[1].Name)

	_, err = Select(builtins, []string{"nope"})
	require.ErrorIs(t, err, ErrThemeNotFound)
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Gruvbox Dark":    "gruvbox-dark",
		"Rosé Pine Dawn":  "rosé-pine-dawn",
		"  One -- Light ": "one-light",
		"cave_dark2":      "cave-dark2",
	}
	for in, want := range cases {
		require.Equal(t, want, Slug(in), in)
	}
}

func TestBuildDarkAndLight(t *testing.T) {
	layout := styletree.DefaultLayout()
	dark := testSeed(t)
	light := testSeed(t)
	light.Name = "Test Dawn"
	light.Appearance = "light"

	dt, err := Build(dark, layout)
	require.NoError(t, err)
	lt, err := Build(light, layout)
	require.NoError(t, err)

	require.Equal(t, scheme.Dark, dt.Appearance)
	require.Equal(t, scheme.Light, lt.Appearance)

	darkBg, ok := dt.Root.Lookup("editor.background")
	require.True(t, ok)
	lightBg, ok := lt.Root.Lookup("editor.background")
	require.True(t, ok)
	require.Less(t, darkBg.(color.Color).Lightness(), lightBg.(color.Color).Lightness())

	darkText, _ := dt.Root.Lookup("editor.textColor")
	lightText, _ := lt.Root.Lookup("editor.textColor")
	require.Greater(t, darkText.(color.Color).Lightness(), lightText.(color.Color).Lightness())
}

func TestBuildAllBuiltins(t *testing.T) {
	builtins, err := LoadBuiltinSeeds()
	require.NoError(t, err)
	require.NotEmpty(t, builtins)

	themes, err := BuildAll(context.Background(), builtins, styletree.DefaultLayout(), 3)
	require.NoError(t, err)
	require.Len(t, themes, len(builtins))
	for i, th := range themes {
		require.Equal(t, builtins[i].Name, th.Name)
		data, err := Serialize(th, 2)
		require.NoError(t, err)
		require.True(t, json.Valid(data), th.Name)
	}
}

func TestBuildAllStopsOnError(t *testing.T) {
	good := testSeed(t)
	bad := testSeed(t)
	bad.Name = "Broken"
	delete(bad.Ramps, "cyan")

	_, err := BuildAll(context.Background(), []*Seed{good, bad}, styletree.DefaultLayout(), 2)
	var missing *scheme.MissingRampError
	require.True(t, errors.As(err, &missing), "got %v", err)
	require.Equal(t, "cyan", missing.Role)
	require.Contains(t, err.Error(), "Broken")
}

func TestBuildAllHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildAll(ctx, []*Seed{testSeed(t)}, styletree.DefaultLayout(), 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSerializeIsStableAndSnakeCased(t *testing.T) {
	th, err := Build(testSeed(t), styletree.DefaultLayout())
	require.NoError(t, err)

	first, err := Serialize(th, 2)
	require.NoError(t, err)
	second, err := Serialize(th, 2)
	require.NoError(t, err)
	require.Equal(t, first, second)

	rebuilt, err := Build(testSeed(t), styletree.DefaultLayout())
	require.NoError(t, err)
	third, err := Serialize(rebuilt, 2)
	require.NoError(t, err)
	require.Equal(t, first, third)

	out := string(first)
	require.True(t, strings.HasSuffix(out, "}\n"))
	require.True(t, strings.HasPrefix(out, "{\n  \"meta\": {"))
	require.Contains(t, out, `"tab_bar": {`)
	require.Contains(t, out, `"contacts_panel": {`)
	require.Contains(t, out, `"active_tab": {`)
	require.NotContains(t, out, `"tabBar"`)
	require.NotContains(t, out, `"extends"`)

	compact, err := Serialize(th, 0)
	require.NoError(t, err)
	require.False(t, strings.Contains(strings.TrimSuffix(string(compact), "\n"), "\n"))
}

func TestSerializeKeepsComponentOrder(t *testing.T) {
	th, err := Build(testSeed(t), styletree.DefaultLayout())
	require.NoError(t, err)
	data, err := Serialize(th, 0)
	require.NoError(t, err)

	out := string(data)
	last := -1
	for _, name := range styletree.ComponentNames() {
		idx := strings.Index(out, `"`+snake(name)+`":{`)
		require.Greater(t, idx, last, name)
		last = idx
	}
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestWrite(t *testing.T) {
	th, err := Build(testSeed(t), styletree.DefaultLayout())
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "assets", "themes")
	path, err := Write(dir, th, 2)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "test-dusk.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want, err := Serialize(th, 2)
	require.NoError(t, err)
	require.Equal(t, want, data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
