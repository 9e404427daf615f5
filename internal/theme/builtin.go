package theme

import "embed"

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltinSeeds returns the theme seeds bundled with themeforge.
func LoadBuiltinSeeds() ([]*Seed, error) {
	return loadSeedsFS(builtinFS, "builtin", func(string) string {
		return "builtin"
	})
}
