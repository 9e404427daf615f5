package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// SeedSearchPaths returns the user theme directories in precedence order:
// the project's .themeforge/themes, then ~/.config/themeforge/themes.
func SeedSearchPaths(projectDir string) []string {
	var dirs []string
	if projectDir != "" {
		dirs = append(dirs, filepath.Join(projectDir, ".themeforge", "themes"))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", "themeforge", "themes"))
	}
	return dirs
}

// catalog keeps one seed per name in arrival order; the first seed offered
// for a name shadows later ones.
type catalog struct {
	seeds  []*Seed
	byName map[string]*Seed
}

func newCatalog() *catalog {
	return &catalog{byName: make(map[string]*Seed)}
}

func (c *catalog) offer(seeds ...*Seed) {
	for _, seed := range seeds {
		if _, shadowed := c.byName[seed.Name]; shadowed {
			continue
		}
		c.byName[seed.Name] = seed
		c.seeds = append(c.seeds, seed)
	}
}

// LoadSeedsFromSearchPaths gathers seeds from extraDirs, then the search
// paths, then the builtin set, with the first seed for a name winning, and
// completes every seed that names a base.
func LoadSeedsFromSearchPaths(projectDir string, extraDirs ...string) ([]*Seed, error) {
	c := newCatalog()
	for _, dir := range append(slices.Clone(extraDirs), SeedSearchPaths(projectDir)...) {
		seeds, err := LoadSeedsFromDir(dir)
		if err != nil {
			return nil, err
		}
		c.offer(seeds...)
	}

	builtins, err := LoadBuiltinSeeds()
	if err != nil {
		return nil, err
	}
	c.offer(builtins...)

	return ResolveBases(c.seeds)
}

// ResolveBases returns seeds with every base applied, in the same order. A
// base is found by name or slug among seeds and may itself have a base.
// Completed seeds are validated in full.
func ResolveBases(seeds []*Seed) ([]*Seed, error) {
	done := make(map[*Seed]*Seed, len(seeds))
	var resolve func(seed *Seed, chain []string) (*Seed, error)
	resolve = func(seed *Seed, chain []string) (*Seed, error) {
		if out, ok := done[seed]; ok {
			return out, nil
		}
		if seed.Base == "" {
			done[seed] = seed
			return seed, nil
		}

		chain = append(chain, seed.Name)
		base, err := FindSeed(seeds, seed.Base)
		if err != nil {
			return nil, &SeedValidationError{Field: "base", Message: fmt.Sprintf("%s: base %q not found", seed.Name, seed.Base)}
		}
		for _, name := range chain {
			if name == base.Name {
				return nil, &SeedValidationError{
					Field:   "base",
					Message: fmt.Sprintf("cycle %s -> %s", strings.Join(chain, " -> "), base.Name),
				}
			}
		}
		parent, err := resolve(base, chain)
		if err != nil {
			return nil, err
		}

		out := seed.inherit(parent)
		if err := out.Validate(); err != nil {
			return nil, fmt.Errorf("theme %s: %w", seed.Name, err)
		}
		done[seed] = out
		return out, nil
	}

	resolved := make([]*Seed, 0, len(seeds))
	for _, seed := range seeds {
		out, err := resolve(seed, nil)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, out)
	}
	return resolved, nil
}

// FindSeed returns the seed whose name or slug matches name.
func FindSeed(seeds []*Seed, name string) (*Seed, error) {
	slug := Slug(name)
	for _, seed := range seeds {
		if seed.Name == name || Slug(seed.Name) == slug {
			return seed, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
}

// Select returns the seeds named in include, in include order. An empty
// include selects every seed.
func Select(seeds []*Seed, include []string) ([]*Seed, error) {
	if len(include) == 0 {
		return seeds, nil
	}
	selected := make([]*Seed, 0, len(include))
	picked := make(map[*Seed]struct{}, len(include))
	for _, name := range include {
		seed, err := FindSeed(seeds, name)
		if err != nil {
			return nil, err
		}
		if _, dup := picked[seed]; dup {
			continue
		}
		picked[seed] = struct{}{}
		selected = append(selected, seed)
	}
	return selected, nil
}
