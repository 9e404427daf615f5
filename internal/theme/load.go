package theme

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSeed reads a single theme seed from disk. A seed with a base is
// returned as written; ResolveBases completes it.
func LoadSeed(file string) (*Seed, error) {
	if strings.TrimSpace(file) == "" {
		return nil, fmt.Errorf("theme path is required")
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("read theme %s: %w", file, err)
	}
	defer f.Close()

	seed, err := decodeSeed(f)
	if err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", file, err)
	}
	seed.Source = file
	return seed, nil
}

// LoadSeedsFromDir loads every *.yaml and *.yml seed directly inside dir,
// sorted by name. A missing directory holds no seeds.
func LoadSeedsFromDir(dir string) ([]*Seed, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return loadSeedsFS(os.DirFS(dir), ".", func(name string) string {
		return filepath.Join(dir, name)
	})
}

// loadSeedsFS decodes the seed files directly under dir in fsys. source maps
// a file name to the Source recorded on its seed.
func loadSeedsFS(fsys fs.FS, dir string, source func(name string) string) ([]*Seed, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read themes dir %s: %w", source(""), err)
	}

	var seeds []*Seed
	for _, entry := range entries {
		if entry.IsDir() || !isSeedFile(entry.Name()) {
			continue
		}
		f, err := fsys.Open(path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read theme %s: %w", source(entry.Name()), err)
		}
		seed, err := decodeSeed(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parse theme %s: %w", source(entry.Name()), err)
		}
		seed.Source = source(entry.Name())
		seeds = append(seeds, seed)
	}

	slices.SortFunc(seeds, func(a, b *Seed) int {
		return strings.Compare(a.Name, b.Name)
	})
	return seeds, nil
}

func isSeedFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// decodeSeed reads one seed document. Unknown keys are rejected and every
// ramp is checked under its role. A seed without a base must be complete.
func decodeSeed(r io.Reader) (*Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var seed Seed
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("theme document is empty")
		}
		return nil, err
	}
	seed.normalize()

	if seed.Base != "" {
		if err := seed.check(); err != nil {
			return nil, err
		}
		return &seed, nil
	}
	if err := seed.Validate(); err != nil {
		return nil, err
	}
	return &seed, nil
}
