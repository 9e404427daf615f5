// Package theme turns theme seeds into resolved style trees and writes them
// out as JSON documents.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/opencode-ai/themeforge/internal/color"
	"github.com/opencode-ai/themeforge/internal/scheme"
	"github.com/opencode-ai/themeforge/internal/style"
)

var (
	// ErrSeedNameRequired is returned when a seed has no name.
	ErrSeedNameRequired = errors.New("theme name is required")
	// ErrThemeNotFound is returned when a requested theme does not exist.
	ErrThemeNotFound = errors.New("theme not found")
)

// SeedValidationError describes an invalid field in a seed.
type SeedValidationError struct {
	Field   string
	Role    string
	Message string
}

func (e *SeedValidationError) Error() string {
	if e.Role != "" {
		return fmt.Sprintf("theme %s.%s: %s", e.Field, e.Role, e.Message)
	}
	return fmt.Sprintf("theme %s: %s", e.Field, e.Message)
}

// Seed is the hand-written description a theme is generated from. A seed
// with a Base inherits the base seed's author, appearance and every ramp it
// does not define itself.
type Seed struct {
	Name       string              `yaml:"name"`
	Base       string              `yaml:"base,omitempty"`
	Author     string              `yaml:"author,omitempty"`
	Appearance string              `yaml:"appearance,omitempty"`
	Ramps      map[string]RampSeed `yaml:"ramps"`
	Source     string              `yaml:"-"` // file path or "builtin"
}

// RampSeed is the seed of one colour ramp. A single colour is expanded into a
// dark-to-light ramp through it.
type RampSeed struct {
	Colors []string  `yaml:"colors"`
	Domain []float64 `yaml:"domain,omitempty"`
}

// UnmarshalYAML accepts a bare colour, a list of colours, or a mapping with
// colors and domain.
func (r *RampSeed) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		r.Colors = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		return node.Decode(&r.Colors)
	default:
		type plain RampSeed
		var p plain
		if err := node.Decode(&p); err != nil {
			return err
		}
		*r = RampSeed(p)
		return nil
	}
}

// Ramp builds the colour ramp described by the seed.
func (r RampSeed) Ramp() (*color.Ramp, error) {
	colors := make([]color.Color, 0, len(r.Colors))
	for _, value := range r.Colors {
		c, err := color.Parse(value)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	if len(colors) == 1 && len(r.Domain) == 0 {
		return color.ExpandRamp(colors[0]), nil
	}
	var opts []color.RampOption
	if len(r.Domain) > 0 {
		opts = append(opts, color.WithDomain(r.Domain...))
	}
	return color.NewRamp(colors, opts...)
}

// Validate checks the seed names a theme, a known appearance and every ramp
// role a scheme samples.
func (s *Seed) Validate() error {
	if err := s.check(); err != nil {
		return err
	}
	if s.Appearance == "" {
		return &SeedValidationError{Field: "appearance", Message: "appearance is required"}
	}
	for _, role := range scheme.RequiredRoles {
		if _, ok := s.Ramps[role]; !ok {
			return &SeedValidationError{Field: "ramps", Role: role, Message: "ramp is required"}
		}
	}
	return nil
}

// check validates what a seed states about itself, without requiring what a
// base could still supply.
func (s *Seed) check() error {
	if s.Name == "" {
		return ErrSeedNameRequired
	}
	if s.Appearance != "" {
		if _, err := scheme.ParseAppearance(s.Appearance); err != nil {
			return &SeedValidationError{Field: "appearance", Message: err.Error()}
		}
	}
	for _, role := range s.roles() {
		if _, err := s.Ramps[role].Ramp(); err != nil {
			return &SeedValidationError{Field: "ramps", Role: role, Message: err.Error()}
		}
	}
	return nil
}

func (s *Seed) normalize() {
	s.Name = strings.TrimSpace(s.Name)
	s.Base = strings.TrimSpace(s.Base)
	s.Author = strings.TrimSpace(s.Author)
	s.Appearance = strings.ToLower(strings.TrimSpace(s.Appearance))
}

// inherit returns a copy of s completed from base. Own fields and ramps win.
func (s *Seed) inherit(base *Seed) *Seed {
	out := *s
	if out.Author == "" {
		out.Author = base.Author
	}
	if out.Appearance == "" {
		out.Appearance = base.Appearance
	}
	out.Ramps = make(map[string]RampSeed, len(base.Ramps)+len(s.Ramps))
	for role, r := range base.Ramps {
		out.Ramps[role] = r
	}
	for role, r := range s.Ramps {
		out.Ramps[role] = r
	}
	return &out
}

// BuildRamps builds every ramp of the seed keyed by role.
func (s *Seed) BuildRamps() (map[string]*color.Ramp, error) {
	ramps := make(map[string]*color.Ramp, len(s.Ramps))
	for _, role := range s.roles() {
		r, err := s.Ramps[role].Ramp()
		if err != nil {
			return nil, fmt.Errorf("ramp %s: %w", role, err)
		}
		ramps[role] = r
	}
	return ramps, nil
}

func (s *Seed) roles() []string {
	roles := make([]string, 0, len(s.Ramps))
	for role := range s.Ramps {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// Theme is one generated theme.
type Theme struct {
	Name       string
	Appearance scheme.Appearance
	Scheme     *scheme.Scheme
	// Root is the resolved style tree with camelCase keys.
	Root *style.Node
}

// Slug converts a theme name to its file name stem: lower case, with every
// run of other characters collapsed to a single dash.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
