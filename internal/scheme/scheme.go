// Package scheme assembles semantic colour roles from a set of colour ramps.
package scheme

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/themeforge/internal/color"
)

// Appearance selects which end of each ramp backgrounds are drawn from.
type Appearance string

const (
	// Dark themes draw backgrounds from the dark end of neutral.
	Dark Appearance = "dark"
	// Light themes draw backgrounds from the light end of neutral.
	Light Appearance = "light"
)

// ParseAppearance accepts "dark" or "light" in any case.
func ParseAppearance(value string) (Appearance, error) {
	switch Appearance(strings.ToLower(strings.TrimSpace(value))) {
	case Dark:
		return Dark, nil
	case Light:
		return Light, nil
	default:
		return "", fmt.Errorf("unknown appearance %q (expected dark or light)", value)
	}
}

// IsLight reports whether the appearance is light.
func (a Appearance) IsLight() bool {
	return a == Light
}

// Ramp role names.
const (
	Neutral = "neutral"
	Red     = "red"
	Orange  = "orange"
	Yellow  = "yellow"
	Green   = "green"
	Cyan    = "cyan"
	Blue    = "blue"
	Violet  = "violet"
	Magenta = "magenta"
)

// RequiredRoles lists every ramp a scheme samples, in check order.
var RequiredRoles = []string{Neutral, Red, Orange, Yellow, Green, Cyan, Blue, Violet, Magenta}

// MissingRampError names a ramp role the scheme needs but was not given.
type MissingRampError struct {
	Role string
}

func (e *MissingRampError) Error() string {
	return fmt.Sprintf("missing ramp %q", e.Role)
}

// States holds one colour per interaction state.
type States struct {
	Base     color.Color
	Hovered  color.Color
	Active   color.Color
	Focused  color.Color
	Disabled color.Color
}

// Backgrounds groups background surfaces. The embedded States is the editor
// surface, the lowest layer of the window.
type Backgrounds struct {
	States
	Titlebar States
	Panel    States
	OnPanel  States
	OnEditor States
	Ok       States
	Error    States
	Warning  States
	Info     States
}

// Borders are the border colour roles.
type Borders struct {
	Primary   color.Color
	Secondary color.Color
	Muted     color.Color
	Active    color.Color
	OnMedia   color.Color
	Ok        color.Color
	Error     color.Color
	Warning   color.Color
	Info      color.Color
}

// Texts are the foreground colour roles for text.
type Texts struct {
	Primary     color.Color
	Secondary   color.Color
	Muted       color.Color
	Placeholder color.Color
	Active      color.Color
	Feature     color.Color
	Ok          color.Color
	Error       color.Color
	Warning     color.Color
	Info        color.Color
	OnMedia     color.Color
}

// Icons are the foreground colour roles for icons.
type Icons struct {
	Primary     color.Color
	Secondary   color.Color
	Muted       color.Color
	Placeholder color.Color
	Active      color.Color
	Feature     color.Color
	Ok          color.Color
	Error       color.Color
	Warning     color.Color
	Info        color.Color
}

// Player is the colour set of one collaborator.
type Player struct {
	Cursor    color.Color
	Selection color.Color
	Border    color.Color
}

// EditorColors are surfaces specific to the text editor.
type EditorColors struct {
	Background             color.Color
	IndentGuide            color.Color
	IndentGuideActive      color.Color
	ActiveLine             color.Color
	HighlightedLine        color.Color
	Selection              color.Color
	Occurrence             color.Color
	ActiveOccurrence       color.Color
	MatchingBracket        color.Color
	Match                  color.Color
	ActiveMatch            color.Color
	Related                color.Color
	GutterPrimary          color.Color
	GutterActive           color.Color
	DocumentHighlightRead  color.Color
	DocumentHighlightWrite color.Color
}

// PlayerCount is the number of collaborator colour sets.
const PlayerCount = 8

// Scheme is the resolved palette of one theme. It is not modified after
// Build returns.
type Scheme struct {
	Name       string
	Appearance Appearance

	Background Backgrounds
	Border     Borders
	Text       Texts
	Icon       Icons
	Players    [PlayerCount]Player
	Syntax     Syntax
	Editor     EditorColors
	Shadow     color.Color

	ramps map[string]*color.Ramp
}

// IsLight reports whether the scheme is a light theme.
func (s *Scheme) IsLight() bool {
	return s.Appearance.IsLight()
}

// Ramp returns the appearance-oriented ramp for role, or nil.
func (s *Scheme) Ramp(role string) *color.Ramp {
	return s.ramps[role]
}

// Sample samples the appearance-oriented ramp for role at p.
func (s *Scheme) Sample(role string, p float64) color.Color {
	return s.ramps[role].Sample(p)
}

// Build assembles a scheme. Light themes sample every ramp reversed, so the
// position tables below describe a dark theme and flip automatically.
func Build(name string, appearance Appearance, ramps map[string]*color.Ramp) (*Scheme, error) {
	oriented := make(map[string]*color.Ramp, len(ramps))
	for _, role := range RequiredRoles {
		r, ok := ramps[role]
		if !ok || r == nil {
			return nil, &MissingRampError{Role: role}
		}
		if appearance.IsLight() {
			r = r.Reversed()
		}
		oriented[role] = r
	}

	s := &Scheme{
		Name:       name,
		Appearance: appearance,
		ramps:      oriented,
	}
	s.Background = buildBackgrounds(s)
	s.Border = buildBorders(s)
	s.Text = buildTexts(s)
	s.Icon = buildIcons(s)
	s.Players = buildPlayers(s)
	s.Syntax = buildSyntax(s)
	s.Editor = buildEditor(s)

	shadowBlend := 0.24
	if s.IsLight() {
		shadowBlend = 0.12
	}
	s.Shadow = s.darkest().Darken(1).WithAlpha(shadowBlend)

	return s, nil
}

func (s *Scheme) darkest() color.Color {
	if s.IsLight() {
		return s.Sample(Neutral, 1)
	}
	return s.Sample(Neutral, 0)
}
