// Package preview renders a generated theme as coloured terminal swatches.
package preview

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themeforge/internal/scheme"
)

// Tokens are the scheme roles the preview chrome is drawn with.
type Tokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// TokensFromScheme picks the preview chrome colours from a scheme.
func TokensFromScheme(s *scheme.Scheme) Tokens {
	return Tokens{
		Background: s.Background.Base.Hex(),
		Panel:      s.Background.Panel.Base.Hex(),
		Text:       s.Text.Primary.Hex(),
		TextMuted:  s.Text.Muted.Hex(),
		Border:     s.Border.Primary.Hex(),
		Accent:     s.Text.Feature.Hex(),
		Focus:      s.Border.Active.Hex(),
		Success:    s.Text.Ok.Hex(),
		Warning:    s.Text.Warning.Hex(),
		Error:      s.Text.Error.Hex(),
		Info:       s.Text.Info.Hex(),
	}
}

// Styles contains lipgloss styles derived from preview tokens.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Panel   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// BuildStyles converts tokens into lipgloss styles bound to renderer r.
func BuildStyles(r *lipgloss.Renderer, tokens Tokens) Styles {
	return Styles{
		Title:   r.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Background)).Bold(true).Padding(0, 1),
		Heading: r.NewStyle().Foreground(lipgloss.Color(tokens.Accent)).Bold(true),
		Label:   r.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Width(labelWidth),
		Muted:   r.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Panel:   r.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)).Padding(0, 1),
		Success: r.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Warning: r.NewStyle().Foreground(lipgloss.Color(tokens.Warning)),
		Error:   r.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		Info:    r.NewStyle().Foreground(lipgloss.Color(tokens.Info)),
	}
}
