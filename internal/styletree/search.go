package styletree

import (
	"strings"

	"github.com/opencode-ai/themeforge/internal/color"
	"github.com/opencode-ai/themeforge/internal/scheme"
	"github.com/opencode-ai/themeforge/internal/style"
)

func search(s *scheme.Scheme, l Layout) *style.Node {
	editor := style.New(
		style.F("background", s.Background.OnPanel.Base),
		style.F("cornerRadius", l.CornerRadius*1.5),
		style.F("minWidth", 200.0),
		style.F("maxWidth", 500.0),
		style.F("placeholderText", Text(l, Mono, l.Sizes.SM, s.Text.Placeholder)),
		style.F("selection", s.Players[0].Selection),
		style.F("text", Text(l, Mono, l.Sizes.SM, s.Text.Active)),
		style.F("border", Border(s.Border.Secondary)),
		style.F("margin", Edges{Right: 12}),
		style.F("padding", axes(3, 12)),
	)

	option := style.New(
		style.F("text", Text(l, Mono, l.Sizes.SM, s.Text.Secondary)),
		style.F("background", s.Background.OnPanel.Base),
		style.F("cornerRadius", l.CornerRadius),
		style.F("border", Border(s.Border.Secondary)),
		style.F("margin", Edges{Right: 4}),
		style.F("padding", axes(2, 6)),
	)

	return style.New(
		style.F("matchBackground", s.Editor.Match),
		style.F("tabIconSpacing", l.Spacing),
		style.F("tabIconWidth", 14.0),
		style.F("optionButton", option),
		style.F("activeOptionButton", style.Extending("$search.optionButton",
			style.F("background", s.Background.OnPanel.Active),
			style.F("border", Border(s.Border.Active)),
		)),
		style.F("hoveredOptionButton", style.Extending("$search.optionButton",
			style.F("background", s.Background.OnPanel.Hovered),
		)),
		style.F("activeHoveredOptionButton", style.Extending("$search.activeOptionButton",
			style.F("background", s.Background.OnPanel.Hovered),
		)),
		style.F("editor", editor),
		style.F("invalidEditor", style.Extending("$search.editor",
			style.F("border", Border(s.Border.Error)),
		)),
		style.F("matchIndex", style.New(
			style.F("text", Text(l, Mono, l.Sizes.SM, s.Text.Muted)),
			style.F("padding", Edges{Left: 6}),
		)),
		style.F("optionButtonGroup", style.New(
			style.F("padding", Edges{Left: 12, Right: 12}),
		)),
		style.F("resultsStatus", Text(l, Mono, l.Sizes.LG, s.Text.Primary)),
	)
}

func projectDiagnostics(s *scheme.Scheme, l Layout) *style.Node {
	return style.New(
		style.F("tabIconSpacing", 4.0),
		style.F("tabIconWidth", 13.0),
		style.F("tabSummarySpacing", 10.0),
		style.F("emptyMessage", Text(l, Sans, l.Sizes.LG, s.Text.Primary)),
		style.F("statusBarItem", Text(l, Sans, l.Sizes.SM, s.Text.Secondary)),
	)
}

// terminalColors lists the ANSI slots in terminal order with the ramp each
// is sampled from.
var terminalColors = []struct {
	name string
	role string
}{
	{"red", scheme.Red},
	{"green", scheme.Green},
	{"yellow", scheme.Yellow},
	{"blue", scheme.Blue},
	{"magenta", scheme.Magenta},
	{"cyan", scheme.Cyan},
}

func terminal(s *scheme.Scheme, l Layout) *style.Node {
	// ANSI colours are absolute, so undo the light-theme ramp reversal.
	sample := func(role string, p float64) color.Color {
		if s.IsLight() {
			p = 1 - p
		}
		return s.Sample(role, p)
	}

	colors := style.New(
		style.F("black", sample(scheme.Neutral, 0)),
	)
	for _, c := range terminalColors {
		colors.Set(c.name, sample(c.role, 0.5))
	}
	colors.Set("white", sample(scheme.Neutral, 0.875))
	colors.Set("brightBlack", sample(scheme.Neutral, 0.25))
	for _, c := range terminalColors {
		colors.Set("bright"+strings.ToUpper(c.name[:1])+c.name[1:], sample(c.role, 0.75))
	}
	colors.Set("brightWhite", sample(scheme.Neutral, 1))
	colors.Set("foreground", s.Text.Primary)
	colors.Set("background", s.Background.Base)
	colors.Set("modalBackground", s.Background.OnPanel.Base)
	colors.Set("cursor", s.Players[0].Cursor)
	colors.Set("dimBlack", s.Text.Muted)
	colors.Set("brightForeground", s.Text.Active)
	colors.Set("dimForeground", s.Text.Secondary)

	return style.New(
		style.F("colors", colors),
		style.F("font", Text(l, Mono, l.Sizes.SM, s.Text.Primary)),
		style.F("modalContainer", style.New(
			style.F("background", style.RefTo("$terminal.colors.modalBackground")),
			style.F("margin", Edges{Bottom: 56, Top: 56}),
		)),
	)
}
