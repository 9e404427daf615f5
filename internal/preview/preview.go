package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/themeforge/internal/color"
	"github.com/opencode-ai/themeforge/internal/scheme"
	"github.com/opencode-ai/themeforge/internal/theme"
)

const (
	labelWidth     = 14
	defaultSwatch  = 24
	minSwatchCount = 4
	swatchGlyph    = "█"
)

// Options tunes the rendering.
type Options struct {
	// Swatches is the number of samples drawn per ramp.
	Swatches int
	// ShowHex appends hex values to role rows.
	ShowHex bool
}

// Render writes the preview of t to w. Colour output follows w's terminal
// capabilities; a plain writer gets uncoloured text.
func Render(w io.Writer, t *theme.Theme, opts Options) error {
	if t == nil || t.Scheme == nil {
		return fmt.Errorf("theme is empty")
	}
	if opts.Swatches <= 0 {
		opts.Swatches = defaultSwatch
	}
	if opts.Swatches < minSwatchCount {
		opts.Swatches = minSwatchCount
	}

	r := lipgloss.NewRenderer(w)
	s := t.Scheme
	st := BuildStyles(r, TokensFromScheme(s))
	p := &painter{r: r, styles: st, opts: opts}

	var b strings.Builder
	b.WriteString(st.Title.Render(fmt.Sprintf("%s (%s)", t.Name, t.Appearance)))
	b.WriteString("\n\n")

	b.WriteString(st.Heading.Render("Ramps"))
	b.WriteString("\n")
	for _, role := range scheme.RequiredRoles {
		b.WriteString(p.ramp(role, s.Ramp(role)))
	}

	b.WriteString("\n")
	b.WriteString(st.Heading.Render("Surfaces"))
	b.WriteString("\n")
	b.WriteString(p.states("editor", s.Background.States))
	b.WriteString(p.states("titlebar", s.Background.Titlebar))
	b.WriteString(p.states("panel", s.Background.Panel))
	b.WriteString(p.states("on panel", s.Background.OnPanel))

	b.WriteString("\n")
	b.WriteString(st.Heading.Render("Foreground"))
	b.WriteString("\n")
	b.WriteString(p.roles([]namedColor{
		{"text", s.Text.Primary},
		{"secondary", s.Text.Secondary},
		{"muted", s.Text.Muted},
		{"placeholder", s.Text.Placeholder},
		{"active", s.Text.Active},
		{"feature", s.Text.Feature},
	}))
	b.WriteString(p.roles([]namedColor{
		{"border", s.Border.Primary},
		{"secondary", s.Border.Secondary},
		{"muted", s.Border.Muted},
		{"active", s.Border.Active},
	}))

	b.WriteString("\n")
	b.WriteString(st.Heading.Render("Status"))
	b.WriteString("\n")
	b.WriteString(strings.Join([]string{
		st.Success.Render("ok"),
		st.Warning.Render("warning"),
		st.Error.Render("error"),
		st.Info.Render("info"),
	}, "  "))
	b.WriteString("\n\n")

	b.WriteString(st.Heading.Render("Players"))
	b.WriteString("\n")
	players := make([]namedColor, 0, len(s.Players))
	for i, pl := range s.Players {
		players = append(players, namedColor{fmt.Sprintf("p%d", i+1), pl.Cursor})
	}
	b.WriteString(p.roles(players))

	b.WriteString("\n")
	b.WriteString(st.Heading.Render("Syntax"))
	b.WriteString("\n")
	b.WriteString(st.Panel.Render(p.syntax(s.Syntax)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

type namedColor struct {
	name  string
	color color.Color
}

type painter struct {
	r      *lipgloss.Renderer
	styles Styles
	opts   Options
}

func (p *painter) swatch(c color.Color, width int) string {
	return p.r.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(strings.Repeat(swatchGlyph, width))
}

func (p *painter) ramp(role string, r *color.Ramp) string {
	var b strings.Builder
	b.WriteString(p.styles.Label.Render(role))
	if r == nil {
		b.WriteString(p.styles.Muted.Render("missing"))
		b.WriteString("\n")
		return b.String()
	}
	for _, c := range r.Colors(p.opts.Swatches) {
		b.WriteString(p.swatch(c, 1))
	}
	if p.opts.ShowHex {
		first, last := r.Sample(0), r.Sample(1)
		b.WriteString(" ")
		b.WriteString(p.styles.Muted.Render(first.String() + " → " + last.String()))
	}
	b.WriteString("\n")
	return b.String()
}

func (p *painter) states(name string, st scheme.States) string {
	return p.roles([]namedColor{
		{name, st.Base},
		{"hovered", st.Hovered},
		{"active", st.Active},
		{"focused", st.Focused},
		{"disabled", st.Disabled},
	})
}

func (p *painter) roles(colors []namedColor) string {
	parts := make([]string, 0, len(colors))
	for _, nc := range colors {
		part := p.swatch(nc.color, 2) + " " + nc.name
		if p.opts.ShowHex {
			part += " " + p.styles.Muted.Render(nc.color.String())
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "  ") + "\n"
}

func (p *painter) syntax(table scheme.Syntax) string {
	lines := make([]string, 0, len(table))
	for _, entry := range table {
		style := p.r.NewStyle().Foreground(lipgloss.Color(entry.Color.Hex()))
		switch entry.Weight {
		case scheme.WeightBold, scheme.WeightExtraBold, scheme.WeightBlack, scheme.WeightSemibold:
			style = style.Bold(true)
		}
		if entry.Italic {
			style = style.Italic(true)
		}
		if entry.Underline {
			style = style.Underline(true)
		}
		lines = append(lines, style.Render(entry.Kind))
	}
	return strings.Join(lines, "\n")
}
