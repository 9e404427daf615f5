package scheme

import "github.com/opencode-ai/themeforge/internal/color"

// FontWeight is a named font weight as understood by the renderer.
type FontWeight string

// Font weights.
const (
	WeightThin       FontWeight = "thin"
	WeightExtraLight FontWeight = "extra_light"
	WeightLight      FontWeight = "light"
	WeightNormal     FontWeight = "normal"
	WeightMedium     FontWeight = "medium"
	WeightSemibold   FontWeight = "semibold"
	WeightBold       FontWeight = "bold"
	WeightExtraBold  FontWeight = "extra_bold"
	WeightBlack      FontWeight = "black"
)

// Highlight is the style of one syntax token kind.
type Highlight struct {
	Color     color.Color
	Weight    FontWeight
	Italic    bool
	Underline bool
}

// SyntaxEntry binds a token kind to its highlight.
type SyntaxEntry struct {
	Kind string
	Highlight
}

// Syntax is the ordered highlight table of a scheme.
type Syntax []SyntaxEntry

// Lookup returns the highlight for kind.
func (s Syntax) Lookup(kind string) (Highlight, bool) {
	for _, entry := range s {
		if entry.Kind == kind {
			return entry.Highlight, true
		}
	}
	return Highlight{}, false
}

func buildSyntax(s *Scheme) Syntax {
	hue := func(role string) Highlight {
		return Highlight{Color: s.Sample(role, hueMid), Weight: WeightNormal}
	}
	tone := func(step float64) Highlight {
		return Highlight{Color: s.neutral(step), Weight: WeightNormal}
	}

	// Kinds in the same colour family share one record.
	blue := hue(Blue)
	green := hue(Green)
	orange := hue(Orange)
	yellow := hue(Yellow)

	strong := blue
	strong.Weight = WeightBold
	link := green
	link.Underline = true
	linkText := orange
	linkText.Italic = true
	title := yellow
	title.Weight = WeightBold
	comment := tone(5)
	comment.Italic = true

	return Syntax{
		{Kind: "primary", Highlight: tone(6)},
		{Kind: "comment", Highlight: comment},
		{Kind: "punctuation", Highlight: tone(5.5)},
		{Kind: "constant", Highlight: tone(4)},
		{Kind: "keyword", Highlight: blue},
		{Kind: "function", Highlight: yellow},
		{Kind: "type", Highlight: hue(Cyan)},
		{Kind: "variant", Highlight: blue},
		{Kind: "property", Highlight: blue},
		{Kind: "enum", Highlight: orange},
		{Kind: "operator", Highlight: orange},
		{Kind: "string", Highlight: orange},
		{Kind: "number", Highlight: green},
		{Kind: "boolean", Highlight: green},
		{Kind: "predictive", Highlight: tone(4)},
		{Kind: "title", Highlight: title},
		{Kind: "emphasis", Highlight: blue},
		{Kind: "emphasis.strong", Highlight: strong},
		{Kind: "linkUri", Highlight: link},
		{Kind: "linkText", Highlight: linkText},
	}
}
