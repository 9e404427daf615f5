package styletree

import (
	"github.com/opencode-ai/themeforge/internal/color"
	"github.com/opencode-ai/themeforge/internal/scheme"
	"github.com/opencode-ai/themeforge/internal/style"
)

// Family selects a typeface from the layout.
type Family int

// Typefaces.
const (
	Sans Family = iota
	Mono
)

// TextStyle is a fully populated text record. Variants are derived with the
// With* overlays rather than by mutating a shared value.
type TextStyle struct {
	Family    string
	Size      float64
	Color     color.Color
	Weight    scheme.FontWeight
	Italic    bool
	Underline bool
}

// Text builds a text record at normal weight.
func Text(l Layout, f Family, size float64, c color.Color) TextStyle {
	name := l.Fonts.Sans
	if f == Mono {
		name = l.Fonts.Mono
	}
	return TextStyle{
		Family: name,
		Size:   size,
		Color:  c,
		Weight: scheme.WeightNormal,
	}
}

// WithSize overlays the font size.
func (t TextStyle) WithSize(size float64) TextStyle {
	t.Size = size
	return t
}

// WithColor overlays the colour.
func (t TextStyle) WithColor(c color.Color) TextStyle {
	t.Color = c
	return t
}

// WithWeight overlays the weight.
func (t TextStyle) WithWeight(w scheme.FontWeight) TextStyle {
	t.Weight = w
	return t
}

// WithItalic overlays the italic flag.
func (t TextStyle) WithItalic(italic bool) TextStyle {
	t.Italic = italic
	return t
}

// WithUnderline overlays the underline flag.
func (t TextStyle) WithUnderline(underline bool) TextStyle {
	t.Underline = underline
	return t
}

// Node implements style.Noder.
func (t TextStyle) Node() *style.Node {
	n := style.New(
		style.F("family", t.Family),
		style.F("color", t.Color),
		style.F("size", t.Size),
	)
	if t.Weight != "" && t.Weight != scheme.WeightNormal {
		n.Set("weight", string(t.Weight))
	}
	if t.Italic {
		n.Set("italic", true)
	}
	if t.Underline {
		n.Set("underline", true)
	}
	return n
}

// BorderStyle is a border record. A border with no sides set applies to all
// four.
type BorderStyle struct {
	Color   color.Color
	Width   float64
	Top     bool
	Bottom  bool
	Left    bool
	Right   bool
	Overlay bool
}

// BorderOption adjusts a border record.
type BorderOption func(*BorderStyle)

// Top draws the top side.
func Top() BorderOption { return func(b *BorderStyle) { b.Top = true } }

// Bottom draws the bottom side.
func Bottom() BorderOption { return func(b *BorderStyle) { b.Bottom = true } }

// Left draws the left side.
func Left() BorderOption { return func(b *BorderStyle) { b.Left = true } }

// Right draws the right side.
func Right() BorderOption { return func(b *BorderStyle) { b.Right = true } }

// Overlay draws the border over the content.
func Overlay() BorderOption { return func(b *BorderStyle) { b.Overlay = true } }

// Width sets the stroke width.
func Width(w float64) BorderOption { return func(b *BorderStyle) { b.Width = w } }

// Border builds a one unit wide border record.
func Border(c color.Color, opts ...BorderOption) BorderStyle {
	b := BorderStyle{Color: c, Width: 1}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Node implements style.Noder.
func (b BorderStyle) Node() *style.Node {
	n := style.New(
		style.F("color", b.Color),
		style.F("width", b.Width),
	)
	for _, side := range []struct {
		key string
		on  bool
	}{{"top", b.Top}, {"bottom", b.Bottom}, {"left", b.Left}, {"right", b.Right}, {"overlay", b.Overlay}} {
		if side.on {
			n.Set(side.key, true)
		}
	}
	return n
}

// ShadowStyle is a drop shadow record.
type ShadowStyle struct {
	Blur    float64
	Color   color.Color
	OffsetX float64
	OffsetY float64
}

// Node implements style.Noder.
func (s ShadowStyle) Node() *style.Node {
	return style.New(
		style.F("blur", s.Blur),
		style.F("color", s.Color),
		style.F("offset", []float64{s.OffsetX, s.OffsetY}),
	)
}

// PopoverShadow is the shadow under menus and tooltips.
func PopoverShadow(s *scheme.Scheme) ShadowStyle {
	return ShadowStyle{Blur: 4, Color: s.Shadow, OffsetX: 1, OffsetY: 2}
}

// ModalShadow is the shadow under pickers and notifications.
func ModalShadow(s *scheme.Scheme) ShadowStyle {
	return ShadowStyle{Blur: 16, Color: s.Shadow, OffsetX: 0, OffsetY: 2}
}

// Edges is a padding or margin record.
type Edges struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// even spaces all four edges by v.
func even(v float64) Edges {
	return Edges{Top: v, Bottom: v, Left: v, Right: v}
}

// axes spaces top/bottom by vertical and left/right by horizontal.
func axes(vertical, horizontal float64) Edges {
	return Edges{Top: vertical, Bottom: vertical, Left: horizontal, Right: horizontal}
}

// Node implements style.Noder.
func (e Edges) Node() *style.Node {
	return style.New(
		style.F("top", e.Top),
		style.F("bottom", e.Bottom),
		style.F("left", e.Left),
		style.F("right", e.Right),
	)
}

// containedText is a text record laid inside a padded, optionally filled box.
func containedText(t TextStyle, pad Edges, fields ...style.Field) *style.Node {
	n := t.Node()
	n.Set("padding", pad)
	for _, f := range fields {
		n.Set(f.Key, f.Value)
	}
	return n
}

// Background renders a background state set.
func Background(states scheme.States) *style.Node {
	return style.New(
		style.F("base", states.Base),
		style.F("hovered", states.Hovered),
		style.F("active", states.Active),
		style.F("focused", states.Focused),
		style.F("disabled", states.Disabled),
	)
}
