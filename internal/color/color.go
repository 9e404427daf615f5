// Package color provides colour values and perceptual colour ramps.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// labStep is the L* distance of one darken/brighten/desaturate step, on
// go-colorful's 0..1 Lab scale.
const labStep = 0.18

// Color is an sRGB colour with an independent alpha channel.
type Color struct {
	rgb   colorful.Color
	alpha float64
}

// RGBA builds a colour from channel values in [0,1].
func RGBA(r, g, b, a float64) Color {
	return Color{rgb: colorful.Color{R: r, G: g, B: b}, alpha: clamp01(a)}
}

// Parse reads #rgb, #rrggbb or #rrggbbaa (leading # optional).
func Parse(value string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(hex) {
	case 3, 6:
		rgb, err := colorful.Hex("#" + hex)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", value, err)
		}
		return Color{rgb: rgb, alpha: 1}, nil
	case 8:
		rgb, err := colorful.Hex("#" + hex[:6])
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", value, err)
		}
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q alpha: %w", value, err)
		}
		return Color{rgb: rgb, alpha: float64(a) / 255}, nil
	default:
		return Color{}, fmt.Errorf("parse color %q: expected #rgb, #rrggbb or #rrggbbaa", value)
	}
}

// MustParse is Parse for compile-time constants.
func MustParse(value string) Color {
	c, err := Parse(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Alpha returns the alpha channel in [0,1].
func (c Color) Alpha() float64 {
	return c.alpha
}

// WithAlpha returns the colour with its alpha replaced.
func (c Color) WithAlpha(alpha float64) Color {
	c.alpha = clamp01(alpha)
	return c
}

// Darken lowers L* by amount steps.
func (c Color) Darken(amount float64) Color {
	l, a, b := c.rgb.Lab()
	c.rgb = colorful.Lab(l-labStep*amount, a, b).Clamped()
	return c
}

// Brighten raises L* by amount steps.
func (c Color) Brighten(amount float64) Color {
	return c.Darken(-amount)
}

// Desaturate lowers LCh chroma by amount steps, stopping at grey.
func (c Color) Desaturate(amount float64) Color {
	h, chroma, l := c.rgb.Hcl()
	chroma = math.Max(0, chroma-labStep*amount)
	c.rgb = colorful.Hcl(h, chroma, l).Clamped()
	return c
}

// Blend interpolates towards other in L*a*b*; alpha interpolates linearly.
func (c Color) Blend(other Color, t float64) Color {
	return Color{
		rgb:   c.rgb.BlendLab(other.rgb, t).Clamped(),
		alpha: c.alpha + (other.alpha-c.alpha)*t,
	}
}

// DistanceLab is the Euclidean L*a*b* distance, ignoring alpha.
func (c Color) DistanceLab(other Color) float64 {
	return c.rgb.DistanceLab(other.rgb)
}

// Lightness returns L* on a 0..1 scale.
func (c Color) Lightness() float64 {
	l, _, _ := c.rgb.Lab()
	return l
}

// Hex returns #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	r, g, b := c.rgb.Clamped().RGB255()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String returns #rrggbb for opaque colours and #rrggbbaa otherwise.
func (c Color) String() string {
	a := uint8(math.Round(c.alpha * 255))
	if a == 0xff {
		return c.Hex()
	}
	return fmt.Sprintf("%s%02x", c.Hex(), a)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
