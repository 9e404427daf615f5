package color

import (
	"fmt"
	"math"
)

// InvalidRampError reports a ramp that cannot be built from its inputs.
type InvalidRampError struct {
	Reason string
}

func (e *InvalidRampError) Error() string {
	return fmt.Sprintf("invalid ramp: %s", e.Reason)
}

// Ramp maps a position in [0,1] onto a colour by interpolating between
// seed colours in L*a*b*.
type Ramp struct {
	seeds  []Color
	domain []float64
}

// RampOption configures NewRamp.
type RampOption func(*rampOptions)

type rampOptions struct {
	domain []float64
}

// WithDomain places each seed at a breakpoint instead of spacing the seeds
// evenly. Breakpoints must be strictly increasing, lie in [0,1] and match
// the number of seeds.
func WithDomain(breakpoints ...float64) RampOption {
	return func(o *rampOptions) {
		o.domain = append([]float64(nil), breakpoints...)
	}
}

// NewRamp builds a ramp from two or more seed colours.
func NewRamp(seeds []Color, opts ...RampOption) (*Ramp, error) {
	if len(seeds) < 2 {
		return nil, &InvalidRampError{Reason: fmt.Sprintf("need at least 2 seed colors, got %d", len(seeds))}
	}

	var o rampOptions
	for _, opt := range opts {
		opt(&o)
	}

	domain := o.domain
	if domain == nil {
		domain = evenDomain(len(seeds))
	} else if err := validateDomain(domain, len(seeds)); err != nil {
		return nil, err
	}

	return &Ramp{
		seeds:  append([]Color(nil), seeds...),
		domain: domain,
	}, nil
}

// MustRamp is NewRamp for static seed tables.
func MustRamp(seeds []Color, opts ...RampOption) *Ramp {
	r, err := NewRamp(seeds, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// ExpandRamp derives a full ramp from one seed hue: a desaturated dark end,
// the seed itself in the middle and a desaturated light end.
func ExpandRamp(seed Color) *Ramp {
	start := seed.Desaturate(1).Darken(4)
	end := seed.Desaturate(1).Brighten(5)
	return &Ramp{
		seeds:  []Color{start, seed, end},
		domain: evenDomain(3),
	}
}

// Sample returns the colour at position p, clamped to [0,1]. Positions that
// land exactly on a breakpoint return that seed unchanged.
func (r *Ramp) Sample(p float64) Color {
	p = clamp01(p)

	last := len(r.domain) - 1
	if p <= r.domain[0] {
		return r.seeds[0]
	}
	if p >= r.domain[last] {
		return r.seeds[last]
	}

	for i := 0; i < last; i++ {
		lo, hi := r.domain[i], r.domain[i+1]
		if p > hi {
			continue
		}
		if p == lo {
			return r.seeds[i]
		}
		if p == hi {
			return r.seeds[i+1]
		}
		t := (p - lo) / (hi - lo)
		return r.seeds[i].Blend(r.seeds[i+1], t)
	}
	return r.seeds[last]
}

// Colors returns n evenly spaced samples from the start to the end.
func (r *Ramp) Colors(n int) []Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []Color{r.Sample(0)}
	}
	out := make([]Color, n)
	for i := range out {
		out[i] = r.Sample(float64(i) / float64(n-1))
	}
	return out
}

// Reversed returns the ramp running from the last seed to the first.
func (r *Ramp) Reversed() *Ramp {
	n := len(r.seeds)
	seeds := make([]Color, n)
	domain := make([]float64, n)
	for i := 0; i < n; i++ {
		seeds[i] = r.seeds[n-1-i]
		domain[i] = 1 - r.domain[n-1-i]
	}
	return &Ramp{seeds: seeds, domain: domain}
}

// Seeds returns a copy of the seed colours.
func (r *Ramp) Seeds() []Color {
	return append([]Color(nil), r.seeds...)
}

// Domain returns a copy of the breakpoints.
func (r *Ramp) Domain() []float64 {
	return append([]float64(nil), r.domain...)
}

func evenDomain(n int) []float64 {
	domain := make([]float64, n)
	for i := range domain {
		domain[i] = float64(i) / float64(n-1)
	}
	return domain
}

func validateDomain(domain []float64, seeds int) error {
	if len(domain) != seeds {
		return &InvalidRampError{Reason: fmt.Sprintf("domain has %d breakpoints for %d seeds", len(domain), seeds)}
	}
	for i, v := range domain {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return &InvalidRampError{Reason: fmt.Sprintf("domain breakpoint %d (%v) outside [0,1]", i, v)}
		}
		if i > 0 && v <= domain[i-1] {
			return &InvalidRampError{Reason: fmt.Sprintf("domain is not strictly increasing at breakpoint %d", i)}
		}
	}
	return nil
}
