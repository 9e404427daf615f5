package theme

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/opencode-ai/themeforge/internal/scheme"
	"github.com/opencode-ai/themeforge/internal/style"
	"github.com/opencode-ai/themeforge/internal/styletree"
)

// Build generates one theme: seed ramps, colour scheme, composed style tree,
// resolved inheritance.
func Build(seed *Seed, layout styletree.Layout) (*Theme, error) {
	if seed == nil {
		return nil, fmt.Errorf("theme seed is required")
	}
	appearance, err := scheme.ParseAppearance(seed.Appearance)
	if err != nil {
		return nil, fmt.Errorf("build theme %s: %w", seed.Name, err)
	}
	ramps, err := seed.BuildRamps()
	if err != nil {
		return nil, fmt.Errorf("build theme %s: %w", seed.Name, err)
	}
	s, err := scheme.Build(seed.Name, appearance, ramps)
	if err != nil {
		return nil, fmt.Errorf("build theme %s: %w", seed.Name, err)
	}
	root, err := style.Resolve(styletree.Compose(s, layout))
	if err != nil {
		return nil, fmt.Errorf("build theme %s: %w", seed.Name, err)
	}
	return &Theme{
		Name:       seed.Name,
		Appearance: appearance,
		Scheme:     s,
		Root:       root,
	}, nil
}

// BuildOption configures BuildAll.
type BuildOption func(*buildOptions)

type buildOptions struct {
	logger zerolog.Logger
}

// WithLogger logs each finished theme at debug level.
func WithLogger(logger zerolog.Logger) BuildOption {
	return func(o *buildOptions) {
		o.logger = logger
	}
}

// BuildAll builds seeds concurrently, at most parallelism at a time, and
// returns the themes in seed order. The first failure cancels the rest.
func BuildAll(ctx context.Context, seeds []*Seed, layout styletree.Layout, parallelism int, opts ...BuildOption) ([]*Theme, error) {
	options := buildOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&options)
	}
	if parallelism <= 0 {
		parallelism = 1
	}

	themes := make([]*Theme, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			started := time.Now()
			t, err := Build(seed, layout)
			if err != nil {
				return err
			}
			options.logger.Debug().
				Str("theme", t.Name).
				Str("appearance", string(t.Appearance)).
				Dur("elapsed", time.Since(started)).
				Msg("theme built")
			themes[i] = t
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return themes, nil
}
