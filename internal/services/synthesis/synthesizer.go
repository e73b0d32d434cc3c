// Package synthesis produces generated recipes from a cleaned ingredient list
package synthesis

import (
	"context"
	"time"

	"github.com/bobmcallan/cookengine/internal/common"
	"github.com/bobmcallan/cookengine/internal/interfaces"
	"github.com/bobmcallan/cookengine/internal/models"
)

// DefaultDelay is the simulated generation latency.
const DefaultDelay = 1500 * time.Millisecond

// Synthesizer stands in for a generative model: it waits out a simulated
// latency and then composes a recipe from the fixed templates.
type Synthesizer struct {
	delay  time.Duration
	logger *common.Logger
}

// Option configures the synthesizer
type Option func(*Synthesizer)

// WithDelay sets the simulated latency. Zero or negative disables it.
func WithDelay(d time.Duration) Option {
	return func(s *Synthesizer) {
		s.delay = d
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) Option {
	return func(s *Synthesizer) {
		s.logger = logger
	}
}

// NewSynthesizer creates a template synthesizer
func NewSynthesizer(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		delay:  DefaultDelay,
		logger: common.NewSilentLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize waits for the configured delay, then returns the templated recipe.
// It returns ctx.Err() if the context ends before the delay elapses.
func (s *Synthesizer) Synthesize(ctx context.Context, ingredients []string) (*models.GeneratedRecipe, error) {
	if err := wait(ctx, s.delay); err != nil {
		return nil, err
	}

	recipe := Compose(ingredients)
	s.logger.Debug().
		Str("template", string(Select(ingredients))).
		Int("ingredients", len(recipe.Ingredients)).
		Int("steps", len(recipe.Steps)).
		Msg("Recipe synthesized")
	return &recipe, nil
}

// wait blocks for d or until ctx is done, whichever comes first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Func adapts a plain function to the Synthesizer interface.
type Func func(ctx context.Context, ingredients []string) (*models.GeneratedRecipe, error)

// Synthesize calls f.
func (f Func) Synthesize(ctx context.Context, ingredients []string) (*models.GeneratedRecipe, error) {
	return f(ctx, ingredients)
}

var (
	_ interfaces.Synthesizer = (*Synthesizer)(nil)
	_ interfaces.Synthesizer = Func(nil)
)
