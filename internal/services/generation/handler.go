// Package generation validates generation requests and the recipes produced for them
package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bobmcallan/cookengine/internal/common"
	"github.com/bobmcallan/cookengine/internal/interfaces"
	"github.com/bobmcallan/cookengine/internal/models"
)

// MaxIngredients caps how many cleaned ingredients reach the synthesizer.
const MaxIngredients = 10

// User-facing messages.
const (
	MsgNoIngredients    = "Please provide at least one ingredient"
	MsgNoValid          = "No valid ingredients provided"
	MsgInvalidRecipe    = "Failed to generate valid recipe"
	MsgTimeout          = "Recipe generation timed out. Please try again."
	MsgGenerationFailed = "Failed to generate recipe. Please try again."
)

// Handler runs the generation pipeline: input validation, cleaning,
// synthesis and result shape validation.
type Handler struct {
	synth   interfaces.Synthesizer
	timeout time.Duration
	logger  *common.Logger
}

// Option configures the handler
type Option func(*Handler)

// WithTimeout bounds each synthesis call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.timeout = d
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler creates a handler around synth
func NewHandler(synth interfaces.Synthesizer, opts ...Option) *Handler {
	h := &Handler{
		synth:  synth,
		logger: common.NewSilentLogger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle validates raw, the decoded "ingredients" value of a request, and
// returns a synthesized recipe. Errors are always *Error.
func (h *Handler) Handle(ctx context.Context, raw any) (*models.GeneratedRecipe, error) {
	items, ok := asSequence(raw)
	if !ok || len(items) == 0 {
		return nil, &Error{Kind: KindInvalidInput, Message: MsgNoIngredients}
	}

	cleaned := Clean(items)
	if len(cleaned) == 0 {
		return nil, &Error{Kind: KindInvalidInput, Message: MsgNoValid}
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	start := time.Now()
	recipe, err := h.synth.Synthesize(ctx, cleaned)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &Error{Kind: KindTimeout, Message: MsgTimeout, Err: err}
		}
		return nil, &Error{Kind: KindInternal, Message: MsgGenerationFailed, Err: err}
	}

	if err := recipe.Validate(); err != nil {
		h.logger.Warn().Err(err).Strs("ingredients", cleaned).Msg("Synthesized recipe failed validation")
		return nil, &Error{Kind: KindGenerationFailed, Message: MsgInvalidRecipe, Err: err}
	}

	h.logger.Debug().
		Str("name", recipe.Name).
		Int("ingredients", len(cleaned)).
		Dur("elapsed", time.Since(start)).
		Msg("Recipe generated")
	return recipe, nil
}

// Clean coerces each item to a string, trims and lowercases it, drops blanks
// and keeps the first MaxIngredients in order. Duplicates are kept.
func Clean(items []any) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		s := strings.ToLower(strings.TrimSpace(stringify(item)))
		if s == "" {
			continue
		}
		cleaned = append(cleaned, s)
		if len(cleaned) == MaxIngredients {
			break
		}
	}
	return cleaned
}

// asSequence reports whether raw is a list and returns its elements.
func asSequence(raw any) ([]any, bool) {
	switch v := raw.(type) {
	case []any:
		return v, true
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, true
	case json.RawMessage:
		var items []any
		if err := json.Unmarshal(v, &items); err != nil || items == nil {
			return nil, false
		}
		return items, true
	default:
		return nil, false
	}
}

// stringify renders a decoded JSON value as text. null becomes "null".
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return "null"
	case json.Number:
		return t.String()
	case float64, bool:
		return fmt.Sprint(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// Ensure Handler implements RecipeGenerator
var _ interfaces.RecipeGenerator = (*Handler)(nil)
