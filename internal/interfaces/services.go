// Package interfaces defines service contracts for CookEngine
package interfaces

import (
	"context"

	"github.com/bobmcallan/cookengine/internal/models"
)

// CatalogStore provides read-only access to the recipe catalog
type CatalogStore interface {
	// ListAll returns every recipe in definition order
	ListAll() []models.Recipe

	// FindByID returns the recipe with the given ID
	FindByID(id string) (models.Recipe, bool)

	// AllIngredients returns the lowercase, de-duplicated, sorted ingredient vocabulary
	AllIngredients() []string

	// SearchIngredients returns vocabulary entries containing query, ignoring case
	SearchIngredients(query string) []string
}

// Synthesizer produces a recipe from a cleaned ingredient list.
// Implementations may be template-driven or backed by a generative model.
type Synthesizer interface {
	Synthesize(ctx context.Context, ingredients []string) (*models.GeneratedRecipe, error)
}

// RecipeGenerator validates raw generation input and returns a shape-checked recipe
type RecipeGenerator interface {
	// Handle accepts the decoded "ingredients" value of a request body
	Handle(ctx context.Context, raw any) (*models.GeneratedRecipe, error)
}
