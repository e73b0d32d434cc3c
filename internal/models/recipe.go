// Package models defines the data types shared across CookEngine
package models

import (
	"errors"
	"strings"
)

// Recipe is a catalog entry. Catalog recipes are loaded once and never mutated.
type Recipe struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	CookTime    string   `json:"cookTime"`
	Difficulty  string   `json:"difficulty"`
	Category    string   `json:"category"`
}

// Difficulty constants.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Category constants.
const (
	CategoryBreakfast = "Breakfast"
	CategoryLunch     = "Lunch"
	CategoryDinner    = "Dinner"
	CategoryDessert   = "Dessert"
	CategorySnack     = "Snack"
)

// ValidDifficulties is the set of allowed difficulty values.
var ValidDifficulties = map[string]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

// ValidCategories is the set of allowed category values.
var ValidCategories = map[string]bool{
	CategoryBreakfast: true,
	CategoryLunch:     true,
	CategoryDinner:    true,
	CategoryDessert:   true,
	CategorySnack:     true,
}

// NormalizedIngredients returns the recipe's ingredients lowercased for comparison.
// Display casing stays on the Recipe itself.
func (r Recipe) NormalizedIngredients() []string {
	return NormalizeAll(r.Ingredients)
}

// GeneratedRecipe is an ephemeral synthesized recipe, owned by a single response.
type GeneratedRecipe struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

// Shape errors reported by GeneratedRecipe.Validate.
var (
	ErrMissingName        = errors.New("recipe name is empty")
	ErrMissingIngredients = errors.New("recipe has no ingredients")
	ErrMissingSteps       = errors.New("recipe has no steps")
)

// Validate checks the shape of a generated recipe: non-empty name, at least
// one ingredient and at least one step.
func (g *GeneratedRecipe) Validate() error {
	if g == nil || g.Name == "" {
		return ErrMissingName
	}
	if len(g.Ingredients) == 0 {
		return ErrMissingIngredients
	}
	if len(g.Steps) == 0 {
		return ErrMissingSteps
	}
	return nil
}

// Added returns the ingredients of g that are not in the caller's list,
// compared case-insensitively. These are the pantry staples the generator added.
func (g *GeneratedRecipe) Added(user []string) []string {
	have := NewIngredientSet(user)
	var added []string
	for _, ing := range g.Ingredients {
		if !have.Has(ing) {
			added = append(added, ing)
		}
	}
	return added
}

// Normalize returns the comparison form of an ingredient name.
func Normalize(ingredient string) string {
	return strings.ToLower(ingredient)
}

// NormalizeAll lowercases every ingredient, preserving order.
func NormalizeAll(ingredients []string) []string {
	out := make([]string, len(ingredients))
	for i, ing := range ingredients {
		out[i] = Normalize(ing)
	}
	return out
}

// IngredientSet is a case-insensitive set of ingredient names.
type IngredientSet map[string]struct{}

// NewIngredientSet builds a set from the given names.
func NewIngredientSet(ingredients []string) IngredientSet {
	s := make(IngredientSet, len(ingredients))
	for _, ing := range ingredients {
		s[Normalize(ing)] = struct{}{}
	}
	return s
}

// Has reports whether ingredient is in the set, ignoring case.
func (s IngredientSet) Has(ingredient string) bool {
	_, ok := s[Normalize(ingredient)]
	return ok
}

// Len returns the number of distinct ingredients.
func (s IngredientSet) Len() int {
	return len(s)
}
