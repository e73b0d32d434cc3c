// Package catalog holds the fixed recipe catalog and its ingredient vocabulary
package catalog

import (
	"sort"
	"strings"

	"github.com/bobmcallan/cookengine/internal/interfaces"
	"github.com/bobmcallan/cookengine/internal/models"
)

// Store is an immutable recipe catalog. It is safe for concurrent use
// because nothing is mutated after NewStore returns.
type Store struct {
	recipes     []models.Recipe
	byID        map[string]int
	ingredients []string
}

// NewStore builds a store over recipes, keeping their order.
func NewStore(recipes []models.Recipe) *Store {
	s := &Store{
		recipes: make([]models.Recipe, len(recipes)),
		byID:    make(map[string]int, len(recipes)),
	}

	vocab := make(map[string]struct{})
	for i, r := range recipes {
		s.recipes[i] = cloneRecipe(r)
		s.byID[r.ID] = i
		for _, ing := range r.Ingredients {
			vocab[models.Normalize(ing)] = struct{}{}
		}
	}

	s.ingredients = make([]string, 0, len(vocab))
	for ing := range vocab {
		s.ingredients = append(s.ingredients, ing)
	}
	sort.Strings(s.ingredients)

	return s
}

// ListAll returns every recipe in definition order.
func (s *Store) ListAll() []models.Recipe {
	out := make([]models.Recipe, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = cloneRecipe(r)
	}
	return out
}

// FindByID returns the recipe with the given ID.
func (s *Store) FindByID(id string) (models.Recipe, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Recipe{}, false
	}
	return cloneRecipe(s.recipes[i]), true
}

// AllIngredients returns the sorted lowercase union of every recipe's ingredients.
func (s *Store) AllIngredients() []string {
	out := make([]string, len(s.ingredients))
	copy(out, s.ingredients)
	return out
}

// SearchIngredients returns the vocabulary entries containing query, ignoring case.
// An empty query matches everything.
func (s *Store) SearchIngredients(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.AllIngredients()
	}
	out := make([]string, 0)
	for _, ing := range s.ingredients {
		if strings.Contains(ing, q) {
			out = append(out, ing)
		}
	}
	return out
}

// Filter returns recipes matching category and difficulty; empty values match any.
// Comparison ignores case.
func (s *Store) Filter(category, difficulty string) []models.Recipe {
	out := make([]models.Recipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		if category != "" && !strings.EqualFold(r.Category, category) {
			continue
		}
		if difficulty != "" && !strings.EqualFold(r.Difficulty, difficulty) {
			continue
		}
		out = append(out, cloneRecipe(r))
	}
	return out
}

// Len returns the number of recipes.
func (s *Store) Len() int {
	return len(s.recipes)
}

func cloneRecipe(r models.Recipe) models.Recipe {
	r.Ingredients = append([]string(nil), r.Ingredients...)
	r.Steps = append([]string(nil), r.Steps...)
	return r
}

// Ensure Store implements CatalogStore
var _ interfaces.CatalogStore = (*Store)(nil)
