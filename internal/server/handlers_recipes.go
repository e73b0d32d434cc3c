package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bobmcallan/cookengine/internal/models"
	"github.com/bobmcallan/cookengine/internal/services/matcher"
)

// RecipeListResponse is returned by GET /api/recipes.
type RecipeListResponse struct {
	Recipes []models.Recipe `json:"recipes"`
	Count   int             `json:"count"`
}

// IngredientListResponse is returned by GET /api/ingredients.
type IngredientListResponse struct {
	Ingredients []string `json:"ingredients"`
}

// MatchRequest is the body of POST /api/recipes/match.
type MatchRequest struct {
	Ingredients []string `json:"ingredients"`
}

// MatchResponse is returned by POST /api/recipes/match.
// Browse holds the whole catalog when nothing is selected, otherwise it is empty.
type MatchResponse struct {
	Selected          []string        `json:"selected"`
	Cookable          []models.Recipe `json:"cookable"`
	Partial           []models.Recipe `json:"partial"`
	Browse            []models.Recipe `json:"browse"`
	Total             int             `json:"total"`
	SuggestGeneration bool            `json:"suggest_generation"`
}

func (s *Server) handleRecipeList(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	difficulty := strings.TrimSpace(r.URL.Query().Get("difficulty"))

	if category != "" && !validFold(models.ValidCategories, category) {
		WriteError(w, http.StatusBadRequest, "Unknown category: "+category)
		return
	}
	if difficulty != "" && !validFold(models.ValidDifficulties, difficulty) {
		WriteError(w, http.StatusBadRequest, "Unknown difficulty: "+difficulty)
		return
	}

	recipes := s.app.Catalog.Filter(category, difficulty)
	WriteJSON(w, http.StatusOK, RecipeListResponse{Recipes: recipes, Count: len(recipes)})
}

func (s *Server) handleRecipeGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	recipe, ok := s.app.Catalog.FindByID(id)
	if !ok {
		WriteError(w, http.StatusNotFound, "Recipe not found: "+id)
		return
	}
	WriteJSON(w, http.StatusOK, recipe)
}

func (s *Server) handleIngredientList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	WriteJSON(w, http.StatusOK, IngredientListResponse{
		Ingredients: s.app.Catalog.SearchIngredients(q),
	})
}

func (s *Server) handleRecipeMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	selected := models.NormalizeAll(req.Ingredients)
	all := s.app.Catalog.ListAll()
	result := matcher.Partition(selected, all)

	browse := make([]models.Recipe, 0)
	if len(selected) == 0 {
		browse = all
	}

	s.logger.Debug().
		Strs("selected", selected).
		Int("cookable", len(result.Cookable)).
		Int("partial", len(result.Partial)).
		Msg("Recipes matched")

	WriteJSON(w, http.StatusOK, MatchResponse{
		Selected:          selected,
		Cookable:          result.Cookable,
		Partial:           result.Partial,
		Browse:            browse,
		Total:             len(all),
		SuggestGeneration: result.SuggestGeneration(selected),
	})
}

func validFold(set map[string]bool, v string) bool {
	for k := range set {
		if strings.EqualFold(k, v) {
			return true
		}
	}
	return false
}
