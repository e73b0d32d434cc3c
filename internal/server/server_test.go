package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/cookengine/internal/app"
	"github.com/bobmcallan/cookengine/internal/common"
	"github.com/bobmcallan/cookengine/internal/models"
	"github.com/bobmcallan/cookengine/internal/services/generation"
	"github.com/bobmcallan/cookengine/internal/services/synthesis"
)

func newTestApp(t *testing.T, mutate ...func(*common.Config)) *app.App {
	t.Helper()
	cfg := common.NewDefaultConfig()
	cfg.Generation.Delay = "0s"
	cfg.Generation.RateLimit = 0
	for _, m := range mutate {
		m(cfg)
	}
	a, err := app.New(cfg, common.NewSilentLogger())
	require.NoError(t, err)
	return a
}

func newTestServer(t *testing.T, mutate ...func(*common.Config)) *Server {
	t.Helper()
	return NewServer(newTestApp(t, mutate...))
}

func do(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(8), resp["recipes"])
}

func TestVersion(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/version", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, common.GetVersion(), resp["version"])
}

func TestCorrelationID(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/health", "")
	assert.Len(t, rec.Header().Get("X-Correlation-ID"), 8)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc123")
	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc123", rec.Header().Get("X-Correlation-ID"))
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/ai-recipe", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not found", decodeError(t, rec))

	rec = do(t, srv, http.MethodGet, "/api/ai-recipe", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRecipeList(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodGet, "/api/recipes", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp RecipeListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Recipes, 8)
	assert.Equal(t, 8, resp.Count)
	assert.Equal(t, "1", resp.Recipes[0].ID)
}

func TestRecipeList_Filters(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/recipes?category=breakfast", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp RecipeListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Recipes)
	for _, r := range resp.Recipes {
		assert.Equal(t, models.CategoryBreakfast, r.Category)
	}

	rec = do(t, srv, http.MethodGet, "/api/recipes?difficulty=Easy", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp = RecipeListResponse{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	for _, r := range resp.Recipes {
		assert.Equal(t, models.DifficultyEasy, r.Difficulty)
	}

	rec = do(t, srv, http.MethodGet, "/api/recipes?category=brunch", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodGet, "/api/recipes?difficulty=extreme", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecipeGet(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/recipes/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var r models.Recipe
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&r))
	assert.Equal(t, "1", r.ID)
	assert.NotEmpty(t, r.Ingredients)

	rec = do(t, srv, http.MethodGet, "/api/recipes/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIngredientList(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/ingredients", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all IngredientListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&all))
	assert.Contains(t, all.Ingredients, "eggs")
	assert.IsIncreasing(t, all.Ingredients)

	rec = do(t, srv, http.MethodGet, "/api/ingredients?q=EGG", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var filtered IngredientListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&filtered))
	require.NotEmpty(t, filtered.Ingredients)
	for _, ing := range filtered.Ingredients {
		assert.Contains(t, ing, "egg")
	}

	rec = do(t, srv, http.MethodGet, "/api/ingredients?q=zzzz", "")
	assert.JSONEq(t, `{"ingredients":[]}`, rec.Body.String())
}

func TestRecipeMatch_EmptySelectionBrowsesAll(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/recipes/match", `{"ingredients":[]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MatchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Cookable)
	assert.Empty(t, resp.Partial)
	assert.Len(t, resp.Browse, 8)
	assert.Equal(t, 8, resp.Total)
	assert.False(t, resp.SuggestGeneration)
}

func TestRecipeMatch_Cookable(t *testing.T) {
	a := newTestApp(t)
	r, ok := a.Catalog.FindByID("1")
	require.True(t, ok)

	body, err := json.Marshal(MatchRequest{Ingredients: r.Ingredients})
	require.NoError(t, err)

	srv := NewServer(a)
	rec := do(t, srv, http.MethodPost, "/api/recipes/match", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp MatchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	ids := make([]string, 0, len(resp.Cookable))
	for _, c := range resp.Cookable {
		ids = append(ids, c.ID)
	}
	assert.Contains(t, ids, "1")
	assert.Empty(t, resp.Browse)
	assert.False(t, resp.SuggestGeneration)
}

func TestRecipeMatch_NothingCookableSuggestsGeneration(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/recipes/match", `{"ingredients":["Dragonfruit"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MatchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"dragonfruit"}, resp.Selected)
	assert.Empty(t, resp.Cookable)
	assert.True(t, resp.SuggestGeneration)
}

func TestRecipeMatch_InvalidJSON(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/recipes/match", `{bad`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerate_Eggs(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/ai-recipe", `{"ingredients":["eggs","cheese"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.GeneratedRecipe
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Fluffy Scrambled Eggs Delight", resp.Name)
	assert.Contains(t, resp.Ingredients, "eggs")
	assert.NotEmpty(t, resp.Steps)
}

func TestGenerate_InvalidInput(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing field", `{}`, generation.MsgNoIngredients},
		{"empty list", `{"ingredients":[]}`, generation.MsgNoIngredients},
		{"not a list", `{"ingredients":"eggs"}`, generation.MsgNoIngredients},
		{"array body", `["eggs"]`, generation.MsgNoIngredients},
		{"blank items", `{"ingredients":["  ",""]}`, generation.MsgNoValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/api/ai-recipe", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.want, decodeError(t, rec))
		})
	}
}

func TestGenerate_NonStringItems(t *testing.T) {
	srv := newTestServer(t)
	rec := do(t, srv, http.MethodPost, "/api/ai-recipe", `{"ingredients":[1, "chicken"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.GeneratedRecipe
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.Name, "Chicken")
}

func TestGenerate_UnparseableBody(t *testing.T) {
	srv := newTestServer(t)

	for _, body := range []string{`{not json`, `null`} {
		rec := do(t, srv, http.MethodPost, "/api/ai-recipe", body)
		assert.Equal(t, http.StatusInternalServerError, rec.Code, body)
		assert.Equal(t, generation.MsgGenerationFailed, decodeError(t, rec))
	}

	rec := do(t, srv, http.MethodPost, "/api/ai-recipe", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGenerate_InvalidRecipeShape(t *testing.T) {
	a := newTestApp(t)
	a.Generator = generation.NewHandler(synthesis.Func(func(_ context.Context, _ []string) (*models.GeneratedRecipe, error) {
		return &models.GeneratedRecipe{Name: "Empty"}, nil
	}))

	rec := do(t, NewServer(a), http.MethodPost, "/api/ai-recipe", `{"ingredients":["eggs"]}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, generation.MsgInvalidRecipe, decodeError(t, rec))
}

func TestGenerate_Timeout(t *testing.T) {
	a := newTestApp(t)
	slow := synthesis.NewSynthesizer(synthesis.WithDelay(time.Second))
	a.Generator = generation.NewHandler(slow, generation.WithTimeout(10*time.Millisecond))

	rec := do(t, NewServer(a), http.MethodPost, "/api/ai-recipe", `{"ingredients":["eggs"]}`)
	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, generation.MsgTimeout, decodeError(t, rec))
}

func TestGenerate_RateLimited(t *testing.T) {
	srv := newTestServer(t, func(c *common.Config) {
		c.Generation.RateLimit = 0.001
		c.Generation.Burst = 2
	})

	body := `{"ingredients":["pasta"]}`
	for i := 0; i < 2; i++ {
		rec := do(t, srv, http.MethodPost, "/api/ai-recipe", body)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := do(t, srv, http.MethodPost, "/api/ai-recipe", body)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	// Other routes are not limited
	rec = do(t, srv, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	h := recoveryMiddleware(common.NewSilentLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDecodeJSON_EmptyBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(nil))
	req.Body = http.NoBody
	var v map[string]any
	assert.False(t, DecodeJSON(rec, req, &v))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
