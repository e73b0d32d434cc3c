package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// routes builds the router with the middleware stack and all REST API routes.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// First registered runs first
	r.Use(recoveryMiddleware(s.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID", "X-Correlation-ID"},
		ExposedHeaders: []string{"X-Correlation-ID"},
		MaxAge:         300,
	}))
	r.Use(correlationIDMiddleware)
	r.Use(loggingMiddleware(s.logger))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		WriteError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Route("/api", func(r chi.Router) {
		// System
		r.Get("/health", s.handleHealth)
		r.Get("/version", s.handleVersion)

		// Catalog
		r.Get("/recipes", s.handleRecipeList)
		r.Post("/recipes/match", s.handleRecipeMatch)
		r.Get("/recipes/{id}", s.handleRecipeGet)
		r.Get("/ingredients", s.handleIngredientList)

		// Generation
		gen := s.app.Config.Generation
		r.With(rateLimitMiddleware(gen.RateLimit, gen.Burst)).Post("/ai-recipe", s.handleGenerateRecipe)
	})

	return r
}
