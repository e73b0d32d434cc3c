package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bobmcallan/cookengine/internal/services/generation"
)

// handleGenerateRecipe handles POST /api/ai-recipe.
func (s *Server) handleGenerateRecipe(w http.ResponseWriter, r *http.Request) {
	if r.Body == nil || r.Body == http.NoBody {
		s.logger.Error().Msg("Recipe generation request has no body")
		WriteError(w, http.StatusInternalServerError, generation.MsgGenerationFailed)
		return
	}

	var body any
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		s.logger.Error().Err(err).Msg("Recipe generation request body is not valid JSON")
		WriteError(w, http.StatusInternalServerError, generation.MsgGenerationFailed)
		return
	}

	var raw any
	switch b := body.(type) {
	case map[string]any:
		raw = b["ingredients"]
	case nil:
		s.logger.Error().Msg("Recipe generation request body is null")
		WriteError(w, http.StatusInternalServerError, generation.MsgGenerationFailed)
		return
	}

	recipe, err := s.app.Generator.Handle(r.Context(), raw)
	if err != nil {
		s.writeGenerationError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, recipe)
}

func (s *Server) writeGenerationError(w http.ResponseWriter, err error) {
	var ge *generation.Error
	if !errors.As(err, &ge) {
		s.logger.Error().Err(err).Msg("Recipe generation failed")
		WriteError(w, http.StatusInternalServerError, generation.MsgGenerationFailed)
		return
	}

	switch ge.Kind {
	case generation.KindInvalidInput:
		WriteError(w, http.StatusBadRequest, ge.Message)
	case generation.KindTimeout:
		s.logger.Warn().Err(err).Msg("Recipe generation timed out")
		WriteError(w, http.StatusGatewayTimeout, ge.Message)
	case generation.KindGenerationFailed:
		s.logger.Error().Err(err).Msg("Generated recipe failed validation")
		WriteError(w, http.StatusInternalServerError, ge.Message)
	default:
		s.logger.Error().Err(err).Msg("Recipe generation failed")
		WriteError(w, http.StatusInternalServerError, generation.MsgGenerationFailed)
	}
}
