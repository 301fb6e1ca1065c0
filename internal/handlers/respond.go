package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"flourshop/internal/models"
	"flourshop/internal/services"

	"github.com/rs/zerolog"
)

func respondJSON(w http.ResponseWriter, statusCode int, resp models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}

func respondData(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	respondJSON(w, statusCode, models.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, models.APIResponse{
		Success: false,
		Error:   message,
	})
}

// respondServiceError translates the service error taxonomy into the
// envelope: validation 400, credential/token failures 401, not-found
// 404, anything else 500 with a generic message.
func respondServiceError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var validation services.ValidationError
	switch {
	case errors.As(err, &validation):
		respondError(w, http.StatusBadRequest, validation.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrProductNotFound), errors.Is(err, services.ErrContactNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		logger.Error().Err(err).Msg("Unexpected error")
		respondError(w, http.StatusInternalServerError, "An internal error occurred")
	}
}
