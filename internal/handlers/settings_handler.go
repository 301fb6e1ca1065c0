package handlers

import (
	"encoding/json"
	"net/http"

	"flourshop/internal/models"
	"flourshop/internal/services"

	"github.com/rs/zerolog"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
	logger          zerolog.Logger
}

func NewSettingsHandler(settingsService *services.SettingsService, logger zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, logger: logger}
}

// GetAll serves the full settings map. When the store is unreachable
// the storefront still gets a well-formed envelope with an empty map
// rather than an unformatted failure.
func (h *SettingsHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.GetAll()
	if err != nil {
		respondJSON(w, http.StatusInternalServerError, models.APIResponse{
			Success: false,
			Error:   "Failed to fetch settings",
			Data:    settings,
		})
		return
	}
	respondData(w, http.StatusOK, "", settings)
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	written, err := h.settingsService.Update(updates)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, "Settings updated successfully", written)
}
