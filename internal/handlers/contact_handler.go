package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"flourshop/internal/models"
	"flourshop/internal/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type ContactHandler struct {
	contactService *services.ContactService
	logger         zerolog.Logger
}

func NewContactHandler(contactService *services.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{contactService: contactService, logger: logger}
}

// Create accepts a public contact-form submission.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact, err := h.contactService.Create(&input)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusCreated, "Message sent successfully", contact)
}

// GetAll lists inquiries for the admin panel, honoring the optional
// ?search= and ?status= query filters.
func (h *ContactHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	contacts, err := h.contactService.List(query.Get("search"), query.Get("status"))
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, "", contacts)
}

func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.contactID(w, r)
	if !ok {
		return
	}

	var req models.UpdateContactStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	contact, err := h.contactService.UpdateStatus(id, req.Status)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, "Contact status updated", contact)
}

func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.contactID(w, r)
	if !ok {
		return
	}

	if err := h.contactService.Delete(id); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}
	respondData(w, http.StatusOK, "Contact deleted successfully", nil)
}

func (h *ContactHandler) contactID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid contact ID")
		return 0, false
	}
	return id, true
}
