package handlers

import (
	"encoding/json"
	"net/http"

	"flourshop/internal/middleware"
	"flourshop/internal/models"
	"flourshop/internal/services"

	"github.com/rs/zerolog"
)

type AuthHandler struct {
	userService *services.UserService
	authService *services.AuthService
	logger      zerolog.Logger
}

func NewAuthHandler(userService *services.UserService, authService *services.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		authService: authService,
		logger:      logger,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.userService.Authenticate(req.Username, req.Password)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		h.logger.Error().Err(err).Msg("Token generation failed")
		respondError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	h.logger.Info().Str("username", user.Username).Msg("Admin logged in")
	respondData(w, http.StatusOK, "Login successful", models.LoginResponse{
		Token: token,
		User:  user.Public(),
	})
}

// Me returns the identity carried by the verified token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFrom(r)
	if identity == nil {
		respondError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	respondData(w, http.StatusOK, "", models.PublicUser{
		ID:       identity.ID,
		Username: identity.Username,
		Role:     identity.Role,
	})
}

// Logout is stateless: the server revokes nothing, the client discards
// its token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	respondData(w, http.StatusOK, "Logged out successfully", nil)
}
