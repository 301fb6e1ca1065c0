package services

import (
	"errors"
	"fmt"
	"strings"

	"flourshop/internal/models"
	"flourshop/internal/store"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrMissingCredentials maps to 400 at the boundary.
	ErrMissingCredentials = ValidationError("Username and password are required")
	// ErrInvalidCredentials is deliberately identical for an unknown
	// username and a wrong password, so responses never reveal which
	// part failed.
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

type UserService struct {
	store  store.UserStore
	logger zerolog.Logger
}

func NewUserService(st store.UserStore, logger zerolog.Logger) *UserService {
	return &UserService{store: st, logger: logger}
}

// NormalizeUsername lowercases and trims; usernames are compared
// case-insensitively and stored in this form.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.store.GetByUsername(NormalizeUsername(username))
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("Error querying user")
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn().Str("username", user.Username).Msg("Failed authentication attempt")
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetByID(id int) (*models.User, error) {
	return s.store.GetByID(id)
}

// ChangePassword is the only operation that rehashes a secret. Saves
// that do not touch the password leave the stored hash untouched.
func (s *UserService) ChangePassword(id int, newPassword string) error {
	if len(newPassword) < 6 {
		return ValidationError("Password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("Error hashing password")
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.store.UpdatePassword(id, string(hash)); err != nil {
		return fmt.Errorf("store password: %w", err)
	}
	s.logger.Info().Int("user_id", id).Msg("Password changed")
	return nil
}

// EnsureAdmin seeds the administrative credential at bootstrap. It is
// idempotent: an existing record is left as is, hash included.
func (s *UserService) EnsureAdmin(username, password string) error {
	username = NormalizeUsername(username)

	_, err := s.store.GetByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("check admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if _, err := s.store.Create(username, string(hash), string(models.RoleAdmin)); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}
	s.logger.Info().Str("username", username).Msg("Admin user created")
	return nil
}
