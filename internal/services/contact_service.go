package services

import (
	"errors"
	"net/mail"
	"strings"

	"flourshop/internal/models"
	"flourshop/internal/store"

	"github.com/rs/zerolog"
)

var ErrContactNotFound = errors.New("Contact not found")

type ContactService struct {
	store  store.ContactStore
	logger zerolog.Logger
}

func NewContactService(st store.ContactStore, logger zerolog.Logger) *ContactService {
	return &ContactService{store: st, logger: logger}
}

// Create records a public inquiry. The status always starts as "new"
// regardless of anything the client sent.
func (s *ContactService) Create(in *models.ContactInput) (*models.Contact, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, ValidationError("Name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		return nil, ValidationError("Email is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, ValidationError("Invalid email address")
	}
	if strings.TrimSpace(in.Message) == "" {
		return nil, ValidationError("Message is required")
	}

	contact, err := s.store.Create(&models.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
		Status:  models.ContactStatusNew,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("Error creating contact")
		return nil, err
	}
	s.logger.Info().Int("contact_id", contact.ID).Msg("Contact inquiry received")
	return contact, nil
}

func (s *ContactService) List(search, status string) ([]models.Contact, error) {
	return s.store.List(search, status)
}

func (s *ContactService) UpdateStatus(id int, status string) (*models.Contact, error) {
	if !validContactStatus(status) {
		return nil, ValidationError("Invalid status value")
	}

	if _, err := s.get(id); err != nil {
		return nil, err
	}

	if err := s.store.UpdateStatus(id, status); err != nil {
		s.logger.Error().Err(err).Int("contact_id", id).Msg("Error updating contact status")
		return nil, err
	}
	return s.get(id)
}

func (s *ContactService) Delete(id int) error {
	if _, err := s.get(id); err != nil {
		return err
	}

	if err := s.store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrContactNotFound
		}
		s.logger.Error().Err(err).Int("contact_id", id).Msg("Error deleting contact")
		return err
	}
	s.logger.Info().Int("contact_id", id).Msg("Contact deleted")
	return nil
}

func (s *ContactService) get(id int) (*models.Contact, error) {
	contact, err := s.store.GetByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrContactNotFound
	}
	return contact, err
}

func validContactStatus(status string) bool {
	switch status {
	case models.ContactStatusNew, models.ContactStatusRead, models.ContactStatusReplied:
		return true
	}
	return false
}
