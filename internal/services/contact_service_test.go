package services

import (
	"testing"

	"flourshop/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactInput() *models.ContactInput {
	return &models.ContactInput{
		Name:    "Ali Khan",
		Email:   "ali@example.com",
		Phone:   "+923001112233",
		Message: "Do you deliver to Gulberg?",
	}
}

func TestCreateContactForcesNewStatus(t *testing.T) {
	svc := NewContactService(newFakeContactStore(), zerolog.Nop())

	in := validContactInput()
	in.Status = models.ContactStatusReplied // clients cannot set initial status

	contact, err := svc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusNew, contact.Status)
}

func TestCreateContactValidation(t *testing.T) {
	svc := NewContactService(newFakeContactStore(), zerolog.Nop())

	tests := []struct {
		name    string
		mutate  func(*models.ContactInput)
		message string
	}{
		{"missing name", func(in *models.ContactInput) { in.Name = "" }, "Name is required"},
		{"missing email", func(in *models.ContactInput) { in.Email = "" }, "Email is required"},
		{"invalid email", func(in *models.ContactInput) { in.Email = "not-an-email" }, "Invalid email address"},
		{"missing message", func(in *models.ContactInput) { in.Message = "" }, "Message is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validContactInput()
			tc.mutate(in)
			_, err := svc.Create(in)
			var validation ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tc.message, validation.Error())
		})
	}
}

func TestCreateContactPhoneOptional(t *testing.T) {
	svc := NewContactService(newFakeContactStore(), zerolog.Nop())

	in := validContactInput()
	in.Phone = ""

	contact, err := svc.Create(in)
	require.NoError(t, err)
	assert.Equal(t, "", contact.Phone)
}

func TestUpdateContactStatus(t *testing.T) {
	svc := NewContactService(newFakeContactStore(), zerolog.Nop())

	created, err := svc.Create(validContactInput())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(created.ID, models.ContactStatusRead)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusRead, updated.Status)
}

func TestUpdateContactStatusInvalidValue(t *testing.T) {
	svc := NewContactService(newFakeContactStore(), zerolog.Nop())

	created, err := svc.Create(validContactInput())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(created.ID, "archived")
	var validation ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "Invalid status value", validation.Error())
}

func TestUpdateContactStatusNotFound(t *testing.T) {
	svc := NewContactService(newFakeContactStore(), zerolog.Nop())

	_, err := svc.UpdateStatus(42, models.ContactStatusRead)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestDeleteContactNotFound(t *testing.T) {
	svc := NewContactService(newFakeContactStore(), zerolog.Nop())

	assert.ErrorIs(t, svc.Delete(42), ErrContactNotFound)
}

func TestListContactsFilters(t *testing.T) {
	st := newFakeContactStore()
	svc := NewContactService(st, zerolog.Nop())

	first, err := svc.Create(validContactInput())
	require.NoError(t, err)

	second := validContactInput()
	second.Name = "Sara Ahmed"
	second.Email = "sara@example.com"
	_, err = svc.Create(second)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(first.ID, models.ContactStatusRead)
	require.NoError(t, err)

	// Search and status combine with AND.
	results, err := svc.List("ali", models.ContactStatusRead)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Ali Khan", results[0].Name)

	results, err = svc.List("ali", models.ContactStatusNew)
	require.NoError(t, err)
	assert.Empty(t, results)
}
