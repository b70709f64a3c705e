package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/egeorganic/site-api/internal/dto"
)

func TestIsEmailShape(t *testing.T) {
	valid := []string{
		"asha@example.com",
		"a@b.co",
		"first.last@sub.domain.org",
		"user+tag@example.in",
	}
	for _, email := range valid {
		require.True(t, IsEmailShape(email), "expected %q to pass", email)
	}

	invalid := []string{
		"",
		"not-an-email",
		"missing@domain",
		"@example.com",
		"user@.com",
		"user@domain.",
		"two@@example.com",
		"a@b@c.com",
		"spaced user@example.com",
	}
	for _, email := range invalid {
		require.False(t, IsEmailShape(email), "expected %q to fail", email)
	}
}

func TestCheckRequestMissingFieldsTakePriority(t *testing.T) {
	v := NewValidator()

	err := checkRequest(v, dto.ContactRequest{Email: "broken"})
	require.Error(t, err)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	require.Contains(t, invalid.Message, "Missing required fields:")
	require.Contains(t, invalid.Message, "name")
	require.Contains(t, invalid.Message, "subject")
	require.Contains(t, invalid.Message, "message")
	// The malformed email is not mentioned while required fields are missing.
	require.NotContains(t, invalid.Message, "valid email")
}

func TestCheckRequestEmailFormat(t *testing.T) {
	v := NewValidator()

	err := checkRequest(v, dto.NewsletterRequest{Email: "not-an-email"})
	require.Error(t, err)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
	require.Equal(t, "Please provide a valid email address", invalid.Message)
}

func TestCheckRequestValidPayload(t *testing.T) {
	v := NewValidator()

	err := checkRequest(v, dto.LeadRequest{Name: "Asha", Email: "asha@example.com", Mobile: "+919900112233"})
	require.NoError(t, err)
}
