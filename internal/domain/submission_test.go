package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeadSubmission(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		payload := []byte(`{
			"name": "Maria Silva",
			"email": "maria@example.com",
			"phone": "+55 11 99999-0000",
			"company": "Acme",
			"utm_source": "google",
			"utm_medium": "cpc",
			"utm_campaign": "search-brand",
			"gclid": "abc123",
			"landing_page": "/lp/consulting",
			"extra_field": "ignored"
		}`)

		sub, err := ParseLeadSubmission(payload)
		require.NoError(t, err)
		assert.Equal(t, "Maria Silva", sub.Name)
		assert.Equal(t, "maria@example.com", sub.Email)
		assert.Equal(t, "Acme", sub.Company)
		assert.Equal(t, "google", sub.UTMSource)
		assert.Equal(t, "cpc", sub.UTMMedium)
		assert.Equal(t, "abc123", sub.GCLID)
		assert.Equal(t, "/lp/consulting", sub.LandingPage)
		assert.JSONEq(t, string(payload), string(sub.Raw))
	})

	t.Run("not an object", func(t *testing.T) {
		_, err := ParseLeadSubmission([]byte(`[1,2,3]`))
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestLeadSubmissionValidate(t *testing.T) {
	sub := &LeadSubmission{Email: "a@b.com"}
	require.NoError(t, sub.Validate())

	sub = &LeadSubmission{}
	err := sub.Validate()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "email is required")

	sub = &LeadSubmission{Email: "not-an-email"}
	err = sub.Validate()
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestLeadSubmissionFirstName(t *testing.T) {
	sub := &LeadSubmission{Name: "Maria Silva Santos"}
	first := sub.FirstName()
	require.NotNil(t, first)
	assert.Equal(t, "Maria", *first)

	sub = &LeadSubmission{Name: "  "}
	assert.Nil(t, sub.FirstName())

	sub = &LeadSubmission{}
	assert.Nil(t, sub.FirstName())
}
