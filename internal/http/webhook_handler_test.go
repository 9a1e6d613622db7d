package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadpulse/leadpulse/internal/domain"
	"github.com/leadpulse/leadpulse/internal/domain/mocks"
	"github.com/leadpulse/leadpulse/pkg/logger"
)

func setupWebhookMux(t *testing.T) (*mocks.MockIntakeService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := mocks.NewMockIntakeService(ctrl)
	mux := http.NewServeMux()
	NewWebhookHandler(mockService, logger.NewMockLogger(t)).RegisterRoutes(mux)
	return mockService, mux
}

func TestWebhookHandler_Lead(t *testing.T) {
	mockService, mux := setupWebhookMux(t)

	payload := []byte(`{"email": "jane@acme.com", "utm_source": "google"}`)
	mockService.EXPECT().VerifySignature(payload, gomock.Any()).Return(nil)
	mockService.EXPECT().
		ProcessSubmission(gomock.Any(), payload).
		Return(&domain.IntakeResult{LeadID: 42, Score: 85}, nil)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/webhook/lead", bytes.NewReader(payload)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, true, got["success"])
	assert.Equal(t, float64(42), got["leadId"])
	assert.Equal(t, float64(85), got["score"])
}

func TestWebhookHandler_SignatureRejected(t *testing.T) {
	mockService, mux := setupWebhookMux(t)

	payload := []byte(`{"email": "jane@acme.com"}`)
	mockService.EXPECT().
		VerifySignature(payload, gomock.Any()).
		Return(domain.NewValidationError("invalid webhook signature"))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/webhook/lead", bytes.NewReader(payload)))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "Invalid webhook signature", body["message"])
}

func TestWebhookHandler_ValidationError(t *testing.T) {
	mockService, mux := setupWebhookMux(t)

	payload := []byte(`{"name": "no email here"}`)
	mockService.EXPECT().VerifySignature(payload, gomock.Any()).Return(nil)
	mockService.EXPECT().
		ProcessSubmission(gomock.Any(), payload).
		Return(nil, domain.NewValidationError("email is required"))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/webhook/lead", bytes.NewReader(payload)))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeErrorBody(t, rec)
	assert.Equal(t, "email is required", body["message"])
}

func TestWebhookHandler_ProcessingError(t *testing.T) {
	mockService, mux := setupWebhookMux(t)

	payload := []byte(`{"email": "jane@acme.com"}`)
	mockService.EXPECT().VerifySignature(payload, gomock.Any()).Return(nil)
	mockService.EXPECT().
		ProcessSubmission(gomock.Any(), payload).
		Return(nil, errors.New("db down"))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/webhook/lead", bytes.NewReader(payload)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
