package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/tidwall/gjson"
)

// Raw submission processing statuses
const (
	SubmissionStatusSuccess = "success"
	SubmissionStatusFailed  = "failed"
)

// SubmissionSourceLandingPage tags submissions arriving through the public
// lead webhook.
const SubmissionSourceLandingPage = "landing_page"

// RawSubmission is the verbatim audit record of a webhook payload,
// one-to-one with the lead created from it.
type RawSubmission struct {
	ID        string          `json:"id"`
	LeadID    int64           `json:"lead_id"`
	Source    string          `json:"source"`
	Payload   json.RawMessage `json:"payload"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// LeadSubmission is the parsed form of a lead webhook payload
type LeadSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`

	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
	UTMContent  string `json:"utm_content"`
	UTMTerm     string `json:"utm_term"`

	FBC   string `json:"fbc"`
	FBP   string `json:"fbp"`
	GCLID string `json:"gclid"`

	LandingPage string `json:"landing_page"`

	// Raw holds the original payload bytes for the audit record
	Raw json.RawMessage `json:"-"`
}

// ParseLeadSubmission parses a raw webhook payload. Unknown fields are
// ignored; the original bytes are preserved on Raw.
func ParseLeadSubmission(payload []byte) (*LeadSubmission, error) {
	result := gjson.ParseBytes(payload)
	if !result.IsObject() {
		return nil, NewValidationError("payload must be a JSON object")
	}

	sub := &LeadSubmission{
		Name:        result.Get("name").String(),
		Email:       result.Get("email").String(),
		Phone:       result.Get("phone").String(),
		Company:     result.Get("company").String(),
		UTMSource:   result.Get("utm_source").String(),
		UTMMedium:   result.Get("utm_medium").String(),
		UTMCampaign: result.Get("utm_campaign").String(),
		UTMContent:  result.Get("utm_content").String(),
		UTMTerm:     result.Get("utm_term").String(),
		FBC:         result.Get("fbc").String(),
		FBP:         result.Get("fbp").String(),
		GCLID:       result.Get("gclid").String(),
		LandingPage: result.Get("landing_page").String(),
		Raw:         json.RawMessage(payload),
	}
	return sub, nil
}

// Validate ensures the submission carries a usable email
func (s *LeadSubmission) Validate() error {
	if strings.TrimSpace(s.Email) == "" {
		return NewValidationError("email is required")
	}
	if !govalidator.IsEmail(s.Email) {
		return NewValidationError(fmt.Sprintf("invalid email: %s", s.Email))
	}
	return nil
}

// FirstName returns the first word of the submitted name, or nil
func (s *LeadSubmission) FirstName() *string {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return nil
	}
	first := strings.Fields(name)[0]
	return &first
}

// IntakeResult is the outcome of processing a lead submission
type IntakeResult struct {
	LeadID int64 `json:"leadId"`
	Score  int   `json:"score"`
}
