package domain

import "time"

// AttributionModelLastClick is the only model currently computed: the
// campaign that originated the lead receives the full credit.
const AttributionModelLastClick = "last_click"

// Attribution links a lead to the campaign credited with it
type Attribution struct {
	ID              int64     `json:"id"`
	LeadID          int64     `json:"lead_id"`
	CampaignID      int64     `json:"campaign_id"`
	Model           string    `json:"model"`
	Weight          float64   `json:"weight"`
	AttributedValue *float64  `json:"attributed_value,omitempty"`
	CreatedAt       time.Time `json:"created_at"`

	Campaign *Campaign `json:"campaign,omitempty"`
}
