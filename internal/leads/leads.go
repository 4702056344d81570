// Package leads captures coupon-form submissions and delivers them to the
// configured downstream channels.
package leads

import (
	"time"
)

// Lead is a coupon-form submission. Name, Email and WhatsApp are required;
// City is optional and omitted from delivery payloads when empty.
type Lead struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	WhatsApp string `json:"whatsapp" validate:"required"`
	City     string `json:"city,omitempty"`
}

// Payload is the delivery envelope sent to the webhook and, as form
// fields, to the sheet append endpoint.
type Payload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	WhatsApp  string `json:"whatsapp"`
	City      string `json:"city,omitempty"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

// NewPayload stamps the lead with the submission time and origin tag.
func NewPayload(lead Lead, source string, now time.Time) Payload {
	return Payload{
		Name:      lead.Name,
		Email:     lead.Email,
		WhatsApp:  lead.WhatsApp,
		City:      lead.City,
		Timestamp: now.UTC().Format(time.RFC3339),
		Source:    source,
	}
}
