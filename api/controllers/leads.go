package controllers

import (
	"context"
	"net/http"

	"github.com/restaurantelilica/cardapio-backend/api/responses"
	"github.com/restaurantelilica/cardapio-backend/api/validators"
	"github.com/restaurantelilica/cardapio-backend/internal/leads"
	"github.com/restaurantelilica/cardapio-backend/pkg/logger"
)

// LeadService submits a captured lead downstream.
type LeadService interface {
	Submit(ctx context.Context, lead leads.Lead) (leads.Result, error)
}

type leadRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	WhatsApp string `json:"whatsapp" validate:"required"`
	City     string `json:"city,omitempty"`
}

type leadResponse struct {
	Delivered []string `json:"delivered"`
	Inactive  []string `json:"inactive,omitempty"`
	Failed    []string `json:"failed,omitempty"`
	Note      string   `json:"note,omitempty"`
}

// LeadCreate captures a coupon-form submission. One accepted delivery
// channel makes the request a success; an idle webhook also succeeds, with
// a note, and channel failures are reported in the response so the
// storefront can note degraded delivery.
func LeadCreate(leadService LeadService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req leadRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lead := leads.Lead{
			Name:     validators.SanitizeString(req.Name, 120),
			Email:    validators.SanitizeString(req.Email, 120),
			WhatsApp: validators.SanitizeString(req.WhatsApp, 32),
			City:     validators.SanitizeString(req.City, 80),
		}

		result, err := leadService.Submit(r.Context(), lead)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp := leadResponse{
			Delivered: result.Delivered,
			Inactive:  result.Inactive,
			Failed:    result.Failed,
		}
		if len(result.Inactive) > 0 {
			resp.Note = leads.InactiveNote
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, resp)
	}
}
