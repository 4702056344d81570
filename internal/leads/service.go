package leads

import (
	"context"
	"errors"
	"time"

	"go.uber.org/multierr"

	apperrors "github.com/restaurantelilica/cardapio-backend/pkg/errors"
	"github.com/restaurantelilica/cardapio-backend/pkg/logger"
)

// RetryMessage is the customer-facing text returned when no channel
// accepted the lead.
const RetryMessage = "Não foi possível enviar seus dados. Tente novamente em instantes."

// InactiveNote is the customer-facing note attached when the lead was
// accepted but the webhook listener was not active.
const InactiveNote = "O webhook não está ativo no momento."

// Deliverer sends a stamped lead to one downstream channel.
type Deliverer interface {
	Deliver(ctx context.Context, payload Payload) error
}

// Service fans a lead out to every configured channel. Delivery is
// best-effort per channel: one accepted delivery is a success, and channel
// failures surface only in the result so the caller can log them.
type Service struct {
	channels map[string]Deliverer
	source   string
	now      func() time.Time
	logg     *logger.Logger
}

// ServiceParams configures a lead service. Webhook is required; SheetAppend
// is optional. Now defaults to time.Now.
type ServiceParams struct {
	Webhook     Deliverer
	SheetAppend Deliverer
	Source      string
	Now         func() time.Time
	Logger      *logger.Logger
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Webhook == nil {
		return nil, apperrors.New(apperrors.CodeInternal, "lead service requires a webhook channel")
	}
	if params.Logger == nil {
		return nil, apperrors.New(apperrors.CodeInternal, "lead service requires a logger")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}

	channels := map[string]Deliverer{"webhook": params.Webhook}
	if params.SheetAppend != nil {
		channels["sheet_append"] = params.SheetAppend
	}

	return &Service{
		channels: channels,
		source:   params.Source,
		now:      now,
		logg:     params.Logger,
	}, nil
}

// Result reports the outcome per channel. Inactive lists channels whose
// listener was idle; the lead itself was valid, so an inactive-only outcome
// is still a success with a note.
type Result struct {
	Delivered []string
	Inactive  []string
	Failed    []string
}

// Submit validates, stamps and fans out the lead. An idle webhook counts as
// a soft outcome; Submit fails only when the lead is invalid or every
// channel hard-rejected it.
func (s *Service) Submit(ctx context.Context, lead Lead) (Result, error) {
	if lead.Name == "" || lead.Email == "" || lead.WhatsApp == "" {
		return Result{}, apperrors.New(apperrors.CodeValidation, "name, email and whatsapp are required")
	}

	payload := NewPayload(lead, s.source, s.now())

	var result Result
	var failures error
	for name, channel := range s.channels {
		if err := channel.Deliver(ctx, payload); err != nil {
			if errors.Is(err, ErrWebhookInactive) {
				result.Inactive = append(result.Inactive, name)
				s.logg.Warn(s.logg.WithField(ctx, "lead_channel", name), "lead.delivery inactive")
				continue
			}
			result.Failed = append(result.Failed, name)
			failures = multierr.Append(failures, err)
			s.logg.Warn(s.logg.WithField(ctx, "lead_channel", name), "lead.delivery failed")
			continue
		}
		result.Delivered = append(result.Delivered, name)
	}

	if len(result.Delivered) == 0 && len(result.Inactive) == 0 {
		return result, apperrors.Wrap(apperrors.CodeDependency, failures, RetryMessage)
	}
	return result, nil
}
