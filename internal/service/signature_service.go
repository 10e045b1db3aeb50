package service

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/pkg/apperror"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeSignatureVerifier implements ports.SignatureVerifier for Stripe-Signature headers.
// The HMAC is checked over the raw body; the body is parsed only afterwards.
type StripeSignatureVerifier struct {
	secret    string
	tolerance time.Duration
}

// NewStripeSignatureVerifier creates a verifier for the endpoint signing secret.
func NewStripeSignatureVerifier(secret string, tolerance time.Duration) *StripeSignatureVerifier {
	return &StripeSignatureVerifier{secret: secret, tolerance: tolerance}
}

// Verify authenticates payload against signatureHeader and decodes the event envelope.
func (v *StripeSignatureVerifier) Verify(payload []byte, signatureHeader string) (*domain.Event, error) {
	if strings.TrimSpace(signatureHeader) == "" || v.secret == "" {
		return nil, apperror.ErrInvalidSignature()
	}

	// constant-time comparison of every v1 signature in the header
	if err := webhook.ValidatePayloadWithTolerance(payload, signatureHeader, v.secret, v.tolerance); err != nil {
		return nil, apperror.ErrInvalidSignature()
	}

	var se stripe.Event
	if err := json.Unmarshal(payload, &se); err != nil {
		return nil, apperror.ErrMalformedPayload(err)
	}
	if se.ID == "" || se.Type == "" {
		return nil, apperror.ErrMalformedPayload(errors.New("event id or type missing"))
	}
	if se.Data == nil || len(se.Data.Raw) == 0 {
		return nil, apperror.ErrMalformedPayload(errors.New("event data.object missing"))
	}

	return &domain.Event{
		ID:       se.ID,
		Type:     domain.EventType(se.Type),
		Livemode: se.Livemode,
		Account:  se.Account,
		Created:  time.Unix(se.Created, 0).UTC(),
		Object:   se.Data.Raw,
	}, nil
}
