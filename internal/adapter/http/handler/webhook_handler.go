package handler

import (
	"errors"
	"io"
	"net/http"

	"payment-reconciler/internal/adapter/http/middleware"
	"payment-reconciler/internal/core/ports"
	"payment-reconciler/pkg/apperror"
	"payment-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SignatureHeader carries the provider's timestamped HMAC.
const SignatureHeader = "Stripe-Signature"

// WebhookHandler ingests provider event deliveries.
type WebhookHandler struct {
	verifier   ports.SignatureVerifier
	dispatcher ports.EventDispatcher
	log        zerolog.Logger
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(verifier ports.SignatureVerifier, dispatcher ports.EventDispatcher, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		verifier:   verifier,
		dispatcher: dispatcher,
		log:        log,
	}
}

// Receive handles POST /webhooks/stripe.
// The raw body must reach the verifier untouched, so it is never bound.
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrPayloadTooLarge(tooLarge.Limit))
			return
		}
		response.Error(c, apperror.ErrMalformedPayload(err))
		return
	}

	evt, err := h.verifier.Verify(body, c.GetHeader(SignatureHeader))
	if err != nil {
		h.log.Warn().Err(err).Str("client_ip", c.ClientIP()).Msg("webhook rejected")
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxEventID, evt.ID)
	c.Set(middleware.CtxEventType, string(evt.Type))

	outcome, err := h.dispatcher.Dispatch(c.Request.Context(), evt)
	c.Set(middleware.CtxEventOutcome, string(outcome))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Ack(c, string(outcome))
}
