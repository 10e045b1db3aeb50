package email

import (
	"context"
	"fmt"
	"net/http"

	brevo "github.com/getbrevo/brevo-go/lib"
	"github.com/rs/zerolog"
)

type transactionalAPI interface {
	SendTransacEmail(ctx context.Context, email brevo.SendSmtpEmail) (brevo.CreateSmtpEmail, *http.Response, error)
}

// BrevoSender implements ports.EmailSender with Brevo transactional templates.
type BrevoSender struct {
	api         transactionalAPI
	senderEmail string
	senderName  string
	log         zerolog.Logger
}

// NewBrevoSender creates a sender authenticated with apiKey.
func NewBrevoSender(apiKey, senderEmail, senderName string, log zerolog.Logger) *BrevoSender {
	cfg := brevo.NewConfiguration()
	cfg.AddDefaultHeader("api-key", apiKey)
	return &BrevoSender{
		api:         brevo.NewAPIClient(cfg).TransactionalEmailsApi,
		senderEmail: senderEmail,
		senderName:  senderName,
		log:         log,
	}
}

// Send renders templateID for recipient with data as template params.
func (s *BrevoSender) Send(ctx context.Context, recipient string, templateID int64, data map[string]any) error {
	msg := brevo.SendSmtpEmail{
		Sender:     &brevo.SendSmtpEmailSender{Email: s.senderEmail, Name: s.senderName},
		To:         []brevo.SendSmtpEmailTo{{Email: recipient}},
		TemplateId: templateID,
		Params:     data,
	}

	res, resp, err := s.api.SendTransacEmail(ctx, msg)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			return fmt.Errorf("brevo send (status %d): %w", resp.StatusCode, err)
		}
		return fmt.Errorf("brevo send: %w", err)
	}

	s.log.Debug().Str("message_id", res.MessageId).Int64("template_id", templateID).Msg("email accepted by brevo")
	return nil
}
