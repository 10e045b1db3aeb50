package email

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSender implements ports.EmailSender by logging instead of sending.
// Used when no Brevo API key is configured.
type LogSender struct {
	log zerolog.Logger
}

func NewLogSender(log zerolog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, recipient string, templateID int64, data map[string]any) error {
	s.log.Info().
		Str("recipient", recipient).
		Int64("template_id", templateID).
		Interface("params", data).
		Msg("email not sent, no provider configured")
	return nil
}
