package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/core/ports"
	"payment-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
)

// maxAdvanceAttempts bounds compare-and-set retries on a contended payout row.
const maxAdvanceAttempts = 3

// errPayoutContended leaves the event uncommitted so the provider redelivers it.
var errPayoutContended = errors.New("payout status kept changing")

// PayoutServiceImpl implements ports.PayoutLedger.
type PayoutServiceImpl struct {
	payouts   ports.PayoutRepository
	transfers ports.TransferRepository
	resolver  ports.EntityResolver
	notifier  ports.Notifier
	now       func() time.Time
	log       zerolog.Logger
}

// NewPayoutService creates a new PayoutServiceImpl.
func NewPayoutService(
	payouts ports.PayoutRepository,
	transfers ports.TransferRepository,
	resolver ports.EntityResolver,
	notifier ports.Notifier,
	log zerolog.Logger,
) *PayoutServiceImpl {
	return &PayoutServiceImpl{
		payouts:   payouts,
		transfers: transfers,
		resolver:  resolver,
		notifier:  notifier,
		now:       func() time.Time { return time.Now().UTC() },
		log:       log,
	}
}

// PayoutCreated records the payout the first time it is seen.
func (s *PayoutServiceImpl) PayoutCreated(ctx context.Context, evt *domain.Event) error {
	var p payoutPayload
	if err := decodeObject(evt, &p); err != nil {
		return err
	}
	if p.ID == "" {
		return apperror.ErrMalformedPayload(fmt.Errorf("payout id missing"))
	}
	if evt.Account == "" {
		return domain.Skip("payout %s is not on a connected account", p.ID)
	}

	status, ok := domain.ParsePayoutStatus(p.Status)
	if !ok {
		return domain.Skip("payout %s has unsupported status %q", p.ID, p.Status)
	}

	expert, err := s.resolver.ExpertForAccount(ctx, evt.Account)
	if err != nil {
		return err
	}
	if expert == nil {
		return domain.Skip("no expert for account %s", evt.Account)
	}

	inserted, err := s.payouts.InsertIfAbsent(ctx, p.record(evt.Account, &expert.ID, status, s.now()))
	if err != nil {
		return fmt.Errorf("record payout %s: %w", p.ID, err)
	}
	if inserted {
		s.log.Info().Str("payout_id", p.ID).Str("account_id", evt.Account).Int64("amount", p.Amount).Msg("payout recorded")
	} else {
		s.log.Debug().Str("payout_id", p.ID).Msg("payout already recorded")
	}
	return nil
}

// PayoutPaid advances a known payout to paid. A payout never seen as created
// is left alone.
func (s *PayoutServiceImpl) PayoutPaid(ctx context.Context, evt *domain.Event) error {
	return s.settle(ctx, evt, domain.PayoutPaid)
}

// PayoutFailed advances a known payout to failed and stores the failure details.
func (s *PayoutServiceImpl) PayoutFailed(ctx context.Context, evt *domain.Event) error {
	return s.settle(ctx, evt, domain.PayoutFailed)
}

func (s *PayoutServiceImpl) settle(ctx context.Context, evt *domain.Event, to domain.PayoutStatus) error {
	var p payoutPayload
	if err := decodeObject(evt, &p); err != nil {
		return err
	}
	if p.ID == "" {
		return apperror.ErrMalformedPayload(fmt.Errorf("payout id missing"))
	}
	log := s.log.With().Str("event_id", evt.ID).Str("payout_id", p.ID).Str("target_status", string(to)).Logger()

	// Step 1: state
	var current *domain.Payout
	for attempt := 0; attempt < maxAdvanceAttempts; attempt++ {
		var err error
		current, err = s.payouts.GetByProviderID(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("load payout %s: %w", p.ID, err)
		}
		if current == nil {
			log.Info().Msg("payout not recorded yet, nothing to update")
			return nil
		}
		if current.Status == to || !current.Status.CanAdvanceTo(to) {
			break
		}

		var code, msg *string
		if to == domain.PayoutFailed {
			code, msg = p.FailureCode, p.FailureMessage
		}
		moved, err := s.payouts.AdvanceStatus(ctx, p.ID, current.Status, to, code, msg, s.now())
		if err != nil {
			return fmt.Errorf("advance payout %s: %w", p.ID, err)
		}
		if moved {
			log.Info().Str("from", string(current.Status)).Msg("payout status advanced")
			current.Status = to
			current.FailureCode, current.FailureMessage = coalesce(code, current.FailureCode), coalesce(msg, current.FailureMessage)
			break
		}
		log.Debug().Int("attempt", attempt+1).Msg("payout status changed underneath, retrying")
	}

	if current.Status != to {
		if current.Status.CanAdvanceTo(to) {
			log.Warn().Str("status", string(current.Status)).Int("attempts", maxAdvanceAttempts).Msg("payout advance contended")
			return fmt.Errorf("advance payout %s to %s: %w", p.ID, to, errPayoutContended)
		}
		log.Info().Str("status", string(current.Status)).Msg("payout not advanced")
		return nil
	}

	// Step 2: notification, repeatable
	if current.ExpertID == nil {
		return nil
	}
	expert, err := s.resolver.Expert(ctx, *current.ExpertID)
	if err != nil {
		return err
	}
	if expert == nil {
		log.Warn().Str("expert_id", *current.ExpertID).Msg("payout expert missing, notification skipped")
		return nil
	}
	if to == domain.PayoutPaid {
		s.notifier.PayoutPaid(ctx, expert, current)
	} else {
		s.notifier.PayoutFailed(ctx, expert, current)
	}
	return nil
}

// TransferCreated records the transfer the first time it is seen.
func (s *PayoutServiceImpl) TransferCreated(ctx context.Context, evt *domain.Event) error {
	var p transferPayload
	if err := decodeObject(evt, &p); err != nil {
		return err
	}
	if p.ID == "" {
		return apperror.ErrMalformedPayload(fmt.Errorf("transfer id missing"))
	}

	inserted, err := s.transfers.InsertIfAbsent(ctx, p.record(s.now()))
	if err != nil {
		return fmt.Errorf("record transfer %s: %w", p.ID, err)
	}
	if inserted {
		s.log.Info().Str("transfer_id", p.ID).Str("destination", p.Destination.String()).Int64("amount", p.Amount).Msg("transfer recorded")
	}
	return nil
}

// TransferUpdated overwrites the reversal state with the provider's view.
func (s *PayoutServiceImpl) TransferUpdated(ctx context.Context, evt *domain.Event) error {
	var p transferPayload
	if err := decodeObject(evt, &p); err != nil {
		return err
	}
	if p.ID == "" {
		return apperror.ErrMalformedPayload(fmt.Errorf("transfer id missing"))
	}

	if err := s.transfers.UpsertReversal(ctx, p.record(s.now())); err != nil {
		return fmt.Errorf("update transfer %s: %w", p.ID, err)
	}
	s.log.Info().
		Str("transfer_id", p.ID).
		Bool("reversed", p.Reversed).
		Int64("amount_reversed", p.AmountReversed).
		Msg("transfer reversal state stored")
	return nil
}

func coalesce(a, b *string) *string {
	if a != nil {
		return a
	}
	return b
}
