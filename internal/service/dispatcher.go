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

type eventHandler func(ctx context.Context, evt *domain.Event) error

// Dispatcher implements ports.EventDispatcher.
type Dispatcher struct {
	ledger   ports.EventLedger
	subs     ports.SubscriptionLifecycle
	market   ports.MarketplaceLifecycle
	accounts ports.AccountTracker
	payouts  ports.PayoutLedger
	timeout  time.Duration
	log      zerolog.Logger
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher(
	ledger ports.EventLedger,
	subs ports.SubscriptionLifecycle,
	market ports.MarketplaceLifecycle,
	accounts ports.AccountTracker,
	payouts ports.PayoutLedger,
	timeout time.Duration,
	log zerolog.Logger,
) *Dispatcher {
	return &Dispatcher{
		ledger:   ledger,
		subs:     subs,
		market:   market,
		accounts: accounts,
		payouts:  payouts,
		timeout:  timeout,
		log:      log,
	}
}

// Dispatch claims the event, runs its handler and commits it to the ledger.
// A returned error means the event was not committed and must be redelivered.
func (d *Dispatcher) Dispatch(ctx context.Context, evt *domain.Event) (domain.EventOutcome, error) {
	log := d.log.With().Str("event_id", evt.ID).Str("event_type", string(evt.Type)).Logger()

	// Fast path: already committed
	done, err := d.ledger.IsProcessed(ctx, evt.ID)
	if err != nil {
		return domain.OutcomeFailed, apperror.ErrDownstreamWrite(fmt.Errorf("check event: %w", err))
	}
	if done {
		log.Debug().Msg("duplicate delivery, already processed")
		return domain.OutcomeDuplicate, nil
	}

	claim, err := d.ledger.Claim(ctx, evt)
	if err != nil {
		return domain.OutcomeFailed, apperror.ErrDownstreamWrite(fmt.Errorf("claim event: %w", err))
	}
	switch claim {
	case domain.ClaimAlreadyProcessed:
		log.Debug().Msg("duplicate delivery, processed concurrently")
		return domain.OutcomeDuplicate, nil
	case domain.ClaimHeld:
		log.Info().Msg("event claimed by another delivery")
		return domain.OutcomeInFlight, apperror.ErrEventInFlight()
	}

	outcome := domain.OutcomeProcessed
	handler := d.route(evt.Type)
	if handler == nil {
		log.Warn().Msg("unhandled event type, acknowledging")
		outcome = domain.OutcomeIgnored
	} else if err := d.run(ctx, handler, evt); err != nil {
		if !domain.IsSkip(err) {
			return d.fail(ctx, log, evt, err)
		}
		log.Warn().Err(err).Msg("event skipped")
		outcome = domain.OutcomeSkipped
	}

	if err := d.ledger.MarkProcessed(ctx, evt, outcome); err != nil {
		return d.fail(ctx, log, evt, fmt.Errorf("mark processed: %w", err))
	}

	log.Info().Str("outcome", string(outcome)).Msg("event committed")
	return outcome, nil
}

func (d *Dispatcher) run(ctx context.Context, handler eventHandler, evt *domain.Event) error {
	if d.timeout <= 0 {
		return handler(ctx, evt)
	}
	hctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	return handler(hctx, evt)
}

// fail releases the claim and maps err onto the wire taxonomy.
func (d *Dispatcher) fail(ctx context.Context, log zerolog.Logger, evt *domain.Event, err error) (domain.EventOutcome, error) {
	if rerr := d.ledger.Release(context.WithoutCancel(ctx), evt, err); rerr != nil {
		// the lease will expire on its own
		log.Error().Err(rerr).Msg("failed to release event claim")
	}

	var appErr *apperror.AppError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		log.Error().Err(err).Dur("timeout", d.timeout).Msg("event handler timed out")
		return domain.OutcomeFailed, apperror.ErrHandlerTimeout(err)
	case errors.As(err, &appErr) && appErr.HTTPStatus < 500:
		log.Warn().Err(err).Msg("event rejected")
		return domain.OutcomeRejected, appErr
	default:
		log.Error().Err(err).Msg("event handler failed")
		return domain.OutcomeFailed, apperror.ErrDownstreamWrite(err)
	}
}

// route maps the closed set of event types to handlers. nil means unhandled.
func (d *Dispatcher) route(t domain.EventType) eventHandler {
	switch t {
	case domain.EventPaymentIntentSucceeded:
		return d.market.PaymentSucceeded
	case domain.EventPaymentIntentFailed:
		return d.market.PaymentFailed
	case domain.EventSubscriptionCreated, domain.EventSubscriptionUpdated:
		return d.subs.SubscriptionChanged
	case domain.EventSubscriptionDeleted:
		return d.subs.SubscriptionDeleted
	case domain.EventSubscriptionTrialWillEnd:
		return d.subs.TrialWillEnd
	case domain.EventInvoicePaymentSucceeded:
		return d.subs.InvoicePaymentSucceeded
	case domain.EventInvoicePaymentFailed:
		return d.subs.InvoicePaymentFailed
	case domain.EventInvoiceUpcoming:
		return d.subs.InvoiceUpcoming
	case domain.EventAccountUpdated, domain.EventAccountUpdatedV2:
		return d.accounts.AccountUpdated
	case domain.EventAccountAuthorized:
		return d.accounts.AccountAuthorized
	case domain.EventAccountDeauthorized:
		return d.accounts.AccountDeauthorized
	case domain.EventCapabilityUpdated:
		return d.accounts.CapabilityUpdated
	case domain.EventPayoutCreated:
		return d.payouts.PayoutCreated
	case domain.EventPayoutPaid:
		return d.payouts.PayoutPaid
	case domain.EventPayoutFailed:
		return d.payouts.PayoutFailed
	case domain.EventTransferCreated:
		return d.payouts.TransferCreated
	case domain.EventTransferUpdated:
		return d.payouts.TransferUpdated
	default:
		return nil
	}
}
