package service

import (
	"context"
	"fmt"
	"time"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/core/ports"

	"github.com/rs/zerolog"
)

const maxReleaseCause = 512

// EventLedgerImpl implements ports.EventLedger.
// Layer 1 is the Redis processed-id cache, layer 2 the webhook_events table.
type EventLedgerImpl struct {
	repo         ports.EventRepository
	cache        ports.ProcessedCache
	lease        time.Duration
	processedTTL time.Duration
	now          func() time.Time
	log          zerolog.Logger
}

// NewEventLedger creates a new EventLedgerImpl. cache may be nil.
func NewEventLedger(
	repo ports.EventRepository,
	cache ports.ProcessedCache,
	lease time.Duration,
	processedTTL time.Duration,
	log zerolog.Logger,
) *EventLedgerImpl {
	return &EventLedgerImpl{
		repo:         repo,
		cache:        cache,
		lease:        lease,
		processedTTL: processedTTL,
		now:          func() time.Time { return time.Now().UTC() },
		log:          log,
	}
}

// IsProcessed reports whether every effect of the event has been applied.
func (l *EventLedgerImpl) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	if l.cachedProcessed(ctx, eventID) {
		return true, nil
	}

	rec, err := l.repo.GetByID(ctx, eventID)
	if err != nil {
		return false, fmt.Errorf("read event record: %w", err)
	}
	if rec == nil || !rec.IsProcessed() {
		return false, nil
	}

	l.cacheProcessed(ctx, eventID, rec.Outcome)
	return true, nil
}

// Claim performs the atomic create-if-absent on the event id.
func (l *EventLedgerImpl) Claim(ctx context.Context, evt *domain.Event) (domain.ClaimResult, error) {
	if l.cachedProcessed(ctx, evt.ID) {
		return domain.ClaimAlreadyProcessed, nil
	}

	res, err := l.repo.Claim(ctx, evt, l.now(), l.lease)
	if err != nil {
		return domain.ClaimHeld, err
	}
	return res, nil
}

// MarkProcessed commits the event. Called only after every effect succeeded.
func (l *EventLedgerImpl) MarkProcessed(ctx context.Context, evt *domain.Event, outcome domain.EventOutcome) error {
	if err := l.repo.MarkProcessed(ctx, evt.ID, outcome, l.now()); err != nil {
		return err
	}
	l.cacheProcessed(ctx, evt.ID, &outcome)
	return nil
}

// Release gives up the claim so a redelivery can run immediately.
func (l *EventLedgerImpl) Release(ctx context.Context, evt *domain.Event, cause error) error {
	msg := "released"
	if cause != nil {
		msg = cause.Error()
	}
	if len(msg) > maxReleaseCause {
		msg = msg[:maxReleaseCause]
	}
	return l.repo.Release(ctx, evt.ID, msg)
}

func (l *EventLedgerImpl) cachedProcessed(ctx context.Context, eventID string) bool {
	if l.cache == nil {
		return false
	}
	outcome, ok, err := l.cache.Outcome(ctx, eventID)
	if err != nil {
		// Redis down: fall through to the database
		l.log.Warn().Err(err).Str("event_id", eventID).Msg("processed cache lookup failed")
		return false
	}
	if ok {
		l.log.Debug().Str("event_id", eventID).Str("outcome", string(outcome)).Msg("processed cache hit")
	}
	return ok
}

func (l *EventLedgerImpl) cacheProcessed(ctx context.Context, eventID string, outcome *domain.EventOutcome) {
	if l.cache == nil {
		return
	}
	value := domain.OutcomeProcessed
	if outcome != nil {
		value = *outcome
	}
	if err := l.cache.Remember(ctx, eventID, value, l.processedTTL); err != nil {
		l.log.Warn().Err(err).Str("event_id", eventID).Msg("failed to cache processed event")
	}
}
