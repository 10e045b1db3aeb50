package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EventRepo implements ports.EventRepository on the webhook_events table.
type EventRepo struct {
	pool Pool
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(pool Pool) *EventRepo {
	return &EventRepo{pool: pool}
}

// Claim inserts the event row, or renews an abandoned claim, in one statement.
// The conflict branch only fires for rows that are unprocessed and whose
// claim has lapsed, so exactly one concurrent delivery gets a row back.
func (r *EventRepo) Claim(ctx context.Context, evt *domain.Event, now time.Time, lease time.Duration) (domain.ClaimResult, error) {
	query := `INSERT INTO webhook_events (provider_id, event_type, livemode, account_id, received_at, claimed_until, attempts)
		VALUES ($1, $2, $3, $4, $5, $6, 1)
		ON CONFLICT (provider_id) DO UPDATE
			SET claimed_until = EXCLUDED.claimed_until,
				attempts = webhook_events.attempts + 1
			WHERE webhook_events.processed_at IS NULL
				AND (webhook_events.claimed_until IS NULL OR webhook_events.claimed_until < EXCLUDED.received_at)
		RETURNING attempts`

	var attempts int
	err := r.pool.QueryRow(ctx, query,
		evt.ID, evt.Type, evt.Livemode, nullString(evt.Account), now, now.Add(lease),
	).Scan(&attempts)
	if err == nil {
		return domain.ClaimAcquired, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.ClaimHeld, fmt.Errorf("claim event: %w", err)
	}

	var processedAt *time.Time
	err = r.pool.QueryRow(ctx,
		`SELECT processed_at FROM webhook_events WHERE provider_id = $1`, evt.ID,
	).Scan(&processedAt)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return domain.ClaimHeld, fmt.Errorf("read event claim: %w", err)
	}
	if processedAt != nil {
		return domain.ClaimAlreadyProcessed, nil
	}
	return domain.ClaimHeld, nil
}

// MarkProcessed stamps processed_at and drops the claim.
func (r *EventRepo) MarkProcessed(ctx context.Context, eventID string, outcome domain.EventOutcome, at time.Time) error {
	query := `UPDATE webhook_events
		SET processed_at = $2, outcome = $3, claimed_until = NULL, last_error = NULL
		WHERE provider_id = $1`

	if _, err := r.pool.Exec(ctx, query, eventID, at, outcome); err != nil {
		return fmt.Errorf("mark event processed: %w", err)
	}
	return nil
}

// Release drops the claim on an unprocessed event so the next redelivery can take it.
func (r *EventRepo) Release(ctx context.Context, eventID string, cause string) error {
	query := `UPDATE webhook_events
		SET claimed_until = NULL, last_error = $2
		WHERE provider_id = $1 AND processed_at IS NULL`

	if _, err := r.pool.Exec(ctx, query, eventID, cause); err != nil {
		return fmt.Errorf("release event claim: %w", err)
	}
	return nil
}

// GetByID fetches an event record by provider id.
func (r *EventRepo) GetByID(ctx context.Context, eventID string) (*domain.EventRecord, error) {
	query := `SELECT provider_id, event_type, livemode, account_id, received_at, claimed_until,
		processed_at, attempts, outcome, last_error
		FROM webhook_events WHERE provider_id = $1`

	rec := &domain.EventRecord{}
	var account *string
	err := r.pool.QueryRow(ctx, query, eventID).Scan(
		&rec.ProviderID, &rec.Type, &rec.Livemode, &account, &rec.ReceivedAt, &rec.ClaimedUntil,
		&rec.ProcessedAt, &rec.Attempts, &rec.Outcome, &rec.LastError,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	rec.Account = derefString(account)
	return rec, nil
}
