package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SubscriptionRepo implements ports.SubscriptionRepository.
type SubscriptionRepo struct {
	pool Pool
}

// NewSubscriptionRepo creates a new SubscriptionRepo.
func NewSubscriptionRepo(pool Pool) *SubscriptionRepo {
	return &SubscriptionRepo{pool: pool}
}

// GetByUserID fetches the user's subscription snapshot.
func (r *SubscriptionRepo) GetByUserID(ctx context.Context, userID string) (*domain.Subscription, error) {
	query := `SELECT user_id, subscription_id, customer_id, status, plan_id, current_period_start,
		current_period_end, cancel_at_period_end, canceled_at, trial_end, updated_at
		FROM subscriptions WHERE user_id = $1`

	s := &domain.Subscription{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&s.UserID, &s.SubscriptionID, &s.CustomerID, &s.Status, &s.PlanID, &s.CurrentPeriodStart,
		&s.CurrentPeriodEnd, &s.CancelAtPeriodEnd, &s.CanceledAt, &s.TrialEnd, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription by user: %w", err)
	}
	return s, nil
}

// Upsert overwrites the user's snapshot with every field of s, unless the
// stored row is the same subscription and already canceled.
func (r *SubscriptionRepo) Upsert(ctx context.Context, s *domain.Subscription) (bool, error) {
	query := `INSERT INTO subscriptions (user_id, subscription_id, customer_id, status, plan_id,
		current_period_start, current_period_end, cancel_at_period_end, canceled_at, trial_end, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			subscription_id = EXCLUDED.subscription_id,
			customer_id = EXCLUDED.customer_id,
			status = EXCLUDED.status,
			plan_id = EXCLUDED.plan_id,
			current_period_start = EXCLUDED.current_period_start,
			current_period_end = EXCLUDED.current_period_end,
			cancel_at_period_end = EXCLUDED.cancel_at_period_end,
			canceled_at = EXCLUDED.canceled_at,
			trial_end = EXCLUDED.trial_end,
			updated_at = EXCLUDED.updated_at
		WHERE NOT (subscriptions.subscription_id = EXCLUDED.subscription_id
			AND subscriptions.status = 'canceled')`

	tag, err := r.pool.Exec(ctx, query,
		s.UserID, s.SubscriptionID, s.CustomerID, s.Status, s.PlanID,
		s.CurrentPeriodStart, s.CurrentPeriodEnd, s.CancelAtPeriodEnd, s.CanceledAt, s.TrialEnd, s.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("upsert subscription: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkCanceled cancels the stored subscription only if it is subscriptionID.
func (r *SubscriptionRepo) MarkCanceled(ctx context.Context, userID string, subscriptionID string, canceledAt time.Time) (bool, error) {
	query := `UPDATE subscriptions
		SET status = $3, plan_id = '', cancel_at_period_end = false, canceled_at = $4, updated_at = $4
		WHERE user_id = $1 AND subscription_id = $2`

	tag, err := r.pool.Exec(ctx, query, userID, subscriptionID, domain.SubscriptionCanceled, canceledAt)
	if err != nil {
		return false, fmt.Errorf("cancel subscription: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
