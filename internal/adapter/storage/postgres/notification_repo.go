package postgres

import (
	"context"
	"fmt"

	"payment-reconciler/internal/core/domain"
)

// NotificationRepo implements ports.NotificationRepository.
type NotificationRepo struct {
	pool Pool
}

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(pool Pool) *NotificationRepo {
	return &NotificationRepo{pool: pool}
}

// Exists reports whether the semantic key has been recorded.
func (r *NotificationRepo) Exists(ctx context.Context, semanticKey string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM notification_ledger WHERE semantic_key = $1)`, semanticKey,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check notification ledger: %w", err)
	}
	return exists, nil
}

// Record writes the entry once; later writes for the same key are ignored.
func (r *NotificationRepo) Record(ctx context.Context, e *domain.NotificationEntry) (bool, error) {
	query := `INSERT INTO notification_ledger (semantic_key, kind, recipient, sent_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (semantic_key) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query, e.SemanticKey, e.Kind, e.Recipient, e.SentAt)
	if err != nil {
		return false, fmt.Errorf("record notification: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
