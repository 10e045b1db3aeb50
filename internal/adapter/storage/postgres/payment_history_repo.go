package postgres

import (
	"context"
	"fmt"

	"payment-reconciler/internal/core/domain"
)

// PaymentHistoryRepo implements ports.PaymentHistoryRepository.
type PaymentHistoryRepo struct {
	pool Pool
}

// NewPaymentHistoryRepo creates a new PaymentHistoryRepo.
func NewPaymentHistoryRepo(pool Pool) *PaymentHistoryRepo {
	return &PaymentHistoryRepo{pool: pool}
}

// InsertIfAbsent appends the row unless its id already exists.
func (r *PaymentHistoryRepo) InsertIfAbsent(ctx context.Context, p *domain.PaymentRecord) (bool, error) {
	query := `INSERT INTO payment_history (id, user_id, subscription_id, invoice_id, amount, currency,
		status, attempt_count, failure_message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.UserID, nullString(p.SubscriptionID), p.InvoiceID, p.Amount, p.Currency,
		p.Status, p.AttemptCount, p.FailureMessage, p.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert payment history: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
