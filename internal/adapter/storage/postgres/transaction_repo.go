package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// TransactionRepo implements ports.TransactionRepository.
// Status changes are guarded in SQL so concurrent deliveries cannot
// move a transaction out of a terminal status.
type TransactionRepo struct {
	pool Pool
}

// NewTransactionRepo creates a new TransactionRepo.
func NewTransactionRepo(pool Pool) *TransactionRepo {
	return &TransactionRepo{pool: pool}
}

// GetByID fetches a marketplace transaction.
func (r *TransactionRepo) GetByID(ctx context.Context, id string) (*domain.MarketplaceTransaction, error) {
	query := `SELECT id, status, product_id, buyer_id, seller_id, amount, platform_fee, currency,
		payment_intent_id, failure_reason, completed_at, created_at, updated_at
		FROM marketplace_transactions WHERE id = $1`

	t := &domain.MarketplaceTransaction{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Status, &t.ProductID, &t.BuyerID, &t.SellerID, &t.Amount, &t.PlatformFee, &t.Currency,
		&t.PaymentIntentID, &t.FailureReason, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction by id: %w", err)
	}
	return t, nil
}

// Complete moves a pending transaction to completed and counts the sale on
// its product in the same statement. The sales count is 0 when nothing moved
// or the product row is missing.
func (r *TransactionRepo) Complete(ctx context.Context, id string, paymentIntentID string, at time.Time) (bool, int64, error) {
	query := `WITH moved AS (
			UPDATE marketplace_transactions
			SET status = $2, payment_intent_id = $3, completed_at = $4, updated_at = $4
			WHERE id = $1 AND status = $5
			RETURNING product_id
		), sold AS (
			UPDATE products SET sales_count = products.sales_count + 1
			FROM moved WHERE products.id = moved.product_id
			RETURNING products.sales_count
		)
		SELECT EXISTS (SELECT 1 FROM moved), COALESCE((SELECT sales_count FROM sold), 0)`

	var (
		moved bool
		sales int64
	)
	err := r.pool.QueryRow(ctx, query,
		id, domain.TransactionStatusCompleted, paymentIntentID, at, domain.TransactionStatusPending,
	).Scan(&moved, &sales)
	if err != nil {
		return false, 0, fmt.Errorf("complete transaction: %w", err)
	}
	return moved, sales, nil
}

// Fail moves a pending transaction to failed and stores the provider reason.
func (r *TransactionRepo) Fail(ctx context.Context, id string, paymentIntentID string, reason string, at time.Time) (bool, error) {
	query := `UPDATE marketplace_transactions
		SET status = $2, payment_intent_id = $3, failure_reason = $4, updated_at = $5
		WHERE id = $1 AND status = $6`

	tag, err := r.pool.Exec(ctx, query,
		id, domain.TransactionStatusFailed, paymentIntentID, reason, at, domain.TransactionStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("fail transaction: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
