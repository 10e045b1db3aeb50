package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"payment-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// TransferRepo implements ports.TransferRepository.
type TransferRepo struct {
	pool Pool
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(pool Pool) *TransferRepo {
	return &TransferRepo{pool: pool}
}

const transferInsert = `INSERT INTO transfers (provider_id, destination, transaction_id, amount, currency,
	reversed, amount_reversed, reversals, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, $9, $10)`

// InsertIfAbsent records a transfer the first time it is seen.
func (r *TransferRepo) InsertIfAbsent(ctx context.Context, t *domain.Transfer) (bool, error) {
	args, err := transferArgs(t)
	if err != nil {
		return false, err
	}
	tag, err := r.pool.Exec(ctx, transferInsert+` ON CONFLICT (provider_id) DO NOTHING`, args...)
	if err != nil {
		return false, fmt.Errorf("insert transfer: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// UpsertReversal writes the provider's reversal state verbatim.
func (r *TransferRepo) UpsertReversal(ctx context.Context, t *domain.Transfer) error {
	args, err := transferArgs(t)
	if err != nil {
		return err
	}
	query := transferInsert + ` ON CONFLICT (provider_id) DO UPDATE SET
		reversed = EXCLUDED.reversed,
		amount_reversed = EXCLUDED.amount_reversed,
		reversals = EXCLUDED.reversals,
		updated_at = EXCLUDED.updated_at`

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert transfer reversal: %w", err)
	}
	return nil
}

// GetByProviderID fetches a transfer.
func (r *TransferRepo) GetByProviderID(ctx context.Context, providerID string) (*domain.Transfer, error) {
	query := `SELECT provider_id, destination, transaction_id, amount, currency, reversed,
		amount_reversed, reversals, created_at, updated_at
		FROM transfers WHERE provider_id = $1`

	t := &domain.Transfer{}
	var reversals []byte
	err := r.pool.QueryRow(ctx, query, providerID).Scan(
		&t.ProviderID, &t.Destination, &t.TransactionID, &t.Amount, &t.Currency, &t.Reversed,
		&t.AmountReversed, &reversals, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer: %w", err)
	}
	if len(reversals) > 0 {
		if err := json.Unmarshal(reversals, &t.Reversals); err != nil {
			return nil, fmt.Errorf("decode transfer reversals: %w", err)
		}
	}
	return t, nil
}

func transferArgs(t *domain.Transfer) ([]any, error) {
	reversals := t.Reversals
	if reversals == nil {
		reversals = []domain.Reversal{}
	}
	raw, err := json.Marshal(reversals)
	if err != nil {
		return nil, fmt.Errorf("encode transfer reversals: %w", err)
	}
	return []any{
		t.ProviderID, t.Destination, t.TransactionID, t.Amount, t.Currency,
		t.Reversed, t.AmountReversed, string(raw), t.CreatedAt, t.UpdatedAt,
	}, nil
}
