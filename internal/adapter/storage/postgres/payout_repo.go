package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PayoutRepo implements ports.PayoutRepository.
type PayoutRepo struct {
	pool Pool
}

// NewPayoutRepo creates a new PayoutRepo.
func NewPayoutRepo(pool Pool) *PayoutRepo {
	return &PayoutRepo{pool: pool}
}

const payoutColumns = `provider_id, account_id, expert_id, status, amount, currency, destination,
	arrival_date, failure_code, failure_message, created_at, updated_at`

// InsertIfAbsent records a payout the first time it is seen.
func (r *PayoutRepo) InsertIfAbsent(ctx context.Context, p *domain.Payout) (bool, error) {
	query := `INSERT INTO payouts (` + payoutColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (provider_id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		p.ProviderID, p.AccountID, p.ExpertID, p.Status, p.Amount, p.Currency, p.Destination,
		p.ArrivalDate, p.FailureCode, p.FailureMessage, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert payout: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByProviderID fetches a payout.
func (r *PayoutRepo) GetByProviderID(ctx context.Context, providerID string) (*domain.Payout, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+payoutColumns+` FROM payouts WHERE provider_id = $1`, providerID)
	p, err := scanPayout(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payout: %w", err)
	}
	return p, nil
}

// AdvanceStatus sets the status only if it still equals from.
func (r *PayoutRepo) AdvanceStatus(ctx context.Context, providerID string, from, to domain.PayoutStatus, failureCode, failureMessage *string, at time.Time) (bool, error) {
	query := `UPDATE payouts
		SET status = $3,
			failure_code = COALESCE($4, failure_code),
			failure_message = COALESCE($5, failure_message),
			updated_at = $6
		WHERE provider_id = $1 AND status = $2`

	tag, err := r.pool.Exec(ctx, query, providerID, from, to, failureCode, failureMessage, at)
	if err != nil {
		return false, fmt.Errorf("advance payout status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// ListByExpert returns the newest payouts of an expert.
func (r *PayoutRepo) ListByExpert(ctx context.Context, expertID string, limit int) ([]domain.Payout, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+payoutColumns+` FROM payouts WHERE expert_id = $1 ORDER BY created_at DESC LIMIT $2`,
		expertID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list payouts: %w", err)
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		p, err := scanPayout(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payout: %w", err)
		}
		payouts = append(payouts, *p)
	}
	return payouts, rows.Err()
}

func scanPayout(row pgx.Row) (*domain.Payout, error) {
	p := &domain.Payout{}
	err := row.Scan(
		&p.ProviderID, &p.AccountID, &p.ExpertID, &p.Status, &p.Amount, &p.Currency, &p.Destination,
		&p.ArrivalDate, &p.FailureCode, &p.FailureMessage, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
