package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"payment-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ExpertRepo implements ports.ExpertRepository.
// Capabilities live in a JSONB column and are merged with the || operator.
type ExpertRepo struct {
	pool Pool
}

// NewExpertRepo creates a new ExpertRepo.
func NewExpertRepo(pool Pool) *ExpertRepo {
	return &ExpertRepo{pool: pool}
}

const expertColumns = `id, user_id, email, name, status, stripe_account_id, charges_enabled, payouts_enabled,
	details_submitted, capabilities, deactivation_reason, deactivated_at, updated_at`

// GetByID fetches an expert by internal id.
func (r *ExpertRepo) GetByID(ctx context.Context, id string) (*domain.Expert, error) {
	return r.getOne(ctx, `SELECT `+expertColumns+` FROM experts WHERE id = $1`, id)
}

// GetByStripeAccountID fetches the expert owning a connected account.
func (r *ExpertRepo) GetByStripeAccountID(ctx context.Context, accountID string) (*domain.Expert, error) {
	return r.getOne(ctx, `SELECT `+expertColumns+` FROM experts WHERE stripe_account_id = $1`, accountID)
}

// PatchAccount applies the non-nil fields of patch and merges its capabilities.
func (r *ExpertRepo) PatchAccount(ctx context.Context, expertID string, patch domain.AccountPatch, at time.Time) error {
	caps, err := json.Marshal(patchCapabilities(patch.Capabilities))
	if err != nil {
		return fmt.Errorf("encode capabilities: %w", err)
	}

	query := `UPDATE experts SET
			charges_enabled = COALESCE($2, charges_enabled),
			payouts_enabled = COALESCE($3, payouts_enabled),
			details_submitted = COALESCE($4, details_submitted),
			capabilities = COALESCE(capabilities, '{}'::jsonb) || $5::jsonb,
			updated_at = $6
		WHERE id = $1`

	_, err = r.pool.Exec(ctx, query,
		expertID, patch.ChargesEnabled, patch.PayoutsEnabled, patch.DetailsSubmitted, string(caps), at,
	)
	if err != nil {
		return fmt.Errorf("patch expert account: %w", err)
	}
	return nil
}

// SetCapability sets a single key of the capabilities map.
func (r *ExpertRepo) SetCapability(ctx context.Context, expertID string, capability string, status string, at time.Time) error {
	query := `UPDATE experts SET
			capabilities = COALESCE(capabilities, '{}'::jsonb) || jsonb_build_object($2::text, $3::text),
			updated_at = $4
		WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, expertID, capability, status, at); err != nil {
		return fmt.Errorf("set expert capability: %w", err)
	}
	return nil
}

// Deauthorize deactivates the expert and detaches the connected account.
func (r *ExpertRepo) Deauthorize(ctx context.Context, expertID string, reason string, at time.Time) error {
	query := `UPDATE experts SET
			status = $2, stripe_account_id = NULL, charges_enabled = false, payouts_enabled = false,
			deactivation_reason = $3, deactivated_at = $4, updated_at = $4
		WHERE id = $1`

	if _, err := r.pool.Exec(ctx, query, expertID, domain.ExpertStatusInactive, reason, at); err != nil {
		return fmt.Errorf("deauthorize expert: %w", err)
	}
	return nil
}

func (r *ExpertRepo) getOne(ctx context.Context, query string, arg string) (*domain.Expert, error) {
	e := &domain.Expert{}
	var caps []byte
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&e.ID, &e.UserID, &e.Email, &e.Name, &e.Status, &e.StripeAccountID,
		&e.Account.ChargesEnabled, &e.Account.PayoutsEnabled, &e.Account.DetailsSubmitted, &caps,
		&e.DeactivationReason, &e.DeactivatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get expert: %w", err)
	}
	if len(caps) > 0 {
		if err := json.Unmarshal(caps, &e.Account.Capabilities); err != nil {
			return nil, fmt.Errorf("decode expert capabilities: %w", err)
		}
	}
	return e, nil
}

func patchCapabilities(c domain.Capabilities) domain.Capabilities {
	if c == nil {
		return domain.Capabilities{}
	}
	return c
}
