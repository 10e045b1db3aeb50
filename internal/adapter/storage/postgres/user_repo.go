package postgres

import (
	"context"
	"errors"
	"fmt"

	"payment-reconciler/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// GetByID fetches a user by internal id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT id, email, name, stripe_customer_id FROM users WHERE id = $1`, id)
}

// GetByStripeCustomerID fetches the user mapped to a billing customer.
func (r *UserRepo) GetByStripeCustomerID(ctx context.Context, customerID string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT id, email, name, stripe_customer_id FROM users WHERE stripe_customer_id = $1`, customerID)
}

// SetStripeCustomerID stores the customer mapping if the user has none yet.
func (r *UserRepo) SetStripeCustomerID(ctx context.Context, userID string, customerID string) error {
	query := `UPDATE users SET stripe_customer_id = $2 WHERE id = $1 AND stripe_customer_id IS NULL`

	if _, err := r.pool.Exec(ctx, query, userID, customerID); err != nil {
		return fmt.Errorf("set stripe customer id: %w", err)
	}
	return nil
}

func (r *UserRepo) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	u := &domain.User{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Email, &u.Name, &u.StripeCustomerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
