package service

import (
	"context"
	"fmt"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/core/ports"

	"github.com/rs/zerolog"
)

// metadataUserID is the customer metadata key linking a provider customer to a user.
const metadataUserID = "user_id"

// EntityResolverImpl implements ports.EntityResolver.
type EntityResolverImpl struct {
	users   ports.UserRepository
	experts ports.ExpertRepository
	billing ports.BillingLookup
	log     zerolog.Logger
}

// NewEntityResolver creates a new EntityResolverImpl. billing may be nil,
// in which case unmapped customers are never backfilled.
func NewEntityResolver(
	users ports.UserRepository,
	experts ports.ExpertRepository,
	billing ports.BillingLookup,
	log zerolog.Logger,
) *EntityResolverImpl {
	return &EntityResolverImpl{users: users, experts: experts, billing: billing, log: log}
}

// UserForCustomer maps a billing customer to a user, backfilling the mapping
// from the customer's metadata when the local column is empty.
func (r *EntityResolverImpl) UserForCustomer(ctx context.Context, customerID string) (*domain.User, error) {
	if customerID == "" {
		return nil, nil
	}

	user, err := r.users.GetByStripeCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("resolve customer %s: %w", customerID, err)
	}
	if user != nil {
		return user, nil
	}
	if r.billing == nil {
		r.log.Warn().Str("customer_id", customerID).Msg("no user mapped to customer")
		return nil, nil
	}

	customer, err := r.billing.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("lookup customer %s: %w", customerID, err)
	}
	if customer == nil || customer.Metadata[metadataUserID] == "" {
		r.log.Warn().Str("customer_id", customerID).Msg("no user mapped to customer")
		return nil, nil
	}

	userID := customer.Metadata[metadataUserID]
	user, err = r.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve user %s: %w", userID, err)
	}
	if user == nil {
		r.log.Warn().Str("customer_id", customerID).Str("user_id", userID).Msg("customer metadata points at unknown user")
		return nil, nil
	}
	if user.StripeCustomerID != nil && *user.StripeCustomerID != customerID {
		r.log.Warn().
			Str("customer_id", customerID).
			Str("user_id", userID).
			Str("mapped_customer_id", *user.StripeCustomerID).
			Msg("user already mapped to another customer")
		return nil, nil
	}

	if user.StripeCustomerID == nil {
		if err := r.users.SetStripeCustomerID(ctx, user.ID, customerID); err != nil {
			// resolution still succeeds, the next event retries the backfill
			r.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to backfill customer mapping")
		} else {
			r.log.Info().Str("user_id", user.ID).Str("customer_id", customerID).Msg("customer mapping backfilled")
		}
		user.StripeCustomerID = &customerID
	}
	return user, nil
}

// ExpertForAccount maps a connected account to its expert.
func (r *EntityResolverImpl) ExpertForAccount(ctx context.Context, accountID string) (*domain.Expert, error) {
	if accountID == "" {
		return nil, nil
	}
	expert, err := r.experts.GetByStripeAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("resolve account %s: %w", accountID, err)
	}
	if expert == nil {
		r.log.Warn().Str("account_id", accountID).Msg("no expert mapped to account")
	}
	return expert, nil
}

// User fetches a user by internal id.
func (r *EntityResolverImpl) User(ctx context.Context, userID string) (*domain.User, error) {
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve user %s: %w", userID, err)
	}
	return user, nil
}

// Expert fetches an expert by internal id.
func (r *EntityResolverImpl) Expert(ctx context.Context, expertID string) (*domain.Expert, error) {
	expert, err := r.experts.GetByID(ctx, expertID)
	if err != nil {
		return nil, fmt.Errorf("resolve expert %s: %w", expertID, err)
	}
	return expert, nil
}
