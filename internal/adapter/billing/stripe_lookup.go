package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"payment-reconciler/internal/core/domain"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

type customerGetter interface {
	Get(id string, params *stripe.CustomerParams) (*stripe.Customer, error)
}

type subscriptionGetter interface {
	Get(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error)
}

// StripeLookup implements ports.BillingLookup against the Stripe API.
type StripeLookup struct {
	customers     customerGetter
	subscriptions subscriptionGetter
}

// NewStripeLookup creates a lookup client for the platform secret key.
func NewStripeLookup(secretKey string) *StripeLookup {
	sc := client.New(secretKey, nil)
	return &StripeLookup{customers: sc.Customers, subscriptions: sc.Subscriptions}
}

// GetCustomer returns the customer with its metadata, or nil when Stripe has
// no such customer or it was deleted.
func (l *StripeLookup) GetCustomer(ctx context.Context, customerID string) (*domain.BillingCustomer, error) {
	params := &stripe.CustomerParams{}
	params.Context = ctx

	c, err := l.customers.Get(customerID, params)
	if err != nil {
		if isResourceMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stripe get customer: %w", err)
	}
	if c == nil || c.Deleted {
		return nil, nil
	}
	return &domain.BillingCustomer{ID: c.ID, Email: c.Email, Metadata: c.Metadata}, nil
}

// GetSubscription returns the subscription exactly as Stripe serialized it.
func (l *StripeLookup) GetSubscription(ctx context.Context, subscriptionID string) (json.RawMessage, error) {
	params := &stripe.SubscriptionParams{}
	params.Context = ctx

	s, err := l.subscriptions.Get(subscriptionID, params)
	if err != nil {
		if isResourceMissing(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("stripe get subscription: %w", err)
	}
	if s == nil {
		return nil, nil
	}
	if s.LastResponse != nil && len(s.LastResponse.RawJSON) > 0 {
		return json.RawMessage(s.LastResponse.RawJSON), nil
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode subscription: %w", err)
	}
	return raw, nil
}

func isResourceMissing(err error) bool {
	var stripeErr *stripe.Error
	return errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing
}
