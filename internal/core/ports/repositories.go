package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"time"

	"payment-reconciler/internal/core/domain"
)

// Lookups return (nil, nil) when the record does not exist.

// EventRepository is the durable idempotency ledger for provider events.
type EventRepository interface {
	// Claim atomically creates the event record, or takes over an expired
	// unprocessed claim. It never takes over a processed record.
	Claim(ctx context.Context, evt *domain.Event, now time.Time, lease time.Duration) (domain.ClaimResult, error)
	MarkProcessed(ctx context.Context, eventID string, outcome domain.EventOutcome, at time.Time) error
	Release(ctx context.Context, eventID string, cause string) error
	GetByID(ctx context.Context, eventID string) (*domain.EventRecord, error)
}

// UserRepository reads internal users and maintains the customer mapping.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByStripeCustomerID(ctx context.Context, customerID string) (*domain.User, error)
	SetStripeCustomerID(ctx context.Context, userID string, customerID string) error
}

// ExpertRepository persists marketplace sellers and their connected account state.
type ExpertRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Expert, error)
	GetByStripeAccountID(ctx context.Context, accountID string) (*domain.Expert, error)
	// PatchAccount applies a sparse account patch; capabilities merge by key.
	PatchAccount(ctx context.Context, expertID string, patch domain.AccountPatch, at time.Time) error
	// SetCapability updates one capability without touching the others.
	SetCapability(ctx context.Context, expertID string, capability string, status string, at time.Time) error
	Deauthorize(ctx context.Context, expertID string, reason string, at time.Time) error
}

// SubscriptionRepository stores one subscription snapshot per user.
type SubscriptionRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Subscription, error)
	// Upsert writes the snapshot. It returns false when the stored row is the
	// same subscription already canceled; canceled is terminal.
	Upsert(ctx context.Context, sub *domain.Subscription) (bool, error)
	// MarkCanceled forces the stored subscription to canceled and clears its
	// plan. It returns false when the user's stored subscription is a different one.
	MarkCanceled(ctx context.Context, userID string, subscriptionID string, canceledAt time.Time) (bool, error)
}

// PaymentHistoryRepository appends invoice payment rows.
type PaymentHistoryRepository interface {
	InsertIfAbsent(ctx context.Context, rec *domain.PaymentRecord) (bool, error)
}

// TransactionRepository persists marketplace transactions.
type TransactionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.MarketplaceTransaction, error)
	// Complete moves a pending transaction to completed and increments its
	// product's sales count atomically. Returns false if it was not pending,
	// with the new sales count otherwise.
	Complete(ctx context.Context, id string, paymentIntentID string, at time.Time) (bool, int64, error)
	// Fail moves a pending transaction to failed. Returns false if it was not pending.
	Fail(ctx context.Context, id string, paymentIntentID string, reason string, at time.Time) (bool, error)
}

// ProductRepository persists marketplace products.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// PayoutRepository is the payout ledger.
type PayoutRepository interface {
	InsertIfAbsent(ctx context.Context, p *domain.Payout) (bool, error)
	GetByProviderID(ctx context.Context, providerID string) (*domain.Payout, error)
	// AdvanceStatus is a compare-and-set from the previously read status.
	AdvanceStatus(ctx context.Context, providerID string, from, to domain.PayoutStatus, failureCode, failureMessage *string, at time.Time) (bool, error)
	ListByExpert(ctx context.Context, expertID string, limit int) ([]domain.Payout, error)
}

// TransferRepository is the transfer ledger.
type TransferRepository interface {
	InsertIfAbsent(ctx context.Context, t *domain.Transfer) (bool, error)
	// UpsertReversal overwrites the reversal fields, inserting the row if missing.
	UpsertReversal(ctx context.Context, t *domain.Transfer) error
	GetByProviderID(ctx context.Context, providerID string) (*domain.Transfer, error)
}

// NotificationRepository is the write-once notification ledger.
type NotificationRepository interface {
	Exists(ctx context.Context, semanticKey string) (bool, error)
	// Record inserts the entry; false means the key was already recorded.
	Record(ctx context.Context, entry *domain.NotificationEntry) (bool, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, log *domain.AuditLog) error
}
