package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"encoding/json"
	"time"

	"payment-reconciler/internal/core/domain"
)

// RecipientCipher seals the recipient stored on a notification ledger row.
// The semantic key is authenticated with the ciphertext, so a value moved to
// another row no longer opens.
type RecipientCipher interface {
	Seal(recipient string, semanticKey string) (string, error)
	Open(sealed string, semanticKey string) (string, error)
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Role    string
}

// SignatureVerifier authenticates a raw webhook body and decodes the event.
type SignatureVerifier interface {
	Verify(payload []byte, signatureHeader string) (*domain.Event, error)
}

// ProcessedCache remembers events whose processing finished, in front of the
// event table. A miss is never authoritative.
type ProcessedCache interface {
	Outcome(ctx context.Context, eventID string) (domain.EventOutcome, bool, error)
	Remember(ctx context.Context, eventID string, outcome domain.EventOutcome, ttl time.Duration) error
}

// SendLock is a short-lived exclusive lock on a notification key.
type SendLock interface {
	// Acquire returns false when another holder owns the key.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// EmailSender is the transactional email collaborator.
type EmailSender interface {
	Send(ctx context.Context, recipient string, templateID int64, data map[string]any) error
}

// BillingLookup resolves provider objects by id when a payload is partial.
// Both methods return (nil, nil) when the provider has no such object.
type BillingLookup interface {
	GetCustomer(ctx context.Context, customerID string) (*domain.BillingCustomer, error)
	GetSubscription(ctx context.Context, subscriptionID string) (json.RawMessage, error)
}

// --- Service Ports (Business Logic) ---

// EventLedger wraps the idempotency ledger with its cache.
type EventLedger interface {
	IsProcessed(ctx context.Context, eventID string) (bool, error)
	Claim(ctx context.Context, evt *domain.Event) (domain.ClaimResult, error)
	MarkProcessed(ctx context.Context, evt *domain.Event, outcome domain.EventOutcome) error
	Release(ctx context.Context, evt *domain.Event, cause error) error
}

// EventDispatcher routes a verified event and commits it to the ledger.
type EventDispatcher interface {
	Dispatch(ctx context.Context, evt *domain.Event) (domain.EventOutcome, error)
}

// EntityResolver maps provider identifiers to internal records.
// Missing mappings return (nil, nil).
type EntityResolver interface {
	UserForCustomer(ctx context.Context, customerID string) (*domain.User, error)
	ExpertForAccount(ctx context.Context, accountID string) (*domain.Expert, error)
	User(ctx context.Context, userID string) (*domain.User, error)
	Expert(ctx context.Context, expertID string) (*domain.Expert, error)
}

// SubscriptionLifecycle applies subscription and invoice events.
type SubscriptionLifecycle interface {
	SubscriptionChanged(ctx context.Context, evt *domain.Event) error
	SubscriptionDeleted(ctx context.Context, evt *domain.Event) error
	TrialWillEnd(ctx context.Context, evt *domain.Event) error
	InvoicePaymentSucceeded(ctx context.Context, evt *domain.Event) error
	InvoicePaymentFailed(ctx context.Context, evt *domain.Event) error
	InvoiceUpcoming(ctx context.Context, evt *domain.Event) error
}

// MarketplaceLifecycle applies payment intent events to marketplace transactions.
type MarketplaceLifecycle interface {
	PaymentSucceeded(ctx context.Context, evt *domain.Event) error
	PaymentFailed(ctx context.Context, evt *domain.Event) error
}

// AccountTracker mirrors connected account state.
type AccountTracker interface {
	AccountUpdated(ctx context.Context, evt *domain.Event) error
	AccountAuthorized(ctx context.Context, evt *domain.Event) error
	AccountDeauthorized(ctx context.Context, evt *domain.Event) error
	CapabilityUpdated(ctx context.Context, evt *domain.Event) error
}

// PayoutLedger records payouts and transfers.
type PayoutLedger interface {
	PayoutCreated(ctx context.Context, evt *domain.Event) error
	PayoutPaid(ctx context.Context, evt *domain.Event) error
	PayoutFailed(ctx context.Context, evt *domain.Event) error
	TransferCreated(ctx context.Context, evt *domain.Event) error
	TransferUpdated(ctx context.Context, evt *domain.Event) error
}

// SendFunc performs the actual delivery for a notification.
type SendFunc func(ctx context.Context) error

// NotificationGate runs a send at most once per semantic key.
type NotificationGate interface {
	// TrySend returns sent=false without calling send when the key is recorded.
	// If send fails the key is not recorded.
	TrySend(ctx context.Context, semanticKey string, kind domain.NotificationKind, recipient string, send SendFunc) (bool, error)
}

// Notifier builds notifications and hands them to the gate.
// Failures are logged and never returned.
type Notifier interface {
	OrderConfirmation(ctx context.Context, tx *domain.MarketplaceTransaction, product *domain.Product, buyer *domain.User, seller *domain.Expert)
	SubscriptionWelcome(ctx context.Context, user *domain.User, sub *domain.Subscription)
	SubscriptionCancelled(ctx context.Context, user *domain.User, sub *domain.Subscription)
	TrialEnding(ctx context.Context, user *domain.User, sub *domain.Subscription, daysRemaining int)
	PaymentFailed(ctx context.Context, user *domain.User, rec *domain.PaymentRecord)
	RenewalReminder(ctx context.Context, user *domain.User, reminder RenewalReminder)
	PayoutPaid(ctx context.Context, expert *domain.Expert, payout *domain.Payout)
	PayoutFailed(ctx context.Context, expert *domain.Expert, payout *domain.Payout)
}

// RenewalReminder describes an upcoming renewal charge.
// PeriodEnd identifies the billing period and keys the reminder; RenewsAt is
// when the charge will be attempted and may move between deliveries.
type RenewalReminder struct {
	SubscriptionID string
	PeriodEnd      time.Time
	RenewsAt       time.Time
	DaysUntil      int
	Amount         int64
	Currency       string
}

// AuditService records audit entries.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// AdminService backs the admin read API.
type AdminService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
	GetEvent(ctx context.Context, eventID string) (*domain.EventRecord, error)
	ListPayouts(ctx context.Context, expertID string, limit int) ([]domain.Payout, error)
	GetTransfer(ctx context.Context, transferID string) (*domain.Transfer, error)
	GetTransaction(ctx context.Context, transactionID string) (*domain.MarketplaceTransaction, error)
}
