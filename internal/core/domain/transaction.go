package domain

import "time"

// TransactionStatus represents the lifecycle state of a marketplace transaction.
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusRefunded  TransactionStatus = "refunded"
)

// MarketplaceTransaction is created upstream when the payment intent is
// created and reaches exactly one terminal status here.
type MarketplaceTransaction struct {
	ID              string            `json:"id"`
	Status          TransactionStatus `json:"status"`
	ProductID       string            `json:"product_id"`
	BuyerID         string            `json:"buyer_id"`
	SellerID        string            `json:"seller_id"`
	Amount          int64             `json:"amount"`
	PlatformFee     int64             `json:"platform_fee"`
	Currency        string            `json:"currency"`
	PaymentIntentID *string           `json:"payment_intent_id,omitempty"`
	FailureReason   *string           `json:"failure_reason,omitempty"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// IsTerminal returns true if the transaction is in a final state.
func (t *MarketplaceTransaction) IsTerminal() bool {
	return t.Status == TransactionStatusCompleted ||
		t.Status == TransactionStatusFailed ||
		t.Status == TransactionStatusRefunded
}

// CanTransitionTo reports whether moving to next is allowed.
// Only pending may move, and only to completed or failed.
func (t *MarketplaceTransaction) CanTransitionTo(next TransactionStatus) bool {
	if t.Status != TransactionStatusPending {
		return false
	}
	return next == TransactionStatusCompleted || next == TransactionStatusFailed
}

// Product is the marketplace listing whose sales counter is informational.
type Product struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	SalesCount int64  `json:"sales_count"`
}
