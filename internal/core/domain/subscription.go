package domain

import "time"

// SubscriptionStatus is the local subscription lifecycle state.
type SubscriptionStatus string

const (
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// ParseSubscriptionStatus folds a provider status onto the local states.
func ParseSubscriptionStatus(s string) (SubscriptionStatus, bool) {
	switch s {
	case "trialing":
		return SubscriptionTrialing, true
	case "active":
		return SubscriptionActive, true
	case "past_due", "incomplete", "unpaid", "paused":
		return SubscriptionPastDue, true
	case "canceled", "incomplete_expired":
		return SubscriptionCanceled, true
	default:
		return "", false
	}
}

// Subscription is the one-per-user snapshot of the billing subscription.
// Each relevant event overwrites it.
type Subscription struct {
	UserID             string             `json:"user_id"`
	SubscriptionID     string             `json:"subscription_id"`
	CustomerID         string             `json:"customer_id"`
	Status             SubscriptionStatus `json:"status"`
	PlanID             string             `json:"plan_id"`
	CurrentPeriodStart *time.Time         `json:"current_period_start,omitempty"`
	CurrentPeriodEnd   *time.Time         `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd  bool               `json:"cancel_at_period_end"`
	CanceledAt         *time.Time         `json:"canceled_at,omitempty"`
	TrialEnd           *time.Time         `json:"trial_end,omitempty"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// PaymentStatus is the outcome of an invoice payment attempt.
type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
)

// PaymentRecord is one row of the invoice payment history.
type PaymentRecord struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	SubscriptionID string        `json:"subscription_id,omitempty"`
	InvoiceID      string        `json:"invoice_id"`
	Amount         int64         `json:"amount"`
	Currency       string        `json:"currency"`
	Status         PaymentStatus `json:"status"`
	AttemptCount   int64         `json:"attempt_count"`
	FailureMessage *string       `json:"failure_message,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// SucceededPaymentID is keyed by invoice so a retry never double-inserts.
func SucceededPaymentID(invoiceID string) string {
	return invoiceID
}

// FailedPaymentID carries the attempt so each failed attempt gets its own row.
func FailedPaymentID(invoiceID string, attempt int64) string {
	return invoiceID + ":failed:" + itoa(attempt)
}
