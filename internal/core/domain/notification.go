package domain

import (
	"fmt"
	"time"
)

// NotificationKind selects the email template.
type NotificationKind string

const (
	NotifyOrderConfirmation     NotificationKind = "order_confirmation"
	NotifySubscriptionWelcome   NotificationKind = "subscription_welcome"
	NotifySubscriptionCancelled NotificationKind = "subscription_cancelled"
	NotifyTrialEnding           NotificationKind = "trial_ending"
	NotifyPaymentFailed         NotificationKind = "payment_failed"
	NotifyRenewalReminder       NotificationKind = "renewal_reminder"
	NotifyPayoutPaid            NotificationKind = "payout_paid"
	NotifyPayoutFailed          NotificationKind = "payout_failed"
)

// NotificationEntry is written once per semantic key after a successful send.
type NotificationEntry struct {
	SemanticKey string           `json:"semantic_key"`
	Kind        NotificationKind `json:"kind"`
	Recipient   string           `json:"-"` // stored encrypted
	SentAt      time.Time        `json:"sent_at"`
}

// Semantic keys are built from business identifiers only, so the same
// business fact always yields the same key.

// OrderKey covers both confirmation emails of one marketplace order.
func OrderKey(transactionID string) string {
	return "order_" + transactionID
}

// WelcomeKey sends the welcome once per subscription.
func WelcomeKey(subscriptionID string) string {
	return "subscription_welcome_" + subscriptionID
}

// CancelledKey sends the cancellation notice once per subscription.
func CancelledKey(subscriptionID string) string {
	return "subscription_cancelled_" + subscriptionID
}

// TrialEndingKey allows one countdown email per remaining day count.
func TrialEndingKey(subscriptionID string, daysRemaining int) string {
	return fmt.Sprintf("trial_ending_%s_%dd", subscriptionID, daysRemaining)
}

// PaymentFailedKey allows one notice per invoice collection attempt.
func PaymentFailedKey(invoiceID string, attempt int64) string {
	return fmt.Sprintf("payment_failed_%s_%d", invoiceID, attempt)
}

// RenewalReminderKey allows one reminder per billing period, identified by its end.
func RenewalReminderKey(subscriptionID string, periodEnd time.Time) string {
	return fmt.Sprintf("renewal_reminder_%s_%d", subscriptionID, periodEnd.Unix())
}

// PayoutPaidKey tells the expert once that a payout arrived.
func PayoutPaidKey(payoutID string) string {
	return "payout_paid_" + payoutID
}

// PayoutFailedKey tells the expert once that a payout failed.
func PayoutFailedKey(payoutID string) string {
	return "payout_failed_" + payoutID
}

// DaysUntil returns the whole days from now until t, rounded up.
// It returns 0 when t is not in the future.
func DaysUntil(now, t time.Time) int {
	d := t.Sub(now)
	if d <= 0 {
		return 0
	}
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	return days
}
