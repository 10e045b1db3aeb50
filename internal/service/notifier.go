package service

import (
	"context"
	"fmt"
	"strings"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// NotifierImpl implements ports.Notifier on top of the gate and the email sender.
// It never returns errors: a failed notification is logged and left unrecorded
// so the next delivery of the event can retry it.
type NotifierImpl struct {
	gate      ports.NotificationGate
	email     ports.EmailSender
	templates map[domain.NotificationKind]int64
	log       zerolog.Logger
}

// NewNotifier creates a new NotifierImpl.
func NewNotifier(
	gate ports.NotificationGate,
	email ports.EmailSender,
	templates map[domain.NotificationKind]int64,
	log zerolog.Logger,
) *NotifierImpl {
	return &NotifierImpl{gate: gate, email: email, templates: templates, log: log}
}

// OrderConfirmation emails buyer and seller under one key.
func (n *NotifierImpl) OrderConfirmation(ctx context.Context, tx *domain.MarketplaceTransaction, product *domain.Product, buyer *domain.User, seller *domain.Expert) {
	data := map[string]any{
		"transaction_id": tx.ID,
		"product_title":  product.Title,
		"amount":         formatAmount(tx.Amount, tx.Currency),
		"buyer_name":     buyer.Name,
		"seller_name":    seller.Name,
	}
	templateID, ok := n.templates[domain.NotifyOrderConfirmation]

	n.deliver(ctx, domain.OrderKey(tx.ID), domain.NotifyOrderConfirmation, buyer.Email, func(ctx context.Context) error {
		if !ok {
			n.logOnly(domain.NotifyOrderConfirmation, data)
			return nil
		}
		if err := n.email.Send(ctx, buyer.Email, templateID, withRole(data, "buyer")); err != nil {
			return fmt.Errorf("buyer email: %w", err)
		}
		if err := n.email.Send(ctx, seller.Email, templateID, withRole(data, "seller")); err != nil {
			return fmt.Errorf("seller email: %w", err)
		}
		return nil
	})
}

// SubscriptionWelcome greets a new subscriber once per subscription.
func (n *NotifierImpl) SubscriptionWelcome(ctx context.Context, user *domain.User, sub *domain.Subscription) {
	n.send(ctx, domain.WelcomeKey(sub.SubscriptionID), domain.NotifySubscriptionWelcome, user.Email, map[string]any{
		"name":            user.Name,
		"subscription_id": sub.SubscriptionID,
		"plan_id":         sub.PlanID,
		"status":          string(sub.Status),
	})
}

// SubscriptionCancelled confirms a cancellation once per subscription.
func (n *NotifierImpl) SubscriptionCancelled(ctx context.Context, user *domain.User, sub *domain.Subscription) {
	n.send(ctx, domain.CancelledKey(sub.SubscriptionID), domain.NotifySubscriptionCancelled, user.Email, map[string]any{
		"name":            user.Name,
		"subscription_id": sub.SubscriptionID,
	})
}

// TrialEnding warns once per subscription and remaining day count.
func (n *NotifierImpl) TrialEnding(ctx context.Context, user *domain.User, sub *domain.Subscription, daysRemaining int) {
	data := map[string]any{
		"name":            user.Name,
		"subscription_id": sub.SubscriptionID,
		"days_remaining":  daysRemaining,
	}
	if sub.TrialEnd != nil {
		data["trial_end"] = sub.TrialEnd.Format("2006-01-02")
	}
	n.send(ctx, domain.TrialEndingKey(sub.SubscriptionID, daysRemaining), domain.NotifyTrialEnding, user.Email, data)
}

// PaymentFailed notifies once per invoice attempt.
func (n *NotifierImpl) PaymentFailed(ctx context.Context, user *domain.User, rec *domain.PaymentRecord) {
	data := map[string]any{
		"name":       user.Name,
		"invoice_id": rec.InvoiceID,
		"amount":     formatAmount(rec.Amount, rec.Currency),
		"attempt":    rec.AttemptCount,
	}
	if rec.FailureMessage != nil {
		data["reason"] = *rec.FailureMessage
	}
	n.send(ctx, domain.PaymentFailedKey(rec.InvoiceID, rec.AttemptCount), domain.NotifyPaymentFailed, user.Email, data)
}

// RenewalReminder notifies once per subscription and billing period.
func (n *NotifierImpl) RenewalReminder(ctx context.Context, user *domain.User, r ports.RenewalReminder) {
	n.send(ctx, domain.RenewalReminderKey(r.SubscriptionID, r.PeriodEnd), domain.NotifyRenewalReminder, user.Email, map[string]any{
		"name":            user.Name,
		"subscription_id": r.SubscriptionID,
		"renews_on":       r.RenewsAt.Format("2006-01-02"),
		"days_until":      r.DaysUntil,
		"amount":          formatAmount(r.Amount, r.Currency),
	})
}

// PayoutPaid tells the expert the money arrived.
func (n *NotifierImpl) PayoutPaid(ctx context.Context, expert *domain.Expert, payout *domain.Payout) {
	n.send(ctx, domain.PayoutPaidKey(payout.ProviderID), domain.NotifyPayoutPaid, expert.Email, payoutData(expert, payout))
}

// PayoutFailed tells the expert the payout bounced.
func (n *NotifierImpl) PayoutFailed(ctx context.Context, expert *domain.Expert, payout *domain.Payout) {
	data := payoutData(expert, payout)
	if payout.FailureMessage != nil {
		data["reason"] = *payout.FailureMessage
	} else if payout.FailureCode != nil {
		data["reason"] = *payout.FailureCode
	}
	n.send(ctx, domain.PayoutFailedKey(payout.ProviderID), domain.NotifyPayoutFailed, expert.Email, data)
}

// send delivers a single templated email through the gate.
func (n *NotifierImpl) send(ctx context.Context, key string, kind domain.NotificationKind, recipient string, data map[string]any) {
	templateID, ok := n.templates[kind]
	n.deliver(ctx, key, kind, recipient, func(ctx context.Context) error {
		if !ok {
			n.logOnly(kind, data)
			return nil
		}
		return n.email.Send(ctx, recipient, templateID, data)
	})
}

func (n *NotifierImpl) deliver(ctx context.Context, key string, kind domain.NotificationKind, recipient string, fn ports.SendFunc) {
	if recipient == "" {
		n.log.Warn().Str("semantic_key", key).Msg("notification has no recipient")
		return
	}

	sent, err := n.gate.TrySend(ctx, key, kind, recipient, fn)
	switch {
	case err != nil:
		n.log.Error().Err(err).Str("semantic_key", key).Str("kind", string(kind)).Msg("notification not delivered")
	case sent:
		n.log.Info().Str("semantic_key", key).Str("kind", string(kind)).Msg("notification sent")
	default:
		n.log.Debug().Str("semantic_key", key).Msg("notification already sent")
	}
}

func (n *NotifierImpl) logOnly(kind domain.NotificationKind, data map[string]any) {
	n.log.Info().Str("kind", string(kind)).Interface("data", data).Msg("no template configured, notification logged only")
}

func payoutData(expert *domain.Expert, payout *domain.Payout) map[string]any {
	data := map[string]any{
		"name":      expert.Name,
		"payout_id": payout.ProviderID,
		"amount":    formatAmount(payout.Amount, payout.Currency),
	}
	if payout.ArrivalDate != nil {
		data["arrival_date"] = payout.ArrivalDate.Format("2006-01-02")
	}
	return data
}

func withRole(data map[string]any, role string) map[string]any {
	out := make(map[string]any, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	out["role"] = role
	return out
}

// formatAmount renders minor units in the currency's own scale,
// e.g. 1999 usd -> "19.99 USD", 1000 jpy -> "1000 JPY", 1500 kwd -> "1.500 KWD".
func formatAmount(minor int64, code string) string {
	scale := int32(2)
	if unit, err := currency.ParseISO(code); err == nil {
		s, _ := currency.Standard.Rounding(unit)
		scale = int32(s)
	}
	return decimal.New(minor, -scale).StringFixed(scale) + " " + strings.ToUpper(code)
}
