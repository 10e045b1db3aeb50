package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/core/ports"
	"payment-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
)

// SubscriptionServiceImpl implements ports.SubscriptionLifecycle.
// Each handler first writes state, then asks the notifier; the notifier's gate
// makes the second step safe to repeat on redelivery.
type SubscriptionServiceImpl struct {
	subs          ports.SubscriptionRepository
	payments      ports.PaymentHistoryRepository
	resolver      ports.EntityResolver
	billing       ports.BillingLookup
	notifier      ports.Notifier
	trialWindow   time.Duration
	renewalWindow time.Duration
	now           func() time.Time
	log           zerolog.Logger
}

// NewSubscriptionService creates a new SubscriptionServiceImpl. billing may be nil.
func NewSubscriptionService(
	subs ports.SubscriptionRepository,
	payments ports.PaymentHistoryRepository,
	resolver ports.EntityResolver,
	billing ports.BillingLookup,
	notifier ports.Notifier,
	trialWindow time.Duration,
	renewalWindow time.Duration,
	log zerolog.Logger,
) *SubscriptionServiceImpl {
	return &SubscriptionServiceImpl{
		subs:          subs,
		payments:      payments,
		resolver:      resolver,
		billing:       billing,
		notifier:      notifier,
		trialWindow:   trialWindow,
		renewalWindow: renewalWindow,
		now:           func() time.Time { return time.Now().UTC() },
		log:           log,
	}
}

// SubscriptionChanged upserts the full snapshot for created and updated events.
// A created event also requests the welcome notification, keyed by subscription id.
func (s *SubscriptionServiceImpl) SubscriptionChanged(ctx context.Context, evt *domain.Event) error {
	p, err := s.decodeSubscription(ctx, evt)
	if err != nil {
		return err
	}

	status, ok := domain.ParseSubscriptionStatus(p.Status)
	if !ok {
		return domain.Skip("subscription %s has unsupported status %q", p.ID, p.Status)
	}

	user, err := s.resolver.UserForCustomer(ctx, p.Customer.String())
	if err != nil {
		return err
	}
	if user == nil {
		return domain.Skip("no user for customer %s", p.Customer)
	}

	snapshot := p.snapshot(user.ID, status, s.now())
	stored, err := s.subs.Upsert(ctx, snapshot)
	if err != nil {
		return fmt.Errorf("store subscription %s: %w", p.ID, err)
	}
	if !stored {
		return domain.Skip("subscription %s already canceled", p.ID)
	}

	s.log.Info().
		Str("event_id", evt.ID).
		Str("subscription_id", p.ID).
		Str("user_id", user.ID).
		Str("status", string(status)).
		Msg("subscription snapshot stored")

	if evt.Type == domain.EventSubscriptionCreated {
		s.notifier.SubscriptionWelcome(ctx, user, snapshot)
	}
	return nil
}

// SubscriptionDeleted forces the subscription to canceled and clears its plan.
func (s *SubscriptionServiceImpl) SubscriptionDeleted(ctx context.Context, evt *domain.Event) error {
	var p subscriptionPayload
	if err := decodeObject(evt, &p); err != nil {
		return err
	}

	user, err := s.resolver.UserForCustomer(ctx, p.Customer.String())
	if err != nil {
		return err
	}
	if user == nil {
		return domain.Skip("no user for customer %s", p.Customer)
	}

	now := s.now()
	snapshot := p.snapshot(user.ID, domain.SubscriptionCanceled, now)
	snapshot.PlanID = ""
	snapshot.CancelAtPeriodEnd = false
	if snapshot.CanceledAt == nil {
		snapshot.CanceledAt = &now
	}

	canceled, err := s.subs.MarkCanceled(ctx, user.ID, p.ID, *snapshot.CanceledAt)
	if err != nil {
		return fmt.Errorf("cancel subscription %s: %w", p.ID, err)
	}
	if !canceled {
		existing, err := s.subs.GetByUserID(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("load subscription for user %s: %w", user.ID, err)
		}
		if existing != nil {
			// user has moved on to another subscription; keep it
			return domain.Skip("subscription %s is not the current subscription of user %s", p.ID, user.ID)
		}
		if _, err := s.subs.Upsert(ctx, snapshot); err != nil {
			return fmt.Errorf("store canceled subscription %s: %w", p.ID, err)
		}
	}

	s.log.Info().Str("event_id", evt.ID).Str("subscription_id", p.ID).Str("user_id", user.ID).Msg("subscription canceled")

	s.notifier.SubscriptionCancelled(ctx, user, snapshot)
	return nil
}

// TrialWillEnd requests a countdown notification when the trial ends inside the window.
func (s *SubscriptionServiceImpl) TrialWillEnd(ctx context.Context, evt *domain.Event) error {
	p, err := s.decodeSubscription(ctx, evt)
	if err != nil {
		return err
	}

	trialEnd := unixTime(p.TrialEnd)
	if trialEnd == nil {
		s.log.Debug().Str("subscription_id", p.ID).Msg("trial_will_end without trial_end")
		return nil
	}

	now := s.now()
	remaining := trialEnd.Sub(now)
	if remaining <= 0 || remaining > s.trialWindow {
		s.log.Debug().Str("subscription_id", p.ID).Dur("remaining", remaining).Msg("trial end outside notification window")
		return nil
	}

	user, err := s.resolver.UserForCustomer(ctx, p.Customer.String())
	if err != nil {
		return err
	}
	if user == nil {
		return domain.Skip("no user for customer %s", p.Customer)
	}

	status, ok := domain.ParseSubscriptionStatus(p.Status)
	if !ok {
		status = domain.SubscriptionTrialing
	}
	s.notifier.TrialEnding(ctx, user, p.snapshot(user.ID, status, now), domain.DaysUntil(now, *trialEnd))
	return nil
}

// InvoicePaymentSucceeded appends a succeeded payment row keyed by invoice id.
func (s *SubscriptionServiceImpl) InvoicePaymentSucceeded(ctx context.Context, evt *domain.Event) error {
	var p invoicePayload
	if err := decodeObject(evt, &p); err != nil {
		return err
	}
	if p.ID == "" {
		return apperror.ErrMalformedPayload(fmt.Errorf("invoice id missing"))
	}

	user, err := s.resolver.UserForCustomer(ctx, p.Customer.String())
	if err != nil {
		return err
	}
	if user == nil {
		return domain.Skip("no user for customer %s", p.Customer)
	}

	rec := &domain.PaymentRecord{
		ID:             domain.SucceededPaymentID(p.ID),
		UserID:         user.ID,
		SubscriptionID: p.subscriptionID(),
		InvoiceID:      p.ID,
		Amount:         p.AmountPaid,
		Currency:       p.Currency,
		Status:         domain.PaymentSucceeded,
		AttemptCount:   p.AttemptCount,
		CreatedAt:      s.now(),
	}
	inserted, err := s.payments.InsertIfAbsent(ctx, rec)
	if err != nil {
		return fmt.Errorf("record payment %s: %w", rec.ID, err)
	}
	if !inserted {
		s.log.Debug().Str("invoice_id", p.ID).Msg("succeeded payment already recorded")
	}
	return nil
}

// InvoicePaymentFailed appends a failed payment row per attempt and notifies the user.
func (s *SubscriptionServiceImpl) InvoicePaymentFailed(ctx context.Context, evt *domain.Event) error {
	var p invoicePayload
	if err := decodeObject(evt, &p); err != nil {
		return err
	}
	if p.ID == "" {
		return apperror.ErrMalformedPayload(fmt.Errorf("invoice id missing"))
	}

	user, err := s.resolver.UserForCustomer(ctx, p.Customer.String())
	if err != nil {
		return err
	}
	if user == nil {
		return domain.Skip("no user for customer %s", p.Customer)
	}

	rec := &domain.PaymentRecord{
		ID:             domain.FailedPaymentID(p.ID, p.AttemptCount),
		UserID:         user.ID,
		SubscriptionID: p.subscriptionID(),
		InvoiceID:      p.ID,
		Amount:         p.AmountDue,
		Currency:       p.Currency,
		Status:         domain.PaymentFailed,
		AttemptCount:   p.AttemptCount,
		FailureMessage: p.failureMessage(),
		CreatedAt:      s.now(),
	}
	inserted, err := s.payments.InsertIfAbsent(ctx, rec)
	if err != nil {
		return fmt.Errorf("record payment %s: %w", rec.ID, err)
	}
	if inserted {
		s.log.Info().Str("invoice_id", p.ID).Int64("attempt", p.AttemptCount).Msg("failed payment recorded")
	}

	s.notifier.PaymentFailed(ctx, user, rec)
	return nil
}

// InvoiceUpcoming requests a renewal reminder for renewals inside the window.
func (s *SubscriptionServiceImpl) InvoiceUpcoming(ctx context.Context, evt *domain.Event) error {
	var p invoicePayload
	if err := decodeObject(evt, &p); err != nil {
		return err
	}
	if p.BillingReason != billingReasonRenewal {
		s.log.Debug().Str("billing_reason", p.BillingReason).Msg("upcoming invoice is not a renewal")
		return nil
	}

	subID := p.subscriptionID()
	if subID == "" {
		return domain.Skip("upcoming renewal invoice without subscription")
	}
	renewsAt := p.renewsAt()
	if renewsAt == nil {
		return domain.Skip("upcoming invoice for %s has no renewal date", subID)
	}

	now := s.now()
	until := renewsAt.Sub(now)
	if until <= 0 || until > s.renewalWindow {
		s.log.Debug().Str("subscription_id", subID).Dur("until", until).Msg("renewal outside reminder window")
		return nil
	}

	user, err := s.resolver.UserForCustomer(ctx, p.Customer.String())
	if err != nil {
		return err
	}
	if user == nil {
		return domain.Skip("no user for customer %s", p.Customer)
	}

	s.notifier.RenewalReminder(ctx, user, ports.RenewalReminder{
		SubscriptionID: subID,
		PeriodEnd:      *p.periodEnd(),
		RenewsAt:       *renewsAt,
		DaysUntil:      domain.DaysUntil(now, *renewsAt),
		Amount:         p.AmountDue,
		Currency:       p.Currency,
	})
	return nil
}

// decodeSubscription decodes the event object and, when the payload is
// partial, completes it from the billing provider.
func (s *SubscriptionServiceImpl) decodeSubscription(ctx context.Context, evt *domain.Event) (*subscriptionPayload, error) {
	var p subscriptionPayload
	if err := decodeObject(evt, &p); err != nil {
		return nil, err
	}
	if p.ID == "" {
		return nil, apperror.ErrMalformedPayload(fmt.Errorf("subscription id missing"))
	}
	if !p.partial() || s.billing == nil {
		return &p, nil
	}

	raw, err := s.billing.GetSubscription(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("lookup subscription %s: %w", p.ID, err)
	}
	if raw == nil {
		return nil, domain.Skip("subscription %s unknown to billing provider", p.ID)
	}
	var full subscriptionPayload
	if err := json.Unmarshal(raw, &full); err != nil {
		return nil, fmt.Errorf("decode subscription %s from provider: %w", p.ID, err)
	}
	s.log.Debug().Str("subscription_id", p.ID).Msg("partial subscription payload completed from provider")
	return &full, nil
}
