package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/pkg/apperror"
)

// Provider objects are decoded into local structs rather than SDK types so a
// payload from an older or newer API version still decodes: fields that moved
// between versions are read from both places.

// expandableID is a provider reference that arrives either as a bare id or as
// an expanded object carrying an "id" field.
type expandableID string

func (e *expandableID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*e = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*e = expandableID(s)
		return nil
	}
	var obj struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*e = expandableID(obj.ID)
	return nil
}

func (e expandableID) String() string { return string(e) }

// decodeObject unmarshals the event's data.object into v.
func decodeObject(evt *domain.Event, v any) error {
	if len(evt.Object) == 0 {
		return apperror.ErrMalformedPayload(fmt.Errorf("event %s has no data.object", evt.ID))
	}
	if err := json.Unmarshal(evt.Object, v); err != nil {
		return apperror.ErrMalformedPayload(fmt.Errorf("decode %s object: %w", evt.Type, err))
	}
	return nil
}

func unixTime(sec int64) *time.Time {
	if sec <= 0 {
		return nil
	}
	t := time.Unix(sec, 0).UTC()
	return &t
}

// --- payment intents ---

type paymentIntentPayload struct {
	ID               string            `json:"id"`
	Amount           int64             `json:"amount"`
	Currency         string            `json:"currency"`
	Status           string            `json:"status"`
	Customer         expandableID      `json:"customer"`
	Metadata         map[string]string `json:"metadata"`
	LastPaymentError *struct {
		Code        string `json:"code"`
		DeclineCode string `json:"decline_code"`
		Message     string `json:"message"`
	} `json:"last_payment_error"`
}

func (p *paymentIntentPayload) failureReason() string {
	if p.LastPaymentError == nil {
		return "payment_failed"
	}
	switch {
	case p.LastPaymentError.Message != "":
		return p.LastPaymentError.Message
	case p.LastPaymentError.DeclineCode != "":
		return p.LastPaymentError.DeclineCode
	case p.LastPaymentError.Code != "":
		return p.LastPaymentError.Code
	default:
		return "payment_failed"
	}
}

// orderMetadata links a payment intent to a marketplace transaction.
type orderMetadata struct {
	ProductID     string
	BuyerID       string
	ExpertID      string
	TransactionID string
}

// parseOrderMetadata returns the names of missing keys when any is absent.
func parseOrderMetadata(md map[string]string) (orderMetadata, []string) {
	m := orderMetadata{
		ProductID:     md["product_id"],
		BuyerID:       md["buyer_id"],
		ExpertID:      md["expert_id"],
		TransactionID: md["transaction_id"],
	}
	var missing []string
	for _, f := range [...]struct{ key, val string }{
		{"product_id", m.ProductID},
		{"buyer_id", m.BuyerID},
		{"expert_id", m.ExpertID},
		{"transaction_id", m.TransactionID},
	} {
		if f.val == "" {
			missing = append(missing, f.key)
		}
	}
	return m, missing
}

// --- subscriptions ---

type subscriptionItem struct {
	Price struct {
		ID string `json:"id"`
	} `json:"price"`
	Plan *struct {
		ID string `json:"id"`
	} `json:"plan"`
	CurrentPeriodStart int64 `json:"current_period_start"`
	CurrentPeriodEnd   int64 `json:"current_period_end"`
}

type subscriptionPayload struct {
	ID                 string       `json:"id"`
	Customer           expandableID `json:"customer"`
	Status             string       `json:"status"`
	CancelAtPeriodEnd  bool         `json:"cancel_at_period_end"`
	CanceledAt         int64        `json:"canceled_at"`
	EndedAt            int64        `json:"ended_at"`
	CurrentPeriodStart int64        `json:"current_period_start"`
	CurrentPeriodEnd   int64        `json:"current_period_end"`
	TrialEnd           int64        `json:"trial_end"`
	Items              struct {
		Data []subscriptionItem `json:"data"`
	} `json:"items"`
	Metadata map[string]string `json:"metadata"`
}

// partial reports whether fields needed for a snapshot are absent.
func (p *subscriptionPayload) partial() bool {
	return p.Status == "" || p.Customer == ""
}

func (p *subscriptionPayload) planID() string {
	if len(p.Items.Data) == 0 {
		return ""
	}
	item := p.Items.Data[0]
	if item.Price.ID != "" {
		return item.Price.ID
	}
	if item.Plan != nil {
		return item.Plan.ID
	}
	return ""
}

// period reads the billing period from the subscription, falling back to
// its first item where newer API versions keep it.
func (p *subscriptionPayload) period() (start, end *time.Time) {
	s, e := p.CurrentPeriodStart, p.CurrentPeriodEnd
	if (s == 0 || e == 0) && len(p.Items.Data) > 0 {
		if s == 0 {
			s = p.Items.Data[0].CurrentPeriodStart
		}
		if e == 0 {
			e = p.Items.Data[0].CurrentPeriodEnd
		}
	}
	return unixTime(s), unixTime(e)
}

func (p *subscriptionPayload) snapshot(userID string, status domain.SubscriptionStatus, at time.Time) *domain.Subscription {
	start, end := p.period()
	canceledAt := unixTime(p.CanceledAt)
	if canceledAt == nil {
		canceledAt = unixTime(p.EndedAt)
	}
	return &domain.Subscription{
		UserID:             userID,
		SubscriptionID:     p.ID,
		CustomerID:         p.Customer.String(),
		Status:             status,
		PlanID:             p.planID(),
		CurrentPeriodStart: start,
		CurrentPeriodEnd:   end,
		CancelAtPeriodEnd:  p.CancelAtPeriodEnd,
		CanceledAt:         canceledAt,
		TrialEnd:           unixTime(p.TrialEnd),
		UpdatedAt:          at,
	}
}

// --- invoices ---

type invoicePayload struct {
	ID                 string       `json:"id"`
	Customer           expandableID `json:"customer"`
	Subscription       expandableID `json:"subscription"`
	BillingReason      string       `json:"billing_reason"`
	AmountDue          int64        `json:"amount_due"`
	AmountPaid         int64        `json:"amount_paid"`
	Currency           string       `json:"currency"`
	AttemptCount       int64        `json:"attempt_count"`
	NextPaymentAttempt int64        `json:"next_payment_attempt"`
	PeriodEnd          int64        `json:"period_end"`
	Parent             *struct {
		SubscriptionDetails *struct {
			Subscription expandableID `json:"subscription"`
		} `json:"subscription_details"`
	} `json:"parent"`
	LastFinalizationError *struct {
		Message string `json:"message"`
	} `json:"last_finalization_error"`
}

const billingReasonRenewal = "subscription_cycle"

func (p *invoicePayload) subscriptionID() string {
	if p.Subscription != "" {
		return p.Subscription.String()
	}
	if p.Parent != nil && p.Parent.SubscriptionDetails != nil {
		return p.Parent.SubscriptionDetails.Subscription.String()
	}
	return ""
}

// renewsAt is when the upcoming charge will be attempted.
func (p *invoicePayload) renewsAt() *time.Time {
	if t := unixTime(p.NextPaymentAttempt); t != nil {
		return t
	}
	return unixTime(p.PeriodEnd)
}

// periodEnd identifies the billing period the invoice closes. It falls back to
// the attempt time only when the provider omitted period_end.
func (p *invoicePayload) periodEnd() *time.Time {
	if t := unixTime(p.PeriodEnd); t != nil {
		return t
	}
	return unixTime(p.NextPaymentAttempt)
}

func (p *invoicePayload) failureMessage() *string {
	if p.LastFinalizationError == nil || p.LastFinalizationError.Message == "" {
		return nil
	}
	msg := p.LastFinalizationError.Message
	return &msg
}

// --- connected accounts ---

type accountPayload struct {
	ID               string            `json:"id"`
	ChargesEnabled   *bool             `json:"charges_enabled"`
	PayoutsEnabled   *bool             `json:"payouts_enabled"`
	DetailsSubmitted *bool             `json:"details_submitted"`
	Capabilities     map[string]string `json:"capabilities"`
}

func (p *accountPayload) patch() domain.AccountPatch {
	var caps domain.Capabilities
	if len(p.Capabilities) > 0 {
		caps = domain.Capabilities(p.Capabilities)
	}
	return domain.AccountPatch{
		AccountID:        p.ID,
		ChargesEnabled:   p.ChargesEnabled,
		PayoutsEnabled:   p.PayoutsEnabled,
		DetailsSubmitted: p.DetailsSubmitted,
		Capabilities:     caps,
	}
}

type capabilityPayload struct {
	ID      string       `json:"id"`
	Account expandableID `json:"account"`
	Status  string       `json:"status"`
}

// --- payouts and transfers ---

type payoutPayload struct {
	ID             string       `json:"id"`
	Amount         int64        `json:"amount"`
	Currency       string       `json:"currency"`
	Status         string       `json:"status"`
	ArrivalDate    int64        `json:"arrival_date"`
	Destination    expandableID `json:"destination"`
	FailureCode    *string      `json:"failure_code"`
	FailureMessage *string      `json:"failure_message"`
	Created        int64        `json:"created"`
}

func (p *payoutPayload) record(accountID string, expertID *string, status domain.PayoutStatus, at time.Time) *domain.Payout {
	created := at
	if t := unixTime(p.Created); t != nil {
		created = *t
	}
	return &domain.Payout{
		ProviderID:     p.ID,
		AccountID:      accountID,
		ExpertID:       expertID,
		Status:         status,
		Amount:         p.Amount,
		Currency:       p.Currency,
		Destination:    p.Destination.String(),
		ArrivalDate:    unixTime(p.ArrivalDate),
		FailureCode:    p.FailureCode,
		FailureMessage: p.FailureMessage,
		CreatedAt:      created,
		UpdatedAt:      at,
	}
}

type transferPayload struct {
	ID             string            `json:"id"`
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Destination    expandableID      `json:"destination"`
	Reversed       bool              `json:"reversed"`
	AmountReversed int64             `json:"amount_reversed"`
	Created        int64             `json:"created"`
	Metadata       map[string]string `json:"metadata"`
	Reversals      struct {
		Data []struct {
			ID     string `json:"id"`
			Amount int64  `json:"amount"`
		} `json:"data"`
	} `json:"reversals"`
}

func (p *transferPayload) record(at time.Time) *domain.Transfer {
	created := at
	if t := unixTime(p.Created); t != nil {
		created = *t
	}
	var txID *string
	if id := p.Metadata["transaction_id"]; id != "" {
		txID = &id
	}
	reversals := make([]domain.Reversal, 0, len(p.Reversals.Data))
	for _, r := range p.Reversals.Data {
		reversals = append(reversals, domain.Reversal{ID: r.ID, Amount: r.Amount})
	}
	return &domain.Transfer{
		ProviderID:     p.ID,
		Destination:    p.Destination.String(),
		TransactionID:  txID,
		Amount:         p.Amount,
		Currency:       p.Currency,
		Reversed:       p.Reversed,
		AmountReversed: p.AmountReversed,
		Reversals:      reversals,
		CreatedAt:      created,
		UpdatedAt:      at,
	}
}
