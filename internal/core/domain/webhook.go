package domain

import (
	"encoding/json"
	"time"
)

// EventType is the closed set of provider event types this service reacts to.
type EventType string

const (
	EventPaymentIntentSucceeded EventType = "payment_intent.succeeded"
	EventPaymentIntentFailed    EventType = "payment_intent.payment_failed"

	EventSubscriptionCreated      EventType = "customer.subscription.created"
	EventSubscriptionUpdated      EventType = "customer.subscription.updated"
	EventSubscriptionDeleted      EventType = "customer.subscription.deleted"
	EventSubscriptionTrialWillEnd EventType = "customer.subscription.trial_will_end"

	EventInvoicePaymentSucceeded EventType = "invoice.payment_succeeded"
	EventInvoicePaymentFailed    EventType = "invoice.payment_failed"
	EventInvoiceUpcoming         EventType = "invoice.upcoming"

	EventAccountUpdated        EventType = "account.updated"
	EventAccountUpdatedV2      EventType = "v2.core.account.updated"
	EventAccountAuthorized     EventType = "account.application.authorized"
	EventAccountDeauthorized   EventType = "account.application.deauthorized"
	EventCapabilityUpdated     EventType = "capability.updated"
	EventPayoutCreated         EventType = "payout.created"
	EventPayoutPaid            EventType = "payout.paid"
	EventPayoutFailed          EventType = "payout.failed"
	EventTransferCreated       EventType = "transfer.created"
	EventTransferUpdated       EventType = "transfer.updated"
)

var knownEventTypes = map[EventType]struct{}{
	EventPaymentIntentSucceeded:   {},
	EventPaymentIntentFailed:      {},
	EventSubscriptionCreated:      {},
	EventSubscriptionUpdated:      {},
	EventSubscriptionDeleted:      {},
	EventSubscriptionTrialWillEnd: {},
	EventInvoicePaymentSucceeded:  {},
	EventInvoicePaymentFailed:     {},
	EventInvoiceUpcoming:          {},
	EventAccountUpdated:           {},
	EventAccountUpdatedV2:         {},
	EventAccountAuthorized:        {},
	EventAccountDeauthorized:      {},
	EventCapabilityUpdated:        {},
	EventPayoutCreated:            {},
	EventPayoutPaid:               {},
	EventPayoutFailed:             {},
	EventTransferCreated:          {},
	EventTransferUpdated:          {},
}

// Known reports whether t belongs to the handled set.
func (t EventType) Known() bool {
	_, ok := knownEventTypes[t]
	return ok
}

// Event is a verified provider event. Object holds the raw data.object JSON.
type Event struct {
	ID       string          `json:"id"`
	Type     EventType       `json:"type"`
	Livemode bool            `json:"livemode"`
	Account  string          `json:"account,omitempty"` // connected account the event originated from
	Created  time.Time       `json:"created"`
	Object   json.RawMessage `json:"-"`
}

// EventOutcome is what happened to a delivery.
type EventOutcome string

const (
	OutcomeProcessed EventOutcome = "processed"
	OutcomeDuplicate EventOutcome = "duplicate"
	OutcomeIgnored   EventOutcome = "ignored" // unrecognized event type
	OutcomeSkipped   EventOutcome = "skipped" // missing mapping or integrity problem
	OutcomeInFlight  EventOutcome = "in_flight"
	OutcomeRejected  EventOutcome = "rejected"
	OutcomeFailed    EventOutcome = "failed"
)

// EventRecord is the append-only ledger row for a provider event.
// ProcessedAt is set only once every effect of the event has been applied.
type EventRecord struct {
	ProviderID   string        `json:"provider_id"`
	Type         EventType     `json:"type"`
	Livemode     bool          `json:"livemode"`
	Account      string        `json:"account,omitempty"`
	ReceivedAt   time.Time     `json:"received_at"`
	ClaimedUntil *time.Time    `json:"claimed_until,omitempty"`
	ProcessedAt  *time.Time    `json:"processed_at,omitempty"`
	Attempts     int           `json:"attempts"`
	Outcome      *EventOutcome `json:"outcome,omitempty"`
	LastError    *string       `json:"last_error,omitempty"`
}

// IsProcessed returns true once the event has been fully applied.
func (r *EventRecord) IsProcessed() bool {
	return r.ProcessedAt != nil
}
