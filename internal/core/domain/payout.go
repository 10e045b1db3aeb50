package domain

import "time"

// PayoutStatus mirrors the provider payout status.
type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "pending"
	PayoutInTransit PayoutStatus = "in_transit"
	PayoutPaid      PayoutStatus = "paid"
	PayoutFailed    PayoutStatus = "failed"
	PayoutCanceled  PayoutStatus = "canceled"
)

func (s PayoutStatus) rank() int {
	switch s {
	case PayoutPending:
		return 0
	case PayoutInTransit:
		return 1
	case PayoutPaid:
		return 2
	case PayoutFailed, PayoutCanceled:
		return 3
	default:
		return -1
	}
}

// ParsePayoutStatus validates a provider payout status.
func ParsePayoutStatus(s string) (PayoutStatus, bool) {
	st := PayoutStatus(s)
	return st, st.rank() >= 0
}

// IsTerminal returns true for failed and canceled payouts.
func (s PayoutStatus) IsTerminal() bool {
	return s.rank() == 3
}

// CanAdvanceTo reports whether moving from s to next goes forward.
// A paid payout may still fail; a failed one never becomes paid.
func (s PayoutStatus) CanAdvanceTo(next PayoutStatus) bool {
	return next.rank() > s.rank()
}

// Payout is the ledger row for a connected account payout.
type Payout struct {
	ProviderID     string       `json:"provider_id"`
	AccountID      string       `json:"account_id"`
	ExpertID       *string      `json:"expert_id,omitempty"`
	Status         PayoutStatus `json:"status"`
	Amount         int64        `json:"amount"`
	Currency       string       `json:"currency"`
	Destination    string       `json:"destination,omitempty"`
	ArrivalDate    *time.Time   `json:"arrival_date,omitempty"`
	FailureCode    *string      `json:"failure_code,omitempty"`
	FailureMessage *string      `json:"failure_message,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Reversal is one provider transfer reversal.
type Reversal struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
}

// Transfer is the ledger row for a platform to connected account transfer.
// Reversal fields are copied verbatim from the provider.
type Transfer struct {
	ProviderID     string     `json:"provider_id"`
	Destination    string     `json:"destination"`
	TransactionID  *string    `json:"transaction_id,omitempty"`
	Amount         int64      `json:"amount"`
	Currency       string     `json:"currency"`
	Reversed       bool       `json:"reversed"`
	AmountReversed int64      `json:"amount_reversed"`
	Reversals      []Reversal `json:"reversals"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
