package domain

import "time"

// ExpertStatus is the marketplace seller state.
type ExpertStatus string

const (
	ExpertStatusPending  ExpertStatus = "pending"
	ExpertStatusActive   ExpertStatus = "active"
	ExpertStatusInactive ExpertStatus = "inactive"
)

// DeactivationProviderDeauthorized is recorded when the seller revokes access.
const DeactivationProviderDeauthorized = "stripe_account_deauthorized"

// Capabilities maps capability name (card_payments, transfers, ...) to its
// provider status (active, inactive, pending).
type Capabilities map[string]string

// Merge overwrites c with every key in patch and returns c.
// Keys absent from patch are kept.
func (c Capabilities) Merge(patch Capabilities) Capabilities {
	if c == nil {
		c = make(Capabilities, len(patch))
	}
	for k, v := range patch {
		c[k] = v
	}
	return c
}

// Expert is the marketplace seller mirrored against a connected account.
type Expert struct {
	ID                 string       `json:"id"`
	UserID             string       `json:"user_id"`
	Email              string       `json:"email"`
	Name               string       `json:"name"`
	Status             ExpertStatus `json:"status"`
	StripeAccountID    *string      `json:"stripe_account_id,omitempty"`
	Account            AccountState `json:"account"`
	DeactivationReason *string      `json:"deactivation_reason,omitempty"`
	DeactivatedAt      *time.Time   `json:"deactivated_at,omitempty"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// AccountState is the locally mirrored connected account status.
type AccountState struct {
	ChargesEnabled   bool         `json:"charges_enabled"`
	PayoutsEnabled   bool         `json:"payouts_enabled"`
	DetailsSubmitted bool         `json:"details_submitted"`
	Capabilities     Capabilities `json:"capabilities"`
}

// AccountPatch is a sparse update from the provider. Nil fields are left
// untouched; Capabilities is merged key by key.
type AccountPatch struct {
	AccountID        string
	ChargesEnabled   *bool
	PayoutsEnabled   *bool
	DetailsSubmitted *bool
	Capabilities     Capabilities
}

// Apply merges the patch into s.
func (p AccountPatch) Apply(s AccountState) AccountState {
	if p.ChargesEnabled != nil {
		s.ChargesEnabled = *p.ChargesEnabled
	}
	if p.PayoutsEnabled != nil {
		s.PayoutsEnabled = *p.PayoutsEnabled
	}
	if p.DetailsSubmitted != nil {
		s.DetailsSubmitted = *p.DetailsSubmitted
	}
	if len(p.Capabilities) > 0 {
		s.Capabilities = s.Capabilities.Merge(p.Capabilities)
	}
	return s
}

// IsEmpty returns true when the patch carries no field.
func (p AccountPatch) IsEmpty() bool {
	return p.ChargesEnabled == nil && p.PayoutsEnabled == nil &&
		p.DetailsSubmitted == nil && len(p.Capabilities) == 0
}
