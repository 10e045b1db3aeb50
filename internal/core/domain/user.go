package domain

import "strconv"

// User is the internal account a billing customer maps to.
type User struct {
	ID               string  `json:"id"`
	Email            string  `json:"email"`
	Name             string  `json:"name"`
	StripeCustomerID *string `json:"stripe_customer_id,omitempty"`
}

// BillingCustomer is the subset of a provider customer used for resolution.
type BillingCustomer struct {
	ID       string
	Email    string
	Metadata map[string]string
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
