package dto

import "payment-reconciler/internal/core/domain"

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=128"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// ResourcePath binds the :id segment of admin lookup routes.
// Provider and internal ids both fit safe_id.
type ResourcePath struct {
	ID string `uri:"id" binding:"required,max=255,safe_id"`
}

// PayoutQuery is the query string of the payout listing.
type PayoutQuery struct {
	ExpertID string `form:"expert_id" binding:"required,max=255,safe_id"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=1000"`
}

// PayoutListResponse is the response body of the payout listing.
type PayoutListResponse struct {
	ExpertID string          `json:"expert_id"`
	Payouts  []domain.Payout `json:"payouts"`
	Count    int             `json:"count"`
}
