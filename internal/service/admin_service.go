package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/core/ports"
	"payment-reconciler/pkg/apperror"
)

const (
	defaultPayoutPage = 50
	maxPayoutPage     = 200
)

// AdminServiceImpl implements ports.AdminService.
// There is a single operator account configured by username and Argon2id hash.
type AdminServiceImpl struct {
	username     string
	passwordHash string
	hashSvc      ports.HashService
	tokenSvc     ports.TokenService
	events       ports.EventRepository
	payouts      ports.PayoutRepository
	transfers    ports.TransferRepository
	txs          ports.TransactionRepository
}

// NewAdminService creates a new AdminServiceImpl.
func NewAdminService(
	username string,
	passwordHash string,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	events ports.EventRepository,
	payouts ports.PayoutRepository,
	transfers ports.TransferRepository,
	txs ports.TransactionRepository,
) *AdminServiceImpl {
	return &AdminServiceImpl{
		username:     username,
		passwordHash: passwordHash,
		hashSvc:      hashSvc,
		tokenSvc:     tokenSvc,
		events:       events,
		payouts:      payouts,
		transfers:    transfers,
		txs:          txs,
	}
}

// Login validates credentials and returns a JWT token.
func (s *AdminServiceImpl) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if s.passwordHash == "" {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	// Verify password even for an unknown username to keep timing flat
	valid, err := s.hashSvc.Verify(password, s.passwordHash)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("verify password: %w", err))
	}
	if !userOK || !valid {
		return "", time.Time{}, apperror.ErrInvalidCredentials()
	}

	token, expiry, err := s.tokenSvc.Generate(s.username)
	if err != nil {
		return "", time.Time{}, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}
	return token, expiry, nil
}

// GetEvent returns the ledger record of a provider event.
func (s *AdminServiceImpl) GetEvent(ctx context.Context, eventID string) (*domain.EventRecord, error) {
	rec, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if rec == nil {
		return nil, apperror.ErrNotFound("event")
	}
	return rec, nil
}

// ListPayouts returns the newest payouts of an expert.
func (s *AdminServiceImpl) ListPayouts(ctx context.Context, expertID string, limit int) ([]domain.Payout, error) {
	if limit <= 0 {
		limit = defaultPayoutPage
	}
	if limit > maxPayoutPage {
		limit = maxPayoutPage
	}
	payouts, err := s.payouts.ListByExpert(ctx, expertID, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if payouts == nil {
		payouts = []domain.Payout{}
	}
	return payouts, nil
}

// GetTransfer returns a transfer by provider id.
func (s *AdminServiceImpl) GetTransfer(ctx context.Context, transferID string) (*domain.Transfer, error) {
	t, err := s.transfers.GetByProviderID(ctx, transferID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if t == nil {
		return nil, apperror.ErrNotFound("transfer")
	}
	return t, nil
}

// GetTransaction returns a marketplace transaction.
func (s *AdminServiceImpl) GetTransaction(ctx context.Context, transactionID string) (*domain.MarketplaceTransaction, error) {
	tx, err := s.txs.GetByID(ctx, transactionID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if tx == nil {
		return nil, apperror.ErrNotFound("transaction")
	}
	return tx, nil
}
