package service

import (
	"context"
	"fmt"
	"time"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/core/ports"
	"payment-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
)

// AccountServiceImpl implements ports.AccountTracker.
type AccountServiceImpl struct {
	experts  ports.ExpertRepository
	resolver ports.EntityResolver
	now      func() time.Time
	log      zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(experts ports.ExpertRepository, resolver ports.EntityResolver, log zerolog.Logger) *AccountServiceImpl {
	return &AccountServiceImpl{
		experts:  experts,
		resolver: resolver,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log,
	}
}

// AccountUpdated merges the account flags and capabilities present in the
// payload into the expert's mirror. Absent fields are left untouched.
func (s *AccountServiceImpl) AccountUpdated(ctx context.Context, evt *domain.Event) error {
	var p accountPayload
	if err := decodeObject(evt, &p); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = evt.Account
	}
	if p.ID == "" {
		return apperror.ErrMalformedPayload(fmt.Errorf("account id missing"))
	}

	expert, err := s.resolver.ExpertForAccount(ctx, p.ID)
	if err != nil {
		return err
	}
	if expert == nil {
		return domain.Skip("no expert for account %s", p.ID)
	}

	patch := p.patch()
	if patch.IsEmpty() {
		s.log.Debug().Str("account_id", p.ID).Msg("account update carries no tracked fields")
		return nil
	}
	if err := s.experts.PatchAccount(ctx, expert.ID, patch, s.now()); err != nil {
		return fmt.Errorf("patch account %s: %w", p.ID, err)
	}

	merged := patch.Apply(expert.Account)
	s.log.Info().
		Str("event_id", evt.ID).
		Str("account_id", p.ID).
		Str("expert_id", expert.ID).
		Bool("charges_enabled", merged.ChargesEnabled).
		Bool("payouts_enabled", merged.PayoutsEnabled).
		Bool("details_submitted", merged.DetailsSubmitted).
		Msg("connected account updated")
	return nil
}

// AccountAuthorized is acknowledged only. A deauthorized expert comes back
// through onboarding, never through event replay.
func (s *AccountServiceImpl) AccountAuthorized(ctx context.Context, evt *domain.Event) error {
	s.log.Info().Str("event_id", evt.ID).Str("account_id", evt.Account).Msg("application authorized on connected account")
	return nil
}

// AccountDeauthorized deactivates the expert and detaches the account.
func (s *AccountServiceImpl) AccountDeauthorized(ctx context.Context, evt *domain.Event) error {
	if evt.Account == "" {
		return domain.Skip("deauthorization without connected account")
	}

	expert, err := s.resolver.ExpertForAccount(ctx, evt.Account)
	if err != nil {
		return err
	}
	if expert == nil {
		return domain.Skip("no expert for account %s", evt.Account)
	}

	if err := s.experts.Deauthorize(ctx, expert.ID, domain.DeactivationProviderDeauthorized, s.now()); err != nil {
		return fmt.Errorf("deauthorize expert %s: %w", expert.ID, err)
	}
	s.log.Warn().Str("event_id", evt.ID).Str("account_id", evt.Account).Str("expert_id", expert.ID).Msg("expert deauthorized")
	return nil
}

// CapabilityUpdated patches the single named capability.
func (s *AccountServiceImpl) CapabilityUpdated(ctx context.Context, evt *domain.Event) error {
	var p capabilityPayload
	if err := decodeObject(evt, &p); err != nil {
		return err
	}
	if p.ID == "" || p.Status == "" {
		return apperror.ErrMalformedPayload(fmt.Errorf("capability id or status missing"))
	}

	accountID := p.Account.String()
	if accountID == "" {
		accountID = evt.Account
	}
	expert, err := s.resolver.ExpertForAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if expert == nil {
		return domain.Skip("no expert for account %s", accountID)
	}

	if err := s.experts.SetCapability(ctx, expert.ID, p.ID, p.Status, s.now()); err != nil {
		return fmt.Errorf("set capability %s on %s: %w", p.ID, accountID, err)
	}
	s.log.Info().Str("account_id", accountID).Str("capability", p.ID).Str("status", p.Status).Msg("capability updated")
	return nil
}
