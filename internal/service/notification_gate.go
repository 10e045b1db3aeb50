package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/core/ports"
	"payment-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
)

var (
	// ErrNotificationFailed wraps every failure of the send itself.
	ErrNotificationFailed = errors.New("notification send failed")
	// ErrNotificationInFlight means another delivery holds the send lock for the key.
	ErrNotificationInFlight = errors.New("notification send in flight")
)

// NotificationGateImpl implements ports.NotificationGate.
// The ledger row is written only after send returns nil.
type NotificationGateImpl struct {
	ledger  ports.NotificationRepository
	lock    ports.SendLock
	cipher  ports.RecipientCipher
	lockTTL time.Duration
	now     func() time.Time
	log     zerolog.Logger
}

// NewNotificationGate creates a new NotificationGateImpl. lock may be nil.
func NewNotificationGate(
	ledger ports.NotificationRepository,
	lock ports.SendLock,
	cipher ports.RecipientCipher,
	lockTTL time.Duration,
	log zerolog.Logger,
) *NotificationGateImpl {
	return &NotificationGateImpl{
		ledger:  ledger,
		lock:    lock,
		cipher:  cipher,
		lockTTL: lockTTL,
		now:     func() time.Time { return time.Now().UTC() },
		log:     log,
	}
}

// TrySend runs send unless semanticKey is already recorded.
func (g *NotificationGateImpl) TrySend(ctx context.Context, semanticKey string, kind domain.NotificationKind, recipient string, send ports.SendFunc) (bool, error) {
	exists, err := g.ledger.Exists(ctx, semanticKey)
	if err != nil {
		return false, fmt.Errorf("check notification %s: %w", semanticKey, err)
	}
	if exists {
		return false, nil
	}

	if g.lock != nil {
		acquired, err := g.lock.Acquire(ctx, semanticKey, g.lockTTL)
		if err != nil {
			return false, fmt.Errorf("lock notification %s: %w", semanticKey, err)
		}
		if !acquired {
			return false, fmt.Errorf("%w: %s", ErrNotificationInFlight, semanticKey)
		}
		defer func() {
			if err := g.lock.Release(context.WithoutCancel(ctx), semanticKey); err != nil {
				g.log.Warn().Err(err).Str("semantic_key", semanticKey).Msg("failed to release send lock")
			}
		}()

		// the previous holder may have recorded the key before releasing
		if exists, err = g.ledger.Exists(ctx, semanticKey); err != nil {
			return false, fmt.Errorf("check notification %s: %w", semanticKey, err)
		}
		if exists {
			return false, nil
		}
	}

	sealed, err := g.cipher.Seal(recipient, semanticKey)
	if err != nil {
		return false, apperror.ErrEncryptionFailure(fmt.Errorf("seal recipient: %w", err))
	}

	if err := send(ctx); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrNotificationFailed, semanticKey, err)
	}

	recorded, err := g.ledger.Record(ctx, &domain.NotificationEntry{
		SemanticKey: semanticKey,
		Kind:        kind,
		Recipient:   sealed,
		SentAt:      g.now(),
	})
	if err != nil {
		// sent but not recorded: a redelivery may send again
		return true, fmt.Errorf("record notification %s: %w", semanticKey, err)
	}
	if !recorded {
		g.log.Warn().Str("semantic_key", semanticKey).Msg("notification recorded concurrently")
	}
	return true, nil
}
