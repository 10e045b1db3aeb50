package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/core/ports/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type gateTestDeps struct {
	gate   *NotificationGateImpl
	ledger *mocks.MockNotificationRepository
	lock   *mocks.MockSendLock
	cipher *mocks.MockRecipientCipher
}

func setupGate(t *testing.T) *gateTestDeps {
	ctrl := gomock.NewController(t)
	d := &gateTestDeps{
		ledger: mocks.NewMockNotificationRepository(ctrl),
		lock:   mocks.NewMockSendLock(ctrl),
		cipher: mocks.NewMockRecipientCipher(ctrl),
	}
	d.gate = NewNotificationGate(d.ledger, d.lock, d.cipher, 30*time.Second, newTestLogger())
	d.gate.now = fixedClock()
	return d
}

// countingSend records how many times the delivery ran.
func countingSend(n *int, err error) func(context.Context) error {
	return func(context.Context) error {
		*n++
		return err
	}
}

func TestGate_SendsAndRecords(t *testing.T) {
	d := setupGate(t)
	ctx := context.Background()
	calls := 0

	gomock.InOrder(
		d.ledger.EXPECT().Exists(ctx, "order_tx_1").Return(false, nil),
		d.lock.EXPECT().Acquire(ctx, "order_tx_1", 30*time.Second).Return(true, nil),
		d.ledger.EXPECT().Exists(ctx, "order_tx_1").Return(false, nil),
		d.cipher.EXPECT().Seal("buyer@example.com", "order_tx_1").Return("v1.buyer", nil),
		d.ledger.EXPECT().Record(ctx, &domain.NotificationEntry{
			SemanticKey: "order_tx_1",
			Kind:        domain.NotifyOrderConfirmation,
			Recipient:   "v1.buyer",
			SentAt:      testNow,
		}).Return(true, nil),
	)
	d.lock.EXPECT().Release(gomock.Any(), "order_tx_1").Return(nil)

	sent, err := d.gate.TrySend(ctx, "order_tx_1", domain.NotifyOrderConfirmation, "buyer@example.com", countingSend(&calls, nil))
	require.NoError(t, err)
	assert.True(t, sent)
	assert.Equal(t, 1, calls)
}

func TestGate_RecordedKeyNeverSendsAgain(t *testing.T) {
	d := setupGate(t)
	ctx := context.Background()
	calls := 0

	d.ledger.EXPECT().Exists(ctx, "order_tx_1").Return(true, nil)

	sent, err := d.gate.TrySend(ctx, "order_tx_1", domain.NotifyOrderConfirmation, "buyer@example.com", countingSend(&calls, nil))
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Zero(t, calls)
}

func TestGate_FailedSendIsNotRecorded(t *testing.T) {
	d := setupGate(t)
	ctx := context.Background()
	calls := 0
	smtp := errors.New("smtp 503")

	d.ledger.EXPECT().Exists(ctx, "payout_paid_po_1").Return(false, nil).Times(2)
	d.lock.EXPECT().Acquire(ctx, "payout_paid_po_1", 30*time.Second).Return(true, nil)
	d.lock.EXPECT().Release(gomock.Any(), "payout_paid_po_1").Return(nil)
	d.cipher.EXPECT().Seal(gomock.Any(), gomock.Any()).Return("v1.x", nil)
	// no Record call

	sent, err := d.gate.TrySend(ctx, "payout_paid_po_1", domain.NotifyPayoutPaid, "expert@example.com", countingSend(&calls, smtp))
	assert.False(t, sent)
	assert.ErrorIs(t, err, ErrNotificationFailed)
	assert.ErrorIs(t, err, smtp)
	assert.Equal(t, 1, calls)
}

func TestGate_LockContention(t *testing.T) {
	d := setupGate(t)
	ctx := context.Background()
	calls := 0

	d.ledger.EXPECT().Exists(ctx, "order_tx_1").Return(false, nil)
	d.lock.EXPECT().Acquire(ctx, "order_tx_1", 30*time.Second).Return(false, nil)

	sent, err := d.gate.TrySend(ctx, "order_tx_1", domain.NotifyOrderConfirmation, "buyer@example.com", countingSend(&calls, nil))
	assert.False(t, sent)
	assert.ErrorIs(t, err, ErrNotificationInFlight)
	assert.Zero(t, calls)
}

func TestGate_RecordedWhileWaitingForLock(t *testing.T) {
	d := setupGate(t)
	ctx := context.Background()
	calls := 0

	gomock.InOrder(
		d.ledger.EXPECT().Exists(ctx, "order_tx_1").Return(false, nil),
		d.lock.EXPECT().Acquire(ctx, "order_tx_1", 30*time.Second).Return(true, nil),
		d.ledger.EXPECT().Exists(ctx, "order_tx_1").Return(true, nil),
		d.lock.EXPECT().Release(gomock.Any(), "order_tx_1").Return(nil),
	)

	sent, err := d.gate.TrySend(ctx, "order_tx_1", domain.NotifyOrderConfirmation, "buyer@example.com", countingSend(&calls, nil))
	require.NoError(t, err)
	assert.False(t, sent)
	assert.Zero(t, calls)
}

func TestGate_RecordFailureAfterSend(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockNotificationRepository(ctrl)
	cipher := mocks.NewMockRecipientCipher(ctrl)
	gate := NewNotificationGate(ledger, nil, cipher, time.Second, newTestLogger())
	ctx := context.Background()
	calls := 0

	ledger.EXPECT().Exists(ctx, "k").Return(false, nil)
	cipher.EXPECT().Seal("r@example.com", "k").Return("v1.x", nil)
	ledger.EXPECT().Record(ctx, gomock.Any()).Return(false, errors.New("db down"))

	sent, err := gate.TrySend(ctx, "k", domain.NotifyPayoutPaid, "r@example.com", countingSend(&calls, nil))
	assert.True(t, sent)
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestGate_LedgerErrorBlocksSend(t *testing.T) {
	d := setupGate(t)
	ctx := context.Background()
	calls := 0

	d.ledger.EXPECT().Exists(ctx, "k").Return(false, errors.New("db down"))

	_, err := d.gate.TrySend(ctx, "k", domain.NotifyPayoutPaid, "r@example.com", countingSend(&calls, nil))
	assert.Error(t, err)
	assert.Zero(t, calls)
}
