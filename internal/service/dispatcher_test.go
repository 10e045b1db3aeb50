package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/core/ports/mocks"
	"payment-reconciler/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dispatcherTestDeps struct {
	d        *Dispatcher
	ledger   *mocks.MockEventLedger
	subs     *mocks.MockSubscriptionLifecycle
	market   *mocks.MockMarketplaceLifecycle
	accounts *mocks.MockAccountTracker
	payouts  *mocks.MockPayoutLedger
}

func setupDispatcher(t *testing.T, timeout time.Duration) *dispatcherTestDeps {
	ctrl := gomock.NewController(t)
	deps := &dispatcherTestDeps{
		ledger:   mocks.NewMockEventLedger(ctrl),
		subs:     mocks.NewMockSubscriptionLifecycle(ctrl),
		market:   mocks.NewMockMarketplaceLifecycle(ctrl),
		accounts: mocks.NewMockAccountTracker(ctrl),
		payouts:  mocks.NewMockPayoutLedger(ctrl),
	}
	deps.d = NewDispatcher(deps.ledger, deps.subs, deps.market, deps.accounts, deps.payouts, timeout, newTestLogger())
	return deps
}

func TestDispatcher_Processed(t *testing.T) {
	deps := setupDispatcher(t, time.Second)
	ctx := context.Background()
	evt := &domain.Event{ID: "evt_1", Type: domain.EventPaymentIntentSucceeded}

	gomock.InOrder(
		deps.ledger.EXPECT().IsProcessed(ctx, "evt_1").Return(false, nil),
		deps.ledger.EXPECT().Claim(ctx, evt).Return(domain.ClaimAcquired, nil),
		deps.market.EXPECT().PaymentSucceeded(gomock.Any(), evt).Return(nil),
		deps.ledger.EXPECT().MarkProcessed(ctx, evt, domain.OutcomeProcessed).Return(nil),
	)

	outcome, err := deps.d.Dispatch(ctx, evt)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeProcessed, outcome)
}

func TestDispatcher_DuplicateShortCircuits(t *testing.T) {
	deps := setupDispatcher(t, time.Second)
	ctx := context.Background()
	evt := &domain.Event{ID: "evt_1", Type: domain.EventPayoutCreated}

	deps.ledger.EXPECT().IsProcessed(ctx, "evt_1").Return(true, nil)

	outcome, err := deps.d.Dispatch(ctx, evt)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, outcome)
}

func TestDispatcher_ConcurrentDuplicate(t *testing.T) {
	deps := setupDispatcher(t, time.Second)
	ctx := context.Background()
	evt := &domain.Event{ID: "evt_1", Type: domain.EventPayoutCreated}

	deps.ledger.EXPECT().IsProcessed(ctx, "evt_1").Return(false, nil)
	deps.ledger.EXPECT().Claim(ctx, evt).Return(domain.ClaimAlreadyProcessed, nil)

	outcome, err := deps.d.Dispatch(ctx, evt)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDuplicate, outcome)
}

func TestDispatcher_InFlight(t *testing.T) {
	deps := setupDispatcher(t, time.Second)
	ctx := context.Background()
	evt := &domain.Event{ID: "evt_1", Type: domain.EventPayoutCreated}

	deps.ledger.EXPECT().IsProcessed(ctx, "evt_1").Return(false, nil)
	deps.ledger.EXPECT().Claim(ctx, evt).Return(domain.ClaimHeld, nil)

	outcome, err := deps.d.Dispatch(ctx, evt)
	assert.Equal(t, domain.OutcomeInFlight, outcome)
	assert.True(t, apperror.HasCode(err, "WHK_003"))
}

func TestDispatcher_UnknownTypeIsAcknowledged(t *testing.T) {
	deps := setupDispatcher(t, time.Second)
	ctx := context.Background()
	evt := &domain.Event{ID: "evt_1", Type: domain.EventType("charge.dispute.created")}

	deps.ledger.EXPECT().IsProcessed(ctx, "evt_1").Return(false, nil)
	deps.ledger.EXPECT().Claim(ctx, evt).Return(domain.ClaimAcquired, nil)
	deps.ledger.EXPECT().MarkProcessed(ctx, evt, domain.OutcomeIgnored).Return(nil)

	outcome, err := deps.d.Dispatch(ctx, evt)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeIgnored, outcome)
}

func TestDispatcher_SkipIsCommitted(t *testing.T) {
	deps := setupDispatcher(t, time.Second)
	ctx := context.Background()
	evt := &domain.Event{ID: "evt_1", Type: domain.EventAccountDeauthorized}

	deps.ledger.EXPECT().IsProcessed(ctx, "evt_1").Return(false, nil)
	deps.ledger.EXPECT().Claim(ctx, evt).Return(domain.ClaimAcquired, nil)
	deps.accounts.EXPECT().AccountDeauthorized(gomock.Any(), evt).Return(domain.Skip("no expert for account acct_1"))
	deps.ledger.EXPECT().MarkProcessed(ctx, evt, domain.OutcomeSkipped).Return(nil)

	outcome, err := deps.d.Dispatch(ctx, evt)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeSkipped, outcome)
}

func TestDispatcher_HandlerFailureReleasesClaim(t *testing.T) {
	deps := setupDispatcher(t, time.Second)
	ctx := context.Background()
	evt := &domain.Event{ID: "evt_1", Type: domain.EventSubscriptionUpdated}
	boom := errors.New("connection reset")

	deps.ledger.EXPECT().IsProcessed(ctx, "evt_1").Return(false, nil)
	deps.ledger.EXPECT().Claim(ctx, evt).Return(domain.ClaimAcquired, nil)
	deps.subs.EXPECT().SubscriptionChanged(gomock.Any(), evt).Return(boom)
	deps.ledger.EXPECT().Release(gomock.Any(), evt, boom).Return(nil)

	outcome, err := deps.d.Dispatch(ctx, evt)
	assert.Equal(t, domain.OutcomeFailed, outcome)
	assert.True(t, apperror.HasCode(err, "WHK_004"))
	assert.ErrorIs(t, err, boom)
}

func TestDispatcher_MalformedObjectIsRejected(t *testing.T) {
	deps := setupDispatcher(t, time.Second)
	ctx := context.Background()
	evt := &domain.Event{ID: "evt_1", Type: domain.EventTransferCreated}

	deps.ledger.EXPECT().IsProcessed(ctx, "evt_1").Return(false, nil)
	deps.ledger.EXPECT().Claim(ctx, evt).Return(domain.ClaimAcquired, nil)
	deps.payouts.EXPECT().TransferCreated(gomock.Any(), evt).Return(apperror.ErrMalformedPayload(errors.New("bad json")))
	deps.ledger.EXPECT().Release(gomock.Any(), evt, gomock.Any()).Return(nil)

	outcome, err := deps.d.Dispatch(ctx, evt)
	assert.Equal(t, domain.OutcomeRejected, outcome)
	assert.True(t, apperror.HasCode(err, "WHK_002"))
}

func TestDispatcher_Timeout(t *testing.T) {
	deps := setupDispatcher(t, 10*time.Millisecond)
	ctx := context.Background()
	evt := &domain.Event{ID: "evt_1", Type: domain.EventPayoutPaid}

	deps.ledger.EXPECT().IsProcessed(ctx, "evt_1").Return(false, nil)
	deps.ledger.EXPECT().Claim(ctx, evt).Return(domain.ClaimAcquired, nil)
	deps.payouts.EXPECT().PayoutPaid(gomock.Any(), evt).DoAndReturn(func(ctx context.Context, _ *domain.Event) error {
		<-ctx.Done()
		return ctx.Err()
	})
	deps.ledger.EXPECT().Release(gomock.Any(), evt, gomock.Any()).Return(nil)

	outcome, err := deps.d.Dispatch(ctx, evt)
	assert.Equal(t, domain.OutcomeFailed, outcome)
	assert.True(t, apperror.HasCode(err, "WHK_005"))
}

func TestDispatcher_MarkProcessedFailure(t *testing.T) {
	deps := setupDispatcher(t, time.Second)
	ctx := context.Background()
	evt := &domain.Event{ID: "evt_1", Type: domain.EventCapabilityUpdated}

	deps.ledger.EXPECT().IsProcessed(ctx, "evt_1").Return(false, nil)
	deps.ledger.EXPECT().Claim(ctx, evt).Return(domain.ClaimAcquired, nil)
	deps.accounts.EXPECT().CapabilityUpdated(gomock.Any(), evt).Return(nil)
	deps.ledger.EXPECT().MarkProcessed(ctx, evt, domain.OutcomeProcessed).Return(errors.New("db gone"))
	deps.ledger.EXPECT().Release(gomock.Any(), evt, gomock.Any()).Return(nil)

	_, err := deps.d.Dispatch(ctx, evt)
	assert.True(t, apperror.HasCode(err, "WHK_004"))
}

func TestDispatcher_RoutesEveryKnownType(t *testing.T) {
	deps := setupDispatcher(t, time.Second)
	for _, typ := range []domain.EventType{
		domain.EventPaymentIntentSucceeded, domain.EventPaymentIntentFailed,
		domain.EventSubscriptionCreated, domain.EventSubscriptionUpdated, domain.EventSubscriptionDeleted,
		domain.EventSubscriptionTrialWillEnd, domain.EventInvoicePaymentSucceeded, domain.EventInvoicePaymentFailed,
		domain.EventInvoiceUpcoming, domain.EventAccountUpdated, domain.EventAccountUpdatedV2,
		domain.EventAccountAuthorized, domain.EventAccountDeauthorized, domain.EventCapabilityUpdated,
		domain.EventPayoutCreated, domain.EventPayoutPaid, domain.EventPayoutFailed,
		domain.EventTransferCreated, domain.EventTransferUpdated,
	} {
		assert.True(t, typ.Known(), typ)
		assert.NotNil(t, deps.d.route(typ), typ)
	}
	assert.Nil(t, deps.d.route("customer.created"))
}
