package service

import (
	"context"
	"errors"
	"testing"

	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/core/ports/mocks"
	"payment-reconciler/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type marketplaceTestDeps struct {
	svc      *MarketplaceServiceImpl
	txs      *mocks.MockTransactionRepository
	products *mocks.MockProductRepository
	resolver *mocks.MockEntityResolver
	notifier *mocks.MockNotifier
}

func setupMarketplace(t *testing.T) *marketplaceTestDeps {
	ctrl := gomock.NewController(t)
	d := &marketplaceTestDeps{
		txs:      mocks.NewMockTransactionRepository(ctrl),
		products: mocks.NewMockProductRepository(ctrl),
		resolver: mocks.NewMockEntityResolver(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
	}
	d.svc = NewMarketplaceService(d.txs, d.products, d.resolver, d.notifier, newTestLogger())
	d.svc.now = fixedClock()
	return d
}

func orderIntent(extra map[string]any) map[string]any {
	pi := map[string]any{
		"id":       "pi_1",
		"amount":   1999,
		"currency": "usd",
		"metadata": map[string]string{
			"product_id":     "prod_1",
			"buyer_id":       "user_1",
			"expert_id":      "exp_1",
			"transaction_id": "tx_1",
		},
	}
	for k, v := range extra {
		pi[k] = v
	}
	return pi
}

func pendingTx() *domain.MarketplaceTransaction {
	return &domain.MarketplaceTransaction{
		ID:        "tx_1",
		Status:    domain.TransactionStatusPending,
		ProductID: "prod_1",
		BuyerID:   "user_1",
		SellerID:  "exp_1",
		Amount:    1999,
		Currency:  "usd",
	}
}

func completedTx() *domain.MarketplaceTransaction {
	tx := pendingTx()
	tx.Status = domain.TransactionStatusCompleted
	tx.PaymentIntentID = strPtr("pi_1")
	return tx
}

func (d *marketplaceTestDeps) expectConfirmation(ctx context.Context) {
	product := &domain.Product{ID: "prod_1", Title: "Guitar lessons", SalesCount: 1}
	buyer := &domain.User{ID: "user_1", Email: "buyer@example.com"}
	seller := &domain.Expert{ID: "exp_1", Email: "seller@example.com"}
	d.products.EXPECT().GetByID(ctx, "prod_1").Return(product, nil)
	d.resolver.EXPECT().User(ctx, "user_1").Return(buyer, nil)
	d.resolver.EXPECT().Expert(ctx, "exp_1").Return(seller, nil)
	d.notifier.EXPECT().OrderConfirmation(ctx, gomock.Any(), product, buyer, seller).
		Do(func(_ context.Context, tx *domain.MarketplaceTransaction, _ *domain.Product, _ *domain.User, _ *domain.Expert) {
			assert.Equal(t, domain.TransactionStatusCompleted, tx.Status)
		})
}

func TestMarketplace_PaymentSucceeded_CompletesPendingTransaction(t *testing.T) {
	d := setupMarketplace(t)
	ctx := context.Background()
	evt := newEvent(t, "evt_1", domain.EventPaymentIntentSucceeded, orderIntent(nil))

	gomock.InOrder(
		d.txs.EXPECT().GetByID(ctx, "tx_1").Return(pendingTx(), nil),
		d.txs.EXPECT().Complete(ctx, "tx_1", "pi_1", testNow).Return(true, int64(1), nil),
		d.txs.EXPECT().GetByID(ctx, "tx_1").Return(completedTx(), nil),
	)
	d.expectConfirmation(ctx)

	require.NoError(t, d.svc.PaymentSucceeded(ctx, evt))
}

func TestMarketplace_PaymentSucceeded_RedeliveryOnlyRetriesNotification(t *testing.T) {
	d := setupMarketplace(t)
	ctx := context.Background()
	evt := newEvent(t, "evt_1", domain.EventPaymentIntentSucceeded, orderIntent(nil))

	// completed already: the sale was counted with the transition
	d.txs.EXPECT().GetByID(ctx, "tx_1").Return(completedTx(), nil)
	d.expectConfirmation(ctx)

	require.NoError(t, d.svc.PaymentSucceeded(ctx, evt))
}

func TestMarketplace_PaymentSucceeded_LostRaceDoesNotCountSale(t *testing.T) {
	d := setupMarketplace(t)
	ctx := context.Background()
	evt := newEvent(t, "evt_1", domain.EventPaymentIntentSucceeded, orderIntent(nil))

	d.txs.EXPECT().GetByID(ctx, "tx_1").Return(pendingTx(), nil)
	d.txs.EXPECT().Complete(ctx, "tx_1", "pi_1", testNow).Return(false, int64(0), nil)
	d.txs.EXPECT().GetByID(ctx, "tx_1").Return(completedTx(), nil)
	d.expectConfirmation(ctx)

	require.NoError(t, d.svc.PaymentSucceeded(ctx, evt))
}

func TestMarketplace_PaymentSucceeded_FailedTransactionStaysFailed(t *testing.T) {
	d := setupMarketplace(t)
	ctx := context.Background()
	evt := newEvent(t, "evt_2", domain.EventPaymentIntentSucceeded, orderIntent(nil))
	failed := pendingTx()
	failed.Status = domain.TransactionStatusFailed

	d.txs.EXPECT().GetByID(ctx, "tx_1").Return(failed, nil)

	require.NoError(t, d.svc.PaymentSucceeded(ctx, evt))
}

func TestMarketplace_PaymentSucceeded_MissingMetadataSkips(t *testing.T) {
	d := setupMarketplace(t)
	ctx := context.Background()
	evt := newEvent(t, "evt_1", domain.EventPaymentIntentSucceeded, map[string]any{
		"id":       "pi_1",
		"metadata": map[string]string{"product_id": "prod_1", "buyer_id": "user_1"},
	})

	err := d.svc.PaymentSucceeded(ctx, evt)
	require.True(t, domain.IsSkip(err))
	assert.Contains(t, err.Error(), "expert_id,transaction_id")
}

func TestMarketplace_PaymentSucceeded_UnknownTransactionSkips(t *testing.T) {
	d := setupMarketplace(t)
	ctx := context.Background()
	evt := newEvent(t, "evt_1", domain.EventPaymentIntentSucceeded, orderIntent(nil))

	d.txs.EXPECT().GetByID(ctx, "tx_1").Return(nil, nil)

	assert.True(t, domain.IsSkip(d.svc.PaymentSucceeded(ctx, evt)))
}

func TestMarketplace_PaymentSucceeded_MetadataMismatchSkips(t *testing.T) {
	d := setupMarketplace(t)
	ctx := context.Background()
	evt := newEvent(t, "evt_1", domain.EventPaymentIntentSucceeded, orderIntent(nil))
	tx := pendingTx()
	tx.SellerID = "exp_other"

	d.txs.EXPECT().GetByID(ctx, "tx_1").Return(tx, nil)

	assert.True(t, domain.IsSkip(d.svc.PaymentSucceeded(ctx, evt)))
}

func TestMarketplace_PaymentSucceeded_DatabaseErrorPropagates(t *testing.T) {
	d := setupMarketplace(t)
	ctx := context.Background()
	evt := newEvent(t, "evt_1", domain.EventPaymentIntentSucceeded, orderIntent(nil))
	boom := errors.New("connection refused")

	d.txs.EXPECT().GetByID(ctx, "tx_1").Return(pendingTx(), nil)
	d.txs.EXPECT().Complete(ctx, "tx_1", "pi_1", testNow).Return(false, int64(0), boom)

	err := d.svc.PaymentSucceeded(ctx, evt)
	assert.ErrorIs(t, err, boom)
	assert.False(t, domain.IsSkip(err))
}

func TestMarketplace_PaymentSucceeded_MissingPartiesSkipsNotification(t *testing.T) {
	d := setupMarketplace(t)
	ctx := context.Background()
	evt := newEvent(t, "evt_1", domain.EventPaymentIntentSucceeded, orderIntent(nil))

	d.txs.EXPECT().GetByID(ctx, "tx_1").Return(completedTx(), nil)
	d.products.EXPECT().GetByID(ctx, "prod_1").Return(&domain.Product{ID: "prod_1"}, nil)
	d.resolver.EXPECT().User(ctx, "user_1").Return(nil, nil)
	d.resolver.EXPECT().Expert(ctx, "exp_1").Return(&domain.Expert{ID: "exp_1"}, nil)

	require.NoError(t, d.svc.PaymentSucceeded(ctx, evt))
}

func TestMarketplace_PaymentSucceeded_MalformedObject(t *testing.T) {
	d := setupMarketplace(t)
	evt := &domain.Event{ID: "evt_1", Type: domain.EventPaymentIntentSucceeded, Object: []byte(`[1,2]`)}

	err := d.svc.PaymentSucceeded(context.Background(), evt)
	assert.True(t, apperror.HasCode(err, "WHK_002"))
}

func TestMarketplace_PaymentFailed_RecordsReason(t *testing.T) {
	d := setupMarketplace(t)
	ctx := context.Background()
	evt := newEvent(t, "evt_3", domain.EventPaymentIntentFailed, orderIntent(map[string]any{
		"last_payment_error": map[string]string{"code": "card_declined", "decline_code": "insufficient_funds"},
	}))

	d.txs.EXPECT().GetByID(ctx, "tx_1").Return(pendingTx(), nil)
	d.txs.EXPECT().Fail(ctx, "tx_1", "pi_1", "insufficient_funds", testNow).Return(true, nil)

	require.NoError(t, d.svc.PaymentFailed(ctx, evt))
}

func TestMarketplace_PaymentFailed_CompletedTransactionUntouched(t *testing.T) {
	d := setupMarketplace(t)
	ctx := context.Background()
	evt := newEvent(t, "evt_3", domain.EventPaymentIntentFailed, orderIntent(nil))

	d.txs.EXPECT().GetByID(ctx, "tx_1").Return(completedTx(), nil)

	require.NoError(t, d.svc.PaymentFailed(ctx, evt))
}

func TestPaymentIntentPayload_FailureReason(t *testing.T) {
	p := paymentIntentPayload{}
	assert.Equal(t, "payment_failed", p.failureReason())

	p.LastPaymentError = &struct {
		Code        string `json:"code"`
		DeclineCode string `json:"decline_code"`
		Message     string `json:"message"`
	}{Code: "card_declined", Message: "Your card was declined."}
	assert.Equal(t, "Your card was declined.", p.failureReason())
}
