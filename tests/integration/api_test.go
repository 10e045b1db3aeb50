package integration

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	httpHandler "payment-reconciler/internal/adapter/http/handler"
	redisStorage "payment-reconciler/internal/adapter/storage/redis"
	"payment-reconciler/internal/core/domain"
	"payment-reconciler/internal/service"
	"payment-reconciler/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	webhookSecret = "whsec_integration"
	adminPassword = "correct-horse-battery"
	testAESKeyHex = "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
)

const (
	tplOrder      int64 = 11
	tplWelcome    int64 = 12
	tplCancelled  int64 = 13
	tplTrial      int64 = 14
	tplPayFailed  int64 = 15
	tplRenewal    int64 = 16
	tplPayoutPaid int64 = 17
	tplPayoutFail int64 = 18
)

var ctx = context.Background()

// testApp wires the real HTTP layer, middleware, services and Redis stores
// (miniredis) over in-memory repositories.
type testApp struct {
	server        *httptest.Server
	redis         *miniredis.Miniredis
	events        *inMemoryEventRepo
	users         *inMemoryUserRepo
	experts       *inMemoryExpertRepo
	subs          *inMemorySubscriptionRepo
	payments      *inMemoryPaymentHistoryRepo
	txs           *inMemoryTransactionRepo
	products      *inMemoryProductRepo
	payouts       *inMemoryPayoutRepo
	transfers     *inMemoryTransferRepo
	notifications *inMemoryNotificationRepo
	audit         *inMemoryAuditRepo
	sender        *recordingSender
}

func strPtr(s string) *string { return &s }

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	app := &testApp{
		redis:  mr,
		events: newInMemoryEventRepo(),
		users: newInMemoryUserRepo(
			domain.User{ID: "b1", Email: "buyer@example.com", Name: "Bea", StripeCustomerID: strPtr("cus_b1")},
			domain.User{ID: "u2", Email: "sub@example.com", Name: "Sam", StripeCustomerID: strPtr("cus_u2")},
		),
		experts: newInMemoryExpertRepo(
			domain.Expert{
				ID:              "e1",
				UserID:          "ue1",
				Email:           "expert@example.com",
				Name:            "Eve",
				Status:          domain.ExpertStatusActive,
				StripeAccountID: strPtr("acct_e1"),
				Account: domain.AccountState{
					ChargesEnabled: true,
					Capabilities:   domain.Capabilities{"card_payments": "active", "transfers": "pending"},
				},
			},
		),
		subs:     newInMemorySubscriptionRepo(),
		payments: newInMemoryPaymentHistoryRepo(),
		txs: newInMemoryTransactionRepo(
			domain.MarketplaceTransaction{
				ID: "t1", Status: domain.TransactionStatusPending, ProductID: "p1",
				BuyerID: "b1", SellerID: "e1", Amount: 1999, Currency: "usd",
			},
		),
		products:      newInMemoryProductRepo(domain.Product{ID: "p1", Title: "Portfolio Review", SalesCount: 4}),
		payouts:       newInMemoryPayoutRepo(),
		transfers:     newInMemoryTransferRepo(),
		notifications: newInMemoryNotificationRepo(),
		audit:         &inMemoryAuditRepo{},
		sender:        &recordingSender{},
	}
	app.txs.products = app.products

	log := logger.New("error", false)

	recipients, err := service.NewAESRecipientCipher(testAESKeyHex)
	require.NoError(t, err)
	hashSvc := service.NewArgon2HashService(service.DefaultArgon2Params)
	tokenSvc := service.NewJWTTokenService("integration-jwt-secret-32-bytes!!", time.Hour, "payment-reconciler")
	passwordHash, err := hashSvc.Hash(adminPassword)
	require.NoError(t, err)

	templates := map[domain.NotificationKind]int64{
		domain.NotifyOrderConfirmation:     tplOrder,
		domain.NotifySubscriptionWelcome:   tplWelcome,
		domain.NotifySubscriptionCancelled: tplCancelled,
		domain.NotifyTrialEnding:           tplTrial,
		domain.NotifyPaymentFailed:         tplPayFailed,
		domain.NotifyRenewalReminder:       tplRenewal,
		domain.NotifyPayoutPaid:            tplPayoutPaid,
		domain.NotifyPayoutFailed:          tplPayoutFail,
	}

	gate := service.NewNotificationGate(app.notifications, redisStorage.NewSendLock(rdb), recipients, time.Minute, log)
	notifier := service.NewNotifier(gate, app.sender, templates, log)
	resolver := service.NewEntityResolver(app.users, app.experts, nil, log)
	ledger := service.NewEventLedger(app.events, redisStorage.NewProcessedCache(rdb), 2*time.Minute, 72*time.Hour, log)

	dispatcher := service.NewDispatcher(
		ledger,
		service.NewSubscriptionService(app.subs, app.payments, resolver, nil, notifier, 72*time.Hour, 7*24*time.Hour, log),
		service.NewMarketplaceService(app.txs, app.products, resolver, notifier, log),
		service.NewAccountService(app.experts, resolver, log),
		service.NewPayoutService(app.payouts, app.transfers, resolver, notifier, log),
		10*time.Second,
		log,
	)
	adminSvc := service.NewAdminService("ops", passwordHash, hashSvc, tokenSvc, app.events, app.payouts, app.transfers, app.txs)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Verifier:       service.NewStripeSignatureVerifier(webhookSecret, 5*time.Minute),
		Dispatcher:     dispatcher,
		AdminSvc:       adminSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		AuditSvc:       service.NewAuditService(app.audit, log),
		MaxBodyBytes:   64 << 10,
		Logger:         log,
	})

	app.server = httptest.NewServer(router)
	t.Cleanup(app.server.Close)
	return app
}

// event builds a provider event envelope around obj.
func event(id string, typ domain.EventType, account string, obj any) []byte {
	env := map[string]any{
		"id":       id,
		"object":   "event",
		"type":     string(typ),
		"livemode": false,
		"created":  time.Now().Unix(),
		"data":     map[string]any{"object": obj},
	}
	if account != "" {
		env["account"] = account
	}
	b, _ := json.Marshal(env)
	return b
}

func sign(payload []byte, secret string) string {
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, secret)
	return fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))
}

type ackBody struct {
	Received  bool   `json:"received"`
	Outcome   string `json:"outcome"`
	ErrorCode string `json:"error_code"`
}

func (a *testApp) deliverSigned(t *testing.T, payload []byte, header string) (int, ackBody) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, a.server.URL+"/webhooks/stripe", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(httpHandler.SignatureHeader, header)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body ackBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func (a *testApp) deliver(t *testing.T, payload []byte) (int, ackBody) {
	t.Helper()
	return a.deliverSigned(t, payload, sign(payload, webhookSecret))
}

func orderIntent(status string) map[string]any {
	return map[string]any{
		"id":       "pi_1",
		"object":   "payment_intent",
		"amount":   1999,
		"currency": "usd",
		"status":   status,
		"metadata": map[string]string{
			"product_id":     "p1",
			"buyer_id":       "b1",
			"expert_id":      "e1",
			"transaction_id": "t1",
		},
	}
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, err := http.Get(app.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_OrderCompletedOnceAcrossRedeliveries(t *testing.T) {
	app := newTestApp(t)
	payload := event("evt_order_1", domain.EventPaymentIntentSucceeded, "", orderIntent("succeeded"))

	status, body := app.deliver(t, payload)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "processed", body.Outcome)

	tx, _ := app.txs.GetByID(ctx, "t1")
	assert.Equal(t, domain.TransactionStatusCompleted, tx.Status)
	assert.Equal(t, "pi_1", *tx.PaymentIntentID)
	p, _ := app.products.GetByID(ctx, "p1")
	assert.Equal(t, int64(5), p.SalesCount)
	assert.Equal(t, []string{"order_t1"}, app.notifications.keys())
	assert.Equal(t, 2, app.sender.count(tplOrder)) // buyer and seller

	// same event again
	status, body = app.deliver(t, payload)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "duplicate", body.Outcome)

	// same fact under a new event id
	status, body = app.deliver(t, event("evt_order_2", domain.EventPaymentIntentSucceeded, "", orderIntent("succeeded")))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "processed", body.Outcome)

	p, _ = app.products.GetByID(ctx, "p1")
	assert.Equal(t, int64(5), p.SalesCount)
	assert.Equal(t, 2, app.sender.count(tplOrder))

	rec, _ := app.events.GetByID(ctx, "evt_order_1")
	require.NotNil(t, rec)
	assert.NotNil(t, rec.ProcessedAt)
	assert.Equal(t, 1, rec.Attempts)
}

func TestIntegration_ConcurrentDuplicateDeliveries(t *testing.T) {
	app := newTestApp(t)
	payload := event("evt_race", domain.EventPaymentIntentSucceeded, "", orderIntent("succeeded"))

	const deliveries = 20
	var wg sync.WaitGroup
	statuses := make([]int, deliveries)
	outcomes := make([]string, deliveries)
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req, _ := http.NewRequest(http.MethodPost, app.server.URL+"/webhooks/stripe", bytes.NewReader(payload))
			req.Header.Set(httpHandler.SignatureHeader, sign(payload, webhookSecret))
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return
			}
			defer resp.Body.Close()
			var body ackBody
			_ = json.NewDecoder(resp.Body).Decode(&body)
			statuses[i] = resp.StatusCode
			outcomes[i] = body.Outcome
		}(i)
	}
	wg.Wait()

	processed := 0
	for i := range statuses {
		assert.Contains(t, []int{http.StatusOK, http.StatusConflict}, statuses[i])
		if outcomes[i] == "processed" {
			processed++
		}
	}
	assert.Equal(t, 1, processed)

	p, _ := app.products.GetByID(ctx, "p1")
	assert.Equal(t, int64(5), p.SalesCount)
	assert.Equal(t, 2, app.sender.count(tplOrder))
}

func TestIntegration_FailedPaymentNeverOverridesCompletion(t *testing.T) {
	app := newTestApp(t)

	status, _ := app.deliver(t, event("evt_ok", domain.EventPaymentIntentSucceeded, "", orderIntent("succeeded")))
	require.Equal(t, http.StatusOK, status)

	failed := orderIntent("requires_payment_method")
	failed["last_payment_error"] = map[string]string{"code": "card_declined", "decline_code": "insufficient_funds"}
	status, body := app.deliver(t, event("evt_late_fail", domain.EventPaymentIntentFailed, "", failed))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "processed", body.Outcome)

	tx, _ := app.txs.GetByID(ctx, "t1")
	assert.Equal(t, domain.TransactionStatusCompleted, tx.Status)
	assert.Nil(t, tx.FailureReason)
}

func TestIntegration_MissingMetadataIsSkipped(t *testing.T) {
	app := newTestApp(t)
	intent := orderIntent("succeeded")
	intent["metadata"] = map[string]string{"product_id": "p1"}

	status, body := app.deliver(t, event("evt_no_meta", domain.EventPaymentIntentSucceeded, "", intent))

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "skipped", body.Outcome)
	rec, _ := app.events.GetByID(ctx, "evt_no_meta")
	require.NotNil(t, rec)
	assert.Equal(t, domain.OutcomeSkipped, *rec.Outcome)
}

func TestIntegration_TrialCountdownUsesDistinctKeys(t *testing.T) {
	app := newTestApp(t)
	sub := func(trialEnd time.Time) map[string]any {
		return map[string]any{
			"id":        "sub_1",
			"object":    "subscription",
			"customer":  "cus_u2",
			"status":    "trialing",
			"trial_end": trialEnd.Unix(),
		}
	}
	now := time.Now()

	status, _ := app.deliver(t, event("evt_trial_a", domain.EventSubscriptionTrialWillEnd, "", sub(now.Add(47*time.Hour))))
	require.Equal(t, http.StatusOK, status)
	status, _ = app.deliver(t, event("evt_trial_b", domain.EventSubscriptionTrialWillEnd, "", sub(now.Add(23*time.Hour))))
	require.Equal(t, http.StatusOK, status)
	// replay of the 1-day reminder under another event id
	status, _ = app.deliver(t, event("evt_trial_c", domain.EventSubscriptionTrialWillEnd, "", sub(now.Add(22*time.Hour))))
	require.Equal(t, http.StatusOK, status)

	assert.Equal(t, []string{"trial_ending_sub_1_1d", "trial_ending_sub_1_2d"}, app.notifications.keys())
	assert.Equal(t, 2, app.sender.count(tplTrial))
}

func TestIntegration_SubscriptionLifecycle(t *testing.T) {
	app := newTestApp(t)
	now := time.Now()
	sub := map[string]any{
		"id":                   "sub_9",
		"object":               "subscription",
		"customer":             "cus_u2",
		"status":               "active",
		"current_period_start": now.Unix(),
		"current_period_end":   now.Add(30 * 24 * time.Hour).Unix(),
		"items": map[string]any{"data": []map[string]any{
			{"price": map[string]string{"id": "price_pro"}},
		}},
	}

	status, _ := app.deliver(t, event("evt_sub_created", domain.EventSubscriptionCreated, "", sub))
	require.Equal(t, http.StatusOK, status)
	stored, _ := app.subs.GetByUserID(ctx, "u2")
	require.NotNil(t, stored)
	assert.Equal(t, domain.SubscriptionActive, stored.Status)
	assert.Equal(t, "price_pro", stored.PlanID)

	invoice := map[string]any{
		"id":            "in_1",
		"object":        "invoice",
		"customer":      "cus_u2",
		"subscription":  "sub_9",
		"amount_due":    2500,
		"currency":      "usd",
		"attempt_count": 1,
	}
	status, _ = app.deliver(t, event("evt_inv_fail_1", domain.EventInvoicePaymentFailed, "", invoice))
	require.Equal(t, http.StatusOK, status)
	invoice["attempt_count"] = 2
	status, _ = app.deliver(t, event("evt_inv_fail_2", domain.EventInvoicePaymentFailed, "", invoice))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, app.payments.count())
	assert.Equal(t, 2, app.sender.count(tplPayFailed))

	sub["status"] = "canceled"
	status, _ = app.deliver(t, event("evt_sub_deleted", domain.EventSubscriptionDeleted, "", sub))
	require.Equal(t, http.StatusOK, status)
	stored, _ = app.subs.GetByUserID(ctx, "u2")
	assert.Equal(t, domain.SubscriptionCanceled, stored.Status)
	assert.Empty(t, stored.PlanID)

	assert.Equal(t, 1, app.sender.count(tplWelcome))
	assert.Equal(t, 1, app.sender.count(tplCancelled))
}

func TestIntegration_LateUpdateDoesNotReviveCanceled(t *testing.T) {
	app := newTestApp(t)
	now := time.Now()
	sub := map[string]any{
		"id":                 "sub_9",
		"object":             "subscription",
		"customer":           "cus_u2",
		"status":             "active",
		"current_period_end": now.Add(30 * 24 * time.Hour).Unix(),
		"items": map[string]any{"data": []map[string]any{
			{"price": map[string]string{"id": "price_pro"}},
		}},
	}

	status, _ := app.deliver(t, event("evt_late_created", domain.EventSubscriptionCreated, "", sub))
	require.Equal(t, http.StatusOK, status)

	canceled := map[string]any{}
	for k, v := range sub {
		canceled[k] = v
	}
	canceled["status"] = "canceled"
	status, _ = app.deliver(t, event("evt_late_deleted", domain.EventSubscriptionDeleted, "", canceled))
	require.Equal(t, http.StatusOK, status)

	// the provider emitted this update before the deletion
	status, body := app.deliver(t, event("evt_late_updated", domain.EventSubscriptionUpdated, "", sub))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "skipped", body.Outcome)

	stored, _ := app.subs.GetByUserID(ctx, "u2")
	require.NotNil(t, stored)
	assert.Equal(t, domain.SubscriptionCanceled, stored.Status)
	assert.Empty(t, stored.PlanID)
}

func TestIntegration_UnmappedCustomerIsSkipped(t *testing.T) {
	app := newTestApp(t)
	sub := map[string]any{"id": "sub_x", "customer": "cus_unknown", "status": "active"}

	status, body := app.deliver(t, event("evt_unmapped", domain.EventSubscriptionUpdated, "", sub))

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "skipped", body.Outcome)
	stored, _ := app.subs.GetByUserID(ctx, "u2")
	assert.Nil(t, stored)
}

func TestIntegration_PaidPayoutWithoutCreationIsNoOp(t *testing.T) {
	app := newTestApp(t)
	payout := map[string]any{"id": "po_ghost", "object": "payout", "amount": 5000, "currency": "usd", "status": "paid"}

	status, body := app.deliver(t, event("evt_ghost", domain.EventPayoutPaid, "acct_e1", payout))

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "processed", body.Outcome)
	assert.Equal(t, 0, app.payouts.count())
	assert.Equal(t, 0, app.sender.count(tplPayoutPaid))
}

func TestIntegration_PayoutLifecycle(t *testing.T) {
	app := newTestApp(t)
	payout := map[string]any{
		"id":           "po_1",
		"object":       "payout",
		"amount":       5000,
		"currency":     "usd",
		"status":       "pending",
		"arrival_date": time.Now().Add(48 * time.Hour).Unix(),
	}

	status, _ := app.deliver(t, event("evt_po_created", domain.EventPayoutCreated, "acct_e1", payout))
	require.Equal(t, http.StatusOK, status)
	status, _ = app.deliver(t, event("evt_po_created_again", domain.EventPayoutCreated, "acct_e1", payout))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, app.payouts.count())

	payout["status"] = "paid"
	status, _ = app.deliver(t, event("evt_po_paid", domain.EventPayoutPaid, "acct_e1", payout))
	require.Equal(t, http.StatusOK, status)
	status, _ = app.deliver(t, event("evt_po_paid_replay", domain.EventPayoutPaid, "acct_e1", payout))
	require.Equal(t, http.StatusOK, status)

	stored, _ := app.payouts.GetByProviderID(ctx, "po_1")
	assert.Equal(t, domain.PayoutPaid, stored.Status)
	require.NotNil(t, stored.ExpertID)
	assert.Equal(t, "e1", *stored.ExpertID)
	assert.Equal(t, 1, app.sender.count(tplPayoutPaid))
}

func TestIntegration_FailedPayoutNeverBecomesPaid(t *testing.T) {
	app := newTestApp(t)
	payout := map[string]any{"id": "po_2", "amount": 700, "currency": "usd", "status": "pending"}

	status, _ := app.deliver(t, event("evt_po2_created", domain.EventPayoutCreated, "acct_e1", payout))
	require.Equal(t, http.StatusOK, status)

	payout["status"] = "failed"
	payout["failure_code"] = "account_closed"
	payout["failure_message"] = "The bank account has been closed"
	status, _ = app.deliver(t, event("evt_po2_failed", domain.EventPayoutFailed, "acct_e1", payout))
	require.Equal(t, http.StatusOK, status)

	payout["status"] = "paid"
	status, _ = app.deliver(t, event("evt_po2_paid_late", domain.EventPayoutPaid, "acct_e1", payout))
	require.Equal(t, http.StatusOK, status)

	stored, _ := app.payouts.GetByProviderID(ctx, "po_2")
	assert.Equal(t, domain.PayoutFailed, stored.Status)
	assert.Equal(t, "account_closed", *stored.FailureCode)
	assert.Equal(t, 1, app.sender.count(tplPayoutFail))
	assert.Equal(t, 0, app.sender.count(tplPayoutPaid))
}

func TestIntegration_NotificationFailureIsRetriedOnRedelivery(t *testing.T) {
	app := newTestApp(t)
	payout := map[string]any{"id": "po_3", "amount": 900, "currency": "usd", "status": "pending"}
	status, _ := app.deliver(t, event("evt_po3_created", domain.EventPayoutCreated, "acct_e1", payout))
	require.Equal(t, http.StatusOK, status)

	app.sender.setFailure(errors.New("brevo unavailable"))
	payout["status"] = "paid"
	status, body := app.deliver(t, event("evt_po3_paid", domain.EventPayoutPaid, "acct_e1", payout))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "processed", body.Outcome)
	assert.Empty(t, app.notifications.keys())

	app.sender.setFailure(nil)
	status, _ = app.deliver(t, event("evt_po3_paid_retry", domain.EventPayoutPaid, "acct_e1", payout))
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"payout_paid_po_3"}, app.notifications.keys())
	assert.Equal(t, 1, app.sender.count(tplPayoutPaid))
}

func TestIntegration_AccountCapabilitiesMerge(t *testing.T) {
	app := newTestApp(t)
	account := map[string]any{
		"id":              "acct_e1",
		"object":          "account",
		"payouts_enabled": true,
		"capabilities":    map[string]string{"transfers": "active"},
	}

	status, _ := app.deliver(t, event("evt_acct", domain.EventAccountUpdated, "acct_e1", account))
	require.Equal(t, http.StatusOK, status)

	e, _ := app.experts.GetByID(ctx, "e1")
	assert.True(t, e.Account.ChargesEnabled)
	assert.True(t, e.Account.PayoutsEnabled)
	assert.Equal(t, domain.Capabilities{"card_payments": "active", "transfers": "active"}, e.Account.Capabilities)

	status, _ = app.deliver(t, event("evt_deauth", domain.EventAccountDeauthorized, "acct_e1", map[string]any{"id": "ca_1", "object": "application"}))
	require.Equal(t, http.StatusOK, status)
	e, _ = app.experts.GetByID(ctx, "e1")
	assert.Equal(t, domain.ExpertStatusInactive, e.Status)
	assert.Nil(t, e.StripeAccountID)
}

func TestIntegration_TransferReversal(t *testing.T) {
	app := newTestApp(t)
	transfer := map[string]any{
		"id":          "tr_1",
		"object":      "transfer",
		"amount":      1500,
		"currency":    "usd",
		"destination": "acct_e1",
		"metadata":    map[string]string{"transaction_id": "t1"},
	}
	status, _ := app.deliver(t, event("evt_tr_created", domain.EventTransferCreated, "", transfer))
	require.Equal(t, http.StatusOK, status)

	transfer["reversed"] = true
	transfer["amount_reversed"] = 1500
	transfer["reversals"] = map[string]any{"data": []map[string]any{{"id": "trr_1", "amount": 1500}}}
	status, _ = app.deliver(t, event("evt_tr_updated", domain.EventTransferUpdated, "", transfer))
	require.Equal(t, http.StatusOK, status)

	stored, _ := app.transfers.GetByProviderID(ctx, "tr_1")
	require.NotNil(t, stored)
	assert.True(t, stored.Reversed)
	assert.Equal(t, int64(1500), stored.AmountReversed)
	assert.Equal(t, "t1", *stored.TransactionID)
	assert.Len(t, stored.Reversals, 1)
}

func TestIntegration_RejectsBadSignature(t *testing.T) {
	app := newTestApp(t)
	payload := event("evt_forged", domain.EventPaymentIntentSucceeded, "", orderIntent("succeeded"))

	status, body := app.deliverSigned(t, payload, sign(payload, "whsec_wrong"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "WHK_001", body.ErrorCode)

	status, _ = app.deliverSigned(t, payload, "")
	assert.Equal(t, http.StatusBadRequest, status)

	rec, _ := app.events.GetByID(ctx, "evt_forged")
	assert.Nil(t, rec)
	tx, _ := app.txs.GetByID(ctx, "t1")
	assert.Equal(t, domain.TransactionStatusPending, tx.Status)
}

func TestIntegration_UnknownEventTypeAcknowledged(t *testing.T) {
	app := newTestApp(t)

	status, body := app.deliver(t, event("evt_unknown", "customer.tax_id.created", "", map[string]any{"id": "txi_1"}))

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ignored", body.Outcome)
	rec, _ := app.events.GetByID(ctx, "evt_unknown")
	require.NotNil(t, rec)
	assert.Equal(t, domain.OutcomeIgnored, *rec.Outcome)
}

func TestIntegration_AdminReadAPI(t *testing.T) {
	app := newTestApp(t)
	payout := map[string]any{"id": "po_admin", "amount": 1200, "currency": "usd", "status": "pending"}
	status, _ := app.deliver(t, event("evt_po_admin", domain.EventPayoutCreated, "acct_e1", payout))
	require.Equal(t, http.StatusOK, status)

	// wrong password
	resp, err := http.Post(app.server.URL+"/api/v1/admin/login", "application/json",
		bytes.NewBufferString(`{"username":"ops","password":"nope"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	loginBody, _ := json.Marshal(map[string]string{"username": "ops", "password": adminPassword})
	resp, err = http.Post(app.server.URL+"/api/v1/admin/login", "application/json", bytes.NewReader(loginBody))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var login struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&login))
	resp.Body.Close()
	require.NotEmpty(t, login.Data.Token)

	get := func(path string) *http.Response {
		req, _ := http.NewRequest(http.MethodGet, app.server.URL+path, nil)
		req.Header.Set("Authorization", "Bearer "+login.Data.Token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	resp = get("/api/v1/admin/events/evt_po_admin")
	var evtResp struct {
		Data domain.EventRecord `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&evtResp))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, domain.EventPayoutCreated, evtResp.Data.Type)
	assert.Equal(t, "acct_e1", evtResp.Data.Account)

	resp = get("/api/v1/admin/payouts?expert_id=e1")
	var listResp struct {
		Data struct {
			Count   int             `json:"count"`
			Payouts []domain.Payout `json:"payouts"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listResp))
	resp.Body.Close()
	assert.Equal(t, 1, listResp.Data.Count)
	assert.Equal(t, "po_admin", listResp.Data.Payouts[0].ProviderID)

	resp = get("/api/v1/admin/transactions/t_missing")
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	assert.Eventually(t, func() bool {
		app.audit.mu.Lock()
		defer app.audit.mu.Unlock()
		var hooks, logins, reads int
		for _, l := range app.audit.logs {
			switch l.Action {
			case domain.AuditActionWebhookReceived:
				hooks++
			case domain.AuditActionAdminLogin:
				logins++
			case domain.AuditActionAdminRead:
				reads++
			}
		}
		// the failed login and the 404 read are not audited
		return hooks == 1 && logins == 1 && reads == 2
	}, 2*time.Second, 20*time.Millisecond)
}
