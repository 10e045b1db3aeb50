package integration

import (
	"context"
	"sort"
	"sync"
	"time"

	"payment-reconciler/internal/core/domain"
)

// --- In-Memory Event Repo ---

type inMemoryEventRepo struct {
	mu     sync.Mutex
	events map[string]*domain.EventRecord
}

func newInMemoryEventRepo() *inMemoryEventRepo {
	return &inMemoryEventRepo{events: make(map[string]*domain.EventRecord)}
}

func (r *inMemoryEventRepo) Claim(ctx context.Context, evt *domain.Event, now time.Time, lease time.Duration) (domain.ClaimResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	until := now.Add(lease)
	rec, ok := r.events[evt.ID]
	if !ok {
		r.events[evt.ID] = &domain.EventRecord{
			ProviderID:   evt.ID,
			Type:         evt.Type,
			Livemode:     evt.Livemode,
			Account:      evt.Account,
			ReceivedAt:   now,
			ClaimedUntil: &until,
			Attempts:     1,
		}
		return domain.ClaimAcquired, nil
	}
	if rec.ProcessedAt != nil {
		return domain.ClaimAlreadyProcessed, nil
	}
	if rec.ClaimedUntil != nil && !rec.ClaimedUntil.Before(now) {
		return domain.ClaimHeld, nil
	}
	rec.ClaimedUntil = &until
	rec.Attempts++
	return domain.ClaimAcquired, nil
}

func (r *inMemoryEventRepo) MarkProcessed(ctx context.Context, eventID string, outcome domain.EventOutcome, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.events[eventID]; ok {
		rec.ProcessedAt = &at
		rec.Outcome = &outcome
		rec.ClaimedUntil = nil
		rec.LastError = nil
	}
	return nil
}

func (r *inMemoryEventRepo) Release(ctx context.Context, eventID string, cause string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.events[eventID]; ok && rec.ProcessedAt == nil {
		rec.ClaimedUntil = nil
		rec.LastError = &cause
	}
	return nil
}

func (r *inMemoryEventRepo) GetByID(ctx context.Context, eventID string) (*domain.EventRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.events[eventID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

// --- In-Memory User Repo ---

type inMemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func newInMemoryUserRepo(users ...domain.User) *inMemoryUserRepo {
	r := &inMemoryUserRepo{users: make(map[string]*domain.User)}
	for i := range users {
		u := users[i]
		r.users[u.ID] = &u
	}
	return r
}

func (r *inMemoryUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *inMemoryUserRepo) GetByStripeCustomerID(ctx context.Context, customerID string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.StripeCustomerID != nil && *u.StripeCustomerID == customerID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepo) SetStripeCustomerID(ctx context.Context, userID string, customerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID]; ok && u.StripeCustomerID == nil {
		u.StripeCustomerID = &customerID
	}
	return nil
}

// --- In-Memory Expert Repo ---

type inMemoryExpertRepo struct {
	mu      sync.RWMutex
	experts map[string]*domain.Expert
}

func newInMemoryExpertRepo(experts ...domain.Expert) *inMemoryExpertRepo {
	r := &inMemoryExpertRepo{experts: make(map[string]*domain.Expert)}
	for i := range experts {
		e := experts[i]
		r.experts[e.ID] = &e
	}
	return r
}

func (r *inMemoryExpertRepo) GetByID(ctx context.Context, id string) (*domain.Expert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.experts[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *inMemoryExpertRepo) GetByStripeAccountID(ctx context.Context, accountID string) (*domain.Expert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.experts {
		if e.StripeAccountID != nil && *e.StripeAccountID == accountID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryExpertRepo) PatchAccount(ctx context.Context, expertID string, patch domain.AccountPatch, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.experts[expertID]; ok {
		e.Account = patch.Apply(e.Account)
		e.UpdatedAt = at
	}
	return nil
}

func (r *inMemoryExpertRepo) SetCapability(ctx context.Context, expertID string, capability string, status string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.experts[expertID]; ok {
		e.Account.Capabilities = e.Account.Capabilities.Merge(domain.Capabilities{capability: status})
		e.UpdatedAt = at
	}
	return nil
}

func (r *inMemoryExpertRepo) Deauthorize(ctx context.Context, expertID string, reason string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.experts[expertID]; ok {
		e.Status = domain.ExpertStatusInactive
		e.StripeAccountID = nil
		e.Account.ChargesEnabled = false
		e.Account.PayoutsEnabled = false
		e.DeactivationReason = &reason
		e.DeactivatedAt = &at
		e.UpdatedAt = at
	}
	return nil
}

// --- In-Memory Subscription Repo ---

type inMemorySubscriptionRepo struct {
	mu   sync.RWMutex
	subs map[string]*domain.Subscription // by user id
}

func newInMemorySubscriptionRepo() *inMemorySubscriptionRepo {
	return &inMemorySubscriptionRepo{subs: make(map[string]*domain.Subscription)}
}

func (r *inMemorySubscriptionRepo) GetByUserID(ctx context.Context, userID string) (*domain.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.subs[userID]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *inMemorySubscriptionRepo) Upsert(ctx context.Context, sub *domain.Subscription) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.subs[sub.UserID]; ok &&
		cur.SubscriptionID == sub.SubscriptionID && cur.Status == domain.SubscriptionCanceled {
		return false, nil
	}
	cp := *sub
	r.subs[sub.UserID] = &cp
	return true, nil
}

func (r *inMemorySubscriptionRepo) MarkCanceled(ctx context.Context, userID string, subscriptionID string, canceledAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.subs[userID]
	if !ok || s.SubscriptionID != subscriptionID {
		return false, nil
	}
	s.Status = domain.SubscriptionCanceled
	s.PlanID = ""
	s.CancelAtPeriodEnd = false
	s.CanceledAt = &canceledAt
	s.UpdatedAt = canceledAt
	return true, nil
}

// --- In-Memory Payment History Repo ---

type inMemoryPaymentHistoryRepo struct {
	mu   sync.Mutex
	rows map[string]*domain.PaymentRecord
}

func newInMemoryPaymentHistoryRepo() *inMemoryPaymentHistoryRepo {
	return &inMemoryPaymentHistoryRepo{rows: make(map[string]*domain.PaymentRecord)}
}

func (r *inMemoryPaymentHistoryRepo) InsertIfAbsent(ctx context.Context, rec *domain.PaymentRecord) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[rec.ID]; ok {
		return false, nil
	}
	cp := *rec
	r.rows[rec.ID] = &cp
	return true, nil
}

func (r *inMemoryPaymentHistoryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	mu       sync.RWMutex
	txs      map[string]*domain.MarketplaceTransaction
	products *inMemoryProductRepo
}

func newInMemoryTransactionRepo(txs ...domain.MarketplaceTransaction) *inMemoryTransactionRepo {
	r := &inMemoryTransactionRepo{txs: make(map[string]*domain.MarketplaceTransaction)}
	for i := range txs {
		tx := txs[i]
		r.txs[tx.ID] = &tx
	}
	return r
}

func (r *inMemoryTransactionRepo) GetByID(ctx context.Context, id string) (*domain.MarketplaceTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tx, ok := r.txs[id]
	if !ok {
		return nil, nil
	}
	cp := *tx
	return &cp, nil
}

func (r *inMemoryTransactionRepo) Complete(ctx context.Context, id string, paymentIntentID string, at time.Time) (bool, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.txs[id]
	if !ok || tx.Status != domain.TransactionStatusPending {
		return false, 0, nil
	}
	tx.Status = domain.TransactionStatusCompleted
	tx.PaymentIntentID = &paymentIntentID
	tx.CompletedAt = &at
	tx.UpdatedAt = at
	var sales int64
	if r.products != nil {
		sales = r.products.addSale(tx.ProductID)
	}
	return true, sales, nil
}

func (r *inMemoryTransactionRepo) Fail(ctx context.Context, id string, paymentIntentID string, reason string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.txs[id]
	if !ok || tx.Status != domain.TransactionStatusPending {
		return false, nil
	}
	tx.Status = domain.TransactionStatusFailed
	tx.PaymentIntentID = &paymentIntentID
	tx.FailureReason = &reason
	tx.UpdatedAt = at
	return true, nil
}

// --- In-Memory Product Repo ---

type inMemoryProductRepo struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func newInMemoryProductRepo(products ...domain.Product) *inMemoryProductRepo {
	r := &inMemoryProductRepo{products: make(map[string]*domain.Product)}
	for i := range products {
		p := products[i]
		r.products[p.ID] = &p
	}
	return r
}

func (r *inMemoryProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryProductRepo) addSale(id string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return 0
	}
	p.SalesCount++
	return p.SalesCount
}

// --- In-Memory Payout Repo ---

type inMemoryPayoutRepo struct {
	mu      sync.RWMutex
	payouts map[string]*domain.Payout
}

func newInMemoryPayoutRepo() *inMemoryPayoutRepo {
	return &inMemoryPayoutRepo{payouts: make(map[string]*domain.Payout)}
}

func (r *inMemoryPayoutRepo) InsertIfAbsent(ctx context.Context, p *domain.Payout) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payouts[p.ProviderID]; ok {
		return false, nil
	}
	cp := *p
	r.payouts[p.ProviderID] = &cp
	return true, nil
}

func (r *inMemoryPayoutRepo) GetByProviderID(ctx context.Context, providerID string) (*domain.Payout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payouts[providerID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryPayoutRepo) AdvanceStatus(ctx context.Context, providerID string, from, to domain.PayoutStatus, failureCode, failureMessage *string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payouts[providerID]
	if !ok || p.Status != from {
		return false, nil
	}
	p.Status = to
	if failureCode != nil {
		p.FailureCode = failureCode
	}
	if failureMessage != nil {
		p.FailureMessage = failureMessage
	}
	p.UpdatedAt = at
	return true, nil
}

func (r *inMemoryPayoutRepo) ListByExpert(ctx context.Context, expertID string, limit int) ([]domain.Payout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Payout
	for _, p := range r.payouts {
		if p.ExpertID != nil && *p.ExpertID == expertID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryPayoutRepo) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.payouts)
}

// --- In-Memory Transfer Repo ---

type inMemoryTransferRepo struct {
	mu        sync.RWMutex
	transfers map[string]*domain.Transfer
}

func newInMemoryTransferRepo() *inMemoryTransferRepo {
	return &inMemoryTransferRepo{transfers: make(map[string]*domain.Transfer)}
}

func (r *inMemoryTransferRepo) InsertIfAbsent(ctx context.Context, t *domain.Transfer) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.transfers[t.ProviderID]; ok {
		return false, nil
	}
	cp := *t
	r.transfers[t.ProviderID] = &cp
	return true, nil
}

func (r *inMemoryTransferRepo) UpsertReversal(ctx context.Context, t *domain.Transfer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.transfers[t.ProviderID]
	if !ok {
		cp := *t
		r.transfers[t.ProviderID] = &cp
		return nil
	}
	existing.Reversed = t.Reversed
	existing.AmountReversed = t.AmountReversed
	existing.Reversals = t.Reversals
	existing.UpdatedAt = t.UpdatedAt
	return nil
}

func (r *inMemoryTransferRepo) GetByProviderID(ctx context.Context, providerID string) (*domain.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.transfers[providerID]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

// --- In-Memory Notification Repo ---

type inMemoryNotificationRepo struct {
	mu      sync.Mutex
	entries map[string]*domain.NotificationEntry
}

func newInMemoryNotificationRepo() *inMemoryNotificationRepo {
	return &inMemoryNotificationRepo{entries: make(map[string]*domain.NotificationEntry)}
}

func (r *inMemoryNotificationRepo) Exists(ctx context.Context, semanticKey string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[semanticKey]
	return ok, nil
}

func (r *inMemoryNotificationRepo) Record(ctx context.Context, entry *domain.NotificationEntry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.SemanticKey]; ok {
		return false, nil
	}
	cp := *entry
	r.entries[entry.SemanticKey] = &cp
	return true, nil
}

func (r *inMemoryNotificationRepo) keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// --- In-Memory Audit Repo ---

type inMemoryAuditRepo struct {
	mu   sync.Mutex
	logs []domain.AuditLog
}

func (r *inMemoryAuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logs = append(r.logs, *log)
	return nil
}

// --- Recording Email Sender ---

type sentEmail struct {
	Recipient  string
	TemplateID int64
	Data       map[string]any
}

type recordingSender struct {
	mu   sync.Mutex
	sent []sentEmail
	fail error
}

func (s *recordingSender) Send(ctx context.Context, recipient string, templateID int64, data map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.sent = append(s.sent, sentEmail{Recipient: recipient, TemplateID: templateID, Data: data})
	return nil
}

func (s *recordingSender) setFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

func (s *recordingSender) count(templateID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.sent {
		if e.TemplateID == templateID {
			n++
		}
	}
	return n
}
