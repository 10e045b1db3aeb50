package postgres

import (
	"context"
	"testing"
	"time"

	"payment-reconciler/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payoutColumnNames() []string {
	return []string{"provider_id", "account_id", "expert_id", "status", "amount", "currency", "destination",
		"arrival_date", "failure_code", "failure_message", "created_at", "updated_at"}
}

func newTestPayout() *domain.Payout {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Payout{
		ProviderID:  "po_1",
		AccountID:   "acct_1",
		ExpertID:    strPtr("e1"),
		Status:      domain.PayoutPending,
		Amount:      12000,
		Currency:    "usd",
		Destination: "ba_1",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestPayoutRepo_InsertIfAbsent_SecondInsertIsNoop(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutRepo(mock)
	p := newTestPayout()

	mock.ExpectExec("INSERT INTO payouts .+ ON CONFLICT \\(provider_id\\) DO NOTHING").
		WithArgs("po_1", "acct_1", p.ExpertID, domain.PayoutPending, int64(12000), "usd", "ba_1",
			(*time.Time)(nil), (*string)(nil), (*string)(nil), p.CreatedAt, p.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO payouts").
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	inserted, err := repo.InsertIfAbsent(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertIfAbsent(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutRepo_GetByProviderID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutRepo(mock)
	p := newTestPayout()

	mock.ExpectQuery("SELECT .+ FROM payouts WHERE provider_id").
		WithArgs("po_1").
		WillReturnRows(pgxmock.NewRows(payoutColumnNames()).AddRow(
			p.ProviderID, p.AccountID, p.ExpertID, p.Status, p.Amount, p.Currency, p.Destination,
			p.ArrivalDate, p.FailureCode, p.FailureMessage, p.CreatedAt, p.UpdatedAt,
		))

	got, err := repo.GetByProviderID(context.Background(), "po_1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.PayoutPending, got.Status)
	assert.Equal(t, "e1", *got.ExpertID)
}

func TestPayoutRepo_GetByProviderID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM payouts WHERE provider_id").
		WithArgs("po_unknown").
		WillReturnRows(pgxmock.NewRows(payoutColumnNames()))

	got, err := repo.GetByProviderID(context.Background(), "po_unknown")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestPayoutRepo_AdvanceStatus_CompareAndSet(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutRepo(mock)
	at := time.Now().UTC().Truncate(time.Microsecond)
	code := "account_closed"

	mock.ExpectExec("UPDATE payouts\\s+SET status = \\$3.+WHERE provider_id = \\$1 AND status = \\$2").
		WithArgs("po_1", domain.PayoutPending, domain.PayoutFailed, &code, (*string)(nil), at).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	ok, err := repo.AdvanceStatus(context.Background(), "po_1", domain.PayoutPending, domain.PayoutFailed, &code, nil, at)
	require.NoError(t, err)
	assert.False(t, ok, "status moved underneath, nothing updated")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPayoutRepo_ListByExpert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPayoutRepo(mock)
	p := newTestPayout()

	mock.ExpectQuery("SELECT .+ FROM payouts WHERE expert_id = \\$1 ORDER BY created_at DESC LIMIT \\$2").
		WithArgs("e1", 20).
		WillReturnRows(pgxmock.NewRows(payoutColumnNames()).
			AddRow(p.ProviderID, p.AccountID, p.ExpertID, p.Status, p.Amount, p.Currency, p.Destination,
				p.ArrivalDate, p.FailureCode, p.FailureMessage, p.CreatedAt, p.UpdatedAt).
			AddRow("po_2", p.AccountID, p.ExpertID, domain.PayoutPaid, int64(500), p.Currency, p.Destination,
				p.ArrivalDate, p.FailureCode, p.FailureMessage, p.CreatedAt, p.UpdatedAt))

	payouts, err := repo.ListByExpert(context.Background(), "e1", 20)
	require.NoError(t, err)
	require.Len(t, payouts, 2)
	assert.Equal(t, domain.PayoutPaid, payouts[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransferRepo_InsertIfAbsent_EmptyReversals(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTransferRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	tr := &domain.Transfer{ProviderID: "tr_2", Destination: "acct_1", Amount: 100, Currency: "usd", CreatedAt: now, UpdatedAt: now}

	mock.ExpectExec("INSERT INTO transfers .+ ON CONFLICT \\(provider_id\\) DO NOTHING").
		WithArgs("tr_2", "acct_1", (*string)(nil), int64(100), "usd", false, int64(0), `[]`, now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	inserted, err := repo.InsertIfAbsent(context.Background(), tr)
	require.NoError(t, err)
	assert.True(t, inserted)
}
