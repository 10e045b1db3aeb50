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

type adminTestDeps struct {
	svc       *AdminServiceImpl
	hash      *mocks.MockHashService
	token     *mocks.MockTokenService
	events    *mocks.MockEventRepository
	payouts   *mocks.MockPayoutRepository
	transfers *mocks.MockTransferRepository
	txs       *mocks.MockTransactionRepository
}

func setupAdmin(t *testing.T, passwordHash string) *adminTestDeps {
	ctrl := gomock.NewController(t)
	d := &adminTestDeps{
		hash:      mocks.NewMockHashService(ctrl),
		token:     mocks.NewMockTokenService(ctrl),
		events:    mocks.NewMockEventRepository(ctrl),
		payouts:   mocks.NewMockPayoutRepository(ctrl),
		transfers: mocks.NewMockTransferRepository(ctrl),
		txs:       mocks.NewMockTransactionRepository(ctrl),
	}
	d.svc = NewAdminService("ops", passwordHash, d.hash, d.token, d.events, d.payouts, d.transfers, d.txs)
	return d
}

func TestAdmin_Login_Success(t *testing.T) {
	d := setupAdmin(t, "$argon2id$hash")
	expiry := testNow.Add(time.Hour)

	d.hash.EXPECT().Verify("s3cret", "$argon2id$hash").Return(true, nil)
	d.token.EXPECT().Generate("ops").Return("jwt-token", expiry, nil)

	token, exp, err := d.svc.Login(context.Background(), "ops", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, expiry, exp)
}

func TestAdmin_Login_WrongUsernameStillVerifies(t *testing.T) {
	d := setupAdmin(t, "$argon2id$hash")

	d.hash.EXPECT().Verify("s3cret", "$argon2id$hash").Return(true, nil)

	_, _, err := d.svc.Login(context.Background(), "root", "s3cret")
	assert.True(t, apperror.HasCode(err, "AUTH_001"))
}

func TestAdmin_Login_WrongPassword(t *testing.T) {
	d := setupAdmin(t, "$argon2id$hash")

	d.hash.EXPECT().Verify("nope", "$argon2id$hash").Return(false, nil)

	_, _, err := d.svc.Login(context.Background(), "ops", "nope")
	assert.True(t, apperror.HasCode(err, "AUTH_001"))
}

func TestAdmin_Login_NoHashConfigured(t *testing.T) {
	d := setupAdmin(t, "")

	_, _, err := d.svc.Login(context.Background(), "ops", "anything")
	assert.True(t, apperror.HasCode(err, "AUTH_001"))
}

func TestAdmin_GetEvent(t *testing.T) {
	d := setupAdmin(t, "h")
	ctx := context.Background()

	d.events.EXPECT().GetByID(ctx, "evt_1").Return(&domain.EventRecord{ProviderID: "evt_1"}, nil)
	d.events.EXPECT().GetByID(ctx, "evt_2").Return(nil, nil)
	d.events.EXPECT().GetByID(ctx, "evt_3").Return(nil, errors.New("db down"))

	rec, err := d.svc.GetEvent(ctx, "evt_1")
	require.NoError(t, err)
	assert.Equal(t, "evt_1", rec.ProviderID)

	_, err = d.svc.GetEvent(ctx, "evt_2")
	assert.True(t, apperror.HasCode(err, "RES_001"))

	_, err = d.svc.GetEvent(ctx, "evt_3")
	assert.True(t, apperror.HasCode(err, "SYS_001"))
}

func TestAdmin_ListPayouts_ClampsLimit(t *testing.T) {
	d := setupAdmin(t, "h")
	ctx := context.Background()

	d.payouts.EXPECT().ListByExpert(ctx, "exp_1", 50).Return(nil, nil)
	d.payouts.EXPECT().ListByExpert(ctx, "exp_1", 200).Return([]domain.Payout{{ProviderID: "po_1"}}, nil)

	got, err := d.svc.ListPayouts(ctx, "exp_1", 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = d.svc.ListPayouts(ctx, "exp_1", 5000)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAdmin_GetTransferAndTransaction(t *testing.T) {
	d := setupAdmin(t, "h")
	ctx := context.Background()

	d.transfers.EXPECT().GetByProviderID(ctx, "tr_1").Return(&domain.Transfer{ProviderID: "tr_1"}, nil)
	d.txs.EXPECT().GetByID(ctx, "tx_missing").Return(nil, nil)

	tr, err := d.svc.GetTransfer(ctx, "tr_1")
	require.NoError(t, err)
	assert.Equal(t, "tr_1", tr.ProviderID)

	_, err = d.svc.GetTransaction(ctx, "tx_missing")
	assert.True(t, apperror.HasCode(err, "RES_001"))
}
