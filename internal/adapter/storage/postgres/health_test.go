package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck_Ping(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	hc := NewHealthCheck(mock)
	mock.ExpectExec("SELECT 1").WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectExec("SELECT 1").WillReturnError(errors.New("connection refused"))

	assert.NoError(t, hc.Ping(context.Background()))
	assert.Error(t, hc.Ping(context.Background()))
	assert.Equal(t, "postgresql", hc.Name())
	assert.NoError(t, mock.ExpectationsWereMet())
}
