package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardRepo_GetDailyLimit_Unset(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGuardRepo(mock)
	accountID := uuid.New()

	mock.ExpectQuery("SELECT daily_limit FROM withdraw_limits").
		WithArgs(accountID).
		WillReturnRows(pgxmock.NewRows([]string{"daily_limit"}))

	limit, err := repo.GetDailyLimit(context.Background(), accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), limit)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuardRepo_GetDailyWithdrawn_NewDayStartsAtZero(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGuardRepo(mock)
	accountID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT amount FROM daily_withdrawals").
		WithArgs(accountID, int64(20300)).
		WillReturnRows(pgxmock.NewRows([]string{"amount"}))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	withdrawn, err := repo.GetDailyWithdrawn(context.Background(), tx, accountID, 20300)
	require.NoError(t, err)
	assert.Equal(t, int64(0), withdrawn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuardRepo_AddDailyWithdrawn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGuardRepo(mock)
	accountID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO daily_withdrawals").
		WithArgs(accountID, int64(20300), int64(750)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.AddDailyWithdrawn(context.Background(), tx, accountID, 20300, 750)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuardRepo_EmergencyRequestLifecycle(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGuardRepo(mock)
	accountID := uuid.New()
	requestedAt := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectExec("INSERT INTO emergency_requests").
		WithArgs(accountID, requestedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery("SELECT requested_at FROM emergency_requests").
		WithArgs(accountID).
		WillReturnRows(pgxmock.NewRows([]string{"requested_at"}).AddRow(requestedAt))

	require.NoError(t, repo.UpsertEmergencyRequest(context.Background(), accountID, requestedAt))

	req, err := repo.GetEmergencyRequest(context.Background(), accountID)
	require.NoError(t, err)
	require.NotNil(t, req)
	assert.Equal(t, requestedAt, req.RequestedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
