package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vaultwise/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GuardRepo implements ports.GuardRepository: daily withdrawal limits,
// day-keyed withdrawal counters and emergency requests.
type GuardRepo struct {
	pool Pool
}

// NewGuardRepo creates a new GuardRepo.
func NewGuardRepo(pool Pool) *GuardRepo {
	return &GuardRepo{pool: pool}
}

// SetDailyLimit sets the account's daily withdrawal ceiling (0 = unlimited).
func (r *GuardRepo) SetDailyLimit(ctx context.Context, accountID uuid.UUID, limit int64) error {
	query := `INSERT INTO withdraw_limits (account_id, daily_limit, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (account_id) DO UPDATE SET daily_limit = EXCLUDED.daily_limit, updated_at = NOW()`

	if _, err := r.pool.Exec(ctx, query, accountID, limit); err != nil {
		return fmt.Errorf("set daily limit: %w", err)
	}
	return nil
}

// GetDailyLimit returns the account's limit, 0 when none is set.
func (r *GuardRepo) GetDailyLimit(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var limit int64
	err := r.pool.QueryRow(ctx, `SELECT daily_limit FROM withdraw_limits WHERE account_id = $1`, accountID).Scan(&limit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get daily limit: %w", err)
	}
	return limit, nil
}

// GetDailyWithdrawn locks and returns the counter for (account, day).
// A missing row means nothing withdrawn yet today.
func (r *GuardRepo) GetDailyWithdrawn(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, day int64) (int64, error) {
	var amount int64
	err := tx.QueryRow(ctx,
		`SELECT amount FROM daily_withdrawals WHERE account_id = $1 AND day = $2 FOR UPDATE`,
		accountID, day,
	).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("get daily withdrawn: %w", err)
	}
	return amount, nil
}

// AddDailyWithdrawn accumulates into the (account, day) counter within
// the withdrawal's transaction. Old day keys are never reset; a new
// day simply starts from a missing row.
func (r *GuardRepo) AddDailyWithdrawn(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, day int64, amount int64) error {
	query := `INSERT INTO daily_withdrawals (account_id, day, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id, day) DO UPDATE SET amount = daily_withdrawals.amount + EXCLUDED.amount`

	if _, err := tx.Exec(ctx, query, accountID, day, amount); err != nil {
		return fmt.Errorf("add daily withdrawn: %w", err)
	}
	return nil
}

// UpsertEmergencyRequest records a request timestamp, overwriting any
// prior request.
func (r *GuardRepo) UpsertEmergencyRequest(ctx context.Context, accountID uuid.UUID, requestedAt time.Time) error {
	query := `INSERT INTO emergency_requests (account_id, requested_at)
		VALUES ($1, $2)
		ON CONFLICT (account_id) DO UPDATE SET requested_at = EXCLUDED.requested_at`

	if _, err := r.pool.Exec(ctx, query, accountID, requestedAt); err != nil {
		return fmt.Errorf("upsert emergency request: %w", err)
	}
	return nil
}

// GetEmergencyRequest returns the pending request, nil if none.
func (r *GuardRepo) GetEmergencyRequest(ctx context.Context, accountID uuid.UUID) (*domain.EmergencyRequest, error) {
	req := &domain.EmergencyRequest{AccountID: accountID}
	err := r.pool.QueryRow(ctx,
		`SELECT requested_at FROM emergency_requests WHERE account_id = $1`, accountID,
	).Scan(&req.RequestedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get emergency request: %w", err)
	}
	return req, nil
}

// ClearEmergencyRequest deletes the request within the executing
// transaction, so a rolled-back execution leaves the request intact.
func (r *GuardRepo) ClearEmergencyRequest(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM emergency_requests WHERE account_id = $1`, accountID); err != nil {
		return fmt.Errorf("clear emergency request: %w", err)
	}
	return nil
}
