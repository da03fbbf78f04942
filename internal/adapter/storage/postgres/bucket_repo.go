package postgres

import (
	"context"
	"errors"
	"fmt"

	"vaultwise/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BucketRepo implements ports.BucketRepository.
type BucketRepo struct {
	pool Pool
}

// NewBucketRepo creates a new BucketRepo.
func NewBucketRepo(pool Pool) *BucketRepo {
	return &BucketRepo{pool: pool}
}

const bucketColumns = `account_id, bucket, balance, yield_balance, is_yielding, last_yield_update`

// GetBalancesForUpdate locks and returns all bucket rows for the
// account. This MUST be called within a transaction; the row locks are
// what serialize concurrent mutations of one account's buckets.
func (r *BucketRepo) GetBalancesForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (map[domain.Bucket]*domain.BucketBalance, error) {
	query := `SELECT ` + bucketColumns + ` FROM bucket_balances WHERE account_id = $1 FOR UPDATE`

	rows, err := tx.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("lock bucket balances: %w", err)
	}
	defer rows.Close()

	balances := make(map[domain.Bucket]*domain.BucketBalance, len(domain.Buckets))
	for rows.Next() {
		b := &domain.BucketBalance{}
		if err := rows.Scan(&b.AccountID, &b.Bucket, &b.Balance, &b.YieldBalance, &b.IsYielding, &b.LastYieldUpdate); err != nil {
			return nil, fmt.Errorf("scan bucket balance: %w", err)
		}
		balances[b.Bucket] = b
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bucket balances: %w", err)
	}
	return balances, nil
}

// UpsertBalance writes the absolute balance for one bucket within a
// transaction.
func (r *BucketRepo) UpsertBalance(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, bucket domain.Bucket, balance int64) error {
	query := `INSERT INTO bucket_balances (account_id, bucket, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id, bucket) DO UPDATE SET balance = EXCLUDED.balance`

	if _, err := tx.Exec(ctx, query, accountID, bucket, balance); err != nil {
		return fmt.Errorf("upsert bucket balance %s: %w", bucket, err)
	}
	return nil
}

// ListBalances returns the account's bucket balances without locking.
func (r *BucketRepo) ListBalances(ctx context.Context, accountID uuid.UUID) ([]domain.BucketBalance, error) {
	query := `SELECT ` + bucketColumns + ` FROM bucket_balances WHERE account_id = $1 ORDER BY bucket`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list bucket balances: %w", err)
	}
	defer rows.Close()

	var out []domain.BucketBalance
	for rows.Next() {
		var b domain.BucketBalance
		if err := rows.Scan(&b.AccountID, &b.Bucket, &b.Balance, &b.YieldBalance, &b.IsYielding, &b.LastYieldUpdate); err != nil {
			return nil, fmt.Errorf("scan bucket balance: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bucket balances: %w", err)
	}
	return out, nil
}

// MetaRepo implements ports.LedgerMetaRepository over the single-row
// ledger_meta table.
type MetaRepo struct {
	pool Pool
}

// NewMetaRepo creates a new MetaRepo.
func NewMetaRepo(pool Pool) *MetaRepo {
	return &MetaRepo{pool: pool}
}

// GetTVLForUpdate locks and returns the total-value-locked counter.
func (r *MetaRepo) GetTVLForUpdate(ctx context.Context, tx pgx.Tx) (int64, error) {
	var tvl int64
	err := tx.QueryRow(ctx, `SELECT total_value_locked FROM ledger_meta WHERE id = 1 FOR UPDATE`).Scan(&tvl)
	if err != nil {
		return 0, fmt.Errorf("lock tvl: %w", err)
	}
	return tvl, nil
}

// SetTVL writes the counter within the same transaction that mutated
// the balances it mirrors.
func (r *MetaRepo) SetTVL(ctx context.Context, tx pgx.Tx, value int64) error {
	tag, err := tx.Exec(ctx, `UPDATE ledger_meta SET total_value_locked = $1 WHERE id = 1`, value)
	if err != nil {
		return fmt.Errorf("set tvl: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("ledger_meta row missing")
	}
	return nil
}

// GetTVL returns the counter without locking (query endpoints only).
func (r *MetaRepo) GetTVL(ctx context.Context) (int64, error) {
	var tvl int64
	err := r.pool.QueryRow(ctx, `SELECT total_value_locked FROM ledger_meta WHERE id = 1`).Scan(&tvl)
	if err != nil {
		return 0, fmt.Errorf("get tvl: %w", err)
	}
	return tvl, nil
}
