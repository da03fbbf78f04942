package postgres

import (
	"context"
	"errors"
	"fmt"

	"vaultwise/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SplitConfigRepo implements ports.SplitConfigRepository.
type SplitConfigRepo struct {
	pool Pool
}

// NewSplitConfigRepo creates a new SplitConfigRepo.
func NewSplitConfigRepo(pool Pool) *SplitConfigRepo {
	return &SplitConfigRepo{pool: pool}
}

// Upsert replaces the account's split configuration.
func (r *SplitConfigRepo) Upsert(ctx context.Context, cfg *domain.SplitConfig) error {
	query := `INSERT INTO split_configs (account_id, billings_bps, savings_bps, growth_bps, instant_bps, spendable_bps, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (account_id) DO UPDATE SET
			billings_bps = EXCLUDED.billings_bps,
			savings_bps = EXCLUDED.savings_bps,
			growth_bps = EXCLUDED.growth_bps,
			instant_bps = EXCLUDED.instant_bps,
			spendable_bps = EXCLUDED.spendable_bps,
			updated_at = EXCLUDED.updated_at`

	_, err := r.pool.Exec(ctx, query,
		cfg.AccountID,
		cfg.Weights.Billings, cfg.Weights.Savings, cfg.Weights.Growth,
		cfg.Weights.Instant, cfg.Weights.Spendable,
		cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert split config: %w", err)
	}
	return nil
}

// Get fetches the account's split configuration, nil if none is set.
func (r *SplitConfigRepo) Get(ctx context.Context, accountID uuid.UUID) (*domain.SplitConfig, error) {
	query := `SELECT account_id, billings_bps, savings_bps, growth_bps, instant_bps, spendable_bps, updated_at
		FROM split_configs WHERE account_id = $1`

	cfg := &domain.SplitConfig{}
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&cfg.AccountID,
		&cfg.Weights.Billings, &cfg.Weights.Savings, &cfg.Weights.Growth,
		&cfg.Weights.Instant, &cfg.Weights.Spendable,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get split config: %w", err)
	}
	return cfg, nil
}
