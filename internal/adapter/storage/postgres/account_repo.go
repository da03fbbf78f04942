package postgres

import (
	"context"
	"errors"
	"fmt"

	"vaultwise/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

const accountColumns = `id, username, password_hash, display_name, custody_id, is_operator, status, created_at, updated_at`

// Create inserts a new account.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Username, a.PasswordHash, a.DisplayName, a.CustodyID,
		a.IsOperator, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account by its UUID.
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, id))
}

// GetByUsername fetches an account by username.
func (r *AccountRepo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE username = $1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, username))
}

func (r *AccountRepo) scanAccount(row pgx.Row) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.DisplayName, &a.CustodyID,
		&a.IsOperator, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return a, nil
}
