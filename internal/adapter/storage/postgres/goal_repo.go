package postgres

import (
	"context"
	"errors"
	"fmt"

	"vaultwise/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GoalRepo implements ports.GoalRepository.
type GoalRepo struct {
	pool Pool
}

// NewGoalRepo creates a new GoalRepo.
func NewGoalRepo(pool Pool) *GoalRepo {
	return &GoalRepo{pool: pool}
}

const goalColumns = `account_id, goal_id, target_amount, current_amount, target_date, description, completed, locked, bonus_apy_bps, created_at`

// Create appends a new goal, assigning the next sequential id for the
// account. Runs within a transaction so the id assignment cannot race.
func (r *GoalRepo) Create(ctx context.Context, tx pgx.Tx, g *domain.SavingsGoal) (int64, error) {
	query := `INSERT INTO savings_goals (` + goalColumns + `)
		VALUES ($1,
			(SELECT COALESCE(MAX(goal_id), 0) + 1 FROM savings_goals WHERE account_id = $1),
			$2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING goal_id`

	var id int64
	err := tx.QueryRow(ctx, query,
		g.AccountID, g.TargetAmount, g.CurrentAmount, g.TargetDate,
		g.Description, g.Completed, g.Locked, g.BonusAPYBps, g.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert savings goal: %w", err)
	}
	return id, nil
}

// GetForUpdate locks and returns one goal, nil if unknown.
func (r *GoalRepo) GetForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, goalID int64) (*domain.SavingsGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM savings_goals
		WHERE account_id = $1 AND goal_id = $2 FOR UPDATE`

	g := &domain.SavingsGoal{}
	err := tx.QueryRow(ctx, query, accountID, goalID).Scan(
		&g.AccountID, &g.GoalID, &g.TargetAmount, &g.CurrentAmount, &g.TargetDate,
		&g.Description, &g.Completed, &g.Locked, &g.BonusAPYBps, &g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get goal for update: %w", err)
	}
	return g, nil
}

// Update persists a goal's mutable fields within a transaction.
func (r *GoalRepo) Update(ctx context.Context, tx pgx.Tx, g *domain.SavingsGoal) error {
	query := `UPDATE savings_goals
		SET current_amount = $1, completed = $2, locked = $3, bonus_apy_bps = $4
		WHERE account_id = $5 AND goal_id = $6`

	tag, err := tx.Exec(ctx, query,
		g.CurrentAmount, g.Completed, g.Locked, g.BonusAPYBps,
		g.AccountID, g.GoalID,
	)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("goal not found: %s/%d", g.AccountID, g.GoalID)
	}
	return nil
}

// List returns all of the account's goals, oldest first.
func (r *GoalRepo) List(ctx context.Context, accountID uuid.UUID) ([]domain.SavingsGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM savings_goals WHERE account_id = $1 ORDER BY goal_id`

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var out []domain.SavingsGoal
	for rows.Next() {
		var g domain.SavingsGoal
		if err := rows.Scan(
			&g.AccountID, &g.GoalID, &g.TargetAmount, &g.CurrentAmount, &g.TargetDate,
			&g.Description, &g.Completed, &g.Locked, &g.BonusAPYBps, &g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return out, nil
}
