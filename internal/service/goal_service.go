package service

import (
	"context"
	"fmt"
	"time"

	"vaultwise/config"
	"vaultwise/internal/core/domain"
	"vaultwise/internal/core/ports"
	"vaultwise/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GoalServiceImpl implements ports.GoalService. Goals are funded from
// the savings bucket; the moved value stays inside the ledger, so TVL
// is untouched by contributions.
type GoalServiceImpl struct {
	goalRepo   ports.GoalRepository
	bucketRepo ports.BucketRepository
	opGuard    ports.OpGuard
	events     ports.EventPublisher
	transactor ports.DBTransactor
	clock      ports.Clock
	cfg        config.LedgerConfig
	log        zerolog.Logger
}

// NewGoalService creates a new GoalServiceImpl.
func NewGoalService(
	goalRepo ports.GoalRepository,
	bucketRepo ports.BucketRepository,
	opGuard ports.OpGuard,
	events ports.EventPublisher,
	transactor ports.DBTransactor,
	clock ports.Clock,
	cfg config.LedgerConfig,
	log zerolog.Logger,
) *GoalServiceImpl {
	return &GoalServiceImpl{
		goalRepo:   goalRepo,
		bucketRepo: bucketRepo,
		opGuard:    opGuard,
		events:     events,
		transactor: transactor,
		clock:      clock,
		cfg:        cfg,
		log:        log,
	}
}

// CreateSavingsGoal opens a new locked goal with a sequential id.
func (s *GoalServiceImpl) CreateSavingsGoal(ctx context.Context, accountID uuid.UUID, target int64, targetDate time.Time, description string) (*domain.SavingsGoal, error) {
	if target <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if description == "" {
		return nil, apperror.ErrEmptyDescription()
	}
	now := s.clock.Now()
	if !targetDate.After(now) {
		return nil, apperror.ErrInvalidDate("target date must be in the future")
	}
	if targetDate.After(now.Add(s.cfg.GoalMaxHorizon)) {
		return nil, apperror.ErrInvalidDate("target date too far in the future")
	}

	goal := &domain.SavingsGoal{
		AccountID:     accountID,
		TargetAmount:  target,
		CurrentAmount: 0,
		TargetDate:    targetDate.UTC(),
		Description:   description,
		Completed:     false,
		Locked:        true,
		CreatedAt:     now.UTC(),
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	goalID, err := s.goalRepo.Create(ctx, dbTx, goal)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create goal: %w", err))
	}
	goal.GoalID = goalID

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewGoalEvent(domain.EventGoalCreated, accountID, goalID, map[string]any{
		"target_amount": target,
		"target_date":   goal.TargetDate,
	}, now.UTC()))

	s.log.Info().
		Str("account_id", accountID.String()).
		Int64("goal_id", goalID).
		Int64("target", target).
		Msg("savings goal created")
	return goal, nil
}

// ContributeToGoal moves amount from the savings bucket into the goal.
// Crossing the target completes the goal once and fixes its bonus rate;
// a completed goal rejects all further contributions.
func (s *GoalServiceImpl) ContributeToGoal(ctx context.Context, accountID uuid.UUID, goalID int64, amount int64) (*domain.SavingsGoal, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	ok, err := s.opGuard.Acquire(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("acquire op guard: %w", err))
	}
	if !ok {
		return nil, apperror.ErrOperationInProgress()
	}
	defer func() {
		if err := s.opGuard.Release(ctx, accountID); err != nil {
			s.log.Warn().Err(err).Str("account_id", accountID.String()).Msg("failed to release op guard")
		}
	}()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	goal, err := s.goalRepo.GetForUpdate(ctx, dbTx, accountID, goalID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock goal: %w", err))
	}
	if goal == nil {
		return nil, apperror.ErrNotFound("goal")
	}

	now := s.clock.Now()
	switch {
	case goal.Completed:
		return nil, apperror.ErrGoalNotContributable("goal already completed")
	case !goal.Locked:
		return nil, apperror.ErrGoalNotContributable("goal is not locked")
	case goal.IsExpired(now):
		return nil, apperror.ErrGoalNotContributable("goal target date has passed")
	}

	balances, err := s.bucketRepo.GetBalancesForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balances: %w", err))
	}
	savings := balanceOf(balances, domain.BucketSavings)
	if savings < amount {
		return nil, apperror.ErrInsufficientBalance(domain.BucketSavings.String())
	}

	if err := s.bucketRepo.UpsertBalance(ctx, dbTx, accountID, domain.BucketSavings, savings-amount); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("write savings balance: %w", err))
	}

	goal.CurrentAmount += amount
	completed := false
	if goal.CurrentAmount >= goal.TargetAmount {
		goal.Completed = true
		goal.BonusAPYBps = s.cfg.GoalBonusAPYBps
		completed = true
	}
	if err := s.goalRepo.Update(ctx, dbTx, goal); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update goal: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	if completed {
		s.publish(ctx, domain.NewGoalEvent(domain.EventGoalCompleted, accountID, goalID, map[string]any{
			"current_amount": goal.CurrentAmount,
			"bonus_apy_bps":  goal.BonusAPYBps,
		}, now.UTC()))
	}

	s.log.Info().
		Str("account_id", accountID.String()).
		Int64("goal_id", goalID).
		Int64("amount", amount).
		Bool("completed", completed).
		Msg("goal contribution")
	return goal, nil
}

// ListGoals returns all of the account's goals.
func (s *GoalServiceImpl) ListGoals(ctx context.Context, accountID uuid.UUID) ([]domain.SavingsGoal, error) {
	goals, err := s.goalRepo.List(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list goals: %w", err))
	}
	return goals, nil
}

func (s *GoalServiceImpl) publish(ctx context.Context, ev domain.Event) {
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("type", string(ev.Type)).Msg("failed to publish event")
	}
}
