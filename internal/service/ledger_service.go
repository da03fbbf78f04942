package service

import (
	"context"
	"fmt"

	"vaultwise/config"
	"vaultwise/internal/core/domain"
	"vaultwise/internal/core/ports"
	"vaultwise/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.LedgerService: split allocation,
// bucket balance mutations, withdrawal limits and the emergency path.
// Every balance mutation runs inside one DB transaction with the
// account's bucket rows locked, and commits only after the external
// transfer (if any) succeeded.
type LedgerServiceImpl struct {
	accountRepo ports.AccountRepository
	splitRepo   ports.SplitConfigRepository
	bucketRepo  ports.BucketRepository
	metaRepo    ports.LedgerMetaRepository
	guardRepo   ports.GuardRepository
	transferor  ports.TokenTransferor
	opGuard     ports.OpGuard
	events      ports.EventPublisher
	transactor  ports.DBTransactor
	clock       ports.Clock
	cfg         config.LedgerConfig
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	accountRepo ports.AccountRepository,
	splitRepo ports.SplitConfigRepository,
	bucketRepo ports.BucketRepository,
	metaRepo ports.LedgerMetaRepository,
	guardRepo ports.GuardRepository,
	transferor ports.TokenTransferor,
	opGuard ports.OpGuard,
	events ports.EventPublisher,
	transactor ports.DBTransactor,
	clock ports.Clock,
	cfg config.LedgerConfig,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accountRepo: accountRepo,
		splitRepo:   splitRepo,
		bucketRepo:  bucketRepo,
		metaRepo:    metaRepo,
		guardRepo:   guardRepo,
		transferor:  transferor,
		opGuard:     opGuard,
		events:      events,
		transactor:  transactor,
		clock:       clock,
		cfg:         cfg,
		log:         log,
	}
}

// SetSplitConfig replaces the account's allocation weights. The new
// configuration applies to future deposits only.
func (s *LedgerServiceImpl) SetSplitConfig(ctx context.Context, accountID uuid.UUID, weights domain.SplitWeights) error {
	if !weights.Valid() {
		return apperror.ErrInvalidWeights()
	}

	cfg := &domain.SplitConfig{
		AccountID: accountID,
		Weights:   weights,
		UpdatedAt: s.clock.Now().UTC(),
	}
	if err := s.splitRepo.Upsert(ctx, cfg); err != nil {
		return apperror.InternalError(fmt.Errorf("upsert split config: %w", err))
	}

	s.log.Info().
		Str("account_id", accountID.String()).
		Int64("billings", weights.Billings).
		Int64("savings", weights.Savings).
		Int64("growth", weights.Growth).
		Int64("instant", weights.Instant).
		Int64("spendable", weights.Spendable).
		Msg("split config updated")
	return nil
}

// DepositAndSplit pulls amount from the account's custody identity,
// takes the protocol fee and allocates the net across the five buckets
// by the account's weights.
func (s *LedgerServiceImpl) DepositAndSplit(ctx context.Context, accountID uuid.UUID, amount int64) (*ports.DepositResult, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if amount < s.cfg.MinDeposit {
		return nil, apperror.ErrDepositTooSmall(s.cfg.MinDeposit)
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}

	splitCfg, err := s.splitRepo.Get(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load split config: %w", err))
	}
	if splitCfg == nil || splitCfg.Weights.Sum() == 0 {
		return nil, apperror.ErrNoSplitConfig()
	}

	release, err := s.acquireGuard(ctx, accountID)
	if err != nil {
		return nil, err
	}
	defer release()

	fee := amount * s.cfg.FeeBps / domain.BasisPointsDenominator
	net := amount - fee

	// Floor division per bucket; the remainder accrues to spendable so
	// the increments sum to net exactly.
	allocations := make(map[domain.Bucket]int64, len(domain.Buckets))
	allocated := int64(0)
	for _, b := range domain.Buckets {
		share := net * splitCfg.Weights.For(b) / domain.BasisPointsDenominator
		allocations[b] = share
		allocated += share
	}
	allocations[domain.BucketSpendable] += net - allocated

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	balances, err := s.bucketRepo.GetBalancesForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock balances: %w", err))
	}

	for _, b := range domain.Buckets {
		if allocations[b] == 0 {
			continue
		}
		if err := s.bucketRepo.UpsertBalance(ctx, dbTx, accountID, b, balanceOf(balances, b)+allocations[b]); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("write %s balance: %w", b, err))
		}
	}

	// Billings overflow: excess above the threshold spills to growth.
	newBillings := balanceOf(balances, domain.BucketBillings) + allocations[domain.BucketBillings]
	overflowed := int64(0)
	if newBillings > s.cfg.BillingsOverflowThreshold {
		overflowed = newBillings - s.cfg.BillingsOverflowThreshold
		if err := s.bucketRepo.UpsertBalance(ctx, dbTx, accountID, domain.BucketBillings, s.cfg.BillingsOverflowThreshold); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("apply billings overflow: %w", err))
		}
		newGrowth := balanceOf(balances, domain.BucketGrowth) + allocations[domain.BucketGrowth] + overflowed
		if err := s.bucketRepo.UpsertBalance(ctx, dbTx, accountID, domain.BucketGrowth, newGrowth); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("apply billings overflow: %w", err))
		}
	}

	tvl, err := s.metaRepo.GetTVLForUpdate(ctx, dbTx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock tvl: %w", err))
	}
	if err := s.metaRepo.SetTVL(ctx, dbTx, tvl+net); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update tvl: %w", err))
	}

	// Pull the deposit, then pay the fee out. Either failure aborts the
	// whole deposit; the deferred rollback discards the staged writes.
	if err := s.transferor.TransferFrom(ctx, account.CustodyID, amount); err != nil {
		return nil, apperror.ErrTransferFailed(fmt.Errorf("pull deposit: %w", err))
	}
	if fee > 0 {
		if err := s.transferor.Transfer(ctx, s.cfg.FeeRecipient, fee); err != nil {
			return nil, apperror.ErrTransferFailed(fmt.Errorf("pay fee: %w", err))
		}
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	now := s.clock.Now().UTC()
	s.publish(ctx, domain.NewFundsSplitEvent(accountID, amount, fee, splitCfg.Weights, now))
	if overflowed > 0 {
		s.publish(ctx, domain.NewBucketTransferEvent(accountID, domain.BucketBillings, domain.BucketGrowth, overflowed, now))
	}

	s.log.Info().
		Str("account_id", accountID.String()).
		Int64("amount", amount).
		Int64("fee", fee).
		Int64("overflowed", overflowed).
		Msg("deposit split")

	return &ports.DepositResult{
		Amount:      amount,
		Fee:         fee,
		Net:         net,
		Allocations: allocations,
		Overflowed:  overflowed,
	}, nil
}

// TransferBetweenBuckets moves amount between two of the account's own
// buckets. Growth participates freely here; only the external exit is
// restricted.
func (s *LedgerServiceImpl) TransferBetweenBuckets(ctx context.Context, accountID uuid.UUID, from, to domain.Bucket, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	if from == to {
		return apperror.Validation("from and to buckets must differ")
	}

	release, err := s.acquireGuard(ctx, accountID)
	if err != nil {
		return err
	}
	defer release()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	balances, err := s.bucketRepo.GetBalancesForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock balances: %w", err))
	}

	fromBal := balanceOf(balances, from)
	if fromBal < amount {
		return apperror.ErrInsufficientBalance(from.String())
	}

	if err := s.bucketRepo.UpsertBalance(ctx, dbTx, accountID, from, fromBal-amount); err != nil {
		return apperror.InternalError(fmt.Errorf("write %s balance: %w", from, err))
	}

	newTo := balanceOf(balances, to) + amount
	overflowed := int64(0)
	if to == domain.BucketBillings && newTo > s.cfg.BillingsOverflowThreshold {
		overflowed = newTo - s.cfg.BillingsOverflowThreshold
		newTo = s.cfg.BillingsOverflowThreshold
		growth := balanceOf(balances, domain.BucketGrowth)
		if from == domain.BucketGrowth {
			growth -= amount
		}
		if err := s.bucketRepo.UpsertBalance(ctx, dbTx, accountID, domain.BucketGrowth, growth+overflowed); err != nil {
			return apperror.InternalError(fmt.Errorf("apply billings overflow: %w", err))
		}
	}
	if err := s.bucketRepo.UpsertBalance(ctx, dbTx, accountID, to, newTo); err != nil {
		return apperror.InternalError(fmt.Errorf("write %s balance: %w", to, err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	now := s.clock.Now().UTC()
	s.publish(ctx, domain.NewBucketTransferEvent(accountID, from, to, amount, now))
	if overflowed > 0 {
		s.publish(ctx, domain.NewBucketTransferEvent(accountID, domain.BucketBillings, domain.BucketGrowth, overflowed, now))
	}

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("from", from.String()).
		Str("to", to.String()).
		Int64("amount", amount).
		Msg("bucket transfer")
	return nil
}

// WithdrawFromBucket sends amount out of the ledger to the account's
// custody identity, subject to the growth restriction and the daily
// withdrawal limit.
func (s *LedgerServiceImpl) WithdrawFromBucket(ctx context.Context, accountID uuid.UUID, bucket domain.Bucket, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	if !bucket.AllowsDirectWithdrawal() {
		return apperror.ErrGrowthWithdrawal()
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil {
		return apperror.ErrNotFound("account")
	}

	release, err := s.acquireGuard(ctx, accountID)
	if err != nil {
		return err
	}
	defer release()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	limit, err := s.guardRepo.GetDailyLimit(ctx, accountID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load daily limit: %w", err))
	}
	day := domain.DayKey(s.clock.Now())
	if limit > 0 {
		withdrawn, err := s.guardRepo.GetDailyWithdrawn(ctx, dbTx, accountID, day)
		if err != nil {
			return apperror.InternalError(fmt.Errorf("load daily counter: %w", err))
		}
		if withdrawn+amount > limit {
			return apperror.ErrDailyLimitExceeded()
		}
	}

	if err := s.debitBucket(ctx, dbTx, accountID, bucket, amount); err != nil {
		return err
	}
	if err := s.guardRepo.AddDailyWithdrawn(ctx, dbTx, accountID, day, amount); err != nil {
		return apperror.InternalError(fmt.Errorf("bump daily counter: %w", err))
	}

	if err := s.transferor.Transfer(ctx, account.CustodyID, amount); err != nil {
		return apperror.ErrTransferFailed(err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewFundsWithdrawnEvent(accountID, bucket, amount, s.clock.Now().UTC()))

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("bucket", bucket.String()).
		Int64("amount", amount).
		Msg("withdrawal executed")
	return nil
}

// SetDailyWithdrawLimit sets the account's daily ceiling. Zero removes
// the limit. Already-counted withdrawals for today keep counting
// against a newly set limit.
func (s *LedgerServiceImpl) SetDailyWithdrawLimit(ctx context.Context, accountID uuid.UUID, limit int64) error {
	if limit < 0 {
		return apperror.ErrInvalidAmount()
	}
	if err := s.guardRepo.SetDailyLimit(ctx, accountID, limit); err != nil {
		return apperror.InternalError(fmt.Errorf("set daily limit: %w", err))
	}
	s.log.Info().
		Str("account_id", accountID.String()).
		Int64("limit", limit).
		Msg("daily withdraw limit updated")
	return nil
}

// RequestEmergencyWithdraw opens (or restarts) the account's emergency
// window. The delay runs from this request; a repeated request resets
// the timer.
func (s *LedgerServiceImpl) RequestEmergencyWithdraw(ctx context.Context, accountID uuid.UUID) (*domain.EmergencyRequest, error) {
	now := s.clock.Now().UTC()
	if err := s.guardRepo.UpsertEmergencyRequest(ctx, accountID, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("record emergency request: %w", err))
	}

	s.publish(ctx, domain.NewEmergencyEvent(domain.EventEmergencyWithdrawRequested, accountID, map[string]any{
		"requested_at": now,
	}, now))

	s.log.Info().
		Str("account_id", accountID.String()).
		Time("requested_at", now).
		Msg("emergency withdrawal requested")

	return &domain.EmergencyRequest{AccountID: accountID, RequestedAt: now}, nil
}

// ExecuteEmergencyWithdraw withdraws after the emergency delay has
// elapsed, bypassing the daily limit. The pending request is consumed
// in the same transaction, so a second execute needs a new request and
// a new delay.
func (s *LedgerServiceImpl) ExecuteEmergencyWithdraw(ctx context.Context, accountID uuid.UUID, bucket domain.Bucket, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	if !bucket.AllowsDirectWithdrawal() {
		return apperror.ErrGrowthWithdrawal()
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load account: %w", err))
	}
	if account == nil {
		return apperror.ErrNotFound("account")
	}

	req, err := s.guardRepo.GetEmergencyRequest(ctx, accountID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load emergency request: %w", err))
	}
	if req == nil {
		return apperror.ErrNoEmergencyRequest()
	}
	now := s.clock.Now()
	if now.Before(req.RequestedAt.Add(s.cfg.EmergencyDelay)) {
		return apperror.ErrEmergencyDelayNotMet()
	}

	release, err := s.acquireGuard(ctx, accountID)
	if err != nil {
		return err
	}
	defer release()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := s.debitBucket(ctx, dbTx, accountID, bucket, amount); err != nil {
		return err
	}

	if err := s.guardRepo.ClearEmergencyRequest(ctx, dbTx, accountID); err != nil {
		return apperror.InternalError(fmt.Errorf("clear emergency request: %w", err))
	}

	if err := s.transferor.Transfer(ctx, account.CustodyID, amount); err != nil {
		return apperror.ErrTransferFailed(err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewEmergencyEvent(domain.EventEmergencyWithdrawExecuted, accountID, map[string]any{
		"bucket": bucket.String(),
		"amount": amount,
	}, s.clock.Now().UTC()))

	s.log.Info().
		Str("account_id", accountID.String()).
		Str("bucket", bucket.String()).
		Int64("amount", amount).
		Msg("emergency withdrawal executed")
	return nil
}

// GetBalances returns the account's bucket balances without locking.
func (s *LedgerServiceImpl) GetBalances(ctx context.Context, accountID uuid.UUID) ([]domain.BucketBalance, error) {
	balances, err := s.bucketRepo.ListBalances(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list balances: %w", err))
	}
	return balances, nil
}

// GetSplitConfig returns the account's current allocation weights.
func (s *LedgerServiceImpl) GetSplitConfig(ctx context.Context, accountID uuid.UUID) (*domain.SplitConfig, error) {
	cfg, err := s.splitRepo.Get(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load split config: %w", err))
	}
	if cfg == nil {
		return nil, apperror.ErrNoSplitConfig()
	}
	return cfg, nil
}

// debitBucket locks the account's balances, checks sufficiency and
// stages the bucket decrement plus the matching TVL decrement.
func (s *LedgerServiceImpl) debitBucket(ctx context.Context, dbTx pgx.Tx, accountID uuid.UUID, bucket domain.Bucket, amount int64) error {
	balances, err := s.bucketRepo.GetBalancesForUpdate(ctx, dbTx, accountID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock balances: %w", err))
	}

	bal := balanceOf(balances, bucket)
	if bal < amount {
		return apperror.ErrInsufficientBalance(bucket.String())
	}
	if err := s.bucketRepo.UpsertBalance(ctx, dbTx, accountID, bucket, bal-amount); err != nil {
		return apperror.InternalError(fmt.Errorf("write %s balance: %w", bucket, err))
	}

	tvl, err := s.metaRepo.GetTVLForUpdate(ctx, dbTx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock tvl: %w", err))
	}
	if err := s.metaRepo.SetTVL(ctx, dbTx, tvl-amount); err != nil {
		return apperror.InternalError(fmt.Errorf("update tvl: %w", err))
	}
	return nil
}

// acquireGuard takes the account's re-entrancy guard and returns the
// release func.
func (s *LedgerServiceImpl) acquireGuard(ctx context.Context, accountID uuid.UUID) (func(), error) {
	ok, err := s.opGuard.Acquire(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("acquire op guard: %w", err))
	}
	if !ok {
		return nil, apperror.ErrOperationInProgress()
	}
	return func() {
		if err := s.opGuard.Release(ctx, accountID); err != nil {
			s.log.Warn().Err(err).Str("account_id", accountID.String()).Msg("failed to release op guard")
		}
	}, nil
}

// publish emits an event best-effort. Stream failures never fail the
// committed operation.
func (s *LedgerServiceImpl) publish(ctx context.Context, ev domain.Event) {
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("type", string(ev.Type)).Msg("failed to publish event")
	}
}

func balanceOf(balances map[domain.Bucket]*domain.BucketBalance, b domain.Bucket) int64 {
	if bal, ok := balances[b]; ok {
		return bal.Balance
	}
	return 0
}
