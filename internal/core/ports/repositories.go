package ports

import (
	"context"
	"time"

	"vaultwise/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
}

// SplitConfigRepository defines persistence for split configurations.
type SplitConfigRepository interface {
	Upsert(ctx context.Context, cfg *domain.SplitConfig) error
	Get(ctx context.Context, accountID uuid.UUID) (*domain.SplitConfig, error)
}

// BucketRepository defines persistence for per-bucket balances.
// Methods accepting pgx.Tx run inside transaction blocks with
// pessimistic locking; every balance mutation goes through them.
type BucketRepository interface {
	// GetBalancesForUpdate locks and returns all existing bucket rows
	// for the account, keyed by bucket. Buckets never deposited into
	// have no row yet.
	GetBalancesForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) (map[domain.Bucket]*domain.BucketBalance, error)
	// UpsertBalance writes the absolute balance for one bucket.
	UpsertBalance(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, bucket domain.Bucket, balance int64) error
	// ListBalances is the non-locking read used by query endpoints.
	ListBalances(ctx context.Context, accountID uuid.UUID) ([]domain.BucketBalance, error)
}

// LedgerMetaRepository manages the global total-value-locked counter.
// TVL must change in the same transaction as the balance change it
// mirrors; sum(bucket balances) == TVL is a core invariant.
type LedgerMetaRepository interface {
	GetTVLForUpdate(ctx context.Context, tx pgx.Tx) (int64, error)
	SetTVL(ctx context.Context, tx pgx.Tx, value int64) error
	GetTVL(ctx context.Context) (int64, error)
}

// GuardRepository defines persistence for withdrawal limits, day-keyed
// withdrawal counters and emergency withdrawal requests.
type GuardRepository interface {
	SetDailyLimit(ctx context.Context, accountID uuid.UUID, limit int64) error
	GetDailyLimit(ctx context.Context, accountID uuid.UUID) (int64, error)
	GetDailyWithdrawn(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, day int64) (int64, error)
	AddDailyWithdrawn(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, day int64, amount int64) error
	UpsertEmergencyRequest(ctx context.Context, accountID uuid.UUID, requestedAt time.Time) error
	GetEmergencyRequest(ctx context.Context, accountID uuid.UUID) (*domain.EmergencyRequest, error)
	ClearEmergencyRequest(ctx context.Context, tx pgx.Tx, accountID uuid.UUID) error
}

// GoalRepository defines persistence for savings goals. Goal ids are
// sequential per account and assigned by Create.
type GoalRepository interface {
	Create(ctx context.Context, tx pgx.Tx, goal *domain.SavingsGoal) (int64, error)
	GetForUpdate(ctx context.Context, tx pgx.Tx, accountID uuid.UUID, goalID int64) (*domain.SavingsGoal, error)
	Update(ctx context.Context, tx pgx.Tx, goal *domain.SavingsGoal) error
	List(ctx context.Context, accountID uuid.UUID) ([]domain.SavingsGoal, error)
}

// PayrollRepository defines persistence for employees, batches and
// payment records. Employee and batch ids are sequential per employer.
type PayrollRepository interface {
	CreateEmployee(ctx context.Context, tx pgx.Tx, emp *domain.Employee) (int64, error)
	GetEmployee(ctx context.Context, employerID uuid.UUID, employeeID int64) (*domain.Employee, error)
	GetActiveByRecipient(ctx context.Context, employerID uuid.UUID, recipient string) (*domain.Employee, error)
	ListActiveEmployees(ctx context.Context, employerID uuid.UUID) ([]domain.Employee, error)
	ListEmployees(ctx context.Context, employerID uuid.UUID) ([]domain.Employee, error)
	CountActiveEmployees(ctx context.Context, employerID uuid.UUID) (int, error)
	UpdateEmployee(ctx context.Context, emp *domain.Employee) error
	DeactivateEmployee(ctx context.Context, employerID uuid.UUID, employeeID int64) error
	// RecordPayment bumps an employee's running totals after a
	// successful transfer inside processPayroll.
	RecordPayment(ctx context.Context, tx pgx.Tx, employerID uuid.UUID, employeeID int64, amount int64, paidAt time.Time) error

	CreateBatch(ctx context.Context, tx pgx.Tx, batch *domain.PayrollBatch) (int64, error)
	GetBatch(ctx context.Context, employerID uuid.UUID, batchID int64) (*domain.PayrollBatch, error)
	GetBatchForUpdate(ctx context.Context, tx pgx.Tx, employerID uuid.UUID, batchID int64) (*domain.PayrollBatch, error)
	MarkBatchProcessed(ctx context.Context, tx pgx.Tx, batch *domain.PayrollBatch) error
	ListBatches(ctx context.Context, employerID uuid.UUID) ([]domain.PayrollBatch, error)

	AppendPaymentRecord(ctx context.Context, tx pgx.Tx, rec *domain.PaymentRecord) error
	ListPaymentRecords(ctx context.Context, employerID uuid.UUID, batchID int64) ([]domain.PaymentRecord, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
