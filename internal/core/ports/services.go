package ports

import (
	"context"
	"time"

	"vaultwise/internal/core/domain"

	"github.com/google/uuid"
)

// TokenTransferor wraps the external fungible-token transfer primitive.
// Amounts are opaque integers in the token's smallest unit; the engine
// never interprets token metadata. An error means the transfer did not
// happen and the caller must leave no state change behind.
type TokenTransferor interface {
	// Transfer moves amount from the ledger's custody account to the
	// given recipient.
	Transfer(ctx context.Context, to string, amount int64) error
	// TransferFrom pulls amount from the given holder into the
	// ledger's custody account.
	TransferFrom(ctx context.Context, from string, amount int64) error
	// Balance returns the ledger custody account's available balance.
	Balance(ctx context.Context) (int64, error)
}

// OpGuard blocks re-entrant ledger calls for an account. Acquire
// returns false while another mutating operation for the same account
// is in flight, so a misbehaving token callback cannot re-invoke a
// withdrawal before its balance decrement is durable.
type OpGuard interface {
	Acquire(ctx context.Context, accountID uuid.UUID) (bool, error)
	Release(ctx context.Context, accountID uuid.UUID) error
}

// EventPublisher emits ledger events to the outbound stream. The
// publisher assigns the per-account nonce.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// Clock supplies the current time. Time-gated paths (daily limits,
// emergency delay, payroll schedule floor) read it so tests can steer
// the clock.
type Clock interface {
	Now() time.Time
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// SignatureService handles HMAC-SHA256 signing and verification for
// custody API requests.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(accountID uuid.UUID, operator bool) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccountID uuid.UUID
	Operator  bool
}

// --- Service Ports (Business Logic) ---

// LedgerService is the split allocator, bucket ledger and rate/access
// guard: every account-scoped balance operation.
type LedgerService interface {
	SetSplitConfig(ctx context.Context, accountID uuid.UUID, weights domain.SplitWeights) error
	DepositAndSplit(ctx context.Context, accountID uuid.UUID, amount int64) (*DepositResult, error)
	TransferBetweenBuckets(ctx context.Context, accountID uuid.UUID, from, to domain.Bucket, amount int64) error
	WithdrawFromBucket(ctx context.Context, accountID uuid.UUID, bucket domain.Bucket, amount int64) error
	SetDailyWithdrawLimit(ctx context.Context, accountID uuid.UUID, limit int64) error
	RequestEmergencyWithdraw(ctx context.Context, accountID uuid.UUID) (*domain.EmergencyRequest, error)
	ExecuteEmergencyWithdraw(ctx context.Context, accountID uuid.UUID, bucket domain.Bucket, amount int64) error
	GetBalances(ctx context.Context, accountID uuid.UUID) ([]domain.BucketBalance, error)
	GetSplitConfig(ctx context.Context, accountID uuid.UUID) (*domain.SplitConfig, error)
}

// DepositResult reports how a deposit was allocated.
type DepositResult struct {
	Amount      int64
	Fee         int64
	Net         int64
	Allocations map[domain.Bucket]int64
	// Overflowed is the amount the billings overflow rule moved on to
	// the growth bucket, if any.
	Overflowed int64
}

// GoalService manages lockable savings goals.
type GoalService interface {
	CreateSavingsGoal(ctx context.Context, accountID uuid.UUID, target int64, targetDate time.Time, description string) (*domain.SavingsGoal, error)
	ContributeToGoal(ctx context.Context, accountID uuid.UUID, goalID int64, amount int64) (*domain.SavingsGoal, error)
	ListGoals(ctx context.Context, accountID uuid.UUID) ([]domain.SavingsGoal, error)
}

// PayrollService manages recipient lists, scheduling and batch
// disbursement.
type PayrollService interface {
	AddEmployee(ctx context.Context, employerID uuid.UUID, req AddEmployeeRequest) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employerID uuid.UUID, employeeID int64, req UpdateEmployeeRequest) (*domain.Employee, error)
	RemoveEmployee(ctx context.Context, employerID uuid.UUID, employeeID int64) error
	ListEmployees(ctx context.Context, employerID uuid.UUID) ([]domain.Employee, error)
	SchedulePayroll(ctx context.Context, employerID uuid.UUID, date time.Time) (*domain.PayrollBatch, error)
	ProcessPayroll(ctx context.Context, operatorID, employerID uuid.UUID, batchID int64) (*ProcessPayrollResult, error)
	GetBatch(ctx context.Context, employerID uuid.UUID, batchID int64) (*domain.PayrollBatch, error)
	ListBatches(ctx context.Context, employerID uuid.UUID) ([]domain.PayrollBatch, error)
	ListPaymentRecords(ctx context.Context, employerID uuid.UUID, batchID int64) ([]domain.PaymentRecord, error)
}

// AddEmployeeRequest holds validated input for adding a recipient.
type AddEmployeeRequest struct {
	Recipient  string
	Salary     int64
	PaymentDay int
	Name       string
	Email      string
}

// UpdateEmployeeRequest holds input for updating a recipient. Nil
// fields are left unchanged.
type UpdateEmployeeRequest struct {
	Salary     *int64
	PaymentDay *int
	Name       *string
	Email      *string
}

// ProcessPayrollResult summarises one batch run.
type ProcessPayrollResult struct {
	Batch     *domain.PayrollBatch
	Paid      int
	FailedN   int
	PaidTotal int64
	Fee       int64
}

// AuthService defines account registration and login. Identity is the
// pre-condition every ledger operation consumes.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

// RegisterRequest holds input for account registration.
type RegisterRequest struct {
	Username    string
	Password    string
	DisplayName string
	CustodyID   string
}
