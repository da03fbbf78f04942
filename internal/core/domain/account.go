package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountStatus represents the lifecycle state of an account.
type AccountStatus string

const (
	AccountStatusActive    AccountStatus = "ACTIVE"
	AccountStatusSuspended AccountStatus = "SUSPENDED"
)

// Account is the owner of a split configuration, five bucket balances,
// savings goals and (optionally) a payroll recipient list. Operator
// accounts may additionally trigger payroll batch processing.
type Account struct {
	ID           uuid.UUID     `json:"id"`
	Username     string        `json:"username"`
	PasswordHash string        `json:"-"`
	DisplayName  string        `json:"display_name"`
	// CustodyID identifies this account at the external token custody
	// service; all value transfers address accounts by this key.
	CustodyID  string        `json:"custody_id"`
	IsOperator bool          `json:"is_operator"`
	Status     AccountStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// IsActive returns true if the account may invoke ledger operations.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

// BasisPointsDenominator is the weight denominator: 10,000 bp = 100%.
const BasisPointsDenominator = 10_000

// SplitWeights holds the five per-bucket allocation weights in basis
// points. A valid configuration sums to exactly 10,000.
type SplitWeights struct {
	Billings  int64 `json:"billings"`
	Savings   int64 `json:"savings"`
	Growth    int64 `json:"growth"`
	Instant   int64 `json:"instant"`
	Spendable int64 `json:"spendable"`
}

// Sum returns the total of all five weights.
func (w SplitWeights) Sum() int64 {
	return w.Billings + w.Savings + w.Growth + w.Instant + w.Spendable
}

// For returns the weight configured for the given bucket.
func (w SplitWeights) For(b Bucket) int64 {
	switch b {
	case BucketBillings:
		return w.Billings
	case BucketSavings:
		return w.Savings
	case BucketGrowth:
		return w.Growth
	case BucketInstant:
		return w.Instant
	case BucketSpendable:
		return w.Spendable
	}
	return 0
}

// Valid reports whether the weights form a legal configuration: each
// weight within [0, 10000] and the total exactly 10,000.
func (w SplitWeights) Valid() bool {
	for _, b := range Buckets {
		v := w.For(b)
		if v < 0 || v > BasisPointsDenominator {
			return false
		}
	}
	return w.Sum() == BasisPointsDenominator
}

// SplitConfig is an account's deposit allocation configuration.
type SplitConfig struct {
	AccountID uuid.UUID    `json:"account_id"`
	Weights   SplitWeights `json:"weights"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// BucketBalance is the ledger entry for one (account, bucket) pair.
// Balance is a non-negative integer in the token's smallest unit.
type BucketBalance struct {
	AccountID       uuid.UUID  `json:"account_id"`
	Bucket          Bucket     `json:"bucket"`
	Balance         int64      `json:"balance"`
	YieldBalance    int64      `json:"yield_balance"`
	IsYielding      bool       `json:"is_yielding"`
	LastYieldUpdate *time.Time `json:"last_yield_update,omitempty"`
}

// WithdrawLimit is an account's optional daily withdrawal ceiling.
// Zero means unlimited.
type WithdrawLimit struct {
	AccountID  uuid.UUID `json:"account_id"`
	DailyLimit int64     `json:"daily_limit"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// EmergencyRequest records a pending time-delayed emergency withdrawal
// request. A new request overwrites any prior one.
type EmergencyRequest struct {
	AccountID   uuid.UUID `json:"account_id"`
	RequestedAt time.Time `json:"requested_at"`
}

// DayKey returns the calendar-day key used for daily withdrawal
// counters: floor(unix seconds / 86400). Counters for a new day start
// at zero implicitly; old day keys are never reset.
func DayKey(t time.Time) int64 {
	return t.Unix() / 86_400
}
