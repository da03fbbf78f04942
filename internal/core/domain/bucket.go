package domain

import "fmt"

// Bucket is one of the five named sub-accounts an account's value is
// allocated across. The set is closed: balances only ever exist for
// these five names.
type Bucket string

const (
	BucketBillings  Bucket = "billings"
	BucketSavings   Bucket = "savings"
	BucketGrowth    Bucket = "growth"
	BucketInstant   Bucket = "instant"
	BucketSpendable Bucket = "spendable"
)

// Buckets lists every bucket in allocation order. The order matters:
// deposit splitting iterates it, and the rounding remainder accrues to
// the last entry (spendable).
var Buckets = [5]Bucket{
	BucketBillings,
	BucketSavings,
	BucketGrowth,
	BucketInstant,
	BucketSpendable,
}

// ParseBucket converts a string into a Bucket, rejecting unknown names.
func ParseBucket(s string) (Bucket, error) {
	switch Bucket(s) {
	case BucketBillings, BucketSavings, BucketGrowth, BucketInstant, BucketSpendable:
		return Bucket(s), nil
	}
	return "", fmt.Errorf("unknown bucket %q", s)
}

// AllowsDirectWithdrawal reports whether funds may leave the ledger
// directly from this bucket. Growth funds must first move to another
// bucket; this forces yield-bearing value through an explicit path.
func (b Bucket) AllowsDirectWithdrawal() bool {
	return b != BucketGrowth
}

func (b Bucket) String() string {
	return string(b)
}
