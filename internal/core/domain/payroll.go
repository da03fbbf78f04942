package domain

import (
	"time"

	"github.com/google/uuid"
)

// Employee is a payroll recipient owned by an employer account.
// Deactivation is a soft delete; the row and its id are never reused.
type Employee struct {
	EmployerID uuid.UUID  `json:"employer_id"`
	EmployeeID int64      `json:"employee_id"`
	// Recipient is the custody identity salary payments are sent to.
	Recipient     string     `json:"recipient"`
	Salary        int64      `json:"salary"`
	PaymentDay    int        `json:"payment_day"` // day of month, 1..28
	Active        bool       `json:"active"`
	TotalPaid     int64      `json:"total_paid"`
	LastPaidAt    *time.Time `json:"last_paid_at,omitempty"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// PayrollBatch is a scheduled disbursement run. TotalAmount is a
// snapshot taken at scheduling time (sum of then-active salaries plus
// protocol fee); it is never recomputed, so employee edits after
// scheduling do not change a pending batch's committed total.
type PayrollBatch struct {
	EmployerID    uuid.UUID  `json:"employer_id"`
	BatchID       int64      `json:"batch_id"`
	TotalAmount   int64      `json:"total_amount"`
	ScheduledAt   time.Time  `json:"scheduled_at"`
	EmployeeCount int        `json:"employee_count"`
	Processed     bool       `json:"processed"`
	Failed        bool       `json:"failed"`
	FailureReason string     `json:"failure_reason,omitempty"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// IsPending reports whether the batch is still awaiting processing.
// There is no cancelled state: a batch only ever moves from pending to
// processed (fully or partially).
func (b *PayrollBatch) IsPending() bool {
	return !b.Processed
}

// PaymentRecord is one attempted payment within a batch. Records are
// append-only: one per attempt, success and failure alike, so a
// partially failed run remains fully auditable.
type PaymentRecord struct {
	EmployerID uuid.UUID `json:"employer_id"`
	BatchID    int64     `json:"batch_id"`
	Seq        int       `json:"seq"`
	EmployeeID int64     `json:"employee_id"`
	Recipient  string    `json:"recipient"`
	Amount     int64     `json:"amount"`
	Success    bool      `json:"success"`
	FailReason string    `json:"fail_reason,omitempty"`
	PaidAt     time.Time `json:"paid_at"`
}
