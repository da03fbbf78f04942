package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vaultwise/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PayrollRepo implements ports.PayrollRepository.
type PayrollRepo struct {
	pool Pool
}

// NewPayrollRepo creates a new PayrollRepo.
func NewPayrollRepo(pool Pool) *PayrollRepo {
	return &PayrollRepo{pool: pool}
}

const employeeColumns = `employer_id, employee_id, recipient, salary, payment_day, active, total_paid, last_paid_at, name, email, created_at, updated_at`

// CreateEmployee appends a new recipient, assigning the next
// sequential employee id for the employer.
func (r *PayrollRepo) CreateEmployee(ctx context.Context, tx pgx.Tx, e *domain.Employee) (int64, error) {
	query := `INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1,
			(SELECT COALESCE(MAX(employee_id), 0) + 1 FROM employees WHERE employer_id = $1),
			$2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING employee_id`

	var id int64
	err := tx.QueryRow(ctx, query,
		e.EmployerID, e.Recipient, e.Salary, e.PaymentDay, e.Active,
		e.TotalPaid, e.LastPaidAt, e.Name, e.Email, e.CreatedAt, e.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert employee: %w", err)
	}
	return id, nil
}

// GetEmployee fetches one recipient, nil if unknown.
func (r *PayrollRepo) GetEmployee(ctx context.Context, employerID uuid.UUID, employeeID int64) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employer_id = $1 AND employee_id = $2`
	return r.scanEmployee(r.pool.QueryRow(ctx, query, employerID, employeeID))
}

// GetActiveByRecipient fetches the active entry paying the given
// recipient, nil if none. Used for duplicate detection.
func (r *PayrollRepo) GetActiveByRecipient(ctx context.Context, employerID uuid.UUID, recipient string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE employer_id = $1 AND recipient = $2 AND active`
	return r.scanEmployee(r.pool.QueryRow(ctx, query, employerID, recipient))
}

func (r *PayrollRepo) scanEmployee(row pgx.Row) (*domain.Employee, error) {
	e := &domain.Employee{}
	err := row.Scan(
		&e.EmployerID, &e.EmployeeID, &e.Recipient, &e.Salary, &e.PaymentDay,
		&e.Active, &e.TotalPaid, &e.LastPaidAt, &e.Name, &e.Email, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan employee: %w", err)
	}
	return e, nil
}

// ListActiveEmployees returns active recipients in id order.
func (r *PayrollRepo) ListActiveEmployees(ctx context.Context, employerID uuid.UUID) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE employer_id = $1 AND active ORDER BY employee_id`
	return r.listEmployees(ctx, query, employerID)
}

// ListEmployees returns all recipients, soft-deleted included.
func (r *PayrollRepo) ListEmployees(ctx context.Context, employerID uuid.UUID) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE employer_id = $1 ORDER BY employee_id`
	return r.listEmployees(ctx, query, employerID)
}

func (r *PayrollRepo) listEmployees(ctx context.Context, query string, employerID uuid.UUID) ([]domain.Employee, error) {
	rows, err := r.pool.Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var out []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(
			&e.EmployerID, &e.EmployeeID, &e.Recipient, &e.Salary, &e.PaymentDay,
			&e.Active, &e.TotalPaid, &e.LastPaidAt, &e.Name, &e.Email, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return out, nil
}

// CountActiveEmployees returns how many recipients are active.
func (r *PayrollRepo) CountActiveEmployees(ctx context.Context, employerID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM employees WHERE employer_id = $1 AND active`, employerID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active employees: %w", err)
	}
	return n, nil
}

// UpdateEmployee persists salary, payment day and contact fields.
func (r *PayrollRepo) UpdateEmployee(ctx context.Context, e *domain.Employee) error {
	query := `UPDATE employees
		SET salary = $1, payment_day = $2, name = $3, email = $4, updated_at = NOW()
		WHERE employer_id = $5 AND employee_id = $6`

	tag, err := r.pool.Exec(ctx, query, e.Salary, e.PaymentDay, e.Name, e.Email, e.EmployerID, e.EmployeeID)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %s/%d", e.EmployerID, e.EmployeeID)
	}
	return nil
}

// DeactivateEmployee soft-deletes a recipient. The row stays; the id
// is never reused.
func (r *PayrollRepo) DeactivateEmployee(ctx context.Context, employerID uuid.UUID, employeeID int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE employees SET active = FALSE, updated_at = NOW() WHERE employer_id = $1 AND employee_id = $2`,
		employerID, employeeID,
	)
	if err != nil {
		return fmt.Errorf("deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %s/%d", employerID, employeeID)
	}
	return nil
}

// RecordPayment bumps an employee's paid totals after a successful
// transfer, inside the batch's transaction.
func (r *PayrollRepo) RecordPayment(ctx context.Context, tx pgx.Tx, employerID uuid.UUID, employeeID int64, amount int64, paidAt time.Time) error {
	query := `UPDATE employees
		SET total_paid = total_paid + $1, last_paid_at = $2, updated_at = NOW()
		WHERE employer_id = $3 AND employee_id = $4`

	if _, err := tx.Exec(ctx, query, amount, paidAt, employerID, employeeID); err != nil {
		return fmt.Errorf("record payment: %w", err)
	}
	return nil
}

const batchColumns = `employer_id, batch_id, total_amount, scheduled_at, employee_count, processed, failed, failure_reason, processed_at, created_at`

// CreateBatch stores a new unprocessed batch, assigning the next
// sequential batch id for the employer.
func (r *PayrollRepo) CreateBatch(ctx context.Context, tx pgx.Tx, b *domain.PayrollBatch) (int64, error) {
	query := `INSERT INTO payroll_batches (` + batchColumns + `)
		VALUES ($1,
			(SELECT COALESCE(MAX(batch_id), 0) + 1 FROM payroll_batches WHERE employer_id = $1),
			$2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING batch_id`

	var id int64
	err := tx.QueryRow(ctx, query,
		b.EmployerID, b.TotalAmount, b.ScheduledAt, b.EmployeeCount,
		b.Processed, b.Failed, b.FailureReason, b.ProcessedAt, b.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert payroll batch: %w", err)
	}
	return id, nil
}

// GetBatch fetches one batch without locking, nil if unknown.
func (r *PayrollRepo) GetBatch(ctx context.Context, employerID uuid.UUID, batchID int64) (*domain.PayrollBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM payroll_batches WHERE employer_id = $1 AND batch_id = $2`
	return r.scanBatch(r.pool.QueryRow(ctx, query, employerID, batchID))
}

// GetBatchForUpdate locks and returns one batch. The lock is what
// makes "already processed" checks race-free.
func (r *PayrollRepo) GetBatchForUpdate(ctx context.Context, tx pgx.Tx, employerID uuid.UUID, batchID int64) (*domain.PayrollBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM payroll_batches
		WHERE employer_id = $1 AND batch_id = $2 FOR UPDATE`
	return r.scanBatch(tx.QueryRow(ctx, query, employerID, batchID))
}

func (r *PayrollRepo) scanBatch(row pgx.Row) (*domain.PayrollBatch, error) {
	b := &domain.PayrollBatch{}
	err := row.Scan(
		&b.EmployerID, &b.BatchID, &b.TotalAmount, &b.ScheduledAt, &b.EmployeeCount,
		&b.Processed, &b.Failed, &b.FailureReason, &b.ProcessedAt, &b.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payroll batch: %w", err)
	}
	return b, nil
}

// MarkBatchProcessed persists the terminal outcome of a run.
func (r *PayrollRepo) MarkBatchProcessed(ctx context.Context, tx pgx.Tx, b *domain.PayrollBatch) error {
	query := `UPDATE payroll_batches
		SET processed = $1, failed = $2, failure_reason = $3, processed_at = $4
		WHERE employer_id = $5 AND batch_id = $6`

	tag, err := tx.Exec(ctx, query, b.Processed, b.Failed, b.FailureReason, b.ProcessedAt, b.EmployerID, b.BatchID)
	if err != nil {
		return fmt.Errorf("mark batch processed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("batch not found: %s/%d", b.EmployerID, b.BatchID)
	}
	return nil
}

// ListBatches returns the employer's batches, newest first.
func (r *PayrollRepo) ListBatches(ctx context.Context, employerID uuid.UUID) ([]domain.PayrollBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM payroll_batches WHERE employer_id = $1 ORDER BY batch_id DESC`

	rows, err := r.pool.Query(ctx, query, employerID)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var out []domain.PayrollBatch
	for rows.Next() {
		var b domain.PayrollBatch
		if err := rows.Scan(
			&b.EmployerID, &b.BatchID, &b.TotalAmount, &b.ScheduledAt, &b.EmployeeCount,
			&b.Processed, &b.Failed, &b.FailureReason, &b.ProcessedAt, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payroll batch: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}
	return out, nil
}

// AppendPaymentRecord stores one attempted payment outcome. Records
// are append-only and written inside the run's transaction.
func (r *PayrollRepo) AppendPaymentRecord(ctx context.Context, tx pgx.Tx, rec *domain.PaymentRecord) error {
	query := `INSERT INTO payment_records (employer_id, batch_id, seq, employee_id, recipient, amount, success, fail_reason, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := tx.Exec(ctx, query,
		rec.EmployerID, rec.BatchID, rec.Seq, rec.EmployeeID, rec.Recipient,
		rec.Amount, rec.Success, rec.FailReason, rec.PaidAt,
	)
	if err != nil {
		return fmt.Errorf("append payment record: %w", err)
	}
	return nil
}

// ListPaymentRecords returns a batch's attempts in sequence order.
func (r *PayrollRepo) ListPaymentRecords(ctx context.Context, employerID uuid.UUID, batchID int64) ([]domain.PaymentRecord, error) {
	query := `SELECT employer_id, batch_id, seq, employee_id, recipient, amount, success, fail_reason, paid_at
		FROM payment_records WHERE employer_id = $1 AND batch_id = $2 ORDER BY seq`

	rows, err := r.pool.Query(ctx, query, employerID, batchID)
	if err != nil {
		return nil, fmt.Errorf("list payment records: %w", err)
	}
	defer rows.Close()

	var out []domain.PaymentRecord
	for rows.Next() {
		var rec domain.PaymentRecord
		if err := rows.Scan(
			&rec.EmployerID, &rec.BatchID, &rec.Seq, &rec.EmployeeID, &rec.Recipient,
			&rec.Amount, &rec.Success, &rec.FailReason, &rec.PaidAt,
		); err != nil {
			return nil, fmt.Errorf("scan payment record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment records: %w", err)
	}
	return out, nil
}
