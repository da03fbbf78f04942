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

// PayrollServiceImpl implements ports.PayrollService: per-employer
// recipient lists, scheduled batches with a committed total snapshot,
// and batch disbursement with per-employee failure isolation.
type PayrollServiceImpl struct {
	payrollRepo ports.PayrollRepository
	accountRepo ports.AccountRepository
	transferor  ports.TokenTransferor
	opGuard     ports.OpGuard
	events      ports.EventPublisher
	transactor  ports.DBTransactor
	clock       ports.Clock
	cfg         config.PayrollConfig
	feeBps      int64
	feeRecip    string
	log         zerolog.Logger
}

// NewPayrollService creates a new PayrollServiceImpl. The fee knobs are
// shared with the deposit path, so they come from the ledger config.
func NewPayrollService(
	payrollRepo ports.PayrollRepository,
	accountRepo ports.AccountRepository,
	transferor ports.TokenTransferor,
	opGuard ports.OpGuard,
	events ports.EventPublisher,
	transactor ports.DBTransactor,
	clock ports.Clock,
	cfg config.PayrollConfig,
	ledgerCfg config.LedgerConfig,
	log zerolog.Logger,
) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		payrollRepo: payrollRepo,
		accountRepo: accountRepo,
		transferor:  transferor,
		opGuard:     opGuard,
		events:      events,
		transactor:  transactor,
		clock:       clock,
		cfg:         cfg,
		feeBps:      ledgerCfg.FeeBps,
		feeRecip:    ledgerCfg.FeeRecipient,
		log:         log,
	}
}

// AddEmployee registers a new payroll recipient for the employer.
func (s *PayrollServiceImpl) AddEmployee(ctx context.Context, employerID uuid.UUID, req ports.AddEmployeeRequest) (*domain.Employee, error) {
	if req.Recipient == "" {
		return nil, apperror.Validation("recipient is required")
	}
	if req.Salary < s.cfg.MinSalary || req.Salary > s.cfg.MaxSalary {
		return nil, apperror.ErrSalaryOutOfRange(s.cfg.MinSalary, s.cfg.MaxSalary)
	}
	if req.PaymentDay < 1 || req.PaymentDay > 28 {
		return nil, apperror.Validation("payment day must be between 1 and 28")
	}

	employer, err := s.accountRepo.GetByID(ctx, employerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load employer: %w", err))
	}
	if employer == nil {
		return nil, apperror.ErrNotFound("account")
	}
	if employer.CustodyID == req.Recipient {
		return nil, apperror.ErrSelfPayroll()
	}

	existing, err := s.payrollRepo.GetActiveByRecipient(ctx, employerID, req.Recipient)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check recipient: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateRecipient()
	}

	count, err := s.payrollRepo.CountActiveEmployees(ctx, employerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("count employees: %w", err))
	}
	if count >= s.cfg.MaxEmployeesPerBatch {
		return nil, apperror.ErrTooManyEmployees(s.cfg.MaxEmployeesPerBatch)
	}

	now := s.clock.Now().UTC()
	emp := &domain.Employee{
		EmployerID: employerID,
		Recipient:  req.Recipient,
		Salary:     req.Salary,
		PaymentDay: req.PaymentDay,
		Active:     true,
		Name:       req.Name,
		Email:      req.Email,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	empID, err := s.payrollRepo.CreateEmployee(ctx, dbTx, emp)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create employee: %w", err))
	}
	emp.EmployeeID = empID

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewPayrollEvent(domain.EventEmployeeAdded, employerID, map[string]any{
		"employee_id": empID,
		"recipient":   req.Recipient,
		"salary":      req.Salary,
	}, now))

	s.log.Info().
		Str("employer_id", employerID.String()).
		Int64("employee_id", empID).
		Msg("employee added")
	return emp, nil
}

// UpdateEmployee changes an active recipient's fields. Pending batches
// keep their scheduled snapshot regardless.
func (s *PayrollServiceImpl) UpdateEmployee(ctx context.Context, employerID uuid.UUID, employeeID int64, req ports.UpdateEmployeeRequest) (*domain.Employee, error) {
	emp, err := s.payrollRepo.GetEmployee(ctx, employerID, employeeID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load employee: %w", err))
	}
	if emp == nil || !emp.Active {
		return nil, apperror.ErrNotFound("employee")
	}

	if req.Salary != nil {
		if *req.Salary < s.cfg.MinSalary || *req.Salary > s.cfg.MaxSalary {
			return nil, apperror.ErrSalaryOutOfRange(s.cfg.MinSalary, s.cfg.MaxSalary)
		}
		emp.Salary = *req.Salary
	}
	if req.PaymentDay != nil {
		if *req.PaymentDay < 1 || *req.PaymentDay > 28 {
			return nil, apperror.Validation("payment day must be between 1 and 28")
		}
		emp.PaymentDay = *req.PaymentDay
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	emp.UpdatedAt = s.clock.Now().UTC()

	if err := s.payrollRepo.UpdateEmployee(ctx, emp); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update employee: %w", err))
	}

	s.publish(ctx, domain.NewPayrollEvent(domain.EventEmployeeUpdated, employerID, map[string]any{
		"employee_id": employeeID,
	}, emp.UpdatedAt))
	return emp, nil
}

// RemoveEmployee deactivates a recipient. The row stays for history and
// its id is never reused.
func (s *PayrollServiceImpl) RemoveEmployee(ctx context.Context, employerID uuid.UUID, employeeID int64) error {
	emp, err := s.payrollRepo.GetEmployee(ctx, employerID, employeeID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("load employee: %w", err))
	}
	if emp == nil || !emp.Active {
		return apperror.ErrNotFound("employee")
	}

	if err := s.payrollRepo.DeactivateEmployee(ctx, employerID, employeeID); err != nil {
		return apperror.InternalError(fmt.Errorf("deactivate employee: %w", err))
	}

	s.publish(ctx, domain.NewPayrollEvent(domain.EventEmployeeRemoved, employerID, map[string]any{
		"employee_id": employeeID,
	}, s.clock.Now().UTC()))

	s.log.Info().
		Str("employer_id", employerID.String()).
		Int64("employee_id", employeeID).
		Msg("employee removed")
	return nil
}

// ListEmployees returns all of the employer's recipients, active and
// deactivated alike.
func (s *PayrollServiceImpl) ListEmployees(ctx context.Context, employerID uuid.UUID) ([]domain.Employee, error) {
	emps, err := s.payrollRepo.ListEmployees(ctx, employerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list employees: %w", err))
	}
	return emps, nil
}

// SchedulePayroll creates a pending batch whose total is a snapshot of
// the currently active salaries plus the protocol fee. Later employee
// edits never change a pending batch's committed total.
func (s *PayrollServiceImpl) SchedulePayroll(ctx context.Context, employerID uuid.UUID, date time.Time) (*domain.PayrollBatch, error) {
	now := s.clock.Now()
	if !date.After(now) {
		return nil, apperror.ErrInvalidDate("scheduled date must be in the future")
	}
	if date.After(now.Add(s.cfg.ScheduleHorizon)) {
		return nil, apperror.ErrInvalidDate("scheduled date too far in the future")
	}

	employees, err := s.payrollRepo.ListActiveEmployees(ctx, employerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list active employees: %w", err))
	}
	if len(employees) == 0 {
		return nil, apperror.ErrNoActiveEmployees()
	}
	if len(employees) > s.cfg.MaxEmployeesPerBatch {
		return nil, apperror.ErrTooManyEmployees(s.cfg.MaxEmployeesPerBatch)
	}

	salaryTotal := int64(0)
	for _, emp := range employees {
		salaryTotal += emp.Salary
	}
	fee := salaryTotal * s.feeBps / domain.BasisPointsDenominator

	batch := &domain.PayrollBatch{
		EmployerID:    employerID,
		TotalAmount:   salaryTotal + fee,
		ScheduledAt:   date.UTC(),
		EmployeeCount: len(employees),
		CreatedAt:     now.UTC(),
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	batchID, err := s.payrollRepo.CreateBatch(ctx, dbTx, batch)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create batch: %w", err))
	}
	batch.BatchID = batchID

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.publish(ctx, domain.NewPayrollEvent(domain.EventPayrollScheduled, employerID, map[string]any{
		"batch_id":       batchID,
		"total_amount":   batch.TotalAmount,
		"employee_count": batch.EmployeeCount,
		"scheduled_at":   batch.ScheduledAt,
	}, now.UTC()))

	s.log.Info().
		Str("employer_id", employerID.String()).
		Int64("batch_id", batchID).
		Int64("total", batch.TotalAmount).
		Int("employees", batch.EmployeeCount).
		Msg("payroll scheduled")
	return batch, nil
}

// ProcessPayroll disburses a due batch. Payments are attempted one by
// one against the employees active at processing time; a failed
// transfer is recorded and skipped, it never rolls back payments that
// already went out. The batch ends processed either way, marked failed
// if any payment failed. There is no retry of a processed batch.
func (s *PayrollServiceImpl) ProcessPayroll(ctx context.Context, operatorID, employerID uuid.UUID, batchID int64) (*ports.ProcessPayrollResult, error) {
	operator, err := s.accountRepo.GetByID(ctx, operatorID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load operator: %w", err))
	}
	if operator == nil || !operator.IsOperator {
		return nil, apperror.ErrNotOperator()
	}

	ok, err := s.opGuard.Acquire(ctx, employerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("acquire op guard: %w", err))
	}
	if !ok {
		return nil, apperror.ErrOperationInProgress()
	}
	defer func() {
		if err := s.opGuard.Release(ctx, employerID); err != nil {
			s.log.Warn().Err(err).Str("employer_id", employerID.String()).Msg("failed to release op guard")
		}
	}()

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	batch, err := s.payrollRepo.GetBatchForUpdate(ctx, dbTx, employerID, batchID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock batch: %w", err))
	}
	if batch == nil {
		return nil, apperror.ErrNotFound("batch")
	}
	if batch.Processed {
		return nil, apperror.ErrBatchAlreadyProcessed()
	}
	now := s.clock.Now()
	if now.Before(batch.ScheduledAt) {
		return nil, apperror.ErrBatchNotDue()
	}

	available, err := s.transferor.Balance(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("custody balance: %w", err))
	}
	if available < batch.TotalAmount {
		return nil, apperror.ErrInsufficientCustodyBalance()
	}

	// The recipient set is read at processing time, not from the
	// schedule snapshot; only the committed total is frozen.
	employees, err := s.payrollRepo.ListActiveEmployees(ctx, employerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list active employees: %w", err))
	}

	paid := 0
	failed := 0
	paidTotal := int64(0)
	failureReason := ""
	nowUTC := now.UTC()
	var succeeded []domain.Employee

	for i, emp := range employees {
		rec := &domain.PaymentRecord{
			EmployerID: employerID,
			BatchID:    batchID,
			Seq:        i + 1,
			EmployeeID: emp.EmployeeID,
			Recipient:  emp.Recipient,
			Amount:     emp.Salary,
			PaidAt:     nowUTC,
		}

		if transferErr := s.transferor.Transfer(ctx, emp.Recipient, emp.Salary); transferErr != nil {
			failed++
			rec.Success = false
			rec.FailReason = transferErr.Error()
			if failureReason == "" {
				failureReason = fmt.Sprintf("payment to employee %d failed: %v", emp.EmployeeID, transferErr)
			}
			s.log.Warn().
				Err(transferErr).
				Str("employer_id", employerID.String()).
				Int64("employee_id", emp.EmployeeID).
				Msg("payroll payment failed")
		} else {
			paid++
			paidTotal += emp.Salary
			rec.Success = true
			succeeded = append(succeeded, emp)
			if err := s.payrollRepo.RecordPayment(ctx, dbTx, employerID, emp.EmployeeID, emp.Salary, nowUTC); err != nil {
				return nil, apperror.InternalError(fmt.Errorf("record payment: %w", err))
			}
		}

		if err := s.payrollRepo.AppendPaymentRecord(ctx, dbTx, rec); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("append payment record: %w", err))
		}
	}

	// Fee goes out only when every payment in the batch succeeded.
	fee := int64(0)
	if failed == 0 && paidTotal > 0 {
		fee = paidTotal * s.feeBps / domain.BasisPointsDenominator
		if fee > 0 {
			if feeErr := s.transferor.Transfer(ctx, s.feeRecip, fee); feeErr != nil {
				fee = 0
				failureReason = fmt.Sprintf("fee transfer failed: %v", feeErr)
				s.log.Warn().Err(feeErr).Str("employer_id", employerID.String()).Msg("payroll fee transfer failed")
			}
		}
	}

	if unspent := batch.TotalAmount - paidTotal - fee; unspent > 0 {
		// Snapshot total committed more than went out (employee removals
		// after scheduling, failed payments, withheld fee).
		s.log.Warn().
			Str("employer_id", employerID.String()).
			Int64("batch_id", batchID).
			Int64("unspent", unspent).
			Msg("batch snapshot total not fully disbursed")
	}

	batch.Processed = true
	batch.Failed = failed > 0 || failureReason != ""
	batch.FailureReason = failureReason
	batch.ProcessedAt = &nowUTC
	if err := s.payrollRepo.MarkBatchProcessed(ctx, dbTx, batch); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark batch processed: %w", err))
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	for _, emp := range succeeded {
		s.publish(ctx, domain.NewPayrollEvent(domain.EventPaymentExecuted, employerID, map[string]any{
			"batch_id":    batchID,
			"employee_id": emp.EmployeeID,
			"recipient":   emp.Recipient,
			"amount":      emp.Salary,
		}, nowUTC))
	}
	s.publish(ctx, domain.NewPayrollEvent(domain.EventPayrollProcessed, employerID, map[string]any{
		"batch_id": batchID,
		"paid":     paid,
		"failed":   failed,
		"total":    paidTotal,
		"fee":      fee,
	}, nowUTC))

	s.log.Info().
		Str("employer_id", employerID.String()).
		Int64("batch_id", batchID).
		Int("paid", paid).
		Int("failed", failed).
		Int64("paid_total", paidTotal).
		Int64("fee", fee).
		Msg("payroll processed")

	return &ports.ProcessPayrollResult{
		Batch:     batch,
		Paid:      paid,
		FailedN:   failed,
		PaidTotal: paidTotal,
		Fee:       fee,
	}, nil
}

// GetBatch returns one batch by id.
func (s *PayrollServiceImpl) GetBatch(ctx context.Context, employerID uuid.UUID, batchID int64) (*domain.PayrollBatch, error) {
	batch, err := s.payrollRepo.GetBatch(ctx, employerID, batchID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load batch: %w", err))
	}
	if batch == nil {
		return nil, apperror.ErrNotFound("batch")
	}
	return batch, nil
}

// ListBatches returns the employer's batches, newest first.
func (s *PayrollServiceImpl) ListBatches(ctx context.Context, employerID uuid.UUID) ([]domain.PayrollBatch, error) {
	batches, err := s.payrollRepo.ListBatches(ctx, employerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list batches: %w", err))
	}
	return batches, nil
}

// ListPaymentRecords returns the append-only attempt log of one batch.
func (s *PayrollServiceImpl) ListPaymentRecords(ctx context.Context, employerID uuid.UUID, batchID int64) ([]domain.PaymentRecord, error) {
	records, err := s.payrollRepo.ListPaymentRecords(ctx, employerID, batchID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list payment records: %w", err))
	}
	return records, nil
}

func (s *PayrollServiceImpl) publish(ctx context.Context, ev domain.Event) {
	if err := s.events.Publish(ctx, ev); err != nil {
		s.log.Warn().Err(err).Str("type", string(ev.Type)).Msg("failed to publish event")
	}
}
