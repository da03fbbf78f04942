package handler

import (
	"strconv"
	"time"

	"vaultwise/internal/adapter/http/dto"
	"vaultwise/internal/core/domain"
	"vaultwise/internal/core/ports"
	"vaultwise/pkg/apperror"
	"vaultwise/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PayrollHandler handles payroll recipient and batch endpoints.
type PayrollHandler struct {
	payrollSvc ports.PayrollService
}

// NewPayrollHandler creates a new PayrollHandler.
func NewPayrollHandler(payrollSvc ports.PayrollService) *PayrollHandler {
	return &PayrollHandler{payrollSvc: payrollSvc}
}

// AddEmployee handles POST /api/v1/payroll/employees.
func (h *PayrollHandler) AddEmployee(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	emp, err := h.payrollSvc.AddEmployee(c.Request.Context(), id, ports.AddEmployeeRequest{
		Recipient:  req.Recipient,
		Salary:     req.Salary,
		PaymentDay: req.PaymentDay,
		Name:       req.Name,
		Email:      req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toEmployeeResponse(emp))
}

// UpdateEmployee handles PUT /api/v1/payroll/employees/:employee_id.
func (h *PayrollHandler) UpdateEmployee(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	employeeID, err := strconv.ParseInt(c.Param("employee_id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid employee id"))
		return
	}

	var req dto.EmployeeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	emp, err := h.payrollSvc.UpdateEmployee(c.Request.Context(), id, employeeID, ports.UpdateEmployeeRequest{
		Salary:     req.Salary,
		PaymentDay: req.PaymentDay,
		Name:       req.Name,
		Email:      req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toEmployeeResponse(emp))
}

// RemoveEmployee handles DELETE /api/v1/payroll/employees/:employee_id.
func (h *PayrollHandler) RemoveEmployee(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	employeeID, err := strconv.ParseInt(c.Param("employee_id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid employee id"))
		return
	}

	if err := h.payrollSvc.RemoveEmployee(c.Request.Context(), id, employeeID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListEmployees handles GET /api/v1/payroll/employees.
func (h *PayrollHandler) ListEmployees(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	emps, err := h.payrollSvc.ListEmployees(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		resp = append(resp, toEmployeeResponse(&emps[i]))
	}
	response.OK(c, resp)
}

// Schedule handles POST /api/v1/payroll/batches.
func (h *PayrollHandler) Schedule(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		response.Error(c, apperror.ErrInvalidDate("date must be RFC 3339"))
		return
	}

	batch, err := h.payrollSvc.SchedulePayroll(c.Request.Context(), id, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toBatchResponse(batch))
}

// Process handles POST /api/v1/payroll/employers/:employer_id/batches/:batch_id/process.
// Operator-only: the caller's account triggers disbursement of another
// employer's due batch.
func (h *PayrollHandler) Process(c *gin.Context) {
	operatorID, ok := accountID(c)
	if !ok {
		return
	}

	employerID, err := uuid.Parse(c.Param("employer_id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid employer id"))
		return
	}
	batchID, err := strconv.ParseInt(c.Param("batch_id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid batch id"))
		return
	}

	result, err := h.payrollSvc.ProcessPayroll(c.Request.Context(), operatorID, employerID, batchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ProcessResultResponse{
		Batch:     toBatchResponse(result.Batch),
		Paid:      result.Paid,
		Failed:    result.FailedN,
		PaidTotal: result.PaidTotal,
		Fee:       result.Fee,
	})
}

// ListBatches handles GET /api/v1/payroll/batches.
func (h *PayrollHandler) ListBatches(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	batches, err := h.payrollSvc.ListBatches(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]dto.BatchResponse, 0, len(batches))
	for i := range batches {
		resp = append(resp, toBatchResponse(&batches[i]))
	}
	response.OK(c, resp)
}

// GetBatch handles GET /api/v1/payroll/batches/:batch_id.
func (h *PayrollHandler) GetBatch(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	batchID, err := strconv.ParseInt(c.Param("batch_id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid batch id"))
		return
	}

	batch, err := h.payrollSvc.GetBatch(c.Request.Context(), id, batchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toBatchResponse(batch))
}

// ListPaymentRecords handles GET /api/v1/payroll/batches/:batch_id/records.
func (h *PayrollHandler) ListPaymentRecords(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	batchID, err := strconv.ParseInt(c.Param("batch_id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid batch id"))
		return
	}

	records, err := h.payrollSvc.ListPaymentRecords(c.Request.Context(), id, batchID)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]dto.PaymentRecordResponse, 0, len(records))
	for _, r := range records {
		resp = append(resp, dto.PaymentRecordResponse{
			Seq:        r.Seq,
			EmployeeID: r.EmployeeID,
			Recipient:  r.Recipient,
			Amount:     r.Amount,
			Success:    r.Success,
			FailReason: r.FailReason,
			PaidAt:     r.PaidAt.Format(time.RFC3339),
		})
	}
	response.OK(c, resp)
}

func toEmployeeResponse(e *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		EmployeeID: e.EmployeeID,
		Recipient:  e.Recipient,
		Salary:     e.Salary,
		PaymentDay: e.PaymentDay,
		Active:     e.Active,
		TotalPaid:  e.TotalPaid,
		Name:       e.Name,
		Email:      e.Email,
	}
	if e.LastPaidAt != nil {
		resp.LastPaidAt = e.LastPaidAt.Format(time.RFC3339)
	}
	return resp
}

func toBatchResponse(b *domain.PayrollBatch) dto.BatchResponse {
	resp := dto.BatchResponse{
		BatchID:       b.BatchID,
		TotalAmount:   b.TotalAmount,
		ScheduledAt:   b.ScheduledAt.Format(time.RFC3339),
		EmployeeCount: b.EmployeeCount,
		Processed:     b.Processed,
		Failed:        b.Failed,
		FailureReason: b.FailureReason,
	}
	if b.ProcessedAt != nil {
		resp.ProcessedAt = b.ProcessedAt.Format(time.RFC3339)
	}
	return resp
}
