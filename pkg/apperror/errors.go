package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL): bad input shape, rejected before any mutation ----

func ErrInvalidAmount() *AppError {
	return New("VAL_001", "Invalid amount", http.StatusBadRequest)
}

func ErrInvalidWeights() *AppError {
	return New("VAL_002", "Split weights must each be at most 10000 bp and sum to exactly 10000 bp", http.StatusBadRequest)
}

func ErrDepositTooSmall(min int64) *AppError {
	return New("VAL_003", fmt.Sprintf("Deposit amount below minimum of %d", min), http.StatusBadRequest)
}

func ErrInvalidDate(reason string) *AppError {
	return New("VAL_004", fmt.Sprintf("Invalid date: %s", reason), http.StatusBadRequest)
}

func ErrEmptyDescription() *AppError {
	return New("VAL_005", "Description must not be empty", http.StatusBadRequest)
}

func ErrSalaryOutOfRange(min, max int64) *AppError {
	return New("VAL_006", fmt.Sprintf("Salary must be between %d and %d", min, max), http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("VAL_007", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// Validation returns a generic VAL_001-family validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Balance (BAL): insufficient funds, rejected before any mutation ----

func ErrInsufficientBalance(bucket string) *AppError {
	return New("BAL_001", fmt.Sprintf("Insufficient balance in %s bucket", bucket), http.StatusPaymentRequired)
}

func ErrInsufficientCustodyBalance() *AppError {
	return New("BAL_002", "Custody balance below committed batch total", http.StatusPaymentRequired)
}

// ---- Policy (POL): legal input rejected by a ledger rule ----

func ErrNoSplitConfig() *AppError {
	return New("POL_001", "No split configuration set", http.StatusUnprocessableEntity)
}

func ErrGrowthWithdrawal() *AppError {
	return New("POL_002", "Growth bucket has no direct external withdrawal", http.StatusUnprocessableEntity)
}

func ErrDailyLimitExceeded() *AppError {
	return New("POL_003", "Daily withdrawal limit exceeded", http.StatusUnprocessableEntity)
}

func ErrGoalNotContributable(reason string) *AppError {
	return New("POL_004", fmt.Sprintf("Goal rejects contribution: %s", reason), http.StatusUnprocessableEntity)
}

func ErrNoEmergencyRequest() *AppError {
	return New("POL_005", "No pending emergency withdrawal request", http.StatusUnprocessableEntity)
}

func ErrEmergencyDelayNotMet() *AppError {
	return New("POL_006", "Emergency withdrawal delay has not elapsed", http.StatusUnprocessableEntity)
}

func ErrOperationInProgress() *AppError {
	return New("POL_007", "Another ledger operation for this account is in flight", http.StatusConflict)
}

func ErrDuplicateRecipient() *AppError {
	return New("POL_008", "Recipient already has an active payroll entry", http.StatusConflict)
}

func ErrSelfPayroll() *AppError {
	return New("POL_009", "Employer cannot add themselves as a recipient", http.StatusUnprocessableEntity)
}

func ErrTooManyEmployees(max int) *AppError {
	return New("POL_010", fmt.Sprintf("Batch employee limit of %d reached", max), http.StatusUnprocessableEntity)
}

func ErrNoActiveEmployees() *AppError {
	return New("POL_011", "No active employees to schedule", http.StatusUnprocessableEntity)
}

func ErrBatchAlreadyProcessed() *AppError {
	return New("POL_012", "Batch has already been processed", http.StatusConflict)
}

func ErrBatchNotDue() *AppError {
	return New("POL_013", "Batch scheduled date has not been reached", http.StatusUnprocessableEntity)
}

func ErrNotOperator() *AppError {
	return New("POL_014", "Caller is not an authorized payroll operator", http.StatusForbidden)
}

// ---- External transfer (XFR): failure after validation; caller must roll back ----

func ErrTransferFailed(err error) *AppError {
	return Wrap("XFR_001", "External token transfer failed", http.StatusBadGateway, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrUsernameExists() *AppError {
	return New("AUTH_002", "Username already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrAccountSuspended() *AppError {
	return New("AUTH_004", "Account is suspended", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
