package dto

// RegisterRequest is the request body for account registration.
type RegisterRequest struct {
	Username    string `json:"username" binding:"required,min=3,max=50,safe_id"`
	Password    string `json:"password" binding:"required,min=8,max=128"`
	DisplayName string `json:"display_name" binding:"max=100"`
	CustodyID   string `json:"custody_id" binding:"required,max=100,safe_id"`
}

// LoginRequest is the request body for account login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse is the response body for successful registration.
type RegisterResponse struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	CustodyID string `json:"custody_id"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// SplitConfigRequest is the request body for setting allocation weights.
// Weights are basis points and must sum to exactly 10000.
type SplitConfigRequest struct {
	Billings  int64 `json:"billings" binding:"min=0,max=10000"`
	Savings   int64 `json:"savings" binding:"min=0,max=10000"`
	Growth    int64 `json:"growth" binding:"min=0,max=10000"`
	Instant   int64 `json:"instant" binding:"min=0,max=10000"`
	Spendable int64 `json:"spendable" binding:"min=0,max=10000"`
}

// SplitConfigResponse is the response for split config queries.
type SplitConfigResponse struct {
	Billings  int64  `json:"billings"`
	Savings   int64  `json:"savings"`
	Growth    int64  `json:"growth"`
	Instant   int64  `json:"instant"`
	Spendable int64  `json:"spendable"`
	UpdatedAt string `json:"updated_at"`
}

// DepositRequest is the request body for a deposit.
type DepositRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// DepositResponse reports how a deposit was allocated.
type DepositResponse struct {
	Amount      int64            `json:"amount"`
	Fee         int64            `json:"fee"`
	Net         int64            `json:"net"`
	Allocations map[string]int64 `json:"allocations"`
	Overflowed  int64            `json:"overflowed,omitempty"`
}

// BucketTransferRequest is the request body for an internal transfer.
type BucketTransferRequest struct {
	From   string `json:"from" binding:"required"`
	To     string `json:"to" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// WithdrawRequest is the request body for an external withdrawal.
type WithdrawRequest struct {
	Bucket string `json:"bucket" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// WithdrawLimitRequest sets the daily withdrawal ceiling. Zero removes it.
type WithdrawLimitRequest struct {
	DailyLimit int64 `json:"daily_limit" binding:"min=0"`
}

// BalanceResponse is one bucket's balance.
type BalanceResponse struct {
	Bucket  string `json:"bucket"`
	Balance int64  `json:"balance"`
}

// BalancesResponse is the response for balance queries.
type BalancesResponse struct {
	Balances []BalanceResponse `json:"balances"`
	Total    int64             `json:"total"`
}

// EmergencyRequestResponse reports a pending emergency withdrawal window.
type EmergencyRequestResponse struct {
	RequestedAt  string `json:"requested_at"`
	ExecutableAt string `json:"executable_at"`
}

// GoalCreateRequest is the request body for creating a savings goal.
type GoalCreateRequest struct {
	TargetAmount int64  `json:"target_amount" binding:"required,gt=0"`
	TargetDate   string `json:"target_date" binding:"required"` // RFC 3339
	Description  string `json:"description" binding:"required,min=1,max=200"`
}

// GoalContributeRequest is the request body for a goal contribution.
type GoalContributeRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// GoalResponse is the response body for goal results.
type GoalResponse struct {
	GoalID        int64  `json:"goal_id"`
	TargetAmount  int64  `json:"target_amount"`
	CurrentAmount int64  `json:"current_amount"`
	TargetDate    string `json:"target_date"`
	Description   string `json:"description"`
	Completed     bool   `json:"completed"`
	Locked        bool   `json:"locked"`
	BonusAPYBps   int64  `json:"bonus_apy_bps,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// EmployeeRequest is the request body for adding a payroll recipient.
type EmployeeRequest struct {
	Recipient  string `json:"recipient" binding:"required,max=100,safe_id"`
	Salary     int64  `json:"salary" binding:"required,gt=0"`
	PaymentDay int    `json:"payment_day" binding:"required,min=1,max=28"`
	Name       string `json:"name" binding:"max=100"`
	Email      string `json:"email" binding:"omitempty,email,max=100"`
}

// EmployeeUpdateRequest is the request body for updating a recipient.
// Omitted fields are left unchanged.
type EmployeeUpdateRequest struct {
	Salary     *int64  `json:"salary,omitempty"`
	PaymentDay *int    `json:"payment_day,omitempty"`
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
}

// EmployeeResponse is the response body for recipient results.
type EmployeeResponse struct {
	EmployeeID int64  `json:"employee_id"`
	Recipient  string `json:"recipient"`
	Salary     int64  `json:"salary"`
	PaymentDay int    `json:"payment_day"`
	Active     bool   `json:"active"`
	TotalPaid  int64  `json:"total_paid"`
	LastPaidAt string `json:"last_paid_at,omitempty"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
}

// ScheduleRequest is the request body for scheduling a payroll batch.
type ScheduleRequest struct {
	Date string `json:"date" binding:"required"` // RFC 3339
}

// BatchResponse is the response body for payroll batch results.
type BatchResponse struct {
	BatchID       int64  `json:"batch_id"`
	TotalAmount   int64  `json:"total_amount"`
	ScheduledAt   string `json:"scheduled_at"`
	EmployeeCount int    `json:"employee_count"`
	Processed     bool   `json:"processed"`
	Failed        bool   `json:"failed"`
	FailureReason string `json:"failure_reason,omitempty"`
	ProcessedAt   string `json:"processed_at,omitempty"`
}

// ProcessResultResponse summarises one batch run.
type ProcessResultResponse struct {
	Batch     BatchResponse `json:"batch"`
	Paid      int           `json:"paid"`
	Failed    int           `json:"failed"`
	PaidTotal int64         `json:"paid_total"`
	Fee       int64         `json:"fee"`
}

// PaymentRecordResponse is one attempted payment within a batch.
type PaymentRecordResponse struct {
	Seq        int    `json:"seq"`
	EmployeeID int64  `json:"employee_id"`
	Recipient  string `json:"recipient"`
	Amount     int64  `json:"amount"`
	Success    bool   `json:"success"`
	FailReason string `json:"fail_reason,omitempty"`
	PaidAt     string `json:"paid_at"`
}
