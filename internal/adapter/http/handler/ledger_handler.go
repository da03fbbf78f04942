package handler

import (
	"time"

	"vaultwise/internal/adapter/http/dto"
	"vaultwise/internal/adapter/http/middleware"
	"vaultwise/internal/core/domain"
	"vaultwise/internal/core/ports"
	"vaultwise/pkg/apperror"
	"vaultwise/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LedgerHandler handles split configuration, deposits, transfers and
// withdrawals for the authenticated account.
type LedgerHandler struct {
	ledgerSvc      ports.LedgerService
	emergencyDelay time.Duration
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerSvc ports.LedgerService, emergencyDelay time.Duration) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc, emergencyDelay: emergencyDelay}
}

// accountID extracts the authenticated account from the context. JWTAuth
// always sets it on protected routes.
func accountID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxAccountID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return id, true
}

// SetSplitConfig handles PUT /api/v1/ledger/split-config.
func (h *LedgerHandler) SetSplitConfig(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.SplitConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	weights := domain.SplitWeights{
		Billings:  req.Billings,
		Savings:   req.Savings,
		Growth:    req.Growth,
		Instant:   req.Instant,
		Spendable: req.Spendable,
	}
	if err := h.ledgerSvc.SetSplitConfig(c.Request.Context(), id, weights); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetSplitConfig handles GET /api/v1/ledger/split-config.
func (h *LedgerHandler) GetSplitConfig(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	cfg, err := h.ledgerSvc.GetSplitConfig(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SplitConfigResponse{
		Billings:  cfg.Weights.Billings,
		Savings:   cfg.Weights.Savings,
		Growth:    cfg.Weights.Growth,
		Instant:   cfg.Weights.Instant,
		Spendable: cfg.Weights.Spendable,
		UpdatedAt: cfg.UpdatedAt.Format(time.RFC3339),
	})
}

// Deposit handles POST /api/v1/ledger/deposits.
func (h *LedgerHandler) Deposit(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.ledgerSvc.DepositAndSplit(c.Request.Context(), id, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	allocations := make(map[string]int64, len(result.Allocations))
	for bucket, amount := range result.Allocations {
		allocations[bucket.String()] = amount
	}

	response.Created(c, dto.DepositResponse{
		Amount:      result.Amount,
		Fee:         result.Fee,
		Net:         result.Net,
		Allocations: allocations,
		Overflowed:  result.Overflowed,
	})
}

// Transfer handles POST /api/v1/ledger/transfers.
func (h *LedgerHandler) Transfer(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.BucketTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	from, err := domain.ParseBucket(req.From)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	to, err := domain.ParseBucket(req.To)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledgerSvc.TransferBetweenBuckets(c.Request.Context(), id, from, to, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Withdraw handles POST /api/v1/ledger/withdrawals.
func (h *LedgerHandler) Withdraw(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	bucket, err := domain.ParseBucket(req.Bucket)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledgerSvc.WithdrawFromBucket(c.Request.Context(), id, bucket, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// SetWithdrawLimit handles PUT /api/v1/ledger/withdraw-limit.
func (h *LedgerHandler) SetWithdrawLimit(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.WithdrawLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledgerSvc.SetDailyWithdrawLimit(c.Request.Context(), id, req.DailyLimit); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// RequestEmergency handles POST /api/v1/ledger/emergency.
func (h *LedgerHandler) RequestEmergency(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	req, err := h.ledgerSvc.RequestEmergencyWithdraw(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.EmergencyRequestResponse{
		RequestedAt:  req.RequestedAt.Format(time.RFC3339),
		ExecutableAt: req.RequestedAt.Add(h.emergencyDelay).Format(time.RFC3339),
	})
}

// ExecuteEmergency handles POST /api/v1/ledger/emergency/execute.
func (h *LedgerHandler) ExecuteEmergency(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	bucket, err := domain.ParseBucket(req.Bucket)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.ledgerSvc.ExecuteEmergencyWithdraw(c.Request.Context(), id, bucket, req.Amount); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// GetBalances handles GET /api/v1/ledger/balances.
func (h *LedgerHandler) GetBalances(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	balances, err := h.ledgerSvc.GetBalances(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.BalancesResponse{Balances: make([]dto.BalanceResponse, 0, len(balances))}
	for _, b := range balances {
		resp.Balances = append(resp.Balances, dto.BalanceResponse{
			Bucket:  b.Bucket.String(),
			Balance: b.Balance,
		})
		resp.Total += b.Balance
	}

	response.OK(c, resp)
}
