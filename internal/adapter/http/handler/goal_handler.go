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
)

// GoalHandler handles savings goal endpoints.
type GoalHandler struct {
	goalSvc ports.GoalService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalSvc ports.GoalService) *GoalHandler {
	return &GoalHandler{goalSvc: goalSvc}
}

// Create handles POST /api/v1/goals.
func (h *GoalHandler) Create(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.GoalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	targetDate, err := time.Parse(time.RFC3339, req.TargetDate)
	if err != nil {
		response.Error(c, apperror.ErrInvalidDate("target_date must be RFC 3339"))
		return
	}

	goal, err := h.goalSvc.CreateSavingsGoal(c.Request.Context(), id, req.TargetAmount, targetDate, req.Description)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toGoalResponse(goal))
}

// Contribute handles POST /api/v1/goals/:goal_id/contributions.
func (h *GoalHandler) Contribute(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	goalID, err := strconv.ParseInt(c.Param("goal_id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invalid goal id"))
		return
	}

	var req dto.GoalContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	goal, err := h.goalSvc.ContributeToGoal(c.Request.Context(), id, goalID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toGoalResponse(goal))
}

// List handles GET /api/v1/goals.
func (h *GoalHandler) List(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		return
	}

	goals, err := h.goalSvc.ListGoals(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]dto.GoalResponse, 0, len(goals))
	for i := range goals {
		resp = append(resp, toGoalResponse(&goals[i]))
	}
	response.OK(c, resp)
}

func toGoalResponse(g *domain.SavingsGoal) dto.GoalResponse {
	return dto.GoalResponse{
		GoalID:        g.GoalID,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		TargetDate:    g.TargetDate.Format(time.RFC3339),
		Description:   g.Description,
		Completed:     g.Completed,
		Locked:        g.Locked,
		BonusAPYBps:   g.BonusAPYBps,
		CreatedAt:     g.CreatedAt.Format(time.RFC3339),
	}
}
