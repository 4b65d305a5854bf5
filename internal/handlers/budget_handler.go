package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/services"
)

// BudgetHandler handles monthly budget requests.
type BudgetHandler struct {
	ledgerService services.LedgerServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(ledgerService services.LedgerServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{ledgerService: ledgerService, auditService: auditService}
}

// SetBudgetRequest represents the request payload for setting a monthly budget.
type SetBudgetRequest struct {
	Month      int   `json:"month" binding:"required,budget_month"`
	Year       int   `json:"year" binding:"required,min=2000,max=2200"`
	TotalCents int64 `json:"total_cents" binding:"required,gt=0"`
}

// SetBudget handles creating the budget for a month.
// @Summary     Set a monthly budget
// @Description Create the budget for a month. At most one budget exists per month; there is no upsert.
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SetBudgetRequest true "Budget details"
// @Success     201 {object} models.Budget "Budget created"
// @Failure     400 {object} ErrorResponse "Invalid input or budget already exists"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget [post]
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.ledgerService.CreateBudget(userID, req.Month, req.Year, req.TotalCents)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "SET_BUDGET", "budget", budget.ID, c.ClientIP(),
		map[string]interface{}{"month": req.Month, "year": req.Year, "total_cents": req.TotalCents})

	c.JSON(http.StatusCreated, gin.H{"budget": budget})
}

// GetCurrentBudget handles retrieving the current month's budget summary.
// @Summary     Get current budget
// @Description Get the budget summary (total, remaining, spent) for the current month
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.BudgetSummary "Budget summary"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "No budget set for the current month"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budget/current [get]
func (h *BudgetHandler) GetCurrentBudget(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.ledgerService.GetCurrentBudget(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
