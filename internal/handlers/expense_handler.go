package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/pagination"
	"budgetly/internal/services"
)

// ExpenseHandler handles expense requests.
type ExpenseHandler struct {
	ledgerService services.LedgerServicer
	auditService  services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(ledgerService services.LedgerServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{ledgerService: ledgerService, auditService: auditService}
}

// AddExpenseRequest represents the request payload for recording an expense.
// There is deliberately no date field: the expense date and its budget
// period are derived from the server clock.
type AddExpenseRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required,gt=0"`
	Category    string `json:"category" binding:"required,category_name,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// AddExpense handles recording an expense against the current budget.
// @Summary     Add an expense
// @Description Record an expense against the current month's budget and decrement the remaining amount
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created with post-decrement remaining budget"
// @Failure     400 {object} ErrorResponse "Invalid input, no budget set, or budget exceeded"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Concurrent update, retry"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) AddExpense(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	expense, remaining, err := h.ledgerService.AddExpense(userID, req.AmountCents, req.Category, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "ADD_EXPENSE", "expense", expense.ID, c.ClientIP(),
		map[string]interface{}{"amount_cents": req.AmountCents, "category": req.Category})

	c.JSON(http.StatusCreated, gin.H{
		"expense":          expense,
		"remaining_budget": remaining,
	})
}

// ListExpenses handles listing expenses for the authenticated user.
// @Summary     List expenses
// @Description Get a paginated list of expenses, newest first, with optional filters
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       category  query string false "Filter by category"
// @Param       from      query string false "Filter from date (RFC 3339)"
// @Param       to        query string false "Filter to date (RFC 3339)"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Paginated expenses"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var filter services.ExpenseFilter
	if v := c.Query("category"); v != "" {
		filter.Category = &v
	}
	if v := c.Query("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from must be an RFC 3339 timestamp"))
			return
		}
		filter.FromDate = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "to must be an RFC 3339 timestamp"))
			return
		}
		filter.ToDate = &t
	}

	result, err := h.ledgerService.ListExpenses(userID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
