package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"budgetly/internal/advisor"
	apperrors "budgetly/internal/errors"
	"budgetly/internal/services"
)

// ReportHandler handles monthly summary and assistant requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetMonthlySummary handles retrieving the derived figures for the current month.
// @Summary     Get monthly summary
// @Description Get totals, savings rate, category breakdown, goal progress, and projected spend for the current month
// @Tags        reports
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} report.MonthlyReport "Monthly report"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary [get]
func (h *ReportHandler) GetMonthlySummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rep, err := h.reportService.MonthlySummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rep)
}

// AskRequest represents a question for the assistant.
type AskRequest struct {
	Question string `json:"question" binding:"required,min=1,max=500"`
}

// Ask handles a question for the scripted assistant.
// @Summary     Ask the assistant
// @Description Get a canned, deterministic answer derived from the current monthly report
// @Tags        assistant
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AskRequest true "Question"
// @Success     200 {object} MessageResponse "Markdown answer"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /assistant/ask [post]
func (h *ReportHandler) Ask(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	rep, err := h.reportService.MonthlySummary(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": advisor.Respond(req.Question, *rep)})
}
