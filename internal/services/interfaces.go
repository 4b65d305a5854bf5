package services

import (
	"time"

	"budgetly/internal/models"
	"budgetly/internal/pagination"
	"budgetly/internal/report"
)

// Clock supplies the current time. Services derive the active budget
// period from it, so tests can pin "now" instead of reading a global.
type Clock func() time.Time

// BudgetSummary is the read view of the current month's budget.
type BudgetSummary struct {
	Month          int   `json:"month"`
	Year           int   `json:"year"`
	TotalCents     int64 `json:"total"`
	RemainingCents int64 `json:"remaining"`
	SpentCents     int64 `json:"spent"`
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	Category *string
	FromDate *time.Time
	ToDate   *time.Time
}

// LedgerServicer defines the contract for budget and expense bookkeeping.
// It is the only mutator of a budget's remaining amount.
type LedgerServicer interface {
	CreateBudget(userID uint, month, year int, totalCents int64) (*models.Budget, error)
	GetCurrentBudget(userID uint) (*BudgetSummary, error)
	AddExpense(userID uint, amountCents int64, category, description string) (*models.Expense, int64, error)
	ListExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error)
}

// IncomeServicer defines the contract for income tracking.
type IncomeServicer interface {
	AddIncome(userID uint, source string, amountCents int64, currency, note string, date time.Time) (*models.Income, error)
	GetUserIncomes(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error)
	DeleteIncome(userID, incomeID uint) error
}

// GoalServicer defines the contract for advisory category limits.
type GoalServicer interface {
	CreateGoal(userID uint, category string, limitCents int64, currency string) (*models.Goal, error)
	GetUserGoals(userID uint) ([]models.Goal, error)
	UpdateGoal(userID, goalID uint, limitCents *int64, currency string) (*models.Goal, error)
	DeleteGoal(userID, goalID uint) error
}

// CategoryServicer defines the contract for expense categories.
type CategoryServicer interface {
	GetUserCategories(userID uint) ([]models.Category, error)
	SeedDefaults(userID uint) error
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	StoreRefreshTokenHash(userID uint, tokenHash string) error
	GetRefreshTokenHash(userID uint) (string, error)
}

// ReportServicer loads a user's snapshot and derives the monthly report.
type ReportServicer interface {
	MonthlySummary(userID uint) (*report.MonthlyReport, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
