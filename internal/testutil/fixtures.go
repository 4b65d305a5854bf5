package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"budgetly/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestBudget creates a budget for the given period with the full
// amount still remaining.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, month, year int, totalCents int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:         userID,
		Month:          month,
		Year:           year,
		TotalCents:     totalCents,
		RemainingCents: totalCents,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestExpense creates an expense against the given budget, dated now.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID, budgetID uint, category string, amountCents int64) *models.Expense {
	t.Helper()
	return CreateTestExpenseOn(t, db, userID, budgetID, category, amountCents, time.Now())
}

// CreateTestExpenseOn creates an expense with an explicit date.
func CreateTestExpenseOn(t *testing.T, db *gorm.DB, userID, budgetID uint, category string, amountCents int64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		BudgetID:    budgetID,
		Category:    category,
		AmountCents: amountCents,
		Date:        date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestIncome creates an income entry with the given amount (in cents).
func CreateTestIncome(t *testing.T, db *gorm.DB, userID uint, amountCents int64, date time.Time) *models.Income {
	t.Helper()

	income := &models.Income{
		UserID:      userID,
		Source:      fmt.Sprintf("Test Source %d", nextID()),
		AmountCents: amountCents,
		Currency:    "USD",
		Date:        date,
	}
	if err := db.Create(income).Error; err != nil {
		t.Fatalf("failed to create test income: %v", err)
	}
	return income
}

// CreateTestGoal creates an advisory limit for the given category.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID uint, category string, limitCents int64) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:     userID,
		Category:   category,
		LimitCents: limitCents,
		Currency:   "USD",
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
