package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
	"budgetly/internal/pagination"
)

// maxDecrementAttempts bounds the retry loop when the conditional
// decrement loses a race against a concurrent expense on the same budget.
const maxDecrementAttempts = 3

// errDecrementLost signals that the conditional UPDATE matched no row.
var errDecrementLost = errors.New("budget decrement matched no row")

// ledgerService owns budgets and expenses and enforces the spend-limit
// invariant at write time: remaining_cents never goes negative, and
// total - remaining always equals the sum of linked expenses.
type ledgerService struct {
	db    *gorm.DB
	clock Clock
}

// NewLedgerService creates a LedgerServicer using the wall clock.
func NewLedgerService(db *gorm.DB) LedgerServicer {
	return NewLedgerServiceWithClock(db, time.Now)
}

// NewLedgerServiceWithClock creates a LedgerServicer with an explicit
// clock, which tests use to pin the budget period.
func NewLedgerServiceWithClock(db *gorm.DB, clock Clock) LedgerServicer {
	return &ledgerService{db: db, clock: clock}
}

// CreateBudget creates the budget for (user, month, year). There is no
// upsert: a second budget for the same period fails with BUDGET_EXISTS
// and leaves the first untouched.
func (s *ledgerService) CreateBudget(userID uint, month, year int, totalCents int64) (*models.Budget, error) {
	if totalCents <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "total budget must be greater than zero")
	}
	if month < 1 || month > 12 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "month must be between 1 and 12")
	}

	var count int64
	if err := s.db.Model(&models.Budget{}).
		Where("user_id = ? AND month = ? AND year = ?", userID, month, year).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrBudgetExists
	}

	budget := &models.Budget{
		UserID:         userID,
		Month:          month,
		Year:           year,
		TotalCents:     totalCents,
		RemainingCents: totalCents,
	}

	if err := s.db.Create(budget).Error; err != nil {
		// The unique index backstops concurrent creates for the same period.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrBudgetExists
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return budget, nil
}

// GetCurrentBudget returns the summary for the period containing "now".
// Fails closed with BUDGET_NOT_FOUND when no budget exists, so expenses
// can never be recorded without an explicit budgeting decision.
func (s *ledgerService) GetCurrentBudget(userID uint) (*BudgetSummary, error) {
	budget, err := s.currentBudget(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBudgetNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return &BudgetSummary{
		Month:          budget.Month,
		Year:           budget.Year,
		TotalCents:     budget.TotalCents,
		RemainingCents: budget.RemainingCents,
		SpentCents:     budget.SpentCents(),
	}, nil
}

// AddExpense records an expense against the current month's budget and
// decrements the remaining amount in the same database transaction.
//
// The decrement is a conditional UPDATE guarded by remaining_cents >=
// amount, so two concurrent calls can never interleave their
// check-then-decrement steps. When the guard matches no row the budget is
// re-read: if the remaining amount is genuinely insufficient the call
// fails with BUDGET_EXCEEDED, otherwise it lost a race and retries, up to
// maxDecrementAttempts before surfacing CONCURRENT_UPDATE. A rejected
// expense leaves the budget and the expense table completely unchanged.
//
// The expense date and its budget period both come from the service
// clock, never from the caller, which forecloses back-dating an expense
// into a different month's budget.
func (s *ledgerService) AddExpense(userID uint, amountCents int64, category, description string) (*models.Expense, int64, error) {
	if amountCents <= 0 {
		return nil, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if category == "" {
		return nil, 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}

	for attempt := 0; attempt < maxDecrementAttempts; attempt++ {
		budget, err := s.currentBudget(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, apperrors.ErrBudgetNotSet
			}
			return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		// Strict check: an expense equal to the remaining amount is allowed.
		if amountCents > budget.RemainingCents {
			return nil, 0, apperrors.ErrBudgetExceeded
		}

		expense := &models.Expense{
			UserID:      userID,
			BudgetID:    budget.ID,
			Category:    category,
			AmountCents: amountCents,
			Description: description,
			Date:        s.clock(),
		}

		var remaining int64
		err = s.db.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&models.Budget{}).
				Where("id = ? AND remaining_cents >= ?", budget.ID, amountCents).
				UpdateColumn("remaining_cents", gorm.Expr("remaining_cents - ?", amountCents))
			if res.Error != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
			}
			if res.RowsAffected == 0 {
				return errDecrementLost
			}

			if err := tx.Create(expense).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}

			var updated models.Budget
			if err := tx.First(&updated, budget.ID).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			remaining = updated.RemainingCents
			return nil
		})
		if errors.Is(err, errDecrementLost) {
			// A concurrent expense consumed the remaining amount between
			// our read and the decrement; re-read and decide again.
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		return expense, remaining, nil
	}

	return nil, 0, apperrors.ErrConcurrentUpdate
}

// ListExpenses returns the user's expenses, newest first.
func (s *ledgerService) ListExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)
	if filter.Category != nil {
		base = base.Where("category = ?", *filter.Category)
	}
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// currentBudget looks up the budget for the period containing the
// service clock's "now". Returns gorm.ErrRecordNotFound when absent.
func (s *ledgerService) currentBudget(userID uint) (*models.Budget, error) {
	now := s.clock()
	var budget models.Budget
	err := s.db.
		Where("user_id = ? AND month = ? AND year = ?", userID, int(now.Month()), now.Year()).
		First(&budget).Error
	if err != nil {
		return nil, err
	}
	return &budget, nil
}
