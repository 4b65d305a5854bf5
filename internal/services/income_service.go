package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
	"budgetly/internal/pagination"
)

// incomeService handles income-related business logic.
type incomeService struct {
	db    *gorm.DB
	clock Clock
}

// NewIncomeService creates a new IncomeServicer.
func NewIncomeService(db *gorm.DB) IncomeServicer {
	return &incomeService{db: db, clock: time.Now}
}

// AddIncome records an income entry. Incomes carry no budget invariant;
// they are purely additive to the income side of the balance.
func (s *incomeService) AddIncome(userID uint, source string, amountCents int64, currency, note string, date time.Time) (*models.Income, error) {
	if amountCents <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if source == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "source is required")
	}
	if currency == "" {
		currency = "USD"
	}
	if date.IsZero() {
		date = s.clock()
	}

	income := &models.Income{
		UserID:      userID,
		Source:      source,
		AmountCents: amountCents,
		Currency:    currency,
		Note:        note,
		Date:        date,
	}

	if err := s.db.Create(income).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return income, nil
}

// GetUserIncomes returns a paginated list of the user's incomes, newest first.
func (s *incomeService) GetUserIncomes(userID uint, page pagination.PageRequest) (*pagination.PageResponse[models.Income], error) {
	page.Defaults()

	base := s.db.Model(&models.Income{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var incomes []models.Income
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC").
		Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(incomes, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// DeleteIncome removes an income entry if it belongs to the user.
func (s *incomeService) DeleteIncome(userID, incomeID uint) error {
	var income models.Income
	if err := s.db.Where("id = ? AND user_id = ?", incomeID, userID).First(&income).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrIncomeNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&income).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
