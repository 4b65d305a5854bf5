package services

import (
	"gorm.io/gorm"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/models"
)

// categoryService handles expense categories.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// GetUserCategories returns the user's categories ordered by name.
func (s *categoryService) GetUserCategories(userID uint) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Where("user_id = ?", userID).Order("name").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// SeedDefaults creates the default category set for a new user.
func (s *categoryService) SeedDefaults(userID uint) error {
	categories := make([]models.Category, len(models.DefaultCategories))
	for i, c := range models.DefaultCategories {
		categories[i] = models.Category{
			UserID: userID,
			Name:   c.Name,
			Color:  c.Color,
			Icon:   c.Icon,
		}
	}

	if err := s.db.Create(&categories).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
