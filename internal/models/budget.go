package models

// Budget represents the monthly spending ceiling for one user and period.
// At most one budget exists per (user, month, year); remaining_cents is
// mutated only by the expense-creation flow and never drops below zero.
type Budget struct {
	Base
	UserID         uint  `gorm:"not null;uniqueIndex:idx_budget_user_period" json:"user_id"`
	Month          int   `gorm:"not null;uniqueIndex:idx_budget_user_period" json:"month"`
	Year           int   `gorm:"not null;uniqueIndex:idx_budget_user_period" json:"year"`
	TotalCents     int64 `gorm:"not null" json:"total_cents"`
	RemainingCents int64 `gorm:"not null" json:"remaining_cents"`
}

// SpentCents returns the total spent against this budget.
func (b *Budget) SpentCents() int64 {
	return b.TotalCents - b.RemainingCents
}
