package models

import "time"

// Expense represents a single spend event linked to the budget whose
// period it falls in. Expenses are append-only; the store defines no
// update or delete operation for them.
type Expense struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	BudgetID    uint      `gorm:"not null;index" json:"budget_id"`
	Category    string    `gorm:"not null;size:100" json:"category"`
	AmountCents int64     `gorm:"not null" json:"amount_cents"`
	Description string    `json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`

	// Relationships
	Budget Budget `gorm:"foreignKey:BudgetID" json:"-"`
}
