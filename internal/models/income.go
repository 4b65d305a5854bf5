package models

import "time"

// Income represents money received from a source. Incomes are not linked
// to a budget; they only feed the income side of the balance computation.
type Income struct {
	Base
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Source      string    `gorm:"not null;size:100" json:"source"`
	AmountCents int64     `gorm:"not null" json:"amount_cents"`
	Currency    string    `gorm:"not null;size:3;default:USD" json:"currency"`
	Note        string    `json:"note"`
	Date        time.Time `gorm:"not null" json:"date"`
}
