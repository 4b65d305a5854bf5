package models

// Goal is an advisory per-category spending limit. Unlike the monthly
// budget it is never enforced at write time; exceeding it only changes
// the status reported by the monthly summary.
type Goal struct {
	Base
	UserID     uint   `gorm:"not null;uniqueIndex:idx_goal_user_category" json:"user_id"`
	Category   string `gorm:"not null;size:100;uniqueIndex:idx_goal_user_category" json:"category"`
	LimitCents int64  `gorm:"not null" json:"limit_cents"`
	Currency   string `gorm:"not null;size:3;default:USD" json:"currency"`
}
