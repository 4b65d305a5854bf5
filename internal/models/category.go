package models

// Category represents an expense category with display attributes.
type Category struct {
	Base
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null;size:100" json:"name"`
	Color  string `gorm:"size:7" json:"color"`
	Icon   string `gorm:"size:16" json:"icon"`
}

// DefaultCategories are seeded for every new user.
var DefaultCategories = []Category{
	{Name: "Food & Dining", Color: "#E8705A", Icon: "🍽️"},
	{Name: "Transportation", Color: "#2DB5A3", Icon: "🚗"},
	{Name: "Entertainment", Color: "#E6C84D", Icon: "🎮"},
	{Name: "Shopping", Color: "#8B6FD8", Icon: "🛍️"},
	{Name: "Health", Color: "#34B87A", Icon: "💊"},
	{Name: "Bills & Utilities", Color: "#5A8FE6", Icon: "⚡"},
	{Name: "Education", Color: "#D85A93", Icon: "📚"},
	{Name: "Travel", Color: "#E6943A", Icon: "✈️"},
}
