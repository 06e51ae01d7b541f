package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe belongs to exactly one user. The owner is set from the
// authenticated session at creation and never changes afterwards.
type Recipe struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	Title       string          `json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `gorm:"type:numeric(5,2)" json:"price"`
	Link        string          `json:"link"`
	Tags        []Tag           `gorm:"many2many:recipe_tags" json:"tags"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
