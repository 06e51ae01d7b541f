package entities

import "time"

// AuthToken is the opaque bearer credential, one per user.
type AuthToken struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
