package entities

import "time"

// Tag is a user-scoped label. Two users can each own a tag with the
// same name; the composite unique index keeps (user_id, name) unique
// at the storage layer so concurrent get-or-create cannot duplicate.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_tags_user_name;not null" json:"user_id"`
	Name      string    `gorm:"uniqueIndex:idx_tags_user_name;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
