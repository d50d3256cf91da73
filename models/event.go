package models

import (
	"time"

	"gorm.io/gorm"
)

type Event struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:120;not null"`
	Description string    `json:"description" gorm:"type:text"`
	Date        time.Time `json:"date" gorm:"index;not null"`
	UserID      uint      `json:"user_id" gorm:"index;not null"` // FK → users.id
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Author resolves the creating user with an explicit query. The foreign key
// is held as a plain value; nothing is preloaded.
func (e *Event) Author(db *gorm.DB) (*User, error) {
	var u User
	if err := db.First(&u, "id = ?", e.UserID).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
