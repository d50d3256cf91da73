package models

import "time"

type Member struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	FirstName string     `json:"first_name" gorm:"size:60;not null"`
	LastName  string     `json:"last_name" gorm:"size:60;not null;index"`
	Phone     string     `json:"phone" gorm:"size:20"`
	Email     string     `json:"email" gorm:"size:120"`
	Address   string     `json:"address" gorm:"type:text"`
	Status    string     `json:"status" gorm:"size:20;not null;default:'Activo'"` // free-form, e.g. "Activo"
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
