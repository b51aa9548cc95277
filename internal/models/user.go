package models

import "time"

// User represents a customer of the meal-kit store.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name         string    `json:"name" gorm:"uniqueIndex;type:varchar(100)"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"`
	CountryCode  string    `json:"country_code" gorm:"type:varchar(10)"`
	Phone        string    `json:"phone" gorm:"type:varchar(20)"`
	Address      string    `json:"address" gorm:"type:text"`
	IsActive     bool      `json:"is_active" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
