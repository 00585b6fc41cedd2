package entities

import "time"

type User struct {
	UserID       uint   `gorm:"primaryKey" json:"user_id"`
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`
	CreatedAt    time.Time
}
