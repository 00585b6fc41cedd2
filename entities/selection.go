package entities

import "time"

type Selection struct {
	SelectionID uint      `gorm:"primaryKey" json:"selection_id"`
	UserID      uint      `gorm:"index" json:"user_id"`
	State       string    `json:"state"`
	Crop        string    `json:"crop"`
	Season      string    `json:"season"` // Kharif|Rabi|Zaid
	SowingDate  time.Time `json:"sowingDate"`
	AreaAcres   float64   `json:"area"`
	Status      string    `json:"status"` // active|completed|cancelled
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
