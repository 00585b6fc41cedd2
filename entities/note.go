package entities

import "time"

// Note is keyed by (selection, week); repeated saves overwrite.
type Note struct {
	NoteID      uint   `gorm:"primaryKey" json:"note_id"`
	SelectionID uint   `gorm:"uniqueIndex:idx_selection_week" json:"selection"`
	Week        int    `gorm:"uniqueIndex:idx_selection_week" json:"week"`
	Note        string `json:"note"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
