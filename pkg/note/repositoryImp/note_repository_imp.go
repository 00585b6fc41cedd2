package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmassist/entities"
	"farmassist/pkg/note/repository"
)

type noteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NoteRepository { return &noteRepo{db} }

// Upsert is a single store-level operation (INSERT .. ON CONFLICT), not a
// read-then-write, so concurrent saves for the same (selection, week) cannot
// produce duplicate rows.
func (r *noteRepo) Upsert(selectionID uint, week int, note string) (*entities.Note, error) {
	n := entities.Note{SelectionID: selectionID, Week: week, Note: note}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "selection_id"}, {Name: "week"}},
		DoUpdates: clause.AssignmentColumns([]string{"note", "updated_at"}),
	}).Create(&n).Error; err != nil {
		return nil, err
	}
	// reload: on the update path the insert struct has no note_id
	var out entities.Note
	if err := r.db.Where("selection_id = ? AND week = ?", selectionID, week).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *noteRepo) ListBySelection(selectionID uint) ([]entities.Note, error) {
	var out []entities.Note
	if err := r.db.Where("selection_id = ?", selectionID).Order("week ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
