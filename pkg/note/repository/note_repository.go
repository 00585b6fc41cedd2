package repository

import "farmassist/entities"

type NoteRepository interface {
	Upsert(selectionID uint, week int, note string) (*entities.Note, error)
	ListBySelection(selectionID uint) ([]entities.Note, error)
}
