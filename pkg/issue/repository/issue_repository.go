package repository

import "farmassist/entities"

type IssueRepository interface {
	Create(i *entities.Issue) error
	FindByID(id uint) (*entities.Issue, error)
	ListBySelection(selectionID uint) ([]entities.Issue, error)
	ListAll() ([]entities.Issue, error)
	SetAISolution(id uint, solution string) error
}
