package repository

import "farmassist/entities"

type TemplateRepository interface {
	FindByType(issueType string) (*entities.IssueTemplate, error)
	List() ([]entities.IssueTemplate, error)
	Create(t *entities.IssueTemplate) error
	Update(id uint, description, solution string, weekly []entities.WeeklySolution) (*entities.IssueTemplate, error)
	Delete(id uint) error
}
