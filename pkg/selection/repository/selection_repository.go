package repository

import "farmassist/entities"

type SelectionRepository interface {
	Create(s *entities.Selection) error
	ListByUser(userID uint) ([]entities.Selection, error)
	FindByID(id uint) (*entities.Selection, error)
	Exists(id uint) (bool, error)
}
