package repositoryImp

import (
	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/selection/repository"
)

type selectionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SelectionRepository { return &selectionRepo{db} }

func (r *selectionRepo) Create(s *entities.Selection) error { return r.db.Create(s).Error }

func (r *selectionRepo) ListByUser(userID uint) ([]entities.Selection, error) {
	var out []entities.Selection
	if err := r.db.Where("user_id = ? AND status = ?", userID, "active").
		Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *selectionRepo) FindByID(id uint) (*entities.Selection, error) {
	var s entities.Selection
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *selectionRepo) Exists(id uint) (bool, error) {
	var n int64
	if err := r.db.Model(&entities.Selection{}).Where("selection_id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
