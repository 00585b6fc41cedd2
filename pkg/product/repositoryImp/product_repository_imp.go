package repositoryImp

import (
	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/product/repository"
)

type productRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ProductRepository { return &productRepo{db} }

func (r *productRepo) Create(p *entities.Product) error { return r.db.Create(p).Error }

func (r *productRepo) List() ([]entities.Product, error) {
	var out []entities.Product
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
