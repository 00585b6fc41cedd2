package repository

import "farmassist/entities"

type ProductRepository interface {
	Create(p *entities.Product) error
	List() ([]entities.Product, error)
}
