package repository

import "farmassist/entities"

type TimelineRepository interface {
	FindCropByName(name string) (*entities.Crop, error)
	ListTasks(cropID uint, season string) ([]entities.TimelineTask, error)
	ProductsByIDs(ids []uint) (map[uint]entities.Product, error)
}
