package repository

import "farmassist/entities"

type MetadataRepository interface {
	ListStates() ([]entities.State, error)
	FindStateByName(name string) (*entities.State, error)
	ListCrops(state, season string) ([]entities.Crop, error)
}
