package repositoryImp

import (
	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/metadata/repository"
)

type metaRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MetadataRepository { return &metaRepo{db} }

func (r *metaRepo) ListStates() ([]entities.State, error) {
	var out []entities.State
	if err := r.db.Order("name ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *metaRepo) FindStateByName(name string) (*entities.State, error) {
	var s entities.State
	if err := r.db.Where("name = ?", name).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// ListCrops filters in memory; reference data is a few dozen rows and the
// season/state lists live in JSON columns.
func (r *metaRepo) ListCrops(state, season string) ([]entities.Crop, error) {
	var all []entities.Crop
	if err := r.db.Order("name ASC").Find(&all).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Crop, 0, len(all))
	for _, c := range all {
		if state != "" && !contains(c.AllowedStates, state) {
			continue
		}
		if season != "" && !contains(c.Seasons, season) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func contains(xs []string, v string) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
