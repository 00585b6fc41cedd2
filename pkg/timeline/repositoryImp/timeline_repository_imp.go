package repositoryImp

import (
	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/timeline/repository"
)

type timelineRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TimelineRepository { return &timelineRepo{db} }

func (r *timelineRepo) FindCropByName(name string) (*entities.Crop, error) {
	var c entities.Crop
	if err := r.db.Where("name = ?", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *timelineRepo) ListTasks(cropID uint, season string) ([]entities.TimelineTask, error) {
	var out []entities.TimelineTask
	q := r.db.Where("crop_id = ?", cropID)
	if season != "" {
		q = q.Where("season = ?", season)
	}
	if err := q.Order("week ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *timelineRepo) ProductsByIDs(ids []uint) (map[uint]entities.Product, error) {
	if len(ids) == 0 {
		return map[uint]entities.Product{}, nil
	}
	var ps []entities.Product
	if err := r.db.Where("product_id IN ?", ids).Find(&ps).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]entities.Product, len(ps))
	for i := range ps {
		m[ps[i].ProductID] = ps[i]
	}
	return m, nil
}
