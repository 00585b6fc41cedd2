package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/timeline/repository"
)

var ErrCropNotFound = errors.New("crop not found")

type WeekItem struct {
	Week                int                `json:"week"`
	Task                string             `json:"task"`
	Description         string             `json:"description"`
	RecommendedProducts []entities.Product `json:"recommendedProducts"`
	StartDate           *time.Time         `json:"startDate,omitempty"`
}

type Service interface {
	ForCrop(cropName, season string, sowingDate *time.Time) ([]WeekItem, error)
}

type service struct{ r repository.TimelineRepository }

func New(r repository.TimelineRepository) Service { return &service{r: r} }

func (s *service) ForCrop(cropName, season string, sowingDate *time.Time) ([]WeekItem, error) {
	crop, err := s.r.FindCropByName(cropName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCropNotFound
		}
		return nil, err
	}
	tasks, err := s.r.ListTasks(crop.CropID, season)
	if err != nil {
		return nil, err
	}

	var ids []uint
	for _, t := range tasks {
		ids = append(ids, t.RecommendedProducts...)
	}
	products, err := s.r.ProductsByIDs(ids)
	if err != nil {
		return nil, err
	}

	out := make([]WeekItem, 0, len(tasks))
	for _, t := range tasks {
		item := WeekItem{
			Week:                t.Week,
			Task:                t.Task,
			Description:         t.Description,
			RecommendedProducts: []entities.Product{},
		}
		for _, id := range t.RecommendedProducts {
			if p, ok := products[id]; ok {
				item.RecommendedProducts = append(item.RecommendedProducts, p)
			}
		}
		if sowingDate != nil {
			// week 1 starts on the sowing date
			d := sowingDate.AddDate(0, 0, (t.Week-1)*7)
			item.StartDate = &d
		}
		out = append(out, item)
	}
	return out, nil
}
