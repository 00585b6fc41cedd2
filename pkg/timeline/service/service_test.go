package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmassist/entities"
)

type fakeRepo struct {
	crop     *entities.Crop
	tasks    []entities.TimelineTask
	products map[uint]entities.Product
}

func (f *fakeRepo) FindCropByName(string) (*entities.Crop, error) {
	if f.crop == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.crop, nil
}

func (f *fakeRepo) ListTasks(uint, string) ([]entities.TimelineTask, error) { return f.tasks, nil }

func (f *fakeRepo) ProductsByIDs([]uint) (map[uint]entities.Product, error) {
	return f.products, nil
}

func TestForCropUnknownCrop(t *testing.T) {
	svc := New(&fakeRepo{})
	_, err := svc.ForCrop("mango", "Kharif", nil)
	assert.True(t, errors.Is(err, ErrCropNotFound))
}

func TestForCropProjectsWeekStartDates(t *testing.T) {
	svc := New(&fakeRepo{
		crop: &entities.Crop{CropID: 1, Name: "Wheat"},
		tasks: []entities.TimelineTask{
			{Week: 1, Task: "Sowing"},
			{Week: 4, Task: "First irrigation"},
		},
		products: map[uint]entities.Product{},
	})

	sowing := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	items, err := svc.ForCrop("Wheat", "Rabi", &sowing)
	require.NoError(t, err)
	require.Len(t, items, 2)

	// week 1 starts on the sowing date itself
	assert.Equal(t, sowing, *items[0].StartDate)
	assert.Equal(t, sowing.AddDate(0, 0, 21), *items[1].StartDate)
}

func TestForCropWithoutSowingDateOmitsStartDates(t *testing.T) {
	svc := New(&fakeRepo{
		crop:     &entities.Crop{CropID: 1, Name: "Wheat"},
		tasks:    []entities.TimelineTask{{Week: 2, Task: "Weeding"}},
		products: map[uint]entities.Product{},
	})

	items, err := svc.ForCrop("Wheat", "Rabi", nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].StartDate)
}

func TestForCropAttachesRecommendedProducts(t *testing.T) {
	svc := New(&fakeRepo{
		crop: &entities.Crop{CropID: 1, Name: "Rice"},
		tasks: []entities.TimelineTask{
			{Week: 3, Task: "Fertilizer", RecommendedProducts: []uint{10, 11, 99}},
		},
		products: map[uint]entities.Product{
			10: {ProductID: 10, Name: "Urea"},
			11: {ProductID: 11, Name: "DAP"},
		},
	})

	items, err := svc.ForCrop("Rice", "Kharif", nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Len(t, items[0].RecommendedProducts, 2)
	assert.Equal(t, "Urea", items[0].RecommendedProducts[0].Name)
}
