package repositoryImp

import (
	"errors"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmassist/entities"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // every pooled conn gets its own :memory: db
	require.NoError(t, db.AutoMigrate(&entities.IssueTemplate{}, &entities.WeeklySolution{}))
	return db
}

func TestFindByTypeIsCaseInsensitiveExact(t *testing.T) {
	repo := New(openTestDB(t))
	require.NoError(t, repo.Create(&entities.IssueTemplate{
		IssueType: "Heavy Rain",
		Solution:  "Drain the field",
		WeeklySolutions: []entities.WeeklySolution{
			{Week: 3, Solution: "Drain field"},
		},
	}))

	got, err := repo.FindByType("heavy rain")
	require.NoError(t, err)
	assert.Equal(t, "Heavy Rain", got.IssueType)
	require.Len(t, got.WeeklySolutions, 1)
	assert.Equal(t, 3, got.WeeklySolutions[0].Week)

	// partial strings never match
	_, err = repo.FindByType("heavy")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCreateDeduplicatesWeeklySolutionsLastWins(t *testing.T) {
	repo := New(openTestDB(t))
	require.NoError(t, repo.Create(&entities.IssueTemplate{
		IssueType: "Pest",
		WeeklySolutions: []entities.WeeklySolution{
			{Week: 2, Solution: "first"},
			{Week: 2, Solution: "second"},
		},
	}))

	got, err := repo.FindByType("pest")
	require.NoError(t, err)
	require.Len(t, got.WeeklySolutions, 1)
	assert.Equal(t, "second", got.WeeklySolutions[0].Solution)
}

func TestUpdateReplacesWeeklySet(t *testing.T) {
	repo := New(openTestDB(t))
	tpl := &entities.IssueTemplate{
		IssueType: "Drought",
		Solution:  "old",
		WeeklySolutions: []entities.WeeklySolution{
			{Week: 1, Solution: "old week 1"},
			{Week: 2, Solution: "old week 2"},
		},
	}
	require.NoError(t, repo.Create(tpl))

	_, err := repo.Update(tpl.TemplateID, "desc", "new", []entities.WeeklySolution{
		{Week: 5, Solution: "new week 5"},
	})
	require.NoError(t, err)

	got, err := repo.FindByType("drought")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Solution)
	require.Len(t, got.WeeklySolutions, 1)
	assert.Equal(t, 5, got.WeeklySolutions[0].Week)
}

func TestDeleteRemovesTemplateAndWeeklyRows(t *testing.T) {
	db := openTestDB(t)
	repo := New(db)
	tpl := &entities.IssueTemplate{
		IssueType:       "Frost",
		WeeklySolutions: []entities.WeeklySolution{{Week: 1, Solution: "cover"}},
	}
	require.NoError(t, repo.Create(tpl))
	require.NoError(t, repo.Delete(tpl.TemplateID))

	_, err := repo.FindByType("frost")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var n int64
	require.NoError(t, db.Model(&entities.WeeklySolution{}).Count(&n).Error)
	assert.Zero(t, n)
}
