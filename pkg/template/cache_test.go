package template

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmassist/entities"
)

type countingRepo struct {
	template *entities.IssueTemplate
	err      error
	calls    int
}

func (r *countingRepo) FindByType(string) (*entities.IssueTemplate, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.template, nil
}

func (r *countingRepo) List() ([]entities.IssueTemplate, error) { return nil, nil }
func (r *countingRepo) Create(*entities.IssueTemplate) error    { return nil }
func (r *countingRepo) Update(uint, string, string, []entities.WeeklySolution) (*entities.IssueTemplate, error) {
	return nil, nil
}
func (r *countingRepo) Delete(uint) error { return nil }

func TestCacheReadThrough(t *testing.T) {
	repo := &countingRepo{template: &entities.IssueTemplate{IssueType: "Heavy Rain"}}
	c := NewCache(repo)

	for i := 0; i < 3; i++ {
		got, err := c.FindByType("Heavy Rain")
		require.NoError(t, err)
		assert.Equal(t, "Heavy Rain", got.IssueType)
	}
	assert.Equal(t, 1, repo.calls)

	// same template under case and whitespace variants of the key
	_, err := c.FindByType("  heavy rain ")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
}

func TestCacheDoesNotCacheMisses(t *testing.T) {
	repo := &countingRepo{err: gorm.ErrRecordNotFound}
	c := NewCache(repo)

	for i := 0; i < 2; i++ {
		_, err := c.FindByType("frost")
		assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	}
	assert.Equal(t, 2, repo.calls)
}

func TestInvalidateForcesRefetch(t *testing.T) {
	repo := &countingRepo{template: &entities.IssueTemplate{IssueType: "Pest", Solution: "old"}}
	c := NewCache(repo)

	got, err := c.FindByType("pest")
	require.NoError(t, err)
	assert.Equal(t, "old", got.Solution)

	repo.template = &entities.IssueTemplate{IssueType: "Pest", Solution: "new"}
	c.Invalidate()

	got, err = c.FindByType("pest")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Solution)
	assert.Equal(t, 2, repo.calls)
}
