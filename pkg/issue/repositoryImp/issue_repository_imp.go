package repositoryImp

import (
	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/issue/repository"
)

type issueRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.IssueRepository { return &issueRepo{db} }

func (r *issueRepo) Create(i *entities.Issue) error { return r.db.Create(i).Error }

func (r *issueRepo) FindByID(id uint) (*entities.Issue, error) {
	var i entities.Issue
	if err := r.db.First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *issueRepo) ListBySelection(selectionID uint) ([]entities.Issue, error) {
	var out []entities.Issue
	if err := r.db.Where("selection_id = ?", selectionID).
		Order("week ASC, created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *issueRepo) ListAll() ([]entities.Issue, error) {
	var out []entities.Issue
	if err := r.db.Order("selection_id ASC, week ASC, created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// SetAISolution touches only the ai_solution column; the recommendation
// snapshot written at creation stays as it was.
func (r *issueRepo) SetAISolution(id uint, solution string) error {
	return r.db.Model(&entities.Issue{}).Where("issue_id = ?", id).
		Update("ai_solution", solution).Error
}
