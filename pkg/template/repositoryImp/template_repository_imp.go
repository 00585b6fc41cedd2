package repositoryImp

import (
	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/template/repository"
)

type templateRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.TemplateRepository { return &templateRepo{db} }

// FindByType is an exact match; the NOCASE collation on issue_type makes it
// case-insensitive at the store level.
func (r *templateRepo) FindByType(issueType string) (*entities.IssueTemplate, error) {
	var t entities.IssueTemplate
	if err := r.db.Preload("WeeklySolutions").Where("issue_type = ?", issueType).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *templateRepo) List() ([]entities.IssueTemplate, error) {
	var ts []entities.IssueTemplate
	if err := r.db.Preload("WeeklySolutions").Order("issue_type ASC").Find(&ts).Error; err != nil {
		return nil, err
	}
	return ts, nil
}

func (r *templateRepo) Create(t *entities.IssueTemplate) error {
	t.WeeklySolutions = dedupeByWeek(t.WeeklySolutions)
	return r.db.Create(t).Error
}

// Update replaces the weekly solution set wholesale so the
// (template_id, week) unique index always holds.
func (r *templateRepo) Update(id uint, description, solution string, weekly []entities.WeeklySolution) (*entities.IssueTemplate, error) {
	var t entities.IssueTemplate
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, id).Error; err != nil {
			return err
		}
		t.Description = description
		t.Solution = solution
		if err := tx.Model(&t).Updates(map[string]any{"description": description, "solution": solution}).Error; err != nil {
			return err
		}
		if err := tx.Where("template_id = ?", id).Delete(&entities.WeeklySolution{}).Error; err != nil {
			return err
		}
		rows := dedupeByWeek(weekly)
		for i := range rows {
			rows[i].ID = 0
			rows[i].TemplateID = id
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		t.WeeklySolutions = rows
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *templateRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", id).Delete(&entities.WeeklySolution{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.IssueTemplate{}, id).Error
	})
}

// dedupeByWeek keeps the last entry per week value.
func dedupeByWeek(in []entities.WeeklySolution) []entities.WeeklySolution {
	idx := map[int]int{}
	out := make([]entities.WeeklySolution, 0, len(in))
	for _, ws := range in {
		if i, ok := idx[ws.Week]; ok {
			out[i] = ws
			continue
		}
		idx[ws.Week] = len(out)
		out = append(out, ws)
	}
	return out
}
