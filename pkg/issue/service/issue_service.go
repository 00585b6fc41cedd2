package service

import (
	"errors"

	"farmassist/entities"
)

// ErrSelectionNotFound: the report referenced a selection that does not
// exist. Surfaced to the caller; nothing is written.
var ErrSelectionNotFound = errors.New("selection not found")

// SolutionInput feeds an enrichment call. IssueID may be zero, in which case
// the generated text is returned without being persisted.
type SolutionInput struct {
	IssueID   uint
	IssueType string
	Details   string
	Week      int
	CropName  string
	Season    string
	State     string
	Location  string
}

type IssueService interface {
	Create(selectionID uint, week int, issueType, details string) (*entities.Issue, entities.Adjustments, error)
	Get(id uint) (*entities.Issue, error)
	ListBySelection(selectionID uint) ([]entities.Issue, error)
	GenerateSolution(in SolutionInput) (string, error)
}
