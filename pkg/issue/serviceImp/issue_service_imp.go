package serviceImp

import (
	"log"

	"farmassist/entities"
	"farmassist/pkg/ai"
	issuerepo "farmassist/pkg/issue/repository"
	"farmassist/pkg/issue/service"
	"farmassist/pkg/resolution"
	selrepo "farmassist/pkg/selection/repository"
)

type kbSearcher interface {
	Search(query string, k int) ([]entities.KBChunk, error)
}

type IssueSvc struct {
	repo       issuerepo.IssueRepository
	selections selrepo.SelectionRepository
	engine     *resolution.Engine
	llm        ai.Client
	kb         kbSearcher
}

func NewIssueService(r issuerepo.IssueRepository, sel selrepo.SelectionRepository, engine *resolution.Engine, llm ai.Client, kb kbSearcher) *IssueSvc {
	return &IssueSvc{repo: r, selections: sel, engine: engine, llm: llm, kb: kb}
}

// Create resolves the recommendation exactly once and persists it with the
// issue in a single write. The snapshot is never recomputed afterwards.
func (s *IssueSvc) Create(selectionID uint, week int, issueType, details string) (*entities.Issue, entities.Adjustments, error) {
	ok, err := s.selections.Exists(selectionID)
	if err != nil {
		return nil, entities.Adjustments{}, err
	}
	if !ok {
		return nil, entities.Adjustments{}, service.ErrSelectionNotFound
	}

	adj := s.engine.Resolve(issueType, week)
	issue := &entities.Issue{
		SelectionID:            selectionID,
		Week:                   week,
		IssueType:              issueType,
		Details:                details,
		RecommendedAdjustments: adj,
	}
	if err := s.repo.Create(issue); err != nil {
		return nil, entities.Adjustments{}, err
	}
	return issue, adj, nil
}

func (s *IssueSvc) Get(id uint) (*entities.Issue, error) {
	return s.repo.FindByID(id)
}

func (s *IssueSvc) ListBySelection(selectionID uint) ([]entities.Issue, error) {
	return s.repo.ListBySelection(selectionID)
}

// GenerateSolution always produces text: upstream failures fall back to the
// deterministic rule-based generator. Only a persistence failure is an error.
func (s *IssueSvc) GenerateSolution(in service.SolutionInput) (string, error) {
	location := in.Location
	if location == "" {
		location = in.State
	}
	if location == "" {
		location = "India"
	}

	var kbCtx string
	if s.kb != nil {
		snips, _ := s.kb.Search(in.IssueType+" "+in.CropName+" "+location, 4)
		for _, ch := range snips {
			if len(kbCtx) > 4000 {
				break
			}
			kbCtx += "\n---\n" + ch.Text
		}
	}

	text, err := s.llm.GenerateSolution(ai.SolutionRequest{
		CropName:  in.CropName,
		Location:  location,
		Season:    in.Season,
		Week:      in.Week,
		IssueType: in.IssueType,
		Details:   in.Details,
		KBContext: kbCtx,
	})
	if err != nil {
		log.Printf("[ai] inference failed, using fallback: %v", err)
		text = ai.FallbackSolution(in.IssueType, in.CropName, in.Season, location)
	}

	if in.IssueID != 0 {
		if err := s.repo.SetAISolution(in.IssueID, text); err != nil {
			return "", err
		}
	}
	return text, nil
}
