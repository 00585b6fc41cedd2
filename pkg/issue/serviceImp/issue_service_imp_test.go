package serviceImp

import (
	"encoding/json"
	"errors"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmassist/entities"
	"farmassist/pkg/ai"
	issuerepo "farmassist/pkg/issue/repositoryImp"
	"farmassist/pkg/issue/service"
	"farmassist/pkg/resolution"
	selrepo "farmassist/pkg/selection/repositoryImp"
	tplrepo "farmassist/pkg/template/repositoryImp"
)

type stubLLM struct {
	text string
	err  error
}

func (s *stubLLM) GenerateSolution(_ ai.SolutionRequest) (string, error) { return s.text, s.err }

func newTestService(t *testing.T, llm ai.Client) (*IssueSvc, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // every pooled conn gets its own :memory: db
	require.NoError(t, db.AutoMigrate(
		&entities.Selection{}, &entities.Issue{},
		&entities.IssueTemplate{}, &entities.WeeklySolution{},
	))
	engine := resolution.NewEngine(tplrepo.New(db))
	svc := NewIssueService(issuerepo.New(db), selrepo.New(db), engine, llm, nil)
	return svc, db
}

func seedSelection(t *testing.T, db *gorm.DB) *entities.Selection {
	t.Helper()
	sel := &entities.Selection{UserID: 1, State: "Punjab", Crop: "Wheat", Season: "Rabi", Status: "active"}
	require.NoError(t, db.Create(sel).Error)
	return sel
}

func TestCreateUnknownSelectionWritesNothing(t *testing.T) {
	svc, db := newTestService(t, &stubLLM{})

	_, _, err := svc.Create(99, 3, "pest attack", "")
	assert.True(t, errors.Is(err, service.ErrSelectionNotFound))

	var n int64
	require.NoError(t, db.Model(&entities.Issue{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCreatePersistsResolutionSnapshot(t *testing.T) {
	svc, db := newTestService(t, &stubLLM{})
	sel := seedSelection(t, db)

	issue, adj, err := svc.Create(sel.SelectionID, 3, "Heavy Rain today", "field waterlogged")
	require.NoError(t, err)
	assert.Equal(t, resolution.SourceRule, adj.Source)
	assert.Equal(t, "postpone_fertilizer", adj.Action)
	assert.Equal(t, 2, adj.DelayWeeks)

	var stored entities.Issue
	require.NoError(t, db.First(&stored, issue.IssueID).Error)
	assert.Equal(t, adj, stored.RecommendedAdjustments)
	assert.Empty(t, stored.AISolution)
}

func TestListBySelectionOrderedByWeek(t *testing.T) {
	svc, db := newTestService(t, &stubLLM{})
	sel := seedSelection(t, db)

	for _, week := range []int{7, 2, 5} {
		_, _, err := svc.Create(sel.SelectionID, week, "pest", "")
		require.NoError(t, err)
	}

	issues, err := svc.ListBySelection(sel.SelectionID)
	require.NoError(t, err)
	require.Len(t, issues, 3)
	assert.Equal(t, []int{2, 5, 7}, []int{issues[0].Week, issues[1].Week, issues[2].Week})
}

func TestGenerateSolutionLeavesSnapshotUntouched(t *testing.T) {
	svc, db := newTestService(t, &stubLLM{text: "Mulch the rows and water at dawn."})
	sel := seedSelection(t, db)

	issue, _, err := svc.Create(sel.SelectionID, 4, "drought", "")
	require.NoError(t, err)

	var before entities.Issue
	require.NoError(t, db.First(&before, issue.IssueID).Error)
	beforeJSON, err := json.Marshal(before.RecommendedAdjustments)
	require.NoError(t, err)

	got, err := svc.GenerateSolution(service.SolutionInput{
		IssueID:   issue.IssueID,
		IssueType: "drought",
		Week:      4,
		CropName:  "Wheat",
		Season:    "Rabi",
		State:     "Punjab",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mulch the rows and water at dawn.", got)

	var after entities.Issue
	require.NoError(t, db.First(&after, issue.IssueID).Error)
	assert.Equal(t, got, after.AISolution)

	afterJSON, err := json.Marshal(after.RecommendedAdjustments)
	require.NoError(t, err)
	assert.Equal(t, string(beforeJSON), string(afterJSON))
}

func TestGenerateSolutionFallsBackWhenUpstreamFails(t *testing.T) {
	svc, db := newTestService(t, &stubLLM{err: errors.New("503 model loading")})
	sel := seedSelection(t, db)

	issue, _, err := svc.Create(sel.SelectionID, 2, "pest infestation", "")
	require.NoError(t, err)

	got, err := svc.GenerateSolution(service.SolutionInput{
		IssueID:   issue.IssueID,
		IssueType: "pest infestation",
		CropName:  "Rice",
		Season:    "Kharif",
		State:     "Bihar",
	})
	require.NoError(t, err)
	assert.Equal(t, ai.FallbackSolution("pest infestation", "Rice", "Kharif", "Bihar"), got)

	var after entities.Issue
	require.NoError(t, db.First(&after, issue.IssueID).Error)
	assert.Equal(t, got, after.AISolution)
}

func TestGenerateSolutionWithoutIssueIDDoesNotPersist(t *testing.T) {
	svc, db := newTestService(t, &stubLLM{text: "ad hoc advice"})

	got, err := svc.GenerateSolution(service.SolutionInput{IssueType: "drought"})
	require.NoError(t, err)
	assert.Equal(t, "ad hoc advice", got)

	var n int64
	require.NoError(t, db.Model(&entities.Issue{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestGenerateSolutionRegeneratesOnDemand(t *testing.T) {
	llm := &stubLLM{text: "first answer"}
	svc, db := newTestService(t, llm)
	sel := seedSelection(t, db)

	issue, _, err := svc.Create(sel.SelectionID, 1, "leaf disease", "")
	require.NoError(t, err)

	_, err = svc.GenerateSolution(service.SolutionInput{IssueID: issue.IssueID, IssueType: "leaf disease"})
	require.NoError(t, err)

	llm.text = "second answer"
	_, err = svc.GenerateSolution(service.SolutionInput{IssueID: issue.IssueID, IssueType: "leaf disease"})
	require.NoError(t, err)

	var after entities.Issue
	require.NoError(t, db.First(&after, issue.IssueID).Error)
	assert.Equal(t, "second answer", after.AISolution)
}
