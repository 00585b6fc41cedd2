package resolution

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmassist/entities"
)

type fakeFinder struct {
	templates map[string]*entities.IssueTemplate
	err       error
}

func (f *fakeFinder) FindByType(issueType string) (*entities.IssueTemplate, error) {
	if f.err != nil {
		return nil, f.err
	}
	if t, ok := f.templates[strings.ToLower(issueType)]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func finderWith(tpls ...*entities.IssueTemplate) *fakeFinder {
	m := map[string]*entities.IssueTemplate{}
	for _, t := range tpls {
		m[strings.ToLower(t.IssueType)] = t
	}
	return &fakeFinder{templates: m}
}

func TestResolveWeekSpecificTemplate(t *testing.T) {
	engine := NewEngine(finderWith(&entities.IssueTemplate{
		IssueType: "Heavy Rain",
		Solution:  "General drainage advice",
		WeeklySolutions: []entities.WeeklySolution{
			{Week: 3, Solution: "Drain field"},
		},
	}))

	// case-insensitive exact match, week-specific entry wins
	adj := engine.Resolve("heavy rain", 3)
	assert.Equal(t, "Drain field", adj.Note)
	assert.Equal(t, SourceTemplate, adj.Source)
	assert.Empty(t, adj.Action)
}

func TestResolveTemplateDefaultSolution(t *testing.T) {
	engine := NewEngine(finderWith(&entities.IssueTemplate{
		IssueType: "Heavy Rain",
		Solution:  "General drainage advice",
		WeeklySolutions: []entities.WeeklySolution{
			{Week: 3, Solution: "Drain field"},
		},
	}))

	adj := engine.Resolve("HEAVY RAIN", 7)
	assert.Equal(t, "General drainage advice", adj.Note)
	assert.Equal(t, SourceTemplate, adj.Source)
}

func TestResolveTemplateEmptySolutionFallsBackToGenericNote(t *testing.T) {
	engine := NewEngine(finderWith(&entities.IssueTemplate{IssueType: "Frost"}))

	adj := engine.Resolve("frost", 1)
	assert.Equal(t, GenericNote, adj.Note)
	assert.Equal(t, SourceTemplate, adj.Source)
}

func TestResolveKeywordRules(t *testing.T) {
	engine := NewEngine(finderWith())

	tests := []struct {
		name      string
		issueType string
		action    string
		delay     int
	}{
		{"pest any case", "Severe PEST attack", "apply_pesticide", 0},
		{"drought", "Severe Drought Stress", "increase_irrigation", 0},
		{"heavy rain needs both words", "heavy unexpected rain", "postpone_fertilizer", 2},
		{"rain alone is not a rule hit", "rain damage", "", 0},
		{"no keyword", "yellow leaves", "", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			adj := engine.Resolve(tc.issueType, 5)
			assert.Equal(t, SourceRule, adj.Source)
			assert.Equal(t, tc.action, adj.Action)
			assert.Equal(t, tc.delay, adj.DelayWeeks)
			assert.NotEmpty(t, adj.Note)
		})
	}
}

func TestResolveDroughtRuleText(t *testing.T) {
	engine := NewEngine(finderWith())

	adj := engine.Resolve("Severe Drought Stress", 5)
	require.Equal(t, SourceRule, adj.Source)
	assert.Equal(t, "increase_irrigation", adj.Action)
	assert.Contains(t, adj.Note, "irrigation")
}

func TestResolveStoreFailureDegradesToDefault(t *testing.T) {
	engine := NewEngine(&fakeFinder{err: errors.New("store down")})

	// even a pest report skips the rules: a broken store answers generically
	adj := engine.Resolve("pest outbreak", 2)
	assert.Equal(t, GenericNote, adj.Note)
	assert.Equal(t, SourceDefault, adj.Source)
}
