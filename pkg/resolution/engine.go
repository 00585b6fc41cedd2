// pkg/resolution/engine.go

package resolution

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"farmassist/entities"
)

const (
	SourceTemplate = "template"
	SourceRule     = "rule"
	SourceDefault  = "default"

	// GenericNote is the answer of last resort: a farmer always gets
	// something back, whatever the state of the template store.
	GenericNote = "Reviewed by system - please follow recommended best practices."
)

// TemplateFinder is the read side of the admin-curated template store.
// FindByType must match the issue type case-insensitively and exactly.
type TemplateFinder interface {
	FindByType(issueType string) (*entities.IssueTemplate, error)
}

// Resolver is one tier of the fallback chain. It reports ok=false to pass
// the issue to the next tier.
type Resolver func(issueType string, week int) (*entities.Adjustments, bool)

type Engine struct {
	resolvers []Resolver
}

// NewEngine builds the tier chain: admin template (week-specific entry
// first, then the template default), then keyword rules. A tier that cannot
// answer hands off to the next; the terminal default in Resolve always can.
func NewEngine(templates TemplateFinder) *Engine {
	return &Engine{resolvers: []Resolver{
		templateResolver(templates),
		ruleResolver,
	}}
}

func (e *Engine) Resolve(issueType string, week int) entities.Adjustments {
	for _, r := range e.resolvers {
		if adj, ok := r(issueType, week); ok {
			return *adj
		}
	}
	return entities.Adjustments{Note: GenericNote, Source: SourceDefault}
}

func templateResolver(templates TemplateFinder) Resolver {
	return func(issueType string, week int) (*entities.Adjustments, bool) {
		tpl, err := templates.FindByType(issueType)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false // no template: try the keyword rules
			}
			// Store trouble must not block the report; degrade straight
			// to the generic answer rather than guessing with rules.
			log.Printf("[resolve] template lookup failed: %v", err)
			return &entities.Adjustments{Note: GenericNote, Source: SourceDefault}, true
		}
		for _, ws := range tpl.WeeklySolutions {
			if ws.Week == week {
				return &entities.Adjustments{Note: ws.Solution, Source: SourceTemplate}, true
			}
		}
		note := tpl.Solution
		if note == "" {
			note = GenericNote
		}
		return &entities.Adjustments{Note: note, Source: SourceTemplate}, true
	}
}
