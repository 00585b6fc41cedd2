// pkg/resolution/rules.go

package resolution

import (
	"strings"

	"farmassist/entities"
)

// ruleResolver applies ordered keyword rules against the lowercased issue
// type. It always answers, so it is the last resolver in the chain.
// NOTE: "heavy rain" deliberately needs both substrings while the other
// rules need one; changing that would change behavior for reports like
// "rain damage".
func ruleResolver(issueType string, _ int) (*entities.Adjustments, bool) {
	t := strings.ToLower(issueType)
	switch {
	case strings.Contains(t, "heavy") && strings.Contains(t, "rain"):
		return &entities.Adjustments{
			Note:       "Postpone fertilizer application by 2 weeks. Inspect field drainage.",
			Source:     SourceRule,
			Action:     "postpone_fertilizer",
			DelayWeeks: 2,
		}, true
	case strings.Contains(t, "pest"):
		return &entities.Adjustments{
			Note:   "Apply recommended pesticide for the crop. Check integrated pest management practices.",
			Source: SourceRule,
			Action: "apply_pesticide",
		}, true
	case strings.Contains(t, "drought"):
		return &entities.Adjustments{
			Note:   "Increase irrigation frequency and apply drought-tolerant measures.",
			Source: SourceRule,
			Action: "increase_irrigation",
		}, true
	default:
		return &entities.Adjustments{Note: GenericNote, Source: SourceRule}, true
	}
}
