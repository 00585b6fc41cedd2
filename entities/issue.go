package entities

import "time"

// Adjustments is the recommendation snapshot computed once when an issue is
// reported. It is never recomputed or revised afterwards.
type Adjustments struct {
	Note       string `json:"note"`
	Source     string `json:"source"` // template|rule|default
	Action     string `json:"action,omitempty"`
	DelayWeeks int    `json:"delayWeeks,omitempty"`
}

type Issue struct {
	IssueID                uint        `gorm:"primaryKey" json:"issue_id"`
	SelectionID            uint        `gorm:"index" json:"selection"`
	Week                   int         `json:"week"`
	IssueType              string      `json:"issueType"`
	Details                string      `json:"details"`
	RecommendedAdjustments Adjustments `gorm:"serializer:json" json:"recommendedAdjustments"`
	AISolution             string      `json:"aiSolution,omitempty"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// IssueType matches case-insensitively (NOCASE collation), so "Heavy Rain"
// and "heavy rain" are the same key.
type IssueTemplate struct {
	TemplateID      uint             `gorm:"primaryKey" json:"template_id"`
	IssueType       string           `gorm:"type:text collate nocase;uniqueIndex" json:"issueType"`
	Description     string           `json:"description"`
	Solution        string           `json:"solution"`
	WeeklySolutions []WeeklySolution `gorm:"foreignKey:TemplateID" json:"weeklySolutions"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type WeeklySolution struct {
	ID         uint   `gorm:"primaryKey" json:"-"`
	TemplateID uint   `gorm:"uniqueIndex:idx_template_week" json:"-"`
	Week       int    `gorm:"uniqueIndex:idx_template_week" json:"week"`
	Solution   string `json:"solution"`
}
