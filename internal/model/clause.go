package model

// Clause is one contiguous span of contract text treated as a single
// analyzable unit. Clauses are produced once by the segmenter and are
// read-only for every downstream component.
type Clause struct {
	ID        string `json:"clause_id"`  // sequential, zero-padded: C001, C002, ...
	Label     string `json:"label"`      // detected header text, or "Para N" for unstructured documents
	Content   string `json:"content"`    // trimmed clause body
	Length    int    `json:"length"`     // len(Content) in bytes
	WordCount int    `json:"word_count"` // whitespace-separated word count
}

// RiskLevel is the coarse classification derived from a numeric score.
// The same three values serve clause levels, document levels and flag
// severities.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ClauseRiskResult is the scoring outcome for a single clause.
// Category scores are weighted; a category with zero keyword matches is
// absent from the map, not present with a zero score.
type ClauseRiskResult struct {
	ClauseID          string             `json:"clause_id"`
	Label             string             `json:"label,omitempty"`
	RiskScore         float64            `json:"risk_score"` // max across category scores, 0.0 if none matched
	RiskLevel         RiskLevel          `json:"risk_level"`
	CategoryScores    map[string]float64 `json:"category_scores,omitempty"`
	MatchedCategories []string           `json:"matched_categories,omitempty"` // configuration order
	Detected          []CategoryHit      `json:"detected_risks,omitempty"`
}

// CategoryHit records one category that matched a clause, with the
// keywords that fired.
type CategoryHit struct {
	Category string   `json:"category"`
	Score    float64  `json:"score"`
	Keywords []string `json:"matched_keywords"`
}

// Distribution counts clauses per risk level.
type Distribution struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// Total returns the number of clauses counted.
func (d Distribution) Total() int {
	return d.Low + d.Medium + d.High
}

// DocumentRiskResult aggregates all clause results into a document
// verdict. Recomputed fresh on every analysis run.
type DocumentRiskResult struct {
	OverallScore float64      `json:"overall_score"`
	OverallLevel RiskLevel    `json:"overall_level"`
	Distribution Distribution `json:"distribution"`
}

// CategoryStats summarizes one risk category across the document.
type CategoryStats struct {
	Count    int                 `json:"count"`
	AvgScore float64             `json:"avg_score"`
	Severity RiskLevel           `json:"severity"`
	Clauses  []CategoryClauseRef `json:"clauses"`
}

// CategoryClauseRef points at one clause contributing to a category.
type CategoryClauseRef struct {
	ClauseID string   `json:"clause_id"`
	Label    string   `json:"label,omitempty"`
	Score    float64  `json:"score"`
	Keywords []string `json:"keywords,omitempty"`
}
