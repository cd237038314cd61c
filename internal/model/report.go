package model

import "time"

// Report is the complete analysis result for one document. All fields
// are plain data owned by the caller; nothing references back into the
// engine.
type Report struct {
	Source     string       `json:"source,omitempty"` // file name or other caller-supplied origin
	Language   string       `json:"language"`         // "en" or "hi"
	AnalyzedAt time.Time    `json:"analyzed_at"`
	Document   DocumentMeta `json:"document"`

	Clauses     []Clause           `json:"clauses"`
	ClauseRisks []ClauseRiskResult `json:"clause_risks"`

	DocumentRisk DocumentRiskResult       `json:"document_risk"`
	RiskSummary  map[string]CategoryStats `json:"risk_summary,omitempty"`

	Flags            []RiskFlag             `json:"risk_flags"`
	UnfavorableTerms []UnfavorableTermMatch `json:"unfavorable_terms"`
	TemplateMatches  []TemplateMatch        `json:"template_matches"`

	Signals         NLPSignals `json:"nlp_signals"`
	Recommendations []string   `json:"recommendations"`

	// Optional plain-language summary. Generated after scoring and
	// never feeds back into any score.
	LLM *PlainSummary `json:"llm,omitempty"`
}

// DocumentMeta carries derived document metrics.
type DocumentMeta struct {
	CharCount   int `json:"char_count"`
	WordCount   int `json:"word_count"`
	ClauseCount int `json:"clause_count"`
}

// HighRiskClauses returns the clause results classified high, in
// document order.
func (r *Report) HighRiskClauses() []ClauseRiskResult {
	var high []ClauseRiskResult
	for _, c := range r.ClauseRisks {
		if c.RiskLevel == RiskHigh {
			high = append(high, c)
		}
	}
	return high
}

// PlainSummary is an optional LLM-generated plain-language explanation
// of the findings. It is kept clearly separate from scoring.
type PlainSummary struct {
	Enabled   bool     `json:"enabled"`
	Provider  string   `json:"provider,omitempty"`
	Model     string   `json:"model,omitempty"`
	SummaryMD string   `json:"summary_md,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
}
