package model

// Flag types emitted by the flag generator. Flags are advisory findings
// independent of the category-scoring pipeline.
const (
	FlagPsychologicalManipulation = "psychological_manipulation"
	FlagEmotionalManipulation     = "emotional_manipulation"
	FlagMissingCriticalClause     = "missing_critical_clause"
	FlagUnilateralTermination     = "unilateral_termination"
	FlagPenaltyClause             = "penalty_clause"
	FlagAutoRenewal               = "auto_renewal"
	FlagIPTransfer                = "ip_transfer"
	FlagBroadIndemnity            = "broad_indemnity"
	FlagNonCompete                = "non_compete"
	FlagAmbiguousPayment          = "ambiguous_payment"
)

// RiskFlag is a discrete, rule-triggered advisory finding. ClauseID is
// set only for clause-scoped flags; document-level flags leave it empty.
type RiskFlag struct {
	Type           string    `json:"type"`
	Severity       RiskLevel `json:"severity"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Recommendation string    `json:"recommendation"`
	ClauseID       string    `json:"clause_id,omitempty"`
}

// UnfavorableTermMatch records one (clause, archetype) hit from the
// unfavorable-term pattern table, with localized explanatory text.
type UnfavorableTermMatch struct {
	ClauseID    string `json:"clause_id"`
	Label       string `json:"label,omitempty"`
	TermType    string `json:"term_type"`
	Excerpt     string `json:"excerpt"`
	Explanation string `json:"explanation"`
	Alternative string `json:"alternative"`
}

// TemplateMatch links a clause to the standard template it most
// resembles. At most one per clause, present only above the acceptance
// threshold.
type TemplateMatch struct {
	ClauseID        string   `json:"clause_id"`
	ClauseType      string   `json:"clause_type,omitempty"`
	TemplateKey     string   `json:"template_key"`
	TemplateTitle   string   `json:"template_title"`
	SimilarityScore float64  `json:"similarity_score"`
	TemplateText    string   `json:"template_text"`
	KeyPoints       []string `json:"key_points"`
}

// Template is one standard, SME-favorable reference clause.
type Template struct {
	Title     string   `json:"title"`
	Template  string   `json:"template"`
	KeyPoints []string `json:"key_points"`
}
