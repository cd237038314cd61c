// Package flags implements the rule-based advisory checks that run
// independently of category scoring. Every rule is evaluated on its
// own; a document can produce zero flags or several per clause.
package flags

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/clausewise/clausewise/internal/model"
)

var (
	// Mirrors the payment-term checks: a currency/number pattern and a
	// time-window pattern. A payment clause lacking either is flagged
	// as ambiguous.
	amountPattern = regexp.MustCompile(`(?i)₹|Rs\.?|\$|USD|INR|[0-9,]+`)
	timePattern   = regexp.MustCompile(`(?i)\d+\s*days?|within|by|before|after`)
)

// criticalTopics are the clause subjects every contract is expected to
// address somewhere.
var criticalTopics = []string{
	"termination", "liability", "indemnification",
	"dispute resolution", "payment", "confidentiality",
}

var (
	penaltyKeywords     = []string{"penalty", "liquidated damages", "fine"}
	autoRenewalKeywords = []string{"auto-renew", "automatic renewal", "automatically renew"}
	ipTransferKeywords  = []string{"assigns all", "transfers all", "ownership of intellectual property"}
	nonCompeteKeywords  = []string{"non-compete", "non-competition", "restraint of trade"}
	paymentKeywords     = []string{"payment", "fee", "compensation"}
)

// Generator evaluates the flag rules. The manipulation keyword sets are
// sourced from the same risk categories the scorer uses, so the two
// stay in sync.
type Generator struct {
	severe   []string
	moderate []string
}

// NewGenerator builds a generator from the configured risk categories.
func NewGenerator(cfg *model.Config) *Generator {
	g := &Generator{}
	if cat, ok := cfg.Category("manipulative_language"); ok {
		g.severe = cat.Keywords
	}
	if cat, ok := cfg.Category("emotional_pressure"); ok {
		g.moderate = cat.Keywords
	}
	return g
}

// Generate runs every rule over the clause list. The NLP signal bundle
// is accepted for callers that already computed it, but the rules here
// derive everything they need from clause text directly. All matching
// is case-insensitive substring/regex matching, no stemming.
func (g *Generator) Generate(clauses []model.Clause, signals *model.NLPSignals) []model.RiskFlag {
	_ = signals

	var out []model.RiskFlag
	out = append(out, g.manipulationFlags(clauses)...)
	out = append(out, g.missingCriticalFlag(clauses)...)
	out = append(out, g.unilateralTerminationFlags(clauses)...)
	out = append(out, g.penaltyFlag(clauses)...)
	out = append(out, g.autoRenewalFlags(clauses)...)
	out = append(out, g.ipTransferFlags(clauses)...)
	out = append(out, g.broadIndemnityFlags(clauses)...)
	out = append(out, g.nonCompeteFlags(clauses)...)
	out = append(out, g.ambiguousPaymentFlags(clauses)...)
	return out
}

// countMatches sums substring occurrences across a keyword set.
func countMatches(content string, keywords []string) int {
	total := 0
	for _, kw := range keywords {
		total += strings.Count(content, kw)
	}
	return total
}

func containsAny(content string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return false
}

// manipulationFlags checks each clause for predatory psychological
// language. The severe check takes priority: at most one of the two
// manipulation flags fires per clause.
func (g *Generator) manipulationFlags(clauses []model.Clause) []model.RiskFlag {
	var out []model.RiskFlag
	for _, c := range clauses {
		content := strings.ToLower(c.Content)

		severeCount := countMatches(content, g.severe)
		if severeCount >= 3 {
			out = append(out, model.RiskFlag{
				Type:     model.FlagPsychologicalManipulation,
				Severity: model.RiskHigh,
				Title:    "🚨 CRITICAL: Psychological Manipulation Detected",
				Description: fmt.Sprintf("This clause contains predatory psychological language designed to extract emotional compliance. "+
					"Found %d severe manipulation phrases that attempt to claim custody of your thoughts, "+
					"emotions, or mental state. This is HIGHLY INAPPROPRIATE for any legitimate contract.", severeCount),
				Recommendation: "DO NOT SIGN. This document uses predatory psychological tactics. " +
					"Legitimate contracts do not claim custody of your emotions, thoughts, or psychological state. " +
					"Seek immediate legal counsel and report this to appropriate authorities.",
				ClauseID: c.ID,
			})
			continue
		}

		if moderateCount := countMatches(content, g.moderate); moderateCount >= 3 {
			out = append(out, model.RiskFlag{
				Type:     model.FlagEmotionalManipulation,
				Severity: model.RiskMedium,
				Title:    "⚠️ WARNING: Emotional Manipulation Detected",
				Description: fmt.Sprintf("This clause uses emotionally manipulative language that may pressure you psychologically. "+
					"Found %d concerning phrases related to self-worth, comparison, and emotional state. "+
					"While not as severe as predatory tactics, this is still inappropriate for standard contracts.", moderateCount),
				Recommendation: "Exercise caution. Request removal of emotionally manipulative language. " +
					"Legitimate contracts should be neutral and not reference your psychological state. " +
					"Consider seeking legal advice before signing.",
				ClauseID: c.ID,
			})
		}
	}
	return out
}

// missingCriticalFlag tests each critical topic for presence anywhere
// in the document. Content and topics are space-stripped so "dispute
// resolution" still matches across formatting.
func (g *Generator) missingCriticalFlag(clauses []model.Clause) []model.RiskFlag {
	var combined strings.Builder
	for _, c := range clauses {
		combined.WriteString(strings.ReplaceAll(strings.ToLower(c.Content), " ", ""))
		combined.WriteString("\n")
	}
	haystack := combined.String()

	var missing []string
	for _, topic := range criticalTopics {
		if !strings.Contains(haystack, strings.ReplaceAll(topic, " ", "")) {
			missing = append(missing, topic)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return []model.RiskFlag{{
		Type:           model.FlagMissingCriticalClause,
		Severity:       model.RiskHigh,
		Title:          "Missing Critical Clauses",
		Description:    fmt.Sprintf("Contract may be missing: %s", strings.Join(missing, ", ")),
		Recommendation: "Ensure all critical clauses are present or explicitly excluded.",
	}}
}

func (g *Generator) unilateralTerminationFlags(clauses []model.Clause) []model.RiskFlag {
	var out []model.RiskFlag
	for _, c := range clauses {
		content := strings.ToLower(c.Content)
		if !strings.Contains(content, "termination") {
			continue
		}
		if strings.Contains(content, "at will") || strings.Contains(content, "sole discretion") {
			out = append(out, model.RiskFlag{
				Type:           model.FlagUnilateralTermination,
				Severity:       model.RiskHigh,
				Title:          "Unilateral Termination Rights",
				Description:    "One party has broad termination rights",
				Recommendation: "Negotiate for mutual termination rights or notice period.",
				ClauseID:       c.ID,
			})
		}
	}
	return out
}

// penaltyFlag emits a single document-level flag counting penalty
// clauses rather than one flag per clause.
func (g *Generator) penaltyFlag(clauses []model.Clause) []model.RiskFlag {
	count := 0
	for _, c := range clauses {
		if containsAny(strings.ToLower(c.Content), penaltyKeywords) {
			count++
		}
	}
	if count == 0 {
		return nil
	}

	return []model.RiskFlag{{
		Type:           model.FlagPenaltyClause,
		Severity:       model.RiskMedium,
		Title:          "Penalty Clauses Present",
		Description:    fmt.Sprintf("Found %d clause(s) with penalty provisions", count),
		Recommendation: "Review penalty amounts and ensure they are reasonable and proportionate.",
	}}
}

func (g *Generator) autoRenewalFlags(clauses []model.Clause) []model.RiskFlag {
	var out []model.RiskFlag
	for _, c := range clauses {
		if containsAny(strings.ToLower(c.Content), autoRenewalKeywords) {
			out = append(out, model.RiskFlag{
				Type:           model.FlagAutoRenewal,
				Severity:       model.RiskMedium,
				Title:          "Auto-Renewal Clause",
				Description:    "Contract may automatically renew without notice",
				Recommendation: "Ensure there is adequate notice period before auto-renewal.",
				ClauseID:       c.ID,
			})
		}
	}
	return out
}

func (g *Generator) ipTransferFlags(clauses []model.Clause) []model.RiskFlag {
	var out []model.RiskFlag
	for _, c := range clauses {
		if containsAny(strings.ToLower(c.Content), ipTransferKeywords) {
			out = append(out, model.RiskFlag{
				Type:           model.FlagIPTransfer,
				Severity:       model.RiskHigh,
				Title:          "Intellectual Property Transfer",
				Description:    "Clause transfers IP ownership",
				Recommendation: "Carefully review IP ownership terms and consider retaining rights.",
				ClauseID:       c.ID,
			})
		}
	}
	return out
}

func (g *Generator) broadIndemnityFlags(clauses []model.Clause) []model.RiskFlag {
	var out []model.RiskFlag
	for _, c := range clauses {
		content := strings.ToLower(c.Content)
		if !strings.Contains(content, "indemnif") {
			continue
		}
		if strings.Contains(content, "any and all") || strings.Contains(content, "unlimited") {
			out = append(out, model.RiskFlag{
				Type:           model.FlagBroadIndemnity,
				Severity:       model.RiskHigh,
				Title:          "Broad Indemnification Clause",
				Description:    "Indemnification obligations may be overly broad",
				Recommendation: "Negotiate for limited indemnification scope and caps.",
				ClauseID:       c.ID,
			})
		}
	}
	return out
}

func (g *Generator) nonCompeteFlags(clauses []model.Clause) []model.RiskFlag {
	var out []model.RiskFlag
	for _, c := range clauses {
		if containsAny(strings.ToLower(c.Content), nonCompeteKeywords) {
			out = append(out, model.RiskFlag{
				Type:           model.FlagNonCompete,
				Severity:       model.RiskHigh,
				Title:          "Non-Compete Clause",
				Description:    "Clause restricts future business activities",
				Recommendation: "Ensure geographical and temporal scope are reasonable.",
				ClauseID:       c.ID,
			})
		}
	}
	return out
}

// ambiguousPaymentFlags flags payment clauses that lack either a
// recognizable amount or a recognizable time window.
func (g *Generator) ambiguousPaymentFlags(clauses []model.Clause) []model.RiskFlag {
	var out []model.RiskFlag
	for _, c := range clauses {
		if !containsAny(strings.ToLower(c.Content), paymentKeywords) {
			continue
		}

		hasAmount := amountPattern.MatchString(c.Content)
		hasTime := timePattern.MatchString(c.Content)
		if hasAmount && hasTime {
			continue
		}

		out = append(out, model.RiskFlag{
			Type:           model.FlagAmbiguousPayment,
			Severity:       model.RiskMedium,
			Title:          "Ambiguous Payment Terms",
			Description:    "Payment terms may lack specific amounts or timelines",
			Recommendation: "Clarify specific payment amounts, schedules, and methods.",
			ClauseID:       c.ID,
		})
	}
	return out
}
