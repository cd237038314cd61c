package nlp

import (
	"strings"
	"unicode"

	"github.com/clausewise/clausewise/internal/model"
)

// clauseTypeRules map indicator keywords to a clause type. Types align
// with the template library keys so the matcher's type boost can fire.
// Rules are checked in order; the first hit wins.
var clauseTypeRules = []struct {
	clauseType string
	keywords   []string
}{
	{"payment_terms", []string{"payment", "fee", "compensation", "invoice", "remuneration"}},
	{"termination", []string{"terminat", "expiry", "expiration"}},
	{"liability", []string{"liability", "liable"}},
	{"indemnification", []string{"indemnif", "hold harmless"}},
	{"confidentiality", []string{"confidential", "non-disclosure", "proprietary information"}},
	{"ip_rights", []string{"intellectual property", "copyright", "patent", "trademark"}},
	{"dispute_resolution", []string{"dispute", "arbitration", "mediation", "governing law", "jurisdiction"}},
	{"force_majeure", []string{"force majeure", "act of god"}},
	{"warranty", []string{"warrant", "guarantee"}},
	{"amendment", []string{"amend", "modification", "modify"}},
}

// ClassifyClause assigns a clause type from its content, or "General"
// when nothing matches.
func ClassifyClause(c model.Clause) string {
	content := strings.ToLower(c.Content)
	for _, rule := range clauseTypeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(content, kw) {
				return rule.clauseType
			}
		}
	}
	return "General"
}

// ClassifyAll types every clause, keyed by clause ID.
func ClassifyAll(clauses []model.Clause) map[string]string {
	types := make(map[string]string, len(clauses))
	for _, c := range clauses {
		types[c.ID] = ClassifyClause(c)
	}
	return types
}

// DetectLanguage reports "hi" when at least a tenth of the letters are
// Devanagari, otherwise "en".
func DetectLanguage(text string) string {
	letters, devanagari := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(unicode.Devanagari, r) {
			devanagari++
		}
	}
	if letters > 0 && float64(devanagari)/float64(letters) >= 0.1 {
		return "hi"
	}
	return "en"
}
