// Package nlp extracts lightweight linguistic signals from contract
// text: modal-verb classification of clauses, key legal term counts,
// monetary amounts, dates, and a keyword-based clause type classifier.
package nlp

import (
	"regexp"
	"sort"
	"strings"

	"github.com/clausewise/clausewise/internal/model"
)

// keyLegalTerms are counted across the whole document.
var keyLegalTerms = []string{
	"liability", "indemnity", "termination", "confidentiality",
	"arbitration", "jurisdiction", "payment", "damages", "warranty",
}

// Modal-verb patterns. Word boundaries keep "dismay" from counting as
// a right and "mustard" as an obligation.
var (
	obligationPattern  = regexp.MustCompile(`(?i)\b(shall|must)\b`)
	rightPattern       = regexp.MustCompile(`(?i)\bmay\b`)
	prohibitionPattern = regexp.MustCompile(`(?i)\bshall\s+not\b`)
)

// Currency patterns paired with their ISO code. Group 1 is the numeric
// amount.
var amountPatterns = []struct {
	re       *regexp.Regexp
	currency string
}{
	{regexp.MustCompile(`(?i)₹\s*(\d+(?:,\d{3})*(?:\.\d+)?)`), "INR"},
	{regexp.MustCompile(`(?i)Rs\.?\s*(\d+(?:,\d{3})*(?:\.\d+)?)`), "INR"},
	{regexp.MustCompile(`(?i)INR\s*(\d+(?:,\d{3})*(?:\.\d+)?)`), "INR"},
	{regexp.MustCompile(`(?i)\$\s*(\d+(?:,\d{3})*(?:\.\d+)?)`), "USD"},
	{regexp.MustCompile(`(?i)USD\s*(\d+(?:,\d{3})*(?:\.\d+)?)`), "USD"},
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`),
	regexp.MustCompile(`\d{4}[-/]\d{1,2}[-/]\d{1,2}`),
	regexp.MustCompile(`(?i)\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}`),
	regexp.MustCompile(`(?i)(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{4}`),
}

// Analyzer derives NLP signals without any external model. Stateless
// and safe for concurrent use.
type Analyzer struct{}

// NewAnalyzer returns an analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze extracts the full signal bundle for a document. Entity
// recognition is left to external callers; the bundle simply carries
// whatever they supply later.
func (a *Analyzer) Analyze(text string, clauses []model.Clause) *model.NLPSignals {
	sig := &model.NLPSignals{
		KeyTerms: KeyTerms(text),
		Amounts:  Amounts(text),
		Dates:    Dates(text),
	}
	for _, c := range clauses {
		if obligationPattern.MatchString(c.Content) {
			sig.Obligations = append(sig.Obligations, c.ID)
		}
		if rightPattern.MatchString(c.Content) {
			sig.Rights = append(sig.Rights, c.ID)
		}
		if prohibitionPattern.MatchString(c.Content) {
			sig.Prohibitions = append(sig.Prohibitions, c.ID)
		}
	}
	return sig
}

// KeyTerms counts occurrences of the key legal terms, most frequent
// first. Terms that never occur are omitted. Ties keep the fixed term
// order, so the result is deterministic.
func KeyTerms(text string) []model.KeyTerm {
	lower := strings.ToLower(text)
	var out []model.KeyTerm
	for _, term := range keyLegalTerms {
		if n := strings.Count(lower, term); n > 0 {
			out = append(out, model.KeyTerm{Term: term, Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// Amounts extracts monetary amounts with their currency.
func Amounts(text string) []model.Amount {
	var out []model.Amount
	for _, p := range amountPatterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			out = append(out, model.Amount{
				Amount:   m[1],
				Currency: p.currency,
				Text:     m[0],
			})
		}
	}
	return out
}

// Dates extracts date-like strings in the common numeric and written
// formats.
func Dates(text string) []string {
	var out []string
	for _, p := range datePatterns {
		out = append(out, p.FindAllString(text, -1)...)
	}
	return out
}
