package template

import (
	"strings"

	"github.com/clausewise/clausewise/internal/model"
)

// typeBoost is added to the similarity score when the clause's
// classified type and the template key contain each other.
const typeBoost = 0.2

// matchThreshold is the minimum (boosted) score for a match to count.
const matchThreshold = 0.3

// Matcher finds, for each clause, the single best-matching reference
// template above the acceptance threshold.
type Matcher struct {
	lib  Library
	keys []string
}

// NewMatcher builds a matcher over the given library.
func NewMatcher(lib Library) *Matcher {
	return &Matcher{lib: lib, keys: lib.Keys()}
}

// Match scans every clause against every template. types maps clause ID
// to its classified type; clauses without an entry are treated as
// "General". Templates are tried in sorted key order and ties keep the
// first winner, so output is deterministic. At most one match per
// clause is returned, in clause input order.
func (m *Matcher) Match(clauses []model.Clause, types map[string]string) []model.TemplateMatch {
	var out []model.TemplateMatch
	for _, c := range clauses {
		clauseType := types[c.ID]
		if clauseType == "" {
			clauseType = "General"
		}
		lowerType := strings.ToLower(clauseType)

		bestKey := ""
		bestScore := 0.0
		for _, key := range m.keys {
			score := Similarity(c.Content, m.lib[key].Template)
			if strings.Contains(lowerType, key) || strings.Contains(key, lowerType) {
				score += typeBoost
			}
			if score > bestScore {
				bestScore = score
				bestKey = key
			}
		}

		if bestKey == "" || bestScore <= matchThreshold {
			continue
		}
		tpl := m.lib[bestKey]
		out = append(out, model.TemplateMatch{
			ClauseID:        c.ID,
			ClauseType:      clauseType,
			TemplateKey:     bestKey,
			TemplateTitle:   tpl.Title,
			SimilarityScore: bestScore,
			TemplateText:    tpl.Template,
			KeyPoints:       tpl.KeyPoints,
		})
	}
	return out
}
