package score

import (
	"math"
	"strings"

	"github.com/clausewise/clausewise/internal/model"
)

// Scorer evaluates clauses against the configured weighted risk
// categories. It holds only immutable configuration and is safe for
// concurrent use.
type Scorer struct {
	cfg *model.Config
}

// NewScorer creates a scorer over the given configuration.
func NewScorer(cfg *model.Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score evaluates one clause. Keyword matching is case-insensitive
// unanchored substring counting, so a phrase containing a shorter
// keyword counts for both; no de-duplication is applied. A clause with
// empty content scores 0.0/low — absence of signal is a valid outcome,
// not an error.
func (s *Scorer) Score(clause model.Clause) model.ClauseRiskResult {
	content := strings.ToLower(clause.Content)

	result := model.ClauseRiskResult{
		ClauseID: clause.ID,
		Label:    clause.Label,
	}

	for _, cat := range s.cfg.Categories {
		matches := 0
		var matched []string
		for _, kw := range cat.Keywords {
			if n := strings.Count(content, kw); n > 0 {
				matches += n
				matched = append(matched, kw)
			}
		}
		if matches == 0 {
			// Zero matches means the category is absent from the
			// result entirely, not present with a zero score.
			continue
		}

		catScore := categoryScore(matches, cat.Weight)
		if result.CategoryScores == nil {
			result.CategoryScores = make(map[string]float64, 4)
		}
		result.CategoryScores[cat.Name] = catScore
		result.MatchedCategories = append(result.MatchedCategories, cat.Name)
		result.Detected = append(result.Detected, model.CategoryHit{
			Category: cat.Name,
			Score:    catScore,
			Keywords: matched,
		})

		// A single severe category dominates rather than diluting
		// across many weak matches.
		if catScore > result.RiskScore {
			result.RiskScore = catScore
		}
	}

	result.RiskLevel = s.cfg.LevelFor(result.RiskScore)
	return result
}

// ScoreAll scores every clause, preserving input order.
func (s *Scorer) ScoreAll(clauses []model.Clause) []model.ClauseRiskResult {
	results := make([]model.ClauseRiskResult, len(clauses))
	for i, c := range clauses {
		results[i] = s.Score(c)
	}
	return results
}

// categoryScore maps a raw match count onto the scoring staircase. The
// count thresholds are independent of weight; the weight only scales
// the final number. Isolated legal terms are normal — only a density of
// matching language escalates severity. The jumps at the 3 and 5 match
// boundaries are a deliberate tuning choice carried over from the
// original calibration; revisit the bases before smoothing anything.
func categoryScore(matches int, weight float64) float64 {
	var base float64
	switch {
	case matches >= 5:
		base = 0.70
	case matches >= 3:
		base = 0.40
	default:
		base = 0.15
	}
	return weight * math.Min(1.0, base+0.05*float64(matches))
}
