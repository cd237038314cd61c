package score

import (
	"math"

	"github.com/clausewise/clausewise/internal/model"
)

// concentrationRatio is the share of high-risk clauses above which the
// document score is boosted, so a document dominated by high-risk
// clauses cannot be averaged down by many harmless ones.
const (
	concentrationRatio = 0.3
	concentrationBoost = 1.2
)

// Aggregator combines clause risk results into a document verdict.
type Aggregator struct {
	cfg *model.Config
}

// NewAggregator creates an aggregator over the given configuration.
func NewAggregator(cfg *model.Config) *Aggregator {
	return &Aggregator{cfg: cfg}
}

// Aggregate computes the document-level score, level and distribution.
// Empty input yields 0.0/low with all counts zero.
func (a *Aggregator) Aggregate(results []model.ClauseRiskResult) model.DocumentRiskResult {
	if len(results) == 0 {
		return model.DocumentRiskResult{OverallLevel: model.RiskLow}
	}

	var sum float64
	var dist model.Distribution
	for _, r := range results {
		sum += r.RiskScore
		switch r.RiskLevel {
		case model.RiskHigh:
			dist.High++
		case model.RiskMedium:
			dist.Medium++
		default:
			dist.Low++
		}
	}

	overall := sum / float64(len(results))
	if float64(dist.High)/float64(len(results)) > concentrationRatio {
		overall = math.Min(1.0, overall*concentrationBoost)
	}

	return model.DocumentRiskResult{
		OverallScore: overall,
		OverallLevel: a.cfg.LevelFor(overall),
		Distribution: dist,
	}
}

// Summarize groups detected category hits across the document and
// computes per-category statistics.
func (a *Aggregator) Summarize(results []model.ClauseRiskResult) map[string]model.CategoryStats {
	stats := make(map[string]model.CategoryStats)

	for _, r := range results {
		for _, hit := range r.Detected {
			st := stats[hit.Category]
			st.Count++
			st.AvgScore += hit.Score // running sum, divided below
			st.Clauses = append(st.Clauses, model.CategoryClauseRef{
				ClauseID: r.ClauseID,
				Label:    r.Label,
				Score:    hit.Score,
				Keywords: hit.Keywords,
			})
			stats[hit.Category] = st
		}
	}

	for name, st := range stats {
		st.AvgScore /= float64(st.Count)
		st.Severity = a.cfg.LevelFor(st.AvgScore)
		stats[name] = st
	}

	return stats
}
