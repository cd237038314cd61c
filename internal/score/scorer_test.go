package score

import (
	"math"
	"testing"

	"github.com/clausewise/clausewise/internal/model"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestScore_PenaltyStaircase(t *testing.T) {
	scorer := NewScorer(model.DefaultConfig())

	// Two "penalty" occurrences plus one "fine" = 3 matches:
	// 0.9 * min(1.0, 0.40 + 0.05*3) = 0.9 * 0.55 = 0.495 -> medium.
	clause := model.Clause{
		ID:      "C001",
		Content: "A penalty applies on late delivery; a second penalty and a fine follow repeated breaches.",
	}

	result := scorer.Score(clause)

	got, ok := result.CategoryScores["penalty_clause"]
	if !ok {
		t.Fatal("expected penalty_clause category to match")
	}
	if !almostEqual(got, 0.495) {
		t.Errorf("expected category score 0.495, got %v", got)
	}
	if !almostEqual(result.RiskScore, 0.495) {
		t.Errorf("expected risk score 0.495, got %v", result.RiskScore)
	}
	if result.RiskLevel != model.RiskMedium {
		t.Errorf("expected medium level, got %s", result.RiskLevel)
	}
}

func TestScore_MaxDominatesNotSum(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Categories = []model.RiskCategory{
		{Name: "weak", Keywords: []string{"alpha"}, Weight: 1.0},
		{Name: "strong", Keywords: []string{"beta"}, Weight: 1.0},
	}
	scorer := NewScorer(cfg)

	// weak: 1 match -> 0.20; strong: 5 matches -> min(1.0, 0.95) = 0.95.
	clause := model.Clause{
		ID:      "C001",
		Content: "alpha beta beta beta beta beta",
	}

	result := scorer.Score(clause)

	if !almostEqual(result.CategoryScores["weak"], 0.20) {
		t.Errorf("weak score: got %v", result.CategoryScores["weak"])
	}
	if !almostEqual(result.CategoryScores["strong"], 0.95) {
		t.Errorf("strong score: got %v", result.CategoryScores["strong"])
	}
	if !almostEqual(result.RiskScore, 0.95) {
		t.Errorf("expected max 0.95, not a sum or average; got %v", result.RiskScore)
	}
}

func TestScore_SubstringDoubleCounting(t *testing.T) {
	scorer := NewScorer(model.DefaultConfig())

	// "temporary custody" contains "custody": both keywords count,
	// giving 2 matches -> 1.0 * (0.15 + 0.10) = 0.25.
	clause := model.Clause{
		ID:      "C001",
		Content: "The provider assumes temporary custody of all records held.",
	}

	result := scorer.Score(clause)

	got := result.CategoryScores["manipulative_language"]
	if !almostEqual(got, 0.25) {
		t.Errorf("expected double-counted score 0.25, got %v", got)
	}
}

func TestScore_NoMatchesMeansAbsentCategories(t *testing.T) {
	scorer := NewScorer(model.DefaultConfig())

	clause := model.Clause{
		ID:      "C001",
		Content: "The parties will cooperate in good faith on all matters.",
	}

	result := scorer.Score(clause)

	if len(result.CategoryScores) != 0 {
		t.Errorf("expected no category scores, got %v", result.CategoryScores)
	}
	if result.RiskScore != 0.0 {
		t.Errorf("expected risk score 0.0, got %v", result.RiskScore)
	}
	if result.RiskLevel != model.RiskLow {
		t.Errorf("expected low level, got %s", result.RiskLevel)
	}
}

func TestScore_EmptyContent(t *testing.T) {
	scorer := NewScorer(model.DefaultConfig())

	result := scorer.Score(model.Clause{ID: "C001"})

	if result.RiskScore != 0.0 || result.RiskLevel != model.RiskLow {
		t.Errorf("empty clause should score 0.0/low, got %v/%s", result.RiskScore, result.RiskLevel)
	}
}

func TestScore_WeightNeverExceedsOne(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Categories = []model.RiskCategory{
		{Name: "dense", Keywords: []string{"x"}, Weight: 1.0},
	}
	scorer := NewScorer(cfg)

	// 10 matches: min(1.0, 0.70 + 0.50) caps at 1.0 before weighting.
	clause := model.Clause{ID: "C001", Content: "x x x x x x x x x x"}
	result := scorer.Score(clause)

	if !almostEqual(result.RiskScore, 1.0) {
		t.Errorf("expected capped score 1.0, got %v", result.RiskScore)
	}
	if result.RiskLevel != model.RiskHigh {
		t.Errorf("a perfect 1.0 must classify high, got %s", result.RiskLevel)
	}
}

func TestLevelFor_HalfOpenBoundaries(t *testing.T) {
	cfg := model.DefaultConfig()

	tests := []struct {
		score float64
		want  model.RiskLevel
	}{
		{0.0, model.RiskLow},
		{0.29999, model.RiskLow},
		{0.3, model.RiskMedium}, // boundary belongs to the upper range
		{0.59999, model.RiskMedium},
		{0.6, model.RiskHigh},
		{1.0, model.RiskHigh},
	}

	for _, tt := range tests {
		if got := cfg.LevelFor(tt.score); got != tt.want {
			t.Errorf("LevelFor(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	scorer := NewScorer(model.DefaultConfig())
	clause := model.Clause{
		ID:      "C001",
		Content: "Unlimited liability with penalty and indemnify obligations under sole discretion.",
	}

	first := scorer.Score(clause)
	second := scorer.Score(clause)

	if !almostEqual(first.RiskScore, second.RiskScore) || first.RiskLevel != second.RiskLevel {
		t.Errorf("non-deterministic scoring: %+v vs %+v", first, second)
	}
	if len(first.MatchedCategories) != len(second.MatchedCategories) {
		t.Fatalf("matched categories differ: %v vs %v", first.MatchedCategories, second.MatchedCategories)
	}
	for i := range first.MatchedCategories {
		if first.MatchedCategories[i] != second.MatchedCategories[i] {
			t.Errorf("category order differs at %d: %s vs %s", i, first.MatchedCategories[i], second.MatchedCategories[i])
		}
	}
}
