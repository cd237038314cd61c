package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/clausewise/clausewise/internal/model"
)

const riskyContract = `CONSULTING AGREEMENT

1. Payment Terms. The Client shall pay a monthly fee at a time of the Company's choosing, with amounts to be communicated later in the engagement.

2. Termination. The Company may terminate this agreement at will and at its sole discretion, without cause and without prior notification to the Client.

3. Indemnification. The Consultant shall indemnify the Company against any and all claims, with unlimited liability and no cap on liability whatsoever.

4. Intellectual Property. The Consultant assigns all rights and ownership of intellectual property produced during the engagement to the Company.

5. Renewal. This agreement shall automatically renew for successive terms unless the Company decides otherwise at its discretion.
`

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	return cfg
}

func TestAnalyze_FullPipeline(t *testing.T) {
	a := New(testConfig())

	report, err := a.Analyze(context.Background(), riskyContract, "consulting.txt")
	if err != nil {
		t.Fatal(err)
	}

	if report.Source != "consulting.txt" {
		t.Errorf("source: got %s", report.Source)
	}
	if report.Language != "en" {
		t.Errorf("language: got %s", report.Language)
	}
	if report.Document.ClauseCount != 5 {
		t.Fatalf("expected 5 clauses, got %d", report.Document.ClauseCount)
	}
	if len(report.ClauseRisks) != 5 {
		t.Fatalf("expected 5 clause risks, got %d", len(report.ClauseRisks))
	}
	for i, cr := range report.ClauseRisks {
		if cr.ClauseID != report.Clauses[i].ID {
			t.Errorf("clause risk %d out of order: %s vs %s", i, cr.ClauseID, report.Clauses[i].ID)
		}
	}

	if report.DocumentRisk.OverallScore <= 0 {
		t.Error("expected a nonzero document risk for a risky contract")
	}
	if len(report.Flags) == 0 {
		t.Error("expected risk flags")
	}
	if len(report.UnfavorableTerms) == 0 {
		t.Error("expected unfavorable term matches")
	}
	if len(report.Recommendations) == 0 {
		t.Error("expected recommendations")
	}
	if report.LLM != nil {
		t.Error("LLM summary must be absent when no provider is configured")
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	a := New(testConfig())

	first, err := a.Analyze(context.Background(), riskyContract, "x")
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Analyze(context.Background(), riskyContract, "x")
	if err != nil {
		t.Fatal(err)
	}

	if first.DocumentRisk.OverallScore != second.DocumentRisk.OverallScore {
		t.Errorf("document scores differ: %v vs %v", first.DocumentRisk.OverallScore, second.DocumentRisk.OverallScore)
	}
	if len(first.Flags) != len(second.Flags) {
		t.Fatalf("flag counts differ: %d vs %d", len(first.Flags), len(second.Flags))
	}
	for i := range first.Flags {
		if first.Flags[i] != second.Flags[i] {
			t.Errorf("flag %d differs: %+v vs %+v", i, first.Flags[i], second.Flags[i])
		}
	}
}

func TestAnalyze_EmptyDocument(t *testing.T) {
	a := New(testConfig())

	report, err := a.Analyze(context.Background(), "", "empty.txt")
	if err != nil {
		t.Fatal(err)
	}

	if report.Document.ClauseCount != 0 {
		t.Errorf("expected 0 clauses, got %d", report.Document.ClauseCount)
	}
	if report.DocumentRisk.OverallScore != 0.0 || report.DocumentRisk.OverallLevel != model.RiskLow {
		t.Errorf("empty document must score 0.0/low, got %+v", report.DocumentRisk)
	}
}

func TestAnalyze_CacheHit(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.Dir = "" // memory only
	a := New(cfg)

	first, err := a.Analyze(context.Background(), riskyContract, "a.txt")
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Analyze(context.Background(), riskyContract, "b.txt")
	if err != nil {
		t.Fatal(err)
	}

	if !first.AnalyzedAt.Equal(second.AnalyzedAt) {
		t.Error("expected second analysis to come from cache")
	}
	if second.Source != "b.txt" {
		t.Errorf("cached report must carry the new source, got %s", second.Source)
	}
}

func TestRenderer_Markdown(t *testing.T) {
	a := New(testConfig())
	report, err := a.Analyze(context.Background(), riskyContract, "consulting.txt")
	if err != nil {
		t.Fatal(err)
	}

	md := NewRenderer(true).Markdown(report)

	for _, want := range []string{
		"# Contract Risk Analysis",
		"## Overall Risk:",
		"## Risk Flags",
		"## Recommendations",
		"not legal advice",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}

	noFooter := NewRenderer(false).Markdown(report)
	if strings.Contains(noFooter, "not legal advice") {
		t.Error("footer must be omitted when disabled")
	}
}

func TestRenderSummary(t *testing.T) {
	a := New(testConfig())
	report, err := a.Analyze(context.Background(), riskyContract, "consulting.txt")
	if err != nil {
		t.Fatal(err)
	}

	var buf strings.Builder
	NewRenderer(true).RenderSummary(report, &buf)

	if !strings.Contains(buf.String(), "Overall risk:") {
		t.Errorf("summary missing header: %s", buf.String())
	}
}
