package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/clausewise/clausewise/internal/model"
	"github.com/clausewise/clausewise/internal/worker"
)

type mockProvider struct {
	summary string
	err     error
	calls   int
}

func (m *mockProvider) Name() string                          { return "mock" }
func (m *mockProvider) IsAvailable(ctx context.Context) bool  { return true }
func (m *mockProvider) Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &SummarizeResponse{Summary: m.summary, Model: "mock-1"}, nil
}

func sampleReport() *model.Report {
	return &model.Report{
		Language: "en",
		Document: model.DocumentMeta{WordCount: 120, ClauseCount: 4},
		DocumentRisk: model.DocumentRiskResult{
			OverallScore: 0.45,
			OverallLevel: model.RiskMedium,
			Distribution: model.Distribution{Low: 2, Medium: 1, High: 1},
		},
		Flags: []model.RiskFlag{
			{Severity: model.RiskHigh, Title: "Non-Compete Clause", Description: "Clause restricts future business activities"},
		},
	}
}

func TestSummarizer_Disabled(t *testing.T) {
	s := NewSummarizer(nil, nil)

	got := s.Summarize(context.Background(), sampleReport(), "text")

	if got.Enabled {
		t.Error("nil provider must yield a disabled summary")
	}
}

func TestSummarizer_Success(t *testing.T) {
	provider := &mockProvider{summary: "This is a vendor contract."}
	s := NewSummarizer(provider, worker.NewLimiter(100, 10))

	got := s.Summarize(context.Background(), sampleReport(), "text")

	if !got.Enabled {
		t.Fatal("expected enabled summary")
	}
	if got.SummaryMD != "This is a vendor contract." || got.Provider != "mock" || got.Model != "mock-1" {
		t.Errorf("unexpected summary: %+v", got)
	}
	if provider.calls != 1 {
		t.Errorf("expected one provider call, got %d", provider.calls)
	}
}

func TestSummarizer_FailureIsNonFatal(t *testing.T) {
	s := NewSummarizer(&mockProvider{err: errors.New("boom")}, nil)

	got := s.Summarize(context.Background(), sampleReport(), "text")

	if got.Enabled {
		t.Error("failed summary must come back disabled")
	}
	if len(got.Warnings) != 1 || !strings.Contains(got.Warnings[0], "boom") {
		t.Errorf("expected warning carrying the error, got %v", got.Warnings)
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleReport(), "The parties agree as follows.")

	for _, want := range []string{
		"Word Count: 120",
		"Overall Risk: medium",
		"Non-Compete Clause",
		"The parties agree as follows.",
		"Termination conditions",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPrompt_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("clause text ", 3000) // ~36k chars

	prompt := BuildPrompt(sampleReport(), long)

	if len(prompt) > promptTextLimit+2000 {
		t.Errorf("prompt not truncated: %d chars", len(prompt))
	}
}

func TestNewProvider(t *testing.T) {
	if p, err := NewProvider(Config{}); p != nil || err != nil {
		t.Errorf("empty provider must disable summaries, got %v %v", p, err)
	}

	if _, err := NewProvider(Config{Provider: "openai"}); err == nil {
		t.Error("openai without API key must error")
	}

	p, err := NewProvider(Config{Provider: "openai", APIKey: "sk-test"})
	if err != nil || p == nil || p.Name() != "openai" {
		t.Errorf("expected openai provider, got %v %v", p, err)
	}

	if _, err := NewProvider(Config{Provider: "mystery"}); err == nil {
		t.Error("unknown provider must error")
	}
}
