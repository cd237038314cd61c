package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/clausewise/clausewise/internal/model"
	"github.com/clausewise/clausewise/internal/worker"
)

// promptTextLimit caps how much contract text goes into the prompt.
const promptTextLimit = 15000

// Summarizer runs a provider behind a per-provider rate limiter so
// batch analyses do not hammer the API.
type Summarizer struct {
	provider Provider
	limiter  *worker.Limiter
}

// NewSummarizer wraps a provider. Either argument may be nil; a nil
// provider produces disabled summaries, a nil limiter means no
// throttling.
func NewSummarizer(provider Provider, limiter *worker.Limiter) *Summarizer {
	return &Summarizer{provider: provider, limiter: limiter}
}

// Summarize produces a plain-language summary block for the report.
// Failures never abort the analysis: they come back as a disabled
// summary carrying a warning.
func (s *Summarizer) Summarize(ctx context.Context, report *model.Report, text string) *model.PlainSummary {
	if s == nil || s.provider == nil {
		return &model.PlainSummary{Enabled: false}
	}

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx, s.provider.Name()); err != nil {
			return &model.PlainSummary{
				Enabled:  false,
				Provider: s.provider.Name(),
				Warnings: []string{fmt.Sprintf("summary skipped: %v", err)},
			}
		}
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{Report: report, Text: text})
	if err != nil {
		return &model.PlainSummary{
			Enabled:  false,
			Provider: s.provider.Name(),
			Warnings: []string{fmt.Sprintf("summary failed: %v", err)},
		}
	}

	return &model.PlainSummary{
		Enabled:   true,
		Provider:  s.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Summary,
	}
}

// BuildPrompt constructs the default summarization prompt from the
// report's findings and a sample of the contract text.
func BuildPrompt(report *model.Report, text string) string {
	sample := text
	if len(sample) > promptTextLimit {
		sample = sample[:promptTextLimit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Generate a concise, plain-language summary of this contract suitable for a small business owner.

Contract Details:
- Word Count: %d
- Clauses: %d
- Language: %s
- Overall Risk: %s (%.2f)
- Risk Distribution: %d high, %d medium, %d low
`,
		report.Document.WordCount,
		report.Document.ClauseCount,
		report.Language,
		report.DocumentRisk.OverallLevel,
		report.DocumentRisk.OverallScore,
		report.DocumentRisk.Distribution.High,
		report.DocumentRisk.Distribution.Medium,
		report.DocumentRisk.Distribution.Low,
	)

	if len(report.Flags) > 0 {
		b.WriteString("\nKey Findings:\n")
		for i, f := range report.Flags {
			if i >= 5 {
				fmt.Fprintf(&b, "- ... and %d more findings\n", len(report.Flags)-5)
				break
			}
			fmt.Fprintf(&b, "- [%s] %s: %s\n", f.Severity, f.Title, f.Description)
		}
	}

	fmt.Fprintf(&b, `
Contract Text:
%s

Provide a summary covering:
1. What type of contract this is
2. Who are the parties involved
3. What is the main purpose/scope
4. Key obligations of each party
5. Important dates or timelines
6. Payment terms (if applicable)
7. Termination conditions

Write in simple business language that a non-lawyer can understand. Use bullet points for clarity.`, sample)

	return b.String()
}
