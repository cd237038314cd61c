package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/clausewise/clausewise/internal/model"
)

// Renderer writes reports to JSON and Markdown and prints the console
// summary.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the full report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable Markdown report.
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	md := r.Markdown(report)
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// Markdown builds the Markdown report body.
func (r *Renderer) Markdown(report *model.Report) string {
	var b strings.Builder

	b.WriteString("# Contract Risk Analysis\n\n")
	if report.Source != "" {
		fmt.Fprintf(&b, "**Source:** %s  \n", report.Source)
	}
	fmt.Fprintf(&b, "**Analyzed:** %s  \n", report.AnalyzedAt.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "**Language:** %s  \n", report.Language)
	fmt.Fprintf(&b, "**Clauses:** %d (%d words)\n\n", report.Document.ClauseCount, report.Document.WordCount)

	fmt.Fprintf(&b, "## Overall Risk: %s (%.2f)\n\n", strings.ToUpper(string(report.DocumentRisk.OverallLevel)), report.DocumentRisk.OverallScore)
	dist := report.DocumentRisk.Distribution
	fmt.Fprintf(&b, "| High | Medium | Low |\n|------|--------|-----|\n| %d | %d | %d |\n\n", dist.High, dist.Medium, dist.Low)

	if high := report.HighRiskClauses(); len(high) > 0 {
		b.WriteString("## High-Risk Clauses\n\n")
		for _, c := range high {
			fmt.Fprintf(&b, "- **%s** (%.2f): %s\n", c.ClauseID, c.RiskScore, strings.Join(c.MatchedCategories, ", "))
		}
		b.WriteString("\n")
	}

	if len(report.RiskSummary) > 0 {
		b.WriteString("## Risk Categories\n\n")
		b.WriteString("| Category | Clauses | Avg Score | Severity |\n|----------|---------|-----------|----------|\n")
		names := make([]string, 0, len(report.RiskSummary))
		for name := range report.RiskSummary {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			st := report.RiskSummary[name]
			fmt.Fprintf(&b, "| %s | %d | %.2f | %s |\n", name, st.Count, st.AvgScore, st.Severity)
		}
		b.WriteString("\n")
	}

	if len(report.Flags) > 0 {
		b.WriteString("## Risk Flags\n\n")
		for _, f := range report.Flags {
			fmt.Fprintf(&b, "### %s\n\n", f.Title)
			fmt.Fprintf(&b, "- **Severity:** %s\n", f.Severity)
			if f.ClauseID != "" {
				fmt.Fprintf(&b, "- **Clause:** %s\n", f.ClauseID)
			}
			fmt.Fprintf(&b, "- %s\n", f.Description)
			fmt.Fprintf(&b, "- *Recommendation:* %s\n\n", f.Recommendation)
		}
	}

	if len(report.UnfavorableTerms) > 0 {
		b.WriteString("## Unfavorable Terms\n\n")
		for _, t := range report.UnfavorableTerms {
			fmt.Fprintf(&b, "### %s (%s)\n\n", t.TermType, t.ClauseID)
			fmt.Fprintf(&b, "> %s\n\n", t.Excerpt)
			fmt.Fprintf(&b, "%s\n\n**Alternative:** %s\n\n", t.Explanation, t.Alternative)
		}
	}

	if len(report.TemplateMatches) > 0 {
		b.WriteString("## Standard Clause Comparison\n\n")
		for _, m := range report.TemplateMatches {
			fmt.Fprintf(&b, "- **%s** resembles *%s* (%.0f%%)\n", m.ClauseID, m.TemplateTitle, m.SimilarityScore*100)
		}
		b.WriteString("\n")
	}

	if len(report.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}

	if report.LLM != nil && report.LLM.Enabled {
		b.WriteString("## Plain-Language Summary\n\n")
		fmt.Fprintf(&b, "%s\n\n", report.LLM.SummaryMD)
		fmt.Fprintf(&b, "*Generated by %s (%s). Advisory only; does not affect scores.*\n\n", report.LLM.Provider, report.LLM.Model)
	}

	if r.includeFooter {
		b.WriteString("---\n\nThis analysis is automated and informational. It is not legal advice.\n")
	}

	return b.String()
}

// RenderSummary prints a short console summary.
func (r *Renderer) RenderSummary(report *model.Report, w io.Writer) {
	fmt.Fprintf(w, "Overall risk: %s (%.2f)\n", report.DocumentRisk.OverallLevel, report.DocumentRisk.OverallScore)
	dist := report.DocumentRisk.Distribution
	fmt.Fprintf(w, "Clauses: %d total, %d high / %d medium / %d low\n",
		report.Document.ClauseCount, dist.High, dist.Medium, dist.Low)
	fmt.Fprintf(w, "Flags: %d, unfavorable terms: %d, template matches: %d\n",
		len(report.Flags), len(report.UnfavorableTerms), len(report.TemplateMatches))
	for _, rec := range report.Recommendations {
		fmt.Fprintf(w, "  %s\n", rec)
	}
}
