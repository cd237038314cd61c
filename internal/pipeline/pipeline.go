// Package pipeline orchestrates the full contract analysis: language
// detection, segmentation, scoring, flagging, term detection, template
// matching and report assembly.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/clausewise/clausewise/internal/cache"
	"github.com/clausewise/clausewise/internal/flags"
	"github.com/clausewise/clausewise/internal/llm"
	"github.com/clausewise/clausewise/internal/model"
	"github.com/clausewise/clausewise/internal/nlp"
	"github.com/clausewise/clausewise/internal/score"
	"github.com/clausewise/clausewise/internal/segment"
	"github.com/clausewise/clausewise/internal/template"
	"github.com/clausewise/clausewise/internal/terms"
	"github.com/clausewise/clausewise/internal/worker"
)

// Analyzer wires the engine components together. Construct once, reuse
// across documents; it holds no per-document state.
type Analyzer struct {
	cfg        *model.Config
	segmenter  *segment.Segmenter
	nlp        *nlp.Analyzer
	scorer     *score.Scorer
	aggregator *score.Aggregator
	flagGen    *flags.Generator
	matcher    *template.Matcher
	pool       *worker.Pool
	store      *cache.ReportStore
	summarizer *llm.Summarizer
}

// New creates an analyzer from configuration.
func New(cfg *model.Config) *Analyzer {
	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else if provider != nil {
			rps := cfg.LLM.RequestsPerMinute / 60.0
			if rps <= 0 {
				rps = 1
			}
			summarizer = llm.NewSummarizer(provider, worker.NewLimiter(rps, 1))
		}
	}

	return &Analyzer{
		cfg:        cfg,
		segmenter:  segment.NewSegmenter(cfg),
		nlp:        nlp.NewAnalyzer(),
		scorer:     score.NewScorer(cfg),
		aggregator: score.NewAggregator(cfg),
		flagGen:    flags.NewGenerator(cfg),
		matcher:    template.NewMatcher(template.Load(cfg.Templates.Path)),
		pool:       worker.NewPool(cfg.Concurrency.Workers),
		store:      cache.NewReportStore(cache.New(cfg.Cache), cfg.Cache.TTL),
		summarizer: summarizer,
	}
}

// scoreJob scores one clause on the worker pool.
type scoreJob struct {
	clause model.Clause
	scorer *score.Scorer
}

type scoreResult struct {
	result model.ClauseRiskResult
}

func (r *scoreResult) GetError() error { return nil }

func (j *scoreJob) Execute(ctx context.Context) worker.Result {
	return &scoreResult{result: j.scorer.Score(j.clause)}
}

// Analyze runs the full pipeline over raw contract text. source is a
// caller-supplied origin label recorded in the report.
func (a *Analyzer) Analyze(ctx context.Context, text, source string) (*model.Report, error) {
	lang := a.cfg.Language
	if lang == "" || lang == "auto" {
		lang = nlp.DetectLanguage(text)
	}

	if cached, found := a.store.Get(text, lang); found {
		cached.Source = source
		return cached, nil
	}

	clauses := a.segmenter.Segment(text)
	signals := a.nlp.Analyze(text, clauses)
	types := nlp.ClassifyAll(clauses)

	clauseRisks, err := a.scoreClauses(ctx, clauses)
	if err != nil {
		return nil, err
	}

	docRisk := a.aggregator.Aggregate(clauseRisks)
	riskFlags := a.flagGen.Generate(clauses, signals)

	report := &model.Report{
		Source:     source,
		Language:   lang,
		AnalyzedAt: time.Now().UTC(),
		Document: model.DocumentMeta{
			CharCount:   utf8.RuneCountInString(text),
			WordCount:   len(strings.Fields(text)),
			ClauseCount: len(clauses),
		},
		Clauses:          clauses,
		ClauseRisks:      clauseRisks,
		DocumentRisk:     docRisk,
		RiskSummary:      a.aggregator.Summarize(clauseRisks),
		Flags:            riskFlags,
		UnfavorableTerms: terms.NewDetector(lang).Detect(clauses),
		TemplateMatches:  a.matcher.Match(clauses, types),
		Signals:          *signals,
		Recommendations:  score.Recommendations(lang, clauseRisks, riskFlags),
	}

	// The summary runs last so it can never influence scoring.
	if a.summarizer != nil {
		if summary := a.summarizer.Summarize(ctx, report, text); summary.Enabled || len(summary.Warnings) > 0 {
			report.LLM = summary
		}
	}

	if err := a.store.Put(text, lang, report); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cache write failed: %v\n", err)
	}

	return report, nil
}

// AnalyzeFile loads a document from disk and analyzes it.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*model.Report, error) {
	text, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return a.Analyze(ctx, text, filepath.Base(path))
}

// scoreClauses scores all clauses concurrently, preserving document
// order.
func (a *Analyzer) scoreClauses(ctx context.Context, clauses []model.Clause) ([]model.ClauseRiskResult, error) {
	if len(clauses) == 0 {
		return nil, nil
	}

	jobs := make([]worker.Job, len(clauses))
	for i, c := range clauses {
		jobs[i] = &scoreJob{clause: c, scorer: a.scorer}
	}

	results := a.pool.Run(ctx, jobs)

	out := make([]model.ClauseRiskResult, len(results))
	for i, r := range results {
		if r == nil {
			return nil, fmt.Errorf("score clauses: %w", ctx.Err())
		}
		out[i] = r.(*scoreResult).result
	}
	return out, nil
}
