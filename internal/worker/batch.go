package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/clausewise/clausewise/internal/model"
)

// Analyzer defines the interface for analyzing a single document file.
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string) (*model.Report, error)
}

// FileJob analyzes one file.
type FileJob struct {
	Path     string
	Analyzer Analyzer
}

// Execute runs the analysis for the job's file.
func (j *FileJob) Execute(ctx context.Context) Result {
	report, err := j.Analyzer.AnalyzeFile(ctx, j.Path)
	return &FileResult{Path: j.Path, Report: report, Error: err}
}

// FileResult is the outcome of analyzing one file.
type FileResult struct {
	Path   string
	Report *model.Report
	Error  error
}

// GetError returns the error from the file result.
func (r *FileResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes multiple document files concurrently.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor.
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{analyzer: analyzer, concurrency: concurrency}
}

// ProcessFiles analyzes the given files concurrently. Results follow
// the input order.
func (b *BatchProcessor) ProcessFiles(ctx context.Context, paths []string) []*FileResult {
	if len(paths) == 0 {
		return []*FileResult{}
	}

	jobs := make([]Job, len(paths))
	for i, path := range paths {
		jobs[i] = &FileJob{Path: path, Analyzer: b.analyzer}
	}

	results := NewPool(b.concurrency).Run(ctx, jobs)

	fileResults := make([]*FileResult, 0, len(results))
	for i, result := range results {
		if result == nil {
			// Skipped on cancellation.
			fileResults = append(fileResults, &FileResult{Path: paths[i], Error: ctx.Err()})
			continue
		}
		fileResults = append(fileResults, result.(*FileResult))
	}
	return fileResults
}

// ProcessTarget analyzes a directory of documents or a list file of
// paths (one per line).
func (b *BatchProcessor) ProcessTarget(ctx context.Context, target string) ([]*FileResult, error) {
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("stat target: %w", err)
	}

	var paths []string
	if info.IsDir() {
		paths, err = ListDocuments(target)
	} else {
		paths, err = ReadPathsFromFile(target)
	}
	if err != nil {
		return nil, err
	}
	return b.ProcessFiles(ctx, paths), nil
}

// documentExtensions are the file types the loader understands.
var documentExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
}

// ListDocuments returns the analyzable files directly under dir, in
// sorted order.
func ListDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if documentExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// ReadPathsFromFile reads file paths from a list file, one per line.
// Empty lines and #-comments are skipped; duplicates are dropped.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return paths, nil
}
