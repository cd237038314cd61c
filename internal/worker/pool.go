// Package worker provides a fixed-size worker pool, a keyed rate
// limiter, and a batch processor for analyzing many documents
// concurrently.
package worker

import (
	"context"
	"sync"
)

// Job represents a unit of work to be executed.
type Job interface {
	Execute(ctx context.Context) Result
}

// Result represents the result of a job execution.
type Result interface {
	GetError() error
}

// Pool executes jobs on a fixed number of workers. Results come back
// in submission order regardless of which worker finished first.
type Pool struct {
	workers int
}

// NewPool creates a pool with the specified number of workers.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

type indexedJob struct {
	idx int
	job Job
}

// Run executes all jobs and returns their results indexed like the
// input. If ctx is cancelled, unstarted jobs are skipped and their
// result slots stay nil.
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	queue := make(chan indexedJob)
	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range queue {
				select {
				case <-ctx.Done():
					continue // drain the queue without executing
				default:
				}
				results[item.idx] = item.job.Execute(ctx)
			}
		}()
	}

	for i, job := range jobs {
		queue <- indexedJob{idx: i, job: job}
	}
	close(queue)
	wg.Wait()

	return results
}
