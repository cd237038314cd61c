package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type sleepJob struct {
	id    int
	delay time.Duration
	ran   *atomic.Int32
}

type sleepResult struct {
	id  int
	err error
}

func (r *sleepResult) GetError() error { return r.err }

func (j *sleepJob) Execute(ctx context.Context) Result {
	if j.ran != nil {
		j.ran.Add(1)
	}
	select {
	case <-ctx.Done():
		return &sleepResult{id: j.id, err: ctx.Err()}
	case <-time.After(j.delay):
	}
	return &sleepResult{id: j.id}
}

func TestPool_PreservesSubmissionOrder(t *testing.T) {
	pool := NewPool(4)

	// Later jobs finish first; results must still come back in order.
	jobs := make([]Job, 8)
	for i := range jobs {
		jobs[i] = &sleepJob{id: i, delay: time.Duration(8-i) * 5 * time.Millisecond}
	}

	results := pool.Run(context.Background(), jobs)

	if len(results) != 8 {
		t.Fatalf("expected 8 results, got %d", len(results))
	}
	for i, r := range results {
		if r == nil {
			t.Fatalf("nil result at %d", i)
		}
		if got := r.(*sleepResult).id; got != i {
			t.Errorf("result %d carries id %d; order not preserved", i, got)
		}
	}
}

func TestPool_EmptyInput(t *testing.T) {
	results := NewPool(2).Run(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("expected empty results, got %d", len(results))
	}
}

func TestPool_ZeroWorkersClampedToOne(t *testing.T) {
	pool := NewPool(0)

	results := pool.Run(context.Background(), []Job{&sleepJob{id: 0}})

	if len(results) != 1 || results[0] == nil {
		t.Fatalf("expected one executed job, got %v", results)
	}
}

func TestPool_CancelledContextSkipsUnstartedJobs(t *testing.T) {
	pool := NewPool(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Int32
	jobs := make([]Job, 4)
	for i := range jobs {
		jobs[i] = &sleepJob{id: i, ran: &ran}
	}

	results := pool.Run(ctx, jobs)

	if len(results) != 4 {
		t.Fatalf("expected 4 slots, got %d", len(results))
	}
	if got := ran.Load(); got != 0 {
		t.Errorf("expected no jobs to execute after cancellation, got %d", got)
	}
}

func TestPool_MoreJobsThanWorkers(t *testing.T) {
	pool := NewPool(2)

	jobs := make([]Job, 20)
	for i := range jobs {
		jobs[i] = &sleepJob{id: i, delay: time.Millisecond}
	}

	results := pool.Run(context.Background(), jobs)

	for i, r := range results {
		if r == nil || r.GetError() != nil {
			t.Fatalf("job %d failed: %v", i, r)
		}
	}
}
