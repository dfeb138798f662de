package concurrent

import (
	"context"
	"sync"
)

// JobFunc runs one job. workerID is in [0, numWorkers) and lets a job use state owned by its worker.
type JobFunc[T any, G any] func(workerID int, job T) G

type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) NumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool[T, G]) worker(id int, jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		res := jobFunc(id, job)
		wp.results <- res
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i, jobFunc)
	}
}

// Wait blocks until every worker returned, then closes the results channel.
// call it after Close.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

// AddJobContext. like AddJob but gives up when ctx is done. returns false if the job was not queued
func (wp *WorkerPool[T, G]) AddJobContext(ctx context.Context, job T) bool {
	select {
	case <-ctx.Done():
		return false
	case wp.jobQueue <- job:
		return true
	}
}

func (wp *WorkerPool[T, G]) CollectResults() chan G {
	return wp.results
}

func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}
