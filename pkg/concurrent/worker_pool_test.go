package concurrent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	const numJobs = 100
	wp := NewWorkerPool[int, [2]int](4, numJobs)
	wp.Start(func(workerID int, job int) [2]int {
		return [2]int{workerID, job * job}
	})

	for i := 0; i < numJobs; i++ {
		wp.AddJob(i)
	}
	wp.Close()
	wp.Wait()

	sum := 0
	count := 0
	for res := range wp.CollectResults() {
		assert.GreaterOrEqual(t, res[0], 0)
		assert.Less(t, res[0], 4)
		sum += res[1]
		count++
	}
	assert.Equal(t, numJobs, count)
	assert.Equal(t, 328350, sum) // sum of squares 0..99
}

func TestWorkerPoolAtLeastOneWorker(t *testing.T) {
	wp := NewWorkerPool[int, int](0, 1)
	assert.Equal(t, 1, wp.NumWorkers())
}

func TestAddJobContextCanceled(t *testing.T) {
	wp := NewWorkerPool[int, int](1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// no worker started and no buffer, only the canceled context can be selected
	require.False(t, wp.AddJobContext(ctx, 1))
}
