package pkg

const (
	// jobs buffered per worker between the trial dispatcher and the pool
	TRIAL_QUEUE_SIZE_PER_WORKER = 4

	// progress is logged every PROGRESS_EVERY processed trials
	PROGRESS_EVERY = 1000

	LOG_PROGRESS_ROWS = 50000
)
