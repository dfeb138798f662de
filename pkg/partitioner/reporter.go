package partitioner

// Reporter receives progress of a min cut search.
type Reporter interface {
	// TrialDone is called after each processed trial with the best cut size seen so far.
	TrialDone(done, total, bestSize int)
	Finished(cut *MinCut)
}

type NopReporter struct{}

func (NopReporter) TrialDone(done, total, bestSize int) {}

func (NopReporter) Finished(cut *MinCut) {}
