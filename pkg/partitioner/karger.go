package partitioner

import (
	"context"
	"fmt"
	"time"

	"github.com/lintang-b-s/karger-min-cut/pkg"
	"github.com/lintang-b-s/karger-min-cut/pkg/concurrent"
	"github.com/lintang-b-s/karger-min-cut/pkg/datastructure"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

type TrialConfig struct {
	Trials  int    // number of trials, 0 means TrialCount(n)
	Workers int    // number of concurrent trials
	Seed    uint64 // master seed, 0 means seeded from the clock
}

// Karger estimates the global min cut of a simple undirected graph with repeated random contraction.
type Karger struct {
	cfg      TrialConfig
	reporter Reporter
	logger   *zap.Logger
}

func NewKarger(cfg TrialConfig, reporter Reporter, logger *zap.Logger) *Karger {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if reporter == nil {
		reporter = NopReporter{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Karger{
		cfg:      cfg,
		reporter: reporter,
		logger:   logger,
	}
}

// FindMinCut. run independent contraction trials over store and return the smallest cut found.
// store is only read. if ctx is done before all trials ran, the best cut so far is returned with ctx.Err().
func (k *Karger) FindMinCut(ctx context.Context, store *datastructure.EdgeStore) (*MinCut, error) {
	n, err := store.VertexCount()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: %w: %d vertices", ErrInvalidGraph, ErrTooFewVertices, n)
	}

	if n == 2 {
		// the only edge left between the two vertices is the cut, nothing to contract
		minCut := NewMinCut(n)
		minCut.setEdges(store.GetEdges())
		k.logger.Sugar().Infof("graph has 2 vertices, min cut is its %d edges", store.Len())
		k.reporter.Finished(minCut)
		return minCut, nil
	}

	total := k.cfg.Trials
	if total <= 0 {
		total, err = TrialCount(n)
		if err != nil {
			return nil, err
		}
	}

	seed := k.cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	k.logger.Sugar().Infof("running %d contraction trials on %d vertices and %d edges with %d workers",
		total, n, store.Len(), k.cfg.Workers)

	best, processed := k.runTrials(ctx, store, n, total, seed)

	minCut := NewMinCut(n)
	minCut.setTrials(processed)
	if best.found() {
		minCut.setEdges(TranslateCut(store, best.cut))
		minCut.setTrial(best.trial)
	}

	if err := ctx.Err(); err != nil {
		k.logger.Warn("min cut search stopped early",
			zap.Int("trials", processed), zap.Int("total", total), zap.Error(err))
		return minCut, err
	}

	k.reporter.Finished(minCut)
	return minCut, nil
}

func (k *Karger) runTrials(ctx context.Context, store *datastructure.EdgeStore, n, total int,
	seed uint64) (*bestCut, int) {
	workers := k.cfg.Workers
	if workers > total {
		workers = total
	}

	pool := concurrent.NewWorkerPool[trialJob, trialResult](workers, pkg.TRIAL_QUEUE_SIZE_PER_WORKER*workers)

	rngs := make([]*rand.Rand, pool.NumWorkers())
	for i := range rngs {
		rngs[i] = rand.New(rand.NewSource(0))
	}

	pool.Start(func(workerID int, job trialJob) trialResult {
		rng := rngs[workerID]
		rng.Seed(job.seed)
		return trialResult{
			trial: job.trial,
			cut:   RunTrial(store, n, rng),
		}
	})

	go func() {
		// seeds are drawn in trial order so a fixed master seed gives the same trials for any worker count
		master := rand.New(rand.NewSource(seed))
		for trial := 1; trial <= total; trial++ {
			if !pool.AddJobContext(ctx, trialJob{trial: trial, seed: master.Uint64()}) {
				break
			}
		}
		pool.Close()
		pool.Wait()
	}()

	best := newBestCut()
	processed := 0
	for res := range pool.CollectResults() {
		processed++
		if best.offer(res) {
			k.logger.Debug("best cut updated", zap.Int("trial", res.trial), zap.Int("size", best.getSize()))
		}
		k.reporter.TrialDone(processed, total, best.getSize())
	}

	return best, processed
}
