package partitioner

import (
	"math"

	"github.com/lintang-b-s/karger-min-cut/pkg/datastructure"
)

type MinCut struct {
	edges            []datastructure.Edge // cut edges with their original endpoints
	numberOfVertices int                  // number of vertices of the input graph
	trial            int                  // 1-based index of the trial that found this cut, 0 if no trial was needed
	trials           int                  // number of trials processed
}

func NewMinCut(numberOfVertices int) *MinCut {
	return &MinCut{
		edges:            make([]datastructure.Edge, 0),
		numberOfVertices: numberOfVertices,
	}
}

func (mc *MinCut) GetEdges() []datastructure.Edge {
	return mc.edges
}

func (mc *MinCut) GetNumberOfMinCutEdges() int {
	return len(mc.edges)
}

func (mc *MinCut) GetNumberOfVertices() int {
	return mc.numberOfVertices
}

func (mc *MinCut) GetTrial() int {
	return mc.trial
}

func (mc *MinCut) GetTrials() int {
	return mc.trials
}

// GetEndpointPairs. cut edges as (u, v) pairs in original vertex labels
func (mc *MinCut) GetEndpointPairs() [][2]datastructure.Index {
	pairs := make([][2]datastructure.Index, 0, len(mc.edges))
	for _, e := range mc.edges {
		pairs = append(pairs, [2]datastructure.Index{e.GetFrom(), e.GetTo()})
	}
	return pairs
}

func (mc *MinCut) setEdges(edges []datastructure.Edge) {
	mc.edges = edges
}

func (mc *MinCut) setTrial(trial int) {
	mc.trial = trial
}

func (mc *MinCut) setTrials(trials int) {
	mc.trials = trials
}

// bestCut accumulates trial results. only the collector goroutine touches it.
type bestCut struct {
	size  int
	trial int
	cut   *datastructure.EdgeStore // contracted store of the best trial, still in contracted labels
}

func newBestCut() *bestCut {
	return &bestCut{
		size: math.MaxInt,
	}
}

// offer. keep res if it is strictly smaller, on a tie the earlier trial wins.
// returns true if res replaced the current best
func (b *bestCut) offer(res trialResult) bool {
	size := res.cut.Len()
	if size < b.size || (size == b.size && res.trial < b.trial) {
		b.size = size
		b.trial = res.trial
		b.cut = res.cut
		return true
	}
	return false
}

func (b *bestCut) found() bool {
	return b.cut != nil
}

func (b *bestCut) getSize() int {
	return b.size
}
