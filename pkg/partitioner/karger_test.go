package partitioner

import (
	"context"
	"testing"

	"github.com/lintang-b-s/karger-min-cut/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestFindMinCutKnownFixtures(t *testing.T) {
	tests := []struct {
		name  string
		store func(t *testing.T) *datastructure.EdgeStore
		want  int
	}{
		{name: "cycle", store: func(t *testing.T) *datastructure.EdgeStore { return cycleGraph(t, 9) }, want: 2},
		{name: "path", store: func(t *testing.T) *datastructure.EdgeStore { return pathGraph(t, 9) }, want: 1},
		{name: "disconnected", store: twoTriangles, want: 0},
		{name: "barbell", store: func(t *testing.T) *datastructure.EdgeStore { return barbell(t, 4) }, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tt.store(t)
			n, err := store.VertexCount()
			require.NoError(t, err)
			wantTrials, err := TrialCount(n)
			require.NoError(t, err)

			karger := NewKarger(TrialConfig{Workers: 4, Seed: 42}, nil, zaptest.NewLogger(t))
			cut, err := karger.FindMinCut(context.Background(), store)
			require.NoError(t, err)

			assert.Equal(t, tt.want, cut.GetNumberOfMinCutEdges())
			assert.Equal(t, n, cut.GetNumberOfVertices())
			assert.Equal(t, wantTrials, cut.GetTrials())
			assert.GreaterOrEqual(t, cut.GetTrial(), 1)
		})
	}
}

func TestFindMinCutModeOverSeeds(t *testing.T) {
	// the barbell cut is unique, a single trial finds it far less often than the cycle or path cuts
	store := barbell(t, 5)
	counts := make(map[int]int)

	for seed := uint64(1); seed <= 25; seed++ {
		karger := NewKarger(TrialConfig{Workers: 2, Seed: seed}, nil, nil)
		cut, err := karger.FindMinCut(context.Background(), store)
		require.NoError(t, err)
		counts[cut.GetNumberOfMinCutEdges()]++
	}

	mode, best := -1, 0
	for size, count := range counts {
		if count > best {
			mode, best = size, count
		}
	}
	assert.Equal(t, 1, mode, "sizes seen: %v", counts)
}

func TestFindMinCutCutEdgesAreOriginal(t *testing.T) {
	store := barbell(t, 4)

	karger := NewKarger(TrialConfig{Workers: 3, Seed: 9}, nil, nil)
	cut, err := karger.FindMinCut(context.Background(), store)
	require.NoError(t, err)

	for _, e := range cut.GetEdges() {
		original, ok := store.GetEdgeByID(e.GetID())
		require.True(t, ok)
		assert.Equal(t, original, e)
	}
	assert.Equal(t, [][2]datastructure.Index{{4, 5}}, cut.GetEndpointPairs())
}

func TestFindMinCutTwoVertices(t *testing.T) {
	store := buildStore(t, [][2]datastructure.Index{{7, 3}, {3, 7}, {7, 3}})
	rep := &recordingReporter{}

	karger := NewKarger(TrialConfig{Workers: 2, Seed: 1}, rep, nil)
	cut, err := karger.FindMinCut(context.Background(), store)
	require.NoError(t, err)

	assert.Equal(t, 1, cut.GetNumberOfMinCutEdges())
	assert.Equal(t, [][2]datastructure.Index{{3, 7}}, cut.GetEndpointPairs())
	assert.Zero(t, cut.GetTrials())
	assert.Zero(t, cut.GetTrial())
	assert.Empty(t, rep.done, "no trial should run")
	assert.Len(t, rep.finished, 1)
}

func TestFindMinCutEmptyStore(t *testing.T) {
	karger := NewKarger(TrialConfig{Workers: 1}, nil, nil)

	cut, err := karger.FindMinCut(context.Background(), datastructure.NewEdgeStoreBuilder().Build())

	assert.Nil(t, cut)
	assert.ErrorIs(t, err, ErrInvalidGraph)
	assert.ErrorIs(t, err, datastructure.ErrEmptyEdgeStore)
}

func TestFindMinCutProgressIsMonotone(t *testing.T) {
	store := barbell(t, 4)
	rep := &recordingReporter{}

	karger := NewKarger(TrialConfig{Trials: 150, Workers: 4, Seed: 3}, rep, nil)
	cut, err := karger.FindMinCut(context.Background(), store)
	require.NoError(t, err)

	require.Len(t, rep.done, 150)
	for i := range rep.done {
		assert.Equal(t, i+1, rep.done[i])
		assert.Equal(t, 150, rep.totals[i])
		if i > 0 {
			assert.LessOrEqual(t, rep.bestSizes[i], rep.bestSizes[i-1])
		}
	}
	assert.Equal(t, cut.GetNumberOfMinCutEdges(), rep.bestSizes[len(rep.bestSizes)-1])
	require.Len(t, rep.finished, 1)
	assert.Same(t, cut, rep.finished[0])
}

func TestFindMinCutSameSeedSameResult(t *testing.T) {
	store := barbell(t, 5)

	sequential, err := NewKarger(TrialConfig{Trials: 60, Workers: 1, Seed: 2024}, nil, nil).
		FindMinCut(context.Background(), store)
	require.NoError(t, err)

	parallel, err := NewKarger(TrialConfig{Trials: 60, Workers: 8, Seed: 2024}, nil, nil).
		FindMinCut(context.Background(), store)
	require.NoError(t, err)

	assert.Equal(t, sequential.GetEdges(), parallel.GetEdges())
	assert.Equal(t, sequential.GetTrial(), parallel.GetTrial())
	assert.Equal(t, sequential.GetTrials(), parallel.GetTrials())
}

func TestFindMinCutCanceled(t *testing.T) {
	store := barbell(t, 6)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rep := &recordingReporter{}

	karger := NewKarger(TrialConfig{Trials: 100000, Workers: 2, Seed: 5}, rep, nil)
	cut, err := karger.FindMinCut(ctx, store)

	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, cut)
	assert.Less(t, cut.GetTrials(), 100000)
	assert.Empty(t, rep.finished)
}

func TestBestCutOffer(t *testing.T) {
	one := datastructure.NewEdgeStore([]datastructure.Edge{datastructure.NewEdge(1, 2, 0)})
	two := datastructure.NewEdgeStore([]datastructure.Edge{
		datastructure.NewEdge(1, 2, 1), datastructure.NewEdge(1, 2, 2)})
	otherOne := datastructure.NewEdgeStore([]datastructure.Edge{datastructure.NewEdge(1, 2, 3)})

	best := newBestCut()
	assert.False(t, best.found())

	assert.True(t, best.offer(trialResult{trial: 5, cut: two}))
	assert.True(t, best.offer(trialResult{trial: 7, cut: one}))
	assert.False(t, best.offer(trialResult{trial: 9, cut: otherOne}), "ties keep the earlier trial")
	assert.True(t, best.offer(trialResult{trial: 6, cut: otherOne}), "an earlier trial wins a tie")
	assert.False(t, best.offer(trialResult{trial: 1, cut: two}))

	assert.Equal(t, 1, best.getSize())
	assert.Equal(t, 6, best.trial)
	assert.Same(t, otherOne, best.cut)
}
