package partitioner

import (
	"testing"

	"github.com/lintang-b-s/karger-min-cut/pkg/datastructure"
	"github.com/stretchr/testify/require"
)

// fixedRand always picks the same position (modulo the edge count).
type fixedRand int

func (f fixedRand) Intn(n int) int {
	return int(f) % n
}

func buildStore(t *testing.T, pairs [][2]datastructure.Index) *datastructure.EdgeStore {
	t.Helper()
	b := datastructure.NewEdgeStoreBuilder()
	for _, p := range pairs {
		_, err := b.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	return b.Build()
}

// cycleGraph: 1-2-...-n-1
func cycleGraph(t *testing.T, n int) *datastructure.EdgeStore {
	pairs := make([][2]datastructure.Index, 0, n)
	for i := 1; i <= n; i++ {
		pairs = append(pairs, [2]datastructure.Index{datastructure.Index(i), datastructure.Index(i%n + 1)})
	}
	return buildStore(t, pairs)
}

// pathGraph: 1-2-...-n
func pathGraph(t *testing.T, n int) *datastructure.EdgeStore {
	pairs := make([][2]datastructure.Index, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, [2]datastructure.Index{datastructure.Index(i), datastructure.Index(i + 1)})
	}
	return buildStore(t, pairs)
}

// twoTriangles: {1,2,3} and {4,5,6}, no edge between them
func twoTriangles(t *testing.T) *datastructure.EdgeStore {
	return buildStore(t, [][2]datastructure.Index{
		{1, 2}, {2, 3}, {1, 3},
		{4, 5}, {5, 6}, {4, 6},
	})
}

// barbell: two K_k cliques {1..k} and {k+1..2k} joined by the single edge (k, k+1)
func barbell(t *testing.T, k int) *datastructure.EdgeStore {
	pairs := make([][2]datastructure.Index, 0)
	for offset := 0; offset <= k; offset += k {
		for i := 1; i <= k; i++ {
			for j := i + 1; j <= k; j++ {
				pairs = append(pairs, [2]datastructure.Index{
					datastructure.Index(offset + i), datastructure.Index(offset + j)})
			}
		}
	}
	pairs = append(pairs, [2]datastructure.Index{datastructure.Index(k), datastructure.Index(k + 1)})
	return buildStore(t, pairs)
}

type recordingReporter struct {
	done      []int
	totals    []int
	bestSizes []int
	finished  []*MinCut
}

func (r *recordingReporter) TrialDone(done, total, bestSize int) {
	r.done = append(r.done, done)
	r.totals = append(r.totals, total)
	r.bestSizes = append(r.bestSizes, bestSize)
}

func (r *recordingReporter) Finished(cut *MinCut) {
	r.finished = append(r.finished, cut)
}
