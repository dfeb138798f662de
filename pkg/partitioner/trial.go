package partitioner

import (
	"fmt"

	"github.com/lintang-b-s/karger-min-cut/pkg/datastructure"
)

type trialJob struct {
	trial int // 1-based
	seed  uint64
}

type trialResult struct {
	trial int
	cut   *datastructure.EdgeStore
}

// RunTrial. contract a private clone of original down to two vertices and return it.
// the returned store only holds edges between the two surviving vertices, in contracted labels.
// original is never modified.
func RunTrial(original *datastructure.EdgeStore, numberOfVertices int, rng Rand) *datastructure.EdgeStore {
	store := original.Clone()
	for remaining := numberOfVertices; remaining > 2; remaining-- {
		if store.IsEmpty() {
			// more than two connected components, every remaining split has an empty cut
			break
		}
		store = ContractOnce(store, rng)
	}
	return store
}

// TranslateCut. map the surviving edges of a contracted store back to their original endpoints by identity.
// edges are returned in original store order.
func TranslateCut(original, cut *datastructure.EdgeStore) []datastructure.Edge {
	ids := make(map[datastructure.EdgeID]struct{}, cut.Len())
	cut.ForEachEdge(func(e datastructure.Edge) {
		ids[e.GetID()] = struct{}{}
	})

	edges := make([]datastructure.Edge, 0, len(ids))
	original.ForEachEdge(func(e datastructure.Edge) {
		if _, ok := ids[e.GetID()]; ok {
			edges = append(edges, e)
		}
	})

	if len(edges) != cut.Len() {
		panic(fmt.Sprintf("partitioner: %d of %d cut edges have no original edge", cut.Len()-len(edges), cut.Len()))
	}
	return edges
}
