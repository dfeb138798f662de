package partitioner

import (
	"fmt"

	"github.com/lintang-b-s/karger-min-cut/pkg/datastructure"
)

// Rand is the source of uniform draws used by a single trial.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// ContractOnce. contract one edge of store chosen uniformly at random.
// store must be privately owned by the caller, it is rewritten in place and returned.
// every edge (not every vertex pair) is equally likely, parallel edges included: that's what the
// 2/(n(n-1)) survival bound of a fixed min cut relies on.
func ContractOnce(store *datastructure.EdgeStore, rng Rand) *datastructure.EdgeStore {
	if store.IsEmpty() {
		panic("partitioner: ContractOnce called on an empty edge store")
	}

	picked := store.GetEdge(rng.Intn(store.Len()))

	// edges are kept normalized, the smaller label survives
	survivor, eliminated := picked.GetFrom(), picked.GetTo()

	removed := store.Contract(survivor, eliminated)
	if removed == 0 {
		panic(fmt.Sprintf("partitioner: contracting (%d, %d) removed no edge", survivor, eliminated))
	}
	return store
}
