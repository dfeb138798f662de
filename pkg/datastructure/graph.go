package datastructure

import "sort"

// Graph is a loaded input graph: its edge store plus every vertex label the input declared,
// including labels that have no edge.
type Graph struct {
	store    *EdgeStore
	vertices []Index
}

func NewGraph(store *EdgeStore, vertices []Index) *Graph {
	sorted := make([]Index, len(vertices))
	copy(sorted, vertices)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	return &Graph{
		store:    store,
		vertices: sorted,
	}
}

func (g *Graph) GetEdgeStore() *EdgeStore {
	return g.store
}

func (g *Graph) NumberOfVertices() int {
	return len(g.vertices)
}

func (g *Graph) NumberOfEdges() int {
	return g.store.Len()
}

func (g *Graph) GetVertices() []Index {
	return g.vertices
}

// GetIsolatedVertices. declared vertices that are not an endpoint of any edge
func (g *Graph) GetIsolatedVertices() []Index {
	connected := make(map[Index]struct{}, len(g.vertices))
	g.store.ForEachEdge(func(e Edge) {
		connected[e.GetFrom()] = struct{}{}
		connected[e.GetTo()] = struct{}{}
	})
	isolated := make([]Index, 0)
	for _, v := range g.vertices {
		if _, ok := connected[v]; !ok {
			isolated = append(isolated, v)
		}
	}
	return isolated
}

// GetAdjacency. neighbors of every declared vertex, sorted
func (g *Graph) GetAdjacency() map[Index][]Index {
	adj := make(map[Index][]Index, len(g.vertices))
	for _, v := range g.vertices {
		adj[v] = make([]Index, 0)
	}
	g.store.ForEachEdge(func(e Edge) {
		adj[e.GetFrom()] = append(adj[e.GetFrom()], e.GetTo())
		adj[e.GetTo()] = append(adj[e.GetTo()], e.GetFrom())
	})
	for _, neighbors := range adj {
		sort.Slice(neighbors, func(i, j int) bool {
			return neighbors[i] < neighbors[j]
		})
	}
	return adj
}
