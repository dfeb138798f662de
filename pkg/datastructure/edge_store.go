package datastructure

import (
	"errors"
	"sort"
)

type Index uint32

// EdgeID identifies an edge for the whole lifetime of a store and all of its clones.
type EdgeID int

var (
	ErrEmptyEdgeStore = errors.New("edge store is empty")
	ErrSelfLoop       = errors.New("self-loop edges are not supported")
)

type Edge struct {
	u  Index
	v  Index
	id EdgeID
}

// NewEdge. create edge with endpoints normalized so that u < v
func NewEdge(u, v Index, id EdgeID) Edge {
	if v < u {
		u, v = v, u
	}
	return Edge{
		u:  u,
		v:  v,
		id: id,
	}
}

func (e Edge) GetFrom() Index {
	return e.u
}

func (e Edge) GetTo() Index {
	return e.v
}

func (e Edge) GetID() EdgeID {
	return e.id
}

func (e Edge) IsSelfLoop() bool {
	return e.u == e.v
}

// relabel. replace endpoint from with to, keeping u < v. identity is untouched
func (e *Edge) relabel(from, to Index) {
	if e.u == from {
		e.u = to
	}
	if e.v == from {
		e.v = to
	}
	if e.v < e.u {
		e.u, e.v = e.v, e.u
	}
}

// EdgeStore is an ordered list of undirected edges. vertices are implicit: they are the distinct endpoints.
type EdgeStore struct {
	edges []Edge
	byID  map[EdgeID]int // edge id -> position in edges, only built for stores made by EdgeStoreBuilder
}

func NewEdgeStore(edges []Edge) *EdgeStore {
	return &EdgeStore{
		edges: edges,
	}
}

func (s *EdgeStore) Len() int {
	return len(s.edges)
}

func (s *EdgeStore) IsEmpty() bool {
	return len(s.edges) == 0
}

func (s *EdgeStore) GetEdge(i int) Edge {
	return s.edges[i]
}

func (s *EdgeStore) GetEdges() []Edge {
	edges := make([]Edge, len(s.edges))
	copy(edges, s.edges)
	return edges
}

func (s *EdgeStore) ForEachEdge(handle func(e Edge)) {
	for _, e := range s.edges {
		handle(e)
	}
}

// GetEdgeByID. lookup edge by identity.
func (s *EdgeStore) GetEdgeByID(id EdgeID) (Edge, bool) {
	if s.byID != nil {
		i, ok := s.byID[id]
		if !ok {
			return Edge{}, false
		}
		return s.edges[i], true
	}
	for _, e := range s.edges {
		if e.id == id {
			return e, true
		}
	}
	return Edge{}, false
}

// VertexCount. number of distinct endpoint labels in the store
func (s *EdgeStore) VertexCount() (int, error) {
	if len(s.edges) == 0 {
		return 0, ErrEmptyEdgeStore
	}
	vertexSet := make(map[Index]struct{}, len(s.edges))
	for _, e := range s.edges {
		vertexSet[e.u] = struct{}{}
		vertexSet[e.v] = struct{}{}
	}
	return len(vertexSet), nil
}

// GetVertices. sorted distinct endpoint labels
func (s *EdgeStore) GetVertices() []Index {
	vertexSet := make(map[Index]struct{}, len(s.edges))
	for _, e := range s.edges {
		vertexSet[e.u] = struct{}{}
		vertexSet[e.v] = struct{}{}
	}
	vertices := make([]Index, 0, len(vertexSet))
	for v := range vertexSet {
		vertices = append(vertices, v)
	}
	sort.Slice(vertices, func(i, j int) bool {
		return vertices[i] < vertices[j]
	})
	return vertices
}

// Clone. deep copy owned by the caller. the id index is not copied, clones are only ever contracted
func (s *EdgeStore) Clone() *EdgeStore {
	edges := make([]Edge, len(s.edges))
	copy(edges, s.edges)
	return &EdgeStore{edges: edges}
}

// Contract. merge vertex eliminated into survivor in place, dropping every edge that becomes a self-loop.
// returns the number of removed edges
func (s *EdgeStore) Contract(survivor, eliminated Index) int {
	kept := s.edges[:0]
	for _, e := range s.edges {
		e.relabel(eliminated, survivor)
		if e.IsSelfLoop() {
			continue
		}
		kept = append(kept, e)
	}
	removed := len(s.edges) - len(kept)
	s.edges = kept
	return removed
}

// EdgeStoreBuilder assigns sequential identities in insertion order and drops duplicate unordered pairs.
type EdgeStoreBuilder struct {
	edges  []Edge
	added  map[[2]Index]struct{}
	nextID EdgeID
}

func NewEdgeStoreBuilder() *EdgeStoreBuilder {
	return &EdgeStoreBuilder{
		edges: make([]Edge, 0),
		added: make(map[[2]Index]struct{}),
	}
}

// AddEdge. returns true if the edge was added, false if the unordered pair was already present.
func (b *EdgeStoreBuilder) AddEdge(a, c Index) (bool, error) {
	if a == c {
		return false, ErrSelfLoop
	}
	e := NewEdge(a, c, b.nextID)
	pair := [2]Index{e.u, e.v}
	if _, exists := b.added[pair]; exists {
		return false, nil
	}
	b.added[pair] = struct{}{}
	b.edges = append(b.edges, e)
	b.nextID++
	return true, nil
}

func (b *EdgeStoreBuilder) Len() int {
	return len(b.edges)
}

func (b *EdgeStoreBuilder) Build() *EdgeStore {
	edges := make([]Edge, len(b.edges))
	copy(edges, b.edges)
	byID := make(map[EdgeID]int, len(edges))
	for i, e := range edges {
		byID[e.id] = i
	}
	return &EdgeStore{
		edges: edges,
		byID:  byID,
	}
}
