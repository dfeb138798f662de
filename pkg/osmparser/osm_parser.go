package osmparser

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lintang-b-s/karger-min-cut/pkg"
	"github.com/lintang-b-s/karger-min-cut/pkg/datastructure"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

// OsmParser turns the road network of an openstreetmap extract into an undirected simple graph.
// osm node ids are remapped to dense vertex labels in first-seen order.
type OsmParser struct {
	builder      *datastructure.EdgeStoreBuilder
	nodeIDMap    map[int64]datastructure.Index
	nodeToOsmId  []int64
	barrierNodes map[int64]struct{}
	countWays    int
	logger       *zap.Logger
}

func NewOSMParser(logger *zap.Logger) *OsmParser {
	return &OsmParser{
		builder:      datastructure.NewEdgeStoreBuilder(),
		nodeIDMap:    make(map[int64]datastructure.Index),
		nodeToOsmId:  make([]int64, 0),
		barrierNodes: make(map[int64]struct{}),
		logger:       logger,
	}
}

var (
	// https://wiki.openstreetmap.org/wiki/OSM_tags_for_routing/Telenav
	acceptedHighway = map[string]struct{}{
		"motorway":         {},
		"motorway_link":    {},
		"trunk":            {},
		"trunk_link":       {},
		"primary":          {},
		"primary_link":     {},
		"secondary":        {},
		"secondary_link":   {},
		"residential":      {},
		"residential_link": {},
		"service":          {},
		"tertiary":         {},
		"tertiary_link":    {},
		"road":             {},
		"track":            {},
		"unclassified":     {},
		"undefined":        {},
		"unknown":          {},
		"living_street":    {},
		"private":          {},
		"motorroad":        {},
	}

	//https://wiki.openstreetmap.org/wiki/Key:barrier
	// a barrier node with access=no splits the way into two disconnected parts
	acceptedBarrierType = map[string]struct{}{
		"bollard":        {},
		"swing_gate":     {},
		"jersey_barrier": {},
		"lift_gate":      {},
		"block":          {},
		"gate":           {},
	}
)

// Parse. scan a .osm.pbf stream. pbf files store nodes before ways, so barriers are known when ways arrive.
func (p *OsmParser) Parse(ctx context.Context, r io.Reader) (*datastructure.Graph, error) {
	scanner := osmpbf.New(ctx, r, 1)
	scanner.SkipRelations = true
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			p.processNode(o)
		case *osm.Way:
			p.processWay(o)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan openstreetmap data: %w", err)
	}

	return p.BuildGraph(), nil
}

func (p *OsmParser) ParseFile(ctx context.Context, mapFile string) (*datastructure.Graph, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return p.Parse(ctx, f)
}

func (p *OsmParser) processNode(node *osm.Node) {
	accessType := node.Tags.Find("access")
	barrierType := node.Tags.Find("barrier")

	if _, ok := acceptedBarrierType[barrierType]; ok && accessType == "no" {
		p.barrierNodes[int64(node.ID)] = struct{}{}
	}
}

// processWay. add an edge for every pair of consecutive way nodes, except across a barrier
func (p *OsmParser) processWay(way *osm.Way) {
	if len(way.Nodes) < 2 || !acceptOsmWay(way) {
		return
	}

	if (p.countWays+1)%pkg.LOG_PROGRESS_ROWS == 0 {
		p.logger.Sugar().Infof("processing openstreetmap ways: %d...", p.countWays+1)
	}
	p.countWays++

	for i := 1; i < len(way.Nodes); i++ {
		from := int64(way.Nodes[i-1].ID)
		to := int64(way.Nodes[i].ID)
		if from == to || p.isBarrier(from) || p.isBarrier(to) {
			continue
		}

		// duplicate segments shared by several ways collapse into one edge
		_, _ = p.builder.AddEdge(p.getVertex(from), p.getVertex(to))
	}
}

func (p *OsmParser) isBarrier(nodeID int64) bool {
	_, ok := p.barrierNodes[nodeID]
	return ok
}

func (p *OsmParser) getVertex(nodeID int64) datastructure.Index {
	if id, ok := p.nodeIDMap[nodeID]; ok {
		return id
	}
	id := datastructure.Index(len(p.nodeToOsmId))
	p.nodeIDMap[nodeID] = id
	p.nodeToOsmId = append(p.nodeToOsmId, nodeID)
	return id
}

func (p *OsmParser) BuildGraph() *datastructure.Graph {
	vertices := make([]datastructure.Index, 0, len(p.nodeToOsmId))
	for id := range p.nodeToOsmId {
		vertices = append(vertices, datastructure.Index(id))
	}
	graph := datastructure.NewGraph(p.builder.Build(), vertices)
	p.logger.Sugar().Infof("openstreetmap road graph: %d ways, %d vertices, %d edges",
		p.countWays, graph.NumberOfVertices(), graph.NumberOfEdges())
	return graph
}

// GetOsmNodeID. osm node id of a vertex label
func (p *OsmParser) GetOsmNodeID(v datastructure.Index) (int64, bool) {
	if int(v) >= len(p.nodeToOsmId) {
		return 0, false
	}
	return p.nodeToOsmId[v], true
}

func acceptOsmWay(way *osm.Way) bool {
	highway := way.Tags.Find("highway")
	junction := way.Tags.Find("junction")
	if highway != "" {
		if _, ok := acceptedHighway[highway]; ok {
			return true
		}
	} else if junction != "" {
		return true
	}
	return false
}
