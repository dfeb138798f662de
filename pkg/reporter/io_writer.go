package reporter

import (
	"encoding/json"
	"os"

	"github.com/lintang-b-s/karger-min-cut/pkg/datastructure"
	"github.com/lintang-b-s/karger-min-cut/pkg/partitioner"
)

type cutEdge struct {
	ID int                 `json:"id"`
	U  datastructure.Index `json:"u"`
	V  datastructure.Index `json:"v"`
}

type cutFile struct {
	NumberOfVertices int       `json:"number_of_vertices"`
	Trials           int       `json:"trials"`
	FoundAtTrial     int       `json:"found_at_trial"`
	Size             int       `json:"size"`
	Edges            []cutEdge `json:"edges"`
}

// WriteJSON. save the final cut to filename as indented json
func WriteJSON(filename string, cut *partitioner.MinCut) error {
	out := cutFile{
		NumberOfVertices: cut.GetNumberOfVertices(),
		Trials:           cut.GetTrials(),
		FoundAtTrial:     cut.GetTrial(),
		Size:             cut.GetNumberOfMinCutEdges(),
		Edges:            make([]cutEdge, 0, cut.GetNumberOfMinCutEdges()),
	}
	for _, e := range cut.GetEdges() {
		out.Edges = append(out.Edges, cutEdge{
			ID: int(e.GetID()),
			U:  e.GetFrom(),
			V:  e.GetTo(),
		})
	}

	buf, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, buf, 0644)
}
