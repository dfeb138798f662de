package reporter

import (
	"fmt"
	"strings"

	"github.com/lintang-b-s/karger-min-cut/pkg/partitioner"
	"go.uber.org/zap"
)

// Log reports min cut progress through the application logger.
type Log struct {
	progressEvery int
	logger        *zap.Logger
}

func NewLog(progressEvery int, logger *zap.Logger) *Log {
	if progressEvery < 1 {
		progressEvery = 1
	}
	return &Log{
		progressEvery: progressEvery,
		logger:        logger,
	}
}

func (r *Log) TrialDone(done, total, bestSize int) {
	if done%r.progressEvery != 0 && done != total {
		return
	}
	r.logger.Sugar().Infof("minimal cut found until the (%d of %d) trial: %d", done, total, bestSize)
}

func (r *Log) Finished(cut *partitioner.MinCut) {
	r.logger.Sugar().Infof("after %d trials, the best estimation of the number of edges in the minimal cut is: %d",
		cut.GetTrials(), cut.GetNumberOfMinCutEdges())
	r.logger.Sugar().Infof("the edges of the minimal cut are: %s", FormatEdges(cut))
}

// FormatEdges. cut edges as "[(u, v), ...]" in original vertex labels
func FormatEdges(cut *partitioner.MinCut) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, pair := range cut.GetEndpointPairs() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "(%d, %d)", pair[0], pair[1])
	}
	sb.WriteByte(']')
	return sb.String()
}
