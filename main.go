package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lintang-b-s/karger-min-cut/pkg/config"
	"github.com/lintang-b-s/karger-min-cut/pkg/datastructure"
	"github.com/lintang-b-s/karger-min-cut/pkg/graphloader"
	"github.com/lintang-b-s/karger-min-cut/pkg/logger"
	"github.com/lintang-b-s/karger-min-cut/pkg/osmparser"
	"github.com/lintang-b-s/karger-min-cut/pkg/partitioner"
	"github.com/lintang-b-s/karger-min-cut/pkg/reporter"
	"go.uber.org/zap"
)

const osmPbfExt = ".osm.pbf"

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: karger-min-cut <graph_file>")
		fmt.Println("  <graph_file>  adjacency rows (.txt, .bz2) or an openstreetmap extract (.osm.pbf)")
		fmt.Println()
		fmt.Println("Environment: KARGER_CONFIG, KARGER_TRIALS_COUNT, KARGER_TRIALS_WORKERS, KARGER_TRIALS_SEED,")
		fmt.Println("  KARGER_REPORT_PROGRESS_EVERY, KARGER_REPORT_OUTPUT, KARGER_GRAPH_EXPORT, KARGER_LOG_LEVEL")
		os.Exit(1)
	}

	cfg := config.NewConfig()
	if path := os.Getenv("KARGER_CONFIG"); path != "" {
		if err := cfg.LoadFromFile(path); err != nil {
			panic(err)
		}
	}

	log, err := logger.New(cfg.Viper())
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1], cfg, log); err != nil {
		log.Fatal("min cut failed", zap.Error(err))
	}
}

func run(ctx context.Context, graphFile string, cfg *config.Config, log *zap.Logger) error {
	graph, err := loadGraph(ctx, graphFile, log)
	if err != nil {
		return err
	}

	if export := cfg.GraphExport(); export != "" {
		if err := graphloader.WriteFile(export, graph); err != nil {
			return err
		}
		log.Info("graph exported", zap.String("file", export))
	}

	rep := reporter.NewLog(cfg.ProgressEvery(), log)

	var cut *partitioner.MinCut
	if isolated := graph.GetIsolatedVertices(); len(isolated) > 0 && graph.NumberOfVertices() >= 2 {
		// an isolated vertex on its own side is already a cut with no edge
		log.Sugar().Infof("graph has %d isolated vertices, e.g. %d", len(isolated), isolated[0])
		cut = partitioner.NewMinCut(graph.NumberOfVertices())
		rep.Finished(cut)
	} else {
		karger := partitioner.NewKarger(partitioner.TrialConfig{
			Trials:  cfg.Trials(),
			Workers: cfg.Workers(),
			Seed:    cfg.Seed(),
		}, rep, log)

		cut, err = karger.FindMinCut(ctx, graph.GetEdgeStore())
		if errors.Is(err, context.Canceled) && cut != nil && cut.GetTrials() > 0 {
			log.Sugar().Warnf("interrupted after %d trials, best cut so far: %d edges %s",
				cut.GetTrials(), cut.GetNumberOfMinCutEdges(), reporter.FormatEdges(cut))
		} else if err != nil {
			return err
		}
	}

	fmt.Println(cut.GetNumberOfMinCutEdges())

	if output := cfg.Output(); output != "" {
		if err := reporter.WriteJSON(output, cut); err != nil {
			return err
		}
		log.Info("min cut written", zap.String("file", output))
	}
	return nil
}

func loadGraph(ctx context.Context, graphFile string, log *zap.Logger) (*datastructure.Graph, error) {
	if strings.HasSuffix(graphFile, osmPbfExt) {
		return osmparser.NewOSMParser(log).ParseFile(ctx, graphFile)
	}
	return graphloader.LoadFile(graphFile, log)
}
