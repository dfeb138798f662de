package graphloader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/karger-min-cut/pkg"
	"github.com/lintang-b-s/karger-min-cut/pkg/datastructure"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var ErrDegenerateInput = errors.New("degenerate input")

const (
	BZIP2_EXT = ".bz2"

	maxRowSize = 64 * 1024 * 1024
)

// Load. read an adjacency description: each non-blank row holds a vertex label followed by its neighbors.
// duplicate unordered pairs are dropped, edge ids are assigned in reading order starting at 0.
// every malformed row is reported, wrapped in ErrDegenerateInput.
func Load(r io.Reader, logger *zap.Logger) (*datastructure.Graph, error) {
	var (
		builder  = datastructure.NewEdgeStoreBuilder()
		vertices = make([]datastructure.Index, 0)
		seen     = make(map[datastructure.Index]struct{})
		errs     error
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRowSize)

	lineNumber := 0
	rows := 0
	for scanner.Scan() {
		lineNumber++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		row, err := parseRow(tokens)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", lineNumber, err))
			continue
		}

		if _, ok := seen[row[0]]; !ok {
			seen[row[0]] = struct{}{}
			vertices = append(vertices, row[0])
		}
		for _, neighbor := range row[1:] {
			if _, ok := seen[neighbor]; !ok {
				seen[neighbor] = struct{}{}
				vertices = append(vertices, neighbor)
			}
			if _, err := builder.AddEdge(row[0], neighbor); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("line %d: vertex %d: %w", lineNumber, row[0], err))
			}
		}

		rows++
		if rows%pkg.LOG_PROGRESS_ROWS == 0 {
			logger.Sugar().Infof("reading adjacency rows: %d...", rows)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if errs != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerateInput, errs)
	}

	graph := datastructure.NewGraph(builder.Build(), vertices)
	logger.Sugar().Infof("loaded graph with %d vertices and %d edges", graph.NumberOfVertices(), graph.NumberOfEdges())
	return graph, nil
}

// LoadFile. like Load, files ending in .bz2 are decompressed on the fly.
func LoadFile(filename string, logger *zap.Logger) (*datastructure.Graph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, BZIP2_EXT) {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}

	graph, err := Load(r, logger)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}
	return graph, nil
}

func parseRow(tokens []string) ([]datastructure.Index, error) {
	row := make([]datastructure.Index, 0, len(tokens))
	for _, token := range tokens {
		v, err := parseIndex(token)
		if err != nil {
			return nil, err
		}
		row = append(row, v)
	}
	return row, nil
}

func parseIndex(s string) (datastructure.Index, error) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("token %q is not a vertex label: %w", s, err)
	}
	if u > math.MaxUint32 {
		return 0, fmt.Errorf("value %s overflows uint32", s)
	}
	return datastructure.Index(u), nil
}
