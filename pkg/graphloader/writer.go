package graphloader

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/karger-min-cut/pkg/datastructure"
)

// Write. write g as adjacency rows, every edge listed under both endpoints. Load reads it back.
func Write(w io.Writer, g *datastructure.Graph) error {
	bw := bufio.NewWriter(w)
	adj := g.GetAdjacency()

	for _, v := range g.GetVertices() {
		if _, err := bw.WriteString(strconv.FormatUint(uint64(v), 10)); err != nil {
			return err
		}
		for _, u := range adj[v] {
			if err := bw.WriteByte('\t'); err != nil {
				return err
			}
			if _, err := bw.WriteString(strconv.FormatUint(uint64(u), 10)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile. like Write, bzip2 compressed if filename ends in .bz2
func WriteFile(filename string, g *datastructure.Graph) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if !strings.HasSuffix(filename, BZIP2_EXT) {
		if err := Write(f, g); err != nil {
			return err
		}
		return f.Close()
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := Write(bz, g); err != nil {
		bz.Close()
		return err
	}
	if err := bz.Close(); err != nil {
		return err
	}
	return f.Close()
}
