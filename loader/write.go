package loader

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"

	"github.com/katalvlaran/lvforest/core"
)

var (
	bareIdent  = regexp.MustCompile(`^[A-Za-z_][\w.]*$`)
	bareNumber = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)
)

func quoteID(id string) string {
	if bareIdent.MatchString(id) || bareNumber.MatchString(id) {
		return id
	}

	return strconv.Quote(id)
}

// WriteEdgeList renders g in the edge-list format ParseEdgeList reads. Every
// vertex is listed first, in index order, so parsing the output reproduces
// the same dense indices. Undirected edges are written once.
func WriteEdgeList(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	op := "--"
	if g.Directed() {
		op = "->"
	}
	for _, id := range g.Vertices() {
		fmt.Fprintln(bw, quoteID(id))
	}

	var err error
	for u := 0; u < g.NodeCount() && err == nil; u++ {
		g.ForEachRelationship(u, core.Outgoing, func(s, t int, weight float64) bool {
			if !g.Directed() && t < s {
				return true
			}
			if math.IsNaN(weight) || math.IsInf(weight, 0) {
				err = fmt.Errorf("loader: edge %q %s %q: weight %g not representable",
					g.ToOriginalNodeID(s), op, g.ToOriginalNodeID(t), weight)
				return false
			}
			fmt.Fprintf(bw, "%s %s %s : %s\n",
				quoteID(g.ToOriginalNodeID(s)), op, quoteID(g.ToOriginalNodeID(t)),
				strconv.FormatFloat(weight, 'g', -1, 64))
			return true
		})
	}
	if err != nil {
		return err
	}

	return bw.Flush()
}
