package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvforest/builder"
	"github.com/katalvlaran/lvforest/core"
	"github.com/katalvlaran/lvforest/loader"
)

// topology maps a --topology name to its constructor.
func topology(name string, n, rows, cols int, p float64) (builder.Constructor, error) {
	switch strings.ToLower(name) {
	case "path":
		return builder.Path(n), nil
	case "cycle":
		return builder.Cycle(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "grid":
		return builder.Grid(rows, cols), nil
	case "sparse":
		return builder.RandomSparse(n, p), nil
	case "tree":
		return builder.RandomTree(n), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", name)
	}
}

func newGenCmd() *cobra.Command {
	var (
		name       string
		n          int
		rows, cols int
		p          float64
		seed       int64
		lo, hi     int
		directed   bool
		letters    bool
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print a generated graph in edge-list form",
		Args:  cobra.NoArgs,
		// gen needs neither a graph file nor a start vertex.
		PersistentPreRunE:  func(*cobra.Command, []string) error { return nil },
		PersistentPostRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			con, err := topology(name, n, rows, cols, p)
			if err != nil {
				return err
			}
			opts := []builder.Option{builder.WithSeed(seed), builder.WithWeightFn(builder.IntWeight(lo, hi))}
			if letters {
				opts = append(opts, builder.WithIDScheme(builder.LetterIDFn))
			}
			g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(directed)}, opts, con)
			if err != nil {
				return err
			}

			return loader.WriteEdgeList(cmd.OutOrStdout(), g)
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "topology", "path", "path, cycle, star, wheel, complete, grid, sparse or tree")
	f.IntVar(&n, "n", 5, "vertex count")
	f.IntVar(&rows, "rows", 3, "grid rows")
	f.IntVar(&cols, "cols", 3, "grid columns")
	f.Float64Var(&p, "p", 0.2, "edge probability for sparse")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.IntVar(&lo, "min-weight", 1, "smallest integer weight")
	f.IntVar(&hi, "max-weight", 1, "largest integer weight")
	f.BoolVar(&directed, "directed", false, "directed edges")
	f.BoolVar(&letters, "letters", false, "name vertices a, b, ... instead of 0, 1, ...")

	return cmd
}
