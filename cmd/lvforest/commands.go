package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvforest/prim_kruskal"
	"github.com/katalvlaran/lvforest/runner"
)

func polarity(maximum bool) prim_kruskal.Polarity {
	if maximum {
		return prim_kruskal.Maximum
	}

	return prim_kruskal.Minimum
}

func newMSTCmd(a *app) *cobra.Command {
	var maximum bool
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Build the minimum (or maximum) spanning tree reachable from each start",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := runner.RunMany(cmd.Context(), a.runner, a.starts,
				func(ctx context.Context, start string) (*runner.TreeResult, error) {
					return a.runner.SpanningTree(ctx, runner.TreeConfig{
						Start:     start,
						Polarity:  polarity(maximum),
						Direction: a.dir,
						WriteName: a.writeName(start),
					})
				})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, r := range res {
				fmt.Fprintf(out, "start %s (%s)\n", a.starts[i], polarity(maximum))
				for _, e := range r.Edges {
					fmt.Fprintf(out, "  %s - %s %g\n", e.Parent, e.Child, e.Weight)
				}
				printStats(out, r.Stats)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&maximum, "max", false, "maximum instead of minimum spanning tree")

	return cmd
}

func newKSpanCmd(a *app) *cobra.Command {
	var (
		maximum bool
		k   int
	)
	cmd := &cobra.Command{
		Use:   "kspan",
		Short: "Cut the spanning tree from each start into at most k components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := runner.RunMany(cmd.Context(), a.runner, a.starts,
				func(ctx context.Context, start string) (*runner.PartitionResult, error) {
					return a.runner.KSpanningTree(ctx, runner.PartitionConfig{
						Start:     start,
						K:         k,
						Polarity:  polarity(maximum),
						Direction: a.dir,
						WriteName: a.writeName(start),
					})
				})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, r := range res {
				fmt.Fprintf(out, "start %s (k=%d, %s)\n", a.starts[i], k, polarity(maximum))
				for j, c := range r.Components {
					fmt.Fprintf(out, "  %d: %s\n", j, strings.Join(c, " "))
				}
				printStats(out, r.Stats)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&maximum, "max", false, "partition the maximum spanning tree")
	cmd.Flags().IntVar(&k, "k", 2, "number of components")

	return cmd
}

func newTraverseCmd(a *app, mode runner.Mode) *cobra.Command {
	var (
		cfg      runner.TraverseConfig
		maxDepth int
		maxCost  float64
	)
	cmd := &cobra.Command{
		Use:   mode.String(),
		Short: strings.ToUpper(mode.String()) + " from each start, bounded by a target, depth, cost or expression",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("max-depth") {
				cfg.MaxDepth = &maxDepth
			}
			if cmd.Flags().Changed("max-cost") {
				cfg.MaxCost = &maxCost
			}
			res, err := runner.RunMany(cmd.Context(), a.runner, a.starts,
				func(ctx context.Context, start string) (*runner.TraverseResult, error) {
					c := cfg
					c.Start = start
					c.Mode = mode
					c.Direction = a.dir
					c.WriteName = a.writeName(start)
					return a.runner.Traverse(ctx, c)
				})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, r := range res {
				fmt.Fprintf(out, "start %s (%s, %s)\n", a.starts[i], mode, r.Policy)
				fmt.Fprintf(out, "  %s\n", strings.Join(r.Nodes, " "))
				fmt.Fprintf(out, "  visited=%d broke=%t canceled=%t\n", r.EffectiveNodeCount, r.Broke, r.Canceled)
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfg.Target, "target", "", "stop once this vertex is reached")
	f.IntVar(&maxDepth, "max-depth", 0, "record vertices at most this many hops away")
	f.Float64Var(&maxCost, "max-cost", 0, "record vertices whose path weight is at most this")
	f.StringVar(&cfg.Expression, "expr", "", "CEL predicate over source, current, weight, source_id, current_id")
	f.StringVar(&cfg.Aggregate, "agg", "", "CEL aggregator over the same variables plus edge")

	return cmd
}

func printStats(out io.Writer, s runner.Stats) {
	fmt.Fprintf(out, "  sum=%g min=%g max=%g nodes=%d canceled=%t\n",
		s.WeightSum, s.WeightMin, s.WeightMax, s.EffectiveNodeCount, s.Canceled)
}
