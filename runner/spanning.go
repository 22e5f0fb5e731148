package runner

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvforest/core"
	"github.com/katalvlaran/lvforest/ctxlog"
	"github.com/katalvlaran/lvforest/kspanningtree"
	"github.com/katalvlaran/lvforest/prim_kruskal"
	"github.com/katalvlaran/lvforest/telemetry"
)

// TreeConfig parameterises SpanningTree.
type TreeConfig struct {
	Start     string
	Polarity  prim_kruskal.Polarity
	Direction core.Direction // zero means Outgoing
	WriteName string         // partition name for the reached set; empty skips writing
}

func (c TreeConfig) options() []prim_kruskal.Option {
	opts := []prim_kruskal.Option{prim_kruskal.WithPolarity(c.Polarity)}
	if c.Direction != 0 {
		opts = append(opts, prim_kruskal.WithDirection(c.Direction))
	}

	return opts
}

// TreeEdge is one spanning-tree edge in external IDs.
type TreeEdge struct {
	Parent string
	Child  string
	Weight float64
}

// TreeResult is the outcome of SpanningTree.
type TreeResult struct {
	Stats
	Tree  *prim_kruskal.SpanningTree
	Edges []TreeEdge // in child index order
}

// SpanningTree builds the spanning tree reachable from cfg.Start.
func (r *Runner) SpanningTree(ctx context.Context, cfg TreeConfig) (*TreeResult, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "runner.SpanningTree", trace.WithAttributes(
		attribute.String("start", cfg.Start),
		attribute.String("polarity", cfg.Polarity.String()),
	))
	defer span.End()
	log := ctxlog.FromContext(ctx).With("op", "mst", "start", cfg.Start)

	start, err := r.resolve(cfg.Start)
	if err != nil {
		fail(span, err)
		return nil, err
	}

	res := &TreeResult{Stats: Stats{LoadDuration: r.loadTime}}
	begin := time.Now()
	tree, err := prim_kruskal.Prim(ctx, r.graph, start, cfg.options()...)
	if err != nil {
		fail(span, err)
		return nil, err
	}
	res.ComputeDuration = time.Since(begin)
	res.Tree = tree
	res.fromTree(tree)
	tree.ForEach(func(p, c int, w float64) bool {
		res.Edges = append(res.Edges, TreeEdge{
			Parent: r.graph.ToOriginalNodeID(p),
			Child:  r.graph.ToOriginalNodeID(c),
			Weight: w,
		})
		return true
	})

	res.WriteDuration, err = r.write(cfg.WriteName, func(e Exporter) error {
		return e.WritePartitions(cfg.WriteName, r.graph, [][]int{reachedNodes(tree)})
	})
	if err != nil {
		fail(span, err)
		return nil, err
	}

	span.SetAttributes(statAttrs(res.Stats)...)
	log.Info("spanning tree built",
		"sum", res.WeightSum, "nodes", res.EffectiveNodeCount,
		"compute", res.ComputeDuration, "canceled", res.Canceled)

	return res, nil
}

func (s *Stats) fromTree(t *prim_kruskal.SpanningTree) {
	s.WeightSum = t.Sum
	s.WeightMin = t.Min
	s.WeightMax = t.Max
	s.EffectiveNodeCount = t.EffectiveNodeCount
	s.Canceled = t.Canceled
}

func reachedNodes(t *prim_kruskal.SpanningTree) []int {
	var out []int
	for i := range t.Parent {
		if t.Reached(i) {
			out = append(out, i)
		}
	}

	return out
}

// PartitionConfig parameterises KSpanningTree.
type PartitionConfig struct {
	Start     string
	K         int
	Polarity  prim_kruskal.Polarity
	Direction core.Direction // zero means Outgoing
	WriteName string
}

// PartitionResult is the outcome of KSpanningTree. Partitions maps every
// reached vertex to the position of its component in Components.
type PartitionResult struct {
	Stats
	Result     *kspanningtree.Result
	Components [][]string
	Partitions map[string]int
}

// KSpanningTree cuts the tree reachable from cfg.Start into at most cfg.K
// components.
func (r *Runner) KSpanningTree(ctx context.Context, cfg PartitionConfig) (*PartitionResult, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "runner.KSpanningTree", trace.WithAttributes(
		attribute.String("start", cfg.Start),
		attribute.Int("k", cfg.K),
		attribute.String("polarity", cfg.Polarity.String()),
	))
	defer span.End()
	log := ctxlog.FromContext(ctx).With("op", "kspan", "start", cfg.Start, "k", cfg.K)

	start, err := r.resolve(cfg.Start)
	if err != nil {
		fail(span, err)
		return nil, err
	}
	opts := TreeConfig{Polarity: cfg.Polarity, Direction: cfg.Direction}.options()

	res := &PartitionResult{Stats: Stats{LoadDuration: r.loadTime}}
	begin := time.Now()
	kr, err := kspanningtree.Compute(ctx, r.graph, start, cfg.K, opts...)
	if err != nil {
		fail(span, err)
		return nil, err
	}
	res.ComputeDuration = time.Since(begin)
	res.Result = kr
	res.fromTree(kr.Tree)
	res.Canceled = kr.Canceled

	comps := kr.Components()
	res.Partitions = make(map[string]int)
	for i, set := range comps {
		ids := make([]string, len(set))
		for j, n := range set {
			ids[j] = r.graph.ToOriginalNodeID(n)
			res.Partitions[ids[j]] = i
		}
		res.Components = append(res.Components, ids)
	}

	res.WriteDuration, err = r.write(cfg.WriteName, func(e Exporter) error {
		return e.WritePartitions(cfg.WriteName, r.graph, comps)
	})
	if err != nil {
		fail(span, err)
		return nil, err
	}

	span.SetAttributes(statAttrs(res.Stats)...)
	span.SetAttributes(attribute.Int("components", len(comps)))
	log.Info("partitioned",
		"components", len(comps), "cuts", len(kr.Cuts),
		"compute", res.ComputeDuration, "canceled", res.Canceled)

	return res, nil
}
