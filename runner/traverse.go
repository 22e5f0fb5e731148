package runner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lvforest/core"
	"github.com/katalvlaran/lvforest/ctxlog"
	"github.com/katalvlaran/lvforest/telemetry"
	"github.com/katalvlaran/lvforest/traversal"
	"github.com/katalvlaran/lvforest/traversal/celpolicy"
)

// ErrBadMode indicates a traversal mode other than BFS or DFS.
var ErrBadMode = errors.New("runner: unknown traversal mode")

// Mode selects the traversal order.
type Mode uint8

const (
	BFS Mode = iota
	DFS
)

// String returns "bfs" or "dfs".
func (m Mode) String() string {
	switch m {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// TraverseConfig parameterises Traverse. At most one bound applies, chosen
// in this order: Target, MaxDepth, MaxCost, Expression. With none set the
// walk is unbounded.
type TraverseConfig struct {
	Start     string
	Mode      Mode
	Direction core.Direction // zero means Outgoing

	Target     string   // stop once this vertex is recorded
	MaxDepth   *int     // hop bound, inclusive
	MaxCost    *float64 // accumulated weight bound, inclusive
	Expression string   // CEL predicate
	Aggregate  string   // CEL aggregator, used with Expression only

	WriteName string // sequence name; empty skips writing
}

// TraverseResult is the outcome of Traverse. WeightSum and friends stay
// zero; EffectiveNodeCount is the number of recorded nodes.
type TraverseResult struct {
	Stats
	Policy  string
	Nodes   []string
	Weights []float64
	Broke   bool
	Result  *traversal.Result
}

// policy resolves cfg's bound into a traversal.Policy. The returned check
// reports evaluation errors of a CEL policy after the walk.
func (r *Runner) policy(cfg TraverseConfig, dir core.Direction) (traversal.Policy, func() error, error) {
	none := func() error { return nil }
	switch {
	case cfg.Target != "":
		t, err := r.resolve(cfg.Target)
		if err != nil {
			return traversal.Policy{}, nil, err
		}
		return traversal.TargetReached(t), none, nil
	case cfg.MaxDepth != nil:
		return traversal.MaxDepth(*cfg.MaxDepth), none, nil
	case cfg.MaxCost != nil:
		return traversal.MaxCost(r.graph, dir, *cfg.MaxCost), none, nil
	case cfg.Expression != "":
		c, err := celpolicy.Compile(r.graph, dir, cfg.Expression, cfg.Aggregate)
		if err != nil {
			return traversal.Policy{}, nil, err
		}
		return c.Policy(), c.Err, nil
	default:
		return traversal.Unbounded(), none, nil
	}
}

// Traverse walks from cfg.Start.
func (r *Runner) Traverse(ctx context.Context, cfg TraverseConfig) (*TraverseResult, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "runner.Traverse", trace.WithAttributes(
		attribute.String("start", cfg.Start),
		attribute.String("mode", cfg.Mode.String()),
	))
	defer span.End()
	log := ctxlog.FromContext(ctx).With("op", cfg.Mode.String(), "start", cfg.Start)

	walk := traversal.BFS
	switch cfg.Mode {
	case BFS:
	case DFS:
		walk = traversal.DFS
	default:
		err := fmt.Errorf("%w: %v", ErrBadMode, cfg.Mode)
		fail(span, err)
		return nil, err
	}
	dir := cfg.Direction
	if dir == 0 {
		dir = core.Outgoing
	}

	start, err := r.resolve(cfg.Start)
	if err != nil {
		fail(span, err)
		return nil, err
	}
	pol, check, err := r.policy(cfg, dir)
	if err != nil {
		fail(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.String("policy", pol.Name))

	res := &TraverseResult{Stats: Stats{LoadDuration: r.loadTime}, Policy: pol.Name}
	begin := time.Now()
	tr, err := walk(ctx, r.graph, start, dir, pol)
	if err == nil {
		err = check()
	}
	if err != nil {
		fail(span, err)
		return nil, err
	}
	res.ComputeDuration = time.Since(begin)
	res.Result = tr
	res.Nodes = tr.Nodes
	res.Weights = tr.Weights
	res.Broke = tr.Broke
	res.Canceled = tr.Canceled
	res.EffectiveNodeCount = len(tr.Nodes)

	res.WriteDuration, err = r.write(cfg.WriteName, func(e Exporter) error {
		return e.WriteSequence(cfg.WriteName, tr.Nodes)
	})
	if err != nil {
		fail(span, err)
		return nil, err
	}

	span.SetAttributes(statAttrs(res.Stats)...)
	log.Info("traversed",
		"policy", pol.Name, "visited", len(tr.Nodes), "broke", tr.Broke,
		"compute", res.ComputeDuration, "canceled", tr.Canceled)

	return res, nil
}
