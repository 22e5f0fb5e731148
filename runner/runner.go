// Package runner drives the kernels end to end: it resolves external vertex
// IDs, times each phase, records spans and log lines, and optionally hands
// results to an Exporter.
package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvforest/core"
	"github.com/katalvlaran/lvforest/ctxlog"
	"github.com/katalvlaran/lvforest/loader"
	"github.com/katalvlaran/lvforest/telemetry"
)

// ErrNoExporter indicates a write was requested but no Exporter is set.
var ErrNoExporter = errors.New("runner: write requested without exporter")

// Exporter persists results. *store.Store implements it.
type Exporter interface {
	WritePartitions(name string, v core.View, sets [][]int) error
	WriteSequence(name string, nodes []string) error
}

// Stats mirrors the summary row every operation yields.
type Stats struct {
	LoadDuration       time.Duration
	ComputeDuration    time.Duration
	WriteDuration      time.Duration
	WeightSum          float64
	WeightMin          float64
	WeightMax          float64
	EffectiveNodeCount int
	Canceled           bool
}

// Runner runs kernels against one read-only graph. It is safe for
// concurrent use.
type Runner struct {
	graph       core.View
	exporter    Exporter
	concurrency int
	loadTime    time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithExporter sets where Write* names send results.
func WithExporter(e Exporter) Option {
	return func(r *Runner) { r.exporter = e }
}

// WithConcurrency bounds RunMany. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(r *Runner) {
		if n >= 1 {
			r.concurrency = n
		}
	}
}

// New wraps an already loaded graph.
func New(g core.View, opts ...Option) *Runner {
	r := &Runner{graph: g, concurrency: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Open loads the graph file at path and wraps it. The load time is
// reported in every Stats the Runner returns.
func Open(ctx context.Context, path string, opts ...Option) (*Runner, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "runner.Load",
		trace.WithAttributes(attribute.String("graph.path", path)))
	defer span.End()

	begin := time.Now()
	g, err := loader.LoadFile(path)
	if err != nil {
		fail(span, err)
		return nil, err
	}
	r := New(g, opts...)
	r.loadTime = time.Since(begin)

	span.SetAttributes(
		attribute.Int("graph.nodes", g.NodeCount()),
		attribute.Int("graph.edges", g.EdgeCount()),
	)
	ctxlog.FromContext(ctx).Debug("graph loaded",
		"path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount(), "took", r.loadTime)

	return r, nil
}

// Graph returns the wrapped graph.
func (r *Runner) Graph() core.View { return r.graph }

// resolve maps an external vertex ID.
func (r *Runner) resolve(id string) (int, error) {
	idx, ok := r.graph.ToMappedNodeID(id)
	if !ok {
		return -1, fmt.Errorf("%w: %q", core.ErrVertexNotFound, id)
	}

	return idx, nil
}

// write times fn when name is set.
func (r *Runner) write(name string, fn func(Exporter) error) (time.Duration, error) {
	if name == "" {
		return 0, nil
	}
	if r.exporter == nil {
		return 0, fmt.Errorf("%w: %q", ErrNoExporter, name)
	}
	begin := time.Now()
	err := fn(r.exporter)

	return time.Since(begin), err
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

func statAttrs(s Stats) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("compute_ms", s.ComputeDuration.Milliseconds()),
		attribute.Int64("write_ms", s.WriteDuration.Milliseconds()),
		attribute.Float64("weight.sum", s.WeightSum),
		attribute.Int("effective_node_count", s.EffectiveNodeCount),
		attribute.Bool("canceled", s.Canceled),
	}
}

// RunMany calls fn once per start, at most r's concurrency at a time, and
// returns the results in start order. The first error cancels the rest.
func RunMany[T any](ctx context.Context, r *Runner, starts []string, fn func(ctx context.Context, start string) (T, error)) ([]T, error) {
	out := make([]T, len(starts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, s := range starts {
		i, s := i, s
		g.Go(func() error {
			v, err := fn(gctx, s)
			if err != nil {
				return fmt.Errorf("start %q: %w", s, err)
			}
			out[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
