package traversal_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvforest/builder"
	"github.com/katalvlaran/lvforest/core"
	"github.com/katalvlaran/lvforest/traversal"
)

// BenchmarkBFS_Grid walks a 100x100 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = traversal.BFS(ctx, g, 0, core.Outgoing, traversal.Unbounded())
	}
}

// BenchmarkDFS_MaxDepth walks a seeded sparse graph to depth 4.
func BenchmarkDFS_MaxDepth(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.Option{builder.WithSeed(9)}, builder.RandomSparse(2000, 0.003))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = traversal.DFS(ctx, g, 0, core.Outgoing, traversal.MaxDepth(4))
	}
}
