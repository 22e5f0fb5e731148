package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvforest/core"
	"github.com/katalvlaran/lvforest/store"
)

var graphFile = filepath.Join("testdata", "diamond.txt")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestCommands_Golden(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"mst", []string{"mst", "--graph", graphFile, "--start", "a"}},
		{"mst_max", []string{"mst", "--graph", graphFile, "--start", "a", "--max"}},
		{"kspan", []string{"kspan", "--graph", graphFile, "--start", "a", "--k", "2"}},
		{"bfs_target", []string{"bfs", "--graph", graphFile, "--start", "a", "--target", "c"}},
		{"dfs_depth", []string{"dfs", "--graph", graphFile, "--start", "a", "--start", "b", "--max-depth", "1"}},
		{"gen_star", []string{"gen", "--topology", "star", "--n", "4", "--letters"}},
	}
	g := goldie.New(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, append(tc.args, "--log-level", "error")...)
			require.NoError(t, err)
			g.Assert(t, tc.name, []byte(out))
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	cases := map[string]struct {
		args []string
		is   error
	}{
		"unknown start":  {[]string{"mst", "--graph", graphFile, "--start", "zz"}, core.ErrVertexNotFound},
		"bad direction":  {[]string{"bfs", "--graph", graphFile, "--start", "a", "--direction", "up"}, core.ErrBadDirection},
		"write no store": {[]string{"bfs", "--graph", graphFile, "--start", "a", "--write", "w"}, nil},
		"missing graph":  {[]string{"mst", "--start", "a"}, nil},
		"bad k":          {[]string{"kspan", "--graph", graphFile, "--start", "a", "--k", "0"}, nil},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}

func TestKSpan_WritesStore(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "kspan", "--graph", graphFile, "--start", "a", "--k", "2",
		"--store-path", dir, "--write", "parts", "--log-level", "error")
	require.NoError(t, err)

	s, err := store.Open(dir)
	require.NoError(t, err)
	defer s.Close()
	parts, err := s.ReadPartitions("parts")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 0, "d": 0, "b": 1, "c": 1}, parts)
}

func TestTraverse_WritesPerStart(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "bfs", "--graph", graphFile, "--start", "a", "--start", "d",
		"--store-path", dir, "--write", "walk", "--log-level", "error")
	require.NoError(t, err)

	s, err := store.Open(dir)
	require.NoError(t, err)
	defer s.Close()
	seq, err := s.ReadSequence("walk.d")
	require.NoError(t, err)
	assert.Equal(t, "d", seq[0])
	assert.Len(t, seq, 4)
}

func TestGen_LoadsBack(t *testing.T) {
	out, err := run(t, "gen", "--topology", "sparse", "--n", "12", "--p", "0.4", "--seed", "3", "--max-weight", "9")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "g.txt")
	require.NoError(t, os.WriteFile(path, []byte(out), 0o600))
	_, err = run(t, "mst", "--graph", path, "--start", "0", "--log-level", "error")
	require.NoError(t, err)

	_, err = run(t, "gen", "--topology", "blob")
	assert.Error(t, err)
}
