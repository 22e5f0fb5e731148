package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvforest/config"
	"github.com/katalvlaran/lvforest/core"
	"github.com/katalvlaran/lvforest/ctxlog"
	"github.com/katalvlaran/lvforest/runner"
	"github.com/katalvlaran/lvforest/store"
	"github.com/katalvlaran/lvforest/telemetry"
)

// app is the state PersistentPreRunE prepares for every subcommand.
type app struct {
	cfgFile   string
	graphPath string
	starts    []string
	write     string

	cfg      config.Config
	dir      core.Direction
	runner   *runner.Runner
	store    *store.Store
	shutdown func(context.Context) error
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvforest",
		Short:         "Spanning trees, K-way partitions and bounded traversals",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}

	d := config.Default()
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	pf.StringVar(&a.graphPath, "graph", "", "graph file (.yaml, .hcl or edge list)")
	pf.StringSliceVar(&a.starts, "start", nil, "start vertex; repeat to run several concurrently")
	pf.StringVar(&a.write, "write", "", "store results under this name")
	pf.String("log-format", d.Log.Format, "log format: text or json")
	pf.String("log-level", d.Log.Level, "log level: debug, info, warn or error")
	pf.String("telemetry-endpoint", "", "OTLP/HTTP endpoint for spans")
	pf.String("store-path", "", "badger directory for --write")
	pf.Int("concurrency", d.Concurrency, "parallel runs for multiple --start")
	pf.String("direction", d.Direction, "relationship direction: out, in or both")

	root.AddCommand(
		newGenCmd(),
		newMSTCmd(a),
		newKSpanCmd(a),
		newTraverseCmd(a, runner.BFS),
		newTraverseCmd(a, runner.DFS),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.graphPath == "" {
		return errMissing("graph")
	}
	if len(a.starts) == 0 {
		return errMissing("start")
	}
	cfg, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.dir, err = core.ParseDirection(cfg.Direction); err != nil {
		return err
	}

	logger, err := ctxlog.New(cmd.ErrOrStderr(), cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return err
	}
	ctx := ctxlog.WithLogger(cmd.Context(), logger)
	cmd.SetContext(ctx)

	if a.shutdown, err = telemetry.Init(ctx, cfg.Telemetry.ServiceName, version, cfg.Telemetry.Endpoint); err != nil {
		return err
	}

	opts := []runner.Option{runner.WithConcurrency(cfg.Concurrency)}
	switch {
	case cfg.Store.Path != "":
		a.store, err = store.Open(cfg.Store.Path)
	case cfg.Store.InMemory:
		a.store, err = store.OpenInMemory()
	}
	if err != nil {
		return err
	}
	if a.store != nil {
		opts = append(opts, runner.WithExporter(a.store))
	}

	if a.runner, err = runner.Open(ctx, a.graphPath, opts...); err != nil {
		return errors.Join(err, a.teardown(ctx))
	}

	return nil
}

func (a *app) teardown(ctx context.Context) error {
	var errs []error
	if a.store != nil {
		errs = append(errs, a.store.Close())
	}
	if a.shutdown != nil {
		errs = append(errs, a.shutdown(ctx))
	}

	return errors.Join(errs...)
}

var errFlag = errors.New("required flag not set")

func errMissing(name string) error { return fmt.Errorf("%w: --%s", errFlag, name) }

// writeName returns the store name for start, suffixed when several starts
// run at once.
func (a *app) writeName(start string) string {
	if a.write == "" || len(a.starts) < 2 {
		return a.write
	}

	return a.write + "." + start
}
