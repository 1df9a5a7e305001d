package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/iterlab"
	"github.com/aretw0/iterlab/internal/cli"
	"github.com/aretw0/iterlab/internal/config"
	"github.com/aretw0/iterlab/internal/presentation/tui"
	"github.com/aretw0/iterlab/pkg/domain"
	"github.com/aretw0/iterlab/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "iterlab",
	Short: "iterlab is a laboratory for iterative numerical methods",
	Long: `iterlab solves scalar equations with the False Position method and linear
systems with the Jacobi method, showing every iteration as a table and a chart.

Run without a subcommand to open the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.Error(err))
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default $ITERLAB_LOG_LEVEL or info)")
}

// app bundles what every command needs.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	lab      *iterlab.Lab
	registry *prometheus.Registry
	close    func() error
}

// newApp reads the environment and flags and builds the Lab.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	debug, _ := cmd.Flags().GetBool("debug")
	level := cfg.LogLevel
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		level = l
	}
	logger, err := cli.NewLogger(level, debug)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	hooks := []domain.LifecycleHooks{metrics.Hooks()}
	if debug {
		hooks = append(hooks, observability.LogHooks(logger))
	}
	lab, closer := cli.NewLab(cmd.Context(), cfg, logger, hooks...)

	return &app{
		cfg:      cfg,
		logger:   logger,
		lab:      lab,
		registry: reg,
		close:    closer,
	}, nil
}

// newPrinter picks glamour rendering when writing markdown to a terminal.
func newPrinter(cmd *cobra.Command, format string, charts bool) (*cli.Printer, error) {
	if err := cli.ValidateFormat(format); err != nil {
		return nil, err
	}

	p := &cli.Printer{
		Out:    cmd.OutOrStdout(),
		Format: format,
		Render: tui.PlainRenderer,
		Charts: charts,
	}
	if f, ok := p.Out.(*os.File); ok && cli.IsTerminal(f) {
		p.Render = tui.NewRenderer(cli.TerminalWidth(f))
	}
	return p, nil
}
