package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc/challenge"
	"github.com/katalvlaran/aoc/internal/config"
	"github.com/katalvlaran/aoc/internal/ui"
)

// app carries the state shared by every command.
type app struct {
	reg   *challenge.Registry
	piped func() bool

	// persistent flags
	configPath string
	logLevel   string
	noColor    bool
	inputDir   string

	// solve flags
	all     bool
	check   bool
	record  bool
	watch   bool
	timings bool
	workers int

	cfg config.Config
	log *slog.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "aoc",
		Short: "Solve Advent of Code puzzles",
		Long: `aoc runs the registered Advent of Code solutions against puzzle input,
checks them against known answers and can re-run on every input change.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", config.DefaultPath, "configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&a.noColor, "no-color", false, "disable styled output")
	pf.StringVar(&a.inputDir, "input-dir", "", "directory holding <year>/<day>.txt inputs")

	root.AddCommand(newSolveCmd(a), newListCmd(a), newInfoCmd(a))
	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	cfg, err := config.Load(a.configPath, flags.Changed("config"))
	if err != nil {
		return err
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("input-dir") {
		cfg.InputDir = a.inputDir
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if a.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Level()}))
	a.log.Debug("configuration loaded", "path", a.configPath, "input_dir", cfg.InputDir, "workers", cfg.Workers)
	return nil
}

func (a *app) printer(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout(), a.cfg.Color)
}
