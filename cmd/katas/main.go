package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gokatas/katas/internal/config"
	"github.com/gokatas/katas/internal/menu"
	"github.com/gokatas/katas/internal/metrics"
)

// options holds the global flags.
type options struct {
	configPath string
	metricsOut string
	verbose    bool
	watch      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "katas",
		Short: "Lasagna timer and Annalyn's infiltration rules behind a console menu",
		Long: `katas reads a menu selection from standard input and runs one of two
exercises with the configured demo arguments:

  1  Lasagna: remaining oven time, preparation time, total time
  2  Annalyn's Infiltration: fast attack, spy, signal and free the prisoner

Any other number exits. A selection that is not a number is an error.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMenu(cmd, opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to config file (defaults built in when empty)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVar(&opts.metricsOut, "metrics-out", "", "write session metrics to this file on exit (overrides metrics_path)")
	root.Flags().BoolVar(&opts.watch, "watch", false, "reload demo fixtures when the config file changes")

	root.AddCommand(newFixturesCmd(opts))
	root.AddCommand(newStatsCmd())
	return root
}

// loadConfig returns the config at opts.configPath, or the defaults.
func loadConfig(opts *options) (*config.Config, error) {
	if opts.configPath == "" {
		return config.Default(), nil
	}
	return config.Load(opts.configPath)
}

// runMenu runs the interactive menu on the command's input and output.
func runMenu(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	defer zap.ReplaceGlobals(logger)()

	sessionID := uuid.NewString()
	log := logger.With(zap.String("session", sessionID))
	log.Info("katas starting", zap.String("config", opts.configPath))

	sess := metrics.NewSession(sessionID)
	d := menu.New(cfg.Fixtures, log, sess)

	ctx, cancel := context.WithCancel(cmd.Context())
	var wg sync.WaitGroup
	defer wg.Wait()
	defer cancel()

	if opts.watch {
		if opts.configPath == "" {
			log.Warn("--watch ignored without --config")
		} else {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := config.Watch(ctx, opts.configPath, log, func(updated *config.Config) {
					d.SetFixtures(updated.Fixtures)
				}); err != nil {
					log.Error("config watcher stopped", zap.Error(err))
				}
			}()
		}
	}

	runErr := d.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	if runErr != nil {
		log.Error("menu aborted", zap.Error(runErr))
	}

	path := cfg.MetricsPath
	if opts.metricsOut != "" {
		path = opts.metricsOut
	}
	if path != "" {
		if err := sess.WriteFile(path); err != nil {
			log.Error("failed to write session metrics", zap.String("path", path), zap.Error(err))
			if runErr == nil {
				return err
			}
		} else {
			log.Info("session metrics written", zap.String("path", path))
		}
	}

	return runErr
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
