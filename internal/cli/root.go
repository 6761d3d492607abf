// Package cli wires configuration, the scene engine and its adapters into
// the ls-cosmos command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-cosmos/internal/config"
	"github.com/litescript/ls-cosmos/internal/ephem"
	"github.com/litescript/ls-cosmos/internal/logging"
	"github.com/litescript/ls-cosmos/internal/scene"
)

// globalOptions holds the persistent flags.
type globalOptions struct {
	configPath string
	logLevel   string
	ephemMode  string
}

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "ls-cosmos",
		Short: "Multi-scale astronomical scene engine",
		Long: `ls-cosmos computes 2D scenes of the sky at three scales from a single
zoom level: the solar system, the stellar neighbourhood and the Local Group.

Examples:
  ls-cosmos view
  ls-cosmos scene --zoom -10 --date "2024/03/20 12:00:00"
  ls-cosmos scene --zoom -15 --select "Sirius A"
  ls-cosmos serve --ephem auto`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs, /etc/ls-cosmos)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"Log level (debug, info, warn, error), overrides config")
	rootCmd.PersistentFlags().StringVar(&opts.ephemMode, "ephem", "",
		"Ephemeris source (meeus, horizons, auto), overrides config")

	rootCmd.AddCommand(NewServeCommand(opts))
	rootCmd.AddCommand(NewSceneCommand(opts))
	rootCmd.AddCommand(NewViewCommand(opts))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// load reads configuration and applies flag overrides.
func (o *globalOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if o.ephemMode != "" {
		cfg.Ephemeris.Mode = o.ephemMode
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, w io.Writer) *logging.Logger {
	log := logging.New(logging.ParseLevel(cfg.Logging.Level))
	log.SetOutput(w)
	return log
}

// newEngine builds the oracle selected by cfg and the engine around it.
func newEngine(cfg *config.Config, log *logging.Logger) (*scene.Engine, error) {
	oracle := ephem.New(ephem.ParseMode(cfg.Ephemeris.Mode), ephem.Options{
		HorizonsURL: cfg.Ephemeris.HorizonsURL,
		Timeout:     cfg.Ephemeris.Timeout,
		CacheTTL:    cfg.Ephemeris.CacheTTL,
	})
	engine, err := scene.NewEngine(oracle, scene.WithLogger(log.Named("scene")))
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	log.Debug("ephemeris oracle: %s", engine.OracleName())
	return engine, nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigCh)
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
