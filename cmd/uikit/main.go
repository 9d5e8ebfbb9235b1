// Command uikit exercises the RojgarPatra UI behaviour from a terminal:
// field validation, theme preference, resume search and rate limiting.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/rojgarpatra/uikit/pkg/config"
	"github.com/rojgarpatra/uikit/pkg/environment"
	"github.com/rojgarpatra/uikit/pkg/logger"
	"github.com/rojgarpatra/uikit/pkg/ratelimiter"
)

// appConfig is the process-wide configuration read from the environment.
type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
}

var errInvalidConfig = errors.New("invalid configuration")

// app carries the dependencies shared by every subcommand.
type app struct {
	cfg      appConfig
	log      *slog.Logger
	registry *prometheus.Registry
	metrics  *ratelimiter.Metrics
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "uikit",
		Short: "Client-side UI behaviour of the RojgarPatra resume builder",
		Long: `uikit runs the resume builder's interface logic outside the browser.

It validates form fields the way the signup and resume forms do, reads and
toggles the stored colour theme, filters resume cards like the dashboard
search box, and demonstrates the debounce and throttle helpers.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	rootCmd.PersistentFlags().String("env-file", "", "Additional .env file to load")
	rootCmd.PersistentFlags().StringP("log-level", "l", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newValidateCmd(a),
		newThemeCmd(a),
		newSearchCmd(a),
		newRateLimitCmd(a),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	if envFile, _ := cmd.Flags().GetString("env-file"); envFile != "" {
		if err := config.LoadEnv(envFile); err != nil {
			return err
		}
	}
	if err := config.Load(&a.cfg); err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	opts := []logger.Option{
		logger.WithEnvironment(a.cfg.Env, "uikit"),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	}
	level := a.cfg.LogLevel
	if flag, _ := cmd.Flags().GetString("log-level"); flag != "" {
		level = flag
	}
	if level != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(level)))
	}
	if a.cfg.LogFormat != "" {
		format := logger.Format(strings.ToLower(a.cfg.LogFormat))
		if format != logger.FormatJSON && format != logger.FormatText {
			return fmt.Errorf("%w: LOG_FORMAT %q, want %q or %q",
				errInvalidConfig, a.cfg.LogFormat, logger.FormatJSON, logger.FormatText)
		}
		opts = append(opts, logger.WithFormat(format))
	}
	a.log = logger.New(opts...)

	cmd.SetContext(environment.WithContext(cmd.Context(), environment.Parse(a.cfg.Env)))

	a.registry = prometheus.NewRegistry()
	metrics, err := ratelimiter.NewMetrics(a.registry)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	a.metrics = metrics
	return nil
}
