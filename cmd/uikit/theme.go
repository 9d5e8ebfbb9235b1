package main

import (
	"context"
	"fmt"
	"io"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/rojgarpatra/uikit/pkg/config"
	"github.com/rojgarpatra/uikit/pkg/logger"
	"github.com/rojgarpatra/uikit/pkg/redis"
	"github.com/rojgarpatra/uikit/pkg/theme"
)

func newThemeCmd(a *app) *cobra.Command {
	var (
		cfg     theme.Config
		manager *theme.Manager
		closeFn = func() {}
		// follow receives every applied theme while watching.
		follow io.Writer
		health func(context.Context) error
	)

	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Read or change the stored colour theme",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, nil); err != nil {
				return err
			}

			var envCfg theme.Config
			if err := config.Load(&envCfg); err != nil {
				return fmt.Errorf("load theme configuration: %w", err)
			}
			if !cmd.Flags().Changed("store") {
				cfg.Store = envCfg.Store
			}
			if !cmd.Flags().Changed("file") {
				cfg.File = envCfg.File
			}
			cfg.RedisKey, cfg.RedisTTL, cfg.WatchDebounce = envCfg.RedisKey, envCfg.RedisTTL, envCfg.WatchDebounce

			var client goredis.Cmdable
			if cfg.Store == theme.StoreRedis {
				var redisCfg redis.Config
				if err := config.Load(&redisCfg); err != nil {
					return fmt.Errorf("load redis configuration: %w", err)
				}
				c, err := redis.Connect(cmd.Context(), redisCfg)
				if err != nil {
					return err
				}
				client = c
				closeFn = func() { _ = c.Close() }
				health = redis.Healthcheck(c)
			}

			store, err := theme.NewStore(cfg, client,
				theme.WithFileLogger(a.log),
				theme.WithWatchMetrics(a.metrics),
			)
			if err != nil {
				closeFn()
				return err
			}
			manager = theme.NewManager(store,
				theme.WithLogger(a.log),
				theme.WithApplier(func(t theme.Theme) {
					a.log.DebugContext(cmd.Context(), "data-theme set", logger.Theme(t.String()))
					if follow != nil {
						fmt.Fprintln(follow, t)
					}
				}),
			)
			return nil
		},
	}

	closing := func(fn runE) runE { return closeAfter(&closeFn, fn) }

	cmd.PersistentFlags().StringVar(&cfg.Store, "store", theme.StoreFile, "Preference store (memory, file, redis)")
	cmd.PersistentFlags().StringVar(&cfg.File, "file", ".uikit/theme.yaml", "Theme file for the file store")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the current theme",
			Args:  cobra.NoArgs,
			RunE: closing(func(cmd *cobra.Command, _ []string) error {
				t, err := manager.Init(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), t)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between light and dark",
			Args:  cobra.NoArgs,
			RunE: closing(func(cmd *cobra.Command, _ []string) error {
				t, err := manager.Toggle(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), t)
				return nil
			}),
		},
		&cobra.Command{
			Use:       "set <light|dark>",
			Short:     "Store a theme",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{string(theme.Light), string(theme.Dark)},
			RunE: closing(func(cmd *cobra.Command, args []string) error {
				t, err := theme.Parse(args[0])
				if err != nil {
					return err
				}
				if err := manager.Set(cmd.Context(), t); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), t)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "watch",
			Short: "Print the theme whenever another process changes it",
			Args:  cobra.NoArgs,
			RunE: closing(func(cmd *cobra.Command, _ []string) error {
				ctx := cmd.Context()
				follow = cmd.OutOrStdout()
				if _, err := manager.Init(ctx); err != nil {
					return err
				}

				watching, err := manager.Follow(ctx)
				if err != nil {
					return err
				}
				if !watching {
					return fmt.Errorf("the %s store cannot be watched", cfg.Store)
				}
				<-ctx.Done()
				return nil
			}),
		},
		&cobra.Command{
			Use:   "check",
			Short: "Verify that the preference store can be reached",
			Args:  cobra.NoArgs,
			RunE: closing(func(cmd *cobra.Command, _ []string) error {
				ctx := cmd.Context()
				if health != nil {
					if err := health(ctx); err != nil {
						return err
					}
				} else if _, err := manager.Current(ctx); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s store ok\n", cfg.Store)
				return nil
			}),
		},
	)
	return cmd
}

type runE func(*cobra.Command, []string) error

// closeAfter runs fn, then *closeFn however fn returns. The pointer is read
// after fn so a closer installed by a pre-run hook is honoured.
func closeAfter(closeFn *func(), fn runE) runE {
	return func(cmd *cobra.Command, args []string) error {
		defer func() { (*closeFn)() }()
		return fn(cmd, args)
	}
}
