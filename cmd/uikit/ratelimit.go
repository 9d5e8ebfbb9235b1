package main

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/rojgarpatra/uikit/pkg/ratelimiter"
)

func newRateLimitCmd(a *app) *cobra.Command {
	var (
		mode     string
		delay    time.Duration
		interval time.Duration
		calls    int
		metrics  bool
	)

	cmd := &cobra.Command{
		Use:   "ratelimit",
		Short: "Show which of a series of calls a debounce or throttle wrapper lets through",
		Example: `  uikit ratelimit --mode throttle --delay 50ms --interval 10ms --calls 12
  uikit ratelimit --mode debounce --delay 30ms --interval 10ms --calls 5 --metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := ratelimiter.ParseMode(mode)
			if err != nil {
				return err
			}
			if calls < 0 {
				return fmt.Errorf("%w: calls must not be negative", ratelimiter.ErrInvalidConfig)
			}

			var (
				mu  sync.Mutex
				ran []int
			)
			call, err := ratelimiter.Wrap(func(args ...int) {
				mu.Lock()
				defer mu.Unlock()
				ran = append(ran, args...)
			}, delay, m,
				ratelimiter.WithName("cli-"+m.String()),
				ratelimiter.WithLogger(a.log),
				ratelimiter.WithMetrics(a.metrics),
			)
			if err != nil {
				return err
			}

			start := time.Now()
			for i := range calls {
				if i > 0 {
					time.Sleep(interval)
				}
				call(i)
			}
			// Let a trailing debounced call fire.
			time.Sleep(delay + 10*time.Millisecond)

			mu.Lock()
			got := slices.Clone(ran)
			mu.Unlock()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mode=%s delay=%s interval=%s calls=%d elapsed=%s\n",
				m, delay, interval, calls, time.Since(start).Round(time.Millisecond))
			fmt.Fprintf(out, "ran: %v\n", got)

			if metrics {
				return a.printMetrics(cmd)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "debounce", "Wrapper mode (debounce, throttle)")
	cmd.Flags().DurationVarP(&delay, "delay", "d", 100*time.Millisecond, "Debounce quiet period or throttle cooldown")
	cmd.Flags().DurationVarP(&interval, "interval", "i", 20*time.Millisecond, "Time between calls")
	cmd.Flags().IntVarP(&calls, "calls", "n", 10, "Number of calls")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Print limiter counters afterwards")

	return cmd
}

func (a *app) printMetrics(cmd *cobra.Command) error {
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	var lines []string
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			labels := make([]string, 0, len(metric.GetLabel()))
			for _, l := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g",
				mf.GetName(), strings.Join(labels, ","), metric.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), l)
	}
	return nil
}
