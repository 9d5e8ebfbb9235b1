package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rojgarpatra/uikit/pkg/config"
	"github.com/rojgarpatra/uikit/pkg/dashboard"
)

func newSearchCmd(a *app) *cobra.Command {
	var (
		cardsFile string
		query     string
		delay     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter resume cards like the dashboard search box",
		Long: `Filter resume cards listed in a YAML file:

  - {id: "1", title: Backend Engineer, name: Asha Rai}
  - {id: "2", title: Data Analyst, name: Bikash Thapa}

With --query the matching cards are printed once. Otherwise queries are read
from standard input, one per line, and debounced as if typed; each applied
query prints its matches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cards, err := loadCards(cardsFile)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("query") {
				for i, visible := range dashboard.Filter(cards, query) {
					if visible {
						printCard(out, cards[i])
					}
				}
				return nil
			}

			if !cmd.Flags().Changed("delay") {
				var cfg dashboard.Config
				if err := config.Load(&cfg); err != nil {
					return fmt.Errorf("load dashboard configuration: %w", err)
				}
				delay = cfg.SearchDelay
			}

			d, err := dashboard.New(cards,
				dashboard.WithSearchDelay(delay),
				dashboard.WithLogger(a.log),
				dashboard.WithMetrics(a.metrics),
				dashboard.OnApply(func(q string, visible []dashboard.Card) {
					fmt.Fprintf(out, "query %q: %d match(es)\n", q, len(visible))
					for _, c := range visible {
						printCard(out, c)
					}
				}),
			)
			if err != nil {
				return err
			}
			defer d.Close()

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				d.Search(scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read queries: %w", err)
			}

			// End of input: the last query typed is applied without waiting.
			d.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&cardsFile, "cards", "c", "", "YAML file listing resume cards")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter once with this query")
	cmd.Flags().DurationVar(&delay, "delay", 300*time.Millisecond, "Debounce delay for queries read from stdin")
	_ = cmd.MarkFlagRequired("cards")

	return cmd
}

type cardDoc struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Name  string `yaml:"name"`
}

func loadCards(path string) ([]dashboard.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cards: %w", err)
	}
	var docs []cardDoc
	if err := yaml.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("parse cards: %w", err)
	}
	cards := make([]dashboard.Card, len(docs))
	for i, d := range docs {
		cards[i] = dashboard.Card{ID: d.ID, Title: d.Title, Name: d.Name}
	}
	return cards, nil
}

func printCard(w io.Writer, c dashboard.Card) {
	fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, c.Title, c.Name)
}
