package dashboard

import "time"

// Config holds dashboard tunables.
type Config struct {
	SearchDelay time.Duration `env:"DASHBOARD_SEARCH_DELAY" envDefault:"300ms"`
}
