package notifications

import "time"

// Config controls notification timing.
type Config struct {
	DismissAfter time.Duration `env:"NOTIFICATION_DISMISS_AFTER" envDefault:"5s"`
	FadeDuration time.Duration `env:"NOTIFICATION_FADE_DURATION" envDefault:"300ms"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		DismissAfter: 5 * time.Second,
		FadeDuration: 300 * time.Millisecond,
	}
}
