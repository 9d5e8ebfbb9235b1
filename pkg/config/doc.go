// Package config loads typed configuration from environment variables.
//
// Configuration structs declare their variables with `env` and `envDefault`
// tags understood by github.com/caarlos0/env. Load reads the default .env
// file once through github.com/joho/godotenv, parses the struct, and caches
// the result per type so every component sees the same values:
//
//	type Config struct {
//		DismissAfter time.Duration `env:"NOTIFICATION_DISMISS_AFTER" envDefault:"5s"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// LoadEnv reads additional dotenv files (for example one passed on the
// command line). Existing process variables take precedence over file
// values. MustLoad panics on failure and suits startup code.
//
// Errors are wrapped with errors.Join, so callers can test for
// ErrParsingConfig or ErrLoadingEnvFile with errors.Is.
package config
