package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"campaign-sync/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Store selects the repository backend.
	Store configs.Store `envPrefix:"STORE_"`

	// Sync tunes the sync service.
	Sync configs.Sync `envPrefix:"SYNC_"`

	// Backoff configures the retry delays of queued jobs.
	Backoff configs.Backoff `envPrefix:"BACKOFF_"`

	// Reddit configures the Reddit Ads adapter.
	Reddit configs.Reddit `envPrefix:"REDDIT_"`

	// Mock lists the platforms served by the in-memory mock adapter.
	Mock configs.Mock

	// AMQP configures the job queue used by the worker.
	AMQP configs.AMQP `envPrefix:"AMQP_"`
}

// Load reads an optional .env file and then parses environment variables
// into a Config. Variables already set in the environment win over the
// file. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	var cfg Config
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
