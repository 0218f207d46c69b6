package configs

import (
	"time"

	"campaign-sync/internal/core/backoff"
)

// Backoff configures retry delays. Jitter below zero disables it.
type Backoff struct {
	Base   time.Duration `env:"BASE" envDefault:"1s"`
	Max    time.Duration `env:"MAX" envDefault:"5m"`
	Jitter time.Duration `env:"JITTER" envDefault:"1s"`
}

// Config converts the section to a backoff.Config.
func (c Backoff) Config() backoff.Config {
	return backoff.Config{BaseDelay: c.Base, MaxDelay: c.Max, Jitter: c.Jitter}
}
