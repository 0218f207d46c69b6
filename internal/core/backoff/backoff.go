// Package backoff computes retry delays. It never sleeps or retries itself;
// callers such as the job worker use the result to schedule the next attempt.
package backoff

import (
	"math/rand/v2"
	"time"
)

// Default values used when a Config field is zero.
const (
	DefaultBaseDelay = time.Second
	DefaultMaxDelay  = 5 * time.Minute
	DefaultJitter    = time.Second
)

// Config tunes CalculateDelay. A zero Config uses the defaults.
type Config struct {
	BaseDelay time.Duration
	MaxDelay  time.Duration
	// Jitter is the exclusive upper bound of the random delay added on top
	// of the exponential term. Negative disables jitter.
	Jitter time.Duration
	// Rand returns a value in [0, n). It defaults to math/rand/v2.Int64N.
	Rand func(n int64) int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseDelay: DefaultBaseDelay,
		MaxDelay:  DefaultMaxDelay,
		Jitter:    DefaultJitter,
	}
}

func (c Config) withDefaults() Config {
	if c.BaseDelay <= 0 {
		c.BaseDelay = DefaultBaseDelay
	}
	if c.MaxDelay <= 0 {
		c.MaxDelay = DefaultMaxDelay
	}
	if c.Jitter == 0 {
		c.Jitter = DefaultJitter
	}
	if c.Rand == nil {
		c.Rand = rand.Int64N
	}
	return c
}

// Exponential returns min(base*2^retryCount, max) without jitter. Negative
// retry counts are treated as zero.
func (c Config) Exponential(retryCount int) time.Duration {
	c = c.withDefaults()
	if retryCount < 0 {
		retryCount = 0
	}
	d := c.BaseDelay
	for i := 0; i < retryCount; i++ {
		// doubling past MaxDelay (or overflowing) ends the growth
		if d >= c.MaxDelay || d > c.MaxDelay/2 {
			return c.MaxDelay
		}
		d *= 2
	}
	if d > c.MaxDelay {
		return c.MaxDelay
	}
	return d
}

// CalculateDelay returns min(base*2^max(0,retryCount), max) plus a uniform
// random jitter in [0, Jitter).
func CalculateDelay(retryCount int, cfg Config) time.Duration {
	cfg = cfg.withDefaults()
	d := cfg.Exponential(retryCount)
	if cfg.Jitter > 0 {
		d += time.Duration(cfg.Rand(int64(cfg.Jitter)))
	}
	return d
}

// Delay is CalculateDelay with the default configuration.
func Delay(retryCount int) time.Duration {
	return CalculateDelay(retryCount, DefaultConfig())
}
