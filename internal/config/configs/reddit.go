package configs

import "time"

// Reddit configures the Reddit Ads adapter. The adapter is registered only
// when Enabled is true. AccessToken must already be valid; refreshing it is
// not this service's job.
type Reddit struct {
	Enabled             bool          `env:"ENABLED" envDefault:"false"`
	BaseURL             string        `env:"BASE_URL" envDefault:"https://ads-api.reddit.com"`
	AccountID           string        `env:"ACCOUNT_ID"`
	AccessToken         string        `env:"ACCESS_TOKEN"`
	FundingInstrumentID string        `env:"FUNDING_INSTRUMENT_ID"`
	Timeout             time.Duration `env:"TIMEOUT" envDefault:"30s"`
}
