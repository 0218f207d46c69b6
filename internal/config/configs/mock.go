package configs

// Mock registers the in-memory mock adapter for each listed platform,
// e.g. PLATFORM_MOCKS=google,meta. With FailureRate above zero the mock
// fails that share of writes with retryable errors.
type Mock struct {
	Platforms   []string `env:"PLATFORM_MOCKS" envSeparator:","`
	FailureRate float64  `env:"MOCK_FAILURE_RATE" envDefault:"0"`
	Seed        uint64   `env:"MOCK_SEED" envDefault:"0"`
}
