package configs

import "time"

// Sync tunes the sync service and the reconciler.
type Sync struct {
	// AdapterTimeout bounds every single platform call.
	AdapterTimeout time.Duration `env:"ADAPTER_TIMEOUT" envDefault:"30s"`
	// FetchTimeout bounds one status fetch of the reconciler.
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"1m"`
	// ProgressBuffer is the per-subscriber queue length of the progress
	// hub. Events beyond it are dropped for that subscriber.
	ProgressBuffer int `env:"PROGRESS_BUFFER" envDefault:"64"`
}
