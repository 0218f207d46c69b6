package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadTimeout bounds reading a whole request.
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	// WriteTimeout bounds writing a response. A sync of a large set runs
	// inside the request, so this is generous.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10m"`
	// ShutdownTimeout is how long in-flight requests get on shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
