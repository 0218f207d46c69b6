package configs

// Store drivers.
const (
	StorePostgres = "postgres"
	StoreSQLite   = "sqlite"
)

// Store selects the repository backend. The sqlite driver keeps everything
// in a local file and needs no server.
type Store struct {
	Driver     string `env:"DRIVER" envDefault:"postgres"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"campaign-sync.db"`
}
