package migrations

import "embed"

// FS embeds the postgres migrations. golang-migrate reads them through the
// iofs driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version Migrate moves the database to.
const Version = 1

// SQLiteSchema is the idempotent schema of the embedded sqlite store. It
// mirrors the postgres tables with TEXT in place of JSONB and TIMESTAMPTZ.
//
//go:embed sqlite/schema.sql
var SQLiteSchema string
