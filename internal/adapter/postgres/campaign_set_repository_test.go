package postgres_test

import (
	"context"
	"net/url"
	"os"
	"testing"

	"campaign-sync/db/migrations"
	"campaign-sync/internal/adapter/postgres"
	"campaign-sync/internal/adapter/storetest"
	"campaign-sync/internal/config/configs"
	"campaign-sync/internal/db"

	"github.com/stretchr/testify/require"
)

// TestCampaignSetRepository runs the store contract against the database in
// PSQL_TEST_ADDRESS. Every subtest works on fresh random ids, so the
// database does not need to be empty.
func TestCampaignSetRepository(t *testing.T) {
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	version, err := db.Migrate(addr)
	require.NoError(t, err)
	require.Equal(t, uint(migrations.Version), version)

	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	storetest.Run(t, func(t *testing.T) storetest.Store {
		return postgres.NewCampaignSetRepository(pool)
	})
}
