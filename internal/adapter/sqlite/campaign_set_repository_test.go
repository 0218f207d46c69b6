package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"campaign-sync/internal/adapter/sqlite"
	"campaign-sync/internal/adapter/storetest"
	"campaign-sync/internal/db"

	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) storetest.Store {
	t.Helper()
	conn, err := db.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return sqlite.NewCampaignSetRepository(conn)
}

// TestCampaignSetRepository runs the shared store suite against sqlite.
func TestCampaignSetRepository(t *testing.T) {
	storetest.Run(t, newStore)
}

// TestInMemory ensures an in-memory database is migrated and usable.
func TestInMemory(t *testing.T) {
	conn, err := db.OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	repo := sqlite.NewCampaignSetRepository(conn)
	set := storetest.Tree("acct")
	require.NoError(t, repo.CreateCampaignSet(context.Background(), set))

	got, err := repo.GetCampaignSetWithRelations(context.Background(), set.ID)
	require.NoError(t, err)
	require.Len(t, got.Campaigns, 2)
}

// TestSeedDemoSet ensures the demo set is seeded with its full tree.
func TestSeedDemoSet(t *testing.T) {
	repo := newStore(t)
	set, err := db.Seed(context.Background(), repo, "acct-demo")
	require.NoError(t, err)

	got, err := repo.GetCampaignSetWithRelations(context.Background(), set.ID)
	require.NoError(t, err)
	require.Len(t, got.Campaigns, 4)
	for _, c := range got.Campaigns {
		require.Len(t, c.AdGroups, 2)
		for _, g := range c.AdGroups {
			require.Len(t, g.Ads, 2)
			require.Len(t, g.Keywords, 3)
		}
	}
}
