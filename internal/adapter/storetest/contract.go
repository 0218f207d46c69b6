// Package storetest holds the behaviour every port.Store implementation must
// show. Repository packages run it against a real database from their tests.
package storetest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"campaign-sync/internal/adapter/platform"
	"campaign-sync/internal/adapter/platform/mock"
	"campaign-sync/internal/adapter/usecase"
	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.DiscardHandler)

// Store is what the contract exercises.
type Store interface {
	port.Store
	CreateCampaignSet(ctx context.Context, set *domain.CampaignSet) error
}

// Run executes the contract. newStore must return an empty store.
func Run(t *testing.T, newStore func(t *testing.T) Store) {
	t.Helper()
	tests := map[string]func(t *testing.T, s Store){
		"missing set":           testMissingSet,
		"tree round trip":       testTreeRoundTrip,
		"platform id writes":    testPlatformIDWrites,
		"sync status":           testSyncStatus,
		"keyword identity":      testKeywordIdentity,
		"reverse sync":          testReverseSync,
		"sync service on store": testSyncServiceOnStore,
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) { fn(t, newStore(t)) })
	}
}

// Tree returns a two campaign set with every optional field populated.
func Tree(accountID string) *domain.CampaignSet {
	bid := 1.25
	goal := 3.5
	setID := uuid.NewString()
	c1, c2 := uuid.NewString(), uuid.NewString()
	g1 := uuid.NewString()
	return &domain.CampaignSet{
		ID:          setID,
		UserID:      "user-1",
		AdAccountID: accountID,
		Name:        "Spring",
		Status:      domain.SetStatusDraft,
		Config: domain.GenerationConfig{
			Platforms: []domain.Platform{domain.PlatformReddit, domain.PlatformGoogle},
			Hierarchy: []string{"brand"},
		},
		Campaigns: []domain.Campaign{
			{
				ID:        c1,
				Name:      "Spring reddit",
				Platform:  domain.PlatformReddit,
				Status:    domain.StatusActive,
				Objective: "CLICKS",
				Budget:    &domain.Budget{Type: domain.BudgetLifetime, Amount: 29.99, Currency: "USD"},
				Settings: domain.CampaignSettings{
					StartTime: domain.NewScheduleTime("2026-04-01T00:00:00Z"),
					EndTime:   domain.NewScheduleTime("2026-05-01"),
					GoalType:  "CPC",
					GoalValue: &goal,
					Platform:  map[string]json.RawMessage{"reddit": json.RawMessage(`{"fundingInstrumentId":"fi-1"}`)},
				},
				AdGroups: []domain.AdGroup{{
					ID:         g1,
					CampaignID: c1,
					Name:       "Group 1",
					Status:     domain.StatusActive,
					Settings: domain.AdGroupSettings{
						BidStrategy: "MANUAL_BIDDING",
						BidType:     "CPC",
						BidAmount:   &bid,
						Targeting:   domain.Targeting{Geos: []string{"US"}},
					},
					Ads: []domain.Ad{
						{ID: uuid.NewString(), AdGroupID: g1, Headline: "First", FinalURL: "https://a.example"},
						{ID: uuid.NewString(), AdGroupID: g1, Headline: "Second", FinalURL: "https://b.example"},
					},
					Keywords: []domain.Keyword{
						{ID: uuid.NewString(), AdGroupID: g1, Text: "running shoes", MatchType: domain.MatchBroad},
						{ID: uuid.NewString(), AdGroupID: g1, Text: "running shoes", MatchType: domain.MatchExact},
					},
				}},
			},
			{
				ID:        c2,
				Name:      "Spring google",
				Platform:  domain.PlatformGoogle,
				Status:    domain.StatusPaused,
				Objective: "CLICKS",
			},
		},
	}
}

func testMissingSet(t *testing.T, s Store) {
	set, err := s.GetCampaignSetWithRelations(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, set)
}

func testTreeRoundTrip(t *testing.T, s Store) {
	ctx := context.Background()
	want := Tree("acct-1")
	require.NoError(t, s.CreateCampaignSet(ctx, want))

	got, err := s.GetCampaignSetWithRelations(ctx, want.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, "acct-1", got.AdAccountID)
	assert.Equal(t, domain.SetSyncStatusPending, got.SyncStatus)
	assert.Equal(t, want.Config.Platforms, got.Config.Platforms)
	require.Len(t, got.Campaigns, 2)
	assert.Equal(t, want.Campaigns[0].ID, got.Campaigns[0].ID, "stored order is kept")
	assert.Equal(t, want.Campaigns[1].ID, got.Campaigns[1].ID)

	c := got.Campaigns[0]
	assert.Equal(t, domain.PlatformReddit, c.Platform)
	require.NotNil(t, c.Budget)
	assert.Equal(t, *want.Campaigns[0].Budget, *c.Budget)
	assert.Equal(t, "CPC", c.Settings.GoalType)
	require.NotNil(t, c.Settings.GoalValue)
	assert.InDelta(t, 3.5, *c.Settings.GoalValue, 1e-9)
	start, ok := c.Settings.StartTime.Resolve(time.Now())
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), start.UTC())
	var ps struct {
		FundingInstrumentID string `json:"fundingInstrumentId"`
	}
	found, err := c.Settings.DecodePlatformSettings(domain.PlatformReddit, &ps)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "fi-1", ps.FundingInstrumentID)
	assert.Nil(t, c.LastSyncedAt)
	assert.Empty(t, c.PlatformCampaignID)

	require.Len(t, c.AdGroups, 1)
	g := c.AdGroups[0]
	assert.Equal(t, "MANUAL_BIDDING", g.Settings.BidStrategy)
	require.NotNil(t, g.Settings.BidAmount)
	assert.InDelta(t, 1.25, *g.Settings.BidAmount, 1e-9)
	assert.Equal(t, []string{"US"}, g.Settings.Targeting.Geos)
	require.Len(t, g.Ads, 2)
	assert.Equal(t, "First", g.Ads[0].Headline)
	assert.Equal(t, "Second", g.Ads[1].Headline)
	require.Len(t, g.Keywords, 2)

	assert.Nil(t, got.Campaigns[1].Budget)
	assert.Empty(t, got.Campaigns[1].AdGroups)
}

func testPlatformIDWrites(t *testing.T, s Store) {
	ctx := context.Background()
	set := Tree("acct-1")
	require.NoError(t, s.CreateCampaignSet(ctx, set))
	c := set.Campaigns[0]
	g := c.AdGroups[0]

	require.NoError(t, s.UpdateCampaignPlatformID(ctx, c.ID, "pc-1"))
	require.NoError(t, s.UpdateAdGroupPlatformID(ctx, g.ID, "pg-1"))
	require.NoError(t, s.UpdateAdPlatformID(ctx, g.Ads[0].ID, "pa-1"))
	require.NoError(t, s.UpdateKeywordPlatformID(ctx, g.Keywords[1].ID, "pk-1"))

	got, err := s.GetCampaignSetWithRelations(ctx, set.ID)
	require.NoError(t, err)
	gc := got.Campaigns[0]
	assert.Equal(t, "pc-1", gc.PlatformCampaignID)
	assert.Equal(t, "pg-1", gc.AdGroups[0].PlatformAdGroupID)
	assert.Equal(t, "pa-1", gc.AdGroups[0].Ads[0].PlatformAdID)
	assert.Empty(t, gc.AdGroups[0].Ads[1].PlatformAdID)
	for _, k := range gc.AdGroups[0].Keywords {
		if k.ID == g.Keywords[1].ID {
			assert.Equal(t, "pk-1", k.PlatformKeywordID)
		} else {
			assert.Empty(t, k.PlatformKeywordID)
		}
	}

	err = s.UpdateCampaignPlatformID(ctx, uuid.NewString(), "x")
	assert.True(t, errors.Is(err, port.ErrEntityNotFound), "got %v", err)
	err = s.UpdateKeywordPlatformID(ctx, uuid.NewString(), "x")
	assert.True(t, errors.Is(err, port.ErrEntityNotFound), "got %v", err)
}

func testSyncStatus(t *testing.T, s Store) {
	ctx := context.Background()
	set := Tree("acct-1")
	require.NoError(t, s.CreateCampaignSet(ctx, set))
	c1, c2 := set.Campaigns[0].ID, set.Campaigns[1].ID

	require.NoError(t, s.UpdateCampaignSetStatus(ctx, set.ID, domain.SetSyncStatusPartialSuccess))
	require.NoError(t, s.UpdateCampaignSyncStatus(ctx, c1, domain.SyncStatusSynced))
	require.NoError(t, s.UpdateCampaignSyncStatus(ctx, c2, domain.SyncStatusFailed))

	got, err := s.GetCampaignSetWithRelations(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SetSyncStatusPartialSuccess, got.SyncStatus)
	assert.Equal(t, domain.SyncStatusSynced, got.Campaigns[0].SyncStatus)
	require.NotNil(t, got.Campaigns[0].LastSyncedAt)
	assert.WithinDuration(t, time.Now(), *got.Campaigns[0].LastSyncedAt, time.Minute)
	assert.Equal(t, domain.SyncStatusFailed, got.Campaigns[1].SyncStatus)
	assert.Nil(t, got.Campaigns[1].LastSyncedAt)

	assert.ErrorIs(t, s.UpdateCampaignSetStatus(ctx, uuid.NewString(), domain.SetSyncStatusError), port.ErrEntityNotFound)
}

func testKeywordIdentity(t *testing.T, s Store) {
	set := Tree("acct-1")
	g := &set.Campaigns[0].AdGroups[0]
	g.Keywords = append(g.Keywords, domain.Keyword{
		ID: uuid.NewString(), AdGroupID: g.ID, Text: "Running Shoes", MatchType: domain.MatchBroad,
	})
	require.Error(t, s.CreateCampaignSet(context.Background(), set), "same text and match type twice")

	got, err := s.GetCampaignSetWithRelations(context.Background(), set.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "failed insert leaves nothing behind")
}

func testReverseSync(t *testing.T, s Store) {
	ctx := context.Background()
	acct := "acct-" + uuid.NewString()
	set := Tree(acct)
	require.NoError(t, s.CreateCampaignSet(ctx, set))
	other := Tree("acct-" + uuid.NewString())
	require.NoError(t, s.CreateCampaignSet(ctx, other))

	c1, c2 := set.Campaigns[0].ID, set.Campaigns[1].ID
	require.NoError(t, s.UpdateCampaignPlatformID(ctx, c1, "pc-1"))
	require.NoError(t, s.UpdateCampaignPlatformID(ctx, other.Campaigns[0].ID, "pc-other"))

	synced, err := s.GetSyncedCampaignsForAccount(ctx, acct)
	require.NoError(t, err)
	require.Len(t, synced, 1, "only campaigns with a platform id of this account")
	assert.Equal(t, c1, synced[0].ID)
	assert.Equal(t, "pc-1", synced[0].PlatformCampaignID)
	assert.Equal(t, domain.StatusActive, synced[0].Status)
	assert.True(t, synced[0].NeverSynced())

	conflict := domain.SyncConflict{Field: "status", LocalStatus: "active", PlatformStatus: "paused", DetectedAt: time.Now().UTC()}
	require.NoError(t, s.MarkCampaignConflict(ctx, c1, conflict))
	got, err := s.GetCampaignSetWithRelations(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SyncStatusConflict, got.Campaigns[0].SyncStatus)
	assert.Equal(t, domain.StatusActive, got.Campaigns[0].Status, "local fields untouched")

	syncedAt := time.Now().UTC().Truncate(time.Millisecond)
	require.NoError(t, s.UpdateCampaignFromPlatform(ctx, c1, domain.PlatformCampaignUpdate{
		PlatformID: "pc-1", Status: domain.StatusPaused, Name: "Renamed", SyncedAt: syncedAt,
	}))
	synced, err = s.GetSyncedCampaignsForAccount(ctx, acct)
	require.NoError(t, err)
	require.Len(t, synced, 1)
	assert.Equal(t, domain.StatusPaused, synced[0].Status)
	assert.Equal(t, "Renamed", synced[0].Name)
	require.NotNil(t, synced[0].LastSyncedAt)
	assert.WithinDuration(t, syncedAt, *synced[0].LastSyncedAt, time.Millisecond)
	assert.False(t, synced[0].UpdatedAt.After(*synced[0].LastSyncedAt), "no local edit after the pull")

	require.NoError(t, s.UpdateCampaignPlatformID(ctx, c2, "pc-2"))
	require.NoError(t, s.MarkCampaignDeletedOnPlatform(ctx, c1))
	synced, err = s.GetSyncedCampaignsForAccount(ctx, acct)
	require.NoError(t, err)
	require.Len(t, synced, 1)
	assert.Equal(t, c2, synced[0].ID)

	assert.ErrorIs(t, s.MarkCampaignDeletedOnPlatform(ctx, uuid.NewString()), port.ErrEntityNotFound)
}

// testSyncServiceOnStore runs two syncs through the mock platform: the
// second one must update every entity the first one created.
func testSyncServiceOnStore(t *testing.T, s Store) {
	ctx := context.Background()
	acct := "acct-" + uuid.NewString()
	set := Tree(acct)
	require.NoError(t, s.CreateCampaignSet(ctx, set))

	reddit := mock.New(mock.Config{Platform: domain.PlatformReddit, NoKeywords: true})
	google := mock.New(mock.Config{Platform: domain.PlatformGoogle})
	svc := usecase.NewSyncService(s, platform.NewRegistry(reddit, google), usecase.WithSyncLogger(quiet))

	res, err := svc.SyncCampaignSet(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Synced)

	got, err := s.GetCampaignSetWithRelations(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SetSyncStatusSuccess, got.SyncStatus)
	for _, c := range got.Campaigns {
		assert.NotEmpty(t, c.PlatformCampaignID)
		assert.Equal(t, domain.SyncStatusSynced, c.SyncStatus)
		for _, g := range c.AdGroups {
			assert.NotEmpty(t, g.PlatformAdGroupID)
			for _, a := range g.Ads {
				assert.NotEmpty(t, a.PlatformAdID)
			}
			for _, k := range g.Keywords {
				assert.Equal(t, k.ID, k.PlatformKeywordID, "reddit keywords pass through")
			}
		}
	}

	_, err = svc.SyncCampaignSet(ctx, set.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reddit.CallCount(mock.OpCreateCampaign))
	assert.Equal(t, 1, reddit.CallCount(mock.OpUpdateCampaign))
	assert.Equal(t, 2, reddit.CallCount(mock.OpUpdateAd))
	assert.Equal(t, 1, google.CallCount(mock.OpUpdateCampaign))

	reddit.SetCampaignStatus(got.Campaigns[0].PlatformCampaignID, domain.StatusPaused)
	rec := usecase.NewReconciler(s, platform.NewRegistry(reddit, google), usecase.WithReconcileLogger(quiet))
	rr, err := rec.ReconcileAccount(ctx, acct)
	require.NoError(t, err)
	assert.Equal(t, 1, rr.Updated)
	assert.Equal(t, 1, rr.Unchanged)
}
