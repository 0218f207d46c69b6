package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campaign-sync/internal/adapter/platform"
	"campaign-sync/internal/adapter/platform/mock"
	"campaign-sync/internal/adapter/platform/reddit"
	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/core/port/mocks"

	"github.com/stretchr/testify/assert"
	testmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return t0.Add(24 * time.Hour) }

func ptr[T any](v T) *T { return &v }

func synced(id, platformID, status string, updatedAt time.Time, lastSynced *time.Time) domain.SyncedCampaign {
	return domain.SyncedCampaign{
		ID:                 id,
		Platform:           domain.PlatformGoogle,
		PlatformCampaignID: platformID,
		Name:               "Campaign " + id,
		Status:             status,
		UpdatedAt:          updatedAt,
		LastSyncedAt:       lastSynced,
	}
}

func newReconciler(repo port.ReverseSyncRepository, adapters port.AdapterRegistry) *Reconciler {
	return NewReconciler(repo, adapters, WithReconcileLogger(discard), WithReconcileClock(fixedClock))
}

// TestReconcileClassifiesCampaigns ensures each campaign is classified as unchanged, updated, conflicted or deleted.
func TestReconcileClassifiesCampaigns(t *testing.T) {
	adapter := mock.New(mock.Config{Platform: domain.PlatformGoogle})
	adapter.Seed("p-never", "never", "paused")
	adapter.Seed("p-epoch", "epoch", "paused")
	adapter.Seed("p-conflict", "conflict", "paused")
	adapter.Seed("p-platform-wins", "platform wins", "paused")
	adapter.Seed("p-same", "same", "ACTIVE")

	campaigns := []domain.SyncedCampaign{
		// never synced: platform wins even though local changed recently
		synced("never", "p-never", "active", t0.Add(time.Hour), nil),
		// epoch sentinel counts as never synced
		synced("epoch", "p-epoch", "active", t0.Add(time.Hour), ptr(time.Unix(0, 0).UTC())),
		// local edit after the last sync
		synced("conflict", "p-conflict", "active", t0.Add(time.Hour), ptr(t0)),
		// last sync after the local edit
		synced("platform-wins", "p-platform-wins", "active", t0, ptr(t0.Add(time.Hour))),
		synced("same", "p-same", "active", t0, ptr(t0)),
		synced("gone", "p-gone", "active", t0, ptr(t0)),
	}

	repo := mocks.NewMockReverseSyncRepository(t)
	repo.EXPECT().GetSyncedCampaignsForAccount(testmock.Anything, "acct").Return(campaigns, nil).Once()
	for _, id := range []string{"never", "epoch", "platform-wins"} {
		repo.EXPECT().UpdateCampaignFromPlatform(testmock.Anything, id, domain.PlatformCampaignUpdate{
			PlatformID: "p-" + id,
			Status:     "paused",
			Name:       map[string]string{"never": "never", "epoch": "epoch", "platform-wins": "platform wins"}[id],
			SyncedAt:   fixedClock(),
		}).Return(nil).Once()
	}
	repo.EXPECT().MarkCampaignConflict(testmock.Anything, "conflict", domain.SyncConflict{
		Field:          FieldStatus,
		LocalStatus:    "active",
		PlatformStatus: "paused",
		DetectedAt:     fixedClock(),
	}).Return(nil).Once()
	repo.EXPECT().MarkCampaignDeletedOnPlatform(testmock.Anything, "gone").Return(nil).Once()

	res, err := newReconciler(repo, registry(adapter)).ReconcileAccount(context.Background(), "acct")
	require.NoError(t, err)

	assert.Equal(t, 3, res.Updated)
	assert.Equal(t, 1, res.Conflicts)
	assert.Equal(t, 1, res.Unchanged)
	assert.Equal(t, 1, res.Deleted)
	assert.Equal(t, 0, res.Errors)
	assert.Equal(t, len(campaigns), res.Total())
	assert.Empty(t, res.ErrorMessages)
	assert.Equal(t, 1, adapter.CallCount(mock.OpFetchStatuses), "one fetch per platform")

	outcomes := map[string]domain.ReconcileOutcome{}
	for _, o := range res.Outcomes {
		outcomes[o.CampaignID] = o.Outcome
	}
	assert.Equal(t, map[string]domain.ReconcileOutcome{
		"never":         domain.OutcomeUpdated,
		"epoch":         domain.OutcomeUpdated,
		"conflict":      domain.OutcomeConflict,
		"platform-wins": domain.OutcomeUpdated,
		"same":          domain.OutcomeUnchanged,
		"gone":          domain.OutcomeDeleted,
	}, outcomes)
}

// TestReconcileMutationErrorContinues ensures a failed store write is recorded and the run continues.
func TestReconcileMutationErrorContinues(t *testing.T) {
	adapter := mock.New(mock.Config{Platform: domain.PlatformGoogle})
	adapter.Seed("p1", "one", "paused")
	adapter.Seed("p2", "two", "paused")

	repo := mocks.NewMockReverseSyncRepository(t)
	repo.EXPECT().GetSyncedCampaignsForAccount(testmock.Anything, "acct").Return([]domain.SyncedCampaign{
		synced("c1", "p1", "active", t0, nil),
		synced("c2", "p2", "active", t0, nil),
	}, nil).Once()
	repo.EXPECT().UpdateCampaignFromPlatform(testmock.Anything, "c1", testmock.Anything).Return(errors.New("deadlock")).Once()
	repo.EXPECT().UpdateCampaignFromPlatform(testmock.Anything, "c2", testmock.Anything).Return(nil).Once()

	res, err := newReconciler(repo, registry(adapter)).ReconcileAccount(context.Background(), "acct")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Errors)
	assert.Equal(t, 1, res.Updated)
	require.Len(t, res.ErrorMessages, 1)
	assert.Contains(t, res.ErrorMessages[0], "campaign c1")
	assert.Contains(t, res.ErrorMessages[0], "deadlock")
}

type writeOnly struct{ port.PlatformAdapter }

// TestReconcilePlatformProblems ensures missing adapters and fetch failures are recorded per platform.
func TestReconcilePlatformProblems(t *testing.T) {
	failing := mock.New(mock.Config{Platform: domain.PlatformGoogle})
	failing.FailAll(&port.OperationError{Code: port.CodeUnauthorized, Message: "token expired"})
	noReader := mock.New(mock.Config{Platform: domain.PlatformReddit})

	reg := registry(failing)
	reg.Register(domain.PlatformReddit, writeOnly{noReader})

	tiktok := synced("t1", "pt", "active", t0, nil)
	tiktok.Platform = "tiktok"
	reddit := synced("r1", "pr", "active", t0, nil)
	reddit.Platform = domain.PlatformReddit

	repo := mocks.NewMockReverseSyncRepository(t)
	repo.EXPECT().GetSyncedCampaignsForAccount(testmock.Anything, "acct").Return([]domain.SyncedCampaign{
		synced("g1", "pg1", "active", t0, nil),
		tiktok,
		synced("g2", "pg2", "active", t0, nil),
		reddit,
	}, nil).Once()

	res, err := newReconciler(repo, reg).ReconcileAccount(context.Background(), "acct")
	require.NoError(t, err)
	assert.Equal(t, 4, res.Errors)
	assert.Equal(t, 4, res.Total())
	require.Len(t, res.ErrorMessages, 4)
	assert.Contains(t, res.ErrorMessages[0], "token expired")
	assert.Contains(t, res.ErrorMessages[2], "no adapter")
	assert.Contains(t, res.ErrorMessages[3], "cannot report")
	assert.Equal(t, 1, failing.CallCount(mock.OpFetchStatuses))
}

// TestReconcileCancelled ensures a cancelled context stops reconciliation.
func TestReconcileCancelled(t *testing.T) {
	repo := mocks.NewMockReverseSyncRepository(t)
	repo.EXPECT().GetSyncedCampaignsForAccount(testmock.Anything, "acct").
		Return([]domain.SyncedCampaign{synced("c1", "p1", "active", t0, nil)}, nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	adapter := mock.New(mock.Config{Platform: domain.PlatformGoogle})
	res, err := newReconciler(repo, registry(adapter)).ReconcileAccount(ctx, "acct")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Total())
	assert.Zero(t, adapter.CallCount(mock.OpFetchStatuses))
}

// TestReconcileLoadError ensures a store error while listing campaigns is returned.
func TestReconcileLoadError(t *testing.T) {
	repo := mocks.NewMockReverseSyncRepository(t)
	boom := errors.New("db down")
	repo.EXPECT().GetSyncedCampaignsForAccount(testmock.Anything, "acct").Return(nil, boom).Once()

	_, err := newReconciler(repo, registry()).ReconcileAccount(context.Background(), "acct")
	assert.ErrorIs(t, err, boom)
}

// TestSyncThenReconcile pushes a set through the mock platform, changes a
// status on the platform side and pulls it back.
func TestSyncThenReconcile(t *testing.T) {
	adapter := mock.New(mock.Config{Platform: domain.PlatformGoogle})

	var platformID string
	repo := mocks.NewMockCampaignSetRepository(t)
	repo.EXPECT().GetCampaignSetWithRelations(testmock.Anything, "s1").
		Return(newSet("s1", newCampaign("c1", domain.PlatformGoogle)), nil).Once()
	repo.EXPECT().UpdateCampaignPlatformID(testmock.Anything, "c1", testmock.Anything).
		Run(func(_ context.Context, _, pid string) { platformID = pid }).Return(nil)
	allowWrites(repo)

	_, err := NewSyncService(repo, registry(adapter), WithSyncLogger(discard)).SyncCampaignSet(context.Background(), "s1")
	require.NoError(t, err)
	require.NotEmpty(t, platformID)
	require.True(t, adapter.SetCampaignStatus(platformID, domain.StatusPaused))

	reverse := mocks.NewMockReverseSyncRepository(t)
	reverse.EXPECT().GetSyncedCampaignsForAccount(testmock.Anything, "acct").
		Return([]domain.SyncedCampaign{synced("c1", platformID, domain.StatusActive, t0, ptr(t0))}, nil).Once()
	reverse.EXPECT().UpdateCampaignFromPlatform(testmock.Anything, "c1", testmock.MatchedBy(func(u domain.PlatformCampaignUpdate) bool {
		return u.Status == domain.StatusPaused && u.PlatformID == platformID
	})).Return(nil).Once()

	res, err := newReconciler(reverse, registry(adapter)).ReconcileAccount(context.Background(), "acct")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
}

// TestReconcileRedditStatusVocabulary ensures statuses Reddit cannot hold
// (draft, pending are written as PAUSED) are not reported as platform
// changes, while a real change still is.
func TestReconcileRedditStatusVocabulary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/v3/ad_accounts/acct/campaigns" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []any{
			map[string]any{"id": "rc-draft", "name": "Draft", "configured_status": "PAUSED"},
			map[string]any{"id": "rc-pending", "name": "Pending", "configured_status": "PAUSED"},
			map[string]any{"id": "rc-paused", "name": "Paused on Reddit", "configured_status": "PAUSED"},
		}})
	}))
	defer srv.Close()

	adapter, err := reddit.New(reddit.Config{BaseURL: srv.URL, AccountID: "acct"}, reddit.StaticToken("tok"), nil, discard)
	require.NoError(t, err)

	onReddit := func(c domain.SyncedCampaign) domain.SyncedCampaign {
		c.Platform = domain.PlatformReddit
		return c
	}
	campaigns := []domain.SyncedCampaign{
		// edited locally after the sync: an unequal status would be a conflict
		onReddit(synced("draft", "rc-draft", domain.StatusDraft, t0.Add(time.Hour), ptr(t0))),
		onReddit(synced("pending", "rc-pending", domain.StatusPending, t0, ptr(t0))),
		onReddit(synced("paused", "rc-paused", domain.StatusActive, t0, ptr(t0))),
	}

	repo := mocks.NewMockReverseSyncRepository(t)
	repo.EXPECT().GetSyncedCampaignsForAccount(testmock.Anything, "acct").Return(campaigns, nil).Once()
	repo.EXPECT().UpdateCampaignFromPlatform(testmock.Anything, "paused", domain.PlatformCampaignUpdate{
		PlatformID: "rc-paused",
		Status:     domain.StatusPaused,
		Name:       "Paused on Reddit",
		SyncedAt:   fixedClock(),
	}).Return(nil).Once()

	res, err := newReconciler(repo, platform.NewRegistry(adapter)).ReconcileAccount(context.Background(), "acct")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Unchanged)
	assert.Equal(t, 1, res.Updated)
	assert.Zero(t, res.Conflicts)
	assert.Zero(t, res.Errors)
}
