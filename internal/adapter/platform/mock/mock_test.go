package mock

import (
	"context"
	"errors"
	"testing"
	"time"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateAndUpdateTrackState ensures created and updated entities are recorded by the mock adapter.
func TestCreateAndUpdateTrackState(t *testing.T) {
	ctx := context.Background()
	a := New(Config{Platform: domain.PlatformGoogle})

	id, err := a.CreateCampaign(ctx, domain.Campaign{ID: "c1", Name: "One", Status: domain.StatusActive})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	gid, err := a.CreateAdGroup(ctx, domain.AdGroup{ID: "g1", Name: "G"}, id)
	require.NoError(t, err)
	assert.Equal(t, id, a.ParentOf(domain.EntityAdGroup, gid))

	same, err := a.UpdateCampaign(ctx, domain.Campaign{ID: "c1", Name: "One v2", Status: domain.StatusPaused}, id)
	require.NoError(t, err)
	assert.Equal(t, id, same)

	st, ok := a.CampaignStatus(id)
	require.True(t, ok)
	assert.Equal(t, domain.StatusPaused, st)
	assert.Equal(t, 1, a.Count(domain.EntityCampaign))
	assert.Equal(t, 1, a.CallCount(OpCreateCampaign))
	assert.Equal(t, 1, a.CallCount(OpUpdateCampaign))
}

// TestDeterministicIDs ensures platform ids are derived from local ids.
func TestDeterministicIDs(t *testing.T) {
	ctx := context.Background()
	a := New(Config{Platform: domain.PlatformGoogle, Deterministic: true})
	b := New(Config{Platform: domain.PlatformGoogle, Deterministic: true})

	id1, err := a.CreateAd(ctx, domain.Ad{ID: "ad-1"}, "g")
	require.NoError(t, err)
	id2, err := b.CreateAd(ctx, domain.Ad{ID: "ad-1"}, "g")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	other, err := b.CreateAd(ctx, domain.Ad{ID: "ad-2"}, "g")
	require.NoError(t, err)
	assert.NotEqual(t, id1, other)
}

// TestForcedFailure ensures a forced failure is returned for the configured operation.
func TestForcedFailure(t *testing.T) {
	ctx := context.Background()
	a := New(Config{Platform: domain.PlatformGoogle})
	a.RateLimitOn("c1", 30*time.Second)

	_, err := a.CreateCampaign(ctx, domain.Campaign{ID: "c1"})
	var opErr *port.OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, port.CodeRateLimited, opErr.Code)
	assert.True(t, opErr.Retryable)
	assert.Equal(t, 30*time.Second, opErr.RetryAfter)
	assert.Zero(t, a.Count(domain.EntityCampaign))

	_, err = a.CreateCampaign(ctx, domain.Campaign{ID: "c2"})
	assert.NoError(t, err)
}

// TestSeededFailureRateIsReproducible ensures the same seed yields the same failure sequence.
func TestSeededFailureRateIsReproducible(t *testing.T) {
	run := func() []bool {
		a := New(Config{Platform: domain.PlatformGoogle, FailureRate: 0.3, Seed: 42})
		out := make([]bool, 50)
		for i := range out {
			_, err := a.CreateCampaign(context.Background(), domain.Campaign{ID: "c"})
			out[i] = err != nil
		}
		return out
	}
	first := run()
	assert.Equal(t, first, run())
	assert.Contains(t, first, true)
	assert.Contains(t, first, false)
}

// TestNoKeywordsPassThrough ensures keyword calls echo the local id when keywords are unsupported.
func TestNoKeywordsPassThrough(t *testing.T) {
	ctx := context.Background()
	a := New(Config{Platform: domain.PlatformReddit, NoKeywords: true})
	assert.False(t, a.Capabilities().Keywords)

	id, err := a.CreateKeyword(ctx, domain.Keyword{ID: "k1", Text: "shoes"}, "pg")
	require.NoError(t, err)
	assert.Equal(t, "k1", id)

	id, err = a.UpdateKeyword(ctx, domain.Keyword{ID: "k1"}, "pk-1")
	require.NoError(t, err)
	assert.Equal(t, "pk-1", id)
	assert.Zero(t, a.Count(domain.EntityKeyword))
}

// TestPauseDeleteAndStatuses ensures pause and delete are reflected in fetched statuses.
func TestPauseDeleteAndStatuses(t *testing.T) {
	ctx := context.Background()
	a := New(Config{Platform: domain.PlatformGoogle})

	id, err := a.CreateCampaign(ctx, domain.Campaign{ID: "c1", Status: domain.StatusActive})
	require.NoError(t, err)
	require.NoError(t, a.PauseCampaign(ctx, id))

	got, err := a.FetchCampaignStatuses(ctx, []string{id, "missing"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.StatusPaused, got[id].Status)

	require.NoError(t, a.DeleteCampaign(ctx, id))
	err = a.ResumeCampaign(ctx, id)
	var opErr *port.OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, port.CodeNotFound, opErr.Code)
}

// TestLatencyHonoursContext ensures simulated latency stops when the context is cancelled.
func TestLatencyHonoursContext(t *testing.T) {
	a := New(Config{Platform: domain.PlatformGoogle, Latency: time.Second})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := a.CreateCampaign(ctx, domain.Campaign{ID: "c1"})
	var opErr *port.OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, port.CodeTimeout, opErr.Code)
	assert.True(t, opErr.Retryable)
}

// TestOnCallHook ensures the call hook observes every operation in order.
func TestOnCallHook(t *testing.T) {
	a := New(Config{Platform: domain.PlatformGoogle})
	var ops []string
	a.OnCall(func(c Call) { ops = append(ops, c.Op) })

	id, _ := a.CreateCampaign(context.Background(), domain.Campaign{ID: "c1"})
	_, _ = a.CreateAdGroup(context.Background(), domain.AdGroup{ID: "g1"}, id)

	assert.Equal(t, []string{OpCreateCampaign, OpCreateAdGroup}, ops)
	assert.Len(t, a.Calls(), 2)
}
