package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campaign-sync/internal/adapter/progress"
	"campaign-sync/internal/adapter/usecase"
	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/core/port/mocks"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.DiscardHandler)

type fixture struct {
	sync      *mocks.MockSyncUseCase
	validate  *mocks.MockValidationUseCase
	reconcile *mocks.MockReconcileUseCase
	jobs      *mocks.MockJobPublisher
}

func newFixture(t *testing.T) *fixture {
	return &fixture{
		sync:      mocks.NewMockSyncUseCase(t),
		validate:  mocks.NewMockValidationUseCase(t),
		reconcile: mocks.NewMockReconcileUseCase(t),
		jobs:      mocks.NewMockJobPublisher(t),
	}
}

func (f *fixture) handler() http.Handler {
	return NewHandler(Deps{
		Sync:      f.sync,
		Validate:  f.validate,
		Reconcile: f.reconcile,
		Jobs:      f.jobs,
		Metrics:   promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{}),
	}, quiet).Router()
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// TestSync ensures the sync route maps use case results and errors to responses.
func TestSync(t *testing.T) {
	partial := domain.SyncResult{CampaignSetID: "s1", Synced: 1, Skipped: 1}
	tests := []struct {
		name   string
		result domain.SyncResult
		err    error
		status int
	}{
		{name: "ok", result: domain.SyncResult{CampaignSetID: "s1", Synced: 2}, status: http.StatusOK},
		{name: "missing", err: port.NewCampaignSetNotFound("s1"), status: http.StatusNotFound},
		{name: "cancelled", result: partial, err: fmt.Errorf("%w: shutdown", usecase.ErrSyncCancelled), status: http.StatusServiceUnavailable},
		{name: "store down", err: errors.New("pool closed"), status: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.sync.EXPECT().SyncCampaignSet(mock.Anything, "s1").Return(tt.result, tt.err)

			rec := serve(f.handler(), http.MethodPost, "/api/v1/campaign-sets/s1/sync")
			require.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK || tt.status == http.StatusServiceUnavailable {
				assert.Equal(t, tt.result, decode[domain.SyncResult](t, rec))
			}
		})
	}
}

// TestValidation ensures the validation route reports every validation error.
func TestValidation(t *testing.T) {
	f := newFixture(t)
	problem := domain.ValidationError{
		EntityType: domain.EntityCampaign, EntityID: "c1", Field: "name", Code: domain.CodeRequiredField, Message: "name is required",
	}
	f.validate.EXPECT().ValidateCampaignSet(mock.Anything, "bad").Return([]domain.ValidationError{problem}, nil)
	f.validate.EXPECT().ValidateCampaignSet(mock.Anything, "good").Return(nil, nil)
	f.validate.EXPECT().ValidateCampaignSet(mock.Anything, "gone").Return(nil, port.NewCampaignSetNotFound("gone"))
	h := f.handler()

	rec := serve(h, http.MethodGet, "/api/v1/campaign-sets/bad/validation")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[validationResponse](t, rec)
	assert.False(t, got.Valid)
	assert.Equal(t, []domain.ValidationError{problem}, got.Errors)

	rec = serve(h, http.MethodGet, "/api/v1/campaign-sets/good/validation")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":true,"errors":[]}`, rec.Body.String())

	rec = serve(h, http.MethodGet, "/api/v1/campaign-sets/gone/validation")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestReconcile ensures the reconcile route returns the reconciliation result.
func TestReconcile(t *testing.T) {
	f := newFixture(t)
	want := domain.ReconcileResult{AccountID: "acct", Updated: 1, Conflicts: 1, Outcomes: []domain.CampaignReconciliation{
		{CampaignID: "c1", Outcome: domain.OutcomeUpdated},
		{CampaignID: "c2", Outcome: domain.OutcomeConflict, Field: "status", LocalStatus: "active", PlatformStatus: "paused"},
	}}
	f.reconcile.EXPECT().ReconcileAccount(mock.Anything, "acct").Return(want, nil)
	f.reconcile.EXPECT().ReconcileAccount(mock.Anything, "broken").Return(domain.ReconcileResult{}, errors.New("db"))
	h := f.handler()

	rec := serve(h, http.MethodPost, "/api/v1/accounts/acct/reconcile")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, decode[domain.ReconcileResult](t, rec))

	rec = serve(h, http.MethodPost, "/api/v1/accounts/broken/reconcile")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// TestEnqueue ensures job routes enqueue and answer with 202.
func TestEnqueue(t *testing.T) {
	f := newFixture(t)
	var published []port.Job
	f.jobs.EXPECT().Publish(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, job port.Job) error {
		published = append(published, job)
		return nil
	}).Twice()
	h := f.handler()

	rec := serve(h, http.MethodPost, "/api/v1/campaign-sets/s1/jobs")
	require.Equal(t, http.StatusAccepted, rec.Code)
	resp := decode[jobResponse](t, rec)

	rec = serve(h, http.MethodPost, "/api/v1/accounts/acct/jobs")
	require.Equal(t, http.StatusAccepted, rec.Code)

	require.Len(t, published, 2)
	assert.Equal(t, port.Job{ID: resp.JobID, Kind: port.JobSync, CampaignSetID: "s1", Attempt: 1}, published[0])
	assert.Equal(t, port.JobReconcile, published[1].Kind)
	assert.Equal(t, "acct", published[1].AccountID)
}

// TestEnqueueUnavailable ensures job routes answer 503 when no queue is configured.
func TestEnqueueUnavailable(t *testing.T) {
	f := newFixture(t)
	f.jobs.EXPECT().Publish(mock.Anything, mock.Anything).Return(errors.New("connection closed"))

	rec := serve(f.handler(), http.MethodPost, "/api/v1/campaign-sets/s1/jobs")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	noQueue := NewHandler(Deps{Sync: f.sync}, quiet).Router()
	rec = serve(noQueue, http.MethodPost, "/api/v1/campaign-sets/s1/jobs")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// TestHealthAndMetrics ensures the health and metrics routes are served.
func TestHealthAndMetrics(t *testing.T) {
	h := newFixture(t).handler()

	rec := serve(h, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = serve(h, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/progress")
	assert.Equal(t, http.StatusNotFound, rec.Code, "progress is not mounted without a hub")
}

// TestProgressRoute ensures the progress route upgrades to a websocket.
func TestProgressRoute(t *testing.T) {
	hub := progress.NewHub(4, quiet)
	defer hub.Close()
	srv := httptest.NewServer(NewHandler(Deps{Progress: hub}, quiet).Router())
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/api/v1/progress", nil)
	require.NoError(t, err)
	defer conn.CloseNow()
	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, time.Second, 5*time.Millisecond)

	hub.Report(ctx, domain.ProgressEvent{Type: domain.ProgressStarted, CampaignSetID: "s1", Total: 3})
	var got domain.ProgressEvent
	require.NoError(t, wsjson.Read(ctx, conn, &got))
	assert.Equal(t, 3, got.Total)
}
