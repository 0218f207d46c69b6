package queue

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"campaign-sync/internal/core/backoff"
	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/core/port/mocks"
	"campaign-sync/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// TestMain checks the package for leaked goroutines.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var quiet = slog.New(slog.DiscardHandler)

// no jitter: delays are base*2^(attempt-1)
var fixedBackoff = backoff.Config{BaseDelay: time.Second, MaxDelay: time.Minute, Jitter: -1}

func retryable(after time.Duration) domain.SyncResult {
	return domain.SyncResult{
		CampaignSetID: "s1",
		Synced:        1,
		Failed:        1,
		Errors: []domain.SyncError{{
			CampaignID: "c1", Code: "RATE_LIMITED", Retryable: true, RetryAfter: after,
		}},
	}
}

// TestProcessorSync ensures sync jobs are acked, retried or dropped by outcome.
func TestProcessorSync(t *testing.T) {
	tests := []struct {
		name    string
		attempt int
		result  domain.SyncResult
		err     error
		want    Action
		delay   time.Duration
	}{
		{
			name:   "clean run is acked",
			result: domain.SyncResult{CampaignSetID: "s1", Synced: 2},
			want:   ActionAck,
		},
		{
			name: "permanent failures are acked",
			result: domain.SyncResult{CampaignSetID: "s1", Failed: 1, Errors: []domain.SyncError{
				{CampaignID: "c1", Code: "INVALID_ENTITY"},
			}},
			want: ActionAck,
		},
		{
			name:    "retryable failure uses backoff",
			attempt: 3,
			result:  retryable(0),
			want:    ActionRetry,
			delay:   4 * time.Second,
		},
		{
			name:    "retry-after wins when larger",
			attempt: 1,
			result:  retryable(45 * time.Second),
			want:    ActionRetry,
			delay:   45 * time.Second,
		},
		{
			name:    "last attempt drops",
			attempt: 5,
			result:  retryable(0),
			want:    ActionDrop,
		},
		{
			name: "missing set drops",
			err:  port.NewCampaignSetNotFound("s1"),
			want: ActionDrop,
		},
		{
			name:  "store error retries",
			err:   errors.New("connection reset"),
			want:  ActionRetry,
			delay: time.Second,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			syncUC := mocks.NewMockSyncUseCase(t)
			syncUC.EXPECT().SyncCampaignSet(mock.Anything, "s1").Return(tt.result, tt.err)

			p := NewProcessor(syncUC, mocks.NewMockReconcileUseCase(t),
				WithBackoff(fixedBackoff), WithMaxAttempts(5), WithProcessorLogger(quiet))
			d := p.Process(context.Background(), port.Job{ID: "j1", Kind: port.JobSync, CampaignSetID: "s1", Attempt: tt.attempt})

			assert.Equal(t, tt.want, d.Action)
			assert.Equal(t, tt.delay, d.Delay)
			if tt.want == ActionAck {
				assert.NoError(t, d.Err)
			} else {
				assert.Error(t, d.Err)
			}
		})
	}
}

// TestProcessorExhaustedKeepsCause ensures an exhausted job keeps its last error.
func TestProcessorExhaustedKeepsCause(t *testing.T) {
	syncUC := mocks.NewMockSyncUseCase(t)
	cause := errors.New("boom")
	syncUC.EXPECT().SyncCampaignSet(mock.Anything, "s1").Return(domain.SyncResult{}, cause)

	p := NewProcessor(syncUC, nil, WithMaxAttempts(2), WithProcessorLogger(quiet))
	d := p.Process(context.Background(), port.Job{Kind: port.JobSync, CampaignSetID: "s1", Attempt: 2})

	require.Equal(t, ActionDrop, d.Action)
	var exhausted *ExhaustedError
	require.ErrorAs(t, d.Err, &exhausted)
	assert.Equal(t, 2, exhausted.Attempts)
	assert.ErrorIs(t, d.Err, cause)
}

// TestProcessorReconcile ensures reconcile jobs are retried only on error.
func TestProcessorReconcile(t *testing.T) {
	reconcileUC := mocks.NewMockReconcileUseCase(t)
	reconcileUC.EXPECT().ReconcileAccount(mock.Anything, "acct").
		Return(domain.ReconcileResult{AccountID: "acct"}, nil).Once()
	reconcileUC.EXPECT().ReconcileAccount(mock.Anything, "acct").
		Return(domain.ReconcileResult{}, errors.New("store down")).Once()

	p := NewProcessor(nil, reconcileUC, WithBackoff(fixedBackoff), WithProcessorLogger(quiet))
	job := port.Job{Kind: port.JobReconcile, AccountID: "acct"}

	assert.Equal(t, ActionAck, p.Process(context.Background(), job).Action)
	d := p.Process(context.Background(), job)
	assert.Equal(t, ActionRetry, d.Action)
	assert.Equal(t, time.Second, d.Delay)
}

// TestProcessorInvalidJobs ensures malformed jobs are dropped.
func TestProcessorInvalidJobs(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	p := NewProcessor(nil, nil, WithProcessorMetrics(m), WithProcessorLogger(quiet))

	for _, job := range []port.Job{
		{Kind: "export"},
		{Kind: port.JobSync},
		{Kind: port.JobReconcile},
	} {
		d := p.Process(context.Background(), job)
		assert.Equal(t, ActionDrop, d.Action)
		assert.ErrorIs(t, d.Err, ErrInvalidJob)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Jobs.WithLabelValues("sync", "drop")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Jobs.WithLabelValues("export", "drop")))
}
