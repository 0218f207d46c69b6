package metrics

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCounters ensures the collectors count campaign and entity outcomes by label.
func TestCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.CampaignProcessed("reddit", "synced")
	m.CampaignProcessed("reddit", "synced")
	m.CampaignProcessed("google", "failed")
	m.EntityOperation("reddit", "campaign", "create", nil)
	m.EntityOperation("reddit", "campaign", "create", errors.New("x"))
	m.ReconcileOutcome("conflict")
	m.JobHandled("sync", "retry")
	m.SyncFinished(1500 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Campaigns.WithLabelValues("reddit", "synced")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Campaigns.WithLabelValues("google", "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntityOperations.WithLabelValues("reddit", "campaign", "create", ResultFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReconcileOutcomes.WithLabelValues("conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Jobs.WithLabelValues("sync", "retry")))

	expected := `
# HELP campaign_sync_reconcile_outcomes_total Reverse-sync verdicts by outcome.
# TYPE campaign_sync_reconcile_outcomes_total counter
campaign_sync_reconcile_outcomes_total{outcome="conflict"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "campaign_sync_reconcile_outcomes_total"))

	n, err := testutil.GatherAndCount(reg, "campaign_sync_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

// TestNilMetricsIsNoop ensures a nil Metrics can be called safely.
func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.CampaignProcessed("reddit", "synced")
		m.EntityOperation("reddit", "ad", "update", nil)
		m.SyncFinished(time.Second)
		m.ReconcileOutcome("updated")
		m.JobHandled("sync", "ack")
	})
}
