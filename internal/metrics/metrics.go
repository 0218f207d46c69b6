// Package metrics holds the Prometheus collectors of the sync engine. A nil
// *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "campaign_sync"

// Label names.
const (
	LabelPlatform  = "platform"
	LabelOutcome   = "outcome"
	LabelEntity    = "entity"
	LabelOperation = "operation"
	LabelResult    = "result"
	LabelKind      = "kind"
	LabelDecision  = "decision"
)

// Result label values for entity operations.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics groups every collector.
type Metrics struct {
	Campaigns         *prometheus.CounterVec
	EntityOperations  *prometheus.CounterVec
	SyncDuration      prometheus.Histogram
	ReconcileOutcomes *prometheus.CounterVec
	Jobs              *prometheus.CounterVec
}

// New creates the collectors and registers them with reg when it is not nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Campaigns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "campaigns_total",
			Help:      "Campaigns processed by sync runs, by platform and outcome (synced, failed, skipped).",
		}, []string{LabelPlatform, LabelOutcome}),
		EntityOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entity_operations_total",
			Help:      "Platform adapter calls made during sync runs.",
		}, []string{LabelPlatform, LabelEntity, LabelOperation, LabelResult}),
		SyncDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "duration_seconds",
			Help:      "Wall time of complete campaign set sync runs.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 14),
		}),
		ReconcileOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_outcomes_total",
			Help:      "Reverse-sync verdicts by outcome.",
		}, []string{LabelOutcome}),
		Jobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_total",
			Help:      "Queued jobs handled by the worker, by kind and decision.",
		}, []string{LabelKind, LabelDecision}),
	}
	if reg != nil {
		reg.MustRegister(m.Campaigns, m.EntityOperations, m.SyncDuration, m.ReconcileOutcomes, m.Jobs)
	}
	return m
}

// CampaignProcessed counts one campaign outcome.
func (m *Metrics) CampaignProcessed(platform, outcome string) {
	if m == nil {
		return
	}
	m.Campaigns.WithLabelValues(platform, outcome).Inc()
}

// EntityOperation counts one adapter call.
func (m *Metrics) EntityOperation(platform, entity, operation string, err error) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	m.EntityOperations.WithLabelValues(platform, entity, operation, result).Inc()
}

// SyncFinished observes the duration of a sync run.
func (m *Metrics) SyncFinished(d time.Duration) {
	if m == nil {
		return
	}
	m.SyncDuration.Observe(d.Seconds())
}

// ReconcileOutcome counts one reconciliation verdict.
func (m *Metrics) ReconcileOutcome(outcome string) {
	if m == nil {
		return
	}
	m.ReconcileOutcomes.WithLabelValues(outcome).Inc()
}

// JobHandled counts one worker decision.
func (m *Metrics) JobHandled(kind, decision string) {
	if m == nil {
		return
	}
	m.Jobs.WithLabelValues(kind, decision).Inc()
}
