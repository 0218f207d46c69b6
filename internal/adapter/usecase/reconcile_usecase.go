package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// FieldStatus is the only field reconciliation compares today.
const FieldStatus = "status"

// Reconciler pulls campaign state from the platforms and reconciles it with
// the local store. It implements port.ReconcileUseCase.
//
// Authority rule: a campaign's LastSyncedAt is the reference point. When the
// platform status differs, local wins (conflict) only if the campaign was
// really synced before and changed locally after that sync. Otherwise the
// platform value is written locally.
type Reconciler struct {
	repo     port.ReverseSyncRepository
	adapters port.AdapterRegistry

	metrics      *metrics.Metrics
	tracer       trace.Tracer
	logger       *slog.Logger
	fetchTimeout time.Duration
	now          func() time.Time
}

// ReconcileOption configures a Reconciler.
type ReconcileOption func(*Reconciler)

// WithReconcileMetrics sets the metrics collectors.
func WithReconcileMetrics(m *metrics.Metrics) ReconcileOption {
	return func(r *Reconciler) { r.metrics = m }
}

// WithReconcileLogger sets the logger.
func WithReconcileLogger(l *slog.Logger) ReconcileOption {
	return func(r *Reconciler) { r.logger = l }
}

// WithFetchTimeout bounds each platform status fetch.
func WithFetchTimeout(d time.Duration) ReconcileOption {
	return func(r *Reconciler) { r.fetchTimeout = d }
}

// WithReconcileClock overrides the clock.
func WithReconcileClock(now func() time.Time) ReconcileOption {
	return func(r *Reconciler) { r.now = now }
}

// NewReconciler creates a Reconciler.
func NewReconciler(repo port.ReverseSyncRepository, adapters port.AdapterRegistry, opts ...ReconcileOption) *Reconciler {
	r := &Reconciler{
		repo:         repo,
		adapters:     adapters,
		tracer:       otel.Tracer(tracerName),
		logger:       slog.Default(),
		fetchTimeout: time.Minute,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReconcileAccount classifies every synced campaign of the account. A
// failure for one campaign is recorded and the rest are still processed;
// an error is returned only when the campaign list cannot be loaded or ctx
// is cancelled.
func (r *Reconciler) ReconcileAccount(ctx context.Context, accountID string) (domain.ReconcileResult, error) {
	ctx, span := r.tracer.Start(ctx, "ReconcileAccount",
		trace.WithAttributes(attribute.String("account.id", accountID)))
	defer span.End()

	campaigns, err := r.repo.GetSyncedCampaignsForAccount(ctx, accountID)
	if err != nil {
		span.RecordError(err)
		return domain.ReconcileResult{}, fmt.Errorf("load synced campaigns for account %s: %w", accountID, err)
	}

	result := domain.ReconcileResult{
		AccountID:     accountID,
		ErrorMessages: []string{},
		Outcomes:      make([]domain.CampaignReconciliation, 0, len(campaigns)),
	}
	logger := r.logger.With(slog.String("account_id", accountID))

	var order []domain.Platform
	byPlatform := make(map[domain.Platform][]domain.SyncedCampaign)
	for _, c := range campaigns {
		p := domain.NormalizePlatform(string(c.Platform))
		if _, ok := byPlatform[p]; !ok {
			order = append(order, p)
		}
		byPlatform[p] = append(byPlatform[p], c)
	}

	for _, p := range order {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			return result, fmt.Errorf("reconcile account %s: %w", accountID, err)
		}
		r.reconcilePlatform(ctx, p, byPlatform[p], &result, logger)
	}

	span.SetAttributes(
		attribute.Int("reconcile.updated", result.Updated),
		attribute.Int("reconcile.conflicts", result.Conflicts),
		attribute.Int("reconcile.unchanged", result.Unchanged),
		attribute.Int("reconcile.deleted", result.Deleted),
		attribute.Int("reconcile.errors", result.Errors),
	)
	logger.Info("account reconciled",
		slog.Int("updated", result.Updated),
		slog.Int("conflicts", result.Conflicts),
		slog.Int("unchanged", result.Unchanged),
		slog.Int("deleted", result.Deleted),
		slog.Int("errors", result.Errors),
	)
	return result, nil
}

func (r *Reconciler) reconcilePlatform(ctx context.Context, p domain.Platform, campaigns []domain.SyncedCampaign, result *domain.ReconcileResult, logger *slog.Logger) {
	adapter, ok := r.adapters.Lookup(p)
	if !ok {
		for _, c := range campaigns {
			r.recordError(result, c, fmt.Errorf("no adapter registered for platform %q", p))
		}
		return
	}
	reader, ok := adapter.(port.CampaignStatusReader)
	if !ok {
		for _, c := range campaigns {
			r.recordError(result, c, fmt.Errorf("platform %q cannot report campaign status", p))
		}
		return
	}

	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.PlatformCampaignID)
	}
	fetchCtx, cancel := context.WithTimeout(ctx, r.fetchTimeout)
	statuses, err := reader.FetchCampaignStatuses(fetchCtx, ids)
	cancel()
	if err != nil {
		logger.Warn("fetch campaign statuses failed", slog.String("platform", string(p)), slog.Any("error", err))
		for _, c := range campaigns {
			r.recordError(result, c, fmt.Errorf("fetch status from %s: %w", p, err))
		}
		return
	}

	same := strings.EqualFold
	if cmp, ok := adapter.(port.StatusComparer); ok {
		same = cmp.EquivalentStatus
	}
	for _, c := range campaigns {
		r.reconcileCampaign(ctx, c, statuses, same, result)
	}
}

// reconcileCampaign classifies one campaign. same decides whether the local
// and platform statuses agree.
func (r *Reconciler) reconcileCampaign(ctx context.Context, c domain.SyncedCampaign, statuses map[string]domain.PlatformCampaign, same func(local, platform string) bool, result *domain.ReconcileResult) {
	pc, found := statuses[c.PlatformCampaignID]
	switch {
	case !found:
		if err := r.repo.MarkCampaignDeletedOnPlatform(ctx, c.ID); err != nil {
			r.recordError(result, c, fmt.Errorf("mark deleted: %w", err))
			return
		}
		result.Deleted++
		r.record(result, domain.CampaignReconciliation{CampaignID: c.ID, Outcome: domain.OutcomeDeleted, LocalStatus: c.Status})

	case pc.Status == "" || same(c.Status, pc.Status):
		result.Unchanged++
		r.record(result, domain.CampaignReconciliation{CampaignID: c.ID, Outcome: domain.OutcomeUnchanged, LocalStatus: c.Status})

	case !c.NeverSynced() && c.UpdatedAt.After(*c.LastSyncedAt):
		conflict := domain.SyncConflict{
			Field:          FieldStatus,
			LocalStatus:    c.Status,
			PlatformStatus: pc.Status,
			DetectedAt:     r.now(),
		}
		if err := r.repo.MarkCampaignConflict(ctx, c.ID, conflict); err != nil {
			r.recordError(result, c, fmt.Errorf("mark conflict: %w", err))
			return
		}
		result.Conflicts++
		r.record(result, domain.CampaignReconciliation{
			CampaignID:     c.ID,
			Outcome:        domain.OutcomeConflict,
			Field:          FieldStatus,
			LocalStatus:    c.Status,
			PlatformStatus: pc.Status,
		})

	default:
		update := domain.PlatformCampaignUpdate{
			PlatformID: pc.PlatformID,
			Status:     pc.Status,
			Name:       pc.Name,
			SyncedAt:   r.now(),
		}
		if update.PlatformID == "" {
			update.PlatformID = c.PlatformCampaignID
		}
		if err := r.repo.UpdateCampaignFromPlatform(ctx, c.ID, update); err != nil {
			r.recordError(result, c, fmt.Errorf("update from platform: %w", err))
			return
		}
		result.Updated++
		r.record(result, domain.CampaignReconciliation{
			CampaignID:     c.ID,
			Outcome:        domain.OutcomeUpdated,
			Field:          FieldStatus,
			LocalStatus:    c.Status,
			PlatformStatus: pc.Status,
		})
	}
}

func (r *Reconciler) record(result *domain.ReconcileResult, o domain.CampaignReconciliation) {
	result.Outcomes = append(result.Outcomes, o)
	r.metrics.ReconcileOutcome(string(o.Outcome))
}

func (r *Reconciler) recordError(result *domain.ReconcileResult, c domain.SyncedCampaign, err error) {
	msg := fmt.Sprintf("campaign %s: %v", c.ID, err)
	result.Errors++
	result.ErrorMessages = append(result.ErrorMessages, msg)
	r.record(result, domain.CampaignReconciliation{CampaignID: c.ID, Outcome: domain.OutcomeError, Error: err.Error()})
	r.logger.Warn("reconcile failed", slog.String("campaign_id", c.ID), slog.Any("error", err))
}
