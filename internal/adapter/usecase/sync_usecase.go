package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ErrSyncCancelled is returned together with a partial result when the
// context is cancelled between two campaigns.
var ErrSyncCancelled = errors.New("sync cancelled")

const tracerName = "campaign-sync/usecase"

// SyncService pushes campaign sets to their platforms. It implements
// port.SyncUseCase.
//
// Callers must not run SyncCampaignSet concurrently for the same set id.
type SyncService struct {
	repo     port.CampaignSetRepository
	adapters port.AdapterRegistry

	reporter       port.ProgressReporter
	metrics        *metrics.Metrics
	tracer         trace.Tracer
	logger         *slog.Logger
	adapterTimeout time.Duration
	now            func() time.Time
}

// SyncOption configures a SyncService.
type SyncOption func(*SyncService)

// WithProgressReporter sets the progress side channel.
func WithProgressReporter(r port.ProgressReporter) SyncOption {
	return func(s *SyncService) { s.reporter = r }
}

// WithSyncMetrics sets the metrics collectors.
func WithSyncMetrics(m *metrics.Metrics) SyncOption {
	return func(s *SyncService) { s.metrics = m }
}

// WithSyncLogger sets the logger.
func WithSyncLogger(l *slog.Logger) SyncOption {
	return func(s *SyncService) { s.logger = l }
}

// WithAdapterTimeout bounds every single adapter call. Zero disables it.
func WithAdapterTimeout(d time.Duration) SyncOption {
	return func(s *SyncService) { s.adapterTimeout = d }
}

// WithSyncClock overrides the clock.
func WithSyncClock(now func() time.Time) SyncOption {
	return func(s *SyncService) { s.now = now }
}

// NewSyncService creates the sync orchestrator.
func NewSyncService(repo port.CampaignSetRepository, adapters port.AdapterRegistry, opts ...SyncOption) *SyncService {
	s := &SyncService{
		repo:           repo,
		adapters:       adapters,
		reporter:       nopReporter{},
		tracer:         otel.Tracer(tracerName),
		logger:         slog.Default(),
		adapterTimeout: 30 * time.Second,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type nopReporter struct{}

func (nopReporter) Report(context.Context, domain.ProgressEvent) {}

// SyncCampaignSet loads the set's tree once and creates or updates every
// entity on its platform, campaign by campaign. Each platform id is
// persisted as soon as the platform returns it, so a rerun after a crash
// updates what was already created instead of creating it twice.
//
// Partial failure is reported in the result. An error is returned only when
// the set cannot be loaded or does not exist, or when ctx was cancelled; in
// the latter case the result covers the campaigns processed so far.
func (s *SyncService) SyncCampaignSet(ctx context.Context, campaignSetID string) (domain.SyncResult, error) {
	ctx, span := s.tracer.Start(ctx, "SyncCampaignSet",
		trace.WithAttributes(attribute.String("campaign_set.id", campaignSetID)))
	defer span.End()

	start := s.now()
	logger := s.logger.With(slog.String("campaign_set_id", campaignSetID))

	set, err := s.repo.GetCampaignSetWithRelations(ctx, campaignSetID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return domain.SyncResult{}, fmt.Errorf("load campaign set %s: %w", campaignSetID, err)
	}
	if set == nil {
		err = port.NewCampaignSetNotFound(campaignSetID)
		span.RecordError(err)
		span.SetStatus(codes.Error, "not found")
		return domain.SyncResult{}, err
	}

	// bookkeeping must land even when the caller gives up
	bookCtx := context.WithoutCancel(ctx)

	result := domain.SyncResult{CampaignSetID: campaignSetID, Errors: []domain.SyncError{}}
	total := len(set.Campaigns)

	if err := s.repo.UpdateCampaignSetStatus(ctx, campaignSetID, domain.SetSyncStatusSyncing); err != nil {
		logger.Warn("failed to mark campaign set as syncing", slog.Any("error", err))
	}
	s.report(ctx, domain.ProgressEvent{Type: domain.ProgressStarted, CampaignSetID: campaignSetID, Total: total})

	var cancelErr error
	for i := range set.Campaigns {
		if err := ctx.Err(); err != nil {
			cancelErr = err
			break
		}
		c := &set.Campaigns[i]
		// a started campaign runs to completion; only per-call timeouts apply
		s.syncCampaign(context.WithoutCancel(ctx), c, &result, logger)

		s.report(ctx, domain.ProgressEvent{
			Type:          domain.ProgressProgress,
			CampaignSetID: campaignSetID,
			CampaignID:    c.ID,
			Processed:     i + 1,
			Failed:        result.Failed,
			Total:         total,
		})
	}

	s.persistPlatformIDs(bookCtx, set, logger)

	status := domain.AggregateSyncStatus(result)
	if err := s.repo.UpdateCampaignSetStatus(bookCtx, campaignSetID, status); err != nil {
		logger.Error("failed to update campaign set status", slog.String("status", string(status)), slog.Any("error", err))
	}

	took := s.now().Sub(start)
	s.metrics.SyncFinished(took)
	span.SetAttributes(
		attribute.Int("sync.synced", result.Synced),
		attribute.Int("sync.failed", result.Failed),
		attribute.Int("sync.skipped", result.Skipped),
		attribute.String("sync.status", string(status)),
	)

	if cancelErr != nil {
		err := fmt.Errorf("%w after %d of %d campaigns: %w", ErrSyncCancelled, result.Total(), total, cancelErr)
		span.RecordError(err)
		span.SetStatus(codes.Error, "cancelled")
		logger.Warn("campaign set sync cancelled",
			slog.Int("processed", result.Total()), slog.Int("total", total))
		s.report(bookCtx, domain.ProgressEvent{
			Type:          domain.ProgressError,
			CampaignSetID: campaignSetID,
			Processed:     result.Total(),
			Failed:        result.Failed,
			Total:         total,
			Message:       err.Error(),
		})
		return result, err
	}

	logger.Info("campaign set synced",
		slog.Int("synced", result.Synced),
		slog.Int("failed", result.Failed),
		slog.Int("skipped", result.Skipped),
		slog.String("status", string(status)),
		slog.Duration("took", took),
	)
	s.report(bookCtx, domain.ProgressEvent{
		Type:          domain.ProgressCompleted,
		CampaignSetID: campaignSetID,
		Processed:     result.Total(),
		Failed:        result.Failed,
		Total:         total,
	})
	return result, nil
}

func (s *SyncService) report(ctx context.Context, e domain.ProgressEvent) {
	if e.At.IsZero() {
		e.At = s.now()
	}
	s.reporter.Report(ctx, e)
}

// persistPlatformIDs writes every known platform id a second time. It
// covers ids an adapter assigned without the walk noticing, and immediate
// writes that failed. Failures here are only logged.
func (s *SyncService) persistPlatformIDs(ctx context.Context, set *domain.CampaignSet, logger *slog.Logger) {
	var failed int
	persist := func(fn func(context.Context, string, string) error, id, platformID string) {
		if platformID == "" {
			return
		}
		if err := fn(ctx, id, platformID); err != nil {
			failed++
			logger.Warn("safety-net platform id write failed", slog.String("entity_id", id), slog.Any("error", err))
		}
	}
	for _, c := range set.Campaigns {
		persist(s.repo.UpdateCampaignPlatformID, c.ID, c.PlatformCampaignID)
		for _, g := range c.AdGroups {
			persist(s.repo.UpdateAdGroupPlatformID, g.ID, g.PlatformAdGroupID)
			for _, a := range g.Ads {
				persist(s.repo.UpdateAdPlatformID, a.ID, a.PlatformAdID)
			}
			for _, k := range g.Keywords {
				persist(s.repo.UpdateKeywordPlatformID, k.ID, k.PlatformKeywordID)
			}
		}
	}
	if failed > 0 {
		logger.Warn("safety-net persistence incomplete", slog.Int("failed", failed))
	}
}
