package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/multierr"
)

const (
	opCreate  = "create"
	opUpdate  = "update"
	opPersist = "persist"
)

// Campaign outcome labels.
const (
	outcomeSynced  = "synced"
	outcomeFailed  = "failed"
	outcomeSkipped = "skipped"
)

// campaignWalk carries the state of one campaign's subtree walk.
type campaignWalk struct {
	svc      *SyncService
	adapter  port.PlatformAdapter
	platform domain.Platform
	logger   *slog.Logger

	failures []domain.EntityError
	err      error
}

func (w *campaignWalk) fail(t domain.EntityType, id, op string, err error) {
	opErr := port.AsOperationError(err)
	w.failures = append(w.failures, domain.EntityError{
		EntityType: t,
		EntityID:   id,
		Operation:  op,
		Code:       opErr.Code,
		Message:    opErr.Error(),
		Retryable:  opErr.Retryable,
		RetryAfter: opErr.RetryAfter,
	})
	w.err = multierr.Append(w.err, fmt.Errorf("%s %s %s: %w", op, t, id, opErr))
	w.logger.Warn("entity sync failed",
		slog.String("entity", string(t)),
		slog.String("entity_id", id),
		slog.String("operation", op),
		slog.String("code", opErr.Code),
		slog.Bool("retryable", opErr.Retryable),
	)
}

// call runs one adapter operation under the per-call timeout.
func (w *campaignWalk) call(ctx context.Context, t domain.EntityType, op string, fn func(context.Context) (string, error)) (string, error) {
	if d := w.svc.adapterTimeout; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	id, err := fn(ctx)
	if err == nil && id == "" {
		err = &port.OperationError{Code: port.CodePlatformError, Message: "platform returned an empty id"}
	}
	w.svc.metrics.EntityOperation(string(w.platform), string(t), op, err)
	return id, err
}

// upsert creates or updates one entity and persists its platform id right
// away. It returns the platform id to use for the entity's children, which
// is empty when the entity does not exist on the platform.
func (w *campaignWalk) upsert(
	ctx context.Context,
	t domain.EntityType,
	id string,
	current string,
	create func(context.Context) (string, error),
	update func(context.Context, string) (string, error),
	persist func(context.Context, string, string) error,
) string {
	op := opCreate
	fn := create
	if current != "" {
		op = opUpdate
		fn = func(ctx context.Context) (string, error) { return update(ctx, current) }
	}
	platformID, err := w.call(ctx, t, op, fn)
	if err != nil {
		w.fail(t, id, op, err)
		return current
	}
	if err := persist(ctx, id, platformID); err != nil {
		w.fail(t, id, opPersist, &port.OperationError{
			Code:      domain.CodePersistFailed,
			Message:   fmt.Sprintf("persist platform id %s: %v", platformID, err),
			Retryable: true,
			Err:       err,
		})
	}
	return platformID
}

// syncCampaign walks one campaign subtree and records its outcome in result.
func (s *SyncService) syncCampaign(ctx context.Context, c *domain.Campaign, result *domain.SyncResult, logger *slog.Logger) {
	ctx, span := s.tracer.Start(ctx, "SyncCampaign", trace.WithAttributes(
		attribute.String("campaign.id", c.ID),
		attribute.String("campaign.platform", string(c.Platform)),
	))
	defer span.End()

	adapter, ok := s.adapters.Lookup(c.Platform)
	if !ok {
		result.Skipped++
		result.Errors = append(result.Errors, domain.SyncError{
			CampaignID: c.ID,
			Platform:   c.Platform,
			Code:       domain.CodeNoAdapterForPlatform,
			Message:    fmt.Sprintf("no adapter registered for platform %q", c.Platform),
		})
		s.metrics.CampaignProcessed(string(c.Platform), outcomeSkipped)
		span.SetAttributes(attribute.String("campaign.outcome", outcomeSkipped))
		logger.Info("campaign skipped: no adapter", slog.String("campaign_id", c.ID), slog.String("platform", string(c.Platform)))
		return
	}

	w := &campaignWalk{
		svc:      s,
		adapter:  adapter,
		platform: c.Platform,
		logger:   logger.With(slog.String("campaign_id", c.ID), slog.String("platform", string(c.Platform))),
	}

	c.PlatformCampaignID = w.upsert(ctx, domain.EntityCampaign, c.ID, c.PlatformCampaignID,
		func(ctx context.Context) (string, error) { return adapter.CreateCampaign(ctx, *c) },
		func(ctx context.Context, pid string) (string, error) { return adapter.UpdateCampaign(ctx, *c, pid) },
		s.repo.UpdateCampaignPlatformID,
	)
	campaignFailed := len(w.failures) > 0 && w.failures[0].Operation != opPersist

	// a failed create leaves no parent id; a failed update keeps the old one
	if c.PlatformCampaignID != "" {
		for i := range c.AdGroups {
			w.syncAdGroup(ctx, &c.AdGroups[i], c.PlatformCampaignID)
		}
	}

	if len(w.failures) == 0 {
		result.Synced++
		s.setCampaignStatus(ctx, c.ID, domain.SyncStatusSynced, w.logger)
		s.metrics.CampaignProcessed(string(c.Platform), outcomeSynced)
		span.SetAttributes(attribute.String("campaign.outcome", outcomeSynced))
		return
	}

	result.Failed++
	result.Errors = append(result.Errors, w.syncError(c, campaignFailed))
	s.setCampaignStatus(ctx, c.ID, domain.SyncStatusFailed, w.logger)
	s.metrics.CampaignProcessed(string(c.Platform), outcomeFailed)
	span.SetAttributes(attribute.String("campaign.outcome", outcomeFailed))
	span.RecordError(w.err)
	span.SetStatus(codes.Error, "campaign failed")
}

func (w *campaignWalk) syncAdGroup(ctx context.Context, g *domain.AdGroup, platformCampaignID string) {
	a := w.adapter
	g.PlatformAdGroupID = w.upsert(ctx, domain.EntityAdGroup, g.ID, g.PlatformAdGroupID,
		func(ctx context.Context) (string, error) { return a.CreateAdGroup(ctx, *g, platformCampaignID) },
		func(ctx context.Context, pid string) (string, error) { return a.UpdateAdGroup(ctx, *g, pid) },
		w.svc.repo.UpdateAdGroupPlatformID,
	)
	parent := g.PlatformAdGroupID
	if parent == "" {
		// children cannot be placed; the ad group failure is already recorded
		return
	}
	for i := range g.Ads {
		ad := &g.Ads[i]
		ad.PlatformAdID = w.upsert(ctx, domain.EntityAd, ad.ID, ad.PlatformAdID,
			func(ctx context.Context) (string, error) { return a.CreateAd(ctx, *ad, parent) },
			func(ctx context.Context, pid string) (string, error) { return a.UpdateAd(ctx, *ad, pid) },
			w.svc.repo.UpdateAdPlatformID,
		)
	}
	for i := range g.Keywords {
		k := &g.Keywords[i]
		k.PlatformKeywordID = w.upsert(ctx, domain.EntityKeyword, k.ID, k.PlatformKeywordID,
			func(ctx context.Context) (string, error) { return a.CreateKeyword(ctx, *k, parent) },
			func(ctx context.Context, pid string) (string, error) { return a.UpdateKeyword(ctx, *k, pid) },
			w.svc.repo.UpdateKeywordPlatformID,
		)
	}
}

// syncError folds every failure of the subtree into the campaign's entry.
func (w *campaignWalk) syncError(c *domain.Campaign, campaignFailed bool) domain.SyncError {
	se := domain.SyncError{
		CampaignID: c.ID,
		Platform:   c.Platform,
		Code:       domain.CodeChildSyncFailed,
		Message:    w.err.Error(),
		Details:    w.failures,
	}
	if campaignFailed {
		se.Code = w.failures[0].Code
	}
	var after time.Duration
	for _, f := range w.failures {
		if f.Retryable {
			se.Retryable = true
		}
		if f.RetryAfter > after {
			after = f.RetryAfter
		}
	}
	se.RetryAfter = after
	if n := len(multierr.Errors(w.err)); n > 1 {
		se.Message = fmt.Sprintf("%d operations failed: %s", n, se.Message)
	}
	return se
}

func (s *SyncService) setCampaignStatus(ctx context.Context, id string, status domain.SyncStatus, logger *slog.Logger) {
	if err := s.repo.UpdateCampaignSyncStatus(ctx, id, status); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("failed to update campaign sync status", slog.String("status", string(status)), slog.Any("error", err))
	}
}
