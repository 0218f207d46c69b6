package progress

import (
	"context"
	"log/slog"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

// LogReporter writes progress events to a logger. Per-campaign progress is
// logged at debug level, the rest at info.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter returns a LogReporter.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report implements port.ProgressReporter.
func (r *LogReporter) Report(ctx context.Context, e domain.ProgressEvent) {
	level := slog.LevelInfo
	switch e.Type {
	case domain.ProgressProgress:
		level = slog.LevelDebug
	case domain.ProgressError:
		level = slog.LevelWarn
	}
	r.logger.LogAttrs(ctx, level, "sync progress",
		slog.String("event", string(e.Type)),
		slog.String("campaign_set_id", e.CampaignSetID),
		slog.String("campaign_id", e.CampaignID),
		slog.Int("processed", e.Processed),
		slog.Int("failed", e.Failed),
		slog.Int("total", e.Total),
	)
}

// Multi reports every event to each reporter in order.
type Multi []port.ProgressReporter

// Report implements port.ProgressReporter.
func (m Multi) Report(ctx context.Context, e domain.ProgressEvent) {
	for _, r := range m {
		r.Report(ctx, e)
	}
}
