package port

import (
	"context"

	"campaign-sync/internal/core/domain"
)

// SyncUseCase pushes a campaign set to its target platforms. This interface
// is the primary port into the sync core.
type SyncUseCase interface {
	// SyncCampaignSet walks the set's tree and creates or updates every
	// entity on its platform. Partial failure is reported in the result, not
	// as an error; an error is returned only when the set cannot be synced at
	// all (for example it does not exist) or the run was cancelled.
	SyncCampaignSet(ctx context.Context, campaignSetID string) (domain.SyncResult, error)
}

// ReconcileUseCase pulls platform state back into the local store.
type ReconcileUseCase interface {
	// ReconcileAccount classifies every synced campaign of the account as
	// updated, conflict, unchanged, deleted or error.
	ReconcileAccount(ctx context.Context, accountID string) (domain.ReconcileResult, error)
}

// ValidationUseCase runs the pre-flight validators over a stored set.
type ValidationUseCase interface {
	ValidateCampaignSet(ctx context.Context, campaignSetID string) ([]domain.ValidationError, error)
}

// ProgressReporter receives progress events. Reporting is best-effort:
// implementations must not block the sync and cannot fail it.
type ProgressReporter interface {
	Report(ctx context.Context, event domain.ProgressEvent)
}

// JobKind distinguishes queued work.
type JobKind string

const (
	JobSync      JobKind = "sync"
	JobReconcile JobKind = "reconcile"
)

// Job is a unit of queued work for the worker.
type Job struct {
	ID            string  `json:"id"`
	Kind          JobKind `json:"kind"`
	CampaignSetID string  `json:"campaignSetId,omitempty"`
	AccountID     string  `json:"accountId,omitempty"`
	Attempt       int     `json:"attempt"`
}

// JobPublisher enqueues jobs for asynchronous processing.
type JobPublisher interface {
	Publish(ctx context.Context, job Job) error
}
