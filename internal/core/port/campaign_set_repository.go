package port

import (
	"context"

	"campaign-sync/internal/core/domain"
)

// CampaignSetRepository is the persistence port used by the sync service. It
// is an outbound port in hexagonal architecture.
//
// The platform-id writes are intentionally individual calls: the sync service
// invokes them immediately after each successful platform write so that a
// crash never loses an id the platform already assigned. Implementations must
// make each of them durable on return and must not defer them into a larger
// transaction.
type CampaignSetRepository interface {
	// GetCampaignSetWithRelations returns the full tree of a campaign set in
	// one call, children in stored order. It returns nil when the set does
	// not exist.
	GetCampaignSetWithRelations(ctx context.Context, id string) (*domain.CampaignSet, error)
	// UpdateCampaignSetStatus sets the aggregate sync status of a set.
	UpdateCampaignSetStatus(ctx context.Context, id string, status domain.SetSyncStatus) error
	// UpdateCampaignSyncStatus sets the sync status of a single campaign.
	UpdateCampaignSyncStatus(ctx context.Context, id string, status domain.SyncStatus) error

	UpdateCampaignPlatformID(ctx context.Context, id, platformID string) error
	UpdateAdGroupPlatformID(ctx context.Context, id, platformID string) error
	UpdateAdPlatformID(ctx context.Context, id, platformID string) error
	UpdateKeywordPlatformID(ctx context.Context, id, platformID string) error
}

// ReverseSyncRepository is the persistence port used by the reconciler.
type ReverseSyncRepository interface {
	// GetSyncedCampaignsForAccount returns every campaign of the account that
	// has a platform campaign id.
	GetSyncedCampaignsForAccount(ctx context.Context, accountID string) ([]domain.SyncedCampaign, error)
	// MarkCampaignConflict records a conflict without touching local fields.
	MarkCampaignConflict(ctx context.Context, id string, conflict domain.SyncConflict) error
	// UpdateCampaignFromPlatform overwrites local fields with platform values
	// and stamps the campaign as synced.
	UpdateCampaignFromPlatform(ctx context.Context, id string, update domain.PlatformCampaignUpdate) error
	// MarkCampaignDeletedOnPlatform flags a campaign the platform no longer
	// returns.
	MarkCampaignDeletedOnPlatform(ctx context.Context, id string) error
}

// Store is implemented by the concrete repositories and bundles both ports.
type Store interface {
	CampaignSetRepository
	ReverseSyncRepository
}
