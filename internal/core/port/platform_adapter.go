package port

import (
	"context"

	"campaign-sync/internal/core/domain"
)

// Capabilities declares which operations an adapter really performs. An
// operation that is not supported is still callable and succeeds as a no-op.
type Capabilities struct {
	Keywords     bool
	AdGroupPause bool
	AdPause      bool
}

// CampaignOperations are the campaign-level platform calls.
type CampaignOperations interface {
	// CreateCampaign creates the campaign and returns its platform id.
	CreateCampaign(ctx context.Context, c domain.Campaign) (string, error)
	// UpdateCampaign updates an existing campaign and returns the platform id
	// to keep, normally platformID itself.
	UpdateCampaign(ctx context.Context, c domain.Campaign, platformID string) (string, error)
	DeleteCampaign(ctx context.Context, platformID string) error
	PauseCampaign(ctx context.Context, platformID string) error
	ResumeCampaign(ctx context.Context, platformID string) error
}

// AdGroupOperations are the ad-group-level platform calls. The parent id is
// the campaign's platform id.
type AdGroupOperations interface {
	CreateAdGroup(ctx context.Context, g domain.AdGroup, platformCampaignID string) (string, error)
	UpdateAdGroup(ctx context.Context, g domain.AdGroup, platformID string) (string, error)
	DeleteAdGroup(ctx context.Context, platformID string) error
	PauseAdGroup(ctx context.Context, platformID string) error
	ResumeAdGroup(ctx context.Context, platformID string) error
}

// AdOperations are the ad-level platform calls. The parent id is the ad
// group's platform id.
type AdOperations interface {
	CreateAd(ctx context.Context, a domain.Ad, platformAdGroupID string) (string, error)
	UpdateAd(ctx context.Context, a domain.Ad, platformID string) (string, error)
	DeleteAd(ctx context.Context, platformID string) error
	PauseAd(ctx context.Context, platformID string) error
	ResumeAd(ctx context.Context, platformID string) error
}

// KeywordOperations are the keyword-level platform calls. Platforms without
// keyword support return a pass-through id.
type KeywordOperations interface {
	CreateKeyword(ctx context.Context, k domain.Keyword, platformAdGroupID string) (string, error)
	UpdateKeyword(ctx context.Context, k domain.Keyword, platformID string) (string, error)
	DeleteKeyword(ctx context.Context, platformID string) error
}

// PlatformAdapter translates generic entities to one platform's wire format
// and performs the network calls. All unit conversion and truncation happens
// here, never in the sync service. Failures should be returned as
// *OperationError so callers can see retryability.
type PlatformAdapter interface {
	Platform() domain.Platform
	Capabilities() Capabilities

	CampaignOperations
	AdGroupOperations
	AdOperations
	KeywordOperations
}

// CampaignStatusReader is implemented by adapters that can report the
// current platform state of campaigns. Campaigns missing from the returned
// map no longer exist on the platform.
type CampaignStatusReader interface {
	FetchCampaignStatuses(ctx context.Context, platformIDs []string) (map[string]domain.PlatformCampaign, error)
}

// StatusComparer is implemented by adapters whose status vocabulary is
// coarser than the local one. EquivalentStatus reports whether the local
// status and the status read back from the platform mean the same platform
// state.
type StatusComparer interface {
	EquivalentStatus(local, platform string) bool
}

// AdapterRegistry resolves the adapter for a platform name. Unknown names are
// a normal condition.
type AdapterRegistry interface {
	Lookup(platform domain.Platform) (PlatformAdapter, bool)
}

// TokenProvider hands adapters an already valid access token. Refreshing and
// storing tokens is outside this module.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}
