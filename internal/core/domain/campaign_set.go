package domain

import "time"

// SetStatus is the lifecycle status of a campaign set.
type SetStatus string

const (
	SetStatusPending    SetStatus = "pending"
	SetStatusGenerating SetStatus = "generating"
	SetStatusDraft      SetStatus = "draft"
	SetStatusActive     SetStatus = "active"
	SetStatusArchived   SetStatus = "archived"
	SetStatusError      SetStatus = "error"
)

// SetSyncStatus is the aggregate sync status of a campaign set. It is
// recomputed at the end of every sync run from the SyncResult counts.
type SetSyncStatus string

const (
	SetSyncStatusPending        SetSyncStatus = "pending"
	SetSyncStatusSyncing        SetSyncStatus = "syncing"
	SetSyncStatusSuccess        SetSyncStatus = "success"
	SetSyncStatusPartialSuccess SetSyncStatus = "partial_success"
	SetSyncStatusError          SetSyncStatus = "error"
)

// CampaignSet is a named, user-owned unit of work: the generation config plus
// the campaign tree it produced. The tree is owned top-down; no entity has
// more than one parent.
type CampaignSet struct {
	ID          string
	UserID      string
	AdAccountID string
	Name        string
	Status      SetStatus
	SyncStatus  SetSyncStatus
	Config      GenerationConfig
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Campaigns   []Campaign
}

// GenerationConfig is the configuration a campaign set was generated from.
// The sync core treats it as opaque; it is carried so the tree can be
// persisted and displayed alongside its origin.
type GenerationConfig struct {
	DataSourceID        string            `json:"dataSourceId,omitempty"`
	Platforms           []Platform        `json:"platforms,omitempty"`
	CampaignNamePattern string            `json:"campaignNamePattern,omitempty"`
	AdGroupNamePattern  string            `json:"adGroupNamePattern,omitempty"`
	BudgetPattern       string            `json:"budgetPattern,omitempty"`
	Hierarchy           []string          `json:"hierarchy,omitempty"`
	Extra               map[string]string `json:"extra,omitempty"`
}

// AggregateSyncStatus derives the set-level status from a finished run:
// success when nothing failed, error when everything attempted failed and
// partial success otherwise.
func AggregateSyncStatus(r SyncResult) SetSyncStatus {
	switch {
	case r.Failed == 0:
		return SetSyncStatusSuccess
	case r.Synced == 0:
		return SetSyncStatusError
	default:
		return SetSyncStatusPartialSuccess
	}
}
