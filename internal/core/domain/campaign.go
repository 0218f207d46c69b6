package domain

import (
	"encoding/json"
	"time"
)

// SyncStatus is the per-entity sync state stored next to each campaign.
type SyncStatus string

const (
	SyncStatusPending           SyncStatus = "pending"
	SyncStatusSyncing           SyncStatus = "syncing"
	SyncStatusSynced            SyncStatus = "synced"
	SyncStatusFailed            SyncStatus = "failed"
	SyncStatusConflict          SyncStatus = "conflict"
	SyncStatusDeletedOnPlatform SyncStatus = "deleted_on_platform"
)

// Local entity statuses.
const (
	StatusActive   = "active"
	StatusPaused   = "paused"
	StatusDraft    = "draft"
	StatusPending  = "pending"
	StatusArchived = "archived"
)

// BudgetType describes how a budget amount is spent.
type BudgetType string

const (
	BudgetDaily    BudgetType = "daily"
	BudgetLifetime BudgetType = "lifetime"
	// BudgetShared has no platform counterpart and is written as daily.
	BudgetShared BudgetType = "shared"
)

// Budget is an amount in major currency units (e.g. dollars). Conversion to a
// platform's minor units is the adapter's job.
type Budget struct {
	Type     BudgetType `json:"type"`
	Amount   float64    `json:"amount"`
	Currency string     `json:"currency,omitempty"`
}

// WireType returns the budget type as it should be written to a platform.
func (b Budget) WireType() BudgetType {
	if b.Type == BudgetShared {
		return BudgetDaily
	}
	return b.Type
}

// Campaign is the top level of the synced tree. PlatformCampaignID is empty
// until the platform has accepted the campaign; its presence alone decides
// whether the next sync creates or updates.
type Campaign struct {
	ID                 string
	CampaignSetID      string
	Name               string
	Platform           Platform
	OrderIndex         int
	Status             string
	SyncStatus         SyncStatus
	PlatformCampaignID string
	Objective          string
	Budget             *Budget
	Settings           CampaignSettings
	CreatedAt          time.Time
	UpdatedAt          time.Time
	// LastSyncedAt is nil when the campaign never completed a sync.
	LastSyncedAt *time.Time
	AdGroups     []AdGroup
}

// HasPlatformID reports whether the platform already knows this campaign.
func (c *Campaign) HasPlatformID() bool { return c.PlatformCampaignID != "" }

// CampaignSettings holds optional campaign-level settings.
type CampaignSettings struct {
	StartTime           ScheduleTime               `json:"startTime,omitempty"`
	EndTime             ScheduleTime               `json:"endTime,omitempty"`
	GoalType            string                     `json:"goalType,omitempty"`
	GoalValue           *float64                   `json:"goalValue,omitempty"`
	SpecialAdCategories []string                   `json:"specialAdCategories,omitempty"`
	Platform            map[string]json.RawMessage `json:"platform,omitempty"`
}

// DecodePlatformSettings decodes the advanced settings stored for platform
// into v. It returns false when nothing is stored for that platform.
func (s CampaignSettings) DecodePlatformSettings(platform Platform, v any) (bool, error) {
	return decodePlatformSettings(s.Platform, platform, v)
}

func decodePlatformSettings(m map[string]json.RawMessage, platform Platform, v any) (bool, error) {
	raw, ok := m[string(platform)]
	if !ok || len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, err
	}
	return true, nil
}
