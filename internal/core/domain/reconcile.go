package domain

import "time"

// ReconcileOutcome is the verdict for one campaign in a reverse sync.
type ReconcileOutcome string

const (
	OutcomeUpdated   ReconcileOutcome = "updated"
	OutcomeConflict  ReconcileOutcome = "conflict"
	OutcomeUnchanged ReconcileOutcome = "unchanged"
	OutcomeDeleted   ReconcileOutcome = "deleted"
	OutcomeError     ReconcileOutcome = "error"
)

// SyncedCampaign is a locally stored campaign that has a platform id.
type SyncedCampaign struct {
	ID                 string
	Platform           Platform
	PlatformCampaignID string
	Name               string
	Status             string
	UpdatedAt          time.Time
	// LastSyncedAt is nil when the campaign never completed a sync.
	LastSyncedAt *time.Time
}

// NeverSynced reports whether the campaign has local data but no completed
// sync. Stores that cannot hold NULL use the Unix epoch for this, so both
// nil and the epoch count.
func (c SyncedCampaign) NeverSynced() bool {
	return c.LastSyncedAt == nil || c.LastSyncedAt.IsZero() || c.LastSyncedAt.Unix() == 0
}

// PlatformCampaign is the platform's current view of a campaign.
type PlatformCampaign struct {
	PlatformID string
	Name       string
	Status     string
	UpdatedAt  time.Time
}

// SyncConflict is recorded when both sides changed since the last sync.
type SyncConflict struct {
	Field          string    `json:"field"`
	LocalStatus    string    `json:"localStatus"`
	PlatformStatus string    `json:"platformStatus"`
	DetectedAt     time.Time `json:"detectedAt"`
}

// PlatformCampaignUpdate overwrites local fields with platform values.
type PlatformCampaignUpdate struct {
	PlatformID string
	Status     string
	Name       string
	SyncedAt   time.Time
}

// CampaignReconciliation is the outcome for one campaign.
type CampaignReconciliation struct {
	CampaignID     string           `json:"campaignId"`
	Outcome        ReconcileOutcome `json:"outcome"`
	Field          string           `json:"field,omitempty"`
	LocalStatus    string           `json:"localStatus,omitempty"`
	PlatformStatus string           `json:"platformStatus,omitempty"`
	Error          string           `json:"error,omitempty"`
}

// ReconcileResult aggregates a reverse sync over one ad account.
// Updated+Conflicts+Unchanged+Deleted+Errors equals the number processed.
type ReconcileResult struct {
	AccountID     string                   `json:"accountId"`
	Updated       int                      `json:"updated"`
	Conflicts     int                      `json:"conflicts"`
	Unchanged     int                      `json:"unchanged"`
	Deleted       int                      `json:"deleted"`
	Errors        int                      `json:"errors"`
	ErrorMessages []string                 `json:"errorMessages"`
	Outcomes      []CampaignReconciliation `json:"outcomes"`
}

// Total returns the number of campaigns processed.
func (r ReconcileResult) Total() int {
	return r.Updated + r.Conflicts + r.Unchanged + r.Deleted + r.Errors
}
