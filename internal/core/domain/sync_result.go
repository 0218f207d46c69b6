package domain

import "time"

// Error codes reported in SyncResult.
const (
	CodeNoAdapterForPlatform = "NO_ADAPTER_FOR_PLATFORM"
	CodeMissingParentID      = "MISSING_PARENT_PLATFORM_ID"
	CodeChildSyncFailed      = "CHILD_SYNC_FAILED"
	CodePersistFailed        = "PERSIST_FAILED"
)

// EntityError describes the failure of a single entity operation. EntityID
// is always the local id, never a platform id.
type EntityError struct {
	EntityType EntityType    `json:"entityType"`
	EntityID   string        `json:"entityId"`
	Operation  string        `json:"operation"`
	Code       string        `json:"code"`
	Message    string        `json:"message"`
	Retryable  bool          `json:"retryable"`
	RetryAfter time.Duration `json:"retryAfter,omitempty"`
}

// SyncError is the error entry of one failed or skipped campaign. Failures of
// the campaign's descendants are listed in Details.
type SyncError struct {
	CampaignID string        `json:"campaignId"`
	Platform   Platform      `json:"platform,omitempty"`
	Code       string        `json:"code"`
	Message    string        `json:"message"`
	Retryable  bool          `json:"retryable"`
	RetryAfter time.Duration `json:"retryAfter,omitempty"`
	Details    []EntityError `json:"details,omitempty"`
}

// SyncResult summarises one sync run. It is computed fresh on every run and
// never persisted. Synced+Failed+Skipped equals the number of campaigns
// considered.
type SyncResult struct {
	CampaignSetID string      `json:"campaignSetId"`
	Synced        int         `json:"synced"`
	Failed        int         `json:"failed"`
	Skipped       int         `json:"skipped"`
	Errors        []SyncError `json:"errors"`
}

// Total returns the number of campaigns considered by the run.
func (r SyncResult) Total() int { return r.Synced + r.Failed + r.Skipped }

// RetryHint reports whether any failure in the run is retryable, together
// with the largest retry-after hint the platforms returned.
func (r SyncResult) RetryHint() (bool, time.Duration) {
	var (
		retry bool
		after time.Duration
	)
	for _, e := range r.Errors {
		if !e.Retryable {
			continue
		}
		retry = true
		if e.RetryAfter > after {
			after = e.RetryAfter
		}
	}
	return retry, after
}

// ProgressEventType is the kind of a progress event.
type ProgressEventType string

const (
	ProgressStarted   ProgressEventType = "started"
	ProgressProgress  ProgressEventType = "progress"
	ProgressCompleted ProgressEventType = "completed"
	ProgressError     ProgressEventType = "error"
)

// ProgressEvent is emitted on the best-effort progress side channel.
type ProgressEvent struct {
	Type          ProgressEventType `json:"type"`
	CampaignSetID string            `json:"campaignSetId"`
	CampaignID    string            `json:"campaignId,omitempty"`
	Processed     int               `json:"processed"`
	Failed        int               `json:"failed"`
	Total         int               `json:"total"`
	Message       string            `json:"message,omitempty"`
	At            time.Time         `json:"at"`
}
