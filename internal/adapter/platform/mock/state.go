package mock

import (
	"context"
	"time"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

// FetchCampaignStatuses implements port.CampaignStatusReader. Ids unknown to
// the mock are left out of the result, as if deleted on the platform.
func (a *Adapter) FetchCampaignStatuses(ctx context.Context, platformIDs []string) (map[string]domain.PlatformCampaign, error) {
	a.record(Call{Op: OpFetchStatuses})
	if err := a.wait(ctx); err != nil {
		return nil, port.AsOperationError(err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failAll != nil {
		return nil, a.failAll
	}
	out := make(map[string]domain.PlatformCampaign, len(platformIDs))
	for _, id := range platformIDs {
		e, ok := a.entities[domain.EntityCampaign][id]
		if !ok {
			continue
		}
		out[id] = domain.PlatformCampaign{PlatformID: id, Name: e.name, Status: e.status, UpdatedAt: e.updatedAt}
	}
	return out, nil
}

// Seed places a campaign on the simulated platform, as if it had been
// created earlier or by someone else.
func (a *Adapter) Seed(platformID, name, status string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entities[domain.EntityCampaign][platformID] = &entity{name: name, status: status, updatedAt: a.now()}
}

// SetCampaignStatus changes a campaign's status on the platform side only.
func (a *Adapter) SetCampaignStatus(platformID, status string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	e, ok := a.entities[domain.EntityCampaign][platformID]
	if ok {
		e.status = status
		e.updatedAt = a.now()
	}
	return ok
}

// CampaignStatus returns the platform-side status of a campaign.
func (a *Adapter) CampaignStatus(platformID string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	e, ok := a.entities[domain.EntityCampaign][platformID]
	if !ok {
		return "", false
	}
	return e.status, true
}

// Count returns how many entities of type t exist on the platform.
func (a *Adapter) Count(t domain.EntityType) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.entities[t])
}

// ParentOf returns the platform parent id of an entity.
func (a *Adapter) ParentOf(t domain.EntityType, platformID string) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if e, ok := a.entities[t][platformID]; ok {
		return e.parentID
	}
	return ""
}

// SetClock overrides the clock used for platform timestamps.
func (a *Adapter) SetClock(now func() time.Time) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.now = now
}
