package reddit

import (
	"context"
	"net/url"
	"strings"
	"time"

	"campaign-sync/internal/core/domain"
)

const listPageSize = "100"

func (a *Adapter) listPath(collection string, filter url.Values) string {
	q := url.Values{"page.size": {listPageSize}}
	for k, v := range filter {
		q[k] = v
	}
	return a.accountPath(collection) + "?" + q.Encode()
}

func isDeleted(status string) bool {
	return strings.EqualFold(status, "DELETED")
}

// FindExistingCampaign returns the id of a live campaign with the given name
// in the account, or "" when there is none.
func (a *Adapter) FindExistingCampaign(ctx context.Context, name string) (string, error) {
	items, err := list[campaignData](ctx, a.client, a.listPath("campaigns", nil))
	if err != nil {
		return "", toOperationError("find campaign", err)
	}
	for _, c := range items {
		if c.Name == name && !isDeleted(c.ConfiguredStatus) {
			return c.ID, nil
		}
	}
	return "", nil
}

// FindExistingAdGroup returns the id of a live ad group with the given name
// under the platform campaign, or "".
func (a *Adapter) FindExistingAdGroup(ctx context.Context, platformCampaignID, name string) (string, error) {
	items, err := list[adGroupData](ctx, a.client,
		a.listPath("ad_groups", url.Values{"campaign_id": {platformCampaignID}}))
	if err != nil {
		return "", toOperationError("find ad group", err)
	}
	for _, g := range items {
		if g.Name == name && g.CampaignID == platformCampaignID && !isDeleted(g.ConfiguredStatus) {
			return g.ID, nil
		}
	}
	return "", nil
}

// FindExistingAd returns the id of a live ad with the given name under the
// platform ad group, or "".
func (a *Adapter) FindExistingAd(ctx context.Context, platformAdGroupID, name string) (string, error) {
	items, err := list[adData](ctx, a.client,
		a.listPath("ads", url.Values{"ad_group_id": {platformAdGroupID}}))
	if err != nil {
		return "", toOperationError("find ad", err)
	}
	for _, ad := range items {
		if ad.Name == name && ad.AdGroupID == platformAdGroupID && !isDeleted(ad.ConfiguredStatus) {
			return ad.ID, nil
		}
	}
	return "", nil
}

// FetchCampaignStatuses implements port.CampaignStatusReader. Campaigns the
// account no longer lists, or lists as deleted, are left out.
func (a *Adapter) FetchCampaignStatuses(ctx context.Context, platformIDs []string) (map[string]domain.PlatformCampaign, error) {
	want := make(map[string]struct{}, len(platformIDs))
	for _, id := range platformIDs {
		want[id] = struct{}{}
	}
	items, err := list[campaignData](ctx, a.client, a.listPath("campaigns", nil))
	if err != nil {
		return nil, toOperationError("fetch campaign statuses", err)
	}
	out := make(map[string]domain.PlatformCampaign, len(platformIDs))
	for _, c := range items {
		if _, ok := want[c.ID]; !ok || isDeleted(c.ConfiguredStatus) {
			continue
		}
		pc := domain.PlatformCampaign{PlatformID: c.ID, Name: c.Name, Status: localStatus(c.ConfiguredStatus)}
		if t, err := time.Parse(time.RFC3339, c.ModifiedAt); err == nil {
			pc.UpdatedAt = t
		}
		out[c.ID] = pc
	}
	return out, nil
}
