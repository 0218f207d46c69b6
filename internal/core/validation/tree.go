package validation

import "campaign-sync/internal/core/domain"

// ValidateCampaignSet validates a whole tree. Parent references are checked
// against the ids present in the set, and each subtree is validated against
// its campaign's platform.
func (v *Validator) ValidateCampaignSet(set domain.CampaignSet) []domain.ValidationError {
	campaignIDs := make(IDSet, len(set.Campaigns))
	adGroupIDs := make(IDSet)
	for _, c := range set.Campaigns {
		campaignIDs[c.ID] = struct{}{}
		for _, g := range c.AdGroups {
			adGroupIDs[g.ID] = struct{}{}
		}
	}

	var errs []domain.ValidationError
	for _, c := range set.Campaigns {
		vctx := Context{
			Platform:         c.Platform,
			ValidCampaignIDs: campaignIDs,
			ValidAdGroupIDs:  adGroupIDs,
		}
		errs = append(errs, v.ValidateCampaign(c, Context{})...)
		for _, g := range c.AdGroups {
			errs = append(errs, v.ValidateAdGroup(g, vctx)...)
			for _, a := range g.Ads {
				errs = append(errs, v.ValidateAd(a, vctx)...)
			}
			for _, k := range g.Keywords {
				errs = append(errs, v.ValidateKeyword(k, vctx)...)
			}
		}
	}
	return errs
}
