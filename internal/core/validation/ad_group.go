package validation

import (
	"fmt"

	"campaign-sync/internal/core/domain"
)

// ValidateAdGroup checks an ad group against the rules of vctx.Platform.
func (v *Validator) ValidateAdGroup(g domain.AdGroup, vctx Context) []domain.ValidationError {
	r := v.rulesFor(vctx.Platform)
	col := &collector{entity: domain.EntityAdGroup, id: g.ID}

	col.text(FieldName, g.Name, true, r.NameMaxLength)
	col.parent(FieldCampaignID, g.CampaignID, vctx.ValidCampaignIDs)
	col.enum(FieldStatus, g.Status, r.Statuses)

	s := g.Settings
	if r.RequireBidding {
		v.defaultable(col, vctx.Platform, FieldBidStrategy, s.BidStrategy)
		v.defaultable(col, vctx.Platform, FieldBidType, s.BidType)
	}
	col.enum(FieldBidStrategy, s.BidStrategy, r.BidStrategies)
	col.enum(FieldBidType, s.BidType, r.BidTypes)

	manual := s.BidStrategy != "" && inEnum(s.BidStrategy, r.ManualBidStrategies)
	switch {
	case manual && s.BidAmount == nil:
		col.add(FieldBidAmount, domain.CodeRequiredField,
			fmt.Sprintf("%s is required for bid strategy %s", FieldBidAmount, NormalizeEnum(s.BidStrategy)), nil)
	case s.BidAmount != nil && *s.BidAmount <= 0:
		col.add(FieldBidAmount, domain.CodeInvalidValue,
			fmt.Sprintf("%s must be positive", FieldBidAmount), *s.BidAmount)
	}

	col.budget(s.Budget)
	col.schedule(s.StartTime, s.EndTime, v.now())

	return col.errs
}
