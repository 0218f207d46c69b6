package validation

import (
	"fmt"

	"campaign-sync/internal/core/domain"
)

// ValidateCampaign checks a campaign. It never panics and returns nil when
// the campaign is valid.
func (v *Validator) ValidateCampaign(c domain.Campaign, vctx Context) []domain.ValidationError {
	p := c.Platform
	if vctx.Platform != "" {
		p = vctx.Platform
	}
	r := v.rulesFor(p)
	col := &collector{entity: domain.EntityCampaign, id: c.ID}

	col.text(FieldName, c.Name, true, r.NameMaxLength)
	if p == "" {
		col.required(FieldPlatform)
	}
	col.enum(FieldStatus, c.Status, r.Statuses)

	if r.RequireObjective {
		v.defaultable(col, p, FieldObjective, c.Objective)
	}
	col.enum(FieldObjective, c.Objective, r.Objectives)

	col.budget(c.Budget)

	s := c.Settings
	if s.GoalType != "" {
		col.enum(FieldGoalType, s.GoalType, r.GoalTypes)
		switch {
		case s.GoalValue == nil:
			col.add(FieldGoalValue, domain.CodeRequiredField,
				fmt.Sprintf("%s is required when %s is set", FieldGoalValue, FieldGoalType), nil)
		case *s.GoalValue <= 0:
			col.add(FieldGoalValue, domain.CodeInvalidValue,
				fmt.Sprintf("%s must be positive", FieldGoalValue), *s.GoalValue)
		}
	}
	for _, cat := range s.SpecialAdCategories {
		col.enum(FieldSpecialAdCategories, cat, r.SpecialAdCategories)
	}
	col.schedule(s.StartTime, s.EndTime, v.now())

	return col.errs
}
