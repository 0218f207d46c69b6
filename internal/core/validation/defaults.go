package validation

import (
	"maps"

	"campaign-sync/internal/core/domain"
)

// Field names shared by validation errors and the defaults resolver.
const (
	FieldName                = "name"
	FieldPlatform            = "platform"
	FieldStatus              = "status"
	FieldObjective           = "objective"
	FieldBudgetType          = "budget.type"
	FieldBudgetAmount        = "budget.amount"
	FieldGoalType            = "settings.goalType"
	FieldGoalValue           = "settings.goalValue"
	FieldStartTime           = "settings.startTime"
	FieldEndTime             = "settings.endTime"
	FieldSpecialAdCategories = "settings.specialAdCategories"
	FieldCampaignID          = "campaignId"
	FieldBidStrategy         = "settings.bidStrategy"
	FieldBidType             = "settings.bidType"
	FieldBidAmount           = "settings.bidAmount"
	FieldAdGroupID           = "adGroupId"
	FieldHeadline            = "headline"
	FieldDescription         = "description"
	FieldDisplayURL          = "displayUrl"
	FieldFinalURL            = "finalUrl"
	FieldCallToAction        = "callToAction"
	FieldKeywordText         = "text"
	FieldMatchType           = "matchType"
)

// DefaultKey identifies a defaultable field on a platform.
type DefaultKey struct {
	Platform domain.Platform
	Entity   domain.EntityType
	Field    string
}

// Defaults answers whether a platform fills in a value for a field the
// caller left empty. It is read-only after construction and safe for
// concurrent use.
type Defaults struct {
	values map[DefaultKey]any
}

// BuiltinDefaults returns the defaults the known platforms apply.
func BuiltinDefaults() map[DefaultKey]any {
	return map[DefaultKey]any{
		{domain.PlatformReddit, domain.EntityCampaign, FieldObjective}:           "CLICKS",
		{domain.PlatformReddit, domain.EntityCampaign, FieldSpecialAdCategories}: []string{"NONE"},
		{domain.PlatformReddit, domain.EntityAdGroup, FieldBidStrategy}:          "MAXIMIZE_VOLUME",
		{domain.PlatformReddit, domain.EntityAdGroup, FieldBidType}:              "CPC",
		{domain.PlatformReddit, domain.EntityAd, FieldCallToAction}:              "LEARN_MORE",

		{domain.PlatformGoogle, domain.EntityAdGroup, FieldBidStrategy}: "MAXIMIZE_CLICKS",
		{domain.PlatformGoogle, domain.EntityAdGroup, FieldBidType}:     "CPC",
	}
}

// NewDefaults builds a resolver from the built-in defaults with overrides
// applied on top. A nil override value removes the built-in default.
func NewDefaults(overrides map[DefaultKey]any) *Defaults {
	values := BuiltinDefaults()
	for k, v := range overrides {
		k.Platform = domain.NormalizePlatform(string(k.Platform))
		if v == nil {
			delete(values, k)
			continue
		}
		values[k] = v
	}
	return &Defaults{values: values}
}

// HasDefault reports whether platform supplies a default for field.
func (d *Defaults) HasDefault(platform domain.Platform, entity domain.EntityType, field string) bool {
	_, ok := d.Default(platform, entity, field)
	return ok
}

// Default returns the value platform uses when field is absent.
func (d *Defaults) Default(platform domain.Platform, entity domain.EntityType, field string) (any, bool) {
	if d == nil {
		return nil, false
	}
	v, ok := d.values[DefaultKey{Platform: domain.NormalizePlatform(string(platform)), Entity: entity, Field: field}]
	return v, ok
}

// String returns the default as a string, or "" when there is none or it
// is not a string.
func (d *Defaults) String(platform domain.Platform, entity domain.EntityType, field string) string {
	v, _ := d.Default(platform, entity, field)
	s, _ := v.(string)
	return s
}

// All returns a copy of every configured default.
func (d *Defaults) All() map[DefaultKey]any {
	if d == nil {
		return nil
	}
	return maps.Clone(d.values)
}
