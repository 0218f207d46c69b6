package domain

import "strings"

// Platform identifies an external ad platform ("reddit", "google", ...). It is
// deliberately an open string: campaigns may target platforms for which no
// adapter is registered and those must be skipped, not rejected.
type Platform string

// Well-known platform names. Any other value is valid too.
const (
	PlatformReddit Platform = "reddit"
	PlatformGoogle Platform = "google"
	PlatformMeta   Platform = "meta"
)

// NormalizePlatform lowercases and trims a platform name.
func NormalizePlatform(s string) Platform {
	return Platform(strings.ToLower(strings.TrimSpace(s)))
}

func (p Platform) String() string { return string(p) }

// EntityType names the level of an entity in the campaign tree.
type EntityType string

const (
	EntityCampaignSet EntityType = "campaign_set"
	EntityCampaign    EntityType = "campaign"
	EntityAdGroup     EntityType = "ad_group"
	EntityAd          EntityType = "ad"
	EntityKeyword     EntityType = "keyword"
)
