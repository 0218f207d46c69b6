package domain

import "encoding/json"

// AdGroup belongs to exactly one campaign and owns ads and keywords.
type AdGroup struct {
	ID                string
	CampaignID        string
	Name              string
	OrderIndex        int
	Status            string
	Settings          AdGroupSettings
	PlatformAdGroupID string
	Ads               []Ad
	Keywords          []Keyword
}

// HasPlatformID reports whether the platform already knows this ad group.
func (g *AdGroup) HasPlatformID() bool { return g.PlatformAdGroupID != "" }

// AdGroupSettings is the free-form settings blob of an ad group. Platform
// holds advanced settings keyed by platform name; adapters decode their own
// entry with DecodePlatformSettings and nothing else inspects it.
type AdGroupSettings struct {
	BidStrategy string                     `json:"bidStrategy,omitempty"`
	BidType     string                     `json:"bidType,omitempty"`
	BidAmount   *float64                   `json:"bidAmount,omitempty"`
	Budget      *Budget                    `json:"budget,omitempty"`
	Targeting   Targeting                  `json:"targeting,omitempty"`
	StartTime   ScheduleTime               `json:"startTime,omitempty"`
	EndTime     ScheduleTime               `json:"endTime,omitempty"`
	Platform    map[string]json.RawMessage `json:"platform,omitempty"`
}

// DecodePlatformSettings decodes the advanced settings stored for platform
// into v. It returns false when nothing is stored for that platform.
func (s AdGroupSettings) DecodePlatformSettings(platform Platform, v any) (bool, error) {
	return decodePlatformSettings(s.Platform, platform, v)
}
