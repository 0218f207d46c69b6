package domain

import "encoding/json"

// Ad is a single creative under an ad group. FinalURL must be set before the
// ad can be submitted to any platform.
type Ad struct {
	ID           string
	AdGroupID    string
	Headline     string
	Description  string
	DisplayURL   string
	FinalURL     string
	CallToAction string
	OrderIndex   int
	Status       string
	Settings     AdSettings
	PlatformAdID string
}

// HasPlatformID reports whether the platform already knows this ad.
func (a *Ad) HasPlatformID() bool { return a.PlatformAdID != "" }

// AdSettings holds platform-specific ad settings keyed by platform name.
type AdSettings struct {
	Platform map[string]json.RawMessage `json:"platform,omitempty"`
}

// DecodePlatformSettings decodes the settings stored for platform into v.
func (s AdSettings) DecodePlatformSettings(platform Platform, v any) (bool, error) {
	return decodePlatformSettings(s.Platform, platform, v)
}
