package reddit

// Wire objects of the Reddit Ads API v3. Money is in micro-units of the
// account currency; times are RFC 3339 strings.

type campaignData struct {
	ID                  string   `json:"id,omitempty"`
	Name                string   `json:"name"`
	Objective           string   `json:"objective,omitempty"`
	ConfiguredStatus    string   `json:"configured_status,omitempty"`
	EffectiveStatus     string   `json:"effective_status,omitempty"`
	SpecialAdCategories []string `json:"special_ad_categories,omitempty"`
	FundingInstrumentID string   `json:"funding_instrument_id,omitempty"`
	GoalType            string   `json:"goal_type,omitempty"`
	GoalValue           *int64   `json:"goal_value,omitempty"`
	SpendCap            *int64   `json:"spend_cap,omitempty"`
	StartTime           string   `json:"start_time,omitempty"`
	EndTime             string   `json:"end_time,omitempty"`
	ModifiedAt          string   `json:"modified_at,omitempty"`
}

type targetingData struct {
	Geolocations []string `json:"geolocations,omitempty"`
	Interests    []string `json:"interests,omitempty"`
	Communities  []string `json:"communities,omitempty"`
	Devices      []string `json:"devices,omitempty"`
	Languages    []string `json:"languages,omitempty"`
	Placements   []string `json:"placements,omitempty"`
}

type adGroupData struct {
	ID               string         `json:"id,omitempty"`
	CampaignID       string         `json:"campaign_id,omitempty"`
	Name             string         `json:"name"`
	ConfiguredStatus string         `json:"configured_status,omitempty"`
	BidStrategy      string         `json:"bid_strategy,omitempty"`
	BidType          string         `json:"bid_type,omitempty"`
	BidValue         *int64         `json:"bid_value,omitempty"`
	GoalType         string         `json:"goal_type,omitempty"`
	GoalValue        *int64         `json:"goal_value,omitempty"`
	OptimizationGoal string         `json:"optimization_goal,omitempty"`
	StartTime        string         `json:"start_time,omitempty"`
	EndTime          string         `json:"end_time,omitempty"`
	Targeting        *targetingData `json:"targeting,omitempty"`
}

type adData struct {
	ID               string `json:"id,omitempty"`
	AdGroupID        string `json:"ad_group_id,omitempty"`
	Name             string `json:"name"`
	ConfiguredStatus string `json:"configured_status,omitempty"`
	ClickURL         string `json:"click_url,omitempty"`
	Headline         string `json:"headline,omitempty"`
	Body             string `json:"body,omitempty"`
	DisplayURL       string `json:"display_url,omitempty"`
	CallToAction     string `json:"call_to_action,omitempty"`
	PostID           string `json:"post_id,omitempty"`
}

type statusData struct {
	ConfiguredStatus string `json:"configured_status"`
}

// campaignSettings is the "reddit" entry of a campaign's platform settings.
type campaignSettings struct {
	FundingInstrumentID string `json:"fundingInstrumentId"`
}

// adGroupSettings is the "reddit" entry of an ad group's platform settings.
type adGroupSettings struct {
	OptimizationGoal string `json:"optimizationGoal"`
}

// adSettings is the "reddit" entry of an ad's platform settings.
type adSettings struct {
	PostID string `json:"postId"`
}
