package reddit

import (
	"log/slog"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/validation"
)

// Field limits of the Ads API. Longer values are truncated, not rejected.
const (
	MaxNameLength       = 255
	MaxHeadlineLength   = 300
	MaxBodyLength       = 500
	MaxDisplayURLLength = 25
)

// Platform enums.
var (
	objectives = []string{
		"APP_INSTALLS", "CATALOG_SALES", "CLICKS", "CONVERSIONS",
		"IMPRESSIONS", "LEAD_GENERATION", "VIDEO_VIEWABLE_IMPRESSIONS",
	}
	bidStrategies = []string{"MAXIMIZE_VOLUME", "MANUAL_BIDDING", "TARGET_CPX"}
	bidTypes      = []string{"CPC", "CPM", "CPV"}
	callToActions = []string{
		"LEARN_MORE", "SIGN_UP", "SHOP_NOW", "DOWNLOAD", "INSTALL",
		"CONTACT_US", "GET_QUOTE", "APPLY_NOW", "WATCH_NOW",
	}
)

// Human vocabulary accepted in generation configs.
var (
	objectiveAliases = map[string]string{
		"AWARENESS":     "IMPRESSIONS",
		"REACH":         "IMPRESSIONS",
		"TRAFFIC":       "CLICKS",
		"ENGAGEMENT":    "CLICKS",
		"CONSIDERATION": "CLICKS",
		"CONVERSION":    "CONVERSIONS",
		"LEADS":         "LEAD_GENERATION",
		"VIDEO_VIEWS":   "VIDEO_VIEWABLE_IMPRESSIONS",
		"APP_INSTALL":   "APP_INSTALLS",
		"SALES":         "CATALOG_SALES",
	}
	bidStrategyAliases = map[string]string{
		"AUTO":        "MAXIMIZE_VOLUME",
		"AUTOMATIC":   "MAXIMIZE_VOLUME",
		"LOWEST_COST": "MAXIMIZE_VOLUME",
		"MANUAL":      "MANUAL_BIDDING",
		"MANUAL_CPC":  "MANUAL_BIDDING",
		"TARGET_CPA":  "TARGET_CPX",
		"COST_CAP":    "TARGET_CPX",
	}
)

const (
	fallbackObjective    = "CLICKS"
	fallbackBidStrategy  = "MAXIMIZE_VOLUME"
	fallbackBidType      = "CPC"
	fallbackCallToAction = "LEARN_MORE"
)

// ToMicros converts a major-unit amount into micro-units. The amount is
// first rounded to whole cents as an integer so that float noise never
// reaches the result: 0.10 is exactly 100000 and 29.99 exactly 29990000.
func ToMicros(amount float64) int64 {
	cents := int64(math.Round(amount * 100))
	return cents * 10_000
}

func microsPtr(amount float64) *int64 {
	v := ToMicros(amount)
	return &v
}

// Truncate shortens s to at most max runes.
func Truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max])
}

// FormatTime normalises a schedule value to RFC 3339 in UTC. The empty
// string means the field must be omitted.
func FormatTime(t domain.ScheduleTime, now time.Time) string {
	v, ok := t.Resolve(now)
	if !ok {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}

type vocabulary struct {
	field    string
	valid    []string
	aliases  map[string]string
	fallback string
}

// mapVocabulary returns the platform enum value for v. Unknown input falls
// back to the default and is logged; it never fails the operation.
func (a *Adapter) mapVocabulary(voc vocabulary, entity domain.EntityType, v string) string {
	if strings.TrimSpace(v) == "" {
		if d := a.defaults.String(domain.PlatformReddit, entity, voc.field); d != "" {
			return d
		}
		return voc.fallback
	}
	n := validation.NormalizeEnum(v)
	for _, s := range voc.valid {
		if s == n {
			return s
		}
	}
	if mapped, ok := voc.aliases[n]; ok {
		return mapped
	}
	a.logger.Warn("unrecognized value, using fallback",
		slog.String("field", voc.field),
		slog.String("value", v),
		slog.String("fallback", voc.fallback),
	)
	return voc.fallback
}

func (a *Adapter) objective(v string) string {
	return a.mapVocabulary(vocabulary{
		field: validation.FieldObjective, valid: objectives, aliases: objectiveAliases, fallback: fallbackObjective,
	}, domain.EntityCampaign, v)
}

func (a *Adapter) bidStrategy(v string) string {
	return a.mapVocabulary(vocabulary{
		field: validation.FieldBidStrategy, valid: bidStrategies, aliases: bidStrategyAliases, fallback: fallbackBidStrategy,
	}, domain.EntityAdGroup, v)
}

func (a *Adapter) bidType(v string) string {
	return a.mapVocabulary(vocabulary{
		field: validation.FieldBidType, valid: bidTypes, fallback: fallbackBidType,
	}, domain.EntityAdGroup, v)
}

func (a *Adapter) callToAction(v string) string {
	return a.mapVocabulary(vocabulary{
		field: validation.FieldCallToAction, valid: callToActions, fallback: fallbackCallToAction,
	}, domain.EntityAd, v)
}

// wireStatus maps a local status to configured_status. Anything that is not
// explicitly active is created paused so nothing spends by accident.
func wireStatus(local string) string {
	switch strings.ToLower(strings.TrimSpace(local)) {
	case domain.StatusActive:
		return "ACTIVE"
	case domain.StatusArchived:
		return "ARCHIVED"
	default:
		return "PAUSED"
	}
}

// EquivalentStatus implements port.StatusComparer. Reddit knows fewer
// statuses than the local model, so draft and pending are both PAUSED and
// read back as paused.
func (a *Adapter) EquivalentStatus(local, platform string) bool {
	return wireStatus(local) == wireStatus(platform)
}

// localStatus maps configured_status back to a local status.
func localStatus(wire string) string {
	switch strings.ToUpper(wire) {
	case "ACTIVE":
		return domain.StatusActive
	case "ARCHIVED":
		return domain.StatusArchived
	default:
		return domain.StatusPaused
	}
}

func budgetGoal(b *domain.Budget) (string, *int64) {
	if b == nil || b.Amount <= 0 {
		return "", nil
	}
	if b.WireType() == domain.BudgetLifetime {
		return "LIFETIME_SPEND", microsPtr(b.Amount)
	}
	return "DAILY_SPEND", microsPtr(b.Amount)
}

func (a *Adapter) toCampaignData(c domain.Campaign) campaignData {
	now := a.now()
	d := campaignData{
		Name:             a.truncate("name", c.Name, MaxNameLength),
		Objective:        a.objective(c.Objective),
		ConfiguredStatus: wireStatus(c.Status),
		StartTime:        FormatTime(c.Settings.StartTime, now),
		EndTime:          FormatTime(c.Settings.EndTime, now),
	}
	d.GoalType, d.GoalValue = budgetGoal(c.Budget)
	for _, cat := range c.Settings.SpecialAdCategories {
		d.SpecialAdCategories = append(d.SpecialAdCategories, validation.NormalizeEnum(cat))
	}
	if len(d.SpecialAdCategories) == 0 {
		if v, ok := a.defaults.Default(domain.PlatformReddit, domain.EntityCampaign, validation.FieldSpecialAdCategories); ok {
			if cats, ok := v.([]string); ok {
				d.SpecialAdCategories = cats
			}
		}
	}
	var ps campaignSettings
	if ok, err := c.Settings.DecodePlatformSettings(domain.PlatformReddit, &ps); err != nil {
		a.logger.Warn("ignoring invalid reddit campaign settings", slog.String("campaign_id", c.ID), slog.Any("error", err))
	} else if ok {
		d.FundingInstrumentID = ps.FundingInstrumentID
	}
	if d.FundingInstrumentID == "" {
		d.FundingInstrumentID = a.fundingInstrumentID
	}
	return d
}

func toTargeting(t domain.Targeting) *targetingData {
	if t.IsEmpty() {
		return nil
	}
	return &targetingData{
		Geolocations: t.Geos,
		Interests:    t.Interests,
		Communities:  t.Communities,
		Devices:      t.Devices,
		Languages:    t.Languages,
		Placements:   t.Placements,
	}
}

func (a *Adapter) toAdGroupData(g domain.AdGroup, platformCampaignID string) adGroupData {
	now := a.now()
	s := g.Settings
	d := adGroupData{
		CampaignID:       platformCampaignID,
		Name:             a.truncate("name", g.Name, MaxNameLength),
		ConfiguredStatus: wireStatus(g.Status),
		BidStrategy:      a.bidStrategy(s.BidStrategy),
		BidType:          a.bidType(s.BidType),
		StartTime:        FormatTime(s.StartTime, now),
		EndTime:          FormatTime(s.EndTime, now),
		Targeting:        toTargeting(s.Targeting),
	}
	if s.BidAmount != nil && *s.BidAmount > 0 && d.BidStrategy != fallbackBidStrategy {
		d.BidValue = microsPtr(*s.BidAmount)
	}
	d.GoalType, d.GoalValue = budgetGoal(s.Budget)
	var ps adGroupSettings
	if ok, err := s.DecodePlatformSettings(domain.PlatformReddit, &ps); err != nil {
		a.logger.Warn("ignoring invalid reddit ad group settings", slog.String("ad_group_id", g.ID), slog.Any("error", err))
	} else if ok {
		d.OptimizationGoal = ps.OptimizationGoal
	}
	return d
}

func (a *Adapter) toAdData(ad domain.Ad, platformAdGroupID string) adData {
	name := ad.Headline
	if name == "" {
		name = ad.ID
	}
	return adData{
		AdGroupID:        platformAdGroupID,
		Name:             a.truncate("name", name, MaxNameLength),
		ConfiguredStatus: wireStatus(ad.Status),
		ClickURL:         strings.TrimSpace(ad.FinalURL),
		Headline:         a.truncate("headline", ad.Headline, MaxHeadlineLength),
		Body:             a.truncate("body", ad.Description, MaxBodyLength),
		DisplayURL:       a.truncate("display_url", ad.DisplayURL, MaxDisplayURLLength),
		CallToAction:     a.callToAction(ad.CallToAction),
		PostID:           a.adPostID(ad),
	}
}

func (a *Adapter) adPostID(ad domain.Ad) string {
	var ps adSettings
	if ok, err := ad.Settings.DecodePlatformSettings(domain.PlatformReddit, &ps); err == nil && ok {
		return ps.PostID
	}
	return ""
}

func (a *Adapter) truncate(field, v string, max int) string {
	out := Truncate(v, max)
	if out != strings.TrimSpace(v) {
		a.logger.Debug("truncated field", slog.String("field", field), slog.Int("max", max))
	}
	return out
}
