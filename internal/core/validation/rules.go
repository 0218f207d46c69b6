package validation

import (
	"strings"

	"campaign-sync/internal/core/domain"
)

// Rules is the constraint set of one platform. Empty enum lists are not
// checked; zero lengths are not enforced.
type Rules struct {
	NameMaxLength        int
	HeadlineMaxLength    int
	DescriptionMaxLength int
	DisplayURLMaxLength  int
	KeywordMaxLength     int

	Statuses            []string
	Objectives          []string
	BidStrategies       []string
	BidTypes            []string
	CallToActions       []string
	SpecialAdCategories []string
	GoalTypes           []string
	// ManualBidStrategies need an explicit bid amount.
	ManualBidStrategies []string
	// RequireObjective makes a missing objective an error unless the
	// platform has a default for it.
	RequireObjective bool
	// RequireBidding makes missing bid strategy and bid type errors unless
	// the platform has defaults for them.
	RequireBidding bool
	// RequireCallToAction makes a missing call to action an error unless the
	// platform has a default for it.
	RequireCallToAction bool
}

var localStatuses = []string{
	domain.StatusActive, domain.StatusPaused, domain.StatusDraft, domain.StatusPending, domain.StatusArchived,
}

// GenericRules apply to platforms without a dedicated rule set.
func GenericRules() Rules {
	return Rules{
		NameMaxLength:        255,
		HeadlineMaxLength:    300,
		DescriptionMaxLength: 2000,
		DisplayURLMaxLength:  255,
		KeywordMaxLength:     80,
		Statuses:             localStatuses,
		RequireObjective:     true,
	}
}

// RedditRules are the Reddit Ads API constraints.
func RedditRules() Rules {
	return Rules{
		NameMaxLength:        255,
		HeadlineMaxLength:    300,
		DescriptionMaxLength: 500,
		DisplayURLMaxLength:  25,
		KeywordMaxLength:     80,
		Statuses:             localStatuses,
		Objectives: []string{
			"APP_INSTALLS", "CATALOG_SALES", "CLICKS", "CONVERSIONS",
			"IMPRESSIONS", "LEAD_GENERATION", "VIDEO_VIEWABLE_IMPRESSIONS",
		},
		BidStrategies:       []string{"MAXIMIZE_VOLUME", "MANUAL_BIDDING", "TARGET_CPX"},
		ManualBidStrategies: []string{"MANUAL_BIDDING", "TARGET_CPX"},
		BidTypes:            []string{"CPC", "CPM", "CPV"},
		CallToActions: []string{
			"LEARN_MORE", "SIGN_UP", "SHOP_NOW", "DOWNLOAD", "INSTALL",
			"CONTACT_US", "GET_QUOTE", "APPLY_NOW", "WATCH_NOW",
		},
		SpecialAdCategories: []string{"NONE", "HOUSING", "EMPLOYMENT", "CREDIT", "HOUSING_EMPLOYMENT_CREDIT"},
		GoalTypes:           []string{"CPA", "CPC", "CPM", "ROAS", "CPV"},
		RequireObjective:    true,
		RequireBidding:      true,
		RequireCallToAction: true,
	}
}

// GoogleRules are the Google Ads constraints this service relies on.
func GoogleRules() Rules {
	return Rules{
		NameMaxLength:        255,
		HeadlineMaxLength:    30,
		DescriptionMaxLength: 90,
		DisplayURLMaxLength:  15,
		KeywordMaxLength:     80,
		Statuses:             localStatuses,
		BidStrategies: []string{
			"MANUAL_CPC", "MAXIMIZE_CLICKS", "MAXIMIZE_CONVERSIONS", "TARGET_CPA", "TARGET_ROAS",
		},
		ManualBidStrategies: []string{"MANUAL_CPC"},
		BidTypes:            []string{"CPC", "CPM"},
		RequireObjective:    true,
		RequireBidding:      true,
	}
}

// NormalizeEnum upper-cases v and turns hyphens and spaces into
// underscores, so "Lead-Generation" matches LEAD_GENERATION.
func NormalizeEnum(v string) string {
	v = strings.ToUpper(strings.TrimSpace(v))
	return strings.NewReplacer("-", "_", " ", "_").Replace(v)
}

func inEnum(v string, valid []string) bool {
	n := NormalizeEnum(v)
	for _, s := range valid {
		if NormalizeEnum(s) == n {
			return true
		}
	}
	return false
}
