package validation

import (
	"strings"
	"testing"
	"time"

	"campaign-sync/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func codes(errs []domain.ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field+":"+e.Code)
	}
	return out
}

func validRedditCampaign() domain.Campaign {
	return domain.Campaign{
		ID:        "c1",
		Name:      "Spring sale",
		Platform:  domain.PlatformReddit,
		Objective: "CLICKS",
		Status:    domain.StatusActive,
		Budget:    &domain.Budget{Type: domain.BudgetDaily, Amount: 50},
	}
}

// TestPlatformDefaultSuppressesMissingObjective ensures a platform default satisfies a missing objective.
func TestPlatformDefaultSuppressesMissingObjective(t *testing.T) {
	v := New()

	c := validRedditCampaign()
	c.Objective = ""
	assert.Empty(t, v.ValidateCampaign(c, Context{}))

	c.Platform = domain.PlatformGoogle
	errs := v.ValidateCampaign(c, Context{})
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeRequiredField, errs[0].Code)
	assert.Equal(t, FieldObjective, errs[0].Field)
	assert.Equal(t, "c1", errs[0].EntityID)
	assert.Equal(t, domain.EntityCampaign, errs[0].EntityType)
}

// TestDefaultsOverride ensures supplied defaults replace the built-in ones.
func TestDefaultsOverride(t *testing.T) {
	d := NewDefaults(map[DefaultKey]any{
		{Platform: "Reddit", Entity: domain.EntityCampaign, Field: FieldObjective}: nil,
		{Platform: "google", Entity: domain.EntityCampaign, Field: FieldObjective}: "SEARCH",
	})
	v := New(WithDefaults(d))

	c := validRedditCampaign()
	c.Objective = ""
	assert.Equal(t, []string{"objective:REQUIRED_FIELD"}, codes(v.ValidateCampaign(c, Context{})))

	c.Platform = domain.PlatformGoogle
	assert.Empty(t, v.ValidateCampaign(c, Context{}))
	assert.Equal(t, "SEARCH", d.String("GOOGLE", domain.EntityCampaign, FieldObjective))
}

// TestNameRequiredAndMaxLengthAreDistinct ensures an empty name and a long name report different codes.
func TestNameRequiredAndMaxLengthAreDistinct(t *testing.T) {
	v := New()

	c := validRedditCampaign()
	c.Name = "  "
	assert.Equal(t, []string{"name:REQUIRED_FIELD"}, codes(v.ValidateCampaign(c, Context{})))

	c.Name = strings.Repeat("x", 256)
	assert.Equal(t, []string{"name:MAX_LENGTH"}, codes(v.ValidateCampaign(c, Context{})))

	c.Name = strings.Repeat("é", 255)
	assert.Empty(t, v.ValidateCampaign(c, Context{}))
}

// TestEnumNormalisation ensures enum spellings are normalised before they are checked.
func TestEnumNormalisation(t *testing.T) {
	v := New()

	c := validRedditCampaign()
	c.Objective = "lead-generation"
	assert.Empty(t, v.ValidateCampaign(c, Context{}))

	c.Objective = "Video Viewable Impressions"
	assert.Empty(t, v.ValidateCampaign(c, Context{}))

	c.Objective = "awareness"
	errs := v.ValidateCampaign(c, Context{})
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidEnum, errs[0].Code)
	assert.Contains(t, errs[0].Message, "LEAD_GENERATION")
	assert.Equal(t, "awareness", errs[0].Value)
}

// TestCollectsAllErrors ensures validation reports every error instead of stopping at the first.
func TestCollectsAllErrors(t *testing.T) {
	v := New()
	c := domain.Campaign{
		ID:       "c9",
		Platform: domain.PlatformReddit,
		Status:   "running",
		Budget:   &domain.Budget{Type: "weekly", Amount: 0},
		Settings: domain.CampaignSettings{
			GoalType:            "CPA",
			SpecialAdCategories: []string{"POLITICS"},
		},
	}
	assert.ElementsMatch(t, []string{
		"name:REQUIRED_FIELD",
		"status:INVALID_ENUM",
		"budget.type:INVALID_ENUM",
		"budget.amount:INVALID_VALUE",
		"settings.goalValue:REQUIRED_FIELD",
		"settings.specialAdCategories:INVALID_ENUM",
	}, codes(v.ValidateCampaign(c, Context{})))
}

// TestGoalValueMustBePositive ensures a goal value must be greater than zero.
func TestGoalValueMustBePositive(t *testing.T) {
	v := New()
	c := validRedditCampaign()
	c.Settings.GoalType = "CPC"
	c.Settings.GoalValue = ptr(-1.0)
	assert.Equal(t, []string{"settings.goalValue:INVALID_VALUE"}, codes(v.ValidateCampaign(c, Context{})))

	c.Settings.GoalValue = ptr(2.5)
	assert.Empty(t, v.ValidateCampaign(c, Context{}))
}

// TestDateRange ensures the end date must follow the start date.
func TestDateRange(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	v := New(WithClock(func() time.Time { return now }))

	c := validRedditCampaign()
	c.Settings.StartTime = domain.NewScheduleTime("2026-04-10")
	c.Settings.EndTime = domain.NewScheduleTime("2026-04-01T00:00:00Z")
	assert.Equal(t, []string{"settings.endTime:INVALID_DATE_RANGE"}, codes(v.ValidateCampaign(c, Context{})))

	c.Settings.StartTime = domain.NewScheduleTime(true)
	c.Settings.EndTime = domain.NewScheduleTime("2026-02-01")
	assert.Equal(t, []string{"settings.endTime:INVALID_DATE_RANGE"}, codes(v.ValidateCampaign(c, Context{})))

	c.Settings.EndTime = domain.NewScheduleTime("2026-05-01")
	assert.Empty(t, v.ValidateCampaign(c, Context{}))

	c.Settings.StartTime = domain.NewScheduleTime("not a date")
	c.Settings.EndTime = domain.ScheduleTime{}
	assert.Equal(t, []string{"settings.startTime:INVALID_VALUE"}, codes(v.ValidateCampaign(c, Context{})))

	c.Settings.StartTime = domain.NewScheduleTime(false)
	assert.Empty(t, v.ValidateCampaign(c, Context{}))
}

// TestAdGroupBidding ensures bid strategy and bid amount are checked together.
func TestAdGroupBidding(t *testing.T) {
	v := New()
	vctx := Context{Platform: domain.PlatformReddit}

	g := domain.AdGroup{ID: "g1", CampaignID: "c1", Name: "Group"}
	assert.Empty(t, v.ValidateAdGroup(g, vctx), "bid strategy and type default on reddit")

	g.Settings.BidStrategy = "manual-bidding"
	assert.Equal(t, []string{"settings.bidAmount:REQUIRED_FIELD"}, codes(v.ValidateAdGroup(g, vctx)))

	g.Settings.BidAmount = ptr(0.0)
	assert.Equal(t, []string{"settings.bidAmount:INVALID_VALUE"}, codes(v.ValidateAdGroup(g, vctx)))

	g.Settings.BidAmount = ptr(0.75)
	g.Settings.BidType = "CPA"
	errs := v.ValidateAdGroup(g, vctx)
	assert.Equal(t, []string{"settings.bidType:INVALID_ENUM"}, codes(errs))
	assert.Contains(t, errs[0].Message, "CPC, CPM, CPV")

	errs = v.ValidateAdGroup(domain.AdGroup{ID: "g2", Name: "x"}, Context{Platform: "snapchat"})
	assert.Empty(t, errs, "generic rules do not require bidding")
}

// TestReferentialChecksOnlyWithContext ensures parent references are checked only when parents are known.
func TestReferentialChecksOnlyWithContext(t *testing.T) {
	v := New()

	g := domain.AdGroup{ID: "g1", CampaignID: "ghost", Name: "Group"}
	assert.Empty(t, v.ValidateAdGroup(g, Context{Platform: domain.PlatformReddit}))

	errs := v.ValidateAdGroup(g, Context{Platform: domain.PlatformReddit, ValidCampaignIDs: NewIDSet("c1")})
	assert.Equal(t, []string{"campaignId:MISSING_DEPENDENCY"}, codes(errs))

	a := domain.Ad{ID: "a1", AdGroupID: "ghost", Headline: "Hi", FinalURL: "https://example.com"}
	assert.Empty(t, v.ValidateAd(a, Context{Platform: domain.PlatformReddit}))
	errs = v.ValidateAd(a, Context{Platform: domain.PlatformReddit, ValidAdGroupIDs: NewIDSet("g1")})
	assert.Equal(t, []string{"adGroupId:MISSING_DEPENDENCY"}, codes(errs))
}

// TestAdRules ensures ad headline and destination rules.
func TestAdRules(t *testing.T) {
	v := New()
	vctx := Context{Platform: domain.PlatformReddit}

	a := domain.Ad{
		ID:           "a1",
		Headline:     strings.Repeat("h", 301),
		Description:  strings.Repeat("d", 501),
		DisplayURL:   "a-very-long-display-url.example.com",
		CallToAction: "BUY",
	}
	assert.ElementsMatch(t, []string{
		"headline:MAX_LENGTH",
		"description:MAX_LENGTH",
		"displayUrl:MAX_LENGTH",
		"finalUrl:REQUIRED_FIELD",
		"callToAction:INVALID_ENUM",
	}, codes(v.ValidateAd(a, vctx)))

	a = domain.Ad{ID: "a2", Headline: "ok", FinalURL: "example.com/page", CallToAction: "shop-now"}
	assert.Equal(t, []string{"finalUrl:INVALID_VALUE"}, codes(v.ValidateAd(a, vctx)))

	a.FinalURL = "https://example.com/page"
	assert.Empty(t, v.ValidateAd(a, vctx))
}

// TestKeywordRules ensures keyword text and match type rules.
func TestKeywordRules(t *testing.T) {
	v := New()
	assert.ElementsMatch(t, []string{"text:REQUIRED_FIELD", "matchType:REQUIRED_FIELD"},
		codes(v.ValidateKeyword(domain.Keyword{ID: "k1"}, Context{})))
	assert.Equal(t, []string{"matchType:INVALID_ENUM"},
		codes(v.ValidateKeyword(domain.Keyword{ID: "k1", Text: "shoes", MatchType: "fuzzy"}, Context{})))
	assert.Empty(t, v.ValidateKeyword(domain.Keyword{ID: "k1", Text: "shoes", MatchType: "Exact"}, Context{}))
}

// TestValidateCampaignSet ensures the whole campaign set tree is validated.
func TestValidateCampaignSet(t *testing.T) {
	v := New()
	set := domain.CampaignSet{
		ID: "s1",
		Campaigns: []domain.Campaign{
			{
				ID: "c1", Name: "Reddit", Platform: domain.PlatformReddit,
				AdGroups: []domain.AdGroup{{
					ID: "g1", CampaignID: "c1", Name: "G",
					Ads:      []domain.Ad{{ID: "a1", AdGroupID: "g1", Headline: "H", FinalURL: "https://x.io"}},
					Keywords: []domain.Keyword{{ID: "k1", AdGroupID: "g9", Text: "kw", MatchType: domain.MatchBroad}},
				}},
			},
			{
				ID: "c2", Name: "Google", Platform: domain.PlatformGoogle, Objective: "SEARCH",
				AdGroups: []domain.AdGroup{{
					ID: "g2", CampaignID: "c2", Name: "G2",
					Ads: []domain.Ad{{ID: "a2", AdGroupID: "g2", Headline: strings.Repeat("h", 31), FinalURL: "https://x.io"}},
				}},
			},
		},
	}

	errs := v.ValidateCampaignSet(set)
	assert.ElementsMatch(t, []string{"adGroupId:MISSING_DEPENDENCY", "headline:MAX_LENGTH"}, codes(errs))
	for _, e := range errs {
		switch e.Field {
		case FieldAdGroupID:
			assert.Equal(t, "k1", e.EntityID)
		case FieldHeadline:
			assert.Equal(t, "a2", e.EntityID)
		}
	}
}
