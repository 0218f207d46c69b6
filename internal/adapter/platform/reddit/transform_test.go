package reddit

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToMicrosIsExact ensures currency amounts convert to micros without float drift.
func TestToMicrosIsExact(t *testing.T) {
	cases := map[float64]int64{
		0:       0,
		0.01:    10_000,
		0.07:    70_000,
		0.10:    100_000,
		0.29:    290_000,
		1.15:    1_150_000,
		19.99:   19_990_000,
		29.99:   29_990_000,
		100:     100_000_000,
		1234.56: 1_234_560_000,
	}
	for amount, want := range cases {
		assert.Equal(t, want, ToMicros(amount), "amount %v", amount)
	}
}

// TestTruncate ensures text is trimmed and cut to a limit on rune boundaries.
func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("  abc ", 5))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
	assert.Equal(t, "żó", Truncate("żółw", 2))
	assert.Len(t, []rune(Truncate(strings.Repeat("x", 400), MaxHeadlineLength)), MaxHeadlineLength)
}

// TestFormatTime ensures schedule times are rendered in the wire format.
func TestFormatTime(t *testing.T) {
	now := time.Date(2026, 5, 4, 3, 2, 1, 0, time.FixedZone("X", 3600))

	assert.Equal(t, "2026-05-04T02:02:01Z", FormatTime(domain.NewScheduleTime(true), now))
	assert.Equal(t, "2026-01-02T00:00:00Z", FormatTime(domain.NewScheduleTime("2026-01-02"), now))
	assert.Equal(t, "2026-01-02T09:30:00Z", FormatTime(domain.NewScheduleTime("2026-01-02T10:30:00+01:00"), now))
	assert.Equal(t, "", FormatTime(domain.NewScheduleTime(false), now))
	assert.Equal(t, "", FormatTime(domain.NewScheduleTime("soon"), now))
	assert.Equal(t, "", FormatTime(domain.ScheduleTime{}, now))
}

func newTransformAdapter(t *testing.T, buf *bytes.Buffer) *Adapter {
	t.Helper()
	a, err := New(Config{AccountID: "acct"}, nil, nil, slog.New(slog.NewTextHandler(buf, nil)))
	require.NoError(t, err)
	a.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return a
}

// TestVocabularyMapping ensures local enums translate to the platform vocabulary.
func TestVocabularyMapping(t *testing.T) {
	var logs bytes.Buffer
	a := newTransformAdapter(t, &logs)

	assert.Equal(t, "IMPRESSIONS", a.objective("awareness"))
	assert.Equal(t, "CLICKS", a.objective("Traffic"))
	assert.Equal(t, "LEAD_GENERATION", a.objective("lead-generation"))
	assert.Equal(t, "CLICKS", a.objective(""))
	assert.Empty(t, logs.String())

	assert.Equal(t, "CLICKS", a.objective("world domination"))
	assert.Contains(t, logs.String(), "unrecognized value")
	assert.Contains(t, logs.String(), "world domination")

	assert.Equal(t, "MAXIMIZE_VOLUME", a.bidStrategy("auto"))
	assert.Equal(t, "MANUAL_BIDDING", a.bidStrategy("manual"))
	assert.Equal(t, "TARGET_CPX", a.bidStrategy("target-cpa"))
	assert.Equal(t, "CPM", a.bidType("cpm"))
	assert.Equal(t, "SHOP_NOW", a.callToAction("Shop Now"))
	assert.Equal(t, "LEARN_MORE", a.callToAction(""))
}

// TestVocabularyDefaultsComeFromResolver ensures a missing objective falls back to the defaults resolver.
func TestVocabularyDefaultsComeFromResolver(t *testing.T) {
	d := validation.NewDefaults(map[validation.DefaultKey]any{
		{Platform: domain.PlatformReddit, Entity: domain.EntityCampaign, Field: validation.FieldObjective}: "CONVERSIONS",
	})
	a, err := New(Config{AccountID: "acct"}, nil, d, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	assert.Equal(t, "CONVERSIONS", a.objective(""))
}

// TestCampaignTransformation ensures a campaign is transformed into its wire payload.
func TestCampaignTransformation(t *testing.T) {
	var logs bytes.Buffer
	a := newTransformAdapter(t, &logs)

	c := domain.Campaign{
		ID:        "c1",
		Name:      strings.Repeat("n", 300),
		Objective: "traffic",
		Status:    domain.StatusDraft,
		Budget:    &domain.Budget{Type: domain.BudgetShared, Amount: 29.99},
		Settings: domain.CampaignSettings{
			StartTime: domain.NewScheduleTime(true),
			EndTime:   domain.NewScheduleTime("not-a-date"),
			Platform: map[string]json.RawMessage{
				"reddit": json.RawMessage(`{"fundingInstrumentId":"fi-9"}`),
			},
		},
	}
	d := a.toCampaignData(c)
	assert.Len(t, d.Name, MaxNameLength)
	assert.Equal(t, "CLICKS", d.Objective)
	assert.Equal(t, "PAUSED", d.ConfiguredStatus)
	assert.Equal(t, "DAILY_SPEND", d.GoalType)
	require.NotNil(t, d.GoalValue)
	assert.Equal(t, int64(29_990_000), *d.GoalValue)
	assert.Equal(t, "2026-01-01T00:00:00Z", d.StartTime)
	assert.Empty(t, d.EndTime)
	assert.Equal(t, []string{"NONE"}, d.SpecialAdCategories)
	assert.Equal(t, "fi-9", d.FundingInstrumentID)
}

// TestAdGroupTransformation ensures an ad group is transformed into its wire payload.
func TestAdGroupTransformation(t *testing.T) {
	var logs bytes.Buffer
	a := newTransformAdapter(t, &logs)

	bid := 0.10
	g := domain.AdGroup{
		ID:     "g1",
		Name:   "Group",
		Status: domain.StatusActive,
		Settings: domain.AdGroupSettings{
			BidStrategy: "manual",
			BidAmount:   &bid,
			Budget:      &domain.Budget{Type: domain.BudgetLifetime, Amount: 500},
			Targeting:   domain.Targeting{Geos: []string{"US"}, Communities: []string{"r/golang"}},
		},
	}
	d := a.toAdGroupData(g, "pc-1")
	assert.Equal(t, "pc-1", d.CampaignID)
	assert.Equal(t, "ACTIVE", d.ConfiguredStatus)
	assert.Equal(t, "MANUAL_BIDDING", d.BidStrategy)
	assert.Equal(t, "CPC", d.BidType)
	require.NotNil(t, d.BidValue)
	assert.Equal(t, int64(100_000), *d.BidValue)
	assert.Equal(t, "LIFETIME_SPEND", d.GoalType)
	assert.Equal(t, int64(500_000_000), *d.GoalValue)
	require.NotNil(t, d.Targeting)
	assert.Equal(t, []string{"US"}, d.Targeting.Geolocations)

	g.Settings.BidStrategy = ""
	d = a.toAdGroupData(g, "pc-1")
	assert.Equal(t, "MAXIMIZE_VOLUME", d.BidStrategy)
	assert.Nil(t, d.BidValue, "automatic bidding sends no bid value")
}

// TestAdTransformation ensures an ad is transformed into its wire payload.
func TestAdTransformation(t *testing.T) {
	var logs bytes.Buffer
	a := newTransformAdapter(t, &logs)

	d := a.toAdData(domain.Ad{
		ID:          "a1",
		Headline:    strings.Repeat("h", 310),
		Description: strings.Repeat("b", 600),
		DisplayURL:  "shop.example.com/spring-sale",
		FinalURL:    " https://shop.example.com/spring ",
		Settings:    domain.AdSettings{Platform: map[string]json.RawMessage{"reddit": json.RawMessage(`{"postId":"t3_abc"}`)}},
	}, "pg-1")
	assert.Len(t, d.Headline, MaxHeadlineLength)
	assert.Len(t, d.Body, MaxBodyLength)
	assert.Equal(t, "shop.example.com/spring-s", d.DisplayURL)
	assert.Equal(t, "https://shop.example.com/spring", d.ClickURL)
	assert.Equal(t, "LEARN_MORE", d.CallToAction)
	assert.Equal(t, "PAUSED", d.ConfiguredStatus)
	assert.Equal(t, "t3_abc", d.PostID)
	assert.Equal(t, "pg-1", d.AdGroupID)
}
