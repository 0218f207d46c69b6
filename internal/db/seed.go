package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"campaign-sync/internal/core/domain"
)

// SetWriter stores a whole campaign set. Both repositories implement it.
type SetWriter interface {
	CreateCampaignSet(ctx context.Context, set *domain.CampaignSet) error
}

// Seed inserts a demo campaign set for accountID and returns it. Campaigns
// are spread over the given platforms, so a platform without an adapter
// shows up as skipped in the first sync.
func Seed(ctx context.Context, w SetWriter, accountID string, platforms ...domain.Platform) (*domain.CampaignSet, error) {
	set := DemoCampaignSet(accountID, platforms...)
	if err := w.CreateCampaignSet(ctx, set); err != nil {
		return nil, fmt.Errorf("seed campaign set: %w", err)
	}
	return set, nil
}

// DemoCampaignSet builds a small valid tree: two campaigns per platform,
// each with two ad groups holding two ads and three keywords.
func DemoCampaignSet(accountID string, platforms ...domain.Platform) *domain.CampaignSet {
	if len(platforms) == 0 {
		platforms = []domain.Platform{domain.PlatformReddit, domain.PlatformGoogle}
	}
	set := &domain.CampaignSet{
		ID:          uuid.NewString(),
		UserID:      "demo-user",
		AdAccountID: accountID,
		Name:        "Demo campaign set",
		Status:      domain.SetStatusDraft,
		SyncStatus:  domain.SetSyncStatusPending,
		Config: domain.GenerationConfig{
			Platforms:           platforms,
			CampaignNamePattern: "{brand} - {platform} #{n}",
			AdGroupNamePattern:  "{topic}",
			Hierarchy:           []string{"brand", "topic"},
		},
	}

	matchTypes := []domain.MatchType{domain.MatchBroad, domain.MatchPhrase, domain.MatchExact}
	for _, p := range platforms {
		for n := 1; n <= 2; n++ {
			c := domain.Campaign{
				ID:        uuid.NewString(),
				Name:      fmt.Sprintf("Acme - %s #%d", p, n),
				Platform:  p,
				Status:    domain.StatusActive,
				Objective: "CLICKS",
				Budget:    &domain.Budget{Type: domain.BudgetDaily, Amount: 50, Currency: "USD"},
				Settings: domain.CampaignSettings{
					StartTime: domain.NewScheduleTime(true),
				},
			}
			for _, topic := range []string{"shoes", "boots"} {
				g := domain.AdGroup{
					ID:         uuid.NewString(),
					CampaignID: c.ID,
					Name:       fmt.Sprintf("%s %d", topic, n),
					Status:     domain.StatusActive,
				}
				for i := 1; i <= 2; i++ {
					g.Ads = append(g.Ads, domain.Ad{
						ID:           uuid.NewString(),
						AdGroupID:    g.ID,
						Headline:     fmt.Sprintf("Great %s %d", topic, i),
						Description:  fmt.Sprintf("All %s on sale", topic),
						FinalURL:     fmt.Sprintf("https://example.com/%s?v=%d", topic, i),
						CallToAction: "SHOP_NOW",
						Status:       domain.StatusActive,
					})
				}
				for _, mt := range matchTypes {
					g.Keywords = append(g.Keywords, domain.Keyword{
						ID:        uuid.NewString(),
						AdGroupID: g.ID,
						Text:      "buy " + topic,
						MatchType: mt,
						Status:    domain.StatusActive,
					})
				}
				c.AdGroups = append(c.AdGroups, g)
			}
			set.Campaigns = append(set.Campaigns, c)
		}
	}
	return set
}
