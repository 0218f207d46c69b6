package usecase

import (
	"fmt"
	"io"
	"log/slog"

	"campaign-sync/internal/adapter/platform"
	"campaign-sync/internal/adapter/platform/mock"
	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port/mocks"

	testmock "github.com/stretchr/testify/mock"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// newCampaign builds a campaign with one ad group holding one ad and one
// keyword.
func newCampaign(id string, p domain.Platform) domain.Campaign {
	return domain.Campaign{
		ID:        id,
		Name:      "Campaign " + id,
		Platform:  p,
		Objective: "CLICKS",
		Status:    domain.StatusActive,
		AdGroups: []domain.AdGroup{{
			ID:         id + "-g",
			CampaignID: id,
			Name:       "Group " + id,
			Ads: []domain.Ad{{
				ID:        id + "-a",
				AdGroupID: id + "-g",
				Headline:  "Headline " + id,
				FinalURL:  "https://example.com/" + id,
			}},
			Keywords: []domain.Keyword{{
				ID:        id + "-k",
				AdGroupID: id + "-g",
				Text:      "kw " + id,
				MatchType: domain.MatchBroad,
			}},
		}},
	}
}

func newSet(id string, campaigns ...domain.Campaign) *domain.CampaignSet {
	return &domain.CampaignSet{ID: id, Name: "Set " + id, Status: domain.SetStatusDraft, Campaigns: campaigns}
}

func manyCampaigns(n int, p domain.Platform) []domain.Campaign {
	out := make([]domain.Campaign, n)
	for i := range out {
		out[i] = newCampaign(fmt.Sprintf("c%03d", i), p)
	}
	return out
}

// allowWrites lets every repository write succeed any number of times.
func allowWrites(repo *mocks.MockCampaignSetRepository) {
	repo.EXPECT().UpdateCampaignSetStatus(testmock.Anything, testmock.Anything, testmock.Anything).Return(nil).Maybe()
	repo.EXPECT().UpdateCampaignSyncStatus(testmock.Anything, testmock.Anything, testmock.Anything).Return(nil).Maybe()
	repo.EXPECT().UpdateCampaignPlatformID(testmock.Anything, testmock.Anything, testmock.Anything).Return(nil).Maybe()
	repo.EXPECT().UpdateAdGroupPlatformID(testmock.Anything, testmock.Anything, testmock.Anything).Return(nil).Maybe()
	repo.EXPECT().UpdateAdPlatformID(testmock.Anything, testmock.Anything, testmock.Anything).Return(nil).Maybe()
	repo.EXPECT().UpdateKeywordPlatformID(testmock.Anything, testmock.Anything, testmock.Anything).Return(nil).Maybe()
}

func registry(adapters ...*mock.Adapter) *platform.Registry {
	r := platform.NewRegistry()
	for _, a := range adapters {
		r.Register(a.Platform(), a)
	}
	return r
}
