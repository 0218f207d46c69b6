// Package reddit is the Reddit Ads API v3 platform adapter. All unit
// conversion, vocabulary mapping and truncation for Reddit happens here.
package reddit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
	"campaign-sync/internal/core/validation"
)

// Config configures the adapter.
type Config struct {
	BaseURL   string
	AccountID string
	// Timeout bounds each API request.
	Timeout             time.Duration
	FundingInstrumentID string
	// DisableLookups skips the name-based dedup lookup before creates.
	DisableLookups bool
}

// Adapter implements port.PlatformAdapter and port.CampaignStatusReader for
// Reddit.
type Adapter struct {
	client              *Client
	accountID           string
	fundingInstrumentID string
	lookups             bool
	defaults            *validation.Defaults
	logger              *slog.Logger
	now                 func() time.Time
}

var (
	_ port.PlatformAdapter      = (*Adapter)(nil)
	_ port.CampaignStatusReader = (*Adapter)(nil)
	_ port.StatusComparer       = (*Adapter)(nil)
)

// New returns a Reddit adapter. defaults may be nil, in which case the
// built-in platform defaults are used.
func New(cfg Config, tokens port.TokenProvider, defaults *validation.Defaults, logger *slog.Logger) (*Adapter, error) {
	if cfg.AccountID == "" {
		return nil, errors.New("reddit: account id is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("platform", string(domain.PlatformReddit)))
	client, err := NewClient(cfg.BaseURL, tokens, cfg.Timeout, logger)
	if err != nil {
		return nil, err
	}
	if defaults == nil {
		defaults = validation.NewDefaults(nil)
	}
	return &Adapter{
		client:              client,
		accountID:           cfg.AccountID,
		fundingInstrumentID: cfg.FundingInstrumentID,
		lookups:             !cfg.DisableLookups,
		defaults:            defaults,
		logger:              logger,
		now:                 time.Now,
	}, nil
}

// Platform implements port.PlatformAdapter.
func (a *Adapter) Platform() domain.Platform { return domain.PlatformReddit }

// Capabilities implements port.PlatformAdapter. Reddit has no keywords.
func (a *Adapter) Capabilities() port.Capabilities {
	return port.Capabilities{Keywords: false, AdGroupPause: true, AdPause: true}
}

func (a *Adapter) accountPath(collection string) string {
	return fmt.Sprintf("/ad_accounts/%s/%s", url.PathEscape(a.accountID), collection)
}

func entityPath(collection, id string) string {
	return fmt.Sprintf("/%s/%s", collection, url.PathEscape(id))
}

func missing(field, msg string) error {
	return &port.OperationError{Code: port.CodeMissingRequired, Message: fmt.Sprintf("%s: %s", field, msg)}
}

func (a *Adapter) create(ctx context.Context, op, path string, in any) (string, error) {
	var out envelope[struct {
		ID string `json:"id"`
	}]
	if err := a.client.do(ctx, http.MethodPost, path, in, &out); err != nil {
		return "", toOperationError(op, err)
	}
	if out.Data.ID == "" {
		return "", &port.OperationError{Code: port.CodePlatformError, Message: op + ": response has no id"}
	}
	return out.Data.ID, nil
}

func (a *Adapter) update(ctx context.Context, op, path, platformID string, in any) (string, error) {
	if platformID == "" {
		return "", missing("platform id", "required for update")
	}
	var out envelope[struct {
		ID string `json:"id"`
	}]
	if err := a.client.do(ctx, http.MethodPatch, path, in, &out); err != nil {
		return "", toOperationError(op, err)
	}
	if out.Data.ID != "" {
		return out.Data.ID, nil
	}
	return platformID, nil
}

func (a *Adapter) setStatus(ctx context.Context, op, collection, platformID, status string) error {
	if platformID == "" {
		return missing("platform id", "required")
	}
	err := a.client.do(ctx, http.MethodPatch, entityPath(collection, platformID), statusData{ConfiguredStatus: status}, nil)
	return toOperationError(op, err)
}

func (a *Adapter) remove(ctx context.Context, op, collection, platformID string) error {
	if platformID == "" {
		return missing("platform id", "required")
	}
	return toOperationError(op, a.client.do(ctx, http.MethodDelete, entityPath(collection, platformID), nil, nil))
}

// lookup runs a dedup lookup. A failing lookup is logged and treated as
// "not found" so the create still happens.
func (a *Adapter) lookup(kind, name string, find func() (string, error)) string {
	if !a.lookups {
		return ""
	}
	id, err := find()
	if err != nil {
		a.logger.Warn("dedup lookup failed, creating anyway",
			slog.String("entity", kind), slog.String("name", name), slog.Any("error", err))
		return ""
	}
	if id != "" {
		a.logger.Info("reusing existing platform entity",
			slog.String("entity", kind), slog.String("name", name), slog.String("platform_id", id))
	}
	return id
}

// CreateCampaign implements port.CampaignOperations.
func (a *Adapter) CreateCampaign(ctx context.Context, c domain.Campaign) (string, error) {
	if strings.TrimSpace(c.Name) == "" {
		return "", missing("name", "campaign name is required")
	}
	data := a.toCampaignData(c)
	if id := a.lookup("campaign", data.Name, func() (string, error) {
		return a.FindExistingCampaign(ctx, data.Name)
	}); id != "" {
		return id, nil
	}
	return a.create(ctx, "create campaign", a.accountPath("campaigns"), data)
}

// UpdateCampaign implements port.CampaignOperations.
func (a *Adapter) UpdateCampaign(ctx context.Context, c domain.Campaign, platformID string) (string, error) {
	return a.update(ctx, "update campaign", entityPath("campaigns", platformID), platformID, a.toCampaignData(c))
}

// DeleteCampaign implements port.CampaignOperations.
func (a *Adapter) DeleteCampaign(ctx context.Context, platformID string) error {
	return a.remove(ctx, "delete campaign", "campaigns", platformID)
}

// PauseCampaign implements port.CampaignOperations.
func (a *Adapter) PauseCampaign(ctx context.Context, platformID string) error {
	return a.setStatus(ctx, "pause campaign", "campaigns", platformID, "PAUSED")
}

// ResumeCampaign implements port.CampaignOperations.
func (a *Adapter) ResumeCampaign(ctx context.Context, platformID string) error {
	return a.setStatus(ctx, "resume campaign", "campaigns", platformID, "ACTIVE")
}

// CreateAdGroup implements port.AdGroupOperations.
func (a *Adapter) CreateAdGroup(ctx context.Context, g domain.AdGroup, platformCampaignID string) (string, error) {
	if platformCampaignID == "" {
		return "", missing("campaign_id", "parent campaign has no platform id")
	}
	if strings.TrimSpace(g.Name) == "" {
		return "", missing("name", "ad group name is required")
	}
	data := a.toAdGroupData(g, platformCampaignID)
	if id := a.lookup("ad_group", data.Name, func() (string, error) {
		return a.FindExistingAdGroup(ctx, platformCampaignID, data.Name)
	}); id != "" {
		return id, nil
	}
	return a.create(ctx, "create ad group", a.accountPath("ad_groups"), data)
}

// UpdateAdGroup implements port.AdGroupOperations.
func (a *Adapter) UpdateAdGroup(ctx context.Context, g domain.AdGroup, platformID string) (string, error) {
	data := a.toAdGroupData(g, "")
	return a.update(ctx, "update ad group", entityPath("ad_groups", platformID), platformID, data)
}

// DeleteAdGroup implements port.AdGroupOperations.
func (a *Adapter) DeleteAdGroup(ctx context.Context, platformID string) error {
	return a.remove(ctx, "delete ad group", "ad_groups", platformID)
}

// PauseAdGroup implements port.AdGroupOperations.
func (a *Adapter) PauseAdGroup(ctx context.Context, platformID string) error {
	return a.setStatus(ctx, "pause ad group", "ad_groups", platformID, "PAUSED")
}

// ResumeAdGroup implements port.AdGroupOperations.
func (a *Adapter) ResumeAdGroup(ctx context.Context, platformID string) error {
	return a.setStatus(ctx, "resume ad group", "ad_groups", platformID, "ACTIVE")
}

// CreateAd implements port.AdOperations. The destination URL is checked
// before any request is made.
func (a *Adapter) CreateAd(ctx context.Context, ad domain.Ad, platformAdGroupID string) (string, error) {
	if platformAdGroupID == "" {
		return "", missing("ad_group_id", "parent ad group has no platform id")
	}
	if strings.TrimSpace(ad.FinalURL) == "" {
		return "", missing("click_url", "ad destination URL is required")
	}
	data := a.toAdData(ad, platformAdGroupID)
	if id := a.lookup("ad", data.Name, func() (string, error) {
		return a.FindExistingAd(ctx, platformAdGroupID, data.Name)
	}); id != "" {
		return id, nil
	}
	return a.create(ctx, "create ad", a.accountPath("ads"), data)
}

// UpdateAd implements port.AdOperations.
func (a *Adapter) UpdateAd(ctx context.Context, ad domain.Ad, platformID string) (string, error) {
	if strings.TrimSpace(ad.FinalURL) == "" {
		return "", missing("click_url", "ad destination URL is required")
	}
	return a.update(ctx, "update ad", entityPath("ads", platformID), platformID, a.toAdData(ad, ""))
}

// DeleteAd implements port.AdOperations.
func (a *Adapter) DeleteAd(ctx context.Context, platformID string) error {
	return a.remove(ctx, "delete ad", "ads", platformID)
}

// PauseAd implements port.AdOperations.
func (a *Adapter) PauseAd(ctx context.Context, platformID string) error {
	return a.setStatus(ctx, "pause ad", "ads", platformID, "PAUSED")
}

// ResumeAd implements port.AdOperations.
func (a *Adapter) ResumeAd(ctx context.Context, platformID string) error {
	return a.setStatus(ctx, "resume ad", "ads", platformID, "ACTIVE")
}

// CreateKeyword implements port.KeywordOperations. Reddit has no keyword
// entity; the keyword's own id is passed through.
func (a *Adapter) CreateKeyword(_ context.Context, k domain.Keyword, _ string) (string, error) {
	if k.PlatformKeywordID != "" {
		return k.PlatformKeywordID, nil
	}
	return k.ID, nil
}

// UpdateKeyword implements port.KeywordOperations as a no-op.
func (a *Adapter) UpdateKeyword(_ context.Context, k domain.Keyword, platformID string) (string, error) {
	if platformID != "" {
		return platformID, nil
	}
	return k.ID, nil
}

// DeleteKeyword implements port.KeywordOperations as a no-op.
func (a *Adapter) DeleteKeyword(context.Context, string) error { return nil }
