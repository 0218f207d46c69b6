package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CampaignSetRepository implements port.Store using pgxpool for PostgreSQL.
type CampaignSetRepository struct {
	pool *pgxpool.Pool
}

var _ port.Store = (*CampaignSetRepository)(nil)

// NewCampaignSetRepository returns a new repository instance.
func NewCampaignSetRepository(pool *pgxpool.Pool) *CampaignSetRepository {
	return &CampaignSetRepository{pool: pool}
}

// GetCampaignSetWithRelations loads the whole tree with one query per level,
// whatever the number of campaigns. It returns nil when the set does not
// exist.
func (r *CampaignSetRepository) GetCampaignSetWithRelations(ctx context.Context, id string) (*domain.CampaignSet, error) {
	var (
		set       domain.CampaignSet
		configRaw []byte
	)
	err := r.pool.QueryRow(ctx, `
        SELECT id, user_id, ad_account_id, name, status, sync_status, config, created_at, updated_at
        FROM campaign_sets
        WHERE id = $1`, id).
		Scan(&set.ID, &set.UserID, &set.AdAccountID, &set.Name, &set.Status, &set.SyncStatus, &configRaw, &set.CreatedAt, &set.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select campaign set: %w", err)
	}
	if err = unmarshalJSON(configRaw, &set.Config); err != nil {
		return nil, fmt.Errorf("campaign set %s config: %w", id, err)
	}

	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_set_id, name, platform, order_index, status, sync_status,
               COALESCE(platform_campaign_id, ''), objective, budget, settings,
               created_at, updated_at, last_synced_at
        FROM campaigns
        WHERE campaign_set_id = $1
        ORDER BY order_index, created_at, id`, id)
	if err != nil {
		return nil, fmt.Errorf("select campaigns: %w", err)
	}
	set.Campaigns, err = pgx.CollectRows(rows, scanCampaign)
	if err != nil {
		return nil, fmt.Errorf("scan campaigns: %w", err)
	}
	if len(set.Campaigns) == 0 {
		return &set, nil
	}

	campaignIDs := make([]string, len(set.Campaigns))
	for i, c := range set.Campaigns {
		campaignIDs[i] = c.ID
	}
	rows, err = r.pool.Query(ctx, `
        SELECT id, campaign_id, name, order_index, status, settings, COALESCE(platform_ad_group_id, '')
        FROM ad_groups
        WHERE campaign_id = ANY($1)
        ORDER BY order_index, created_at, id`, campaignIDs)
	if err != nil {
		return nil, fmt.Errorf("select ad groups: %w", err)
	}
	groups, err := pgx.CollectRows(rows, scanAdGroup)
	if err != nil {
		return nil, fmt.Errorf("scan ad groups: %w", err)
	}

	groupIDs := make([]string, len(groups))
	for i, g := range groups {
		groupIDs[i] = g.ID
	}
	var (
		ads      []domain.Ad
		keywords []domain.Keyword
	)
	if len(groupIDs) > 0 {
		rows, err = r.pool.Query(ctx, `
            SELECT id, ad_group_id, headline, description, display_url, final_url, call_to_action,
                   order_index, status, settings, COALESCE(platform_ad_id, '')
            FROM ads
            WHERE ad_group_id = ANY($1)
            ORDER BY order_index, created_at, id`, groupIDs)
		if err != nil {
			return nil, fmt.Errorf("select ads: %w", err)
		}
		if ads, err = pgx.CollectRows(rows, scanAd); err != nil {
			return nil, fmt.Errorf("scan ads: %w", err)
		}

		rows, err = r.pool.Query(ctx, `
            SELECT id, ad_group_id, text, match_type, status, COALESCE(platform_keyword_id, '')
            FROM keywords
            WHERE ad_group_id = ANY($1)
            ORDER BY created_at, id`, groupIDs)
		if err != nil {
			return nil, fmt.Errorf("select keywords: %w", err)
		}
		if keywords, err = pgx.CollectRows(rows, scanKeyword); err != nil {
			return nil, fmt.Errorf("scan keywords: %w", err)
		}
	}

	assemble(&set, groups, ads, keywords)
	return &set, nil
}

// assemble attaches children to their parents, keeping query order.
func assemble(set *domain.CampaignSet, groups []domain.AdGroup, ads []domain.Ad, keywords []domain.Keyword) {
	adsByGroup := make(map[string][]domain.Ad)
	for _, a := range ads {
		adsByGroup[a.AdGroupID] = append(adsByGroup[a.AdGroupID], a)
	}
	keywordsByGroup := make(map[string][]domain.Keyword)
	for _, k := range keywords {
		keywordsByGroup[k.AdGroupID] = append(keywordsByGroup[k.AdGroupID], k)
	}
	groupsByCampaign := make(map[string][]domain.AdGroup)
	for _, g := range groups {
		g.Ads = adsByGroup[g.ID]
		g.Keywords = keywordsByGroup[g.ID]
		groupsByCampaign[g.CampaignID] = append(groupsByCampaign[g.CampaignID], g)
	}
	for i := range set.Campaigns {
		set.Campaigns[i].AdGroups = groupsByCampaign[set.Campaigns[i].ID]
	}
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var (
		c           domain.Campaign
		budgetRaw   []byte
		settingsRaw []byte
	)
	err := row.Scan(&c.ID, &c.CampaignSetID, &c.Name, &c.Platform, &c.OrderIndex, &c.Status, &c.SyncStatus,
		&c.PlatformCampaignID, &c.Objective, &budgetRaw, &settingsRaw, &c.CreatedAt, &c.UpdatedAt, &c.LastSyncedAt)
	if err != nil {
		return c, err
	}
	if len(budgetRaw) > 0 && string(budgetRaw) != "null" {
		c.Budget = new(domain.Budget)
		if err = json.Unmarshal(budgetRaw, c.Budget); err != nil {
			return c, fmt.Errorf("campaign %s budget: %w", c.ID, err)
		}
	}
	if err = unmarshalJSON(settingsRaw, &c.Settings); err != nil {
		return c, fmt.Errorf("campaign %s settings: %w", c.ID, err)
	}
	return c, nil
}

func scanAdGroup(row pgx.CollectableRow) (domain.AdGroup, error) {
	var (
		g           domain.AdGroup
		settingsRaw []byte
	)
	if err := row.Scan(&g.ID, &g.CampaignID, &g.Name, &g.OrderIndex, &g.Status, &settingsRaw, &g.PlatformAdGroupID); err != nil {
		return g, err
	}
	if err := unmarshalJSON(settingsRaw, &g.Settings); err != nil {
		return g, fmt.Errorf("ad group %s settings: %w", g.ID, err)
	}
	return g, nil
}

func scanAd(row pgx.CollectableRow) (domain.Ad, error) {
	var (
		a           domain.Ad
		settingsRaw []byte
	)
	err := row.Scan(&a.ID, &a.AdGroupID, &a.Headline, &a.Description, &a.DisplayURL, &a.FinalURL, &a.CallToAction,
		&a.OrderIndex, &a.Status, &settingsRaw, &a.PlatformAdID)
	if err != nil {
		return a, err
	}
	if err = unmarshalJSON(settingsRaw, &a.Settings); err != nil {
		return a, fmt.Errorf("ad %s settings: %w", a.ID, err)
	}
	return a, nil
}

func scanKeyword(row pgx.CollectableRow) (domain.Keyword, error) {
	var k domain.Keyword
	err := row.Scan(&k.ID, &k.AdGroupID, &k.Text, &k.MatchType, &k.Status, &k.PlatformKeywordID)
	return k, err
}

func unmarshalJSON(raw []byte, v any) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// UpdateCampaignSetStatus sets the aggregate sync status of a set.
func (r *CampaignSetRepository) UpdateCampaignSetStatus(ctx context.Context, id string, status domain.SetSyncStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaign_sets SET sync_status = $2, updated_at = now() WHERE id = $1`, id, string(status))
	return expectOne(tag, err, domain.EntityCampaignSet, id)
}

// UpdateCampaignSyncStatus sets a campaign's sync status. A successful sync
// also stamps last_synced_at; updated_at is left alone so reconciliation
// does not mistake the sync for a local edit.
func (r *CampaignSetRepository) UpdateCampaignSyncStatus(ctx context.Context, id string, status domain.SyncStatus) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns
        SET sync_status = $2,
            last_synced_at = CASE WHEN $2 = 'synced' THEN now() ELSE last_synced_at END
        WHERE id = $1`, id, string(status))
	return expectOne(tag, err, domain.EntityCampaign, id)
}

// UpdateCampaignPlatformID stores the platform id of a campaign.
func (r *CampaignSetRepository) UpdateCampaignPlatformID(ctx context.Context, id, platformID string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET platform_campaign_id = $2 WHERE id = $1`, id, platformID)
	return expectOne(tag, err, domain.EntityCampaign, id)
}

// UpdateAdGroupPlatformID stores the platform id of an ad group.
func (r *CampaignSetRepository) UpdateAdGroupPlatformID(ctx context.Context, id, platformID string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE ad_groups SET platform_ad_group_id = $2 WHERE id = $1`, id, platformID)
	return expectOne(tag, err, domain.EntityAdGroup, id)
}

// UpdateAdPlatformID stores the platform id of an ad.
func (r *CampaignSetRepository) UpdateAdPlatformID(ctx context.Context, id, platformID string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE ads SET platform_ad_id = $2 WHERE id = $1`, id, platformID)
	return expectOne(tag, err, domain.EntityAd, id)
}

// UpdateKeywordPlatformID stores the platform id of a keyword.
func (r *CampaignSetRepository) UpdateKeywordPlatformID(ctx context.Context, id, platformID string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE keywords SET platform_keyword_id = $2 WHERE id = $1`, id, platformID)
	return expectOne(tag, err, domain.EntityKeyword, id)
}

func expectOne(tag pgconn.CommandTag, err error, t domain.EntityType, id string) error {
	if err != nil {
		return fmt.Errorf("update %s %s: %w", t, id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update %s %s: %w", t, id, port.ErrEntityNotFound)
	}
	return nil
}

// GetSyncedCampaignsForAccount returns the account's campaigns that have a
// platform id, ordered by platform. Campaigns already flagged as deleted on
// the platform are left out.
func (r *CampaignSetRepository) GetSyncedCampaignsForAccount(ctx context.Context, accountID string) ([]domain.SyncedCampaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT c.id, c.platform, c.platform_campaign_id, c.name, c.status, c.updated_at, c.last_synced_at
        FROM campaigns c
        JOIN campaign_sets s ON s.id = c.campaign_set_id
        WHERE s.ad_account_id = $1
          AND c.platform_campaign_id IS NOT NULL AND c.platform_campaign_id <> ''
          AND c.sync_status <> 'deleted_on_platform'
        ORDER BY c.platform, s.id, c.order_index, c.id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("select synced campaigns: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SyncedCampaign, error) {
		var c domain.SyncedCampaign
		err := row.Scan(&c.ID, &c.Platform, &c.PlatformCampaignID, &c.Name, &c.Status, &c.UpdatedAt, &c.LastSyncedAt)
		return c, err
	})
}

// MarkCampaignConflict records the conflict and leaves local fields as they
// are.
func (r *CampaignSetRepository) MarkCampaignConflict(ctx context.Context, id string, conflict domain.SyncConflict) error {
	raw, err := json.Marshal(conflict)
	if err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET sync_status = 'conflict', conflict = $2 WHERE id = $1`, id, raw)
	return expectOne(tag, err, domain.EntityCampaign, id)
}

// UpdateCampaignFromPlatform overwrites status and name with the platform's
// values. updated_at and last_synced_at get the same instant so the next
// reconciliation sees no local edit.
func (r *CampaignSetRepository) UpdateCampaignFromPlatform(ctx context.Context, id string, u domain.PlatformCampaignUpdate) error {
	syncedAt := u.SyncedAt
	if syncedAt.IsZero() {
		syncedAt = time.Now()
	}
	tag, err := r.pool.Exec(ctx, `
        UPDATE campaigns
        SET status = $2,
            name = COALESCE(NULLIF($3, ''), name),
            platform_campaign_id = COALESCE(NULLIF($4, ''), platform_campaign_id),
            sync_status = 'synced',
            conflict = NULL,
            last_synced_at = $5,
            updated_at = $5
        WHERE id = $1`, id, u.Status, u.Name, u.PlatformID, syncedAt)
	return expectOne(tag, err, domain.EntityCampaign, id)
}

// MarkCampaignDeletedOnPlatform flags a campaign the platform no longer has.
func (r *CampaignSetRepository) MarkCampaignDeletedOnPlatform(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE campaigns SET sync_status = 'deleted_on_platform' WHERE id = $1`, id)
	return expectOne(tag, err, domain.EntityCampaign, id)
}
