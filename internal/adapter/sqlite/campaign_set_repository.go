// Package sqlite is the embedded store used for local runs and tests. It
// satisfies the same port.Store contract as the postgres repository.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campaign-sync/internal/core/domain"
	"campaign-sync/internal/core/port"
)

// timeLayout is how timestamps are stored in TEXT columns.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// CampaignSetRepository implements port.Store on database/sql with the
// ncruces sqlite driver.
type CampaignSetRepository struct {
	db  *sql.DB
	now func() time.Time
}

var _ port.Store = (*CampaignSetRepository)(nil)

// NewCampaignSetRepository returns a repository over an opened database
// whose schema is already applied (see db.OpenSQLite).
func NewCampaignSetRepository(db *sql.DB) *CampaignSetRepository {
	return &CampaignSetRepository{db: db, now: time.Now}
}

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

func parseNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func unmarshalJSON(raw sql.NullString, v any) error {
	if !raw.Valid || raw.String == "" || raw.String == "null" {
		return nil
	}
	return json.Unmarshal([]byte(raw.String), v)
}

// GetCampaignSetWithRelations loads the tree with one query per level. Child
// levels join back to the set instead of passing id lists.
func (r *CampaignSetRepository) GetCampaignSetWithRelations(ctx context.Context, id string) (*domain.CampaignSet, error) {
	var (
		set                  domain.CampaignSet
		config               sql.NullString
		createdAt, updatedAt string
	)
	err := r.db.QueryRowContext(ctx, `
        SELECT id, user_id, ad_account_id, name, status, sync_status, config, created_at, updated_at
        FROM campaign_sets WHERE id = ?`, id).
		Scan(&set.ID, &set.UserID, &set.AdAccountID, &set.Name, &set.Status, &set.SyncStatus, &config, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select campaign set: %w", err)
	}
	if set.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if set.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	if err = unmarshalJSON(config, &set.Config); err != nil {
		return nil, fmt.Errorf("campaign set %s config: %w", id, err)
	}

	if set.Campaigns, err = r.campaigns(ctx, id); err != nil {
		return nil, err
	}
	if len(set.Campaigns) == 0 {
		return &set, nil
	}
	groups, err := r.adGroups(ctx, id)
	if err != nil {
		return nil, err
	}
	ads, err := r.ads(ctx, id)
	if err != nil {
		return nil, err
	}
	keywords, err := r.keywords(ctx, id)
	if err != nil {
		return nil, err
	}
	assemble(&set, groups, ads, keywords)
	return &set, nil
}

func (r *CampaignSetRepository) campaigns(ctx context.Context, setID string) ([]domain.Campaign, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, campaign_set_id, name, platform, order_index, status, sync_status,
               COALESCE(platform_campaign_id, ''), objective, budget, settings,
               created_at, updated_at, last_synced_at
        FROM campaigns
        WHERE campaign_set_id = ?
        ORDER BY order_index, created_at, id`, setID)
	if err != nil {
		return nil, fmt.Errorf("select campaigns: %w", err)
	}
	defer rows.Close()

	var out []domain.Campaign
	for rows.Next() {
		var (
			c                    domain.Campaign
			budget, settings     sql.NullString
			createdAt, updatedAt string
			lastSynced           sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.CampaignSetID, &c.Name, &c.Platform, &c.OrderIndex, &c.Status, &c.SyncStatus,
			&c.PlatformCampaignID, &c.Objective, &budget, &settings, &createdAt, &updatedAt, &lastSynced); err != nil {
			return nil, fmt.Errorf("scan campaign: %w", err)
		}
		if budget.Valid && budget.String != "" && budget.String != "null" {
			c.Budget = new(domain.Budget)
			if err := json.Unmarshal([]byte(budget.String), c.Budget); err != nil {
				return nil, fmt.Errorf("campaign %s budget: %w", c.ID, err)
			}
		}
		if err := unmarshalJSON(settings, &c.Settings); err != nil {
			return nil, fmt.Errorf("campaign %s settings: %w", c.ID, err)
		}
		if c.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		if c.LastSyncedAt, err = parseNullTime(lastSynced); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CampaignSetRepository) adGroups(ctx context.Context, setID string) ([]domain.AdGroup, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT g.id, g.campaign_id, g.name, g.order_index, g.status, g.settings, COALESCE(g.platform_ad_group_id, '')
        FROM ad_groups g
        JOIN campaigns c ON c.id = g.campaign_id
        WHERE c.campaign_set_id = ?
        ORDER BY g.order_index, g.created_at, g.id`, setID)
	if err != nil {
		return nil, fmt.Errorf("select ad groups: %w", err)
	}
	defer rows.Close()

	var out []domain.AdGroup
	for rows.Next() {
		var (
			g        domain.AdGroup
			settings sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.CampaignID, &g.Name, &g.OrderIndex, &g.Status, &settings, &g.PlatformAdGroupID); err != nil {
			return nil, fmt.Errorf("scan ad group: %w", err)
		}
		if err := unmarshalJSON(settings, &g.Settings); err != nil {
			return nil, fmt.Errorf("ad group %s settings: %w", g.ID, err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *CampaignSetRepository) ads(ctx context.Context, setID string) ([]domain.Ad, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT a.id, a.ad_group_id, a.headline, a.description, a.display_url, a.final_url, a.call_to_action,
               a.order_index, a.status, a.settings, COALESCE(a.platform_ad_id, '')
        FROM ads a
        JOIN ad_groups g ON g.id = a.ad_group_id
        JOIN campaigns c ON c.id = g.campaign_id
        WHERE c.campaign_set_id = ?
        ORDER BY a.order_index, a.created_at, a.id`, setID)
	if err != nil {
		return nil, fmt.Errorf("select ads: %w", err)
	}
	defer rows.Close()

	var out []domain.Ad
	for rows.Next() {
		var (
			a        domain.Ad
			settings sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.AdGroupID, &a.Headline, &a.Description, &a.DisplayURL, &a.FinalURL,
			&a.CallToAction, &a.OrderIndex, &a.Status, &settings, &a.PlatformAdID); err != nil {
			return nil, fmt.Errorf("scan ad: %w", err)
		}
		if err := unmarshalJSON(settings, &a.Settings); err != nil {
			return nil, fmt.Errorf("ad %s settings: %w", a.ID, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *CampaignSetRepository) keywords(ctx context.Context, setID string) ([]domain.Keyword, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT k.id, k.ad_group_id, k.text, k.match_type, k.status, COALESCE(k.platform_keyword_id, '')
        FROM keywords k
        JOIN ad_groups g ON g.id = k.ad_group_id
        JOIN campaigns c ON c.id = g.campaign_id
        WHERE c.campaign_set_id = ?
        ORDER BY k.created_at, k.rowid`, setID)
	if err != nil {
		return nil, fmt.Errorf("select keywords: %w", err)
	}
	defer rows.Close()

	var out []domain.Keyword
	for rows.Next() {
		var k domain.Keyword
		if err := rows.Scan(&k.ID, &k.AdGroupID, &k.Text, &k.MatchType, &k.Status, &k.PlatformKeywordID); err != nil {
			return nil, fmt.Errorf("scan keyword: %w", err)
		}
		out = append(out, k)
	}
	return out, rows.Err()
}

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

func (r *CampaignSetRepository) exec(ctx context.Context, t domain.EntityType, id, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update %s %s: %w", t, id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s %s: %w", t, id, err)
	}
	if n == 0 {
		return fmt.Errorf("update %s %s: %w", t, id, port.ErrEntityNotFound)
	}
	return nil
}

// UpdateCampaignSetStatus sets the aggregate sync status of a set.
func (r *CampaignSetRepository) UpdateCampaignSetStatus(ctx context.Context, id string, status domain.SetSyncStatus) error {
	return r.exec(ctx, domain.EntityCampaignSet, id,
		`UPDATE campaign_sets SET sync_status = ?, updated_at = ? WHERE id = ?`, string(status), formatTime(r.now()), id)
}

// UpdateCampaignSyncStatus sets a campaign's sync status and stamps
// last_synced_at on success.
func (r *CampaignSetRepository) UpdateCampaignSyncStatus(ctx context.Context, id string, status domain.SyncStatus) error {
	if status == domain.SyncStatusSynced {
		return r.exec(ctx, domain.EntityCampaign, id,
			`UPDATE campaigns SET sync_status = ?, last_synced_at = ? WHERE id = ?`, string(status), formatTime(r.now()), id)
	}
	return r.exec(ctx, domain.EntityCampaign, id, `UPDATE campaigns SET sync_status = ? WHERE id = ?`, string(status), id)
}

// UpdateCampaignPlatformID stores the platform id of a campaign.
func (r *CampaignSetRepository) UpdateCampaignPlatformID(ctx context.Context, id, platformID string) error {
	return r.exec(ctx, domain.EntityCampaign, id, `UPDATE campaigns SET platform_campaign_id = ? WHERE id = ?`, platformID, id)
}

// UpdateAdGroupPlatformID stores the platform id of an ad group.
func (r *CampaignSetRepository) UpdateAdGroupPlatformID(ctx context.Context, id, platformID string) error {
	return r.exec(ctx, domain.EntityAdGroup, id, `UPDATE ad_groups SET platform_ad_group_id = ? WHERE id = ?`, platformID, id)
}

// UpdateAdPlatformID stores the platform id of an ad.
func (r *CampaignSetRepository) UpdateAdPlatformID(ctx context.Context, id, platformID string) error {
	return r.exec(ctx, domain.EntityAd, id, `UPDATE ads SET platform_ad_id = ? WHERE id = ?`, platformID, id)
}

// UpdateKeywordPlatformID stores the platform id of a keyword.
func (r *CampaignSetRepository) UpdateKeywordPlatformID(ctx context.Context, id, platformID string) error {
	return r.exec(ctx, domain.EntityKeyword, id, `UPDATE keywords SET platform_keyword_id = ? WHERE id = ?`, platformID, id)
}

// GetSyncedCampaignsForAccount returns the account's campaigns that have a
// platform id and are not flagged as deleted on the platform.
func (r *CampaignSetRepository) GetSyncedCampaignsForAccount(ctx context.Context, accountID string) ([]domain.SyncedCampaign, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT c.id, c.platform, c.platform_campaign_id, c.name, c.status, c.updated_at, c.last_synced_at
        FROM campaigns c
        JOIN campaign_sets s ON s.id = c.campaign_set_id
        WHERE s.ad_account_id = ?
          AND c.platform_campaign_id IS NOT NULL AND c.platform_campaign_id <> ''
          AND c.sync_status <> 'deleted_on_platform'
        ORDER BY c.platform, s.id, c.order_index, c.id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("select synced campaigns: %w", err)
	}
	defer rows.Close()

	var out []domain.SyncedCampaign
	for rows.Next() {
		var (
			c          domain.SyncedCampaign
			updatedAt  string
			lastSynced sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Platform, &c.PlatformCampaignID, &c.Name, &c.Status, &updatedAt, &lastSynced); err != nil {
			return nil, fmt.Errorf("scan synced campaign: %w", err)
		}
		if c.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		if c.LastSyncedAt, err = parseNullTime(lastSynced); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// MarkCampaignConflict records the conflict and leaves local fields as they
// are.
func (r *CampaignSetRepository) MarkCampaignConflict(ctx context.Context, id string, conflict domain.SyncConflict) error {
	raw, err := json.Marshal(conflict)
	if err != nil {
		return err
	}
	return r.exec(ctx, domain.EntityCampaign, id,
		`UPDATE campaigns SET sync_status = 'conflict', conflict = ? WHERE id = ?`, string(raw), id)
}

// UpdateCampaignFromPlatform overwrites status and name with the platform's
// values and stamps updated_at and last_synced_at with the same instant.
func (r *CampaignSetRepository) UpdateCampaignFromPlatform(ctx context.Context, id string, u domain.PlatformCampaignUpdate) error {
	syncedAt := u.SyncedAt
	if syncedAt.IsZero() {
		syncedAt = r.now()
	}
	ts := formatTime(syncedAt)
	return r.exec(ctx, domain.EntityCampaign, id, `
        UPDATE campaigns
        SET status = ?,
            name = COALESCE(NULLIF(?, ''), name),
            platform_campaign_id = COALESCE(NULLIF(?, ''), platform_campaign_id),
            sync_status = 'synced',
            conflict = NULL,
            last_synced_at = ?,
            updated_at = ?
        WHERE id = ?`, u.Status, u.Name, u.PlatformID, ts, ts, id)
}

// MarkCampaignDeletedOnPlatform flags a campaign the platform no longer has.
func (r *CampaignSetRepository) MarkCampaignDeletedOnPlatform(ctx context.Context, id string) error {
	return r.exec(ctx, domain.EntityCampaign, id, `UPDATE campaigns SET sync_status = 'deleted_on_platform' WHERE id = ?`, id)
}

// CampaignConflict returns the conflict recorded for a campaign, if any.
func (r *CampaignSetRepository) CampaignConflict(ctx context.Context, id string) (*domain.SyncConflict, error) {
	var raw sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT conflict FROM campaigns WHERE id = ?`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && !raw.Valid) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var c domain.SyncConflict
	if err := json.Unmarshal([]byte(raw.String), &c); err != nil {
		return nil, err
	}
	return &c, nil
}
