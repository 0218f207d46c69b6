package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"campaign-sync/internal/core/domain"
)

// CreateCampaignSet inserts a whole set with its tree in one transaction.
// Missing order indexes follow slice order; zero timestamps default to now.
func (r *CampaignSetRepository) CreateCampaignSet(ctx context.Context, set *domain.CampaignSet) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	now := r.now()
	stamp := func(t time.Time) string {
		if t.IsZero() {
			t = now
		}
		return formatTime(t)
	}

	config, err := json.Marshal(set.Config)
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `INSERT INTO campaign_sets
    (id, user_id, ad_account_id, name, status, sync_status, config, created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?,?)`,
		set.ID, set.UserID, set.AdAccountID, set.Name,
		orDefault(string(set.Status), string(domain.SetStatusDraft)),
		orDefault(string(set.SyncStatus), string(domain.SetSyncStatusPending)),
		string(config), stamp(set.CreatedAt), stamp(set.UpdatedAt)); err != nil {
		return fmt.Errorf("insert campaign set %s: %w", set.ID, err)
	}

	for i, c := range set.Campaigns {
		var budget sql.NullString
		if c.Budget != nil {
			raw, err := json.Marshal(c.Budget)
			if err != nil {
				return err
			}
			budget = sql.NullString{String: string(raw), Valid: true}
		}
		settings, err := json.Marshal(c.Settings)
		if err != nil {
			return err
		}
		var lastSynced sql.NullString
		if c.LastSyncedAt != nil {
			lastSynced = sql.NullString{String: formatTime(*c.LastSyncedAt), Valid: true}
		}
		if _, err = tx.ExecContext(ctx, `INSERT INTO campaigns
    (id, campaign_set_id, name, platform, order_index, status, sync_status, platform_campaign_id,
     objective, budget, settings, created_at, updated_at, last_synced_at)
VALUES (?,?,?,?,?,?,?,NULLIF(?, ''),?,?,?,?,?,?)`,
			c.ID, set.ID, c.Name, string(c.Platform), orderIndex(c.OrderIndex, i),
			orDefault(c.Status, domain.StatusDraft), orDefault(string(c.SyncStatus), string(domain.SyncStatusPending)),
			c.PlatformCampaignID, c.Objective, budget, string(settings),
			stamp(c.CreatedAt), stamp(c.UpdatedAt), lastSynced); err != nil {
			return fmt.Errorf("insert campaign %s: %w", c.ID, err)
		}

		for j, g := range c.AdGroups {
			gs, err := json.Marshal(g.Settings)
			if err != nil {
				return err
			}
			if _, err = tx.ExecContext(ctx, `INSERT INTO ad_groups
    (id, campaign_id, name, order_index, status, settings, platform_ad_group_id, created_at, updated_at)
VALUES (?,?,?,?,?,?,NULLIF(?, ''),?,?)`,
				g.ID, c.ID, g.Name, orderIndex(g.OrderIndex, j), orDefault(g.Status, domain.StatusDraft),
				string(gs), g.PlatformAdGroupID, stamp(now), stamp(now)); err != nil {
				return fmt.Errorf("insert ad group %s: %w", g.ID, err)
			}

			for k, a := range g.Ads {
				as, err := json.Marshal(a.Settings)
				if err != nil {
					return err
				}
				if _, err = tx.ExecContext(ctx, `INSERT INTO ads
    (id, ad_group_id, headline, description, display_url, final_url, call_to_action,
     order_index, status, settings, platform_ad_id, created_at, updated_at)
VALUES (?,?,?,?,?,?,?,?,?,?,NULLIF(?, ''),?,?)`,
					a.ID, g.ID, a.Headline, a.Description, a.DisplayURL, a.FinalURL, a.CallToAction,
					orderIndex(a.OrderIndex, k), orDefault(a.Status, domain.StatusDraft), string(as),
					a.PlatformAdID, stamp(now), stamp(now)); err != nil {
					return fmt.Errorf("insert ad %s: %w", a.ID, err)
				}
			}
			for _, kw := range g.Keywords {
				if _, err = tx.ExecContext(ctx, `INSERT INTO keywords
    (id, ad_group_id, text, match_type, status, platform_keyword_id, created_at, updated_at)
VALUES (?,?,?,?,?,NULLIF(?, ''),?,?)`,
					kw.ID, g.ID, kw.Text, orDefault(string(kw.MatchType), string(domain.MatchBroad)),
					orDefault(kw.Status, domain.StatusDraft), kw.PlatformKeywordID, stamp(now), stamp(now)); err != nil {
					return fmt.Errorf("insert keyword %s: %w", kw.ID, err)
				}
			}
		}
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orderIndex(stored, position int) int {
	if stored != 0 {
		return stored
	}
	return position
}
