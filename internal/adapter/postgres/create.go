package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"campaign-sync/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// CreateCampaignSet inserts a whole set with its tree in one transaction.
// Missing order indexes follow slice order.
func (r *CampaignSetRepository) CreateCampaignSet(ctx context.Context, set *domain.CampaignSet) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	b := &pgx.Batch{}
	if err = queueCampaignSet(b, set); err != nil {
		return err
	}
	if err = tx.SendBatch(ctx, b).Close(); err != nil {
		return fmt.Errorf("insert campaign set %s: %w", set.ID, err)
	}
	return nil
}

func queueCampaignSet(b *pgx.Batch, set *domain.CampaignSet) error {
	config, err := json.Marshal(set.Config)
	if err != nil {
		return err
	}
	syncStatus := set.SyncStatus
	if syncStatus == "" {
		syncStatus = domain.SetSyncStatusPending
	}
	b.Queue(`INSERT INTO campaign_sets (id, user_id, ad_account_id, name, status, sync_status, config)
VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		set.ID, set.UserID, set.AdAccountID, set.Name, orDefault(string(set.Status), string(domain.SetStatusDraft)), string(syncStatus), config)

	for i, c := range set.Campaigns {
		var budget []byte
		if c.Budget != nil {
			if budget, err = json.Marshal(c.Budget); err != nil {
				return err
			}
		}
		settings, err := json.Marshal(c.Settings)
		if err != nil {
			return err
		}
		b.Queue(`INSERT INTO campaigns
    (id, campaign_set_id, name, platform, order_index, status, sync_status, platform_campaign_id, objective, budget, settings, last_synced_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,NULLIF($8,''),$9,$10,$11,$12)`,
			c.ID, set.ID, c.Name, string(c.Platform), orderIndex(c.OrderIndex, i),
			orDefault(c.Status, domain.StatusDraft), orDefault(string(c.SyncStatus), string(domain.SyncStatusPending)),
			c.PlatformCampaignID, c.Objective, budget, settings, c.LastSyncedAt)

		for j, g := range c.AdGroups {
			gs, err := json.Marshal(g.Settings)
			if err != nil {
				return err
			}
			b.Queue(`INSERT INTO ad_groups (id, campaign_id, name, order_index, status, settings, platform_ad_group_id)
VALUES ($1,$2,$3,$4,$5,$6,NULLIF($7,''))`,
				g.ID, c.ID, g.Name, orderIndex(g.OrderIndex, j), orDefault(g.Status, domain.StatusDraft), gs, g.PlatformAdGroupID)

			for k, a := range g.Ads {
				as, err := json.Marshal(a.Settings)
				if err != nil {
					return err
				}
				b.Queue(`INSERT INTO ads
    (id, ad_group_id, headline, description, display_url, final_url, call_to_action, order_index, status, settings, platform_ad_id)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,NULLIF($11,''))`,
					a.ID, g.ID, a.Headline, a.Description, a.DisplayURL, a.FinalURL, a.CallToAction,
					orderIndex(a.OrderIndex, k), orDefault(a.Status, domain.StatusDraft), as, a.PlatformAdID)
			}
			for _, kw := range g.Keywords {
				b.Queue(`INSERT INTO keywords (id, ad_group_id, text, match_type, status, platform_keyword_id)
VALUES ($1,$2,$3,$4,$5,NULLIF($6,''))`,
					kw.ID, g.ID, kw.Text, orDefault(string(kw.MatchType), string(domain.MatchBroad)),
					orDefault(kw.Status, domain.StatusDraft), kw.PlatformKeywordID)
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
