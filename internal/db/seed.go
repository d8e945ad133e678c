package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"relay-ads/internal/core/domain"
	"relay-ads/internal/render"
)

const demoPrimaryMarkup = `<div class="rl-ad" {{trackingAttributes}}>
  <img src="{{creative.image}}" alt="{{creative.title}}">
  {{#trackedLink href=creative.url target="_blank"}}<h3>{{creative.title}}</h3>{{/trackedLink}}
  <p>{{creative.teaser}}</p>
  {{beacon}}
  {{uaBeacon}}
</div>`

const demoFallbackMarkup = `<div class="rl-house" {{trackingAttributes}}>
  <p>{{message}}</p>
  {{beacon}}
</div>`

// Seed inserts one demo account with a placement, a validated template and
// a handful of live campaigns. Development use only.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	fallback := demoFallbackMarkup
	tpl := domain.Template{
		ID:             uuid.New(),
		AccountID:      uuid.New(),
		Name:           "demo",
		PrimaryMarkup:  demoPrimaryMarkup,
		FallbackMarkup: &fallback,
	}
	// Templates pass structural validation at authoring time; delivery
	// assumes it already happened.
	if err := render.ValidateTemplate(tpl); err != nil {
		return fmt.Errorf("demo template: %w", err)
	}

	_, err := pool.Exec(ctx, `INSERT INTO accounts (id, default_reserve_percent, required_creatives)
		VALUES ($1, 10, 1) ON CONFLICT DO NOTHING`, tpl.AccountID)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `INSERT INTO templates (id, account_id, name, primary_markup, fallback_markup)
		VALUES ($1,$2,$3,$4,$5) ON CONFLICT DO NOTHING`,
		tpl.ID, tpl.AccountID, tpl.Name, tpl.PrimaryMarkup, tpl.FallbackMarkup)
	if err != nil {
		return err
	}

	placementID := uuid.New()
	_, err = pool.Exec(ctx, `INSERT INTO placements (id, account_id, publisher, name, template_id, reserve_percent)
		VALUES ($1,$2,'demo-publisher','sidebar',$3,NULL) ON CONFLICT DO NOTHING`,
		placementID, tpl.AccountID, tpl.ID)
	if err != nil {
		return err
	}

	placements, _ := json.Marshal([]string{placementID.String()})
	for i := 1; i <= 5; i++ {
		campaignID := uuid.New()
		criteria, _ := json.Marshal(map[string]string{})
		_, err = pool.Exec(ctx, `INSERT INTO campaigns
			(id, account_id, advertiser, name, start_at, end_at, paused, ready, deleted, placement_ids, criteria)
			VALUES ($1,$2,$3,$4,$5,$6,false,true,false,$7,$8) ON CONFLICT DO NOTHING`,
			campaignID, tpl.AccountID,
			fmt.Sprintf("Advertiser %d", i), fmt.Sprintf("Campaign %d", i),
			time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 1, 0),
			placements, criteria)
		if err != nil {
			return err
		}
		for j := 1; j <= 3; j++ {
			_, err = pool.Exec(ctx, `INSERT INTO creatives
				(id, campaign_id, title, teaser, landing_url, image_url, active, deleted, position)
				VALUES ($1,$2,$3,$4,$5,$6,true,false,$7) ON CONFLICT DO NOTHING`,
				uuid.New(), campaignID,
				fmt.Sprintf("Creative %d.%d", i, j),
				fmt.Sprintf("Teaser for creative %d.%d", i, j),
				fmt.Sprintf("https://content.example.com/articles/%d-%d", i, j),
				fmt.Sprintf("https://cdn.example.com/images/%d-%d.jpg", i, j),
				j)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
