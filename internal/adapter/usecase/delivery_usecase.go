// Package usecase implements the delivery engine: admission control,
// eligibility, slot selection, creative rotation, rendering and event
// recording, orchestrated per request.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"relay-ads/internal/core/domain"
	"relay-ads/internal/core/port"
	"relay-ads/internal/metrics"
	"relay-ads/internal/render"
)

// maxSlots bounds the slot count of one delivery call.
const maxSlots = 10

// DeliveryUseCase implements the Delivery port. Entities are read fresh per
// request; the only state shared across requests is the seeded random
// source.
type DeliveryUseCase struct {
	repo port.DeliveryRepository
	rec  port.EventRecorder
	bot  port.BotDetector
	rnd  *lockedRand
	log  *slog.Logger
}

// NewDeliveryUseCase wires the engine. A zero seed draws one from the clock.
func NewDeliveryUseCase(repo port.DeliveryRepository, rec port.EventRecorder, bot port.BotDetector, seed int64, log *slog.Logger) *DeliveryUseCase {
	return &DeliveryUseCase{
		repo: repo,
		rec:  rec,
		bot:  bot,
		rnd:  newLockedRand(seed),
		log:  log,
	}
}

// slotEnv carries the per-request context every slot shares.
type slotEnv struct {
	placement *domain.Placement
	template  *domain.Template
	custom    map[string]string
	verdict   domain.BotVerdict
	at        time.Time
	req       port.DeliveryRequest
}

// Deliver serves one placement request. Validation failures surface before
// any query runs; entity lookups may return ErrNotFound; storage failures
// inside an individual slot degrade that slot to fallback instead of
// failing the batch.
func (u *DeliveryUseCase) Deliver(ctx context.Context, req port.DeliveryRequest) ([]port.SlotResult, error) {
	start := time.Now()
	defer func() {
		metrics.DeliveryDuration.Observe(time.Since(start).Seconds())
	}()

	if req.Slots < 1 || req.Slots > maxSlots {
		return nil, port.ValidationError(fmt.Sprintf("slot count must lie in [1,%d], got %d", maxSlots, req.Slots))
	}
	placementID, err := uuid.Parse(req.PlacementID)
	if err != nil {
		return nil, port.ValidationError(fmt.Sprintf("malformed placement id %q", req.PlacementID))
	}

	at := time.Now().UTC()
	if req.At != nil {
		at = req.At.UTC()
	}

	placement, err := u.repo.GetPlacement(ctx, placementID)
	if err != nil {
		return nil, fmt.Errorf("placement %s: %w", placementID, err)
	}
	template, err := u.repo.GetTemplate(ctx, placement.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", placement.TemplateID, err)
	}
	account, err := u.repo.GetAccount(ctx, placement.AccountID)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", placement.AccountID, err)
	}

	env := slotEnv{
		placement: placement,
		template:  template,
		custom:    domain.CleanCustom(req.Custom),
		verdict:   u.bot.Classify(req.UserAgent),
		at:        at,
		req:       req,
	}

	var campaigns []domain.Campaign
	if u.admit(placement.EffectiveReserve(*account)) {
		campaigns, err = u.repo.FindEligibleCampaigns(ctx, at, placement.ID, env.custom, account.RequiredCreatives)
		if err != nil {
			metrics.DeliveriesTotal.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("eligibility query: %w", err)
		}
		metrics.DeliveriesTotal.WithLabelValues("admitted").Inc()
	} else {
		metrics.DeliveriesTotal.WithLabelValues("reserved").Inc()
	}

	slots := u.selectSlots(campaigns, req.Slots)
	results := make([]port.SlotResult, req.Slots)

	var wg sync.WaitGroup
	for i, s := range slots {
		wg.Add(1)
		go func(i int, campaign *domain.Campaign) {
			defer wg.Done()
			results[i] = u.fill(ctx, env, campaign)
		}(i, s.campaign)
	}
	wg.Wait()

	return results, nil
}

// fill produces exactly one of {fallback render, campaign+creative render}
// for a slot. Any failure on the campaign path logs and degrades to the
// fallback path rather than propagating.
func (u *DeliveryUseCase) fill(ctx context.Context, env slotEnv, campaign *domain.Campaign) port.SlotResult {
	correlation := uuid.New()

	if campaign != nil {
		if res, ok := u.fillCampaign(ctx, env, campaign, correlation); ok {
			return res
		}
	}
	return u.fillFallback(env, correlation)
}

func (u *DeliveryUseCase) fillCampaign(ctx context.Context, env slotEnv, campaign *domain.Campaign, correlation uuid.UUID) (port.SlotResult, bool) {
	creative := u.rotate(campaign)
	if creative == nil {
		return port.SlotResult{}, false
	}

	img, err := u.repo.ResolveCreativeImage(ctx, creative.ID)
	if err != nil {
		u.log.Error("creative image resolution failed",
			slog.String("creative_id", creative.ID.String()),
			slog.Any("error", err))
		return port.SlotResult{}, false
	}

	tr := render.Tracking{
		CorrelationID: correlation,
		PlacementID:   env.placement.ID,
		CampaignID:    &campaign.ID,
		CreativeID:    &creative.ID,
		Custom:        env.custom,
	}
	merge := map[string]any{
		"correlationId": correlation.String(),
		"placementId":   env.placement.ID.String(),
		"custom":        env.custom,
		"campaign": map[string]any{
			"id":         campaign.ID.String(),
			"name":       campaign.Name,
			"advertiser": campaign.Advertiser,
		},
		"creative": map[string]any{
			"id":     creative.ID.String(),
			"title":  creative.Title,
			"teaser": creative.Teaser,
			"url":    creative.LandingURL,
			"image":  img.Source(env.req.Image),
		},
	}

	html, err := render.Render(env.template.PrimaryMarkup, merge, tr)
	if err != nil {
		u.log.Error("campaign render failed",
			slog.String("template_id", env.template.ID.String()),
			slog.Any("error", err))
		return port.SlotResult{}, false
	}

	u.record(env, correlation, &campaign.ID, &creative.ID)
	metrics.SlotsTotal.WithLabelValues("campaign").Inc()
	return port.SlotResult{
		HTML:       html,
		CampaignID: &campaign.ID,
		CreativeID: &creative.ID,
	}, true
}

func (u *DeliveryUseCase) fillFallback(env slotEnv, correlation uuid.UUID) port.SlotResult {
	markup := render.BuiltinFallback
	if env.template.FallbackMarkup != nil {
		markup = *env.template.FallbackMarkup
	}

	tr := render.Tracking{
		CorrelationID: correlation,
		PlacementID:   env.placement.ID,
		Custom:        env.custom,
	}
	merge := map[string]any{
		"correlationId": correlation.String(),
		"placementId":   env.placement.ID.String(),
		"custom":        env.custom,
	}
	for k, v := range env.req.FallbackVars {
		if _, taken := merge[k]; !taken {
			merge[k] = v
		}
	}

	html, err := render.Render(markup, merge, tr)
	if err != nil {
		u.log.Error("fallback render failed",
			slog.String("template_id", env.template.ID.String()),
			slog.Any("error", err))
		html, _ = render.Render(render.BuiltinFallback, nil, tr)
	}

	u.record(env, correlation, nil, nil)
	metrics.SlotsTotal.WithLabelValues("fallback").Inc()
	return port.SlotResult{Fallback: true, HTML: html}
}

// record hands the slot's request event to the recorder; it never blocks the
// response path.
func (u *DeliveryUseCase) record(env slotEnv, correlation uuid.UUID, campaignID, creativeID *uuid.UUID) {
	u.rec.Record(domain.RequestEvent{
		CorrelationID: correlation,
		PlacementID:   env.placement.ID,
		CampaignID:    campaignID,
		CreativeID:    creativeID,
		OccurredAt:    env.at,
		Bot:           env.verdict,
		Custom:        env.custom,
		ClientIP:      env.req.ClientIP,
		UserAgent:     env.req.UserAgent,
	})
}
