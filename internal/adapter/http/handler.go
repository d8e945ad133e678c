package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"relay-ads/internal/aggregate"
	"relay-ads/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the delivery usecase plus
// the collaborators the beacon and reporting paths need, and registers all
// routes on a chi.Router.
type Handler struct {
	svc    port.Delivery
	events port.EventRepository
	agg    *aggregate.Engine
	stats  port.StatsRepository
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.Delivery, events port.EventRepository, agg *aggregate.Engine, stats port.StatsRepository, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, events: events, agg: agg, stats: stats, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/deliver", h.handleDeliver)
		r.Get("/stats/campaign", h.handleCampaignStats)
	})
	r.Get("/{event}/{uuid}.gif", h.handlePixel)
	r.Get("/r/{uuid}", h.handleClick)
	r.Handle("/metrics", promhttp.Handler())

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
