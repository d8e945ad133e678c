package httpadapter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"relay-ads/internal/aggregate"
	"relay-ads/internal/core/port"
)

// pixelGIF is the fixed 1×1 transparent image returned by every beacon
// response regardless of outcome.
var pixelGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0x21, 0xF9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2C, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3B,
}

var pixelEvents = map[string]bool{
	"load": true,
	"view": true,
}

// handlePixel serves the correlation beacons. The image body is always
// written; only the status code distinguishes a recognized event with a
// normalizable uuid (200) from anything else (400). View beacons join the
// stored request event and bump the view counters best-effort.
func (h *Handler) handlePixel(w http.ResponseWriter, r *http.Request) {
	event := chi.URLParam(r, "event")
	id, err := uuid.Parse(chi.URLParam(r, "uuid"))

	status := http.StatusOK
	if !pixelEvents[event] || err != nil {
		status = http.StatusBadRequest
	} else if event == "view" {
		h.count(r.Context(), id, aggregate.MetricView)
	}

	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Content-Length", strconv.Itoa(len(pixelGIF)))
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.WriteHeader(status)
	if _, err := w.Write(pixelGIF); err != nil {
		h.logger.Error("pixel write error", slog.Any("error", err))
	}
}

// count joins a beacon back to its request event and increments the
// placement and campaign+creative counter families. Failures are logged;
// the beacon response never depends on them.
func (h *Handler) count(ctx context.Context, correlationID uuid.UUID, metric string) {
	ev, err := h.events.FindRequestEvent(ctx, correlationID)
	if err != nil {
		if !errors.Is(err, port.ErrNotFound) {
			h.logger.Error("request event lookup failed",
				slog.String("correlation_id", correlationID.String()),
				slog.Any("error", err))
		}
		return
	}

	now := time.Now().UTC()
	h.agg.WriteLogged(ctx, aggregate.PlacementDaily,
		map[string]string{"placement": ev.PlacementID.String()}, metric, 1, now)
	if ev.CampaignID != nil && ev.CreativeID != nil {
		h.agg.WriteLogged(ctx, aggregate.CampaignCreativeDaily,
			map[string]string{
				"campaign": ev.CampaignID.String(),
				"creative": ev.CreativeID.String(),
			}, metric, 1, now)
	}
}
