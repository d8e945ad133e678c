package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"relay-ads/internal/core/domain"
	"relay-ads/internal/core/port"
)

// deliverRequest is the wire form of one placement request.
type deliverRequest struct {
	PlacementID  string              `json:"placement_id"`
	At           *time.Time          `json:"at"`
	Slots        int                 `json:"slots"`
	Custom       map[string]any      `json:"custom"`
	FallbackVars map[string]any      `json:"fallback_vars"`
	Image        domain.ImageOptions `json:"image"`
}

type deliverResponse struct {
	Slots []port.SlotResult `json:"slots"`
}

// handleDeliver serves one delivery call. Validation problems map to 400,
// unknown placements or templates to 404, anything else to 500. Individual
// slot failures never surface here; they degrade to fallback inside the
// usecase.
func (h *Handler) handleDeliver(w http.ResponseWriter, r *http.Request) {
	var body deliverRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	req := port.DeliveryRequest{
		PlacementID:  body.PlacementID,
		At:           body.At,
		Slots:        body.Slots,
		Custom:       body.Custom,
		FallbackVars: body.FallbackVars,
		Image:        body.Image,
		ClientIP:     clientIP(r),
		UserAgent:    r.UserAgent(),
	}

	slots, err := h.svc.Deliver(r.Context(), req)
	if err != nil {
		var verr port.ValidationError
		switch {
		case errors.As(err, &verr):
			http.Error(w, verr.Error(), http.StatusBadRequest)
		case errors.Is(err, port.ErrNotFound):
			http.NotFound(w, r)
		default:
			h.logger.Error("deliver error", slog.Any("error", err))
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(deliverResponse{Slots: slots}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// clientIP extracts the requester address, preferring the first
// X-Forwarded-For hop when present.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, ok := strings.Cut(fwd, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
