package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// handleCampaignStats returns the daily view/click counters of a campaign.
// It requires a `campaign_id` query parameter and accepts optional `from`
// and `to` RFC3339 timestamps, defaulting to the last seven days. Invalid
// parameters result in HTTP 400, internal errors in HTTP 500.
func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	campaignID, err := uuid.Parse(q.Get("campaign_id"))
	if err != nil {
		http.Error(w, "invalid campaign_id", http.StatusBadRequest)
		return
	}

	from := time.Now().UTC().AddDate(0, 0, -7)
	if s := q.Get("from"); s != "" {
		from, err = time.Parse(time.RFC3339, s)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	}
	to := time.Now().UTC()
	if s := q.Get("to"); s != "" {
		to, err = time.Parse(time.RFC3339, s)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	}

	days, err := h.stats.CampaignDaily(r.Context(), campaignID, from, to)
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"days": days}); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
