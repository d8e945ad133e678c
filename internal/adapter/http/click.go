package httpadapter

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"relay-ads/internal/aggregate"
)

// handleClick resolves a tracked link: it counts the click against the
// correlation id and redirects to the original target carried in the u
// query parameter. Malformed ids or targets result in HTTP 400; counter
// trouble never blocks the redirect.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		http.Error(w, "malformed correlation id", http.StatusBadRequest)
		return
	}
	target, err := url.Parse(r.URL.Query().Get("u"))
	if err != nil || target.String() == "" || (target.IsAbs() && target.Scheme != "http" && target.Scheme != "https") {
		http.Error(w, "missing or invalid target", http.StatusBadRequest)
		return
	}

	h.count(r.Context(), id, aggregate.MetricClick)
	http.Redirect(w, r, target.String(), http.StatusFound)
}
