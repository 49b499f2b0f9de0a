package http

import (
	"net/http"
	"time"
)

// handleDashboard serves the aggregated month view. Responses are cached per
// month key; any record mutation purges the cache. A snapshot fetch failure
// degrades to the zero-state view rather than a 5xx so the client always has
// something well-formed to render.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ref := parseRefDate(r, time.Now())
	key := ref.Format("2006-01")

	if dash, ok := s.dashCache.Get(key); ok {
		respondJSON(w, http.StatusOK, dash)
		return
	}

	dash, err := s.dashboards.Dashboard(r.Context(), ref)
	if err != nil {
		s.logger.WarnContext(r.Context(), "dashboard degraded to empty snapshot", "error", err)
		respondJSON(w, http.StatusOK, dash)
		return
	}

	s.dashCache.Set(key, dash)
	respondJSON(w, http.StatusOK, dash)
}
