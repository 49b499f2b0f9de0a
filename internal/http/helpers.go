package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// respondJSON writes v as a JSON body. The status line is already out when
// encoding runs, so an encode failure can only truncate the body.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	return dec.Decode(v)
}

// parseRefDate reads the date query parameter (YYYY-MM-DD). A missing or
// malformed value falls back to now, same as the dashboard defaulting to the
// current month.
func parseRefDate(r *http.Request, now time.Time) time.Time {
	v := strings.TrimSpace(r.URL.Query().Get("date"))
	if v == "" {
		return now
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return now
	}
	return t
}
