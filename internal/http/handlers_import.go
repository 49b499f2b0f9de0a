package http

import (
	"net/http"
	"time"
)

const defaultImportDays = 30

type importRequest struct {
	Days int `json:"days"`
}

// handleImport queues a bank statement import for the worker. The statement
// window defaults to the last 30 days.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	if s.queue == nil {
		respondError(w, http.StatusServiceUnavailable, "import queue not configured")
		return
	}

	var req importRequest
	if err := decodeJSON(r, &req); err != nil {
		req.Days = 0
	}
	if req.Days <= 0 {
		req.Days = defaultImportDays
	}

	if err := s.queue.PublishImportRequest(r.Context(), req.Days); err != nil {
		s.logger.ErrorContext(r.Context(), "publishing import request failed", "error", err)
		respondError(w, http.StatusBadGateway, "failed to queue import request")
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]any{"status": "queued", "days": req.Days})
}

// handleExportSheets pushes the month summary for the requested date to the
// configured spreadsheet.
func (s *Server) handleExportSheets(w http.ResponseWriter, r *http.Request) {
	if s.exporter == nil {
		respondError(w, http.StatusServiceUnavailable, "sheets export not configured")
		return
	}

	ref := parseRefDate(r, time.Now())

	dash, err := s.dashboards.Dashboard(r.Context(), ref)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "building dashboard for export failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to build month summary")
		return
	}

	if err := s.exporter.ExportMonth(r.Context(), dash); err != nil {
		s.logger.ErrorContext(r.Context(), "sheets export failed", "error", err)
		respondError(w, http.StatusBadGateway, "failed to export to spreadsheet")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "exported", "month": ref.Format("2006-01")})
}
