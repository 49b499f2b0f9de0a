package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kosht/internal/core"
	"kosht/internal/store"
)

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.store.ListExpenses(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "listing expenses failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list expenses")
		return
	}
	if expenses == nil {
		expenses = []core.RawExpense{}
	}
	respondJSON(w, http.StatusOK, expenses)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	var e core.RawExpense
	if err := decodeJSON(r, &e); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if _, ok := core.ParseTimestamp(e.Date); !ok {
		respondError(w, http.StatusBadRequest, "date must be an ISO-8601 date")
		return
	}

	created, err := s.store.CreateExpense(r.Context(), e)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "creating expense failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create expense")
		return
	}

	s.dashCache.Purge()
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteExpense(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "expense not found")
			return
		}
		s.logger.ErrorContext(r.Context(), "deleting expense failed", "error", err, "record_id", id)
		respondError(w, http.StatusInternalServerError, "failed to delete expense")
		return
	}

	s.dashCache.Purge()
	w.WriteHeader(http.StatusNoContent)
}
