package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kosht/internal/core"
	"kosht/internal/store"
)

func (s *Server) handleListIncomes(w http.ResponseWriter, r *http.Request) {
	incomes, err := s.store.ListIncomes(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "listing incomes failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list incomes")
		return
	}
	if incomes == nil {
		incomes = []core.RawIncome{}
	}
	respondJSON(w, http.StatusOK, incomes)
}

func (s *Server) handleCreateIncome(w http.ResponseWriter, r *http.Request) {
	var in core.RawIncome
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if _, ok := core.ParseTimestamp(in.Date); !ok {
		respondError(w, http.StatusBadRequest, "date must be an ISO-8601 date")
		return
	}

	created, err := s.store.CreateIncome(r.Context(), in)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "creating income failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create income")
		return
	}

	s.dashCache.Purge()
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteIncome(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteIncome(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "income not found")
			return
		}
		s.logger.ErrorContext(r.Context(), "deleting income failed", "error", err, "record_id", id)
		respondError(w, http.StatusInternalServerError, "failed to delete income")
		return
	}

	s.dashCache.Purge()
	w.WriteHeader(http.StatusNoContent)
}
