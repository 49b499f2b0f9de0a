package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"kosht/internal/core"
	"kosht/internal/store"
)

type createTagRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.store.ListCategories(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "listing categories failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}
	if cats == nil {
		cats = []core.Category{}
	}
	respondJSON(w, http.StatusOK, cats)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	if _, err := s.store.FindCategoryByName(r.Context(), name); err == nil {
		respondError(w, http.StatusConflict, "category already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		s.logger.ErrorContext(r.Context(), "category lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	created, err := s.store.CreateCategory(r.Context(), name)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "creating category failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create category")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "category not found")
			return
		}
		s.logger.ErrorContext(r.Context(), "deleting category failed", "error", err, "record_id", id)
		respondError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListSources(w http.ResponseWriter, r *http.Request) {
	sources, err := s.store.ListSources(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "listing income sources failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list income sources")
		return
	}
	if sources == nil {
		sources = []core.IncomeSource{}
	}
	respondJSON(w, http.StatusOK, sources)
}

func (s *Server) handleCreateSource(w http.ResponseWriter, r *http.Request) {
	var req createTagRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	if _, err := s.store.FindSourceByName(r.Context(), name); err == nil {
		respondError(w, http.StatusConflict, "income source already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		s.logger.ErrorContext(r.Context(), "income source lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create income source")
		return
	}

	created, err := s.store.CreateSource(r.Context(), name)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "creating income source failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to create income source")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleDeleteSource(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteSource(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "income source not found")
			return
		}
		s.logger.ErrorContext(r.Context(), "deleting income source failed", "error", err, "record_id", id)
		respondError(w, http.StatusInternalServerError, "failed to delete income source")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
