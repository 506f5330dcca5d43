package http

import (
	"encoding/json"
	"net/http"

	"spendwise/internal/log"
)

type createCategoryRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listCategories(w, r)
	case http.MethodPost:
		s.createCategory(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) listCategories(w http.ResponseWriter, _ *http.Request) {
	categories := s.store.Categories()
	views := make([]categoryView, len(categories))
	for i, c := range categories {
		views[i] = toCategoryView(c)
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := s.store.AddCategory(r.Context(), sanitizeInput(req.Name))
	if err != nil {
		log.FromContext(r.Context()).WarnContext(r.Context(), "category rejected",
			log.FieldOperation, log.OpCreate, log.FieldError, err)
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toCategoryView(c))
}

func (s *Server) handleCategoryByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := pathID(r.URL.Path, "/api/categories/")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing category id")
		return
	}

	if err := s.store.DeleteCategory(r.Context(), id); err != nil {
		respondDomainError(w, err)
		return
	}

	// Deleting a category may have reassigned expenses.
	s.summaryCache.Purge()
	w.WriteHeader(http.StatusNoContent)
}
