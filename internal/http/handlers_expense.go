package http

import (
	"encoding/json"
	"net/http"

	"spendwise/internal/core"
	"spendwise/internal/log"
)

type createExpenseRequest struct {
	Description string      `json:"description"`
	Amount      json.Number `json:"amount"`
	CategoryID  string      `json:"categoryId"`
}

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listExpenses(w, r)
	case http.MethodPost:
		s.createExpense(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) listExpenses(w http.ResponseWriter, _ *http.Request) {
	expenses := s.store.Expenses()
	views := make([]expenseView, len(expenses))
	for i, e := range expenses {
		views[i] = toExpenseView(e)
	}
	respondJSON(w, http.StatusOK, views)
}

func (s *Server) createExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Amounts arrive as decimal strings or numbers; both go through the
	// same cents parser so rounding is uniform.
	cents, err := core.ParseDecimalToCents(req.Amount.String())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	e, err := s.store.AddExpense(r.Context(), sanitizeInput(req.Description), core.Money{Cents: cents}, req.CategoryID)
	if err != nil {
		log.FromContext(r.Context()).WarnContext(r.Context(), "expense rejected",
			log.FieldOperation, log.OpCreate, log.FieldError, err)
		respondDomainError(w, err)
		return
	}

	s.summaryCache.Purge()
	respondJSON(w, http.StatusCreated, toExpenseView(e))
}

func (s *Server) handleExpenseByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.Header().Set("Allow", "DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	id := pathID(r.URL.Path, "/api/expenses/")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing expense id")
		return
	}

	s.store.DeleteExpense(r.Context(), id)
	s.summaryCache.Purge()
	w.WriteHeader(http.StatusNoContent)
}
