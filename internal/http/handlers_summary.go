package http

import (
	"net/http"

	"spendwise/internal/core"
	"spendwise/internal/log"
)

// handleSummary serves the aggregate statistics for one period. Responses are
// cached per period until the next mutation or TTL expiry.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	period, err := core.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if cached, ok := s.summaryCache.Get(string(period)); ok {
		respondJSON(w, http.StatusOK, toSummaryView(cached))
		return
	}

	summary := s.store.Summary(period)
	s.summaryCache.Set(string(period), summary)

	log.FromContext(r.Context()).DebugContext(r.Context(), "summary computed",
		log.FieldOperation, log.OpSummarize,
		log.FieldPeriod, string(period),
		"total_dollars", summary.TotalSpend.Dollars())

	respondJSON(w, http.StatusOK, toSummaryView(summary))
}
