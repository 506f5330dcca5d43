package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"spendwise/internal/core"
)

// View types: the JSON shapes handed to the presentation clients. Amounts
// travel as integer cents; formatting is the client's concern.

type categoryView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type expenseView struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	AmountCents int64     `json:"amountCents"`
	CategoryID  string    `json:"categoryId"`
	Date        time.Time `json:"date"`
}

type categoryAmountView struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amountCents"`
}

type summaryView struct {
	Period                 string               `json:"period"`
	TotalSpendCents        int64                `json:"totalSpendCents"`
	AverageDailySpendCents int64                `json:"averageDailySpendCents"`
	TopCategory            categoryAmountView   `json:"topCategory"`
	MostFrequentCategory   string               `json:"mostFrequentCategory"`
	ChartData              []categoryAmountView `json:"chartData"`
}

func toCategoryView(c core.Category) categoryView {
	return categoryView{ID: c.ID, Name: c.Name, Icon: c.Icon}
}

func toExpenseView(e core.Expense) expenseView {
	return expenseView{
		ID:          e.ID,
		Description: e.Description,
		AmountCents: e.Amount.Cents,
		CategoryID:  e.CategoryID,
		Date:        e.Date,
	}
}

func toSummaryView(s core.Summary) summaryView {
	chart := make([]categoryAmountView, len(s.ChartData))
	for i, c := range s.ChartData {
		chart[i] = categoryAmountView{Name: c.Name, AmountCents: c.Amount.Cents}
	}
	return summaryView{
		Period:                 string(s.Period),
		TotalSpendCents:        s.TotalSpend.Cents,
		AverageDailySpendCents: s.AverageDailySpend.Cents,
		TopCategory:            categoryAmountView{Name: s.TopCategory.Name, AmountCents: s.TopCategory.Amount.Cents},
		MostFrequentCategory:   s.MostFrequent,
		ChartData:              chart,
	}
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondDomainError maps core sentinel errors onto HTTP statuses: protected
// built-ins get a distinct 409 so clients can show a specific message,
// validation failures get 422.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrBuiltInCategory):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, core.ErrInvalidPeriod):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, core.ErrEmptyCategoryName),
		errors.Is(err, core.ErrDuplicateCategory),
		errors.Is(err, core.ErrEmptyDescription),
		errors.Is(err, core.ErrDescriptionTooLong),
		errors.Is(err, core.ErrInvalidAmount),
		errors.Is(err, core.ErrInvalidDate),
		errors.Is(err, core.ErrUnknownCategory):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// pathID extracts the trailing id from routes like /api/expenses/{id}.
func pathID(path, prefix string) string {
	return strings.Trim(strings.TrimPrefix(path, prefix), "/")
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
