package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"spendwise/internal/core"
	"spendwise/internal/log"
)

// persistedExpense is the wire form of an expense. Every field round-trips.
type persistedExpense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	AmountCents int64     `json:"amountCents"`
	CategoryID  string    `json:"categoryId"`
	Date        time.Time `json:"date"`
}

// persistedCategory carries only id and name; the icon key is re-derived
// from the id on load.
type persistedCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MarshalExpenses serializes the expense list for the KV store.
func MarshalExpenses(expenses []core.Expense) ([]byte, error) {
	out := make([]persistedExpense, len(expenses))
	for i, e := range expenses {
		out[i] = persistedExpense{
			ID:          e.ID,
			Description: e.Description,
			AmountCents: e.Amount.Cents,
			CategoryID:  e.CategoryID,
			Date:        e.Date,
		}
	}
	return json.Marshal(out)
}

// UnmarshalExpenses is the inverse of MarshalExpenses.
func UnmarshalExpenses(data []byte) ([]core.Expense, error) {
	var raw []persistedExpense
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal expenses: %w", err)
	}
	out := make([]core.Expense, len(raw))
	for i, e := range raw {
		out[i] = core.Expense{
			ID:          e.ID,
			Description: e.Description,
			Amount:      core.Money{Cents: e.AmountCents},
			CategoryID:  e.CategoryID,
			Date:        e.Date,
		}
	}
	return out, nil
}

// MarshalCategories serializes the category list, dropping icon keys.
func MarshalCategories(categories []core.Category) ([]byte, error) {
	out := make([]persistedCategory, len(categories))
	for i, c := range categories {
		out[i] = persistedCategory{ID: c.ID, Name: c.Name}
	}
	return json.Marshal(out)
}

// MergeCategories reconstructs the category list from persisted id/name
// pairs. Built-in ids keep their built-in icon but adopt the persisted name
// (a rename survives reloads); persisted ids not among the built-ins are kept
// verbatim, after the built-ins in persisted order, with the generic icon.
func MergeCategories(data []byte) ([]core.Category, error) {
	var raw []persistedCategory
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal categories: %w", err)
	}

	merged := core.BuiltInCategories()
	for i := range merged {
		for _, p := range raw {
			if p.ID == merged[i].ID {
				merged[i].Name = p.Name
				break
			}
		}
	}
	for _, p := range raw {
		if !core.IsBuiltIn(p.ID) {
			merged = append(merged, core.Category{ID: p.ID, Name: p.Name, Icon: core.GenericIcon})
		}
	}
	return merged, nil
}

// Load reads both state keys and decodes them. Missing or malformed data
// degrades to the built-in category table and an empty expense list; the
// problem is logged, never returned.
func Load(ctx context.Context, kv KV, logger *log.Logger) ([]core.Expense, []core.Category) {
	var expenses []core.Expense
	categories := core.BuiltInCategories()

	if data, ok, err := kv.Get(ctx, KeyExpenses); err != nil {
		logger.WarnContext(ctx, "reading expenses failed, starting empty",
			log.FieldStateKey, KeyExpenses, log.FieldError, err)
	} else if ok {
		if parsed, err := UnmarshalExpenses(data); err != nil {
			logger.WarnContext(ctx, "stored expenses malformed, starting empty",
				log.FieldStateKey, KeyExpenses, log.FieldError, err)
		} else {
			expenses = parsed
		}
	}

	if data, ok, err := kv.Get(ctx, KeyCategories); err != nil {
		logger.WarnContext(ctx, "reading categories failed, using built-ins",
			log.FieldStateKey, KeyCategories, log.FieldError, err)
	} else if ok {
		if merged, err := MergeCategories(data); err != nil {
			logger.WarnContext(ctx, "stored categories malformed, using built-ins",
				log.FieldStateKey, KeyCategories, log.FieldError, err)
		} else {
			categories = merged
		}
	}

	return expenses, categories
}
