// Package store owns the in-memory expense and category lists and applies
// every mutation. Each mutation re-serializes the affected list and hands it
// to the persistence collaborator; persistence failures are logged and never
// surfaced to the caller, since the local state store is best-effort.
package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"spendwise/internal/core"
	"spendwise/internal/log"
	"spendwise/internal/storage"
)

type Store struct {
	mu         sync.Mutex
	expenses   []core.Expense
	categories []core.Category

	kv     storage.KV
	logger *log.Logger
	now    func() time.Time
	newID  func(prefix string) string
}

// Option customizes a Store; used by tests to pin the clock and ids.
type Option func(*Store)

// WithClock replaces the time source used to stamp new expenses.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDSource replaces the id generator.
func WithIDSource(newID func(prefix string) string) Option {
	return func(s *Store) { s.newID = newID }
}

// New loads persisted state through kv (falling back to the built-in
// category table and an empty expense list) and returns a ready Store.
func New(ctx context.Context, kv storage.KV, logger *log.Logger, opts ...Option) *Store {
	expenses, categories := storage.Load(ctx, kv, logger)

	s := &Store{
		expenses:   expenses,
		categories: categories,
		kv:         kv,
		logger:     logger.WithComponent(log.ComponentStore),
		now:        time.Now,
		newID:      func(prefix string) string { return prefix + "-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger.InfoContext(ctx, "state loaded",
		"expenses", len(expenses), "categories", len(categories))
	return s
}

// AddExpense validates and records a new expense, stamping it with a fresh id
// and the current time. The category must exist.
func (s *Store) AddExpense(ctx context.Context, description string, amount core.Money, categoryID string) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := core.Expense{
		ID:          s.newID("exp"),
		Description: strings.TrimSpace(description),
		Amount:      amount,
		CategoryID:  categoryID,
		Date:        s.now(),
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	if _, ok := core.FindCategory(s.categories, categoryID); !ok {
		return core.Expense{}, core.ErrUnknownCategory
	}

	s.expenses = append([]core.Expense{e}, s.expenses...)
	s.persistExpenses(ctx)

	s.logger.InfoContext(ctx, "expense added",
		log.FieldOperation, log.OpCreate,
		log.FieldExpenseID, e.ID,
		log.FieldDescription, e.Description,
		log.FieldAmountCents, e.Amount.Cents,
		log.FieldCategoryID, e.CategoryID)
	return e, nil
}

// DeleteExpense removes the expense with the given id. Deleting an id that
// does not exist is a silent no-op.
func (s *Store) DeleteExpense(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.expenses[:0]
	removed := false
	for _, e := range s.expenses {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	s.expenses = kept
	s.persistExpenses(ctx)

	if removed {
		s.logger.InfoContext(ctx, "expense deleted",
			log.FieldOperation, log.OpDelete, log.FieldExpenseID, id)
	}
}

// AddCategory creates a custom category. The trimmed name must be non-empty
// and not collide case-insensitively with an existing category name.
func (s *Store) AddCategory(ctx context.Context, name string) (core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return core.Category{}, core.ErrEmptyCategoryName
	}
	if core.CategoryNameTaken(s.categories, name) {
		return core.Category{}, core.ErrDuplicateCategory
	}

	c := core.Category{ID: s.newID("cat"), Name: name, Icon: core.GenericIcon}
	s.categories = append(s.categories, c)
	s.persistCategories(ctx)

	s.logger.InfoContext(ctx, "category added",
		log.FieldOperation, log.OpCreate, log.FieldCategoryID, c.ID, "name", c.Name)
	return c, nil
}

// DeleteCategory removes a custom category and reassigns its expenses to the
// fallback "Other" category in the same mutation, so no expense ever points
// at a missing category. Built-ins are protected; an unknown id is a no-op.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if core.IsBuiltIn(id) {
		return core.ErrBuiltInCategory
	}
	if _, ok := core.FindCategory(s.categories, id); !ok {
		return nil
	}

	kept := s.categories[:0]
	for _, c := range s.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.categories = kept

	reassigned := 0
	for i := range s.expenses {
		if s.expenses[i].CategoryID == id {
			s.expenses[i].CategoryID = core.FallbackCategoryID
			reassigned++
		}
	}

	s.persistCategories(ctx)
	s.persistExpenses(ctx)

	s.logger.InfoContext(ctx, "category deleted",
		log.FieldOperation, log.OpDelete, log.FieldCategoryID, id,
		"reassigned_expenses", reassigned)
	return nil
}

// Expenses returns a copy of the expense list, newest first.
func (s *Store) Expenses() []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Expense, len(s.expenses))
	copy(out, s.expenses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// Categories returns a copy of the category list in display order:
// built-ins first, then custom categories in creation order.
func (s *Store) Categories() []core.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]core.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Summary computes the aggregate statistics for the period over the current
// state, evaluated at the store's clock.
func (s *Store) Summary(period core.Period) core.Summary {
	s.mu.Lock()
	expenses := make([]core.Expense, len(s.expenses))
	copy(expenses, s.expenses)
	categories := make([]core.Category, len(s.categories))
	copy(categories, s.categories)
	now := s.now()
	s.mu.Unlock()

	return core.Summarize(expenses, categories, period, now)
}

func (s *Store) persistExpenses(ctx context.Context) {
	data, err := storage.MarshalExpenses(s.expenses)
	if err != nil {
		s.logger.WarnContext(ctx, "serializing expenses failed",
			log.FieldOperation, log.OpPersist, log.FieldError, err)
		return
	}
	if err := s.kv.Set(ctx, storage.KeyExpenses, data); err != nil {
		s.logger.WarnContext(ctx, "persisting expenses failed",
			log.FieldOperation, log.OpPersist,
			log.FieldStateKey, storage.KeyExpenses, log.FieldError, err)
	}
}

func (s *Store) persistCategories(ctx context.Context) {
	data, err := storage.MarshalCategories(s.categories)
	if err != nil {
		s.logger.WarnContext(ctx, "serializing categories failed",
			log.FieldOperation, log.OpPersist, log.FieldError, err)
		return
	}
	if err := s.kv.Set(ctx, storage.KeyCategories, data); err != nil {
		s.logger.WarnContext(ctx, "persisting categories failed",
			log.FieldOperation, log.OpPersist,
			log.FieldStateKey, storage.KeyCategories, log.FieldError, err)
	}
}
