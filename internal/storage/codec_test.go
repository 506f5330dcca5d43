package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendwise/internal/core"
	"spendwise/internal/log"
)

func testLogger() *log.Logger {
	return log.New(log.Config{Component: log.ComponentStorage})
}

func TestExpenseRoundTrip(t *testing.T) {
	expenses := []core.Expense{
		{
			ID:          "exp-a1",
			Description: "groceries",
			Amount:      core.Money{Cents: 4599},
			CategoryID:  "cat-1",
			Date:        time.Date(2025, 6, 10, 18, 4, 5, 0, time.UTC),
		},
		{
			ID:          "exp-b2",
			Description: "bus ticket",
			Amount:      core.Money{Cents: 250},
			CategoryID:  "cat-2",
			Date:        time.Date(2025, 6, 11, 7, 30, 0, 0, time.UTC),
		},
	}

	data, err := MarshalExpenses(expenses)
	require.NoError(t, err)

	got, err := UnmarshalExpenses(data)
	require.NoError(t, err)
	assert.Equal(t, expenses, got, "expense persistence is a lossless identity round-trip")
}

func TestMergeCategoriesRestoresIconsAndNames(t *testing.T) {
	stored := []core.Category{
		{ID: "cat-1", Name: "Groceries", Icon: "ignored-on-save"}, // renamed built-in
		{ID: "cat-2", Name: "Transport"},
		{ID: "cat-custom", Name: "Vacation"},
	}
	data, err := MarshalCategories(stored)
	require.NoError(t, err)

	merged, err := MergeCategories(data)
	require.NoError(t, err)

	// All seven built-ins are present, in table order, with built-in icons.
	require.GreaterOrEqual(t, len(merged), 7)
	assert.Equal(t, "cat-1", merged[0].ID)
	assert.Equal(t, "Groceries", merged[0].Name, "persisted rename wins over the default name")
	assert.Equal(t, "utensils", merged[0].Icon, "built-in icon is re-derived from the id")
	assert.Equal(t, "Housing", merged[2].Name, "built-ins missing from storage keep defaults")

	// The custom category survives with the generic icon.
	custom, ok := core.FindCategory(merged, "cat-custom")
	require.True(t, ok)
	assert.Equal(t, "Vacation", custom.Name)
	assert.Equal(t, core.GenericIcon, custom.Icon)
}

func TestMergeCategoriesMalformed(t *testing.T) {
	_, err := MergeCategories([]byte(`{"not":"a list"}`))
	assert.Error(t, err)
}

type brokenKV struct{}

func (brokenKV) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("disk on fire")
}
func (brokenKV) Set(context.Context, string, []byte) error { return errors.New("disk on fire") }
func (brokenKV) Close() error                              { return nil }

func TestLoadFallsBackToDefaults(t *testing.T) {
	ctx := context.Background()

	// Unreadable store: built-ins and no expenses, no error escapes.
	expenses, categories := Load(ctx, brokenKV{}, testLogger())
	assert.Empty(t, expenses)
	assert.Equal(t, core.BuiltInCategories(), categories)

	// Malformed payloads behave the same.
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, KeyExpenses, []byte(`{{nope`)))
	require.NoError(t, kv.Set(ctx, KeyCategories, []byte(`42`)))

	expenses, categories = Load(ctx, kv, testLogger())
	assert.Empty(t, expenses)
	assert.Equal(t, core.BuiltInCategories(), categories)
}

func TestLoadRoundTripThroughKV(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	expenses := []core.Expense{{
		ID:          "exp-1",
		Description: "lunch",
		Amount:      core.Money{Cents: 1250},
		CategoryID:  "cat-1",
		Date:        time.Date(2025, 6, 12, 13, 0, 0, 0, time.UTC),
	}}
	categories := append(core.BuiltInCategories(),
		core.Category{ID: "cat-x", Name: "Gifts", Icon: core.GenericIcon})

	expData, err := MarshalExpenses(expenses)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, KeyExpenses, expData))

	catData, err := MarshalCategories(categories)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, KeyCategories, catData))

	gotExpenses, gotCategories := Load(ctx, kv, testLogger())
	assert.Equal(t, expenses, gotExpenses)
	assert.Equal(t, categories, gotCategories)
}
