// Package storage implements the local state store: a key-value byte store
// with two fixed keys, one for the expense list and one for the category
// list, plus the JSON codec and the category merge applied on load.
package storage

import "context"

// State store keys. These match the keys the data has always lived under, so
// existing state files keep working across upgrades.
const (
	KeyExpenses   = "spendwise_expenses"
	KeyCategories = "spendwise_categories"
)

// KV is the persistence collaborator contract: a byte-string store addressed
// by fixed logical keys. Implementations are best-effort local caches; the
// caller logs failures instead of propagating them to the user.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores the value, replacing any previous one.
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
