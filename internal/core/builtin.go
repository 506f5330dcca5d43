package core

import "strings"

// FallbackCategoryID is the built-in "Other" category. Expenses belonging to
// a deleted category are reassigned to it.
const FallbackCategoryID = "cat-7"

// GenericIcon is the affordance key used for custom categories and for
// persisted ids that no longer match a built-in.
const GenericIcon = "more-horizontal"

// builtins are always present, never deletable, and keep their ids forever.
// Names may be changed by the user; icons are re-derived from the id on load.
var builtins = []Category{
	{ID: "cat-1", Name: "Food", Icon: "utensils"},
	{ID: "cat-2", Name: "Transport", Icon: "car"},
	{ID: "cat-3", Name: "Housing", Icon: "home"},
	{ID: "cat-4", Name: "Shopping", Icon: "shopping-bag"},
	{ID: "cat-5", Name: "Entertainment", Icon: "ticket"},
	{ID: "cat-6", Name: "Health", Icon: "heart-pulse"},
	{ID: FallbackCategoryID, Name: "Other", Icon: GenericIcon},
}

// BuiltInCategories returns a fresh copy of the built-in category table.
func BuiltInCategories() []Category {
	out := make([]Category, len(builtins))
	copy(out, builtins)
	return out
}

// IsBuiltIn reports whether id identifies one of the built-in categories.
func IsBuiltIn(id string) bool {
	for _, c := range builtins {
		if c.ID == id {
			return true
		}
	}
	return false
}

// IconFor resolves the affordance key for a category id: the built-in icon
// when the id is a built-in, GenericIcon otherwise.
func IconFor(id string) string {
	for _, c := range builtins {
		if c.ID == id {
			return c.Icon
		}
	}
	return GenericIcon
}

// FindCategory returns the category with the given id, if present.
func FindCategory(categories []Category, id string) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryNameTaken reports whether name matches an existing category name
// case-insensitively. Comparison happens on the trimmed name.
func CategoryNameTaken(categories []Category, name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range categories {
		if strings.ToLower(c.Name) == name {
			return true
		}
	}
	return false
}
