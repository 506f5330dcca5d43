package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Today      Period = "today"
	Last7Days  Period = "7days"
	Last30Days Period = "30days"
)

type (
	// Period is a named trailing window used to filter expenses for summaries.
	Period string

	Money struct {
		Cents int64
	}

	Category struct {
		ID   string
		Name string
		Icon string // affordance key, resolved to a rendering by the presentation layer
	}

	Expense struct {
		ID          string
		Description string
		Amount      Money
		CategoryID  string
		Date        time.Time
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrEmptyDescription   = errors.New("empty description")
	ErrDescriptionTooLong = errors.New("description too long (max 200 characters)")
	ErrInvalidDate        = errors.New("date cannot be zero")
	ErrEmptyCategoryName  = errors.New("empty category name")
	ErrDuplicateCategory  = errors.New("category name already exists")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrBuiltInCategory    = errors.New("built-in category cannot be deleted")
	ErrInvalidPeriod      = errors.New("invalid period")
)

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (e Expense) Validate() error {
	if len(strings.TrimSpace(e.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(e.Description) > 200 {
		return ErrDescriptionTooLong
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.CategoryID) == "" {
		return ErrUnknownCategory
	}
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// ParsePeriod maps a request value to a Period. The empty string defaults
// to Last7Days, matching the summary view's initial selection.
func ParsePeriod(s string) (Period, error) {
	switch Period(strings.TrimSpace(strings.ToLower(s))) {
	case "":
		return Last7Days, nil
	case Today:
		return Today, nil
	case Last7Days:
		return Last7Days, nil
	case Last30Days:
		return Last30Days, nil
	default:
		return "", ErrInvalidPeriod
	}
}

// Days returns the nominal window length used as the average-daily divisor.
func (p Period) Days() int {
	switch p {
	case Today:
		return 1
	case Last7Days:
		return 7
	default:
		return 30
	}
}

// Start returns the window's start instant: midnight of the first day in the
// window, in now's location. Expenses strictly after this instant fall in the
// window, so "today" covers the whole current calendar day rather than a
// rolling 24 hours.
func (p Period) Start(now time.Time) time.Time {
	sod := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return sod.AddDate(0, 0, -(p.Days() - 1))
}
