package core

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// NoCategory is the sentinel name reported when the filtered window holds no
// expenses, or when a frequency winner's category id cannot be resolved.
const NoCategory = "N/A"

// CategoryAmount is a per-category subtotal used for the chart breakdown and
// the top-category card.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// Summary holds the derived statistics for one period.
type Summary struct {
	Period            Period
	TotalSpend        Money
	AverageDailySpend Money
	TopCategory       CategoryAmount
	MostFrequent      string
	ChartData         []CategoryAmount
}

// Summarize computes the spending summary for the given period. It is pure:
// the result depends only on the inputs and the supplied now, and the inputs
// are never mutated.
//
// Expenses dated strictly after the period's start instant are included.
// Subtotals are grouped by category id in first-encountered order and sorted
// by amount descending; ties keep the first-encountered order, so repeated
// runs over the same input always yield the same sequence. A category id
// with no matching category is labeled "Other" in the breakdown without
// touching the stored data.
//
// The average daily spend divides by the nominal window length (1, 7 or 30
// days), not by the number of days that actually saw spending: a single $70
// expense in the 7-day window averages to $10/day.
func Summarize(expenses []Expense, categories []Category, period Period, now time.Time) Summary {
	start := period.Start(now)

	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	var (
		total   int64
		order   []string
		byCat   = make(map[string]int64)
		counts  = make(map[string]int)
		nFilter int
	)
	for _, e := range expenses {
		if !e.Date.After(start) {
			continue
		}
		nFilter++
		total += e.Amount.Cents
		if _, seen := byCat[e.CategoryID]; !seen {
			order = append(order, e.CategoryID)
		}
		byCat[e.CategoryID] += e.Amount.Cents
		counts[e.CategoryID]++
	}

	chart := make([]CategoryAmount, 0, len(order))
	for _, id := range order {
		name, ok := names[id]
		if !ok {
			name = "Other"
		}
		chart = append(chart, CategoryAmount{Name: name, Amount: Money{Cents: byCat[id]}})
	}
	sort.SliceStable(chart, func(i, j int) bool {
		return chart[i].Amount.Cents > chart[j].Amount.Cents
	})

	s := Summary{
		Period:            period,
		TotalSpend:        Money{Cents: total},
		AverageDailySpend: averageDaily(total, period.Days()),
		TopCategory:       CategoryAmount{Name: NoCategory},
		MostFrequent:      NoCategory,
		ChartData:         chart,
	}
	if len(chart) > 0 {
		s.TopCategory = chart[0]
	}
	if nFilter > 0 {
		best := ""
		bestCount := 0
		for _, id := range order {
			if counts[id] > bestCount {
				best, bestCount = id, counts[id]
			}
		}
		if name, ok := names[best]; ok {
			s.MostFrequent = name
		}
	}
	return s
}

// averageDaily divides total cents by the window length, rounding half-up to
// whole cents. Done in decimal so 5000/7 lands on 714 rather than drifting
// through a float.
func averageDaily(totalCents int64, days int) Money {
	if totalCents == 0 {
		return Money{}
	}
	avg := decimal.NewFromInt(totalCents).
		DivRound(decimal.NewFromInt(int64(days)), 0)
	return Money{Cents: avg.IntPart()}
}
