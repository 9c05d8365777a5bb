// Package aggregate holds the pure derivations every screen is built from:
// sums, percentages, remaining balances, category buckets and filters.
//
// Nothing in this package performs I/O or keeps state between calls, so view
// models may call these functions on every request.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"
)

// All is the filter sentinel meaning "do not filter".
const All = "all"

var hundred = decimal.NewFromInt(100)

// SumAmount adds up amountOf over records. An empty sequence yields zero.
func SumAmount[T any](records []T, amountOf func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(amountOf(r))
	}
	return total
}

// PercentageUsed returns spent/allocated*100, or 0 when allocated is zero.
func PercentageUsed(spent, allocated decimal.Decimal) float64 {
	if allocated.IsZero() {
		return 0
	}
	return spent.Div(allocated).Mul(hundred).InexactFloat64()
}

// Progress is PercentageUsed read as "how far towards target".
func Progress(current, target decimal.Decimal) float64 {
	return PercentageUsed(current, target)
}

// ShareOf returns part as a percentage of total, 0 when total is zero.
func ShareOf(part, total decimal.Decimal) float64 {
	return PercentageUsed(part, total)
}

// BarWidth clamps a percentage into [0, 100] for progress bars.
func BarWidth(percent float64) float64 {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// Remaining is budget - spent. A negative result means over budget.
func Remaining(budget, spent decimal.Decimal) decimal.Decimal {
	return budget.Sub(spent)
}

const (
	LabelLeftToSpend = "left to spend"
	LabelOverBudget  = "over budget"
)

// RemainingLabel maps the sign of a remaining balance to its display label.
func RemainingLabel(remaining decimal.Decimal) string {
	if remaining.IsNegative() {
		return LabelOverBudget
	}
	return LabelLeftToSpend
}

// GroupByCategory buckets amounts by key. Only keys present in records appear.
func GroupByCategory[T any, K comparable](records []T, keyOf func(T) K, amountOf func(T) decimal.Decimal) map[K]decimal.Decimal {
	buckets := make(map[K]decimal.Decimal)
	for _, r := range records {
		k := keyOf(r)
		buckets[k] = buckets[k].Add(amountOf(r))
	}
	return buckets
}

// CountBy counts records per key.
func CountBy[T any, K comparable](records []T, keyOf func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, r := range records {
		counts[keyOf(r)]++
	}
	return counts
}

// FilterByField keeps records whose field equals value. The sentinel All
// returns the input slice itself, order preserved.
func FilterByField[T any](records []T, fieldOf func(T) string, value string) []T {
	if value == All || value == "" {
		return records
	}
	return Where(records, func(r T) bool { return fieldOf(r) == value })
}

// Where returns the records matching keep. The result is never nil.
func Where[T any](records []T, keep func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// CountWhere counts records matching keep.
func CountWhere[T any](records []T, keep func(T) bool) int {
	n := 0
	for _, r := range records {
		if keep(r) {
			n++
		}
	}
	return n
}

// SortByDate returns a sorted copy. Equal dates keep their input order.
func SortByDate[T any](records []T, dateOf func(T) int64, descending bool) []T {
	out := make([]T, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return dateOf(out[i]) > dateOf(out[j])
		}
		return dateOf(out[i]) < dateOf(out[j])
	})
	return out
}

// Top returns at most n leading records.
func Top[T any](records []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(records) <= n {
		return records
	}
	return records[:n]
}

const (
	CycleMonthly = "monthly"
	CycleYearly  = "yearly"
)

var twelve = decimal.NewFromInt(12)

// MonthlyEquivalent spreads a yearly charge over twelve months. Any other
// cycle is already monthly.
func MonthlyEquivalent(amount decimal.Decimal, cycle string) decimal.Decimal {
	if cycle == CycleYearly {
		return amount.Div(twelve)
	}
	return amount
}
