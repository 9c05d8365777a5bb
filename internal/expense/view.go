package expense

import (
	"github.com/frahmantamala/student-finance/internal/aggregate"
)

// BuildListView filters by category and orders newest first. The total covers
// the filtered records only.
func BuildListView(expenses []*Expense, filter string) ListView {
	if filter == "" {
		filter = aggregate.All
	}
	filtered := aggregate.FilterByField(expenses, func(e *Expense) string { return string(e.Category) }, filter)
	sorted := aggregate.SortByDate(filtered, DateOf, true)

	return ListView{
		Filter:   filter,
		Expenses: sorted,
		Count:    len(sorted),
		Total:    aggregate.SumAmount(sorted, AmountOf),
	}
}
