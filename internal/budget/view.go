package budget

import (
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/expense"
)

// BuildOverview totals every expense against the monthly budget. Filter only
// narrows the listed expenses; totals and category shares always cover all of
// them.
func BuildOverview(monthlyBudget decimal.Decimal, expenses []*expense.Expense, filter string) Overview {
	total := aggregate.SumAmount(expenses, expense.AmountOf)
	used := aggregate.PercentageUsed(total, monthlyBudget)
	remaining := aggregate.Remaining(monthlyBudget, total)

	buckets := aggregate.GroupByCategory(expenses, expense.CategoryOf, expense.AmountOf)
	totals := make([]CategoryTotal, 0, len(expense.Categories))
	for _, c := range expense.Categories {
		totals = append(totals, CategoryTotal{
			Category: c,
			Amount:   buckets[c],
			Share:    aggregate.ShareOf(buckets[c], total),
		})
	}

	list := expense.BuildListView(expenses, filter)

	return Overview{
		MonthlyBudget:  monthlyBudget,
		TotalSpent:     total,
		PercentUsed:    used,
		BarWidth:       aggregate.BarWidth(used),
		Remaining:      remaining,
		RemainingLabel: aggregate.RemainingLabel(remaining),
		CategoryTotals: totals,
		Filter:         list.Filter,
		Expenses:       list.Expenses,
	}
}

func BuildCategoryLine(c *Category) CategoryLine {
	used := aggregate.PercentageUsed(c.Spent, c.Allocated)
	line := CategoryLine{
		Category:    c,
		PercentUsed: used,
		BarWidth:    aggregate.BarWidth(used),
		Remaining:   aggregate.Remaining(c.Allocated, c.Spent),
		OverBudget:  c.OverBudget(),
		Overage:     decimal.Zero,
	}
	if line.OverBudget {
		line.Overage = c.Spent.Sub(c.Allocated)
	}
	return line
}

func BuildCategoriesView(categories []*Category) CategoriesView {
	lines := make([]CategoryLine, 0, len(categories))
	for _, c := range categories {
		lines = append(lines, BuildCategoryLine(c))
	}

	allocated := aggregate.SumAmount(categories, func(c *Category) decimal.Decimal { return c.Allocated })
	spent := aggregate.SumAmount(categories, func(c *Category) decimal.Decimal { return c.Spent })

	return CategoriesView{
		Categories:      lines,
		TotalAllocated:  allocated,
		TotalSpent:      spent,
		TotalRemaining:  aggregate.Remaining(allocated, spent),
		OverBudgetCount: aggregate.CountWhere(categories, (*Category).OverBudget),
	}
}
