package budget

import (
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/expense"
)

type UpdateCategoryDTO struct {
	Spent     *decimal.Decimal `json:"spent,omitempty"`
	Allocated *decimal.Decimal `json:"allocated,omitempty"`
}

type CategoryTotal struct {
	Category expense.Category `json:"category"`
	Amount   decimal.Decimal  `json:"amount"`
	Share    float64          `json:"share"`
}

// Overview is the budget screen: the monthly budget against every recorded
// expense, with the expense list narrowed by Filter.
type Overview struct {
	MonthlyBudget  decimal.Decimal    `json:"monthly_budget"`
	TotalSpent     decimal.Decimal    `json:"total_spent"`
	PercentUsed    float64            `json:"percent_used"`
	BarWidth       float64            `json:"bar_width"`
	Remaining      decimal.Decimal    `json:"remaining"`
	RemainingLabel string             `json:"remaining_label"`
	CategoryTotals []CategoryTotal    `json:"category_totals"`
	Filter         string             `json:"filter"`
	Expenses       []*expense.Expense `json:"expenses"`
	Stale          bool               `json:"stale"`
}

type CategoryLine struct {
	*Category
	PercentUsed float64         `json:"percent_used"`
	BarWidth    float64         `json:"bar_width"`
	Remaining   decimal.Decimal `json:"remaining"`
	OverBudget  bool            `json:"over_budget"`
	Overage     decimal.Decimal `json:"overage"`
}

type CategoriesView struct {
	Categories      []CategoryLine  `json:"categories"`
	TotalAllocated  decimal.Decimal `json:"total_allocated"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
	TotalRemaining  decimal.Decimal `json:"total_remaining"`
	OverBudgetCount int             `json:"over_budget_count"`
	Stale           bool            `json:"stale"`
}
