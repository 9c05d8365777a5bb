package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal/expense"
	"github.com/frahmantamala/student-finance/internal/groupfund"
)

type Streaks struct {
	Saver     int `json:"saver"`
	Budgeting int `json:"budgeting"`
}

type DashboardView struct {
	DisplayName          string               `json:"display_name"`
	MonthlyBudget        decimal.Decimal      `json:"monthly_budget"`
	TotalExpenses        decimal.Decimal      `json:"total_expenses"`
	BudgetUsed           float64              `json:"budget_used"`
	BarWidth             float64              `json:"bar_width"`
	TotalInvestmentValue decimal.Decimal      `json:"total_investment_value"`
	RecentExpenses       []*expense.Expense   `json:"recent_expenses"`
	GroupFunds           []groupfund.FundLine `json:"group_funds"`
	Points               int                  `json:"points"`
	Streaks              Streaks              `json:"streaks"`
	Stale                bool                 `json:"stale"`
}
