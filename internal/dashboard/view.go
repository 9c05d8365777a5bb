package dashboard

import (
	"time"

	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/expense"
	"github.com/frahmantamala/student-finance/internal/groupfund"
	"github.com/frahmantamala/student-finance/internal/investment"
	"github.com/frahmantamala/student-finance/internal/profile"
)

const (
	recentExpenses = 3
	featuredFunds  = 2
)

type Inputs struct {
	Profile     *profile.Profile
	Expenses    []*expense.Expense
	Investments []*investment.Investment
	Funds       []*groupfund.Fund
}

func BuildDashboardView(in Inputs, today time.Time) DashboardView {
	total := aggregate.SumAmount(in.Expenses, expense.AmountOf)
	used := aggregate.PercentageUsed(total, in.Profile.MonthlyBudget)

	funds := aggregate.Top(in.Funds, featuredFunds)
	lines := make([]groupfund.FundLine, len(funds))
	for i, f := range funds {
		lines[i] = groupfund.BuildFundLine(f, today)
	}

	return DashboardView{
		DisplayName:          in.Profile.DisplayName,
		MonthlyBudget:        in.Profile.MonthlyBudget,
		TotalExpenses:        total,
		BudgetUsed:           used,
		BarWidth:             aggregate.BarWidth(used),
		TotalInvestmentValue: aggregate.SumAmount(in.Investments, investment.CurrentValueOf),
		RecentExpenses:       aggregate.Top(aggregate.SortByDate(in.Expenses, expense.DateOf, true), recentExpenses),
		GroupFunds:           lines,
		Points:               in.Profile.Points,
		Streaks:              Streaks{Saver: in.Profile.SaverStreak, Budgeting: in.Profile.BudgetingStreak},
	}
}
