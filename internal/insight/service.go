package insight

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/budget"
	"github.com/frahmantamala/student-finance/internal/expense"
	"github.com/frahmantamala/student-finance/internal/investment"
	"github.com/frahmantamala/student-finance/internal/profile"
)

type ProfileProvider interface {
	GetProfile(ctx context.Context, ownerID string) (*profile.Profile, bool)
}

type ExpenseProvider interface {
	ListExpenses(ctx context.Context, ownerID string) ([]*expense.Expense, bool)
}

type InvestmentProvider interface {
	ListInvestments(ctx context.Context, ownerID string) ([]*investment.Investment, bool)
}

type Service struct {
	profiles    ProfileProvider
	expenses    ExpenseProvider
	investments InvestmentProvider
	logger      *slog.Logger
}

func NewService(profiles ProfileProvider, expenses ExpenseProvider, investments InvestmentProvider, logger *slog.Logger) *Service {
	return &Service{
		profiles:    profiles,
		expenses:    expenses,
		investments: investments,
		logger:      logger,
	}
}

// GetInsights only reads the collections the selected tab needs. An empty tab
// means spending.
func (s *Service) GetInsights(ctx context.Context, ownerID, tab string) (*InsightsView, error) {
	if tab == "" {
		tab = string(TabSpending)
	}
	t, err := ParseTab(tab)
	if err != nil {
		return nil, internal.NewValidationFieldError("tab", "tab must be one of spending, savings, investments", internal.ErrCodeInvalidFilter)
	}

	view := &InsightsView{Tab: t}
	switch t {
	case TabSpending:
		p, profileStale := s.profiles.GetProfile(ctx, ownerID)
		expenses, expenseStale := s.expenses.ListExpenses(ctx, ownerID)
		overview := budget.BuildOverview(p.MonthlyBudget, expenses, aggregate.All)
		view.Insights = SpendingInsights(overview)
		view.Breakdown = Breakdown(overview)
		view.Stale = profileStale || expenseStale
	case TabSavings:
		p, stale := s.profiles.GetProfile(ctx, ownerID)
		view.Insights = SavingsInsights(p.SaverStreak)
		view.Stale = stale
	case TabInvestments:
		investments, stale := s.investments.ListInvestments(ctx, ownerID)
		view.Insights = InvestmentInsights(investment.BuildPortfolioView(investments))
		view.Stale = stale
	}
	return view, nil
}
