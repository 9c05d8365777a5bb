package dashboard

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/expense"
	"github.com/frahmantamala/student-finance/internal/groupfund"
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

type FundProvider interface {
	ListFunds(ctx context.Context, ownerID string) ([]*groupfund.Fund, bool)
}

type Service struct {
	profiles    ProfileProvider
	expenses    ExpenseProvider
	investments InvestmentProvider
	funds       FundProvider
	logger      *slog.Logger
	Now         func() time.Time
}

func NewService(profiles ProfileProvider, expenses ExpenseProvider, investments InvestmentProvider, funds FundProvider, logger *slog.Logger) *Service {
	return &Service{
		profiles:    profiles,
		expenses:    expenses,
		investments: investments,
		funds:       funds,
		logger:      logger,
		Now:         aggregate.Now,
	}
}

// GetDashboard runs the four reads concurrently. Each read degrades to a stale
// snapshot on its own, so the only error is the request being cancelled.
func (s *Service) GetDashboard(ctx context.Context, ownerID string) (*DashboardView, error) {
	var (
		in                                             Inputs
		profileStale, expStale, investStale, fundStale bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		in.Profile, profileStale = s.profiles.GetProfile(gctx, ownerID)
		return gctx.Err()
	})
	g.Go(func() error {
		in.Expenses, expStale = s.expenses.ListExpenses(gctx, ownerID)
		return gctx.Err()
	})
	g.Go(func() error {
		in.Investments, investStale = s.investments.ListInvestments(gctx, ownerID)
		return gctx.Err()
	})
	g.Go(func() error {
		in.Funds, fundStale = s.funds.ListFunds(gctx, ownerID)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		s.logger.Warn("dashboard reads abandoned", "owner_id", ownerID, "error", err)
		return nil, err
	}

	view := BuildDashboardView(in, s.Now())
	view.Stale = profileStale || expStale || investStale || fundStale
	return &view, nil
}
