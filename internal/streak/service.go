package streak

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/groupfund"
	"github.com/frahmantamala/student-finance/internal/investment"
	"github.com/frahmantamala/student-finance/internal/loan"
	"github.com/frahmantamala/student-finance/internal/profile"
)

const leaderboardSize = 10

type ProfileProvider interface {
	GetProfile(ctx context.Context, ownerID string) (*profile.Profile, bool)
}

type InvestmentProvider interface {
	ListInvestments(ctx context.Context, ownerID string) ([]*investment.Investment, bool)
}

type FundProvider interface {
	ListFunds(ctx context.Context, ownerID string) ([]*groupfund.Fund, bool)
}

type LoanProvider interface {
	ListLoans(ctx context.Context, ownerID string) ([]*loan.Loan, bool)
}

type LeaderboardAPI interface {
	Top(ctx context.Context, limit int) ([]Entry, error)
}

type Service struct {
	profiles    ProfileProvider
	investments InvestmentProvider
	funds       FundProvider
	loans       LoanProvider
	leaderboard LeaderboardAPI
	logger      *slog.Logger
}

func NewService(profiles ProfileProvider, investments InvestmentProvider, funds FundProvider, loans LoanProvider, leaderboard LeaderboardAPI, logger *slog.Logger) *Service {
	return &Service{
		profiles:    profiles,
		investments: investments,
		funds:       funds,
		loans:       loans,
		leaderboard: leaderboard,
		logger:      logger,
	}
}

func (s *Service) GetStreaks(ctx context.Context, ownerID string) *StreaksView {
	p, profileStale := s.profiles.GetProfile(ctx, ownerID)
	investments, investStale := s.investments.ListInvestments(ctx, ownerID)
	funds, fundStale := s.funds.ListFunds(ctx, ownerID)
	loans, loanStale := s.loans.ListLoans(ctx, ownerID)

	facts := Facts{
		SaverStreak:     p.SaverStreak,
		BudgetingStreak: p.BudgetingStreak,
		Investments:     len(investments),
		GroupFunds:      len(funds),
		LoansLent:       aggregate.CountWhere(loans, (*loan.Loan).IsLent),
	}

	stale := profileStale || investStale || fundStale || loanStale
	board, err := s.leaderboard.Top(ctx, leaderboardSize)
	if err != nil {
		s.logger.Error("failed to load leaderboard", "error", err)
		board = []Entry{}
		stale = true
	}

	view := BuildStreaksView(p.Points, Streaks{Saver: p.SaverStreak, Budgeting: p.BudgetingStreak}, facts, board, ownerID)
	view.Stale = stale
	return &view
}
