package investment

import (
	"context"
	"log/slog"
	"strings"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/core/common/validation"
	investmentDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/investment"
	"github.com/frahmantamala/student-finance/internal/store"
)

type RepositoryAPI interface {
	List(ctx context.Context, owner string) ([]*investmentDatamodel.Investment, error)
	Insert(ctx context.Context, record *investmentDatamodel.Investment) error
}

type Service struct {
	repo      RepositoryAPI
	snapshots *store.Snapshots
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, snapshots *store.Snapshots, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		snapshots: snapshots,
		logger:    logger,
	}
}

func (s *Service) ListInvestments(ctx context.Context, ownerID string) ([]*Investment, bool) {
	rows, stale := store.Read[investmentDatamodel.Investment](ctx, s.snapshots, store.Investments, ownerID, s.repo)
	investments := make([]*Investment, 0, len(rows))
	for _, row := range rows {
		inv, err := FromDataModel(row)
		if err != nil {
			s.logger.Warn("skipping unreadable investment", "investment_id", row.ID, "error", err)
			continue
		}
		investments = append(investments, inv)
	}
	return investments, stale
}

func (s *Service) GetPortfolio(ctx context.Context, ownerID string) *PortfolioView {
	investments, stale := s.ListInvestments(ctx, ownerID)
	view := BuildPortfolioView(investments)
	view.Stale = stale
	return &view
}

func (s *Service) CreateInvestment(ctx context.Context, ownerID string, dto CreateInvestmentDTO) (*Holding, error) {
	v := validation.NewValidator()
	v.Field("type", dto.Type).Required().OneOf(internal.ErrCodeInvalidCategory, TypeNames()...)
	v.Field("symbol", dto.Symbol).Required().MaxLength(20)
	v.Field("amount", dto.Amount).Positive()
	if dto.CurrentValue != nil {
		v.Field("current_value", *dto.CurrentValue).NonNegative()
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	inv := &Investment{
		OwnerID:      ownerID,
		Type:         Type(dto.Type),
		Symbol:       strings.ToUpper(dto.Symbol),
		Amount:       dto.Amount,
		CurrentValue: dto.Amount,
	}
	if dto.CurrentValue != nil {
		inv.CurrentValue = *dto.CurrentValue
	}

	row := ToDataModel(inv)
	if err := s.repo.Insert(ctx, row); err != nil {
		s.logger.Error("failed to record investment", "owner_id", ownerID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}
	inv.ID = row.ID
	inv.CreatedAt = row.CreatedAt

	s.logger.Info("investment recorded", "investment_id", inv.ID, "type", inv.Type, "symbol", inv.Symbol)
	holding := BuildHolding(inv)
	return &holding, nil
}
