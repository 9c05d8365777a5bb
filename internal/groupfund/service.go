package groupfund

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/core/common/validation"
	groupfundDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/groupfund"
	"github.com/frahmantamala/student-finance/internal/core/events"
	"github.com/frahmantamala/student-finance/internal/store"
)

type RepositoryAPI interface {
	List(ctx context.Context, owner string) ([]*groupfundDatamodel.GroupFund, error)
	Insert(ctx context.Context, record *groupfundDatamodel.GroupFund) error
	Update(ctx context.Context, owner, id string, apply func(*groupfundDatamodel.GroupFund) error) (*groupfundDatamodel.GroupFund, error)
}

type Service struct {
	repo      RepositoryAPI
	snapshots *store.Snapshots
	events    events.Publisher
	logger    *slog.Logger
	Now       func() time.Time
}

func NewService(repo RepositoryAPI, snapshots *store.Snapshots, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		snapshots: snapshots,
		events:    publisher,
		logger:    logger,
		Now:       aggregate.Now,
	}
}

func (s *Service) ListFunds(ctx context.Context, ownerID string) ([]*Fund, bool) {
	rows, stale := store.Read[groupfundDatamodel.GroupFund](ctx, s.snapshots, store.GroupFunds, ownerID, s.repo)
	funds := make([]*Fund, len(rows))
	for i, row := range rows {
		funds[i] = FromDataModel(row)
	}
	return funds, stale
}

func (s *Service) GetFunds(ctx context.Context, ownerID string) *FundsView {
	funds, stale := s.ListFunds(ctx, ownerID)
	view := BuildFundsView(funds, s.Now())
	view.Stale = stale
	return &view
}

func (s *Service) CreateFund(ctx context.Context, ownerID string, dto CreateFundDTO) (*FundLine, error) {
	v := validation.NewValidator()
	v.Field("title", dto.Title).Required().MaxLength(200)
	v.Field("target_amount", dto.TargetAmount).Positive()
	v.Field("deadline", dto.Deadline).Required()
	if err := v.Validate(); err != nil {
		return nil, err
	}

	deadline, err := aggregate.ParseDate(dto.Deadline)
	if err != nil {
		return nil, internal.NewValidationFieldError("deadline", "deadline must be formatted as YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}

	fund := &Fund{
		OwnerID:       ownerID,
		Title:         dto.Title,
		Description:   dto.Description,
		TargetAmount:  dto.TargetAmount,
		CurrentAmount: decimal.Zero,
		Contributors:  []Contributor{},
		Deadline:      deadline,
	}

	row := ToDataModel(fund)
	if err := s.repo.Insert(ctx, row); err != nil {
		s.logger.Error("failed to create group fund", "owner_id", ownerID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}

	s.logger.Info("group fund created", "fund_id", row.ID, "target", dto.TargetAmount.String())
	line := BuildFundLine(FromDataModel(row), s.Now())
	return &line, nil
}

// Contribute credits a contribution to the fund total and the contributor
// breakdown in a single write. Reaching the target for the first time
// publishes a goal event.
func (s *Service) Contribute(ctx context.Context, ownerID, fundID string, dto ContributeDTO) (*FundLine, error) {
	if dto.UserID == "" {
		dto.UserID = ownerID
	}
	v := validation.NewValidator()
	v.Field("amount", dto.Amount).Positive()
	v.Field("user_id", dto.UserID).MaxLength(100)
	if err := v.Validate(); err != nil {
		return nil, err
	}

	var reachedBefore bool
	row, err := s.repo.Update(ctx, ownerID, fundID, func(f *groupfundDatamodel.GroupFund) error {
		reachedBefore = FromDataModel(f).GoalReached()
		addContribution(f, dto.UserID, dto.Amount)
		return nil
	})
	if err != nil {
		if errors.Is(err, internal.ErrRecordNotFound) {
			return nil, err
		}
		s.logger.Error("failed to record contribution", "fund_id", fundID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}

	fund := FromDataModel(row)
	s.logger.Info("contribution recorded", "fund_id", fundID, "user_id", dto.UserID, "amount", dto.Amount.String())

	if fund.GoalReached() && !reachedBefore {
		if err := s.events.Publish(ctx, events.NewFundGoalReachedEvent(fund.ID, ownerID, fund.TargetAmount)); err != nil {
			s.logger.Warn("failed to publish goal event", "fund_id", fundID, "error", err)
		}
	}

	line := BuildFundLine(fund, s.Now())
	return &line, nil
}
