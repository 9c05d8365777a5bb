package profile

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/core/common/validation"
	profileDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/profile"
	"github.com/frahmantamala/student-finance/internal/store"
)

type RepositoryAPI interface {
	List(ctx context.Context, owner string) ([]*profileDatamodel.Profile, error)
	Insert(ctx context.Context, record *profileDatamodel.Profile) error
	Update(ctx context.Context, owner, id string, apply func(*profileDatamodel.Profile) error) (*profileDatamodel.Profile, error)
}

type Service struct {
	repo          RepositoryAPI
	snapshots     *store.Snapshots
	defaultBudget decimal.Decimal
	logger        *slog.Logger
}

func NewService(repo RepositoryAPI, snapshots *store.Snapshots, defaultBudget decimal.Decimal, logger *slog.Logger) *Service {
	return &Service{
		repo:          repo,
		snapshots:     snapshots,
		defaultBudget: defaultBudget,
		logger:        logger,
	}
}

// GetProfile returns the owner's profile, creating it with the default budget
// on first access. When the store cannot be reached or the new profile cannot
// be saved, an unsaved default is returned with stale set.
func (s *Service) GetProfile(ctx context.Context, ownerID string) (*Profile, bool) {
	rows, stale := store.Read[profileDatamodel.Profile](ctx, s.snapshots, store.Profiles, ownerID, s.repo)
	if len(rows) > 0 {
		return FromDataModel(rows[0]), stale
	}

	fresh := NewProfile(ownerID, s.defaultBudget)
	if stale {
		return fresh, true
	}

	if err := s.repo.Insert(ctx, ToDataModel(fresh)); err != nil {
		s.logger.Error("failed to create profile", "owner_id", ownerID, "error", err)
		return fresh, true
	}

	s.logger.Info("profile created", "owner_id", ownerID, "monthly_budget", fresh.MonthlyBudget.String())
	return fresh, false
}

func (s *Service) UpdateProfile(ctx context.Context, ownerID string, dto UpdateProfileDTO) (*Profile, error) {
	v := validation.NewValidator()
	if dto.DisplayName != nil {
		v.Field("display_name", *dto.DisplayName).Required().MaxLength(100)
	}
	if dto.MonthlyBudget != nil {
		v.Field("monthly_budget", *dto.MonthlyBudget).NonNegative()
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	if _, stale := s.GetProfile(ctx, ownerID); stale {
		return nil, internal.NewStoreReadError(nil)
	}

	updated, err := s.repo.Update(ctx, ownerID, ownerID, func(p *profileDatamodel.Profile) error {
		if dto.DisplayName != nil {
			p.DisplayName = *dto.DisplayName
		}
		if dto.Avatar != nil {
			p.Avatar = *dto.Avatar
		}
		if dto.MonthlyBudget != nil {
			p.MonthlyBudget = *dto.MonthlyBudget
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to update profile", "owner_id", ownerID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}

	return FromDataModel(updated), nil
}
