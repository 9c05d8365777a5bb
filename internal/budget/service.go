package budget

import (
	"context"
	"errors"
	"log/slog"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/core/common/validation"
	budgetDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/budget"
	"github.com/frahmantamala/student-finance/internal/core/events"
	"github.com/frahmantamala/student-finance/internal/expense"
	"github.com/frahmantamala/student-finance/internal/profile"
	"github.com/frahmantamala/student-finance/internal/store"
)

var ErrNothingToUpdate = internal.NewValidationError("spent or allocated is required", internal.ErrCodeValidationFailed)

type RepositoryAPI interface {
	List(ctx context.Context, owner string) ([]*budgetDatamodel.BudgetCategory, error)
	Insert(ctx context.Context, record *budgetDatamodel.BudgetCategory) error
	Update(ctx context.Context, owner, id string, apply func(*budgetDatamodel.BudgetCategory) error) (*budgetDatamodel.BudgetCategory, error)
}

type ProfileProvider interface {
	GetProfile(ctx context.Context, ownerID string) (*profile.Profile, bool)
}

type ExpenseProvider interface {
	ListExpenses(ctx context.Context, ownerID string) ([]*expense.Expense, bool)
}

type Service struct {
	repo      RepositoryAPI
	snapshots *store.Snapshots
	profiles  ProfileProvider
	expenses  ExpenseProvider
	events    events.Publisher
	logger    *slog.Logger
}

func NewService(repo RepositoryAPI, snapshots *store.Snapshots, profiles ProfileProvider, expenses ExpenseProvider, publisher events.Publisher, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		snapshots: snapshots,
		profiles:  profiles,
		expenses:  expenses,
		events:    publisher,
		logger:    logger,
	}
}

func (s *Service) GetOverview(ctx context.Context, ownerID, filter string) (*Overview, error) {
	if filter != "" && filter != aggregate.All {
		if _, err := expense.ParseCategory(filter); err != nil {
			return nil, internal.NewValidationFieldError("category", "unknown category filter", internal.ErrCodeInvalidFilter)
		}
	}

	p, profileStale := s.profiles.GetProfile(ctx, ownerID)
	expenses, expensesStale := s.expenses.ListExpenses(ctx, ownerID)

	view := BuildOverview(p.MonthlyBudget, expenses, filter)
	view.Stale = profileStale || expensesStale
	return &view, nil
}

// ListCategories returns the owner's budget categories, creating the defaults
// the first time the owner has none.
func (s *Service) ListCategories(ctx context.Context, ownerID string) ([]*Category, bool) {
	rows, stale := store.Read[budgetDatamodel.BudgetCategory](ctx, s.snapshots, store.BudgetCategories, ownerID, s.repo)
	if len(rows) > 0 || stale {
		categories := make([]*Category, len(rows))
		for i, row := range rows {
			categories[i] = FromDataModel(row)
		}
		return categories, stale
	}

	created := make([]*Category, 0, len(defaultCategories))
	for _, c := range DefaultCategories(ownerID) {
		row := ToDataModel(c)
		if err := s.repo.Insert(ctx, row); err != nil {
			s.logger.Error("failed to create default budget category", "owner_id", ownerID, "name", c.Name, "error", err)
			return created, true
		}
		created = append(created, FromDataModel(row))
	}

	s.logger.Info("default budget categories created", "owner_id", ownerID, "count", len(created))
	return created, false
}

func (s *Service) GetCategories(ctx context.Context, ownerID string) *CategoriesView {
	categories, stale := s.ListCategories(ctx, ownerID)
	view := BuildCategoriesView(categories)
	view.Stale = stale
	return &view
}

// UpdateCategory writes spent and/or allocated. Crossing from within budget to
// over budget publishes an over-budget event.
func (s *Service) UpdateCategory(ctx context.Context, ownerID, categoryID string, dto UpdateCategoryDTO) (*CategoryLine, error) {
	if dto.Spent == nil && dto.Allocated == nil {
		return nil, ErrNothingToUpdate
	}

	v := validation.NewValidator()
	if dto.Spent != nil {
		v.Field("spent", *dto.Spent).NonNegative()
	}
	if dto.Allocated != nil {
		v.Field("allocated", *dto.Allocated).NonNegative()
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}

	var wasOver bool
	row, err := s.repo.Update(ctx, ownerID, categoryID, func(c *budgetDatamodel.BudgetCategory) error {
		wasOver = c.Spent.GreaterThan(c.Allocated)
		if dto.Spent != nil {
			c.Spent = *dto.Spent
		}
		if dto.Allocated != nil {
			c.Allocated = *dto.Allocated
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, internal.ErrRecordNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update budget category", "owner_id", ownerID, "category_id", categoryID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}

	line := BuildCategoryLine(FromDataModel(row))
	if line.OverBudget && !wasOver {
		s.logger.Info("budget category went over budget", "category_id", categoryID, "overage", line.Overage.String())
		if err := s.events.Publish(ctx, events.NewCategoryOverBudgetEvent(categoryID, ownerID, line.Name, line.Overage)); err != nil {
			s.logger.Warn("failed to publish over budget event", "category_id", categoryID, "error", err)
		}
	}

	return &line, nil
}
