package expense

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/core/common/validation"
	expenseDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/expense"
	"github.com/frahmantamala/student-finance/internal/core/events"
	"github.com/frahmantamala/student-finance/internal/store"
)

type RepositoryAPI interface {
	List(ctx context.Context, owner string) ([]*expenseDatamodel.Expense, error)
	Insert(ctx context.Context, record *expenseDatamodel.Expense) error
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

// ListExpenses returns the owner's expenses. stale reports that the store could
// not be reached and the result is the last known set, possibly empty.
func (s *Service) ListExpenses(ctx context.Context, ownerID string) ([]*Expense, bool) {
	rows, stale := store.Read[expenseDatamodel.Expense](ctx, s.snapshots, store.Expenses, ownerID, s.repo)

	expenses := make([]*Expense, 0, len(rows))
	for _, row := range rows {
		e, err := FromDataModel(row)
		if err != nil {
			s.logger.Warn("skipping unreadable expense", "expense_id", row.ID, "error", err)
			continue
		}
		expenses = append(expenses, e)
	}
	return expenses, stale
}

func (s *Service) GetExpenses(ctx context.Context, ownerID, filter string) (*ListView, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	expenses, stale := s.ListExpenses(ctx, ownerID)
	view := BuildListView(expenses, filter)
	view.Stale = stale
	return &view, nil
}

func (s *Service) CreateExpense(ctx context.Context, ownerID string, dto CreateExpenseDTO) (*Expense, error) {
	var date time.Time
	if dto.Date == "" {
		date = aggregate.CalendarDay(s.Now().UTC())
	} else {
		parsed, err := aggregate.ParseDate(dto.Date)
		if err != nil {
			return nil, internal.NewValidationFieldError("date", "date must be formatted as YYYY-MM-DD", internal.ErrCodeInvalidDate)
		}
		date = parsed
	}

	v := validation.NewValidator()
	v.Field("title", dto.Title).Required().MaxLength(200)
	v.Field("amount", dto.Amount).NonNegative()
	v.Field("category", dto.Category).Required().OneOf(internal.ErrCodeInvalidCategory, CategoryNames()...)
	v.Field("date", date).NotAfter(s.Now().UTC())
	if err := v.Validate(); err != nil {
		return nil, err
	}

	expense := &Expense{
		OwnerID:  ownerID,
		Title:    dto.Title,
		Amount:   dto.Amount,
		Category: Category(dto.Category),
		Date:     date,
	}

	row := ToDataModel(expense)
	if err := s.repo.Insert(ctx, row); err != nil {
		s.logger.Error("failed to record expense", "owner_id", ownerID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}
	expense.ID = row.ID
	expense.CreatedAt = row.CreatedAt

	s.logger.Info("expense recorded", "expense_id", expense.ID, "category", expense.Category)

	if err := s.events.Publish(ctx, events.NewExpenseRecordedEvent(expense.ID, ownerID, expense.Amount, string(expense.Category))); err != nil {
		s.logger.Warn("failed to publish expense event", "expense_id", expense.ID, "error", err)
	}

	return expense, nil
}

func validateFilter(filter string) error {
	if filter == "" || filter == aggregate.All {
		return nil
	}
	if _, err := ParseCategory(filter); err != nil {
		return internal.NewValidationFieldError("category", "unknown category filter", internal.ErrCodeInvalidFilter)
	}
	return nil
}
