package loan

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/core/common/validation"
	loanDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/loan"
	"github.com/frahmantamala/student-finance/internal/profile"
	"github.com/frahmantamala/student-finance/internal/store"
)

type RepositoryAPI interface {
	List(ctx context.Context, owner string) ([]*loanDatamodel.Loan, error)
	Insert(ctx context.Context, record *loanDatamodel.Loan) error
	Update(ctx context.Context, owner, id string, apply func(*loanDatamodel.Loan) error) (*loanDatamodel.Loan, error)
}

type ProfileProvider interface {
	GetProfile(ctx context.Context, ownerID string) (*profile.Profile, bool)
}

type Service struct {
	repo      RepositoryAPI
	snapshots *store.Snapshots
	profiles  ProfileProvider
	logger    *slog.Logger
	Now       func() time.Time
}

func NewService(repo RepositoryAPI, snapshots *store.Snapshots, profiles ProfileProvider, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		snapshots: snapshots,
		profiles:  profiles,
		logger:    logger,
		Now:       aggregate.Now,
	}
}

// SelfName is how the owner is named on loans recorded now.
func SelfName(p *profile.Profile) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.ID
}

func (s *Service) ListLoans(ctx context.Context, ownerID string) ([]*Loan, bool) {
	rows, stale := store.Read[loanDatamodel.Loan](ctx, s.snapshots, store.Loans, ownerID, s.repo)
	loans := make([]*Loan, 0, len(rows))
	for _, row := range rows {
		l, err := FromDataModel(row)
		if err != nil {
			s.logger.Warn("skipping unreadable loan", "loan_id", row.ID, "error", err)
			continue
		}
		loans = append(loans, l)
	}
	return loans, stale
}

func (s *Service) GetLoans(ctx context.Context, ownerID, direction string) (*LoansView, error) {
	d := Direction(direction)
	switch d {
	case "", DirectionAll, DirectionBorrowed, DirectionLent:
	default:
		return nil, internal.NewValidationFieldError("direction", "direction must be one of: all, borrowed, lent", internal.ErrCodeInvalidFilter)
	}

	loans, stale := s.ListLoans(ctx, ownerID)

	view := BuildLoansView(loans, d, s.Now())
	view.Stale = stale
	return &view, nil
}

func (s *Service) CreateLoan(ctx context.Context, ownerID string, dto CreateLoanDTO) (*LoanLine, error) {
	v := validation.NewValidator()
	v.Field("direction", dto.Direction).Required().OneOf(internal.ErrCodeValidationFailed, string(DirectionBorrowed), string(DirectionLent))
	v.Field("counterparty", dto.Counterparty).Required().MaxLength(100)
	v.Field("amount", dto.Amount).Positive()
	v.Field("interest_rate", dto.InterestRate).NonNegative()
	v.Field("due_date", dto.DueDate).Required()
	v.Field("description", dto.Description).MaxLength(500)
	if err := v.Validate(); err != nil {
		return nil, err
	}

	due, err := aggregate.ParseDate(dto.DueDate)
	if err != nil {
		return nil, internal.NewValidationFieldError("due_date", "due_date must be formatted as YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}

	p, stale := s.profiles.GetProfile(ctx, ownerID)
	if stale {
		return nil, internal.NewStoreReadError(nil)
	}
	self := SelfName(p)

	l := &Loan{
		OwnerID:      ownerID,
		Direction:    Direction(dto.Direction),
		Amount:       dto.Amount,
		InterestRate: dto.InterestRate,
		DueDate:      due,
		Status:       StatusActive,
		Description:  dto.Description,
	}
	if l.IsBorrowed() {
		l.Borrower, l.Lender = self, dto.Counterparty
	} else {
		l.Borrower, l.Lender = dto.Counterparty, self
	}

	row := ToDataModel(l)
	if err := s.repo.Insert(ctx, row); err != nil {
		s.logger.Error("failed to create loan", "owner_id", ownerID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}
	l.ID = row.ID
	l.CreatedAt = row.CreatedAt

	s.logger.Info("loan created", "loan_id", l.ID, "direction", dto.Direction)
	return s.line(l), nil
}

func (s *Service) UpdateStatus(ctx context.Context, ownerID, loanID string, dto UpdateStatusDTO) (*LoanLine, error) {
	v := validation.NewValidator()
	v.Field("status", dto.Status).Required().OneOf(internal.ErrCodeInvalidStatus, StatusNames()...)
	if err := v.Validate(); err != nil {
		return nil, err
	}

	row, err := s.repo.Update(ctx, ownerID, loanID, func(l *loanDatamodel.Loan) error {
		l.Status = dto.Status
		return nil
	})
	if err != nil {
		if errors.Is(err, internal.ErrRecordNotFound) {
			return nil, err
		}
		s.logger.Error("failed to update loan status", "loan_id", loanID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}

	l, err := FromDataModel(row)
	if err != nil {
		return nil, internal.NewInternalError("stored loan is unreadable", err)
	}
	return s.line(l), nil
}

func (s *Service) line(l *Loan) *LoanLine {
	today := s.Now()
	return &LoanLine{
		Loan:            l,
		EffectiveStatus: l.EffectiveStatus(today),
		DaysToDeadline:  aggregate.DaysUntil(l.DueDate, today),
	}
}
