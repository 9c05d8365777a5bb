package splitbill

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/aggregate"
	"github.com/frahmantamala/student-finance/internal/core/common/validation"
	splitbillDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/splitbill"
	"github.com/frahmantamala/student-finance/internal/store"
)

type RepositoryAPI interface {
	List(ctx context.Context, owner string) ([]*splitbillDatamodel.SplitBill, error)
	Insert(ctx context.Context, record *splitbillDatamodel.SplitBill) error
	Update(ctx context.Context, owner, id string, apply func(*splitbillDatamodel.SplitBill) error) (*splitbillDatamodel.SplitBill, error)
}

type Service struct {
	repo      RepositoryAPI
	snapshots *store.Snapshots
	logger    *slog.Logger
	Now       func() time.Time
}

func NewService(repo RepositoryAPI, snapshots *store.Snapshots, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		snapshots: snapshots,
		logger:    logger,
		Now:       aggregate.Now,
	}
}

func (s *Service) GetBills(ctx context.Context, ownerID string) *BillsView {
	rows, stale := store.Read[splitbillDatamodel.SplitBill](ctx, s.snapshots, store.SplitBills, ownerID, s.repo)
	bills := make([]*Bill, len(rows))
	for i, row := range rows {
		bills[i] = FromDataModel(row)
	}

	view := BuildBillsView(bills, ownerID)
	view.Stale = stale
	return &view
}

func (s *Service) CreateBill(ctx context.Context, ownerID string, dto CreateBillDTO) (*BillLine, error) {
	if dto.PaidBy == "" {
		dto.PaidBy = ownerID
	}

	date := aggregate.CalendarDay(s.Now().UTC())
	if dto.Date != "" {
		parsed, err := aggregate.ParseDate(dto.Date)
		if err != nil {
			return nil, internal.NewValidationFieldError("date", "date must be formatted as YYYY-MM-DD", internal.ErrCodeInvalidDate)
		}
		date = parsed
	}

	v := validation.NewValidator()
	v.Field("title", dto.Title).Required().MaxLength(200)
	v.Field("total_amount", dto.TotalAmount).Positive()
	v.Field("participants", dto.Participants).Required()
	v.Field("date", date).NotAfter(s.Now().UTC())
	if err := v.Validate(); err != nil {
		return nil, err
	}

	bill := &Bill{
		OwnerID:      ownerID,
		Title:        dto.Title,
		TotalAmount:  dto.TotalAmount,
		Participants: dedupe(dto.Participants),
		PaidBy:       dto.PaidBy,
		Date:         date,
	}

	row := ToDataModel(bill)
	if err := s.repo.Insert(ctx, row); err != nil {
		s.logger.Error("failed to create split bill", "owner_id", ownerID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}
	bill.ID = row.ID
	bill.CreatedAt = row.CreatedAt

	s.logger.Info("split bill created", "bill_id", bill.ID, "participants", len(bill.Participants))
	line := BuildBillLine(bill, ownerID)
	return &line, nil
}

// Settle marks a bill settled. Settling twice is harmless.
func (s *Service) Settle(ctx context.Context, ownerID, billID string) (*BillLine, error) {
	row, err := s.repo.Update(ctx, ownerID, billID, func(b *splitbillDatamodel.SplitBill) error {
		b.Settled = true
		return nil
	})
	if err != nil {
		if errors.Is(err, internal.ErrRecordNotFound) {
			return nil, err
		}
		s.logger.Error("failed to settle split bill", "bill_id", billID, "error", err)
		return nil, internal.NewStoreWriteError(err)
	}

	line := BuildBillLine(FromDataModel(row), ownerID)
	return &line, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
