package offer

import (
	"context"
	"log/slog"
	"time"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/aggregate"
	offerDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/offer"
	"github.com/frahmantamala/student-finance/internal/store"
)

type RepositoryAPI interface {
	List(ctx context.Context, owner string) ([]*offerDatamodel.Offer, error)
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

func (s *Service) GetOffers(ctx context.Context, category string) (*OffersView, error) {
	if category != "" && category != aggregate.All {
		if _, err := ParseCategory(category); err != nil {
			return nil, internal.NewValidationFieldError("category", "unknown offer category", internal.ErrCodeInvalidFilter)
		}
	}

	rows, stale := store.Read[offerDatamodel.Offer](ctx, s.snapshots, store.Offers, "", s.repo)
	offers := make([]*Offer, 0, len(rows))
	for _, row := range rows {
		o, err := FromDataModel(row)
		if err != nil {
			s.logger.Warn("skipping unreadable offer", "offer_id", row.ID, "error", err)
			continue
		}
		offers = append(offers, o)
	}

	view := BuildOffersView(offers, category, s.Now())
	view.Stale = stale
	return &view, nil
}
