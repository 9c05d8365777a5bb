package gig

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/aggregate"
	gigDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/gig"
	"github.com/frahmantamala/student-finance/internal/store"
)

type RepositoryAPI interface {
	List(ctx context.Context, owner string) ([]*gigDatamodel.Gig, error)
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

func (s *Service) GetGigs(ctx context.Context, gigType, search string) (*GigsView, error) {
	if gigType != "" && gigType != aggregate.All {
		if _, err := ParseType(gigType); err != nil {
			return nil, internal.NewValidationFieldError("type", "unknown gig type", internal.ErrCodeInvalidFilter)
		}
	}

	rows, stale := store.Read[gigDatamodel.Gig](ctx, s.snapshots, store.Gigs, "", s.repo)
	gigs := make([]*Gig, 0, len(rows))
	for _, row := range rows {
		g, err := FromDataModel(row)
		if err != nil {
			s.logger.Warn("skipping unreadable gig", "gig_id", row.ID, "error", err)
			continue
		}
		gigs = append(gigs, g)
	}

	view := BuildGigsView(gigs, gigType, search)
	view.Stale = stale
	return &view, nil
}
