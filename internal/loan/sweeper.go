package loan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/frahmantamala/student-finance/internal/aggregate"
	loanDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/loan"
	"github.com/frahmantamala/student-finance/internal/core/events"
	"github.com/frahmantamala/student-finance/internal/worker"
)

var errNoLongerActive = errors.New("loan is no longer active")

// Sweeper persists the overdue transition for active loans whose due date has
// passed, across every owner.
type Sweeper struct {
	repo   RepositoryAPI
	pool   *worker.Pool
	events events.Publisher
	logger *slog.Logger
	Now    func() time.Time
}

func NewSweeper(repo RepositoryAPI, pool *worker.Pool, publisher events.Publisher, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		repo:   repo,
		pool:   pool,
		events: publisher,
		logger: logger,
		Now:    aggregate.Now,
	}
}

// Sweep marks every past-due active loan overdue and returns how many it
// changed. Loans settled between listing and updating are left alone.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	rows, err := s.repo.List(ctx, "")
	if err != nil {
		return 0, fmt.Errorf("list loans: %w", err)
	}

	today := s.Now()
	var marked int32
	for _, row := range rows {
		if row.Status != string(StatusActive) || aggregate.DaysUntil(row.DueDate, today) >= 0 {
			continue
		}

		row := row
		job := worker.Job{
			ID: "loan-overdue-" + row.ID,
			Run: func(jobCtx context.Context) error {
				return s.markOverdue(jobCtx, row, &marked)
			},
		}
		if err := s.pool.Submit(job); err != nil {
			s.logger.Warn("could not queue overdue loan, will retry next sweep", "loan_id", row.ID, "error", err)
		}
	}

	s.pool.Wait()
	return int(atomic.LoadInt32(&marked)), nil
}

func (s *Sweeper) markOverdue(ctx context.Context, row *loanDatamodel.Loan, marked *int32) error {
	updated, err := s.repo.Update(ctx, row.OwnerID, row.ID, func(l *loanDatamodel.Loan) error {
		if l.Status != string(StatusActive) {
			return errNoLongerActive
		}
		l.Status = string(StatusOverdue)
		return nil
	})
	if errors.Is(err, errNoLongerActive) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("mark loan %s overdue: %w", row.ID, err)
	}

	atomic.AddInt32(marked, 1)
	s.logger.Info("loan marked overdue", "loan_id", updated.ID, "owner_id", updated.OwnerID)

	if err := s.events.Publish(ctx, events.NewLoanOverdueEvent(updated.ID, updated.OwnerID, updated.DueDate)); err != nil {
		s.logger.Warn("failed to publish overdue event", "loan_id", updated.ID, "error", err)
	}
	return nil
}

// Run sweeps immediately and then on every tick until ctx is done.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if n, err := s.Sweep(ctx); err != nil {
			s.logger.Error("overdue loan sweep failed", "error", err)
		} else {
			s.logger.Info("overdue loan sweep finished", "marked", n)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
