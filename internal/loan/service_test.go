package loan_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/student-finance/internal"
	loanDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/loan"
	"github.com/frahmantamala/student-finance/internal/core/events"
	"github.com/frahmantamala/student-finance/internal/loan"
	"github.com/frahmantamala/student-finance/internal/profile"
	"github.com/frahmantamala/student-finance/internal/store"
	"github.com/frahmantamala/student-finance/internal/store/gormstore"
	"github.com/frahmantamala/student-finance/internal/worker"
)

type stubProfiles struct {
	name  string
	stale bool
}

func (s stubProfiles) GetProfile(_ context.Context, ownerID string) (*profile.Profile, bool) {
	return &profile.Profile{ID: ownerID, DisplayName: s.name}, s.stale
}

var _ = Describe("Loan Service", func() {
	var (
		db        *gorm.DB
		repo      *gormstore.Collection[loanDatamodel.Loan]
		service   *loan.Service
		snapshots *store.Snapshots
		profiles  *stubProfiles
		lg        *slog.Logger
		ctx       context.Context
	)

	BeforeEach(func() {
		var err error
		lg = slog.New(slog.NewTextHandler(io.Discard, nil))
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)
		Expect(db.AutoMigrate(&loanDatamodel.Loan{})).To(Succeed())

		snapshots, err = store.NewSnapshots(internal.CacheConfig{Enabled: true}, lg)
		Expect(err).NotTo(HaveOccurred())

		repo = gormstore.NewOwned[loanDatamodel.Loan](db, "due_date ASC")
		profiles = &stubProfiles{name: self}
		service = loan.NewService(repo, snapshots, profiles, lg)
		service.Now = func() time.Time { return date("2025-01-10") }
		ctx = context.Background()
	})

	AfterEach(func() {
		snapshots.Close()
	})

	Describe("CreateLoan", func() {
		It("should put the owner on the side given by the direction", func() {
			borrowed, err := service.CreateLoan(ctx, "owner-1", loan.CreateLoanDTO{
				Direction: "borrowed", Counterparty: "Anuva Gupta", Amount: decimal.NewFromInt(1500),
				InterestRate: decimal.NewFromInt(1), DueDate: "2025-01-30",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(borrowed.Borrower).To(Equal(self))
			Expect(borrowed.Lender).To(Equal("Anuva Gupta"))
			Expect(borrowed.Direction).To(Equal(loan.DirectionBorrowed))
			Expect(borrowed.Status).To(Equal(loan.StatusActive))

			lent, err := service.CreateLoan(ctx, "owner-1", loan.CreateLoanDTO{
				Direction: "lent", Counterparty: "Abinesh Raj", Amount: decimal.NewFromInt(2000),
				InterestRate: decimal.NewFromInt(2), DueDate: "2025-02-15",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(lent.Lender).To(Equal(self))

			view, err := service.GetLoans(ctx, "owner-1", "lent")
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Loans).To(HaveLen(1))
			Expect(view.TotalBorrowed.Equal(decimal.NewFromInt(1500))).To(BeTrue())
		})

		It("should keep a loan's direction after the owner is renamed", func() {
			_, err := service.CreateLoan(ctx, "owner-1", loan.CreateLoanDTO{
				Direction: "borrowed", Counterparty: "Anuva Gupta", Amount: decimal.NewFromInt(500), DueDate: "2025-01-30",
			})
			Expect(err).NotTo(HaveOccurred())

			profiles.name = "Akanksha S."
			view, err := service.GetLoans(ctx, "owner-1", "borrowed")
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Loans).To(HaveLen(1))
			Expect(view.Loans[0].Borrower).To(Equal(self))
			Expect(view.TotalBorrowed.Equal(decimal.NewFromInt(500))).To(BeTrue())
			Expect(view.TotalLent.IsZero()).To(BeTrue())
		})

		It("should refuse as unavailable when the profile cannot be read", func() {
			profiles.stale = true
			_, err := service.CreateLoan(ctx, "owner-1", loan.CreateLoanDTO{
				Direction: "lent", Counterparty: "x", Amount: decimal.NewFromInt(1), DueDate: "2025-02-01",
			})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(internal.ErrCodeStoreRead))
			Expect(appErr.StatusCode).To(Equal(503))
		})

		DescribeTable("should validate input",
			func(dto loan.CreateLoanDTO) {
				_, err := service.CreateLoan(ctx, "owner-1", dto)
				appErr, ok := internal.IsAppError(err)
				Expect(ok).To(BeTrue())
				Expect(appErr.StatusCode).To(Equal(400))
			},
			Entry("unknown direction", loan.CreateLoanDTO{Direction: "gift", Counterparty: "x", Amount: decimal.NewFromInt(1), DueDate: "2025-02-01"}),
			Entry("no counterparty", loan.CreateLoanDTO{Direction: "lent", Amount: decimal.NewFromInt(1), DueDate: "2025-02-01"}),
			Entry("zero amount", loan.CreateLoanDTO{Direction: "lent", Counterparty: "x", DueDate: "2025-02-01"}),
			Entry("negative interest", loan.CreateLoanDTO{Direction: "lent", Counterparty: "x", Amount: decimal.NewFromInt(1), InterestRate: decimal.NewFromInt(-1), DueDate: "2025-02-01"}),
			Entry("bad due date", loan.CreateLoanDTO{Direction: "lent", Counterparty: "x", Amount: decimal.NewFromInt(1), DueDate: "next week"}),
		)
	})

	Describe("GetLoans", func() {
		It("should reject an unknown direction", func() {
			_, err := service.GetLoans(ctx, "owner-1", "sideways")
			Expect(err).To(HaveOccurred())
		})

		It("should skip rows with an unknown status", func() {
			Expect(repo.Insert(ctx, &loanDatamodel.Loan{OwnerID: "owner-1", Amount: decimal.NewFromInt(5), Borrower: self, Lender: "x", Direction: "borrowed", DueDate: date("2025-02-01"), Status: "forgiven"})).To(Succeed())
			view, err := service.GetLoans(ctx, "owner-1", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(view.Loans).To(BeEmpty())
		})
	})

	Describe("UpdateStatus", func() {
		var loanID string

		BeforeEach(func() {
			line, err := service.CreateLoan(ctx, "owner-1", loan.CreateLoanDTO{
				Direction: "borrowed", Counterparty: "Anuva Gupta", Amount: decimal.NewFromInt(1500), DueDate: "2025-01-30",
			})
			Expect(err).NotTo(HaveOccurred())
			loanID = line.ID
		})

		It("should mark a loan paid", func() {
			line, err := service.UpdateStatus(ctx, "owner-1", loanID, loan.UpdateStatusDTO{Status: "paid"})
			Expect(err).NotTo(HaveOccurred())
			Expect(line.Status).To(Equal(loan.StatusPaid))
			Expect(line.EffectiveStatus).To(Equal(loan.StatusPaid))
		})

		It("should reject an unknown status", func() {
			_, err := service.UpdateStatus(ctx, "owner-1", loanID, loan.UpdateStatusDTO{Status: "forgiven"})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("should not reach another owner's loan", func() {
			_, err := service.UpdateStatus(ctx, "owner-2", loanID, loan.UpdateStatusDTO{Status: "paid"})
			Expect(errors.Is(err, internal.ErrRecordNotFound)).To(BeTrue())
		})
	})

	Describe("Sweeper", func() {
		var (
			pool    *worker.Pool
			bus     *events.EventBus
			sweeper *loan.Sweeper
		)

		BeforeEach(func() {
			pool = worker.NewPool(worker.Config{Name: "loans", MaxWorkers: 2, JobQueueSize: 10}, lg)
			bus = events.NewEventBus(lg)
			sweeper = loan.NewSweeper(repo, pool, bus, lg)
			sweeper.Now = func() time.Time { return date("2025-02-01") }

			for _, l := range []*loanDatamodel.Loan{
				{OwnerID: "owner-1", Amount: decimal.NewFromInt(1500), Borrower: self, Lender: "Anuva Gupta", Direction: "borrowed", DueDate: date("2025-01-30"), Status: "active", Description: "a"},
				{OwnerID: "owner-2", Amount: decimal.NewFromInt(300), Borrower: "Rahul", Lender: "Abhijeet", Direction: "lent", DueDate: date("2025-01-15"), Status: "active", Description: "b"},
				{OwnerID: "owner-1", Amount: decimal.NewFromInt(2000), Borrower: "Abinesh Raj", Lender: self, Direction: "lent", DueDate: date("2025-02-15"), Status: "active", Description: "c"},
				{OwnerID: "owner-1", Amount: decimal.NewFromInt(100), Borrower: self, Lender: "x", Direction: "borrowed", DueDate: date("2025-01-01"), Status: "paid", Description: "d"},
			} {
				Expect(repo.Insert(ctx, l)).To(Succeed())
			}
		})

		AfterEach(func() {
			pool.Shutdown()
		})

		It("should mark past-due active loans overdue across owners", func() {
			var mu sync.Mutex
			var overdue []string
			bus.Subscribe(events.EventTypeLoanOverdue, func(_ context.Context, e events.Event) error {
				mu.Lock()
				defer mu.Unlock()
				overdue = append(overdue, e.(*events.LoanOverdueEvent).OwnerID)
				return nil
			})

			n, err := sweeper.Sweep(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(2))

			rows, err := repo.List(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			statuses := map[string]string{}
			for _, r := range rows {
				statuses[r.Description] = r.Status
			}
			Expect(statuses).To(Equal(map[string]string{"a": "overdue", "b": "overdue", "c": "active", "d": "paid"}))

			bus.Drain()
			mu.Lock()
			defer mu.Unlock()
			Expect(overdue).To(ConsistOf("owner-1", "owner-2"))
		})

		It("should do nothing on a second sweep", func() {
			_, err := sweeper.Sweep(ctx)
			Expect(err).NotTo(HaveOccurred())
			n, err := sweeper.Sweep(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(0))
		})
	})
})
