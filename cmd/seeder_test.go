package cmd

import (
	"context"
	"io"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/aggregate"
	budgetDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/budget"
	expenseDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/expense"
	feedbackDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/feedback"
	gigDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/gig"
	groupfundDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/groupfund"
	investmentDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/investment"
	loanDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/loan"
	offerDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/offer"
	paymentDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/payment"
	profileDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/profile"
	splitbillDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/splitbill"
	subscriptionDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/subscription"
	"github.com/frahmantamala/student-finance/internal/core/events"
	"github.com/frahmantamala/student-finance/internal/groupfund"
	"github.com/frahmantamala/student-finance/internal/store"
	"github.com/frahmantamala/student-finance/internal/store/gormstore"
)

var _ = Describe("Seeder", func() {
	now := time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

	It("should land the sample day on today", func() {
		s := newSeeder("1", now)
		Expect(s.date("2025-01-10")).To(Equal(aggregate.CalendarDay(now)))
		Expect(aggregate.DaysUntil(s.date("2025-01-25"), now)).To(Equal(15))
	})

	It("should derive stable ids per owner", func() {
		a := newSeeder("1", now)
		b := newSeeder("2", now)
		Expect(a.id("expense/1")).To(Equal(newSeeder("1", now).id("expense/1")))
		Expect(a.id("expense/1")).NotTo(Equal(b.id("expense/1")))
	})

	It("should give every owned sample to the seeded owner", func() {
		s := newSeeder("user-7", now)
		for _, e := range s.expenses() {
			Expect(e.OwnerID).To(Equal("user-7"))
		}
		Expect(s.profiles()[0].ID).To(Equal("user-7"))
		Expect(s.groupFunds()[0].Contributors[0].UserID).To(Equal("user-7"))
	})

	It("should keep every seeded fund reconciled", func() {
		for _, f := range newSeeder("1", now).groupFunds() {
			line := groupfund.BuildFundLine(groupfund.FromDataModel(f), now)
			Expect(line.Reconciled).To(BeTrue(), f.Title)
		}
	})

	Context("against a record store", func() {
		var db *gorm.DB

		BeforeEach(func() {
			var err error
			db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
				Logger: logger.Default.LogMode(logger.Silent),
			})
			Expect(err).NotTo(HaveOccurred())
			sqlDB, err := db.DB()
			Expect(err).NotTo(HaveOccurred())
			sqlDB.SetMaxOpenConns(1)
			Expect(db.AutoMigrate(
				&profileDatamodel.Profile{},
				&budgetDatamodel.BudgetCategory{},
				&expenseDatamodel.Expense{},
				&splitbillDatamodel.SplitBill{},
				&groupfundDatamodel.GroupFund{},
				&loanDatamodel.Loan{},
				&subscriptionDatamodel.Subscription{},
				&investmentDatamodel.Investment{},
				&paymentDatamodel.Contact{},
				&paymentDatamodel.Transaction{},
				&gigDatamodel.Gig{},
				&offerDatamodel.Offer{},
				&feedbackDatamodel.Feedback{},
			)).To(Succeed())
		})

		It("should be safe to run twice", func() {
			s := newSeeder("1", now)
			first := db.Clauses(clause.OnConflict{DoNothing: true}).Create(s.expenses())
			Expect(first.Error).NotTo(HaveOccurred())
			Expect(first.RowsAffected).To(BeEquivalentTo(4))

			second := db.Clauses(clause.OnConflict{DoNothing: true}).Create(newSeeder("1", now).expenses())
			Expect(second.Error).NotTo(HaveOccurred())
			Expect(second.RowsAffected).To(BeEquivalentTo(0))
		})

		It("should seed rows the services can read", func() {
			s := newSeeder("1", now)
			Expect(db.Create(s.groupFunds()).Error).NotTo(HaveOccurred())

			lg := slog.New(slog.NewTextHandler(io.Discard, nil))
			snapshots, err := store.NewSnapshots(internal.CacheConfig{Enabled: true}, lg)
			Expect(err).NotTo(HaveOccurred())
			defer snapshots.Close()

			svc := groupfund.NewService(gormstore.NewOwned[groupfundDatamodel.GroupFund](db, "deadline ASC"), snapshots, events.NewEventBus(lg), lg)
			svc.Now = func() time.Time { return now }
			view := svc.GetFunds(context.Background(), "1")
			Expect(view.Stale).To(BeFalse())
			Expect(view.Funds).To(HaveLen(2))
			Expect(view.Funds[0].Title).To(Equal("Abhijeet's Birthday Party"))
			Expect(view.Funds[0].DaysLeft).To(Equal(15))
		})

		It("should clear every seeded table", func() {
			s := newSeeder("1", now)
			Expect(db.Create(s.profiles()).Error).NotTo(HaveOccurred())
			Expect(db.Create(s.gigs()).Error).NotTo(HaveOccurred())

			Expect(clearTables(db)).To(Succeed())
			var count int64
			Expect(db.Model(&profileDatamodel.Profile{}).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
			Expect(db.Model(&gigDatamodel.Gig{}).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})
	})

	It("should map the configured store to its sql driver", func() {
		Expect(sqlDriverName(internal.DatabaseConfig{Driver: "sqlite"})).To(Equal("sqlite3"))
		Expect(sqlDriverName(internal.DatabaseConfig{Driver: "postgres"})).To(Equal("pgx"))
		Expect(sqlDriverName(internal.DatabaseConfig{})).To(Equal("pgx"))
	})
})
