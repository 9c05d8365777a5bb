package profile_test

import (
	"context"
	"errors"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/student-finance/internal"
	profileDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/profile"
	"github.com/frahmantamala/student-finance/internal/profile"
	"github.com/frahmantamala/student-finance/internal/store"
	"github.com/frahmantamala/student-finance/internal/store/gormstore"
)

// flakyRepository wraps a real collection and fails on demand.
type flakyRepository struct {
	*gormstore.Collection[profileDatamodel.Profile]
	listErr   error
	insertErr error
}

func (f *flakyRepository) List(ctx context.Context, owner string) ([]*profileDatamodel.Profile, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.Collection.List(ctx, owner)
}

func (f *flakyRepository) Insert(ctx context.Context, row *profileDatamodel.Profile) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	return f.Collection.Insert(ctx, row)
}

var _ = Describe("Profile Service", func() {
	var (
		repo      *flakyRepository
		service   *profile.Service
		snapshots *store.Snapshots
		ctx       context.Context
	)

	BeforeEach(func() {
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)
		Expect(db.AutoMigrate(&profileDatamodel.Profile{})).To(Succeed())

		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		snapshots, err = store.NewSnapshots(internal.CacheConfig{Enabled: true}, lg)
		Expect(err).NotTo(HaveOccurred())

		repo = &flakyRepository{Collection: gormstore.NewKeyedByOwner[profileDatamodel.Profile](db)}
		service = profile.NewService(repo, snapshots, decimal.NewFromInt(5000), lg)
		ctx = context.Background()
	})

	AfterEach(func() {
		snapshots.Close()
	})

	Describe("GetProfile", func() {
		It("should create the profile with the default budget on first access", func() {
			p, stale := service.GetProfile(ctx, "owner-1")
			Expect(stale).To(BeFalse())
			Expect(p.ID).To(Equal("owner-1"))
			Expect(p.MonthlyBudget.Equal(decimal.NewFromInt(5000))).To(BeTrue())

			rows, err := repo.Collection.List(ctx, "owner-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
		})

		It("should return the stored profile on later calls", func() {
			Expect(repo.Collection.Insert(ctx, &profileDatamodel.Profile{
				ID: "owner-1", DisplayName: "Akanksha", MonthlyBudget: decimal.NewFromInt(8000), Points: 850,
			})).To(Succeed())

			p, stale := service.GetProfile(ctx, "owner-1")
			Expect(stale).To(BeFalse())
			Expect(p.DisplayName).To(Equal("Akanksha"))
			Expect(p.Points).To(Equal(850))
		})

		It("should hand back an unsaved default when the store is down", func() {
			repo.listErr = errors.New("connection refused")

			p, stale := service.GetProfile(ctx, "owner-1")
			Expect(stale).To(BeTrue())
			Expect(p.MonthlyBudget.Equal(decimal.NewFromInt(5000))).To(BeTrue())
		})

		It("should mark the default stale when it cannot be saved", func() {
			repo.insertErr = errors.New("read only")

			_, stale := service.GetProfile(ctx, "owner-1")
			Expect(stale).To(BeTrue())
		})
	})

	Describe("UpdateProfile", func() {
		It("should update only the fields that were sent", func() {
			name := "Akanksha"
			budget := decimal.NewFromInt(8000)

			p, err := service.UpdateProfile(ctx, "owner-1", profile.UpdateProfileDTO{DisplayName: &name})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.DisplayName).To(Equal("Akanksha"))
			Expect(p.MonthlyBudget.Equal(decimal.NewFromInt(5000))).To(BeTrue())

			p, err = service.UpdateProfile(ctx, "owner-1", profile.UpdateProfileDTO{MonthlyBudget: &budget})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.DisplayName).To(Equal("Akanksha"))
			Expect(p.MonthlyBudget.Equal(budget)).To(BeTrue())
		})

		It("should reject a negative budget", func() {
			budget := decimal.NewFromInt(-1)
			_, err := service.UpdateProfile(ctx, "owner-1", profile.UpdateProfileDTO{MonthlyBudget: &budget})
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		})

		It("should refuse as unavailable when the profile cannot be read", func() {
			repo.listErr = errors.New("connection refused")
			name := "x"
			_, err := service.UpdateProfile(ctx, "owner-1", profile.UpdateProfileDTO{DisplayName: &name})
			Expect(err).To(MatchError(internal.NewStoreReadError(nil)))
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(503))
		})
	})
})
