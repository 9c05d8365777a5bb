package subscription_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal"
	subscriptionDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/subscription"
	"github.com/frahmantamala/student-finance/internal/store"
	"github.com/frahmantamala/student-finance/internal/subscription"
)

// MockRepository implements subscription.RepositoryAPI for testing
type MockRepository struct {
	rows      []*subscriptionDatamodel.Subscription
	listErr   error
	insertErr error
}

func (m *MockRepository) List(_ context.Context, owner string) ([]*subscriptionDatamodel.Subscription, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*subscriptionDatamodel.Subscription, 0)
	for _, r := range m.rows {
		if r.OwnerID == owner {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockRepository) Insert(_ context.Context, row *subscriptionDatamodel.Subscription) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	row.ID = row.Name
	m.rows = append(m.rows, row)
	return nil
}

func (m *MockRepository) Update(_ context.Context, owner, id string, apply func(*subscriptionDatamodel.Subscription) error) (*subscriptionDatamodel.Subscription, error) {
	for _, r := range m.rows {
		if r.ID == id && r.OwnerID == owner {
			if err := apply(r); err != nil {
				return nil, err
			}
			return r, nil
		}
	}
	return nil, internal.ErrRecordNotFound
}

var _ = Describe("Subscription Service", func() {
	var (
		repo      *MockRepository
		service   *subscription.Service
		snapshots *store.Snapshots
		ctx       context.Context
	)

	BeforeEach(func() {
		var err error
		lg := slog.New(slog.NewTextHandler(io.Discard, nil))
		snapshots, err = store.NewSnapshots(internal.CacheConfig{Enabled: true}, lg)
		Expect(err).NotTo(HaveOccurred())
		repo = &MockRepository{}
		service = subscription.NewService(repo, snapshots, lg)
		service.Now = func() time.Time { return on(10) }
		ctx = context.Background()
	})

	AfterEach(func() {
		snapshots.Close()
	})

	It("should create an active subscription with defaults", func() {
		line, err := service.CreateSubscription(ctx, "owner-1", subscription.CreateSubscriptionDTO{
			Name: "Spotify", Amount: decimal.NewFromInt(119), NextBilling: "2025-01-15", Autopay: true,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(line.Status).To(Equal(subscription.StatusActive))
		Expect(line.BillingCycle).To(Equal(subscription.CycleMonthly))
		Expect(line.Category).To(Equal(subscription.CategoryOther))
		Expect(line.DaysUntilBilling).To(Equal(5))

		view := service.GetSubscriptions(ctx, "owner-1")
		Expect(view.ActiveCount).To(Equal(1))
		Expect(view.MonthlySpend.Equal(decimal.NewFromInt(119))).To(BeTrue())
	})

	DescribeTable("should validate new subscriptions",
		func(dto subscription.CreateSubscriptionDTO) {
			_, err := service.CreateSubscription(ctx, "owner-1", dto)
			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.StatusCode).To(Equal(400))
		},
		Entry("missing name", subscription.CreateSubscriptionDTO{Amount: decimal.NewFromInt(1), NextBilling: "2025-01-15"}),
		Entry("weekly cycle", subscription.CreateSubscriptionDTO{Name: "x", Amount: decimal.NewFromInt(1), BillingCycle: "weekly", NextBilling: "2025-01-15"}),
		Entry("unknown category", subscription.CreateSubscriptionDTO{Name: "x", Amount: decimal.NewFromInt(1), Category: "food", NextBilling: "2025-01-15"}),
		Entry("bad date", subscription.CreateSubscriptionDTO{Name: "x", Amount: decimal.NewFromInt(1), NextBilling: "tomorrow"}),
	)

	Describe("UpdateSubscription", func() {
		BeforeEach(func() {
			_, err := service.CreateSubscription(ctx, "owner-1", subscription.CreateSubscriptionDTO{
				Name: "Netflix", Amount: decimal.NewFromInt(199), NextBilling: "2025-01-28",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should pause a subscription and drop it from the monthly spend", func() {
			paused := "paused"
			line, err := service.UpdateSubscription(ctx, "owner-1", "Netflix", subscription.UpdateSubscriptionDTO{Status: &paused})
			Expect(err).NotTo(HaveOccurred())
			Expect(line.Status).To(Equal(subscription.StatusPaused))

			view := service.GetSubscriptions(ctx, "owner-1")
			Expect(view.MonthlySpend.IsZero()).To(BeTrue())
			Expect(view.Upcoming).To(BeEmpty())
		})

		It("should toggle autopay", func() {
			enabled := true
			line, err := service.UpdateSubscription(ctx, "owner-1", "Netflix", subscription.UpdateSubscriptionDTO{Autopay: &enabled})
			Expect(err).NotTo(HaveOccurred())
			Expect(line.Autopay).To(BeTrue())
		})

		It("should reject an empty update", func() {
			_, err := service.UpdateSubscription(ctx, "owner-1", "Netflix", subscription.UpdateSubscriptionDTO{})
			Expect(err).To(MatchError(subscription.ErrNothingToUpdate))
		})

		It("should return not found for another owner", func() {
			paused := "paused"
			_, err := service.UpdateSubscription(ctx, "owner-2", "Netflix", subscription.UpdateSubscriptionDTO{Status: &paused})
			Expect(errors.Is(err, internal.ErrRecordNotFound)).To(BeTrue())
		})
	})

	It("should serve the last snapshot when the store fails", func() {
		_, err := service.CreateSubscription(ctx, "owner-1", subscription.CreateSubscriptionDTO{
			Name: "Netflix", Amount: decimal.NewFromInt(199), NextBilling: "2025-01-28",
		})
		Expect(err).NotTo(HaveOccurred())
		service.GetSubscriptions(ctx, "owner-1")

		repo.listErr = errors.New("timeout")
		view := service.GetSubscriptions(ctx, "owner-1")
		Expect(view.Stale).To(BeTrue())
		Expect(view.Subscriptions).To(HaveLen(1))
	})
})
