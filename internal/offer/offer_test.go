package offer_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/student-finance/internal"
	offerDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/offer"
	"github.com/frahmantamala/student-finance/internal/offer"
	"github.com/frahmantamala/student-finance/internal/store"
	"github.com/frahmantamala/student-finance/internal/transport"
)

type catalog struct {
	rows []*offerDatamodel.Offer
}

func (c *catalog) List(_ context.Context, _ string) ([]*offerDatamodel.Offer, error) {
	return c.rows, nil
}

func until(day int) time.Time { return time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC) }

func row(id, brand, category string, validUntil time.Time) *offerDatamodel.Offer {
	dm := &offerDatamodel.Offer{Brand: brand, Title: brand + " deal", Discount: "20% OFF", Category: category, ValidUntil: validUntil}
	dm.ID = id
	return dm
}

var _ = Describe("Offers", func() {
	today := time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)

	Describe("BuildOfferLine", func() {
		DescribeTable("days left and expiry",
			func(validUntil time.Time, days int, expired, soon bool) {
				line := offer.BuildOfferLine(&offer.Offer{ValidUntil: validUntil}, today)
				Expect(line.DaysLeft).To(Equal(days))
				Expect(line.Expired).To(Equal(expired))
				Expect(line.ExpiringSoon).To(Equal(soon))
			},
			Entry("weeks away", until(31), 21, false, false),
			Entry("in three days", until(13), 3, false, true),
			Entry("tomorrow", until(11), 1, false, true),
			Entry("today", until(10), 0, true, false),
			Entry("last week", until(3), -7, true, false),
		)
	})

	Describe("handler", func() {
		var (
			handler   *offer.Handler
			snapshots *store.Snapshots
		)

		BeforeEach(func() {
			lg := slog.New(slog.NewTextHandler(io.Discard, nil))
			var err error
			snapshots, err = store.NewSnapshots(internal.CacheConfig{Enabled: true}, lg)
			Expect(err).NotTo(HaveOccurred())

			svc := offer.NewService(&catalog{rows: []*offerDatamodel.Offer{
				row("1", "Zomato", "food", until(31)),
				row("2", "Swiggy", "food", until(15)),
				row("3", "Amazon", "shopping", until(25)),
				row("4", "BookMyShow", "entertainment", until(9)),
			}}, snapshots, lg)
			svc.Now = func() time.Time { return today }
			handler = offer.NewHandler(&transport.BaseHandler{Logger: lg}, svc)
		})

		AfterEach(func() {
			snapshots.Close()
		})

		get := func(target string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			handler.GetOffers(w, httptest.NewRequest(http.MethodGet, target, nil))
			return w
		}

		It("should filter by category and keep counts for all of them", func() {
			w := get("/offers?category=food")
			Expect(w.Code).To(Equal(http.StatusOK))

			var view offer.OffersView
			Expect(json.Unmarshal(w.Body.Bytes(), &view)).To(Succeed())
			Expect(view.Offers).To(HaveLen(2))
			Expect(view.CountByCategory).To(Equal(map[string]int{"food": 2, "shopping": 1, "entertainment": 1, "travel": 0}))
		})

		It("should flag expired offers", func() {
			var view offer.OffersView
			Expect(json.Unmarshal(get("/offers").Body.Bytes(), &view)).To(Succeed())
			Expect(view.Category).To(Equal("all"))
			Expect(view.Offers).To(HaveLen(4))
			Expect(view.Offers[3].Expired).To(BeTrue())
		})

		It("should reject an unknown category", func() {
			Expect(get("/offers?category=groceries").Code).To(Equal(http.StatusBadRequest))
		})
	})
})
