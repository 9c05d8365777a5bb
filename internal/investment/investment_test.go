package investment_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/frahmantamala/student-finance/internal"
	investmentDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/investment"
	"github.com/frahmantamala/student-finance/internal/investment"
	"github.com/frahmantamala/student-finance/internal/store"
	"github.com/frahmantamala/student-finance/internal/transport"
)

// MockRepository implements investment.RepositoryAPI for testing
type MockRepository struct {
	rows      []*investmentDatamodel.Investment
	insertErr error
}

func (m *MockRepository) List(_ context.Context, owner string) ([]*investmentDatamodel.Investment, error) {
	out := make([]*investmentDatamodel.Investment, 0)
	for _, r := range m.rows {
		if r.OwnerID == owner {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockRepository) Insert(_ context.Context, row *investmentDatamodel.Investment) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	row.ID = row.Symbol
	m.rows = append(m.rows, row)
	return nil
}

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func holding(t investment.Type, symbol, amount, current string) *investment.Investment {
	return &investment.Investment{ID: symbol, Type: t, Symbol: symbol, Amount: d(amount), CurrentValue: d(current)}
}

var _ = Describe("Investments", func() {
	Describe("BuildPortfolioView", func() {
		It("should total gains across holdings", func() {
			view := investment.BuildPortfolioView([]*investment.Investment{
				holding(investment.TypeGold, "GOLD", "5000", "5250"),
				holding(investment.TypeStocks, "TCS", "3000", "3180"),
				holding(investment.TypeMutualFund, "HDFC_EQ", "2000", "1950"),
			})
			Expect(view.TotalInvested.Equal(d("10000"))).To(BeTrue())
			Expect(view.TotalCurrentValue.Equal(d("10380"))).To(BeTrue())
			Expect(view.GainLoss.Equal(d("380"))).To(BeTrue())
			Expect(view.GainLossPercent).To(BeNumerically("~", 3.8, 1e-9))

			Expect(view.Holdings[0].Change.Equal(d("250"))).To(BeTrue())
			Expect(view.Holdings[0].ChangePercent).To(BeNumerically("~", 5.0, 1e-9))
			Expect(view.Holdings[2].Change.Equal(d("-50"))).To(BeTrue())
			Expect(view.Holdings[2].ChangePercent).To(BeNumerically("~", -2.5, 1e-9))
		})

		It("should report zero gain percent for an empty portfolio", func() {
			view := investment.BuildPortfolioView(nil)
			Expect(view.GainLossPercent).To(Equal(0.0))
			Expect(view.Holdings).To(BeEmpty())
		})
	})

	Describe("Handler", func() {
		var (
			repo      *MockRepository
			handler   *investment.Handler
			snapshots *store.Snapshots
		)

		BeforeEach(func() {
			var err error
			lg := slog.New(slog.NewTextHandler(io.Discard, nil))
			snapshots, err = store.NewSnapshots(internal.CacheConfig{}, lg)
			Expect(err).NotTo(HaveOccurred())
			repo = &MockRepository{}
			handler = investment.NewHandler(&transport.BaseHandler{Logger: lg}, investment.NewService(repo, snapshots, lg))
		})

		AfterEach(func() {
			snapshots.Close()
		})

		post := func(body string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodPost, "/investments", strings.NewReader(body))
			req = req.WithContext(internal.ContextWithOwnerID(req.Context(), "owner-1"))
			w := httptest.NewRecorder()
			handler.CreateInvestment(w, req)
			return w
		}

		It("should handle POST /investments and default the current value", func() {
			w := post(`{"type": "crypto", "symbol": "btc", "amount": "1500"}`)
			Expect(w.Code).To(Equal(http.StatusCreated))

			var h investment.Holding
			Expect(json.NewDecoder(w.Body).Decode(&h)).To(Succeed())
			Expect(h.Symbol).To(Equal("BTC"))
			Expect(h.CurrentValue.Equal(d("1500"))).To(BeTrue())
			Expect(h.Change.IsZero()).To(BeTrue())
		})

		It("should reject an unknown type", func() {
			w := post(`{"type": "nft", "symbol": "APE", "amount": "10"}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("should answer 500 with a generic message when the write fails", func() {
			repo.insertErr = errors.New("connection reset by peer")
			w := post(`{"type": "gold", "symbol": "GOLD", "amount": "10"}`)
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("connection reset"))
		})

		It("should handle GET /investments", func() {
			post(`{"type": "gold", "symbol": "GOLD", "amount": "5000", "current_value": "5250"}`)

			req := httptest.NewRequest(http.MethodGet, "/investments", nil)
			req = req.WithContext(internal.ContextWithOwnerID(req.Context(), "owner-1"))
			w := httptest.NewRecorder()
			handler.GetPortfolio(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var view investment.PortfolioView
			Expect(json.NewDecoder(w.Body).Decode(&view)).To(Succeed())
			Expect(view.GainLoss.Equal(d("250"))).To(BeTrue())
		})
	})
})
