package budget_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/budget"
	budgetDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/budget"
	"github.com/frahmantamala/student-finance/internal/core/events"
	"github.com/frahmantamala/student-finance/internal/store"
	"github.com/frahmantamala/student-finance/internal/store/gormstore"
	"github.com/frahmantamala/student-finance/internal/transport"
)

var _ = Describe("Budget Handler Integration", func() {
	var (
		router    chi.Router
		snapshots *store.Snapshots
	)

	BeforeEach(func() {
		slogger := slog.New(slog.NewTextHandler(io.Discard, nil))

		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		sqlDB.SetMaxOpenConns(1)
		Expect(db.AutoMigrate(&budgetDatamodel.BudgetCategory{})).To(Succeed())

		snapshots, err = store.NewSnapshots(internal.CacheConfig{}, slogger)
		Expect(err).NotTo(HaveOccurred())

		repo := gormstore.NewOwned[budgetDatamodel.BudgetCategory](db, "created_at ASC")
		service := budget.NewService(repo, snapshots, stubProfiles{budget: decimal.NewFromInt(8000)}, stubExpenses{}, events.NewEventBus(slogger), slogger)
		handler := budget.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		router = chi.NewRouter()
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(internal.ContextWithOwnerID(r.Context(), "owner-1")))
			})
		})
		router.Get("/budget", handler.GetOverview)
		router.Get("/budget/categories", handler.GetCategories)
		router.Patch("/budget/categories/{id}", handler.UpdateCategory)
	})

	AfterEach(func() {
		snapshots.Close()
	})

	getCategories := func() budget.CategoriesView {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/budget/categories", nil))
		Expect(w.Code).To(Equal(http.StatusOK))

		var view budget.CategoriesView
		Expect(json.NewDecoder(w.Body).Decode(&view)).To(Succeed())
		return view
	}

	It("should handle GET /budget/categories by creating defaults", func() {
		view := getCategories()
		Expect(view.Categories).To(HaveLen(6))
		Expect(view.Categories[0].ID).NotTo(BeEmpty())
	})

	It("should handle PATCH /budget/categories/{id}", func() {
		id := getCategories().Categories[0].ID

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/budget/categories/"+id, strings.NewReader(`{"spent": "2500"}`))
		router.ServeHTTP(w, req)
		Expect(w.Code).To(Equal(http.StatusOK))

		var line budget.CategoryLine
		Expect(json.NewDecoder(w.Body).Decode(&line)).To(Succeed())
		Expect(line.OverBudget).To(BeTrue())
		Expect(line.Overage.Equal(decimal.NewFromInt(500))).To(BeTrue())

		Expect(getCategories().OverBudgetCount).To(Equal(1))
	})

	It("should return 404 for an unknown category", func() {
		getCategories()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/budget/categories/nope", strings.NewReader(`{"spent": 1}`)))
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("should return 400 for unknown fields", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/budget/categories/x", strings.NewReader(`{"name": "Rent"}`)))
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("should handle GET /budget with an empty expense list", func() {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/budget?category=food", nil))
		Expect(w.Code).To(Equal(http.StatusOK))

		var view budget.Overview
		Expect(json.NewDecoder(w.Body).Decode(&view)).To(Succeed())
		Expect(view.Filter).To(Equal("food"))
		Expect(view.Remaining.Equal(decimal.NewFromInt(8000))).To(BeTrue())
	})
})
