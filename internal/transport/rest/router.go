package rest

import (
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/auth"
	"github.com/frahmantamala/student-finance/internal/budget"
	"github.com/frahmantamala/student-finance/internal/dashboard"
	"github.com/frahmantamala/student-finance/internal/expense"
	"github.com/frahmantamala/student-finance/internal/feedback"
	"github.com/frahmantamala/student-finance/internal/gig"
	"github.com/frahmantamala/student-finance/internal/groupfund"
	"github.com/frahmantamala/student-finance/internal/insight"
	"github.com/frahmantamala/student-finance/internal/investment"
	"github.com/frahmantamala/student-finance/internal/loan"
	"github.com/frahmantamala/student-finance/internal/offer"
	"github.com/frahmantamala/student-finance/internal/payment"
	"github.com/frahmantamala/student-finance/internal/profile"
	"github.com/frahmantamala/student-finance/internal/splitbill"
	"github.com/frahmantamala/student-finance/internal/streak"
	"github.com/frahmantamala/student-finance/internal/subscription"
	"github.com/frahmantamala/student-finance/internal/transport/middleware"
	"github.com/frahmantamala/student-finance/internal/transport/swagger"
)

// Handlers holds one handler per screen. A nil handler leaves its routes
// unregistered.
type Handlers struct {
	Auth         *auth.Handler
	Health       *HealthHandler
	Profile      *profile.Handler
	Expense      *expense.Handler
	Budget       *budget.Handler
	GroupFund    *groupfund.Handler
	Loan         *loan.Handler
	Subscription *subscription.Handler
	Investment   *investment.Handler
	SplitBill    *splitbill.Handler
	Payment      *payment.Handler
	Gig          *gig.Handler
	Offer        *offer.Handler
	Streak       *streak.Handler
	Insight      *insight.Handler
	Dashboard    *dashboard.Handler
	Feedback     *feedback.Handler
}

func RegisterAllRoutes(router *chi.Mux, h Handlers, doc *openapi3.T, cfg internal.ServerConfig, logger *slog.Logger) {
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	if doc != nil {
		router.Get(swagger.SpecRoute, swagger.SpecHandler(doc))
		router.Handle("/swagger/*", swagger.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		if cfg.StoreTimeout > 0 {
			r.Use(chiMiddleware.Timeout(cfg.StoreTimeout))
		}

		if h.Health != nil {
			r.Get("/health", h.Health.healthCheckHandler)
			r.Get("/ping", h.Health.pingHandler)
		}

		// Catalog screens are the same for everyone.
		if h.Gig != nil {
			r.Get("/gigs", h.Gig.GetGigs)
		}
		if h.Offer != nil {
			r.Get("/offers", h.Offer.GetOffers)
		}

		if h.Auth == nil {
			return
		}

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			if h.Dashboard != nil {
				pr.Get("/dashboard", h.Dashboard.GetDashboard)
			}

			if h.Profile != nil {
				pr.Get("/profile", h.Profile.GetProfile)
				pr.Patch("/profile", h.Profile.UpdateProfile)
			}

			if h.Expense != nil {
				pr.Get("/expenses", h.Expense.GetExpenses)
				pr.Post("/expenses", h.Expense.CreateExpense)
			}

			if h.Budget != nil {
				pr.Route("/budget", func(br chi.Router) {
					br.Get("/", h.Budget.GetOverview)
					br.Get("/categories", h.Budget.GetCategories)
					br.Patch("/categories/{id}", h.Budget.UpdateCategory)
				})
			}

			if h.GroupFund != nil {
				pr.Route("/group-funds", func(gr chi.Router) {
					gr.Get("/", h.GroupFund.GetFunds)
					gr.Post("/", h.GroupFund.CreateFund)
					gr.Post("/{id}/contributions", h.GroupFund.Contribute)
				})
			}

			if h.Loan != nil {
				pr.Route("/loans", func(lr chi.Router) {
					lr.Get("/", h.Loan.GetLoans)
					lr.Post("/", h.Loan.CreateLoan)
					lr.Patch("/{id}/status", h.Loan.UpdateStatus)
				})
			}

			if h.Subscription != nil {
				pr.Route("/subscriptions", func(sr chi.Router) {
					sr.Get("/", h.Subscription.GetSubscriptions)
					sr.Post("/", h.Subscription.CreateSubscription)
					sr.Patch("/{id}", h.Subscription.UpdateSubscription)
				})
			}

			if h.Investment != nil {
				pr.Get("/investments", h.Investment.GetPortfolio)
				pr.Post("/investments", h.Investment.CreateInvestment)
			}

			if h.SplitBill != nil {
				pr.Route("/split-bills", func(sr chi.Router) {
					sr.Get("/", h.SplitBill.GetBills)
					sr.Post("/", h.SplitBill.CreateBill)
					sr.Patch("/{id}/settle", h.SplitBill.Settle)
				})
			}

			if h.Payment != nil {
				pr.Route("/payments", func(pmr chi.Router) {
					pmr.Get("/", h.Payment.GetPayments)
					pmr.Post("/contacts", h.Payment.CreateContact)
					pmr.Post("/send", h.Payment.SendMoney)
				})
			}

			if h.Streak != nil {
				pr.Get("/streaks", h.Streak.GetStreaks)
			}

			if h.Insight != nil {
				pr.Get("/insights", h.Insight.GetInsights)
			}

			if h.Feedback != nil {
				pr.Post("/feedback", h.Feedback.Submit)
			}
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"NOT_FOUND","code":"ROUTE_NOT_FOUND","message":"route not found"}}`))
	})
}
