package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/frahmantamala/student-finance/internal"
	"github.com/frahmantamala/student-finance/internal/auth"
	"github.com/frahmantamala/student-finance/internal/budget"
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
	"github.com/frahmantamala/student-finance/internal/store"
	"github.com/frahmantamala/student-finance/internal/store/gormstore"
	"github.com/frahmantamala/student-finance/internal/streak"
	"github.com/frahmantamala/student-finance/internal/subscription"
	"github.com/frahmantamala/student-finance/internal/transport"
	"github.com/frahmantamala/student-finance/internal/transport/rest"
	"github.com/frahmantamala/student-finance/internal/transport/swagger"
	"github.com/frahmantamala/student-finance/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config    *internal.Config
	DB        *gorm.DB
	SQLX      *sqlx.DB
	Router    *chi.Mux
	Snapshots *store.Snapshots
	Events    *events.EventBus
	Broker    events.Broker
	Logger    *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up routes: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("Starting HTTP server", "address", addr, "driver", deps.Config.Database.Driver)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			deps.Logger.Error("Server failed to start", "error", err)
			deps.close()
			os.Exit(1)
		}
	}

	deps.close()
	deps.Logger.Info("Server stopped")
}

func (d *Dependencies) close() {
	d.Events.Drain()
	if d.Broker != nil {
		if err := d.Broker.Close(); err != nil {
			d.Logger.Error("Broker close error", "error", err)
		}
	}
	d.Snapshots.Close()
	if err := d.SQLX.Close(); err != nil {
		d.Logger.Error("Database close error", "error", err)
	}
}

func setupRoutes(deps *Dependencies) error {
	cfg := deps.Config
	lg := deps.Logger
	db := deps.DB
	snaps := deps.Snapshots
	bus := deps.Events

	defaultBudget, err := cfg.Defaults.Budget()
	if err != nil {
		return err
	}

	profileService := profile.NewService(gormstore.NewKeyedByOwner[profileDatamodel.Profile](db), snaps, defaultBudget, lg)
	expenseService := expense.NewService(gormstore.NewOwned[expenseDatamodel.Expense](db, "date DESC"), snaps, bus, lg)
	budgetService := budget.NewService(gormstore.NewOwned[budgetDatamodel.BudgetCategory](db, "created_at ASC"), snaps, profileService, expenseService, bus, lg)
	fundService := groupfund.NewService(gormstore.NewOwned[groupfundDatamodel.GroupFund](db, "deadline ASC"), snaps, bus, lg)
	loanService := loan.NewService(gormstore.NewOwned[loanDatamodel.Loan](db, "due_date ASC"), snaps, profileService, lg)
	subscriptionService := subscription.NewService(gormstore.NewOwned[subscriptionDatamodel.Subscription](db, "next_billing ASC"), snaps, lg)
	investmentService := investment.NewService(gormstore.NewOwned[investmentDatamodel.Investment](db, "created_at ASC"), snaps, lg)
	splitbillService := splitbill.NewService(gormstore.NewOwned[splitbillDatamodel.SplitBill](db, "date DESC"), snaps, lg)
	paymentService := payment.NewService(
		gormstore.NewOwned[paymentDatamodel.Contact](db, "name ASC"),
		gormstore.NewOwned[paymentDatamodel.Transaction](db, "date DESC"),
		snaps, profileService, bus, lg,
	)
	gigService := gig.NewService(gormstore.NewCatalog[gigDatamodel.Gig](db, "title ASC"), snaps, lg)
	offerService := offer.NewService(gormstore.NewCatalog[offerDatamodel.Offer](db, "valid_until ASC"), snaps, lg)
	streakService := streak.NewService(profileService, investmentService, fundService, loanService, streak.NewLeaderboard(deps.SQLX), lg)
	insightService := insight.NewService(profileService, expenseService, investmentService, lg)
	dashboardService := dashboard.NewService(profileService, expenseService, investmentService, fundService, lg)
	feedbackService := feedback.NewService(gormstore.NewOwned[feedbackDatamodel.Feedback](db, "created_at DESC"), lg)

	base := transport.NewBaseHandler(lg)

	handlers := rest.Handlers{
		Auth:         auth.NewHandler(base, auth.NewJWTVerifier(cfg.Security)),
		Health:       rest.NewHealthHandler(deps.SQLX, cfg.Database.Driver),
		Profile:      profile.NewHandler(base, profileService),
		Expense:      expense.NewHandler(base, expenseService),
		Budget:       budget.NewHandler(base, budgetService),
		GroupFund:    groupfund.NewHandler(base, fundService),
		Loan:         loan.NewHandler(base, loanService),
		Subscription: subscription.NewHandler(base, subscriptionService),
		Investment:   investment.NewHandler(base, investmentService),
		SplitBill:    splitbill.NewHandler(base, splitbillService),
		Payment:      payment.NewHandler(base, paymentService),
		Gig:          gig.NewHandler(base, gigService),
		Offer:        offer.NewHandler(base, offerService),
		Streak:       streak.NewHandler(base, streakService),
		Insight:      insight.NewHandler(base, insightService),
		Dashboard:    dashboard.NewHandler(base, dashboardService),
		Feedback:     feedback.NewHandler(base, feedbackService),
	}

	doc, err := swagger.Load(context.Background(), cfg.Server.OpenAPIPath)
	if err != nil {
		// the API still serves without its contract document
		lg.Warn("openapi document not loaded", "path", cfg.Server.OpenAPIPath, "error", err)
		doc = nil
	}

	rest.RegisterAllRoutes(deps.Router, handlers, doc, cfg.Server, lg)
	return nil
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	lg := logger.LoggerWrapper()

	db, sqlxDB, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	snaps, err := store.NewSnapshots(config.Cache, lg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot cache: %w", err)
	}

	bus, broker, err := initEvents(config.Messaging, lg)
	if err != nil {
		return nil, err
	}

	return &Dependencies{
		Config:    config,
		DB:        db,
		SQLX:      sqlxDB,
		Router:    chi.NewRouter(),
		Snapshots: snaps,
		Events:    bus,
		Broker:    broker,
		Logger:    lg,
	}, nil
}

// initEvents builds the in-process bus and, when messaging is enabled, relays
// every event to the AMQP exchange.
func initEvents(cfg internal.MessagingConfig, lg *slog.Logger) (*events.EventBus, events.Broker, error) {
	bus := events.NewEventBus(lg)
	events.LogEvents(bus, lg)

	if !cfg.Enabled {
		return bus, nil, nil
	}

	broker, err := events.NewAMQPBroker(cfg.AMQPURL, cfg.Exchange)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to message broker: %w", err)
	}
	events.RelayTo(bus, broker, lg)
	lg.Info("relaying domain events", "exchange", cfg.Exchange)
	return bus, broker, nil
}
