package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	loanDatamodel "github.com/frahmantamala/student-finance/internal/core/datamodel/loan"
	"github.com/frahmantamala/student-finance/internal/loan"
	"github.com/frahmantamala/student-finance/internal/store/gormstore"
	"github.com/frahmantamala/student-finance/internal/worker"
	"github.com/frahmantamala/student-finance/pkg/logger"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start background workers",
	Long:  `Start background workers that keep stored records up to date.`,
}

var loanWorkerCmd = &cobra.Command{
	Use:   "loans",
	Short: "Start the overdue loan sweeper",
	Long:  `Periodically mark active loans whose due date has passed as overdue.`,
	Run: func(cmd *cobra.Command, args []string) {
		startLoanWorker()
	},
}

var (
	maxWorkers    int
	jobQueueSize  int
	sweepInterval time.Duration
	sweepOnce     bool
)

func startLoanWorker() {
	config, err := loadConfig(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	lg := logger.LoggerWrapper()

	db, sqlxDB, err := initDB(config.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize database: %v\n", err)
		os.Exit(1)
	}
	defer sqlxDB.Close()

	bus, broker, err := initEvents(config.Messaging, lg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize events: %v\n", err)
		os.Exit(1)
	}
	if broker != nil {
		defer broker.Close()
	}

	poolConfig := worker.Config{
		Name:         "loan-sweeper",
		MaxWorkers:   getIntFlag(maxWorkers, config.Worker.MaxWorkers),
		JobQueueSize: getIntFlag(jobQueueSize, config.Worker.JobQueueSize),
	}
	interval := sweepInterval
	if interval <= 0 {
		interval = config.Worker.SweepInterval
	}

	lg.Info("starting loan worker",
		"max_workers", poolConfig.MaxWorkers,
		"job_queue_size", poolConfig.JobQueueSize,
		"interval", interval.String())

	pool := worker.NewPool(poolConfig, lg)
	defer pool.Shutdown()

	sweeper := loan.NewSweeper(gormstore.NewOwned[loanDatamodel.Loan](db, "due_date ASC"), pool, bus, lg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if sweepOnce {
		n, err := sweeper.Sweep(ctx)
		if err != nil {
			lg.Error("overdue loan sweep failed", "error", err)
		} else {
			lg.Info("overdue loan sweep finished", "marked", n)
		}
		bus.Drain()
		return
	}

	lg.Info("loan worker is running. Press Ctrl+C to stop.")
	sweeper.Run(ctx, interval)

	lg.Info("shutting down loan worker")
	bus.Drain()
}

func getIntFlag(flagValue, configValue int) int {
	if flagValue > 0 {
		return flagValue
	}
	return configValue
}

func init() {
	loanWorkerCmd.Flags().IntVar(&maxWorkers, "max-workers", 0, "Maximum number of workers (overrides config)")
	loanWorkerCmd.Flags().IntVar(&jobQueueSize, "job-queue-size", 0, "Job queue buffer size (overrides config)")
	loanWorkerCmd.Flags().DurationVar(&sweepInterval, "interval", 0, "Time between sweeps (overrides config)")
	loanWorkerCmd.Flags().BoolVar(&sweepOnce, "once", false, "Run a single sweep and exit")

	workerCmd.AddCommand(loanWorkerCmd)

	rootCmd.AddCommand(workerCmd)
}
