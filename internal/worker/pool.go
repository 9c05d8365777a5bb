// Package worker runs background jobs on a bounded pool of goroutines fed by a
// dispatcher.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

var ErrQueueFull = errors.New("job queue full, please try again later")

type Job struct {
	ID  string
	Run func(ctx context.Context) error
}

type Worker struct {
	ID         int
	WorkerPool chan chan Job
	JobChannel chan Job
	Logger     *slog.Logger
}

func NewWorker(id int, workerPool chan chan Job, logger *slog.Logger) *Worker {
	return &Worker{
		ID:         id,
		WorkerPool: workerPool,
		JobChannel: make(chan Job),
		Logger:     logger,
	}
}

func (w *Worker) Start(ctx context.Context, wg *sync.WaitGroup, processFunc func(Job)) {
	wg.Add(1)
	go func() {
		defer wg.Done()

		for {
			select {
			case w.WorkerPool <- w.JobChannel:
			case <-ctx.Done():
				w.Logger.Debug("worker shutting down", "worker_id", w.ID)
				return
			}

			select {
			case job := <-w.JobChannel:
				w.Logger.Debug("worker processing job", "worker_id", w.ID, "job_id", job.ID)
				processFunc(job)
			case <-ctx.Done():
				w.Logger.Debug("worker shutting down", "worker_id", w.ID)
				return
			}
		}
	}()
}

type Config struct {
	Name         string
	MaxWorkers   int
	JobQueueSize int
}

type Pool struct {
	name   string
	logger *slog.Logger

	jobQueue   chan Job
	workerPool chan chan Job
	maxWorkers int
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	pending    sync.WaitGroup
	once       sync.Once
}

func NewPool(config Config, logger *slog.Logger) *Pool {
	ctx, cancel := context.WithCancel(context.Background())

	maxWorkers := config.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 4
	}

	jobQueueSize := config.JobQueueSize
	if jobQueueSize <= 0 {
		jobQueueSize = 100
	}

	name := config.Name
	if name == "" {
		name = "default"
	}

	pool := &Pool{
		name:       name,
		logger:     logger,
		maxWorkers: maxWorkers,
		jobQueue:   make(chan Job, jobQueueSize),
		workerPool: make(chan chan Job, maxWorkers),
		ctx:        ctx,
		cancel:     cancel,
	}

	pool.start()

	return pool
}

func (p *Pool) start() {
	p.once.Do(func() {
		for i := 0; i < p.maxWorkers; i++ {
			worker := NewWorker(i, p.workerPool, p.logger)
			worker.Start(p.ctx, &p.wg, p.process)
		}

		p.wg.Add(1)
		go p.dispatch()

		p.logger.Info("worker pool started",
			"pool", p.name,
			"max_workers", p.maxWorkers,
			"queue_size", cap(p.jobQueue))
	})
}

func (p *Pool) dispatch() {
	defer p.wg.Done()

	for {
		select {
		case job := <-p.jobQueue:
			select {
			case jobChannel := <-p.workerPool:
				select {
				case jobChannel <- job:
				case <-p.ctx.Done():
					p.logger.Info("dispatcher shutting down", "pool", p.name)
					return
				}
			case <-p.ctx.Done():
				p.logger.Info("dispatcher shutting down", "pool", p.name)
				return
			}
		case <-p.ctx.Done():
			p.logger.Info("dispatcher shutting down", "pool", p.name)
			return
		}
	}
}

func (p *Pool) process(job Job) {
	defer p.pending.Done()

	if err := job.Run(p.ctx); err != nil {
		p.logger.Error("job failed", "pool", p.name, "job_id", job.ID, "error", err)
		return
	}
	p.logger.Debug("job completed", "pool", p.name, "job_id", job.ID)
}

// Submit queues a job without blocking; a full queue rejects it.
func (p *Pool) Submit(job Job) error {
	p.pending.Add(1)
	select {
	case p.jobQueue <- job:
		return nil
	default:
		p.pending.Done()
		p.logger.Warn("job queue full, rejecting job",
			"pool", p.name,
			"job_id", job.ID,
			"queue_capacity", cap(p.jobQueue))
		return ErrQueueFull
	}
}

// Wait blocks until every submitted job has run. Call it before Shutdown.
func (p *Pool) Wait() {
	p.pending.Wait()
}

func (p *Pool) Shutdown() {
	p.logger.Info("shutting down worker pool", "pool", p.name)
	p.cancel()
	p.wg.Wait()
	p.logger.Info("worker pool shutdown complete", "pool", p.name)
}
