// Package worker implements the buffered worker pool that runs scrape jobs
// asynchronously. This decouples the scrape endpoint from the actual fetch
// and store writes: the handler enqueues a job id and returns immediately,
// workers resolve the scraped fixtures into store entities.
package worker

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/cricsight/prediction-api/internal/logic"
	"github.com/cricsight/prediction-api/internal/models"
	"github.com/cricsight/prediction-api/internal/store"
)

// Prometheus metrics
var (
	jobsEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricsight_scrape_jobs_enqueued_total",
		Help: "Total number of scrape jobs enqueued",
	})

	jobsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricsight_scrape_jobs_processed_total",
		Help: "Total number of scrape jobs completed",
	})

	jobsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricsight_scrape_jobs_failed_total",
		Help: "Total number of scrape jobs that failed",
	})

	jobsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricsight_scrape_jobs_dropped_total",
		Help: "Total number of scrape jobs dropped because the queue was full",
	})

	matchesIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cricsight_scrape_matches_ingested_total",
		Help: "Total number of matches created from scraped fixtures",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cricsight_scrape_queue_depth",
		Help: "Current depth of the scrape job queue",
	})

	jobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cricsight_scrape_job_duration_seconds",
		Help:    "Duration of scrape job processing",
		Buckets: prometheus.DefBuckets,
	})
)

// Job is one queued scrape run
type Job struct {
	ID         string
	EnqueuedAt time.Time
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount int
	QueueSize   int
	Store       *store.Store
	Scraper     logic.ScraperService
	Logger      *zap.Logger
}

// Pool manages the scrape workers
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
	)
}

// Stop gracefully shuts down the pool. Queued jobs are drained before
// workers exit.
func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool...")
	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()
	p.logger.Info("Worker pool stopped")
}

// Enqueue adds a scrape job to the queue. Returns false when the queue is
// full or the pool is shutting down.
func (p *Pool) Enqueue(jobID string) (ok bool) {
	// Protect against sending on closed channel during shutdown
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue job (pool stopped)", "jobId", jobID)
			ok = false
		}
	}()

	select {
	case p.jobQueue <- Job{ID: jobID, EnqueuedAt: time.Now()}:
		jobsEnqueued.Inc()
		return true
	default:
		jobsDropped.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for job := range p.jobQueue {
		start := time.Now()
		err := p.runJob(p.ctx, job)
		jobDuration.Observe(time.Since(start).Seconds())

		if err != nil {
			jobsFailed.Inc()
			p.logger.Errorw("Scrape job failed", "worker", id, "jobId", job.ID, "error", err)
			continue
		}
		jobsProcessed.Inc()
		p.logger.Infow("Scrape job completed", "worker", id, "jobId", job.ID, "duration", time.Since(start))
	}
}

// runJob pulls the latest schedule and player stats and folds them into the
// store. New fixtures become matches; fixtures whose teams are unknown or
// that already exist are skipped.
func (p *Pool) runJob(ctx context.Context, job Job) error {
	fixtures, err := p.config.Scraper.ScrapeSchedule(ctx)
	if err != nil {
		return fmt.Errorf("scrape schedule: %w", err)
	}

	created := 0
	for _, f := range fixtures {
		if p.ingestFixture(job.ID, f) {
			created++
		}
	}

	stats, err := p.config.Scraper.ScrapePlayerStats(ctx)
	if err != nil {
		return fmt.Errorf("scrape player stats: %w", err)
	}
	for _, line := range stats {
		if _, err := p.config.Store.GetTeamByName(line.Team); err != nil {
			p.logger.Debugw("Stat line for unknown team", "jobId", job.ID, "player", line.Name, "team", line.Team)
			continue
		}
		p.logger.Infow("Scraped player stats",
			"jobId", job.ID,
			"player", line.Name,
			"runs", line.Runs,
			"strikeRate", line.StrikeRate,
			"wickets", line.Wickets,
		)
	}

	p.logger.Infow("Scrape ingest summary", "jobId", job.ID, "fixtures", len(fixtures), "created", created)
	return nil
}

// ingestFixture resolves one scraped fixture into a match. Reports whether
// a match was created.
func (p *Pool) ingestFixture(jobID string, f models.ScrapedMatch) bool {
	team1, err := p.config.Store.GetTeamByName(f.Team1)
	if err != nil {
		p.logger.Warnw("Fixture references unknown team", "jobId", jobID, "team", f.Team1)
		return false
	}
	team2, err := p.config.Store.GetTeamByName(f.Team2)
	if err != nil {
		p.logger.Warnw("Fixture references unknown team", "jobId", jobID, "team", f.Team2)
		return false
	}

	matchDate, err := parseFixtureTime(f.Date, f.Time)
	if err != nil {
		p.logger.Warnw("Fixture has unparseable date", "jobId", jobID, "date", f.Date, "time", f.Time, "error", err)
		return false
	}

	for _, m := range p.config.Store.ListMatches() {
		if m.Team1ID == team1.ID && m.Team2ID == team2.ID && m.MatchDate.Equal(matchDate) {
			p.logger.Debugw("Fixture already scheduled", "jobId", jobID, "matchId", m.ID)
			return false
		}
	}

	match := models.Match{
		Team1ID:   team1.ID,
		Team2ID:   team2.ID,
		StadiumID: p.resolveStadium(f.Venue),
		MatchDate: matchDate,
		MatchType: "league",
		Season:    matchDate.Year(),
	}

	saved := p.config.Store.CreateMatch(match)
	matchesIngested.Inc()
	p.logger.Infow("Scraped fixture ingested",
		"jobId", jobID,
		"matchId", saved.ID,
		"team1", team1.ShortName,
		"team2", team2.ShortName,
		"date", matchDate,
	)
	return true
}

// resolveStadium maps a scraped venue string like
// "M. A. Chidambaram Stadium, Chennai" onto a known stadium, nil if none.
func (p *Pool) resolveStadium(venue string) *int {
	for _, st := range p.config.Store.ListStadiums() {
		if strings.HasPrefix(venue, st.Name) {
			id := st.ID
			return &id
		}
	}
	return nil
}

func parseFixtureTime(date, clock string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04", date+" "+clock)
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
