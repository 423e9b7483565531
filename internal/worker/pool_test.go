package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/cricsight/prediction-api/internal/models"
	"github.com/cricsight/prediction-api/internal/store"
)

// MockScraper implements logic.ScraperService
type MockScraper struct {
	ScheduleFunc    func(ctx context.Context) ([]models.ScrapedMatch, error)
	PlayerStatsFunc func(ctx context.Context) ([]models.ScrapedPlayerStats, error)
}

func (m *MockScraper) ScrapeSchedule(ctx context.Context) ([]models.ScrapedMatch, error) {
	if m.ScheduleFunc != nil {
		return m.ScheduleFunc(ctx)
	}
	return nil, nil
}

func (m *MockScraper) ScrapePlayerStats(ctx context.Context) ([]models.ScrapedPlayerStats, error) {
	if m.PlayerStatsFunc != nil {
		return m.PlayerStatsFunc(ctx)
	}
	return nil, nil
}

func testFixtures() []models.ScrapedMatch {
	return []models.ScrapedMatch{
		{Team1: "Chennai Super Kings", Team2: "Mumbai Indians", Venue: "M. A. Chidambaram Stadium, Chennai", Date: "2023-05-15", Time: "19:30"},
		{Team1: "Punjab Kings", Team2: "Rajasthan Royals", Venue: "Punjab Cricket Association Stadium, Mohali", Date: "2023-05-18", Time: "15:30"},
	}
}

func newTestPool(s *store.Store, scraper *MockScraper) *Pool {
	return NewPool(PoolConfig{
		WorkerCount: 1,
		QueueSize:   4,
		Store:       s,
		Scraper:     scraper,
		Logger:      zap.NewNop(),
	})
}

func TestRunJobIngestsKnownFixtures(t *testing.T) {
	s := store.New()
	s.Seed()
	before := len(s.ListMatches())

	p := newTestPool(s, &MockScraper{
		ScheduleFunc: func(ctx context.Context) ([]models.ScrapedMatch, error) {
			return testFixtures(), nil
		},
	})

	if err := p.runJob(context.Background(), Job{ID: "job-1"}); err != nil {
		t.Fatalf("runJob() error = %v", err)
	}

	matches := s.ListMatches()
	// Only the CSK/MI fixture resolves; Punjab Kings and Rajasthan Royals
	// are not seeded teams.
	if len(matches) != before+1 {
		t.Fatalf("match count = %d, want %d", len(matches), before+1)
	}

	created := matches[len(matches)-1]
	csk, _ := s.GetTeamByName("CSK")
	mi, _ := s.GetTeamByName("MI")
	if created.Team1ID != csk.ID || created.Team2ID != mi.ID {
		t.Errorf("created match teams = %d vs %d, want %d vs %d", created.Team1ID, created.Team2ID, csk.ID, mi.ID)
	}

	wantDate := time.Date(2023, 5, 15, 19, 30, 0, 0, time.UTC)
	if !created.MatchDate.Equal(wantDate) {
		t.Errorf("created match date = %v, want %v", created.MatchDate, wantDate)
	}
	if created.Season != 2023 {
		t.Errorf("created match season = %d, want 2023", created.Season)
	}

	chepauk, err := s.GetStadium(1)
	if err != nil {
		t.Fatalf("GetStadium(1) error = %v", err)
	}
	if created.StadiumID == nil || *created.StadiumID != chepauk.ID {
		t.Errorf("created match stadium = %v, want %d", created.StadiumID, chepauk.ID)
	}
}

func TestRunJobSkipsDuplicates(t *testing.T) {
	s := store.New()
	s.Seed()

	p := newTestPool(s, &MockScraper{
		ScheduleFunc: func(ctx context.Context) ([]models.ScrapedMatch, error) {
			return testFixtures(), nil
		},
	})

	if err := p.runJob(context.Background(), Job{ID: "job-1"}); err != nil {
		t.Fatalf("first runJob() error = %v", err)
	}
	after := len(s.ListMatches())

	if err := p.runJob(context.Background(), Job{ID: "job-2"}); err != nil {
		t.Fatalf("second runJob() error = %v", err)
	}
	if got := len(s.ListMatches()); got != after {
		t.Errorf("second run created matches: %d, want %d", got, after)
	}
}

func TestRunJobPropagatesScrapeError(t *testing.T) {
	s := store.New()
	wantErr := errors.New("site unreachable")

	p := newTestPool(s, &MockScraper{
		ScheduleFunc: func(ctx context.Context) ([]models.ScrapedMatch, error) {
			return nil, wantErr
		},
	})

	if err := p.runJob(context.Background(), Job{ID: "job-1"}); !errors.Is(err, wantErr) {
		t.Errorf("runJob() error = %v, want wrapped %v", err, wantErr)
	}
}

func TestEnqueueRejectsWhenFull(t *testing.T) {
	s := store.New()
	p := NewPool(PoolConfig{
		WorkerCount: 1,
		QueueSize:   2,
		Store:       s,
		Scraper:     &MockScraper{},
		Logger:      zap.NewNop(),
	})
	// Workers not started, so the queue only drains on Start.

	if !p.Enqueue("a") || !p.Enqueue("b") {
		t.Fatal("enqueue failed with free capacity")
	}
	if p.Enqueue("c") {
		t.Error("enqueue succeeded on a full queue")
	}
	if got := p.QueueDepth(); got != 2 {
		t.Errorf("QueueDepth() = %d, want 2", got)
	}
}

func TestPoolProcessesQueuedJobsBeforeStopping(t *testing.T) {
	s := store.New()
	s.Seed()
	before := len(s.ListMatches())

	processed := make(chan struct{}, 1)
	p := newTestPool(s, &MockScraper{
		ScheduleFunc: func(ctx context.Context) ([]models.ScrapedMatch, error) {
			return testFixtures(), nil
		},
		PlayerStatsFunc: func(ctx context.Context) ([]models.ScrapedPlayerStats, error) {
			defer func() { processed <- struct{}{} }()
			return nil, nil
		},
	})

	p.Start(context.Background())
	if !p.Enqueue("job-1") {
		t.Fatal("enqueue failed")
	}

	select {
	case <-processed:
	case <-time.After(5 * time.Second):
		t.Fatal("job not processed before timeout")
	}
	p.Stop()

	if got := len(s.ListMatches()); got != before+1 {
		t.Errorf("match count after drain = %d, want %d", got, before+1)
	}

	if p.Enqueue("late") {
		t.Error("enqueue succeeded after Stop")
	}
}
