package logic

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cricsight/prediction-api/internal/models"
)

// scraperService returns fixture and stat data from a built-in snapshot.
// A real deployment would drive a headless browser against the IPL site;
// the snapshot keeps the ingest path exercisable without network access.
type scraperService struct {
	logger *zap.SugaredLogger
	delay  time.Duration
}

// NewScraperService builds the mock scraper. delay simulates per-page
// fetch latency and may be zero.
func NewScraperService(logger *zap.SugaredLogger, delay time.Duration) ScraperService {
	return &scraperService{logger: logger, delay: delay}
}

func (s *scraperService) ScrapeSchedule(ctx context.Context) ([]models.ScrapedMatch, error) {
	s.logger.Infow("scraping match schedule")
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	return []models.ScrapedMatch{
		{
			Team1: "Chennai Super Kings",
			Team2: "Mumbai Indians",
			Venue: "M. A. Chidambaram Stadium, Chennai",
			Date:  "2023-05-15",
			Time:  "19:30",
		},
		{
			Team1: "Royal Challengers Bangalore",
			Team2: "Kolkata Knight Riders",
			Venue: "M. Chinnaswamy Stadium, Bengaluru",
			Date:  "2023-05-16",
			Time:  "15:30",
		},
		{
			Team1: "Sunrisers Hyderabad",
			Team2: "Royal Challengers Bangalore",
			Venue: "Rajiv Gandhi International Stadium, Hyderabad",
			Date:  "2023-05-17",
			Time:  "19:30",
		},
		{
			Team1: "Punjab Kings",
			Team2: "Rajasthan Royals",
			Venue: "Punjab Cricket Association Stadium, Mohali",
			Date:  "2023-05-18",
			Time:  "15:30",
		},
	}, nil
}

func (s *scraperService) ScrapePlayerStats(ctx context.Context) ([]models.ScrapedPlayerStats, error) {
	s.logger.Infow("scraping player statistics")
	if err := s.sleep(ctx); err != nil {
		return nil, err
	}

	return []models.ScrapedPlayerStats{
		{
			Name:       "MS Dhoni",
			Team:       "Chennai Super Kings",
			Matches:    12,
			Runs:       219,
			Average:    43.80,
			StrikeRate: 186.44,
		},
		{
			Name:       "Rohit Sharma",
			Team:       "Mumbai Indians",
			Matches:    12,
			Runs:       322,
			Average:    29.27,
			StrikeRate: 133.61,
		},
		{
			Name:       "Jasprit Bumrah",
			Team:       "Mumbai Indians",
			Matches:    12,
			Runs:       15,
			Average:    7.50,
			StrikeRate: 115.38,
			Wickets:    18,
			Economy:    6.73,
		},
		{
			Name:       "Ravindra Jadeja",
			Team:       "Chennai Super Kings",
			Matches:    12,
			Runs:       175,
			Average:    35.00,
			StrikeRate: 142.27,
			Wickets:    12,
			Economy:    7.86,
		},
	}, nil
}

func (s *scraperService) sleep(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
