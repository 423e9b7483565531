// Package logic holds the prediction engine and the narrative generator.
// Services are constructed once at startup and injected into the handlers
// behind the interfaces below.
package logic

import (
	"context"
	"math/rand"
	"sync"

	"github.com/cricsight/prediction-api/internal/models"
)

// PredictionService computes match and player forecasts. Methods are pure
// aside from the injected randomness: they never touch the store, and the
// returned values carry no id, date, or reasoning.
type PredictionService interface {
	PredictMatch(match models.Match, team1, team2 models.Team, stadium *models.Stadium) models.Prediction
	PredictPlayerPerformance(match models.Match, player models.Player) models.PlayerPerformancePrediction
	PredictSquad(ctx context.Context, match models.Match, players []models.Player) ([]models.PlayerPerformancePrediction, error)
}

// NarrativeService renders prediction numbers into explanatory text and
// answers free-text chat queries.
type NarrativeService interface {
	MatchExplanation(pred models.Prediction, match models.Match, team1, team2 models.Team, stadium *models.Stadium) string
	PlayerExplanation(pred models.PlayerPerformancePrediction, player models.Player) string
	ChatReply(message string) string
}

// ScraperService pulls the latest schedule and player stat lines from the
// upstream source. The current implementation returns fixed mock data.
type ScraperService interface {
	ScrapeSchedule(ctx context.Context) ([]models.ScrapedMatch, error)
	ScrapePlayerStats(ctx context.Context) ([]models.ScrapedPlayerStats, error)
}

// lockedRand makes a seedable *rand.Rand safe for concurrent handlers.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand(rng *rand.Rand) *lockedRand {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &lockedRand{rng: rng}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}
