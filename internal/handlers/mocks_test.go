package handlers

import (
	"context"

	"github.com/cricsight/prediction-api/internal/models"
)

// MockPredictionService
type MockPredictionService struct {
	PredictMatchFunc             func(match models.Match, team1, team2 models.Team, stadium *models.Stadium) models.Prediction
	PredictPlayerPerformanceFunc func(match models.Match, player models.Player) models.PlayerPerformancePrediction
	PredictSquadFunc             func(ctx context.Context, match models.Match, players []models.Player) ([]models.PlayerPerformancePrediction, error)
}

func (m *MockPredictionService) PredictMatch(match models.Match, team1, team2 models.Team, stadium *models.Stadium) models.Prediction {
	if m.PredictMatchFunc != nil {
		return m.PredictMatchFunc(match, team1, team2, stadium)
	}
	return models.Prediction{MatchID: match.ID, PredictedWinnerID: team1.ID, WinProbability: 0.6, Confidence: 0.7}
}

func (m *MockPredictionService) PredictPlayerPerformance(match models.Match, player models.Player) models.PlayerPerformancePrediction {
	if m.PredictPlayerPerformanceFunc != nil {
		return m.PredictPlayerPerformanceFunc(match, player)
	}
	return models.PlayerPerformancePrediction{MatchID: match.ID, PlayerID: player.ID, Confidence: 0.75}
}

func (m *MockPredictionService) PredictSquad(ctx context.Context, match models.Match, players []models.Player) ([]models.PlayerPerformancePrediction, error) {
	if m.PredictSquadFunc != nil {
		return m.PredictSquadFunc(ctx, match, players)
	}
	out := make([]models.PlayerPerformancePrediction, len(players))
	for i, p := range players {
		out[i] = models.PlayerPerformancePrediction{MatchID: match.ID, PlayerID: p.ID, Confidence: 0.75}
	}
	return out, nil
}

// MockNarrativeService
type MockNarrativeService struct {
	MatchExplanationFunc  func(pred models.Prediction, match models.Match, team1, team2 models.Team, stadium *models.Stadium) string
	PlayerExplanationFunc func(pred models.PlayerPerformancePrediction, player models.Player) string
	ChatReplyFunc         func(message string) string
}

func (m *MockNarrativeService) MatchExplanation(pred models.Prediction, match models.Match, team1, team2 models.Team, stadium *models.Stadium) string {
	if m.MatchExplanationFunc != nil {
		return m.MatchExplanationFunc(pred, match, team1, team2, stadium)
	}
	return "mock match explanation"
}

func (m *MockNarrativeService) PlayerExplanation(pred models.PlayerPerformancePrediction, player models.Player) string {
	if m.PlayerExplanationFunc != nil {
		return m.PlayerExplanationFunc(pred, player)
	}
	return "mock player explanation"
}

func (m *MockNarrativeService) ChatReply(message string) string {
	if m.ChatReplyFunc != nil {
		return m.ChatReplyFunc(message)
	}
	return "mock chat reply"
}

// MockScrapeQueue
type MockScrapeQueue struct {
	EnqueueFunc func(jobID string) bool
	Depth       int
	Enqueued    []string
}

func (m *MockScrapeQueue) Enqueue(jobID string) bool {
	if m.EnqueueFunc != nil {
		return m.EnqueueFunc(jobID)
	}
	m.Enqueued = append(m.Enqueued, jobID)
	return true
}

func (m *MockScrapeQueue) QueueDepth() int {
	return m.Depth
}
