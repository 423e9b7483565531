package logic

import (
	"context"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/cricsight/prediction-api/internal/models"
)

// Team tiers used for the strength bonus. Measured strength would come from
// historical data; this is a stand-in until a real model exists.
var (
	strongTeams = map[string]bool{
		"Mumbai Indians":        true,
		"Chennai Super Kings":   true,
		"Kolkata Knight Riders": true,
	}
	moderateTeams = map[string]bool{
		"Royal Challengers Bangalore": true,
		"Delhi Capitals":              true,
		"Sunrisers Hyderabad":         true,
	}
)

type predictionService struct {
	rng *lockedRand
}

// NewPredictionService builds the heuristic engine. rng may be seeded for
// deterministic output; pass nil for ambient randomness.
func NewPredictionService(rng *rand.Rand) PredictionService {
	return &predictionService{rng: newLockedRand(rng)}
}

// PredictMatch forecasts the outcome of a match from relative team strength
// and venue. The returned prediction is unsaved and its reasoning is empty;
// the caller fills it via the narrative service and persists it.
func (s *predictionService) PredictMatch(match models.Match, team1, team2 models.Team, stadium *models.Stadium) models.Prediction {
	team1Strength := s.teamStrength(team1)
	team2Strength := s.teamStrength(team2)

	homeAdvantage := 0.0
	if stadium != nil {
		if team1.HomeVenue != nil && stadium.Name == *team1.HomeVenue {
			homeAdvantage = 0.1
		} else if team2.HomeVenue != nil && stadium.Name == *team2.HomeVenue {
			homeAdvantage = -0.1
		}
	}

	team1WinProb := team1Strength/(team1Strength+team2Strength) + homeAdvantage

	// No side is ever modeled as a certainty.
	team1WinProb = clamp(team1WinProb, 0.1, 0.9)

	predictedWinnerID := team2.ID
	if team1WinProb > 0.5 {
		predictedWinnerID = team1.ID
	}

	winningScore := int(math.Floor(160 + s.rng.Float64()*40))
	losingScore := int(math.Floor(float64(winningScore) - 5 - s.rng.Float64()*20))
	winningWickets := int(math.Floor(2 + s.rng.Float64()*5))
	losingWickets := int(math.Floor(4 + s.rng.Float64()*6))

	confidenceDeviation := s.rng.Float64()*0.2 - 0.1
	confidence := clamp(math.Abs(team1WinProb-0.5)*2+0.5+confidenceDeviation, 0.5, 0.9)

	// Orient winner/loser numbers back onto match team slots.
	team1Score, team1Wickets := losingScore, losingWickets
	team2Score, team2Wickets := winningScore, winningWickets
	if predictedWinnerID == team1.ID {
		team1Score, team1Wickets = winningScore, winningWickets
		team2Score, team2Wickets = losingScore, losingWickets
	}

	// Stored probability refers to the predicted winner.
	winProbability := team1WinProb
	if predictedWinnerID == team2.ID {
		winProbability = 1 - team1WinProb
	}

	return models.Prediction{
		MatchID:               match.ID,
		PredictedWinnerID:     predictedWinnerID,
		WinProbability:        winProbability,
		Team1PredictedScore:   &team1Score,
		Team1PredictedWickets: &team1Wickets,
		Team2PredictedScore:   &team2Score,
		Team2PredictedWickets: &team2Wickets,
		Confidence:            confidence,
		DetailedStats:         phaseBreakdown(team1Score, team1Wickets, team2Score, team2Wickets),
	}
}

// PredictSquad generates a performance prediction for every listed player.
func (s *predictionService) PredictSquad(ctx context.Context, match models.Match, players []models.Player) ([]models.PlayerPerformancePrediction, error) {
	out := make([]models.PlayerPerformancePrediction, len(players))

	g, _ := errgroup.WithContext(ctx)
	for i, player := range players {
		i, player := i, player
		g.Go(func() error {
			out[i] = s.PredictPlayerPerformance(match, player)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// teamStrength scores a team as a random base in [50,80) plus a tier bonus.
func (s *predictionService) teamStrength(team models.Team) float64 {
	base := 50 + s.rng.Float64()*30
	switch {
	case strongTeams[team.Name]:
		return base + 10
	case moderateTeams[team.Name]:
		return base + 5
	}
	return base
}

// phaseBreakdown splits innings totals across powerplay, middle, and death
// overs. Each phase value is floored independently, so sums may fall a few
// runs short of the totals.
func phaseBreakdown(team1Score, team1Wickets, team2Score, team2Wickets int) *models.DetailedStats {
	frac := func(v int, f float64) int { return int(math.Floor(float64(v) * f)) }
	return &models.DetailedStats{
		Powerplay: models.PhaseStats{
			Team1Score:   frac(team1Score, 0.3),
			Team1Wickets: frac(team1Wickets, 0.2),
			Team2Score:   frac(team2Score, 0.3),
			Team2Wickets: frac(team2Wickets, 0.3),
		},
		Middle: models.PhaseStats{
			Team1Score:   frac(team1Score, 0.45),
			Team1Wickets: frac(team1Wickets, 0.5),
			Team2Score:   frac(team2Score, 0.45),
			Team2Wickets: frac(team2Wickets, 0.4),
		},
		Death: models.PhaseStats{
			Team1Score:   frac(team1Score, 0.25),
			Team1Wickets: frac(team1Wickets, 0.3),
			Team2Score:   frac(team2Score, 0.25),
			Team2Wickets: frac(team2Wickets, 0.3),
		},
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
