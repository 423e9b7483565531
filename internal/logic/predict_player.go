package logic

import (
	"math"

	"github.com/cricsight/prediction-api/internal/models"
)

// PredictPlayerPerformance forecasts a player's batting and/or bowling
// numbers for a match. Which halves are populated follows from the role:
// batsmen, all-rounders, and wicket-keepers bat; bowlers and all-rounders
// bowl. A handful of known performers get elevated baselines.
func (s *predictionService) PredictPlayerPerformance(match models.Match, player models.Player) models.PlayerPerformancePrediction {
	pred := models.PlayerPerformancePrediction{
		MatchID:    match.ID,
		PlayerID:   player.ID,
		Confidence: 0.7 + s.rng.Float64()*0.2,
	}

	switch player.Role {
	case models.RoleBatsman, models.RoleAllRounder, models.RoleWicketKeeper:
		s.fillBatting(&pred, player)
	}

	switch player.Role {
	case models.RoleBowler, models.RoleAllRounder:
		s.fillBowling(&pred, player)
	}

	return pred
}

func (s *predictionService) fillBatting(pred *models.PlayerPerformancePrediction, player models.Player) {
	var runs, balls int

	switch player.Role {
	case models.RoleBatsman:
		if player.IsCaptain {
			runs = 35 + s.randInt(20)
		} else {
			runs = 25 + s.randInt(15)
		}
		balls = s.ballsForStrikeRate(runs)
	case models.RoleAllRounder:
		runs = 20 + s.randInt(15)
		balls = s.ballsForStrikeRate(runs)
	case models.RoleWicketKeeper:
		runs = 30 + s.randInt(15)
		balls = s.ballsForStrikeRate(runs)
	}

	// Known finishers get a bump over the role baseline.
	switch player.Name {
	case "MS Dhoni":
		runs = 35 + s.randInt(20)
		balls = int(math.Floor(float64(runs) * 0.55)) // strike rate around 180
	case "Rohit Sharma":
		runs = 35 + s.randInt(25)
		balls = int(math.Floor(float64(runs) * 0.8)) // strike rate around 125
	}

	fours := runs / 10
	sixes := runs / 20
	pred.PredictedRunsScored = &runs
	pred.PredictedBallsFaced = &balls
	pred.PredictedFours = &fours
	pred.PredictedSixes = &sixes
}

func (s *predictionService) fillBowling(pred *models.PlayerPerformancePrediction, player models.Player) {
	var (
		overs        float64
		wickets      int
		runsConceded int
	)

	switch player.Role {
	case models.RoleBowler:
		overs = 4 // full quota for specialists
		wickets = 1 + s.randInt(3)
		runsConceded = 25 + s.randInt(15)
	case models.RoleAllRounder:
		overs = float64(2 + s.randInt(2))
		wickets = s.randInt(2)
		runsConceded = 20 + s.randInt(15)
	}

	switch player.Name {
	case "Jasprit Bumrah":
		wickets = 2 + s.randInt(2)
		runsConceded = 20 + s.randInt(15)
	case "Ravindra Jadeja":
		wickets = 1 + s.randInt(2)
		runsConceded = 20 + s.randInt(10)
	}

	maidens := 0
	if wickets > 2 {
		maidens = 1
	}
	pred.PredictedOvers = &overs
	pred.PredictedRunsConceded = &runsConceded
	pred.PredictedWickets = &wickets
	pred.PredictedMaidens = &maidens
}

// ballsForStrikeRate returns balls giving a strike rate between 100 and 150.
func (s *predictionService) ballsForStrikeRate(runs int) int {
	return int(math.Floor(float64(runs) * (0.7 + s.rng.Float64()*0.3)))
}

func (s *predictionService) randInt(n int) int {
	return int(math.Floor(s.rng.Float64() * float64(n)))
}
