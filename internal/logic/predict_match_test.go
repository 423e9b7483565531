package logic

import (
	"context"
	"math/rand"
	"testing"

	"github.com/cricsight/prediction-api/internal/models"
)

func strPtr(s string) *string { return &s }

func testTeams() (models.Team, models.Team) {
	csk := models.Team{ID: 1, Name: "Chennai Super Kings", ShortName: "CSK", HomeVenue: strPtr("M. A. Chidambaram Stadium")}
	mi := models.Team{ID: 2, Name: "Mumbai Indians", ShortName: "MI", HomeVenue: strPtr("Wankhede Stadium")}
	return csk, mi
}

func TestPredictMatchBounds(t *testing.T) {
	s := NewPredictionService(rand.New(rand.NewSource(1)))
	team1, team2 := testTeams()
	match := models.Match{ID: 1, Team1ID: team1.ID, Team2ID: team2.ID}
	stadium := &models.Stadium{ID: 1, Name: "M. A. Chidambaram Stadium", City: "Chennai", PitchType: strPtr(models.PitchSpinFriendly)}

	for i := 0; i < 200; i++ {
		pred := s.PredictMatch(match, team1, team2, stadium)

		if pred.MatchID != match.ID {
			t.Fatalf("MatchID = %d, want %d", pred.MatchID, match.ID)
		}
		if pred.PredictedWinnerID != team1.ID && pred.PredictedWinnerID != team2.ID {
			t.Fatalf("PredictedWinnerID = %d, want one of %d or %d", pred.PredictedWinnerID, team1.ID, team2.ID)
		}
		if pred.WinProbability < 0.5 || pred.WinProbability > 0.9 {
			t.Errorf("winner WinProbability = %v, want in [0.5, 0.9]", pred.WinProbability)
		}
		if pred.Confidence < 0.5 || pred.Confidence > 0.9 {
			t.Errorf("Confidence = %v, want in [0.5, 0.9]", pred.Confidence)
		}

		winScore, loseScore := *pred.Team2PredictedScore, *pred.Team1PredictedScore
		if pred.PredictedWinnerID == team1.ID {
			winScore, loseScore = *pred.Team1PredictedScore, *pred.Team2PredictedScore
		}
		if winScore < 160 || winScore >= 200 {
			t.Errorf("winning score = %d, want in [160, 200)", winScore)
		}
		if loseScore >= winScore {
			t.Errorf("losing score %d not below winning score %d", loseScore, winScore)
		}
		if pred.Reasoning != "" {
			t.Errorf("Reasoning = %q, want empty before narrative pass", pred.Reasoning)
		}
		if pred.IsCorrect != nil {
			t.Errorf("IsCorrect = %v, want nil for an unresolved match", *pred.IsCorrect)
		}
	}
}

func TestPredictMatchDeterministicWithSeed(t *testing.T) {
	team1, team2 := testTeams()
	match := models.Match{ID: 7, Team1ID: team1.ID, Team2ID: team2.ID}

	a := NewPredictionService(rand.New(rand.NewSource(42))).PredictMatch(match, team1, team2, nil)
	b := NewPredictionService(rand.New(rand.NewSource(42))).PredictMatch(match, team1, team2, nil)

	if a.WinProbability != b.WinProbability || a.PredictedWinnerID != b.PredictedWinnerID {
		t.Errorf("same seed produced different predictions: %+v vs %+v", a, b)
	}
	if *a.Team1PredictedScore != *b.Team1PredictedScore || a.Confidence != b.Confidence {
		t.Errorf("same seed produced different numbers: %+v vs %+v", a, b)
	}
}

func TestPredictMatchHomeAdvantageShiftsWinRate(t *testing.T) {
	team1, team2 := testTeams()
	match := models.Match{ID: 1, Team1ID: team1.ID, Team2ID: team2.ID}
	home := &models.Stadium{ID: 1, Name: *team1.HomeVenue, City: "Chennai"}

	const trials = 2000
	svcHome := NewPredictionService(rand.New(rand.NewSource(9)))
	svcNeutral := NewPredictionService(rand.New(rand.NewSource(9)))

	homeWins, neutralWins := 0, 0
	for i := 0; i < trials; i++ {
		if svcHome.PredictMatch(match, team1, team2, home).PredictedWinnerID == team1.ID {
			homeWins++
		}
		if svcNeutral.PredictMatch(match, team1, team2, nil).PredictedWinnerID == team1.ID {
			neutralWins++
		}
	}

	if homeWins <= neutralWins {
		t.Errorf("home venue did not raise team1 win rate: home %d vs neutral %d of %d", homeWins, neutralWins, trials)
	}
}

func TestPhaseBreakdownSumsWithinSlack(t *testing.T) {
	stats := phaseBreakdown(187, 6, 173, 8)

	scoreSum := stats.Powerplay.Team1Score + stats.Middle.Team1Score + stats.Death.Team1Score
	if scoreSum > 187 || 187-scoreSum > 3 {
		t.Errorf("team1 phase scores sum to %d, want within 3 below 187", scoreSum)
	}
	wicketSum := stats.Powerplay.Team2Wickets + stats.Middle.Team2Wickets + stats.Death.Team2Wickets
	if wicketSum > 8 || 8-wicketSum > 3 {
		t.Errorf("team2 phase wickets sum to %d, want within 3 below 8", wicketSum)
	}
}

func TestPredictSquad(t *testing.T) {
	s := NewPredictionService(rand.New(rand.NewSource(3)))
	match := models.Match{ID: 1, Team1ID: 1, Team2ID: 2}
	players := []models.Player{
		{ID: 1, Name: "MS Dhoni", Role: models.RoleWicketKeeper, IsCaptain: true},
		{ID: 2, Name: "Jasprit Bumrah", Role: models.RoleBowler},
		{ID: 3, Name: "Ravindra Jadeja", Role: models.RoleAllRounder},
	}

	preds, err := s.PredictSquad(context.Background(), match, players)
	if err != nil {
		t.Fatalf("PredictSquad() error = %v", err)
	}
	if len(preds) != len(players) {
		t.Fatalf("PredictSquad() returned %d predictions, want %d", len(preds), len(players))
	}
	for i, pred := range preds {
		if pred.PlayerID != players[i].ID {
			t.Errorf("prediction %d has PlayerID %d, want %d (order must follow input)", i, pred.PlayerID, players[i].ID)
		}
		if pred.MatchID != match.ID {
			t.Errorf("prediction %d has MatchID %d, want %d", i, pred.MatchID, match.ID)
		}
	}
}
