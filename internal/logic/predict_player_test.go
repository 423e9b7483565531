package logic

import (
	"math/rand"
	"testing"

	"github.com/cricsight/prediction-api/internal/models"
)

func TestPredictPlayerPerformanceByRole(t *testing.T) {
	tests := []struct {
		name        string
		player      models.Player
		wantBatting bool
		wantBowling bool
	}{
		{
			name:        "Batsman",
			player:      models.Player{ID: 1, Name: "Some Batsman", Role: models.RoleBatsman},
			wantBatting: true,
		},
		{
			name:        "Bowler",
			player:      models.Player{ID: 2, Name: "Some Bowler", Role: models.RoleBowler},
			wantBowling: true,
		},
		{
			name:        "AllRounder",
			player:      models.Player{ID: 3, Name: "Some AllRounder", Role: models.RoleAllRounder},
			wantBatting: true,
			wantBowling: true,
		},
		{
			name:        "WicketKeeper",
			player:      models.Player{ID: 4, Name: "Some Keeper", Role: models.RoleWicketKeeper},
			wantBatting: true,
		},
	}

	s := NewPredictionService(rand.New(rand.NewSource(5)))
	match := models.Match{ID: 1, Team1ID: 1, Team2ID: 2}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pred := s.PredictPlayerPerformance(match, tt.player)

			if got := pred.PredictedRunsScored != nil; got != tt.wantBatting {
				t.Errorf("batting fields set = %v, want %v", got, tt.wantBatting)
			}
			if got := pred.PredictedWickets != nil; got != tt.wantBowling {
				t.Errorf("bowling fields set = %v, want %v", got, tt.wantBowling)
			}
			if tt.wantBatting {
				runs := *pred.PredictedRunsScored
				if *pred.PredictedFours != runs/10 || *pred.PredictedSixes != runs/20 {
					t.Errorf("boundaries = %d fours %d sixes for %d runs, want %d and %d",
						*pred.PredictedFours, *pred.PredictedSixes, runs, runs/10, runs/20)
				}
				if *pred.PredictedBallsFaced > runs {
					t.Errorf("balls faced %d exceeds runs %d, strike rate below 100", *pred.PredictedBallsFaced, runs)
				}
			}
			if tt.wantBowling {
				wantMaidens := 0
				if *pred.PredictedWickets > 2 {
					wantMaidens = 1
				}
				if *pred.PredictedMaidens != wantMaidens {
					t.Errorf("maidens = %d with %d wickets, want %d", *pred.PredictedMaidens, *pred.PredictedWickets, wantMaidens)
				}
			}
			if pred.Confidence < 0.7 || pred.Confidence >= 0.9 {
				t.Errorf("Confidence = %v, want in [0.7, 0.9)", pred.Confidence)
			}
			if pred.MatchID != match.ID || pred.PlayerID != tt.player.ID {
				t.Errorf("ids = match %d player %d, want match %d player %d",
					pred.MatchID, pred.PlayerID, match.ID, tt.player.ID)
			}
		})
	}
}

func TestPredictPlayerPerformanceSpecialistBowlerQuota(t *testing.T) {
	s := NewPredictionService(rand.New(rand.NewSource(8)))
	match := models.Match{ID: 1}
	bowler := models.Player{ID: 9, Name: "Some Bowler", Role: models.RoleBowler}

	for i := 0; i < 50; i++ {
		pred := s.PredictPlayerPerformance(match, bowler)
		if *pred.PredictedOvers != 4 {
			t.Fatalf("specialist bowler overs = %v, want full quota of 4", *pred.PredictedOvers)
		}
		if w := *pred.PredictedWickets; w < 1 || w > 3 {
			t.Errorf("wickets = %d, want in [1, 3]", w)
		}
	}
}

func TestPredictPlayerPerformanceNamedOverrides(t *testing.T) {
	s := NewPredictionService(rand.New(rand.NewSource(2)))
	match := models.Match{ID: 1}

	for i := 0; i < 100; i++ {
		dhoni := s.PredictPlayerPerformance(match, models.Player{ID: 1, Name: "MS Dhoni", Role: models.RoleWicketKeeper, IsCaptain: true})
		runs, balls := *dhoni.PredictedRunsScored, *dhoni.PredictedBallsFaced
		if runs < 35 || runs >= 55 {
			t.Errorf("Dhoni runs = %d, want in [35, 55)", runs)
		}
		if sr := float64(runs) / float64(balls) * 100; sr < 150 {
			t.Errorf("Dhoni strike rate = %.1f (%d off %d), want aggressive scoring", sr, runs, balls)
		}

		bumrah := s.PredictPlayerPerformance(match, models.Player{ID: 2, Name: "Jasprit Bumrah", Role: models.RoleBowler})
		if w := *bumrah.PredictedWickets; w < 2 || w > 3 {
			t.Errorf("Bumrah wickets = %d, want in [2, 3]", w)
		}
	}
}
