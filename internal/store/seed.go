package store

import (
	"time"

	"github.com/cricsight/prediction-api/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// Seed installs the fixed sample dataset: five IPL teams, three stadiums,
// four marquee players, three upcoming fixtures with predictions, and the
// player forecasts for the opening fixture. Intended to run once at startup
// on an empty store.
func (s *Store) Seed() {
	csk := s.CreateTeam(models.Team{
		Name:      "Chennai Super Kings",
		ShortName: "CSK",
		LogoURL:   strPtr("https://upload.wikimedia.org/wikipedia/en/thumb/2/2b/Chennai_Super_Kings_Logo.svg/800px-Chennai_Super_Kings_Logo.svg.png"),
		HomeVenue: strPtr("M. A. Chidambaram Stadium"),
	})
	mi := s.CreateTeam(models.Team{
		Name:      "Mumbai Indians",
		ShortName: "MI",
		LogoURL:   strPtr("https://upload.wikimedia.org/wikipedia/en/thumb/c/cd/Mumbai_Indians_Logo.svg/800px-Mumbai_Indians_Logo.svg.png"),
		HomeVenue: strPtr("Wankhede Stadium"),
	})
	rcb := s.CreateTeam(models.Team{
		Name:      "Royal Challengers Bangalore",
		ShortName: "RCB",
		LogoURL:   strPtr("https://upload.wikimedia.org/wikipedia/en/thumb/2/2a/Royal_Challengers_Bangalore_2020.svg/800px-Royal_Challengers_Bangalore_2020.svg.png"),
		HomeVenue: strPtr("M. Chinnaswamy Stadium"),
	})
	kkr := s.CreateTeam(models.Team{
		Name:      "Kolkata Knight Riders",
		ShortName: "KKR",
		LogoURL:   strPtr("https://upload.wikimedia.org/wikipedia/en/thumb/4/4c/Kolkata_Knight_Riders_Logo.svg/800px-Kolkata_Knight_Riders_Logo.svg.png"),
		HomeVenue: strPtr("Eden Gardens"),
	})
	srh := s.CreateTeam(models.Team{
		Name:      "Sunrisers Hyderabad",
		ShortName: "SRH",
		LogoURL:   strPtr("https://upload.wikimedia.org/wikipedia/en/thumb/8/81/Sunrisers_Hyderabad.svg/800px-Sunrisers_Hyderabad.svg.png"),
		HomeVenue: strPtr("Rajiv Gandhi International Cricket Stadium"),
	})

	chepauk := s.CreateStadium(models.Stadium{
		Name:      "M. A. Chidambaram Stadium",
		City:      "Chennai",
		Country:   "India",
		PitchType: strPtr(models.PitchSpinFriendly),
	})
	wankhede := s.CreateStadium(models.Stadium{
		Name:      "Wankhede Stadium",
		City:      "Mumbai",
		Country:   "India",
		PitchType: strPtr(models.PitchBalanced),
	})
	chinnaswamy := s.CreateStadium(models.Stadium{
		Name:      "M. Chinnaswamy Stadium",
		City:      "Bengaluru",
		Country:   "India",
		PitchType: strPtr(models.PitchBattingFriendly),
	})

	dhoni := s.CreatePlayer(models.Player{
		Name:         "MS Dhoni",
		TeamID:       intPtr(csk.ID),
		Role:         models.RoleWicketKeeper,
		BattingStyle: strPtr("right-handed"),
		BowlingStyle: strPtr("right-arm medium"),
		ImageURL:     strPtr("https://static.iplt20.com/players/210/1.png"),
		Country:      strPtr("India"),
		IsCaptain:    true,
	})
	rohit := s.CreatePlayer(models.Player{
		Name:         "Rohit Sharma",
		TeamID:       intPtr(mi.ID),
		Role:         models.RoleBatsman,
		BattingStyle: strPtr("right-handed"),
		BowlingStyle: strPtr("right-arm off break"),
		ImageURL:     strPtr("https://static.iplt20.com/players/210/107.png"),
		Country:      strPtr("India"),
		IsCaptain:    true,
	})
	bumrah := s.CreatePlayer(models.Player{
		Name:         "Jasprit Bumrah",
		TeamID:       intPtr(mi.ID),
		Role:         models.RoleBowler,
		BattingStyle: strPtr("right-handed"),
		BowlingStyle: strPtr("right-arm fast"),
		ImageURL:     strPtr("https://static.iplt20.com/players/210/1124.png"),
		Country:      strPtr("India"),
	})
	jadeja := s.CreatePlayer(models.Player{
		Name:         "Ravindra Jadeja",
		TeamID:       intPtr(csk.ID),
		Role:         models.RoleAllRounder,
		BattingStyle: strPtr("left-handed"),
		BowlingStyle: strPtr("left-arm orthodox"),
		ImageURL:     strPtr("https://static.iplt20.com/players/210/9.png"),
		Country:      strPtr("India"),
	})

	today := s.now()
	match1 := s.CreateMatch(models.Match{
		Team1ID:   csk.ID,
		Team2ID:   mi.ID,
		StadiumID: intPtr(chepauk.ID),
		MatchDate: today,
		MatchType: "league",
		Season:    2023,
	})
	match2 := s.CreateMatch(models.Match{
		Team1ID:   rcb.ID,
		Team2ID:   kkr.ID,
		StadiumID: intPtr(chinnaswamy.ID),
		MatchDate: today.Add(24 * time.Hour),
		MatchType: "league",
		Season:    2023,
	})
	match3 := s.CreateMatch(models.Match{
		Team1ID:   srh.ID,
		Team2ID:   rcb.ID,
		StadiumID: intPtr(wankhede.ID),
		MatchDate: today.Add(48 * time.Hour),
		MatchType: "league",
		Season:    2023,
	})

	s.CreatePrediction(models.Prediction{
		MatchID:               match1.ID,
		PredictedWinnerID:     csk.ID,
		WinProbability:        0.62,
		Team1PredictedScore:   intPtr(187),
		Team1PredictedWickets: intPtr(6),
		Team2PredictedScore:   intPtr(173),
		Team2PredictedWickets: intPtr(8),
		Reasoning:             "CSK has a strong record at home in Chennai, with the pitch conditions favoring their spin attack. MS Dhoni's form in recent matches gives them an edge.",
		Confidence:            0.78,
		DetailedStats: &models.DetailedStats{
			Powerplay: models.PhaseStats{Team1Score: 58, Team1Wickets: 1, Team2Score: 51, Team2Wickets: 2},
			Middle:    models.PhaseStats{Team1Score: 85, Team1Wickets: 3, Team2Score: 76, Team2Wickets: 3},
			Death:     models.PhaseStats{Team1Score: 44, Team1Wickets: 2, Team2Score: 46, Team2Wickets: 3},
		},
	})
	s.CreatePrediction(models.Prediction{
		MatchID:               match2.ID,
		PredictedWinnerID:     rcb.ID,
		WinProbability:        0.63,
		Team1PredictedScore:   intPtr(192),
		Team1PredictedWickets: intPtr(5),
		Team2PredictedScore:   intPtr(180),
		Team2PredictedWickets: intPtr(7),
		Reasoning:             "RCB has a strong batting lineup and the Chinnaswamy Stadium is known to be a high-scoring venue. KKR's bowling attack might struggle on this batting-friendly pitch.",
		Confidence:            0.63,
	})
	s.CreatePrediction(models.Prediction{
		MatchID:               match3.ID,
		PredictedWinnerID:     srh.ID,
		WinProbability:        0.56,
		Team1PredictedScore:   intPtr(168),
		Team1PredictedWickets: intPtr(7),
		Team2PredictedScore:   intPtr(160),
		Team2PredictedWickets: intPtr(9),
		Reasoning:             "SRH's bowling attack has been performing well in recent matches, and they have a slight edge over RCB in Mumbai conditions.",
		Confidence:            0.56,
	})

	floatPtr := func(f float64) *float64 { return &f }

	s.CreatePlayerPerfPrediction(models.PlayerPerformancePrediction{
		MatchID:             match1.ID,
		PlayerID:            dhoni.ID,
		PredictedRunsScored: intPtr(42),
		PredictedBallsFaced: intPtr(23),
		PredictedFours:      intPtr(3),
		PredictedSixes:      intPtr(3),
		Confidence:          0.75,
		Reasoning:           "MS Dhoni has been in excellent form in the death overs, with a strike rate of over 180 in the last 3 matches.",
	})
	s.CreatePlayerPerfPrediction(models.PlayerPerformancePrediction{
		MatchID:             match1.ID,
		PlayerID:            rohit.ID,
		PredictedRunsScored: intPtr(38),
		PredictedBallsFaced: intPtr(31),
		PredictedFours:      intPtr(4),
		PredictedSixes:      intPtr(1),
		Confidence:          0.68,
		Reasoning:           "Rohit Sharma has been consistent but not explosive in recent matches, with a strike rate around 120-130.",
	})
	s.CreatePlayerPerfPrediction(models.PlayerPerformancePrediction{
		MatchID:               match1.ID,
		PlayerID:              bumrah.ID,
		PredictedOvers:        floatPtr(4.0),
		PredictedRunsConceded: intPtr(28),
		PredictedWickets:      intPtr(3),
		PredictedMaidens:      intPtr(0),
		Confidence:            0.82,
		Reasoning:             "Jasprit Bumrah has been MI's best bowler, consistently taking wickets in all phases of the game.",
	})
	s.CreatePlayerPerfPrediction(models.PlayerPerformancePrediction{
		MatchID:               match1.ID,
		PlayerID:              jadeja.ID,
		PredictedRunsScored:   intPtr(26),
		PredictedBallsFaced:   intPtr(18),
		PredictedFours:        intPtr(2),
		PredictedSixes:        intPtr(1),
		PredictedOvers:        floatPtr(4.0),
		PredictedRunsConceded: intPtr(24),
		PredictedWickets:      intPtr(2),
		PredictedMaidens:      intPtr(0),
		Confidence:            0.71,
		Reasoning:             "Ravindra Jadeja's all-round abilities make him a key player, especially on Chennai's spin-friendly tracks.",
	})
}
