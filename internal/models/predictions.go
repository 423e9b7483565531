package models

import "time"

// Prediction is a stored forecast for one match. At most one prediction
// exists per match. WinProbability always refers to PredictedWinnerID,
// not to team1.
type Prediction struct {
	ID                    int            `json:"id"`
	MatchID               int            `json:"matchId"`
	PredictedWinnerID     int            `json:"predictedWinnerId"`
	WinProbability        float64        `json:"winProbability"`
	Team1PredictedScore   *int           `json:"team1PredictedScore"`
	Team1PredictedWickets *int           `json:"team1PredictedWickets"`
	Team2PredictedScore   *int           `json:"team2PredictedScore"`
	Team2PredictedWickets *int           `json:"team2PredictedWickets"`
	Reasoning             string         `json:"reasoning"`
	Confidence            float64        `json:"confidence"`
	IsCorrect             *bool          `json:"isCorrect"`
	PredictionDate        time.Time      `json:"predictionDate"`
	DetailedStats         *DetailedStats `json:"detailedStats"`
}

// DetailedStats breaks an innings forecast down by phase. Phase totals are
// floored independently and need not sum to the match totals.
type DetailedStats struct {
	Powerplay PhaseStats `json:"powerplay"`
	Middle    PhaseStats `json:"middle"`
	Death     PhaseStats `json:"death"`
}

type PhaseStats struct {
	Team1Score   int `json:"team1Score"`
	Team1Wickets int `json:"team1Wickets"`
	Team2Score   int `json:"team2Score"`
	Team2Wickets int `json:"team2Wickets"`
}

// PlayerPerformance records actual numbers for a player in a completed match.
type PlayerPerformance struct {
	ID           int       `json:"id"`
	MatchID      int       `json:"matchId"`
	PlayerID     int       `json:"playerId"`
	RunsScored   int       `json:"runsScored"`
	BallsFaced   int       `json:"ballsFaced"`
	Fours        int       `json:"fours"`
	Sixes        int       `json:"sixes"`
	Overs        float64   `json:"overs"`
	RunsConceded int       `json:"runsConceded"`
	Wickets      int       `json:"wickets"`
	Maidens      int       `json:"maidens"`
	Catches      int       `json:"catches"`
	Stumpings    int       `json:"stumpings"`
	RunOuts      int       `json:"runOuts"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PlayerPerformancePrediction forecasts one player's numbers for a match.
// Batting fields are set only for batting roles, bowling fields only for
// bowling roles; the other side stays nil.
type PlayerPerformancePrediction struct {
	ID                    int       `json:"id"`
	MatchID               int       `json:"matchId"`
	PlayerID              int       `json:"playerId"`
	PredictedRunsScored   *int      `json:"predictedRunsScored"`
	PredictedBallsFaced   *int      `json:"predictedBallsFaced"`
	PredictedFours        *int      `json:"predictedFours"`
	PredictedSixes        *int      `json:"predictedSixes"`
	PredictedOvers        *float64  `json:"predictedOvers"`
	PredictedRunsConceded *int      `json:"predictedRunsConceded"`
	PredictedWickets      *int      `json:"predictedWickets"`
	PredictedMaidens      *int      `json:"predictedMaidens"`
	PredictionDate        time.Time `json:"predictionDate"`
	Confidence            float64   `json:"confidence"`
	Reasoning             string    `json:"reasoning"`
}
