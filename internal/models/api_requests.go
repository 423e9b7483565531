package models

import "time"

type CreateTeamRequest struct {
	Name      string  `json:"name" validate:"required"`
	ShortName string  `json:"shortName" validate:"required"`
	LogoURL   *string `json:"logoUrl"`
	HomeVenue *string `json:"homeVenue"`
}

type CreatePlayerRequest struct {
	Name         string  `json:"name" validate:"required"`
	TeamID       *int    `json:"teamId"`
	Role         string  `json:"role" validate:"required,oneof=batsman bowler all-rounder wicket-keeper"`
	BattingStyle *string `json:"battingStyle"`
	BowlingStyle *string `json:"bowlingStyle"`
	ImageURL     *string `json:"imageUrl"`
	Country      *string `json:"country"`
	IsCaptain    bool    `json:"isCaptain"`
}

type CreateStadiumRequest struct {
	Name      string  `json:"name" validate:"required"`
	City      string  `json:"city" validate:"required"`
	Country   string  `json:"country" validate:"required"`
	PitchType *string `json:"pitchType" validate:"omitempty,oneof=spin-friendly batting-friendly balanced"`
}

type CreateMatchRequest struct {
	Team1ID   int       `json:"team1Id" validate:"required"`
	Team2ID   int       `json:"team2Id" validate:"required"`
	StadiumID *int      `json:"stadiumId"`
	MatchDate time.Time `json:"matchDate" validate:"required"`
	MatchType string    `json:"matchType"`
	Season    int       `json:"season" validate:"required"`
}

type CreatePredictionRequest struct {
	MatchID               int            `json:"matchId" validate:"required"`
	PredictedWinnerID     int            `json:"predictedWinnerId" validate:"required"`
	WinProbability        float64        `json:"winProbability" validate:"min=0,max=1"`
	Team1PredictedScore   *int           `json:"team1PredictedScore"`
	Team1PredictedWickets *int           `json:"team1PredictedWickets"`
	Team2PredictedScore   *int           `json:"team2PredictedScore"`
	Team2PredictedWickets *int           `json:"team2PredictedWickets"`
	Reasoning             string         `json:"reasoning"`
	Confidence            float64        `json:"confidence" validate:"min=0,max=1"`
	DetailedStats         *DetailedStats `json:"detailedStats"`
}

type CreatePlayerPerfPredictionRequest struct {
	MatchID               int      `json:"matchId" validate:"required"`
	PlayerID              int      `json:"playerId" validate:"required"`
	PredictedRunsScored   *int     `json:"predictedRunsScored"`
	PredictedBallsFaced   *int     `json:"predictedBallsFaced"`
	PredictedFours        *int     `json:"predictedFours"`
	PredictedSixes        *int     `json:"predictedSixes"`
	PredictedOvers        *float64 `json:"predictedOvers"`
	PredictedRunsConceded *int     `json:"predictedRunsConceded"`
	PredictedWickets      *int     `json:"predictedWickets"`
	PredictedMaidens      *int     `json:"predictedMaidens"`
	Confidence            float64  `json:"confidence" validate:"min=0,max=1"`
	Reasoning             string   `json:"reasoning"`
}

type GeneratePredictionRequest struct {
	MatchID int `json:"matchId" validate:"required"`
}

type GeneratePlayerPredictionRequest struct {
	MatchID  int `json:"matchId" validate:"required"`
	PlayerID int `json:"playerId" validate:"required"`
}

type GenerateSquadPredictionRequest struct {
	MatchID int `json:"matchId" validate:"required"`
	TeamID  int `json:"teamId" validate:"required"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
	UserID  *int   `json:"userId"`
}

type ChatResponse struct {
	UserMessage ChatMessage `json:"userMessage"`
	BotResponse ChatMessage `json:"botResponse"`
}
