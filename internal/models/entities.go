package models

import "time"

// Player roles. Batting/bowling applicability in the prediction engine
// is keyed off these values.
const (
	RoleBatsman      = "batsman"
	RoleBowler       = "bowler"
	RoleAllRounder   = "all-rounder"
	RoleWicketKeeper = "wicket-keeper"
)

// Stadium pitch types
const (
	PitchSpinFriendly    = "spin-friendly"
	PitchBattingFriendly = "batting-friendly"
	PitchBalanced        = "balanced"
)

// Team is a franchise side. HomeVenue ties into the home-advantage
// adjustment when predicting matches played at that stadium.
type Team struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	ShortName string    `json:"shortName"`
	LogoURL   *string   `json:"logoUrl"`
	HomeVenue *string   `json:"homeVenue"`
	CreatedAt time.Time `json:"createdAt"`
}

// Player belongs to a team. Role decides which halves of a performance
// prediction get populated.
type Player struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	TeamID       *int      `json:"teamId"`
	Role         string    `json:"role"`
	BattingStyle *string   `json:"battingStyle"`
	BowlingStyle *string   `json:"bowlingStyle"`
	ImageURL     *string   `json:"imageUrl"`
	Country      *string   `json:"country"`
	IsCaptain    bool      `json:"isCaptain"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Stadium struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	PitchType *string   `json:"pitchType"`
	CreatedAt time.Time `json:"createdAt"`
}

// Match is a fixture between two teams. Result fields stay nil until the
// match is completed and updated.
type Match struct {
	ID            int       `json:"id"`
	Team1ID       int       `json:"team1Id"`
	Team2ID       int       `json:"team2Id"`
	StadiumID     *int      `json:"stadiumId"`
	MatchDate     time.Time `json:"matchDate"`
	MatchType     string    `json:"matchType"` // league, playoff, final
	Season        int       `json:"season"`
	IsCompleted   bool      `json:"isCompleted"`
	TossWinnerID  *int      `json:"tossWinnerId"`
	TossDecision  *string   `json:"tossDecision"` // bat, bowl
	WinnerID      *int      `json:"winnerId"`
	WinMargin     *int      `json:"winMargin"`
	WinMarginType *string   `json:"winMarginType"` // runs, wickets
	Team1Score    *int      `json:"team1Score"`
	Team1Wickets  *int      `json:"team1Wickets"`
	Team1Overs    *float64  `json:"team1Overs"`
	Team2Score    *int      `json:"team2Score"`
	Team2Wickets  *int      `json:"team2Wickets"`
	Team2Overs    *float64  `json:"team2Overs"`
	CreatedAt     time.Time `json:"createdAt"`
}

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Email     *string   `json:"email"`
	Role      string    `json:"role"` // user, admin
	CreatedAt time.Time `json:"createdAt"`
}

// ChatMessage is one side of a chatbot exchange. Response is unused but
// kept for wire compatibility with existing clients.
type ChatMessage struct {
	ID            int       `json:"id"`
	UserID        *int      `json:"userId"`
	Message       string    `json:"message"`
	IsUserMessage bool      `json:"isUserMessage"`
	Response      *string   `json:"response"`
	CreatedAt     time.Time `json:"createdAt"`
}
