package models

// ScrapedMatch is a fixture row as pulled from the schedule source.
// Team and venue are names, resolved against the store at ingest time.
type ScrapedMatch struct {
	Team1 string `json:"team1"`
	Team2 string `json:"team2"`
	Venue string `json:"venue"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// ScrapedPlayerStats is a season stat line for one player.
type ScrapedPlayerStats struct {
	Name       string  `json:"name"`
	Team       string  `json:"team"`
	Matches    int     `json:"matches"`
	Runs       int     `json:"runs"`
	Average    float64 `json:"average"`
	StrikeRate float64 `json:"strikeRate"`
	Wickets    int     `json:"wickets"`
	Economy    float64 `json:"economy"`
}
