// Seeder posts a small demo dataset at a running server and triggers a
// match prediction, useful for smoke-testing a fresh deployment that was
// started with SEED_DATA=false.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const API_URL = "http://localhost:8080/api"

type team struct {
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	HomeVenue string `json:"homeVenue,omitempty"`
}

type match struct {
	Team1ID   int       `json:"team1Id"`
	Team2ID   int       `json:"team2Id"`
	MatchDate time.Time `json:"matchDate"`
	Season    int       `json:"season"`
}

type generateReq struct {
	MatchID int `json:"matchId"`
}

func main() {
	client := &http.Client{Timeout: 5 * time.Second}

	team1ID := post(client, "/teams", team{Name: "Gujarat Titans", ShortName: "GT", HomeVenue: "Narendra Modi Stadium"})
	team2ID := post(client, "/teams", team{Name: "Lucknow Super Giants", ShortName: "LSG", HomeVenue: "Ekana Cricket Stadium"})
	fmt.Printf("Created teams %d and %d\n", team1ID, team2ID)

	matchID := post(client, "/matches", match{
		Team1ID:   team1ID,
		Team2ID:   team2ID,
		MatchDate: time.Now().Add(72 * time.Hour),
		Season:    time.Now().Year(),
	})
	fmt.Printf("Created match %d\n", matchID)

	predID := post(client, "/predictions/generate", generateReq{MatchID: matchID})
	fmt.Printf("Generated prediction %d\n", predID)
}

// post sends a JSON body and returns the id field of the response.
func post(client *http.Client, path string, body interface{}) int {
	payload, err := json.Marshal(body)
	if err != nil {
		log.Fatalf("Failed to marshal request for %s: %v", path, err)
	}

	resp, err := client.Post(API_URL+path, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		log.Fatalf("Request to %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Fatalf("Request to %s returned %s: %s", path, resp.Status, raw)
	}

	var parsed struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Fatalf("Failed to decode response from %s: %v", path, err)
	}
	return parsed.ID
}
