// Package store implements the in-memory entity store that backs the API.
// It is the single source of truth for the process lifetime: keyed
// collections per entity type with auto-incrementing ids, guarded by one
// RWMutex so concurrent request handlers never mint duplicate ids.
package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/cricsight/prediction-api/internal/models"
)

// ErrNotFound is returned by lookups and updates when no entity has the
// given id. Handlers translate it to a 404.
var ErrNotFound = errors.New("store: not found")

// NoLimit disables the result cap on the match list queries.
const NoLimit = -1

type Store struct {
	mu sync.RWMutex

	users             map[int]models.User
	teams             map[int]models.Team
	players           map[int]models.Player
	stadiums          map[int]models.Stadium
	matches           map[int]models.Match
	predictions       map[int]models.Prediction
	performances      map[int]models.PlayerPerformance
	perfPredictions   map[int]models.PlayerPerformancePrediction
	chatMessages      map[int]models.ChatMessage

	nextUserID           int
	nextTeamID           int
	nextPlayerID         int
	nextStadiumID        int
	nextMatchID          int
	nextPredictionID     int
	nextPerformanceID    int
	nextPerfPredictionID int
	nextChatMessageID    int

	now func() time.Time
}

// New returns an empty store. Call Seed to install the sample dataset.
func New() *Store {
	return &Store{
		users:           make(map[int]models.User),
		teams:           make(map[int]models.Team),
		players:         make(map[int]models.Player),
		stadiums:        make(map[int]models.Stadium),
		matches:         make(map[int]models.Match),
		predictions:     make(map[int]models.Prediction),
		performances:    make(map[int]models.PlayerPerformance),
		perfPredictions: make(map[int]models.PlayerPerformancePrediction),
		chatMessages:    make(map[int]models.ChatMessage),

		nextUserID:           1,
		nextTeamID:           1,
		nextPlayerID:         1,
		nextStadiumID:        1,
		nextMatchID:          1,
		nextPredictionID:     1,
		nextPerformanceID:    1,
		nextPerfPredictionID: 1,
		nextChatMessageID:    1,

		now: time.Now,
	}
}

// User operations

func (s *Store) CreateUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextUserID
	s.nextUserID++
	u.CreatedAt = s.now()
	if u.Role == "" {
		u.Role = "user"
	}
	s.users[u.ID] = u
	return u
}

func (s *Store) GetUser(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (s *Store) GetUserByUsername(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.users) {
		if s.users[id].Username == username {
			return s.users[id], nil
		}
	}
	return models.User{}, ErrNotFound
}

// Team operations

func (s *Store) CreateTeam(t models.Team) models.Team {
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.nextTeamID
	s.nextTeamID++
	t.CreatedAt = s.now()
	s.teams[t.ID] = t
	return t
}

func (s *Store) GetTeam(id int) (models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.teams[id]
	if !ok {
		return models.Team{}, ErrNotFound
	}
	return t, nil
}

// GetTeamByName matches on either the full name or the short name.
func (s *Store) GetTeamByName(name string) (models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.teams) {
		t := s.teams[id]
		if t.Name == name || t.ShortName == name {
			return t, nil
		}
	}
	return models.Team{}, ErrNotFound
}

func (s *Store) ListTeams() []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Team, 0, len(s.teams))
	for _, id := range sortedKeys(s.teams) {
		out = append(out, s.teams[id])
	}
	return out
}

// Player operations

func (s *Store) CreatePlayer(p models.Player) models.Player {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextPlayerID
	s.nextPlayerID++
	p.CreatedAt = s.now()
	s.players[p.ID] = p
	return p
}

func (s *Store) GetPlayer(id int) (models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.players[id]
	if !ok {
		return models.Player{}, ErrNotFound
	}
	return p, nil
}

func (s *Store) ListPlayers() []models.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Player, 0, len(s.players))
	for _, id := range sortedKeys(s.players) {
		out = append(out, s.players[id])
	}
	return out
}

func (s *Store) ListPlayersByTeam(teamID int) []models.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Player{}
	for _, id := range sortedKeys(s.players) {
		p := s.players[id]
		if p.TeamID != nil && *p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out
}

// Stadium operations

func (s *Store) CreateStadium(st models.Stadium) models.Stadium {
	s.mu.Lock()
	defer s.mu.Unlock()

	st.ID = s.nextStadiumID
	s.nextStadiumID++
	st.CreatedAt = s.now()
	s.stadiums[st.ID] = st
	return st
}

func (s *Store) GetStadium(id int) (models.Stadium, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.stadiums[id]
	if !ok {
		return models.Stadium{}, ErrNotFound
	}
	return st, nil
}

func (s *Store) ListStadiums() []models.Stadium {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Stadium, 0, len(s.stadiums))
	for _, id := range sortedKeys(s.stadiums) {
		out = append(out, s.stadiums[id])
	}
	return out
}

// Match operations

func (s *Store) CreateMatch(m models.Match) models.Match {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextMatchID
	s.nextMatchID++
	m.CreatedAt = s.now()
	if m.MatchType == "" {
		m.MatchType = "league"
	}
	s.matches[m.ID] = m
	return m
}

func (s *Store) GetMatch(id int) (models.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[id]
	if !ok {
		return models.Match{}, ErrNotFound
	}
	return m, nil
}

func (s *Store) ListMatches() []models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Match, 0, len(s.matches))
	for _, id := range sortedKeys(s.matches) {
		out = append(out, s.matches[id])
	}
	return out
}

// UpcomingMatches returns matches that are not completed and whose date is
// now or later, soonest first. A match dated exactly now counts as upcoming.
// limit caps the result after sorting; 0 yields an empty list, NoLimit
// disables the cap.
func (s *Store) UpcomingMatches(limit int) []models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	out := []models.Match{}
	for _, id := range sortedKeys(s.matches) {
		m := s.matches[id]
		if !m.IsCompleted && !m.MatchDate.Before(now) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchDate.Before(out[j].MatchDate)
	})
	return capped(out, limit)
}

// CompletedMatches returns completed matches, most recent first.
func (s *Store) CompletedMatches(limit int) []models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Match{}
	for _, id := range sortedKeys(s.matches) {
		m := s.matches[id]
		if m.IsCompleted {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchDate.After(out[j].MatchDate)
	})
	return capped(out, limit)
}

// MatchUpdate carries the optional result fields for UpdateMatch. Nil
// fields are left untouched.
type MatchUpdate struct {
	IsCompleted   *bool
	TossWinnerID  *int
	TossDecision  *string
	WinnerID      *int
	WinMargin     *int
	WinMarginType *string
	Team1Score    *int
	Team1Wickets  *int
	Team1Overs    *float64
	Team2Score    *int
	Team2Wickets  *int
	Team2Overs    *float64
}

func (s *Store) UpdateMatch(id int, upd MatchUpdate) (models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.matches[id]
	if !ok {
		return models.Match{}, ErrNotFound
	}

	if upd.IsCompleted != nil {
		m.IsCompleted = *upd.IsCompleted
	}
	if upd.TossWinnerID != nil {
		m.TossWinnerID = upd.TossWinnerID
	}
	if upd.TossDecision != nil {
		m.TossDecision = upd.TossDecision
	}
	if upd.WinnerID != nil {
		m.WinnerID = upd.WinnerID
	}
	if upd.WinMargin != nil {
		m.WinMargin = upd.WinMargin
	}
	if upd.WinMarginType != nil {
		m.WinMarginType = upd.WinMarginType
	}
	if upd.Team1Score != nil {
		m.Team1Score = upd.Team1Score
	}
	if upd.Team1Wickets != nil {
		m.Team1Wickets = upd.Team1Wickets
	}
	if upd.Team1Overs != nil {
		m.Team1Overs = upd.Team1Overs
	}
	if upd.Team2Score != nil {
		m.Team2Score = upd.Team2Score
	}
	if upd.Team2Wickets != nil {
		m.Team2Wickets = upd.Team2Wickets
	}
	if upd.Team2Overs != nil {
		m.Team2Overs = upd.Team2Overs
	}

	s.matches[id] = m
	return m, nil
}

// Prediction operations

func (s *Store) CreatePrediction(p models.Prediction) models.Prediction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertPredictionLocked(p)
}

// CreatePredictionForMatch inserts p unless a prediction for its match
// already exists, in which case the existing one is returned and created is
// false. The existence check and the insert happen under one lock, so
// concurrent generate calls for the same match cannot both insert.
func (s *Store) CreatePredictionForMatch(p models.Prediction) (models.Prediction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range sortedKeys(s.predictions) {
		if s.predictions[id].MatchID == p.MatchID {
			return s.predictions[id], false
		}
	}
	return s.insertPredictionLocked(p), true
}

func (s *Store) insertPredictionLocked(p models.Prediction) models.Prediction {
	p.ID = s.nextPredictionID
	s.nextPredictionID++
	p.PredictionDate = s.now()
	p.IsCorrect = nil
	s.predictions[p.ID] = p
	return p
}

func (s *Store) GetPrediction(id int) (models.Prediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.predictions[id]
	if !ok {
		return models.Prediction{}, ErrNotFound
	}
	return p, nil
}

func (s *Store) ListPredictions() []models.Prediction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Prediction, 0, len(s.predictions))
	for _, id := range sortedKeys(s.predictions) {
		out = append(out, s.predictions[id])
	}
	return out
}

// PredictionByMatch returns the prediction for a match, if any. Callers
// that want generate-once semantics should use CreatePredictionForMatch
// instead of checking here first.
func (s *Store) PredictionByMatch(matchID int) (models.Prediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedKeys(s.predictions) {
		if s.predictions[id].MatchID == matchID {
			return s.predictions[id], nil
		}
	}
	return models.Prediction{}, ErrNotFound
}

// PredictionUpdate carries the optional fields for UpdatePrediction.
type PredictionUpdate struct {
	Reasoning  *string
	Confidence *float64
	IsCorrect  *bool
}

func (s *Store) UpdatePrediction(id int, upd PredictionUpdate) (models.Prediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.predictions[id]
	if !ok {
		return models.Prediction{}, ErrNotFound
	}

	if upd.Reasoning != nil {
		p.Reasoning = *upd.Reasoning
	}
	if upd.Confidence != nil {
		p.Confidence = *upd.Confidence
	}
	if upd.IsCorrect != nil {
		p.IsCorrect = upd.IsCorrect
	}

	s.predictions[id] = p
	return p, nil
}

// Player performance operations

func (s *Store) CreatePlayerPerformance(p models.PlayerPerformance) models.PlayerPerformance {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextPerformanceID
	s.nextPerformanceID++
	p.CreatedAt = s.now()
	s.performances[p.ID] = p
	return p
}

func (s *Store) GetPlayerPerformance(id int) (models.PlayerPerformance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.performances[id]
	if !ok {
		return models.PlayerPerformance{}, ErrNotFound
	}
	return p, nil
}

func (s *Store) ListPlayerPerformancesByMatch(matchID int) []models.PlayerPerformance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.PlayerPerformance{}
	for _, id := range sortedKeys(s.performances) {
		if s.performances[id].MatchID == matchID {
			out = append(out, s.performances[id])
		}
	}
	return out
}

func (s *Store) ListPlayerPerformancesByPlayer(playerID int) []models.PlayerPerformance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.PlayerPerformance{}
	for _, id := range sortedKeys(s.performances) {
		if s.performances[id].PlayerID == playerID {
			out = append(out, s.performances[id])
		}
	}
	return out
}

// Player performance prediction operations

func (s *Store) CreatePlayerPerfPrediction(p models.PlayerPerformancePrediction) models.PlayerPerformancePrediction {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextPerfPredictionID
	s.nextPerfPredictionID++
	p.PredictionDate = s.now()
	s.perfPredictions[p.ID] = p
	return p
}

func (s *Store) GetPlayerPerfPrediction(id int) (models.PlayerPerformancePrediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.perfPredictions[id]
	if !ok {
		return models.PlayerPerformancePrediction{}, ErrNotFound
	}
	return p, nil
}

func (s *Store) ListPlayerPerfPredictionsByMatch(matchID int) []models.PlayerPerformancePrediction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.PlayerPerformancePrediction{}
	for _, id := range sortedKeys(s.perfPredictions) {
		if s.perfPredictions[id].MatchID == matchID {
			out = append(out, s.perfPredictions[id])
		}
	}
	return out
}

func (s *Store) ListPlayerPerfPredictionsByPlayer(playerID int) []models.PlayerPerformancePrediction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.PlayerPerformancePrediction{}
	for _, id := range sortedKeys(s.perfPredictions) {
		if s.perfPredictions[id].PlayerID == playerID {
			out = append(out, s.perfPredictions[id])
		}
	}
	return out
}

// Chat message operations

func (s *Store) CreateChatMessage(m models.ChatMessage) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextChatMessageID
	s.nextChatMessageID++
	m.CreatedAt = s.now()
	s.chatMessages[m.ID] = m
	return m
}

func (s *Store) ListChatMessagesByUser(userID int) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.ChatMessage{}
	for _, id := range sortedKeys(s.chatMessages) {
		m := s.chatMessages[id]
		if m.UserID != nil && *m.UserID == userID {
			out = append(out, m)
		}
	}
	return out
}

// Helpers

// sortedKeys returns map keys ascending. Ids are assigned in insertion
// order, so iterating sorted keys preserves insertion order.
func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func capped[T any](in []T, limit int) []T {
	if limit == NoLimit || limit >= len(in) {
		return in
	}
	if limit <= 0 {
		return []T{}
	}
	return in[:limit]
}
