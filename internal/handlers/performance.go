package handlers

import (
	"net/http"

	"github.com/cricsight/prediction-api/internal/models"
)

// ListPlayerPerfPredictions returns performance predictions by match or player
// @Summary List Player Performance Predictions
// @Tags Predictions
// @Produce json
// @Param matchId query int false "Filter by match"
// @Param playerId query int false "Filter by player"
// @Success 200 {array} models.PlayerPerformancePrediction
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /player-performance-predictions [get]
func (h *Handler) ListPlayerPerfPredictions(w http.ResponseWriter, r *http.Request) {
	matchID, hasMatch, err := queryInt(r, "matchId")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid matchId")
		return
	}
	playerID, hasPlayer, err := queryInt(r, "playerId")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid playerId")
		return
	}

	switch {
	case hasMatch:
		h.jsonResponse(w, http.StatusOK, h.store.ListPlayerPerfPredictionsByMatch(matchID))
	case hasPlayer:
		h.jsonResponse(w, http.StatusOK, h.store.ListPlayerPerfPredictionsByPlayer(playerID))
	default:
		h.errorResponse(w, http.StatusBadRequest, "Either matchId or playerId is required")
	}
}

// CreatePlayerPerfPrediction stores a manually supplied performance prediction
// @Summary Create Player Performance Prediction
// @Tags Predictions
// @Accept json
// @Produce json
// @Param body body models.CreatePlayerPerfPredictionRequest true "Prediction"
// @Success 201 {object} models.PlayerPerformancePrediction
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /player-performance-predictions [post]
func (h *Handler) CreatePlayerPerfPrediction(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlayerPerfPredictionRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := ValidateStruct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	pred := h.store.CreatePlayerPerfPrediction(models.PlayerPerformancePrediction{
		MatchID:               req.MatchID,
		PlayerID:              req.PlayerID,
		PredictedRunsScored:   req.PredictedRunsScored,
		PredictedBallsFaced:   req.PredictedBallsFaced,
		PredictedFours:        req.PredictedFours,
		PredictedSixes:        req.PredictedSixes,
		PredictedOvers:        req.PredictedOvers,
		PredictedRunsConceded: req.PredictedRunsConceded,
		PredictedWickets:      req.PredictedWickets,
		PredictedMaidens:      req.PredictedMaidens,
		Confidence:            req.Confidence,
		Reasoning:             req.Reasoning,
	})

	h.jsonResponse(w, http.StatusCreated, pred)
}

// GeneratePlayerPerfPrediction runs the engine for one player in a match
// @Summary Generate Player Performance Prediction
// @Tags Predictions
// @Accept json
// @Produce json
// @Param body body models.GeneratePlayerPredictionRequest true "Match and Player"
// @Success 200 {object} models.PlayerPerformancePrediction
// @Failure 404 {object} map[string]string "Not Found"
// @Router /player-performance-predictions/generate [post]
func (h *Handler) GeneratePlayerPerfPrediction(w http.ResponseWriter, r *http.Request) {
	var req models.GeneratePlayerPredictionRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := ValidateStruct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	match, err := h.store.GetMatch(req.MatchID)
	if err != nil {
		h.notFoundOr500(w, err, "Match not found", "Failed to fetch match")
		return
	}
	player, err := h.store.GetPlayer(req.PlayerID)
	if err != nil {
		h.notFoundOr500(w, err, "Player not found", "Failed to fetch player")
		return
	}

	pred := h.prediction.PredictPlayerPerformance(match, player)
	pred.Reasoning = h.narrative.PlayerExplanation(pred, player)

	saved := h.store.CreatePlayerPerfPrediction(pred)
	h.jsonResponse(w, http.StatusOK, saved)
}

// GenerateSquadPredictions runs the engine for every player of a team
// @Summary Generate Squad Performance Predictions
// @Tags Predictions
// @Accept json
// @Produce json
// @Param body body models.GenerateSquadPredictionRequest true "Match and Team"
// @Success 200 {array} models.PlayerPerformancePrediction
// @Failure 404 {object} map[string]string "Not Found"
// @Router /player-performance-predictions/generate-squad [post]
func (h *Handler) GenerateSquadPredictions(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateSquadPredictionRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := ValidateStruct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	match, err := h.store.GetMatch(req.MatchID)
	if err != nil {
		h.notFoundOr500(w, err, "Match not found", "Failed to fetch match")
		return
	}
	if match.Team1ID != req.TeamID && match.Team2ID != req.TeamID {
		h.errorResponse(w, http.StatusBadRequest, "Team is not playing in this match")
		return
	}

	players := h.store.ListPlayersByTeam(req.TeamID)
	if len(players) == 0 {
		h.errorResponse(w, http.StatusNotFound, "No players found for team")
		return
	}

	preds, err := h.prediction.PredictSquad(r.Context(), match, players)
	if err != nil {
		h.logger.Errorw("Failed to generate squad predictions", "error", err, "matchId", match.ID, "teamId", req.TeamID)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to generate squad predictions")
		return
	}

	saved := make([]models.PlayerPerformancePrediction, 0, len(preds))
	for i, pred := range preds {
		pred.Reasoning = h.narrative.PlayerExplanation(pred, players[i])
		saved = append(saved, h.store.CreatePlayerPerfPrediction(pred))
	}

	h.jsonResponse(w, http.StatusOK, saved)
}
