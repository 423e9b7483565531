package handlers

import (
	"errors"
	"net/http"

	"github.com/cricsight/prediction-api/internal/models"
	"github.com/cricsight/prediction-api/internal/store"
)

// ListPredictions returns all predictions, or the one for a given match
// @Summary List Predictions
// @Tags Predictions
// @Produce json
// @Param matchId query int false "Filter by match"
// @Success 200 {array} models.Prediction
// @Router /predictions [get]
func (h *Handler) ListPredictions(w http.ResponseWriter, r *http.Request) {
	matchID, ok, err := queryInt(r, "matchId")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid matchId")
		return
	}

	if ok {
		pred, err := h.store.PredictionByMatch(matchID)
		if errors.Is(err, store.ErrNotFound) {
			// Matches without a prediction yet are not an error for the
			// dashboard, it shows a generate button instead.
			h.jsonResponse(w, http.StatusOK, nil)
			return
		}
		h.jsonResponse(w, http.StatusOK, pred)
		return
	}

	h.jsonResponse(w, http.StatusOK, h.store.ListPredictions())
}

// GetPrediction returns one prediction by id
// @Summary Get Prediction
// @Tags Predictions
// @Produce json
// @Param id path int true "Prediction ID"
// @Success 200 {object} models.Prediction
// @Failure 404 {object} map[string]string "Not Found"
// @Router /predictions/{id} [get]
func (h *Handler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid prediction id")
		return
	}

	pred, err := h.store.GetPrediction(id)
	if err != nil {
		h.notFoundOr500(w, err, "Prediction not found", "Failed to fetch prediction")
		return
	}

	h.jsonResponse(w, http.StatusOK, pred)
}

// CreatePrediction stores a manually supplied prediction
// @Summary Create Prediction
// @Tags Predictions
// @Accept json
// @Produce json
// @Param body body models.CreatePredictionRequest true "Prediction"
// @Success 201 {object} models.Prediction
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /predictions [post]
func (h *Handler) CreatePrediction(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePredictionRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := ValidateStruct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	pred := h.store.CreatePrediction(models.Prediction{
		MatchID:               req.MatchID,
		PredictedWinnerID:     req.PredictedWinnerID,
		WinProbability:        req.WinProbability,
		Team1PredictedScore:   req.Team1PredictedScore,
		Team1PredictedWickets: req.Team1PredictedWickets,
		Team2PredictedScore:   req.Team2PredictedScore,
		Team2PredictedWickets: req.Team2PredictedWickets,
		Reasoning:             req.Reasoning,
		Confidence:            req.Confidence,
		DetailedStats:         req.DetailedStats,
	})

	h.jsonResponse(w, http.StatusCreated, pred)
}

// GeneratePrediction runs the prediction engine for a match
// @Summary Generate Match Prediction
// @Description Returns the existing prediction if one was already generated
// @Tags Predictions
// @Accept json
// @Produce json
// @Param body body models.GeneratePredictionRequest true "Match"
// @Success 200 {object} models.Prediction
// @Failure 404 {object} map[string]string "Not Found"
// @Router /predictions/generate [post]
func (h *Handler) GeneratePrediction(w http.ResponseWriter, r *http.Request) {
	var req models.GeneratePredictionRequest
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

	team1, err := h.store.GetTeam(match.Team1ID)
	if err != nil {
		h.notFoundOr500(w, err, "Team not found", "Failed to fetch team")
		return
	}
	team2, err := h.store.GetTeam(match.Team2ID)
	if err != nil {
		h.notFoundOr500(w, err, "Team not found", "Failed to fetch team")
		return
	}

	var stadium *models.Stadium
	if match.StadiumID != nil {
		st, err := h.store.GetStadium(*match.StadiumID)
		if err != nil {
			h.notFoundOr500(w, err, "Stadium not found", "Failed to fetch stadium")
			return
		}
		stadium = &st
	}

	pred := h.prediction.PredictMatch(match, team1, team2, stadium)
	pred.Reasoning = h.narrative.MatchExplanation(pred, match, team1, team2, stadium)

	saved, created := h.store.CreatePredictionForMatch(pred)
	if !created {
		h.logger.Infow("prediction already exists", "matchId", match.ID, "predictionId", saved.ID)
	}

	h.jsonResponse(w, http.StatusOK, saved)
}
