package handlers

import (
	"net/http"

	"github.com/cricsight/prediction-api/internal/models"
	"github.com/cricsight/prediction-api/internal/store"
)

// ListMatches returns matches, optionally filtered to upcoming or completed
// @Summary List Matches
// @Tags Matches
// @Produce json
// @Param type query string false "upcoming or completed"
// @Param limit query int false "Max results for filtered queries"
// @Success 200 {array} models.Match
// @Router /matches [get]
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	limit, hasLimit, err := queryInt(r, "limit")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid limit")
		return
	}
	if !hasLimit || limit < 0 {
		limit = store.NoLimit
	}

	switch r.URL.Query().Get("type") {
	case "upcoming":
		h.jsonResponse(w, http.StatusOK, h.store.UpcomingMatches(limit))
	case "completed":
		h.jsonResponse(w, http.StatusOK, h.store.CompletedMatches(limit))
	default:
		h.jsonResponse(w, http.StatusOK, h.store.ListMatches())
	}
}

// GetMatch returns one match by id
// @Summary Get Match
// @Tags Matches
// @Produce json
// @Param id path int true "Match ID"
// @Success 200 {object} models.Match
// @Failure 404 {object} map[string]string "Not Found"
// @Router /matches/{id} [get]
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid match id")
		return
	}

	match, err := h.store.GetMatch(id)
	if err != nil {
		h.notFoundOr500(w, err, "Match not found", "Failed to fetch match")
		return
	}

	h.jsonResponse(w, http.StatusOK, match)
}

// CreateMatch schedules a new match
// @Summary Create Match
// @Tags Matches
// @Accept json
// @Produce json
// @Param body body models.CreateMatchRequest true "Match"
// @Success 201 {object} models.Match
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /matches [post]
func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMatchRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := ValidateStruct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Team1ID == req.Team2ID {
		h.errorResponse(w, http.StatusBadRequest, "A match needs two different teams")
		return
	}

	for _, teamID := range []int{req.Team1ID, req.Team2ID} {
		if _, err := h.store.GetTeam(teamID); err != nil {
			h.notFoundOr500(w, err, "Team not found", "Failed to fetch team")
			return
		}
	}
	if req.StadiumID != nil {
		if _, err := h.store.GetStadium(*req.StadiumID); err != nil {
			h.notFoundOr500(w, err, "Stadium not found", "Failed to fetch stadium")
			return
		}
	}

	match := h.store.CreateMatch(models.Match{
		Team1ID:   req.Team1ID,
		Team2ID:   req.Team2ID,
		StadiumID: req.StadiumID,
		MatchDate: req.MatchDate,
		MatchType: req.MatchType,
		Season:    req.Season,
	})

	h.jsonResponse(w, http.StatusCreated, match)
}
