package handlers

import (
	"net/http"

	"github.com/cricsight/prediction-api/internal/models"
)

// ListTeams returns all teams
// @Summary List Teams
// @Tags Teams
// @Produce json
// @Success 200 {array} models.Team
// @Router /teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.store.ListTeams())
}

// GetTeam returns one team by id
// @Summary Get Team
// @Tags Teams
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} models.Team
// @Failure 404 {object} map[string]string "Not Found"
// @Router /teams/{id} [get]
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid team id")
		return
	}

	team, err := h.store.GetTeam(id)
	if err != nil {
		h.notFoundOr500(w, err, "Team not found", "Failed to fetch team")
		return
	}

	h.jsonResponse(w, http.StatusOK, team)
}

// CreateTeam registers a new team
// @Summary Create Team
// @Tags Teams
// @Accept json
// @Produce json
// @Param body body models.CreateTeamRequest true "Team"
// @Success 201 {object} models.Team
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /teams [post]
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTeamRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := ValidateStruct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	team := h.store.CreateTeam(models.Team{
		Name:      req.Name,
		ShortName: req.ShortName,
		LogoURL:   req.LogoURL,
		HomeVenue: req.HomeVenue,
	})

	h.jsonResponse(w, http.StatusCreated, team)
}
