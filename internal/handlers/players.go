package handlers

import (
	"net/http"

	"github.com/cricsight/prediction-api/internal/models"
)

// ListPlayers returns all players, optionally filtered by team
// @Summary List Players
// @Tags Players
// @Produce json
// @Param teamId query int false "Filter by team"
// @Success 200 {array} models.Player
// @Router /players [get]
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	teamID, ok, err := queryInt(r, "teamId")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid teamId")
		return
	}

	if ok {
		h.jsonResponse(w, http.StatusOK, h.store.ListPlayersByTeam(teamID))
		return
	}
	h.jsonResponse(w, http.StatusOK, h.store.ListPlayers())
}

// GetPlayer returns one player by id
// @Summary Get Player
// @Tags Players
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} models.Player
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{id} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid player id")
		return
	}

	player, err := h.store.GetPlayer(id)
	if err != nil {
		h.notFoundOr500(w, err, "Player not found", "Failed to fetch player")
		return
	}

	h.jsonResponse(w, http.StatusOK, player)
}

// CreatePlayer registers a new player
// @Summary Create Player
// @Tags Players
// @Accept json
// @Produce json
// @Param body body models.CreatePlayerRequest true "Player"
// @Success 201 {object} models.Player
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /players [post]
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePlayerRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := ValidateStruct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	player := h.store.CreatePlayer(models.Player{
		Name:         req.Name,
		TeamID:       req.TeamID,
		Role:         req.Role,
		BattingStyle: req.BattingStyle,
		BowlingStyle: req.BowlingStyle,
		ImageURL:     req.ImageURL,
		Country:      req.Country,
		IsCaptain:    req.IsCaptain,
	})

	h.jsonResponse(w, http.StatusCreated, player)
}
