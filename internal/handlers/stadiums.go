package handlers

import (
	"net/http"

	"github.com/cricsight/prediction-api/internal/models"
)

// ListStadiums returns all stadiums
// @Summary List Stadiums
// @Tags Stadiums
// @Produce json
// @Success 200 {array} models.Stadium
// @Router /stadiums [get]
func (h *Handler) ListStadiums(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, h.store.ListStadiums())
}

// GetStadium returns one stadium by id
// @Summary Get Stadium
// @Tags Stadiums
// @Produce json
// @Param id path int true "Stadium ID"
// @Success 200 {object} models.Stadium
// @Failure 404 {object} map[string]string "Not Found"
// @Router /stadiums/{id} [get]
func (h *Handler) GetStadium(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid stadium id")
		return
	}

	stadium, err := h.store.GetStadium(id)
	if err != nil {
		h.notFoundOr500(w, err, "Stadium not found", "Failed to fetch stadium")
		return
	}

	h.jsonResponse(w, http.StatusOK, stadium)
}

// CreateStadium registers a new stadium
// @Summary Create Stadium
// @Tags Stadiums
// @Accept json
// @Produce json
// @Param body body models.CreateStadiumRequest true "Stadium"
// @Success 201 {object} models.Stadium
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /stadiums [post]
func (h *Handler) CreateStadium(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStadiumRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := ValidateStruct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	stadium := h.store.CreateStadium(models.Stadium{
		Name:      req.Name,
		City:      req.City,
		Country:   req.Country,
		PitchType: req.PitchType,
	})

	h.jsonResponse(w, http.StatusCreated, stadium)
}
