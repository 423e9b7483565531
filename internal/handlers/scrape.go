package handlers

import (
	"net/http"

	"github.com/google/uuid"
)

// Scrape enqueues a data refresh job
// @Summary Trigger Data Scrape
// @Description Queues an async scrape of the latest schedule and player stats
// @Tags Scraping
// @Produce json
// @Success 202 {object} map[string]string "Accepted"
// @Failure 503 {object} map[string]string "Queue Full"
// @Router /scrape [post]
func (h *Handler) Scrape(w http.ResponseWriter, r *http.Request) {
	jobID := uuid.New().String()

	if !h.pool.Enqueue(jobID) {
		h.logger.Warnw("scrape queue full, rejecting job", "jobId", jobID)
		h.errorResponse(w, http.StatusServiceUnavailable, "Scrape queue is full, try again later")
		return
	}

	h.logger.Infow("scrape job enqueued", "jobId", jobID)
	h.jsonResponse(w, http.StatusAccepted, map[string]string{
		"status":  "accepted",
		"message": "Data scraping initiated",
		"jobId":   jobID,
	})
}
