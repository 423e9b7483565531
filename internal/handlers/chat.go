package handlers

import (
	"net/http"

	"github.com/cricsight/prediction-api/internal/models"
)

// Chat answers a dashboard chat message
// @Summary Chat with the Analyst Bot
// @Description Persists the user message, generates a reply, persists and returns both
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body models.ChatRequest true "Message"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /chat [post]
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := h.decodeBody(w, r, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := ValidateStruct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Message is required")
		return
	}

	userMessage := h.store.CreateChatMessage(models.ChatMessage{
		UserID:        req.UserID,
		Message:       req.Message,
		IsUserMessage: true,
	})

	reply := h.narrative.ChatReply(req.Message)

	botResponse := h.store.CreateChatMessage(models.ChatMessage{
		UserID:        req.UserID,
		Message:       reply,
		IsUserMessage: false,
	})

	h.jsonResponse(w, http.StatusOK, models.ChatResponse{
		UserMessage: userMessage,
		BotResponse: botResponse,
	})
}

// ChatHistory returns the chat transcript for a user
// @Summary Get Chat History
// @Tags Chat
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} models.ChatMessage
// @Router /chat/{id} [get]
func (h *Handler) ChatHistory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	h.jsonResponse(w, http.StatusOK, h.store.ListChatMessagesByUser(id))
}
