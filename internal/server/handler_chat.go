package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"agriconnect-be/internal/chat"
	"agriconnect-be/internal/utils"
)

type chatRequest struct {
	Messages []chat.Message `json:"messages"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "Messages must be an array", http.StatusBadRequest)
		return
	}

	reply, err := s.chats.Chat(r.Context(), req.Messages)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrInvalidMessages):
			utils.WriteJSONError(w, "Messages must be an array", http.StatusBadRequest)
		case errors.Is(err, chat.ErrRateLimited):
			utils.WriteJSONError(w, "AI service is currently busy. Please try again in a moment.", http.StatusTooManyRequests)
		case errors.Is(err, chat.ErrPaymentRequired):
			utils.WriteJSONError(w, "AI service quota exhausted. Please try again later.", http.StatusPaymentRequired)
		case errors.Is(err, chat.ErrNotConfigured):
			utils.WriteJSONError(w, "AI service not configured. Please contact support.", http.StatusInternalServerError)
		default:
			utils.WriteJSONError(w, "Failed to get response from AI service.", http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, reply)
}
