package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"cineai/models"
	chatpkg "cineai/services/chat"
)

type chatService interface {
	Post(topic, author, text string) (models.ChatMessage, error)
	Messages(topic string) []models.ChatMessage
}

var _ chatService = (*chatpkg.Service)(nil)

type ChatHandler struct {
	Service chatService
}

func NewChatHandler(s chatService) *ChatHandler {
	return &ChatHandler{Service: s}
}

func (h *ChatHandler) List(w http.ResponseWriter, r *http.Request) {
	topic := mux.Vars(r)["topic"]
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.Service.Messages(topic))
}

func (h *ChatHandler) Post(w http.ResponseWriter, r *http.Request) {
	topic := mux.Vars(r)["topic"]

	var req struct {
		Author string `json:"author"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid request body"})
		return
	}

	msg, err := h.Service.Post(topic, req.Author, req.Text)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, chatpkg.ErrEmptyMessage) {
			status = http.StatusBadRequest
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(msg)
}
