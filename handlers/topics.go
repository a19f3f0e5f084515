package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"cineai/models"
	metadatapkg "cineai/services/metadata"
)

type feedService interface {
	TrendingTopics(context.Context) ([]models.Topic, error)
	TrendingNews(context.Context) ([]models.NewsArticle, error)
}

var _ feedService = (*metadatapkg.Service)(nil)

// FeedHandler serves the discussion-topic and news feeds.
type FeedHandler struct {
	Service feedService
}

func NewFeedHandler(s feedService) *FeedHandler {
	return &FeedHandler{Service: s}
}

func (h *FeedHandler) Topics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.Service.TrendingTopics(r.Context())
	if err != nil {
		log.Printf("[feed] topics failed: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(topics)
}

func (h *FeedHandler) News(w http.ResponseWriter, r *http.Request) {
	articles, err := h.Service.TrendingNews(r.Context())
	if err != nil {
		log.Printf("[feed] news failed: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(articles)
}
