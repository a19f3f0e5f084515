package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"cineai/models"
	metadatapkg "cineai/services/metadata"
)

type videoService interface {
	TrendingVideos(context.Context) ([]models.Track, error)
}

var _ videoService = (*metadatapkg.Service)(nil)

type VideosHandler struct {
	Service videoService
}

func NewVideosHandler(s videoService) *VideosHandler {
	return &VideosHandler{Service: s}
}

func (h *VideosHandler) Trending(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.Service.TrendingVideos(r.Context())
	if err != nil {
		log.Printf("[videos] trending failed: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tracks)
}
