package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"cineai/models"
	metadatapkg "cineai/services/metadata"
)

type movieService interface {
	TrendingMovies(context.Context) ([]models.Movie, error)
	ClassicMovies(context.Context) ([]models.Movie, error)
	BuzzPredictions(context.Context) ([]models.MoviePrediction, error)
	RawPredictions(context.Context) ([]models.RawMoviePrediction, error)
}

var _ movieService = (*metadatapkg.Service)(nil)

type MoviesHandler struct {
	Service movieService
}

func NewMoviesHandler(s movieService) *MoviesHandler {
	return &MoviesHandler{Service: s}
}

func (h *MoviesHandler) Trending(w http.ResponseWriter, r *http.Request) {
	movies, err := h.Service.TrendingMovies(r.Context())
	if err != nil {
		log.Printf("[movies] trending failed: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(movies)
}

func (h *MoviesHandler) Classics(w http.ResponseWriter, r *http.Request) {
	movies, err := h.Service.ClassicMovies(r.Context())
	if err != nil {
		log.Printf("[movies] classics failed: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(movies)
}

// Predictions serves the buzz-weighted strategy by default; strategy=raw
// selects the raw-popularity strategy instead.
func (h *MoviesHandler) Predictions(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("strategy") == "raw" {
		preds, err := h.Service.RawPredictions(r.Context())
		if err != nil {
			log.Printf("[movies] raw predictions failed: %v", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(preds)
		return
	}

	preds, err := h.Service.BuzzPredictions(r.Context())
	if err != nil {
		log.Printf("[movies] predictions failed: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(preds)
}
