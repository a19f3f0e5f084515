package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"cineai/models"
)

type fakeMovieService struct {
	trending []models.Movie
	classics []models.Movie
	buzz     []models.MoviePrediction
	raw      []models.RawMoviePrediction
	err      error

	rawCalled  bool
	buzzCalled bool
}

func (f *fakeMovieService) TrendingMovies(context.Context) ([]models.Movie, error) {
	return f.trending, f.err
}

func (f *fakeMovieService) ClassicMovies(context.Context) ([]models.Movie, error) {
	return f.classics, f.err
}

func (f *fakeMovieService) BuzzPredictions(context.Context) ([]models.MoviePrediction, error) {
	f.buzzCalled = true
	return f.buzz, f.err
}

func (f *fakeMovieService) RawPredictions(context.Context) ([]models.RawMoviePrediction, error) {
	f.rawCalled = true
	return f.raw, f.err
}

func TestMoviesTrending(t *testing.T) {
	fake := &fakeMovieService{trending: []models.Movie{{ID: 1, Title: "Dune"}}}
	h := NewMoviesHandler(fake)

	req := httptest.NewRequest(http.MethodGet, "/api/movies/trending", nil)
	rec := httptest.NewRecorder()
	h.Trending(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("content type = %q", got)
	}
	var movies []models.Movie
	if err := json.NewDecoder(rec.Body).Decode(&movies); err != nil {
		t.Fatal(err)
	}
	if len(movies) != 1 || movies[0].Title != "Dune" {
		t.Fatalf("movies = %+v", movies)
	}
}

func TestMoviesTrendingError(t *testing.T) {
	fake := &fakeMovieService{err: errors.New("upstream down")}
	h := NewMoviesHandler(fake)

	req := httptest.NewRequest(http.MethodGet, "/api/movies/trending", nil)
	rec := httptest.NewRecorder()
	h.Trending(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "upstream down" {
		t.Fatalf("body = %v", body)
	}
}

func TestPredictionsStrategySelection(t *testing.T) {
	fake := &fakeMovieService{
		buzz: []models.MoviePrediction{{Language: "English"}},
		raw:  []models.RawMoviePrediction{{ID: 1}},
	}
	h := NewMoviesHandler(fake)

	req := httptest.NewRequest(http.MethodGet, "/api/movies/predictions", nil)
	rec := httptest.NewRecorder()
	h.Predictions(rec, req)
	if !fake.buzzCalled || fake.rawCalled {
		t.Fatal("default must use the buzz-weighted strategy")
	}

	fake.buzzCalled, fake.rawCalled = false, false
	req = httptest.NewRequest(http.MethodGet, "/api/movies/predictions?strategy=raw", nil)
	rec = httptest.NewRecorder()
	h.Predictions(rec, req)
	if !fake.rawCalled || fake.buzzCalled {
		t.Fatal("strategy=raw must use the raw-popularity strategy")
	}
	var preds []models.RawMoviePrediction
	if err := json.NewDecoder(rec.Body).Decode(&preds); err != nil {
		t.Fatal(err)
	}
	if len(preds) != 1 || preds[0].ID != 1 {
		t.Fatalf("preds = %+v", preds)
	}
}

func TestClassicsOK(t *testing.T) {
	fake := &fakeMovieService{classics: []models.Movie{{ID: 2, Title: "Casablanca"}}}
	h := NewMoviesHandler(fake)

	req := httptest.NewRequest(http.MethodGet, "/api/movies/classic", nil)
	rec := httptest.NewRecorder()
	h.Classics(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

// The classics path is singular; mux matches exact paths, so the plural
// variant must not resolve.
func TestClassicRoutePath(t *testing.T) {
	fake := &fakeMovieService{classics: []models.Movie{{ID: 2, Title: "Casablanca"}}}
	h := NewMoviesHandler(fake)
	r := mux.NewRouter()
	r.HandleFunc("/api/movies/classic", h.Classics).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies/classic", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/movies/classic status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies/classics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /api/movies/classics status = %d, want 404", rec.Code)
	}
}
