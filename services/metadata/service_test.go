package metadata

import (
	"context"
	"testing"

	"cineai/models"
)

func newDemoService(t *testing.T) *Service {
	t.Helper()
	return NewService("", "", "", true)
}

func TestDemoTrendingMovies(t *testing.T) {
	s := newDemoService(t)
	movies, err := s.TrendingMovies(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(movies) != len(seedMovies) {
		t.Fatalf("got %d movies, want %d", len(movies), len(seedMovies))
	}
	if movies[0].Title != "Avatar: The Last Frontier" {
		t.Fatalf("movies[0].Title = %q", movies[0].Title)
	}
}

func TestDemoClassicsDoNotMutateSeeds(t *testing.T) {
	s := newDemoService(t)
	classics, err := s.ClassicMovies(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range classics {
		if m.Buzz.Prediction != "Vintage Favorite" {
			t.Fatalf("prediction = %q, want Vintage Favorite", m.Buzz.Prediction)
		}
	}
	// The override must land on copies, not the seed fixtures.
	if seedMovies[0].Buzz.Prediction == "Vintage Favorite" {
		t.Fatal("seed fixture was mutated")
	}
}

func TestDemoBuzzPredictions(t *testing.T) {
	s := newDemoService(t)
	preds, err := s.BuzzPredictions(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := len(seedMovies) + len(regionalSeedMovies)
	if len(preds) != want {
		t.Fatalf("got %d predictions, want %d", len(preds), want)
	}
	seen := false
	for _, p := range preds {
		if p.Movie.ID == 999001 {
			seen = true
			if p.Language != "Hindi" {
				t.Fatalf("regional seed language = %q, want Hindi", p.Language)
			}
		}
		if p.Prediction.Confidence < 60 || p.Prediction.Confidence > 95 {
			t.Fatalf("confidence %d out of [60,95]", p.Prediction.Confidence)
		}
	}
	if !seen {
		t.Fatal("regional seed 999001 missing from predictions")
	}
}

func TestDemoRawPredictions(t *testing.T) {
	s := newDemoService(t)
	preds, err := s.RawPredictions(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(preds) != len(seedMovies) {
		t.Fatalf("got %d predictions, want %d", len(preds), len(seedMovies))
	}
	for _, p := range preds {
		if p.Prediction.Returns > 500 {
			t.Fatalf("returns %d above cap", p.Prediction.Returns)
		}
	}
}

func TestDemoTracksTopicsNews(t *testing.T) {
	s := newDemoService(t)
	ctx := context.Background()

	tracks, err := s.TrendingVideos(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(tracks) != len(seedTracks) {
		t.Fatalf("got %d tracks, want %d", len(tracks), len(seedTracks))
	}

	topics, err := s.TrendingTopics(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(topics) != len(seedTopics) {
		t.Fatalf("got %d topics, want %d", len(topics), len(seedTopics))
	}

	news, err := s.TrendingNews(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(news) != len(seedNews) {
		t.Fatalf("got %d articles, want %d", len(news), len(seedNews))
	}
	if !news[0].Featured {
		t.Fatal("first article should be featured")
	}
}

func TestRawPredictionsMissingCredentials(t *testing.T) {
	s := NewService("", "", "", false)
	if _, err := s.RawPredictions(context.Background()); err == nil {
		t.Fatal("expected credentials error")
	}
}

func TestMapCatalogTrack(t *testing.T) {
	track := mapCatalogTrack(tmdbVideo{Key: "abc", Name: "Teaser", Size: 1080, movieID: 603}, 2)
	if track.ID != "603-2" {
		t.Fatalf("id = %q", track.ID)
	}
	if track.Thumbnail != "https://img.youtube.com/vi/abc/hqdefault.jpg" {
		t.Fatalf("thumbnail = %q", track.Thumbnail)
	}
	if track.Artist != "Official" || track.Duration != "3:30" {
		t.Fatalf("track = %+v", track)
	}
}

func TestMapYouTubeTrackDefaults(t *testing.T) {
	track := mapYouTubeTrack(youtubeVideo{})
	if track.Title != "Untitled" || track.Artist != "Unknown artist" {
		t.Fatalf("track = %+v", track)
	}
	if track.Movie != "Trending Music" {
		t.Fatalf("movie = %q", track.Movie)
	}
	if track.Thumbnail != trackPlaceholder {
		t.Fatalf("thumbnail = %q", track.Thumbnail)
	}
}

func TestMapNewsArticle(t *testing.T) {
	item := models.CatalogItem{ID: 9, Title: "Dune", Popularity: 40}
	if got := mapNewsArticle(item, 0); got.Category != "Breaking" || !got.Featured {
		t.Fatalf("idx 0 = %+v", got)
	}
	if got := mapNewsArticle(item, 4); got.Category != "Buzz" || got.Featured {
		t.Fatalf("idx 4 = %+v", got)
	}
	if got := mapNewsArticle(item, 8); got.Category != "Update" {
		t.Fatalf("idx 8 = %+v", got)
	}

	got := mapNewsArticle(item, 0)
	if got.Reactions.Likes != 1000 {
		t.Fatalf("likes = %d, want 1000", got.Reactions.Likes)
	}
	if got.Reactions.Comments != 80 || got.Reactions.Shares != 180 {
		t.Fatalf("reactions = %+v", got.Reactions)
	}
	if got.Image != newsPlaceholder {
		t.Fatalf("image = %q, want placeholder", got.Image)
	}

	// Reaction floor for very low popularity.
	low := mapNewsArticle(models.CatalogItem{ID: 10, Title: "Small Film", Popularity: 2}, 1)
	if low.Reactions.Likes != 800 {
		t.Fatalf("likes = %d, want floor 800", low.Reactions.Likes)
	}
}
