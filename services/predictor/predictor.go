// Package predictor derives hit/flop verdicts from buzz and popularity
// signals. Two independent formulas coexist on purpose: the buzz-weighted
// strategy consumes an already-normalized movie, the raw-popularity
// strategy consumes a catalog record directly. They produce materially
// different numeric ranges and must not be unified.
package predictor

import (
	"math"

	"cineai/models"
)

const (
	confidenceMin = 60
	confidenceMax = 95
)

// PredictBuzz is the buzz-weighted strategy. The weighted score combines
// the buzz score with the instagram (thousands) and youtube (millions)
// magnitudes; a zero magnitude simply contributes nothing.
func PredictBuzz(movie models.Movie) models.MoviePrediction {
	buzz := movie.Buzz
	score := float64(buzz.Score)*0.4 + buzz.InstagramPosts.Numeric()*0.3 + buzz.YoutubeViews.Numeric()*0.3

	hit := score > 60
	base := 10 + score*0.5
	if hit {
		base = 50 + (score-60)*2
	}
	collections := math.Round(base*10) / 10

	// Budget is assumed at 30% of collections.
	budget := collections * 0.3
	roi := int(math.Round((collections - budget) / budget * 100))
	if roi < -50 {
		roi = -50
	}

	confidence := clamp(int(math.Round(score+20)), confidenceMin, confidenceMax)

	return models.MoviePrediction{
		Movie:    movie,
		Language: DetectLanguage(movie.Title, movie.OriginalLanguage),
		Prediction: models.BuzzVerdict{
			Hit:         hit,
			Confidence:  confidence,
			Collections: collections,
			ROI:         roi,
		},
	}
}

// PredictRaw is the raw-popularity strategy, applied straight to a catalog
// record without normalization.
func PredictRaw(item models.CatalogItem) models.RawMoviePrediction {
	score := item.Popularity*0.4 + item.VoteAverage*10*0.4 + math.Log(float64(item.VoteCount)+1)*2*0.2

	hit := score > 50
	var collections int
	if hit {
		collections = int(math.Round(math.Max(50, score*2)))
	} else {
		collections = int(math.Round(math.Max(10, score*0.5)))
	}

	returns := int(math.Round(50 + score))
	if hit {
		returns = int(math.Round(150 + (score-50)*2))
	}
	if returns > 500 {
		returns = 500
	}

	confidence := clamp(int(math.Round(score*1.5)), confidenceMin, confidenceMax)

	poster := "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=800&h=1200&fit=crop"
	if item.PosterPath != "" {
		poster = "https://image.tmdb.org/t/p/w500" + item.PosterPath
	}
	title := item.DisplayTitle()
	if title == "" {
		title = "Untitled"
	}
	releaseDate := item.ReleaseDate
	if releaseDate == "" {
		releaseDate = "TBD"
	}

	return models.RawMoviePrediction{
		ID:          item.ID,
		Title:       title,
		Poster:      poster,
		ReleaseDate: releaseDate,
		Language:    LanguageName(item.OriginalLanguage),
		Prediction: models.RawVerdict{
			Hit:         hit,
			Collections: collections,
			Returns:     returns,
			Confidence:  confidence,
		},
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
