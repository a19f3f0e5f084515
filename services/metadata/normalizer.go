package metadata

import (
	"fmt"
	"math"
	"strconv"

	"cineai/models"
)

const (
	tmdbImageBaseURL = "https://image.tmdb.org/t/p"
	tmdbPosterSize   = "w500"
	tmdbBannerSize   = "w1280"
	tmdbNewsSize     = "w780"

	posterPlaceholder = "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=800&h=1200&fit=crop"
	newsPlaceholder   = "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=1200&h=600&fit=crop"
	trackPlaceholder  = "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=200&h=200&fit=crop"
)

// genreNames maps TMDB numeric genre codes to display names. Unknown codes
// fall back to Drama.
var genreNames = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Sci-Fi",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

const fallbackGenre = "Drama"

// Buzz score bounds and sentiment thresholds.
const (
	buzzScoreMin = 40
	buzzScoreMax = 98

	sentimentPositiveMin = 85
	sentimentMixedMin    = 65
)

// Normalize converts one raw catalog record into the uniform presentation
// movie. It never fails: every absent field has a fixed default, so sparse
// upstream records are absorbed here rather than surfaced as errors.
func Normalize(item models.CatalogItem) models.Movie {
	poster := posterPlaceholder
	if item.PosterPath != "" {
		poster = tmdbImageBaseURL + "/" + tmdbPosterSize + item.PosterPath
	}
	banner := poster
	if item.BackdropPath != "" {
		banner = tmdbImageBaseURL + "/" + tmdbBannerSize + item.BackdropPath
	}

	title := item.DisplayTitle()
	if title == "" {
		title = "Untitled"
	}

	voteAverage := item.VoteAverage
	if voteAverage == 0 {
		voteAverage = 7
	}
	// Round half away from zero before formatting; FormatFloat alone
	// rounds half to even, which flips exact .x5 averages ("8.2" vs "8.3").
	rating := strconv.FormatFloat(math.Round(voteAverage*10)/10, 'f', 1, 64)

	releaseDate := item.ReleaseDate
	if releaseDate == "" {
		releaseDate = item.FirstAirDate
	}
	if releaseDate == "" {
		releaseDate = "TBD"
	}

	duration := "2h"
	if item.Runtime > 0 {
		duration = fmt.Sprintf("%d min", item.Runtime)
	}

	description := item.Overview
	if description == "" {
		description = "Synopsis to be announced."
	}

	return models.Movie{
		ID:               item.ID,
		Title:            title,
		Poster:           poster,
		Banner:           banner,
		Rating:           rating,
		ReleaseDate:      releaseDate,
		Duration:         duration,
		Genre:            mapGenres(item.GenreIDs),
		Director:         "TBD",
		Description:      description,
		OriginalLanguage: item.OriginalLanguage,
		Cast:             []models.CastMember{},
		Songs:            []models.Song{},
		Trailer:          "",
		Buzz:             synthesizeBuzz(item),
	}
}

// synthesizeBuzz derives the buzz block from vote average and popularity.
// The three reaction percentages are individually clamped but not
// normalized; their sum can land above or below 100.
func synthesizeBuzz(item models.CatalogItem) models.Buzz {
	scoreBase := item.VoteAverage
	if scoreBase == 0 {
		scoreBase = 6
	}
	score := clampInt(int(math.Round(scoreBase*10+item.Popularity/5)), buzzScoreMin, buzzScoreMax)

	sentiment := models.SentimentNegative
	switch {
	case score >= sentimentPositiveMin:
		sentiment = models.SentimentPositive
	case score >= sentimentMixedMin:
		sentiment = models.SentimentMixed
	}

	positive := min(88, score-4)
	negative := max(4, 100-score-8)
	neutral := max(2, 100-positive-negative)

	return models.Buzz{
		Score:             score,
		Sentiment:         sentiment,
		Prediction:        predictionLabel(sentiment),
		TwitterMentions:   models.Millions(orDefault(item.Popularity, 120)),
		InstagramPosts:    models.Thousands(orDefault(item.Popularity, 80) * 800),
		YoutubeViews:      models.Millions(orDefault(item.Popularity, 90) * 1.5),
		PositiveReactions: positive,
		NegativeReactions: negative,
		NeutralReactions:  neutral,
	}
}

func predictionLabel(sentiment string) string {
	switch sentiment {
	case models.SentimentPositive:
		return "Likely Hit"
	case models.SentimentMixed:
		return "Could Be Niche"
	default:
		return "Risky"
	}
}

func mapGenres(ids []int) []string {
	if len(ids) == 0 {
		return []string{fallbackGenre}
	}
	if len(ids) > 3 {
		ids = ids[:3]
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := genreNames[id]
		if !ok {
			name = fallbackGenre
		}
		names = append(names, name)
	}
	return names
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
