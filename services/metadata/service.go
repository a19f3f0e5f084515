package metadata

import (
	"context"
	"fmt"
	"log"
	"math"
	"net/http"
	"sort"
	"strconv"

	"github.com/sourcegraph/conc/iter"

	"cineai/models"
	"cineai/services/predictor"
)

// Limits on the lists each operation returns.
const (
	trendingLimit    = 12
	predictionsLimit = 20
	videosLimit      = 20
	videoMovieLimit  = 8
	topicsLimit      = 12
	newsLimit        = 10
	perRegionLimit   = 5
)

// predictionRegions are the release regions polled by the raw-popularity
// prediction path.
var predictionRegions = []string{"US", "IN", "KR", "JP", "FR", "DE", "ES", "IT", "BR", "MX"}

// pinnedMovieIDs are individual catalog records merged into the
// buzz-weighted prediction pool alongside the list fetches.
var pinnedMovieIDs = []int64{1029235, 1011985, 1029236}

// Service aggregates catalog and video-platform data into the uniform
// presentation model. It holds no per-request state; every operation
// fetches fresh and returns newly constructed values.
type Service struct {
	tmdb    *tmdbClient
	youtube *youtubeClient
	demo    bool
}

func NewService(tmdbBearer, tmdbAPIKey, youtubeAPIKey string, demo bool) *Service {
	httpc := &http.Client{}
	return &Service{
		tmdb:    newTMDBClient(tmdbBearer, tmdbAPIKey, httpc),
		youtube: newYouTubeClient(youtubeAPIKey, httpc),
		demo:    demo,
	}
}

// TrendingMovies returns up to 12 normalized trending movies.
func (s *Service) TrendingMovies(ctx context.Context) ([]models.Movie, error) {
	if s.demo {
		return copyMovies(seedMovies), nil
	}
	items, err := s.tmdb.trending(ctx)
	if err != nil {
		return nil, err
	}
	return normalizeAll(capItems(items, trendingLimit)), nil
}

// ClassicMovies returns up to 12 normalized top-rated movies with the
// buzz prediction overridden to the vintage label.
func (s *Service) ClassicMovies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	if s.demo {
		movies = copyMovies(seedMovies)
	} else {
		items, err := s.tmdb.topRated(ctx)
		if err != nil {
			return nil, err
		}
		movies = normalizeAll(capItems(items, trendingLimit))
	}
	for i := range movies {
		movies[i].Buzz.Prediction = "Vintage Favorite"
	}
	return movies, nil
}

// BuzzPredictions runs the buzz-weighted strategy over a pool merged from
// the upcoming, trending and popular lists plus a few pinned records. The
// group fetches run concurrently; a failed member degrades to an empty
// slice. When the whole pool comes back empty the operation makes one
// plain trending fetch before giving up.
func (s *Service) BuzzPredictions(ctx context.Context) ([]models.MoviePrediction, error) {
	if s.demo {
		pool := append(copyMovies(seedMovies), copyMovies(regionalSeedMovies)...)
		return predictAll(capMovies(pool, predictionsLimit)), nil
	}

	fetches := []func(context.Context) ([]models.CatalogItem, error){
		func(ctx context.Context) ([]models.CatalogItem, error) { return s.tmdb.upcoming(ctx, "") },
		s.tmdb.trending,
		s.tmdb.popular,
	}
	lists := iter.Map(fetches, func(fetch *func(context.Context) ([]models.CatalogItem, error)) []models.CatalogItem {
		items, err := (*fetch)(ctx)
		if err != nil {
			log.Printf("[metadata] prediction source fetch failed: %v", err)
			return nil
		}
		return items
	})

	pinned := iter.Map(pinnedMovieIDs, func(id *int64) []models.CatalogItem {
		item, err := s.tmdb.movieDetails(ctx, *id)
		if err != nil {
			log.Printf("[metadata] pinned movie %d fetch failed: %v", *id, err)
			return nil
		}
		return []models.CatalogItem{item}
	})

	var merged []models.CatalogItem
	for _, list := range lists {
		merged = append(merged, list...)
	}
	for _, list := range pinned {
		merged = append(merged, list...)
	}

	if len(merged) == 0 {
		items, err := s.tmdb.trending(ctx)
		if err != nil {
			return nil, fmt.Errorf("predictions unavailable: %w", err)
		}
		return predictAll(normalizeAll(capItems(items, trendingLimit))), nil
	}

	unique := capItems(models.DedupeCatalogItems(merged), predictionsLimit)
	pool := normalizeAll(unique)
	pool = append(pool, copyMovies(regionalSeedMovies)...)
	return predictAll(capMovies(pool, predictionsLimit)), nil
}

// RawPredictions runs the raw-popularity strategy over upcoming releases
// polled per region, five records each, deduplicated across regions. A
// failed region degrades to an empty slice.
func (s *Service) RawPredictions(ctx context.Context) ([]models.RawMoviePrediction, error) {
	if s.demo {
		items := demoRawMovies()
		out := make([]models.RawMoviePrediction, 0, len(items))
		for _, item := range items {
			out = append(out, predictor.PredictRaw(item))
		}
		return out, nil
	}
	if !s.tmdb.isConfigured() {
		return nil, errCredentialsMissing
	}

	lists := iter.Map(predictionRegions, func(region *string) []models.CatalogItem {
		items, err := s.tmdb.upcoming(ctx, *region)
		if err != nil {
			log.Printf("[metadata] upcoming fetch failed region=%s: %v", *region, err)
			return nil
		}
		return capItems(items, perRegionLimit)
	})

	var merged []models.CatalogItem
	for _, list := range lists {
		merged = append(merged, list...)
	}
	unique := capItems(models.DedupeCatalogItems(merged), predictionsLimit)

	out := make([]models.RawMoviePrediction, 0, len(unique))
	for _, item := range unique {
		out = append(out, predictor.PredictRaw(item))
	}
	return out, nil
}

// TrendingVideos returns up to 20 tracks, from the YouTube music chart
// when a key is configured, otherwise derived from per-movie catalog
// video lookups on the trending list.
func (s *Service) TrendingVideos(ctx context.Context) ([]models.Track, error) {
	if s.demo {
		return copyTracks(seedTracks), nil
	}
	if s.youtube.isConfigured() {
		return s.youtubeTracks(ctx)
	}
	return s.catalogTracks(ctx)
}

func (s *Service) youtubeTracks(ctx context.Context) ([]models.Track, error) {
	videos, err := s.youtube.mostPopularMusic(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(videos, func(i, j int) bool {
		return parseCount(videos[i].Statistics.ViewCount) > parseCount(videos[j].Statistics.ViewCount)
	})
	if len(videos) > videosLimit {
		videos = videos[:videosLimit]
	}
	tracks := make([]models.Track, 0, len(videos))
	for _, v := range videos {
		tracks = append(tracks, mapYouTubeTrack(v))
	}
	return tracks, nil
}

func (s *Service) catalogTracks(ctx context.Context) ([]models.Track, error) {
	items, err := s.tmdb.trending(ctx)
	if err != nil {
		return nil, err
	}
	top := capItems(items, videoMovieLimit)
	videoLists := iter.Map(top, func(item *models.CatalogItem) []tmdbVideo {
		videos, err := s.tmdb.movieVideos(ctx, item.ID)
		if err != nil {
			log.Printf("[metadata] movie videos fetch failed id=%d: %v", item.ID, err)
			return nil
		}
		return videos
	})

	var flattened []tmdbVideo
	for _, list := range videoLists {
		flattened = append(flattened, list...)
	}
	if len(flattened) > videosLimit {
		flattened = flattened[:videosLimit]
	}
	tracks := make([]models.Track, 0, len(flattened))
	for idx, v := range flattened {
		tracks = append(tracks, mapCatalogTrack(v, idx))
	}
	return tracks, nil
}

// TrendingTopics summarizes the trending list into discussion topics.
func (s *Service) TrendingTopics(ctx context.Context) ([]models.Topic, error) {
	if s.demo {
		return copyTopics(seedTopics), nil
	}
	items, err := s.tmdb.trending(ctx)
	if err != nil {
		return nil, err
	}
	items = capItems(items, topicsLimit)
	topics := make([]models.Topic, 0, len(items))
	for idx, item := range items {
		title := item.DisplayTitle()
		if title == "" {
			title = "Trending film"
		}
		trend := models.TrendDown
		switch {
		case idx < 4:
			trend = models.TrendUp
		case idx < 8:
			trend = models.TrendStable
		}
		topics = append(topics, models.Topic{
			Title:    title,
			Mentions: models.FormatThousands(orDefault(item.Popularity, 100)*80) + "K",
			Trend:    trend,
		})
	}
	return topics, nil
}

// TrendingNews derives news articles from the trending list.
func (s *Service) TrendingNews(ctx context.Context) ([]models.NewsArticle, error) {
	if s.demo {
		return copyNews(seedNews), nil
	}
	items, err := s.tmdb.trending(ctx)
	if err != nil {
		return nil, err
	}
	items = capItems(items, newsLimit)
	articles := make([]models.NewsArticle, 0, len(items))
	for idx, item := range items {
		articles = append(articles, mapNewsArticle(item, idx))
	}
	return articles, nil
}

func mapNewsArticle(item models.CatalogItem, idx int) models.NewsArticle {
	title := item.DisplayTitle()
	if title == "" {
		title = "Trending film"
	}
	excerpt := item.Overview
	if excerpt == "" {
		excerpt = "Details to be announced."
	}
	image := newsPlaceholder
	if item.BackdropPath != "" {
		image = tmdbImageBaseURL + "/" + tmdbNewsSize + item.BackdropPath
	}
	category := "Update"
	switch {
	case idx < 3:
		category = "Breaking"
	case idx < 6:
		category = "Buzz"
	}
	base := int(math.Round(orDefault(item.Popularity, 100) * 25))
	if base < 800 {
		base = 800
	}
	return models.NewsArticle{
		ID:       item.ID,
		Title:    title,
		Excerpt:  excerpt,
		Category: category,
		Image:    image,
		Date:     "Live",
		Author:   "CineAI Desk",
		Featured: idx == 0,
		Reactions: models.NewsReactions{
			Likes:    base,
			Comments: int(math.Round(float64(base) * 0.08)),
			Shares:   int(math.Round(float64(base) * 0.18)),
		},
	}
}

func mapYouTubeTrack(v youtubeVideo) models.Track {
	title := v.Snippet.Title
	if title == "" {
		title = "Untitled"
	}
	artist := v.Snippet.ChannelTitle
	if artist == "" {
		artist = "Unknown artist"
	}
	movie := "Trending Music"
	if len(v.Snippet.Tags) > 0 {
		movie = v.Snippet.Tags[0]
	}
	thumb := trackPlaceholder
	switch {
	case v.Snippet.Thumbnails.Medium.URL != "":
		thumb = v.Snippet.Thumbnails.Medium.URL
	case v.Snippet.Thumbnails.High.URL != "":
		thumb = v.Snippet.Thumbnails.High.URL
	case v.Snippet.Thumbnails.Default.URL != "":
		thumb = v.Snippet.Thumbnails.Default.URL
	}
	return models.Track{
		ID:        v.ID,
		Title:     title,
		Artist:    artist,
		Movie:     movie,
		Thumbnail: thumb,
		Plays:     models.Millions(parseCount(v.Statistics.ViewCount)),
		Likes:     models.Millions(parseCount(v.Statistics.LikeCount)),
		Duration:  "3:30",
	}
}

func mapCatalogTrack(v tmdbVideo, idx int) models.Track {
	title := v.Name
	if title == "" {
		title = "Official Video"
	}
	size := float64(v.Size)
	if size == 0 {
		size = 5
	}
	return models.Track{
		ID:        fmt.Sprintf("%d-%d", v.movieID, idx),
		Title:     title,
		Artist:    "Official",
		Movie:     strconv.FormatInt(v.movieID, 10),
		Thumbnail: "https://img.youtube.com/vi/" + v.Key + "/hqdefault.jpg",
		Plays:     models.Millions(size * 0.4),
		Likes:     models.Millions(size * 0.12),
		Duration:  "3:30",
	}
}

func normalizeAll(items []models.CatalogItem) []models.Movie {
	movies := make([]models.Movie, 0, len(items))
	for _, item := range items {
		movies = append(movies, Normalize(item))
	}
	return movies
}

func predictAll(movies []models.Movie) []models.MoviePrediction {
	out := make([]models.MoviePrediction, 0, len(movies))
	for _, m := range movies {
		out = append(out, predictor.PredictBuzz(m))
	}
	return out
}

func capItems(items []models.CatalogItem, n int) []models.CatalogItem {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func capMovies(movies []models.Movie, n int) []models.Movie {
	if len(movies) > n {
		return movies[:n]
	}
	return movies
}

func parseCount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
