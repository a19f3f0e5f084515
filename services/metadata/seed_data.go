package metadata

import (
	"time"

	"cineai/models"
)

// Seed fixtures. These are read-only: callers always receive fresh copies
// via the copy helpers below, never the backing slices themselves.

// regionalSeedMovies are hand-seeded regional releases appended to the
// buzz-weighted predictions so the list is not dominated by a single
// market. Their ids live in a synthetic range no catalog record uses.
var regionalSeedMovies = []models.Movie{
	{
		ID:          999001,
		Title:       "Kalki 2898 AD",
		Poster:      "https://image.tmdb.org/t/p/w500/kK1BGkG3KAvWB0WMV1DfOx9yTMZ.jpg",
		Banner:      "https://image.tmdb.org/t/p/w1280/cz4vLJrmaV1zJlRYbxqtvLzeLWB.jpg",
		Rating:      "8.5",
		ReleaseDate: "2026-01-15",
		Duration:    "3h 01min",
		Genre:       []string{"Action", "Sci-Fi", "Thriller"},
		Director:    "Nag Ashwin",
		Description: "In a future dystopian world, a young man discovers his connection to an ancient prophecy that could change the fate of humanity.",
		OriginalLanguage: "te",
		Cast:        []models.CastMember{},
		Songs:       []models.Song{},
		Buzz: models.Buzz{
			Score:             95,
			Sentiment:         models.SentimentPositive,
			Prediction:        "Blockbuster",
			TwitterMentions:   models.Magnitude{Value: 850, Unit: models.UnitThousands},
			InstagramPosts:    models.Magnitude{Value: 1.2, Unit: models.UnitMillions},
			YoutubeViews:      models.Magnitude{Value: 25, Unit: models.UnitMillions},
			PositiveReactions: 92,
			NegativeReactions: 3,
			NeutralReactions:  5,
		},
	},
	{
		ID:          999002,
		Title:       "Indian 2",
		Poster:      "https://image.tmdb.org/t/p/w500/tcwar1rL0neoLvnklL7DzYw7sN8.jpg",
		Banner:      "https://image.tmdb.org/t/p/w1280/v1DsKWjIF9M9eB7xtIwVfU6unSW.jpg",
		Rating:      "7.8",
		ReleaseDate: "2026-02-14",
		Duration:    "2h 45min",
		Genre:       []string{"Action", "Drama", "Thriller"},
		Director:    "S. Shankar",
		Description: "The sequel to the iconic Indian film, following Senapathy and his allies in a battle against corruption and injustice.",
		OriginalLanguage: "ta",
		Cast:        []models.CastMember{},
		Songs:       []models.Song{},
		Buzz: models.Buzz{
			Score:             88,
			Sentiment:         models.SentimentPositive,
			Prediction:        "Major Hit",
			TwitterMentions:   models.Magnitude{Value: 650, Unit: models.UnitThousands},
			InstagramPosts:    models.Magnitude{Value: 950, Unit: models.UnitThousands},
			YoutubeViews:      models.Magnitude{Value: 18, Unit: models.UnitMillions},
			PositiveReactions: 85,
			NegativeReactions: 7,
			NeutralReactions:  8,
		},
	},
	{
		ID:          999003,
		Title:       "Pushpa: The Rule",
		Poster:      "https://image.tmdb.org/t/p/w500/tcwar1rL0neoLvnklL7DzYw7sN8.jpg",
		Banner:      "https://image.tmdb.org/t/p/w1280/v1DsKWjIF9M9eB7xtIwVfU6unSW.jpg",
		Rating:      "8.2",
		ReleaseDate: "2026-03-21",
		Duration:    "2h 59min",
		Genre:       []string{"Action", "Crime", "Drama"},
		Director:    "Sukumar",
		Description: "Pushpa Raj, a laborer, rises through the ranks of the red sandalwood smuggling syndicate in Seshachalam forests.",
		OriginalLanguage: "te",
		Cast:        []models.CastMember{},
		Songs:       []models.Song{},
		Buzz: models.Buzz{
			Score:             92,
			Sentiment:         models.SentimentPositive,
			Prediction:        "Blockbuster",
			TwitterMentions:   models.Magnitude{Value: 720, Unit: models.UnitThousands},
			InstagramPosts:    models.Magnitude{Value: 1.1, Unit: models.UnitMillions},
			YoutubeViews:      models.Magnitude{Value: 22, Unit: models.UnitMillions},
			PositiveReactions: 89,
			NegativeReactions: 4,
			NeutralReactions:  7,
		},
	},
}

// seedMovies back the demo mode so every endpoint works without upstream
// credentials.
var seedMovies = []models.Movie{
	{
		ID:          1,
		Title:       "Avatar: The Last Frontier",
		Poster:      "https://images.unsplash.com/photo-1534809027769-b00d750a6bac?w=400&h=600&fit=crop",
		Banner:      "https://images.unsplash.com/photo-1518709268805-4e9042af9f23?w=1200&h=600&fit=crop",
		Rating:      "8.9",
		ReleaseDate: "March 15, 2026",
		Duration:    "3h 12min",
		Genre:       []string{"Action", "Sci-Fi", "Adventure"},
		Director:    "James Cameron",
		Description: "Return to the mystical world of Pandora in this groundbreaking sequel that pushes the boundaries of visual storytelling.",
		Cast:        []models.CastMember{},
		Songs: []models.Song{
			{Title: "Into the Deep", Artist: "The Weeknd", Thumbnail: "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=100&h=100&fit=crop"},
		},
		Buzz: models.Buzz{
			Score:             92,
			Sentiment:         models.SentimentPositive,
			Prediction:        "Blockbuster Hit",
			TwitterMentions:   models.Magnitude{Value: 2.4, Unit: models.UnitMillions},
			InstagramPosts:    models.Magnitude{Value: 890, Unit: models.UnitThousands},
			YoutubeViews:      models.Magnitude{Value: 45, Unit: models.UnitMillions},
			PositiveReactions: 85,
			NegativeReactions: 8,
			NeutralReactions:  7,
		},
	},
	{
		ID:          2,
		Title:       "The Dark Phoenix Rises",
		Poster:      "https://images.unsplash.com/photo-1509347528160-9a9e33742cdb?w=400&h=600&fit=crop",
		Banner:      "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=1200&h=600&fit=crop",
		Rating:      "8.5",
		ReleaseDate: "April 22, 2026",
		Duration:    "2h 45min",
		Genre:       []string{"Action", "Thriller", "Drama"},
		Director:    "Christopher Nolan",
		Description: "A psychological thriller that explores the depths of human consciousness through the eyes of a detective haunted by his past.",
		Cast:        []models.CastMember{},
		Songs: []models.Song{
			{Title: "Shadows Within", Artist: "Hans Zimmer", Thumbnail: "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=100&h=100&fit=crop"},
		},
		Buzz: models.Buzz{
			Score:             88,
			Sentiment:         models.SentimentPositive,
			Prediction:        "Critical Acclaim",
			TwitterMentions:   models.Magnitude{Value: 1.8, Unit: models.UnitMillions},
			InstagramPosts:    models.Magnitude{Value: 650, Unit: models.UnitThousands},
			YoutubeViews:      models.Magnitude{Value: 32, Unit: models.UnitMillions},
			PositiveReactions: 78,
			NegativeReactions: 12,
			NeutralReactions:  10,
		},
	},
	{
		ID:          3,
		Title:       "Love in Paris",
		Poster:      "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=400&h=600&fit=crop",
		Banner:      "https://images.unsplash.com/photo-1499856871958-5b9627545d1a?w=1200&h=600&fit=crop",
		Rating:      "7.8",
		ReleaseDate: "February 14, 2026",
		Duration:    "2h 05min",
		Genre:       []string{"Romance", "Comedy", "Drama"},
		Director:    "Nancy Meyers",
		Description: "A heartwarming romantic comedy about two strangers who meet during a chance encounter at the Eiffel Tower.",
		Cast:        []models.CastMember{},
		Songs: []models.Song{
			{Title: "Paris Nights", Artist: "Ed Sheeran", Thumbnail: "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?w=100&h=100&fit=crop"},
		},
		Buzz: models.Buzz{
			Score:             75,
			Sentiment:         models.SentimentPositive,
			Prediction:        "Romantic Hit",
			TwitterMentions:   models.Magnitude{Value: 980, Unit: models.UnitThousands},
			InstagramPosts:    models.Magnitude{Value: 420, Unit: models.UnitThousands},
			YoutubeViews:      models.Magnitude{Value: 18, Unit: models.UnitMillions},
			PositiveReactions: 72,
			NegativeReactions: 15,
			NeutralReactions:  13,
		},
	},
	{
		ID:          4,
		Title:       "Quantum Horizon",
		Poster:      "https://images.unsplash.com/photo-1446776811953-b23d57bd21aa?w=400&h=600&fit=crop",
		Banner:      "https://images.unsplash.com/photo-1462331940025-496dfbfc7564?w=1200&h=600&fit=crop",
		Rating:      "8.7",
		ReleaseDate: "May 30, 2026",
		Duration:    "2h 38min",
		Genre:       []string{"Action", "Sci-Fi", "Thriller"},
		Director:    "Denis Villeneuve",
		Description: "In a future where time travel is possible but forbidden, a physicist discovers a conspiracy that threatens to unravel the fabric of reality itself.",
		Cast:        []models.CastMember{},
		Songs: []models.Song{
			{Title: "Time Loop", Artist: "Daft Punk", Thumbnail: "https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?w=100&h=100&fit=crop"},
		},
		Buzz: models.Buzz{
			Score:             89,
			Sentiment:         models.SentimentPositive,
			Prediction:        "Sci-Fi Masterpiece",
			TwitterMentions:   models.Magnitude{Value: 2.1, Unit: models.UnitMillions},
			InstagramPosts:    models.Magnitude{Value: 780, Unit: models.UnitThousands},
			YoutubeViews:      models.Magnitude{Value: 38, Unit: models.UnitMillions},
			PositiveReactions: 82,
			NegativeReactions: 10,
			NeutralReactions:  8,
		},
	},
}

var seedTracks = []models.Track{
	{ID: "1", Title: "Into the Deep", Artist: "The Weeknd", Movie: "Avatar: The Last Frontier", Thumbnail: "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=200&h=200&fit=crop", Plays: models.Magnitude{Value: 45.2, Unit: models.UnitMillions}, Likes: models.Magnitude{Value: 3.2, Unit: models.UnitMillions}, Duration: "3:45"},
	{ID: "2", Title: "Shadows Within", Artist: "Hans Zimmer", Movie: "The Dark Phoenix Rises", Thumbnail: "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=200&h=200&fit=crop", Plays: models.Magnitude{Value: 38.7, Unit: models.UnitMillions}, Likes: models.Magnitude{Value: 2.8, Unit: models.UnitMillions}, Duration: "4:12"},
	{ID: "3", Title: "Paris Nights", Artist: "Ed Sheeran", Movie: "Love in Paris", Thumbnail: "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?w=200&h=200&fit=crop", Plays: models.Magnitude{Value: 32.1, Unit: models.UnitMillions}, Likes: models.Magnitude{Value: 2.5, Unit: models.UnitMillions}, Duration: "3:28"},
	{ID: "4", Title: "Time Loop", Artist: "Daft Punk", Movie: "Quantum Horizon", Thumbnail: "https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?w=200&h=200&fit=crop", Plays: models.Magnitude{Value: 28.9, Unit: models.UnitMillions}, Likes: models.Magnitude{Value: 2.1, Unit: models.UnitMillions}, Duration: "5:02"},
}

var seedTopics = []models.Topic{
	{Title: "Avatar franchise future plans revealed", Mentions: "45.2K", Trend: models.TrendUp},
	{Title: "Oscars 2026 early predictions", Mentions: "38.1K", Trend: models.TrendUp},
	{Title: "Summer blockbusters lineup", Mentions: "32.8K", Trend: models.TrendStable},
	{Title: "Streaming vs Theater debate", Mentions: "28.4K", Trend: models.TrendDown},
	{Title: "Superhero fatigue discussion", Mentions: "24.9K", Trend: models.TrendUp},
}

var seedNews = []models.NewsArticle{
	{
		ID:        1,
		Title:     "Avatar: The Last Frontier Set to Break Box Office Records",
		Excerpt:   "The highly anticipated sequel has generated unprecedented buzz, with predictions suggesting it could become the highest-grossing film of all time.",
		Category:  "Box Office",
		Image:     "https://images.unsplash.com/photo-1518709268805-4e9042af9f23?w=800&h=400&fit=crop",
		Date:      "2 hours ago",
		Author:    "Sarah Johnson",
		Featured:  true,
		Reactions: models.NewsReactions{Likes: 15420, Comments: 892, Shares: 2340},
	},
	{
		ID:        2,
		Title:     "'The Dark Phoenix Rises' Gets Standing Ovation at Private Screening",
		Excerpt:   "Industry insiders report that the psychological thriller received a 10-minute standing ovation at its first private screening.",
		Category:  "Premiere",
		Image:     "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=800&h=400&fit=crop",
		Date:      "5 hours ago",
		Author:    "Michael Chen",
		Featured:  false,
		Reactions: models.NewsReactions{Likes: 8920, Comments: 456, Shares: 1230},
	},
	{
		ID:        3,
		Title:     "'Into the Deep' Breaks Streaming Records on First Day",
		Excerpt:   "The lead single from the Avatar: The Last Frontier soundtrack shattered the first-day streaming record with over 45 million plays.",
		Category:  "Music",
		Image:     "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800&h=400&fit=crop",
		Date:      "8 hours ago",
		Author:    "Emily Rodriguez",
		Featured:  false,
		Reactions: models.NewsReactions{Likes: 12350, Comments: 678, Shares: 3450},
	},
}

func copyMovies(movies []models.Movie) []models.Movie {
	cloned := make([]models.Movie, len(movies))
	copy(cloned, movies)
	return cloned
}

func copyTracks(tracks []models.Track) []models.Track {
	cloned := make([]models.Track, len(tracks))
	copy(cloned, tracks)
	return cloned
}

func copyTopics(topics []models.Topic) []models.Topic {
	cloned := make([]models.Topic, len(topics))
	copy(cloned, topics)
	return cloned
}

func copyNews(articles []models.NewsArticle) []models.NewsArticle {
	cloned := make([]models.NewsArticle, len(articles))
	copy(cloned, articles)
	return cloned
}

// demoRawMovies derives catalog-shaped records from the seed movies so the
// prediction strategies have raw input in demo mode.
func demoRawMovies() []models.CatalogItem {
	items := make([]models.CatalogItem, 0, len(seedMovies))
	now := time.Now().Format("2006-01-02")
	for i, m := range seedMovies {
		items = append(items, models.CatalogItem{
			ID:          m.ID,
			Title:       m.Title,
			VoteAverage: 7 + float64(i)*0.5,
			VoteCount:   1000 * int64(i+1),
			Popularity:  120 - float64(i)*20,
			ReleaseDate: now,
			Overview:    m.Description,
		})
	}
	return items
}
