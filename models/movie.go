package models

// Buzz is the synthesized social-buzz block attached to every movie.
// Score is always within [40, 98]. The three reaction percentages are
// individually bounded (positive <= 88, negative >= 4, neutral >= 2) but
// intentionally not normalized to sum to 100.
type Buzz struct {
	Score             int       `json:"score"`
	Sentiment         string    `json:"sentiment"`
	Prediction        string    `json:"prediction"`
	TwitterMentions   Magnitude `json:"twitterMentions"`
	InstagramPosts    Magnitude `json:"instagramPosts"`
	YoutubeViews      Magnitude `json:"youtubeViews"`
	PositiveReactions int       `json:"positiveReactions"`
	NegativeReactions int       `json:"negativeReactions"`
	NeutralReactions  int       `json:"neutralReactions"`
}

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentMixed    = "mixed"
	SentimentNegative = "negative"
)

type CastMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
}

type Song struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Thumbnail string `json:"thumbnail"`
}

// Movie is the uniform presentation record every catalog item is
// normalized into. Immutable once produced; constructed fresh per request.
type Movie struct {
	ID               int64        `json:"id"`
	Title            string       `json:"title"`
	Poster           string       `json:"poster"`
	Banner           string       `json:"banner"`
	Rating           string       `json:"rating"`
	ReleaseDate      string       `json:"releaseDate"`
	Duration         string       `json:"duration"`
	Genre            []string     `json:"genre"`
	Director         string       `json:"director"`
	Description      string       `json:"description"`
	OriginalLanguage string       `json:"original_language,omitempty"`
	Cast             []CastMember `json:"cast"`
	Songs            []Song       `json:"songs"`
	Trailer          string       `json:"trailer"`
	Buzz             Buzz         `json:"buzz"`
}
