package models

// Track is one trending-video entry, sourced either from the YouTube
// music chart or from per-movie catalog video lookups.
type Track struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
	Movie     string    `json:"movie"`
	Thumbnail string    `json:"thumbnail"`
	Plays     Magnitude `json:"plays"`
	Likes     Magnitude `json:"likes"`
	Duration  string    `json:"duration"`
}

// Topic is a derivative trending-discussion summary.
type Topic struct {
	Title    string `json:"title"`
	Mentions string `json:"mentions"`
	Trend    string `json:"trend"`
}

// Trend direction labels for topics.
const (
	TrendUp     = "up"
	TrendStable = "stable"
	TrendDown   = "down"
)
