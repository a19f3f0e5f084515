package models

// CatalogItem is one raw movie record as TMDB returns it. Fields may be
// absent or zero; the normalizer owns all defaulting.
type CatalogItem struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Name             string  `json:"name"`
	PosterPath       string  `json:"poster_path"`
	BackdropPath     string  `json:"backdrop_path"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	ReleaseDate      string  `json:"release_date"`
	FirstAirDate     string  `json:"first_air_date"`
	OriginalLanguage string  `json:"original_language"`
	GenreIDs         []int   `json:"genre_ids"`
	Overview         string  `json:"overview"`
	Runtime          int     `json:"runtime"`
}

// DisplayTitle returns the title field TMDB populated for this record.
func (c CatalogItem) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Name
}

// DedupeCatalogItems removes records sharing an id, keeping the first
// occurrence and preserving order.
func DedupeCatalogItems(items []CatalogItem) []CatalogItem {
	seen := make(map[int64]bool, len(items))
	out := make([]CatalogItem, 0, len(items))
	for _, item := range items {
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		out = append(out, item)
	}
	return out
}
