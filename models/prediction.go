package models

// BuzzVerdict is the buzz-weighted hit/flop result. Collections are in
// millions, rounded to one decimal; ROI is a percentage floored at -50;
// Confidence is within [60, 95].
type BuzzVerdict struct {
	Hit         bool    `json:"hit"`
	Confidence  int     `json:"confidence"`
	Collections float64 `json:"collections"`
	ROI         int     `json:"roi"`
}

// RawVerdict is the raw-popularity-weighted hit/flop result. Collections
// are whole millions; Returns is a percentage capped at 500; Confidence
// is within [60, 95].
type RawVerdict struct {
	Hit         bool `json:"hit"`
	Collections int  `json:"collections"`
	Returns     int  `json:"returns"`
	Confidence  int  `json:"confidence"`
}

// MoviePrediction merges a normalized movie with its buzz-weighted verdict.
type MoviePrediction struct {
	Movie
	Language   string      `json:"language"`
	Prediction BuzzVerdict `json:"prediction"`
}

// RawMoviePrediction carries the raw-weighted verdict for a catalog record
// that never passed through the normalizer.
type RawMoviePrediction struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Poster      string     `json:"poster"`
	ReleaseDate string     `json:"releaseDate"`
	Language    string     `json:"language"`
	Prediction  RawVerdict `json:"prediction"`
}
