package models

// NewsReactions holds the engagement counters for an article.
type NewsReactions struct {
	Likes    int `json:"likes"`
	Comments int `json:"comments"`
	Shares   int `json:"shares"`
}

// NewsArticle is a derivative news entry built from a trending record.
type NewsArticle struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Excerpt   string        `json:"excerpt"`
	Category  string        `json:"category"`
	Image     string        `json:"image"`
	Date      string        `json:"date"`
	Author    string        `json:"author"`
	Featured  bool          `json:"featured"`
	Reactions NewsReactions `json:"reactions"`
}
