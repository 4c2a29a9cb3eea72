package models

import "time"

// ArticleModel is a published news article.
type ArticleModel struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Excerpt     string    `json:"excerpt"`
	Text        string    `json:"text"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
	ImageURL    string    `json:"image_url"`
	IsBreaking  bool      `json:"is_breaking"`
	IsFeatured  bool      `json:"is_featured"`
	IsTrending  bool      `json:"is_trending"`
	Tags        []string  `json:"tags"`
}
