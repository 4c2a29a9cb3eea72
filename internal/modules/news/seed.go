package news

import (
	"time"

	"github.com/majlis-kantho/core/internal/models"
)

// seedArticles is the collection a fresh installation starts with.
func seedArticles() []models.ArticleModel {
	return []models.ArticleModel{
		{
			ID:          "1",
			Title:       "Bangladesh Economy Shows Resilience Amid Global Volatility",
			Excerpt:     "The central bank reports a steady growth in remittances and export earnings for the second quarter...",
			Text:        "Dhaka, Bangladesh - In a comprehensive report released today, the Bangladesh Bank highlighted significant gains in key economic indicators despite global headwinds. Remittances reached a record high of $2.5 billion in March, providing a critical buffer to foreign exchange reserves. Export earnings, particularly in the RMG sector, grew by 12% year-over-year. Analysts suggest that diversification of export markets has been the primary driver of this resilience.",
			Category:    "Economy",
			Author:      "Rahat Hassan",
			PublishedAt: time.Date(2023, 10, 27, 10, 0, 0, 0, time.UTC),
			ImageURL:    "https://picsum.photos/seed/economy/1200/600",
			IsBreaking:  true,
			IsFeatured:  true,
			Tags:        []string{"Economy", "Bangladesh", "Export", "RMG"},
		},
		{
			ID:          "2",
			Title:       "Dhaka Metro Rail to Expand Operations to Motijheel",
			Excerpt:     "The long-awaited expansion will see commuters traveling from Uttara to the heart of the commercial district...",
			Text:        "Commuters in the capital are set for a major relief as the Metro Rail authorities confirmed that the Agargaon-Motijheel segment will begin commercial operations this Sunday. This expansion is expected to cut travel time from Uttara to Motijheel to just 38 minutes, significantly bypassing the gridlocked streets below.",
			Category:    "National",
			Author:      "Nadia Ahmed",
			PublishedAt: time.Date(2023, 10, 27, 8, 30, 0, 0, time.UTC),
			ImageURL:    "https://picsum.photos/seed/metro/800/500",
			IsTrending:  true,
			Tags:        []string{"Dhaka", "Metro Rail", "Transport"},
		},
		{
			ID:          "3",
			Title:       "Tigers Secure Victory in Opener Against Sri Lanka",
			Excerpt:     "A stellar performance by the middle order guided Bangladesh to a comfortable 5-wicket win...",
			Text:        "In a thrilling encounter at the Shere Bangla National Stadium, the Bangladesh national cricket team, popularly known as the Tigers, started their campaign with a bang. Shanto's unbeaten 75 and Taskin's four-wicket haul were the highlights of the match.",
			Category:    "Sports",
			Author:      "Sagor Islam",
			PublishedAt: time.Date(2023, 10, 26, 20, 0, 0, 0, time.UTC),
			ImageURL:    "https://picsum.photos/seed/sports/800/500",
			Tags:        []string{"Cricket", "Bangladesh", "BCB"},
		},
	}
}
