package news

import (
	"time"

	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/modules/gateway"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/majlis-kantho/core/internal/pkg/store"
	"go.uber.org/zap"
)

const storageKey = "portal:news"

type CreateArticleDTO struct {
	Title      string   `json:"title" binding:"required"`
	Excerpt    string   `json:"excerpt"`
	Text       string   `json:"text" binding:"required"`
	Category   string   `json:"category" binding:"required"`
	Author     string   `json:"author"`
	ImageURL   string   `json:"image_url"`
	IsBreaking bool     `json:"is_breaking"`
	IsFeatured bool     `json:"is_featured"`
	IsTrending bool     `json:"is_trending"`
	Tags       []string `json:"tags"`
}

type UpdateArticleDTO struct {
	Title      *string   `json:"title"`
	Excerpt    *string   `json:"excerpt"`
	Text       *string   `json:"text"`
	Category   *string   `json:"category"`
	Author     *string   `json:"author"`
	ImageURL   *string   `json:"image_url"`
	IsBreaking *bool     `json:"is_breaking"`
	IsFeatured *bool     `json:"is_featured"`
	IsTrending *bool     `json:"is_trending"`
	Tags       *[]string `json:"tags"`
}

// Service owns the article collection.
type Service struct {
	col *store.Collection[models.ArticleModel]
	hub *gateway.Hub
}

// NewService rehydrates the article store, seeding a fresh installation.
func NewService(kvs kv.Store, hub *gateway.Hub, logger *zap.Logger) (*Service, error) {
	col, err := store.Load(kvs, storageKey, seedArticles(), logger)
	if err != nil {
		return nil, err
	}
	return &Service{col: col, hub: hub}, nil
}

// List returns all articles, newest-first.
func (s *Service) List() []models.ArticleModel {
	return s.col.Items()
}

// ByCategory returns articles of an exact category.
func (s *Service) ByCategory(category string) []models.ArticleModel {
	return s.col.Filter(func(a models.ArticleModel) bool {
		return a.Category == category
	})
}

// GetByID returns the article with the given id.
func (s *Service) GetByID(id string) (*models.ArticleModel, bool) {
	a, ok := s.col.Find(func(a models.ArticleModel) bool { return a.ID == id })
	if !ok {
		return nil, false
	}
	return &a, true
}

// Create assigns identity and timestamp and prepends the article. Creating a
// featured article clears the flag on every other article in the same write.
func (s *Service) Create(dto *CreateArticleDTO) models.ArticleModel {
	article := models.ArticleModel{
		ID:          models.NewID(),
		Title:       dto.Title,
		Excerpt:     dto.Excerpt,
		Text:        dto.Text,
		Category:    dto.Category,
		Author:      dto.Author,
		PublishedAt: time.Now(),
		ImageURL:    dto.ImageURL,
		IsBreaking:  dto.IsBreaking,
		IsFeatured:  dto.IsFeatured,
		IsTrending:  dto.IsTrending,
		Tags:        dto.Tags,
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}
	s.col.Mutate(func(items []models.ArticleModel) []models.ArticleModel {
		if article.IsFeatured {
			for i := range items {
				items[i].IsFeatured = false
			}
		}
		return append([]models.ArticleModel{article}, items...)
	})
	s.emit(gateway.EventArticleCreated, article)
	return article
}

// Update merges the patch into the article. Setting is_featured=true first
// bulk-clears the flag everywhere else, keeping at most one featured article.
func (s *Service) Update(id string, dto *UpdateArticleDTO) (*models.ArticleModel, bool) {
	var updated *models.ArticleModel
	s.col.Mutate(func(items []models.ArticleModel) []models.ArticleModel {
		idx := -1
		for i := range items {
			if items[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return items
		}
		if dto.IsFeatured != nil && *dto.IsFeatured {
			for i := range items {
				items[i].IsFeatured = false
			}
		}
		applyPatch(&items[idx], dto)
		a := items[idx]
		updated = &a
		return items
	})
	if updated == nil {
		return nil, false
	}
	s.emit(gateway.EventArticleUpdated, *updated)
	return updated, true
}

// Delete removes the article by id. Comments are not cascaded.
func (s *Service) Delete(id string) bool {
	removed := false
	s.col.Mutate(func(items []models.ArticleModel) []models.ArticleModel {
		out := items[:0]
		for _, a := range items {
			if a.ID == id {
				removed = true
				continue
			}
			out = append(out, a)
		}
		return out
	})
	if removed {
		s.emit(gateway.EventArticleDeleted, map[string]string{"id": id})
	}
	return removed
}

// Featured returns the featured article, if any.
func (s *Service) Featured() *models.ArticleModel {
	a, ok := s.col.Find(func(a models.ArticleModel) bool { return a.IsFeatured })
	if !ok {
		return nil
	}
	return &a
}

// Breaking returns up to limit breaking articles (0 means no cap).
func (s *Service) Breaking(limit int) []models.ArticleModel {
	out := s.col.Filter(func(a models.ArticleModel) bool { return a.IsBreaking })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Trending returns all trending articles.
func (s *Service) Trending() []models.ArticleModel {
	return s.col.Filter(func(a models.ArticleModel) bool { return a.IsTrending })
}

// Latest returns up to limit newest articles.
func (s *Service) Latest(limit int) []models.ArticleModel {
	items := s.col.Items()
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (s *Service) emit(event string, payload interface{}) {
	if s.hub != nil {
		s.hub.Broadcast(event, payload)
	}
}

func applyPatch(a *models.ArticleModel, dto *UpdateArticleDTO) {
	if dto.Title != nil {
		a.Title = *dto.Title
	}
	if dto.Excerpt != nil {
		a.Excerpt = *dto.Excerpt
	}
	if dto.Text != nil {
		a.Text = *dto.Text
	}
	if dto.Category != nil {
		a.Category = *dto.Category
	}
	if dto.Author != nil {
		a.Author = *dto.Author
	}
	if dto.ImageURL != nil {
		a.ImageURL = *dto.ImageURL
	}
	if dto.IsBreaking != nil {
		a.IsBreaking = *dto.IsBreaking
	}
	if dto.IsFeatured != nil {
		a.IsFeatured = *dto.IsFeatured
	}
	if dto.IsTrending != nil {
		a.IsTrending = *dto.IsTrending
	}
	if dto.Tags != nil {
		a.Tags = *dto.Tags
	}
}
