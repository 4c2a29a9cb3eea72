package comment

import (
	"time"

	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/modules/gateway"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/majlis-kantho/core/internal/pkg/store"
	"go.uber.org/zap"
)

const storageKey = "portal:comments"

type CreateCommentDTO struct {
	ArticleID string `json:"article_id" binding:"required"`
	Author    string `json:"author" binding:"required"`
	Mail      string `json:"mail"`
	Text      string `json:"text" binding:"required"`
}

type SetStatusDTO struct {
	Status models.CommentStatus `json:"status" binding:"required"`
}

// Service owns the comment collection.
type Service struct {
	col *store.Collection[models.CommentModel]
	hub *gateway.Hub
}

func NewService(kvs kv.Store, hub *gateway.Hub, logger *zap.Logger) (*Service, error) {
	col, err := store.Load(kvs, storageKey, seedComments(), logger)
	if err != nil {
		return nil, err
	}
	return &Service{col: col, hub: hub}, nil
}

// List returns every comment, optionally filtered to one moderation state.
// This is the moderation queue view; it includes orphans.
func (s *Service) List(status models.CommentStatus) []models.CommentModel {
	if status == "" {
		return s.col.Items()
	}
	return s.col.Filter(func(c models.CommentModel) bool { return c.Status == status })
}

// ByArticle returns the publicly visible comments of one article: approved
// only, regardless of who asks.
func (s *Service) ByArticle(articleID string) []models.CommentModel {
	return s.col.Filter(func(c models.CommentModel) bool {
		return c.ArticleID == articleID && c.Status == models.CommentApproved
	})
}

// Add creates a comment. Submissions always enter as pending.
func (s *Service) Add(dto *CreateCommentDTO) models.CommentModel {
	comment := models.CommentModel{
		ID:        models.NewID(),
		ArticleID: dto.ArticleID,
		Author:    dto.Author,
		Mail:      dto.Mail,
		Text:      dto.Text,
		Status:    models.CommentPending,
		CreatedAt: time.Now(),
	}
	s.col.Mutate(func(items []models.CommentModel) []models.CommentModel {
		return append([]models.CommentModel{comment}, items...)
	})
	if s.hub != nil {
		s.hub.Broadcast(gateway.EventCommentCreated, comment)
	}
	return comment
}

// SetStatus moves a comment through moderation.
func (s *Service) SetStatus(id string, status models.CommentStatus) (*models.CommentModel, bool) {
	var updated *models.CommentModel
	s.col.Mutate(func(items []models.CommentModel) []models.CommentModel {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = status
				c := items[i]
				updated = &c
				break
			}
		}
		return items
	})
	if updated == nil {
		return nil, false
	}
	if s.hub != nil {
		s.hub.Broadcast(gateway.EventCommentUpdated, *updated)
	}
	return updated, true
}

// Delete removes a comment by id.
func (s *Service) Delete(id string) bool {
	removed := false
	s.col.Mutate(func(items []models.CommentModel) []models.CommentModel {
		out := items[:0]
		for _, c := range items {
			if c.ID == id {
				removed = true
				continue
			}
			out = append(out, c)
		}
		return out
	})
	return removed
}

func seedComments() []models.CommentModel {
	return []models.CommentModel{
		{
			ID:        "c1",
			ArticleID: "1",
			Author:    "Sufian Ahmed",
			Mail:      "sufian@example.com",
			Text:      "This is a very insightful update on the Bangladesh economy. Great to see the growth!",
			Status:    models.CommentPending,
			CreatedAt: time.Now(),
		},
	}
}
