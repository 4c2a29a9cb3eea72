package ad

import (
	"time"

	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/modules/gateway"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/majlis-kantho/core/internal/pkg/store"
	"go.uber.org/zap"
)

const storageKey = "portal:ads"

type CreateAdDTO struct {
	Label    string            `json:"label" binding:"required"`
	Position models.AdPosition `json:"position" binding:"required"`
	ImageURL string            `json:"image_url" binding:"required"`
	LinkURL  string            `json:"link_url"`
	IsActive bool              `json:"is_active"`
}

type UpdateAdDTO struct {
	Label    *string            `json:"label"`
	Position *models.AdPosition `json:"position"`
	ImageURL *string            `json:"image_url"`
	LinkURL  *string            `json:"link_url"`
	IsActive *bool              `json:"is_active"`
}

// Service owns the advertisement inventory.
type Service struct {
	col *store.Collection[models.AdModel]
	hub *gateway.Hub
}

func NewService(kvs kv.Store, hub *gateway.Hub, logger *zap.Logger) (*Service, error) {
	col, err := store.Load(kvs, storageKey, seedAds(), logger)
	if err != nil {
		return nil, err
	}
	return &Service{col: col, hub: hub}, nil
}

// List returns the full inventory (admin view).
func (s *Service) List() []models.AdModel {
	return s.col.Items()
}

// ByPosition returns active ads eligible for the given slot. This is the
// only query the rendering path uses.
func (s *Service) ByPosition(position models.AdPosition) []models.AdModel {
	return s.col.Filter(func(a models.AdModel) bool {
		return a.Position == position && a.IsActive
	})
}

// GetByID returns the ad with the given id.
func (s *Service) GetByID(id string) (*models.AdModel, bool) {
	a, ok := s.col.Find(func(a models.AdModel) bool { return a.ID == id })
	if !ok {
		return nil, false
	}
	return &a, true
}

// Create prepends a new ad to the inventory.
func (s *Service) Create(dto *CreateAdDTO) models.AdModel {
	ad := models.AdModel{
		ID:        models.NewID(),
		Label:     dto.Label,
		Position:  dto.Position,
		ImageURL:  dto.ImageURL,
		LinkURL:   dto.LinkURL,
		IsActive:  dto.IsActive,
		CreatedAt: time.Now(),
	}
	s.col.Mutate(func(items []models.AdModel) []models.AdModel {
		return append([]models.AdModel{ad}, items...)
	})
	s.emit(ad)
	return ad
}

// Update merges the patch into the ad.
func (s *Service) Update(id string, dto *UpdateAdDTO) (*models.AdModel, bool) {
	var updated *models.AdModel
	s.col.Mutate(func(items []models.AdModel) []models.AdModel {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if dto.Label != nil {
				items[i].Label = *dto.Label
			}
			if dto.Position != nil {
				items[i].Position = *dto.Position
			}
			if dto.ImageURL != nil {
				items[i].ImageURL = *dto.ImageURL
			}
			if dto.LinkURL != nil {
				items[i].LinkURL = *dto.LinkURL
			}
			if dto.IsActive != nil {
				items[i].IsActive = *dto.IsActive
			}
			a := items[i]
			updated = &a
			break
		}
		return items
	})
	if updated == nil {
		return nil, false
	}
	s.emit(*updated)
	return updated, true
}

// ToggleActive flips the active flag.
func (s *Service) ToggleActive(id string) (*models.AdModel, bool) {
	var updated *models.AdModel
	s.col.Mutate(func(items []models.AdModel) []models.AdModel {
		for i := range items {
			if items[i].ID == id {
				items[i].IsActive = !items[i].IsActive
				a := items[i]
				updated = &a
				break
			}
		}
		return items
	})
	if updated == nil {
		return nil, false
	}
	s.emit(*updated)
	return updated, true
}

// Delete removes an ad by id.
func (s *Service) Delete(id string) bool {
	removed := false
	s.col.Mutate(func(items []models.AdModel) []models.AdModel {
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
	return removed
}

func (s *Service) emit(ad models.AdModel) {
	if s.hub != nil {
		s.hub.Broadcast(gateway.EventAdUpdated, ad)
	}
}

func seedAds() []models.AdModel {
	now := time.Now()
	return []models.AdModel{
		{
			ID:        "ad1",
			Label:     "Summer Tech Sale",
			Position:  models.AdSidebar,
			ImageURL:  "https://picsum.photos/seed/tech-ad/300/250",
			LinkURL:   "https://example.com",
			IsActive:  true,
			CreatedAt: now,
		},
		{
			ID:        "ad2",
			Label:     "Corporate Banking Solutions",
			Position:  models.AdHeader,
			ImageURL:  "https://picsum.photos/seed/bank-ad/728/90",
			LinkURL:   "https://example.com",
			IsActive:  true,
			CreatedAt: now,
		},
	}
}
