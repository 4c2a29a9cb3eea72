package settings

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/modules/gateway"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"go.uber.org/zap"
)

const storageKey = "portal:settings"

// PatchDTO is a shallow merge over the settings singleton. Absent fields
// keep their stored value.
type PatchDTO struct {
	SiteName          *string   `json:"site_name"`
	SiteTagline       *string   `json:"site_tagline"`
	ContactEmail      *string   `json:"contact_email"`
	ContactPhone      *string   `json:"contact_phone"`
	Address           *string   `json:"address"`
	Categories        *[]string `json:"categories"`
	IsMaintenanceMode *bool     `json:"is_maintenance_mode"`
	BreakingNewsCount *int      `json:"breaking_news_count"`
	EnableAISummaries *bool     `json:"enable_ai_summaries"`
}

// Service holds the single portal settings document.
type Service struct {
	mu      sync.RWMutex
	current models.SettingsModel
	kvs     kv.Store
	hub     *gateway.Hub
	logger  *zap.Logger
}

// NewService rehydrates the settings document, falling back to the built-in
// defaults when the key is absent or unreadable.
func NewService(kvs kv.Store, hub *gateway.Hub, logger *zap.Logger) (*Service, error) {
	s := &Service{
		current: models.DefaultSettings(),
		kvs:     kvs,
		hub:     hub,
		logger:  logger.Named("settings"),
	}
	raw, ok, err := kvs.Get(context.Background(), storageKey)
	if err != nil {
		return nil, err
	}
	if ok {
		var stored models.SettingsModel
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			s.logger.Warn("stored settings unreadable, using defaults", zap.Error(err))
		} else {
			s.current = stored
		}
	} else if err := s.persistLocked(); err != nil {
		return nil, err
	}
	return s, nil
}

// Get returns a copy of the current settings.
func (s *Service) Get() models.SettingsModel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.current
	out.Categories = append([]string(nil), s.current.Categories...)
	return out
}

// AISummariesEnabled reports the summarization kill switch.
func (s *Service) AISummariesEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.EnableAISummaries
}

// BreakingNewsCount returns the ticker cap.
func (s *Service) BreakingNewsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.BreakingNewsCount
}

// Patch merges the DTO into the stored document and persists the result.
func (s *Service) Patch(dto *PatchDTO) models.SettingsModel {
	s.mu.Lock()
	if dto.SiteName != nil {
		s.current.SiteName = *dto.SiteName
	}
	if dto.SiteTagline != nil {
		s.current.SiteTagline = *dto.SiteTagline
	}
	if dto.ContactEmail != nil {
		s.current.ContactEmail = *dto.ContactEmail
	}
	if dto.ContactPhone != nil {
		s.current.ContactPhone = *dto.ContactPhone
	}
	if dto.Address != nil {
		s.current.Address = *dto.Address
	}
	if dto.Categories != nil {
		s.current.Categories = append([]string(nil), (*dto.Categories)...)
	}
	if dto.IsMaintenanceMode != nil {
		s.current.IsMaintenanceMode = *dto.IsMaintenanceMode
	}
	if dto.BreakingNewsCount != nil {
		s.current.BreakingNewsCount = *dto.BreakingNewsCount
	}
	if dto.EnableAISummaries != nil {
		s.current.EnableAISummaries = *dto.EnableAISummaries
	}
	if err := s.persistLocked(); err != nil {
		s.logger.Error("persist settings", zap.Error(err))
	}
	out := s.current
	out.Categories = append([]string(nil), s.current.Categories...)
	s.mu.Unlock()

	if s.hub != nil {
		s.hub.Broadcast(gateway.EventSettingsUpdated, out)
	}
	return out
}

func (s *Service) persistLocked() error {
	raw, err := json.Marshal(s.current)
	if err != nil {
		return err
	}
	return s.kvs.Set(context.Background(), storageKey, string(raw))
}
