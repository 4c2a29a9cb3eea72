package poll

import (
	"errors"
	"sort"
	"time"

	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/modules/gateway"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/majlis-kantho/core/internal/pkg/store"
	"go.uber.org/zap"
)

const storageKey = "portal:polls"

var (
	ErrPollNotFound     = errors.New("poll not found")
	ErrOptionOutOfRange = errors.New("option index out of range")
)

type CreatePollDTO struct {
	Question string   `json:"question" binding:"required"`
	Options  []string `json:"options" binding:"required,min=2"`
}

type UpdatePollDTO struct {
	Question *string              `json:"question"`
	Options  *[]models.PollOption `json:"options"`
}

// Service owns the poll collection.
type Service struct {
	col *store.Collection[models.PollModel]
	hub *gateway.Hub
}

func NewService(kvs kv.Store, hub *gateway.Hub, logger *zap.Logger) (*Service, error) {
	col, err := store.Load(kvs, storageKey, seedPolls(), logger)
	if err != nil {
		return nil, err
	}
	return &Service{col: col, hub: hub}, nil
}

// List returns every poll.
func (s *Service) List() []models.PollModel {
	return s.col.Items()
}

// ActivePoll returns the first active poll, or nil.
func (s *Service) ActivePoll() *models.PollModel {
	p, ok := s.col.Find(func(p models.PollModel) bool { return p.IsActive })
	if !ok {
		return nil
	}
	return &p
}

// ArchivedPolls returns every inactive poll, newest-created-first.
func (s *Service) ArchivedPolls() []models.PollModel {
	out := s.col.Filter(func(p models.PollModel) bool { return !p.IsActive })
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// GetByID returns the poll with the given id.
func (s *Service) GetByID(id string) (*models.PollModel, bool) {
	p, ok := s.col.Find(func(p models.PollModel) bool { return p.ID == id })
	if !ok {
		return nil, false
	}
	return &p, true
}

// Add creates a poll, forces it active, and deactivates every existing poll
// in the same write.
func (s *Service) Add(dto *CreatePollDTO) models.PollModel {
	options := make([]models.PollOption, 0, len(dto.Options))
	for _, label := range dto.Options {
		options = append(options, models.PollOption{Label: label})
	}
	poll := models.PollModel{
		ID:        models.NewID(),
		Question:  dto.Question,
		Options:   options,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	s.col.Mutate(func(items []models.PollModel) []models.PollModel {
		for i := range items {
			items[i].IsActive = false
		}
		return append([]models.PollModel{poll}, items...)
	})
	s.emit(gateway.EventPollActivated, poll)
	return poll
}

// Update merges the patch into the poll.
func (s *Service) Update(id string, dto *UpdatePollDTO) (*models.PollModel, bool) {
	var updated *models.PollModel
	s.col.Mutate(func(items []models.PollModel) []models.PollModel {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if dto.Question != nil {
				items[i].Question = *dto.Question
			}
			if dto.Options != nil {
				items[i].Options = *dto.Options
			}
			p := items[i]
			updated = &p
			break
		}
		return items
	})
	if updated == nil {
		return nil, false
	}
	s.emit(gateway.EventPollUpdated, *updated)
	return updated, true
}

// Vote increments one option tally. An out-of-range index is rejected and
// leaves every count untouched.
func (s *Service) Vote(pollID string, optionIndex int) (*models.PollModel, error) {
	var (
		updated *models.PollModel
		voteErr error
	)
	s.col.Mutate(func(items []models.PollModel) []models.PollModel {
		for i := range items {
			if items[i].ID != pollID {
				continue
			}
			if optionIndex < 0 || optionIndex >= len(items[i].Options) {
				voteErr = ErrOptionOutOfRange
				return items
			}
			items[i].Options[optionIndex].Votes++
			p := items[i]
			updated = &p
			return items
		}
		voteErr = ErrPollNotFound
		return items
	})
	if voteErr != nil {
		return nil, voteErr
	}
	s.emit(gateway.EventPollUpdated, *updated)
	return updated, nil
}

// Archive deactivates one poll without touching the others.
func (s *Service) Archive(id string) (*models.PollModel, bool) {
	return s.setActive(id, false)
}

// Activate makes exactly one poll active system-wide.
func (s *Service) Activate(id string) (*models.PollModel, bool) {
	var updated *models.PollModel
	s.col.Mutate(func(items []models.PollModel) []models.PollModel {
		idx := -1
		for i := range items {
			if items[i].ID == id {
				idx = i
				break
			}
		}
		// unknown id must not deactivate everything
		if idx < 0 {
			return items
		}
		for i := range items {
			items[i].IsActive = i == idx
		}
		p := items[idx]
		updated = &p
		return items
	})
	if updated == nil {
		return nil, false
	}
	s.emit(gateway.EventPollActivated, *updated)
	return updated, true
}

// Delete removes a poll by id.
func (s *Service) Delete(id string) bool {
	removed := false
	s.col.Mutate(func(items []models.PollModel) []models.PollModel {
		out := items[:0]
		for _, p := range items {
			if p.ID == id {
				removed = true
				continue
			}
			out = append(out, p)
		}
		return out
	})
	return removed
}

func (s *Service) setActive(id string, active bool) (*models.PollModel, bool) {
	var updated *models.PollModel
	s.col.Mutate(func(items []models.PollModel) []models.PollModel {
		for i := range items {
			if items[i].ID == id {
				items[i].IsActive = active
				p := items[i]
				updated = &p
				break
			}
		}
		return items
	})
	if updated == nil {
		return nil, false
	}
	s.emit(gateway.EventPollUpdated, *updated)
	return updated, true
}

func (s *Service) emit(event string, payload interface{}) {
	if s.hub != nil {
		s.hub.Broadcast(event, payload)
	}
}

func seedPolls() []models.PollModel {
	now := time.Now()
	return []models.PollModel{
		{
			ID:       "p1",
			Question: "Do you support the implementation of new digital infrastructure taxes proposed for FY 2024-25?",
			Options: []models.PollOption{
				{Label: "Yes", Votes: 1240},
				{Label: "No", Votes: 850},
				{Label: "Unsure", Votes: 200},
			},
			IsActive:  true,
			CreatedAt: now,
		},
		{
			ID:       "p0",
			Question: "Should public transport in the capital be fully electrified by 2030?",
			Options: []models.PollOption{
				{Label: "Strongly Agree", Votes: 3400},
				{Label: "Neutral", Votes: 450},
				{Label: "Disagree", Votes: 120},
			},
			IsActive:  false,
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}
}
