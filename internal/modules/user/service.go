package user

import (
	"time"

	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/majlis-kantho/core/internal/pkg/store"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const storageKey = "portal:users"

type CreateUserDTO struct {
	Name        string              `json:"name" binding:"required"`
	Role        models.StaffRole    `json:"role" binding:"required"`
	Email       string              `json:"email" binding:"required"`
	Password    string              `json:"password" binding:"required,min=6"`
	Designation string              `json:"designation"`
	AvatarURL   string              `json:"avatar_url"`
	Bio         string              `json:"bio"`
	Social      *models.SocialLinks `json:"social_links"`
}

type UpdateUserDTO struct {
	Name        *string             `json:"name"`
	Role        *models.StaffRole   `json:"role"`
	Email       *string             `json:"email"`
	Password    *string             `json:"password"`
	Designation *string             `json:"designation"`
	AvatarURL   *string             `json:"avatar_url"`
	Bio         *string             `json:"bio"`
	Social      *models.SocialLinks `json:"social_links"`
}

// Service owns the staff account list.
type Service struct {
	col *store.Collection[models.UserModel]
}

// NewService rehydrates the user store. A fresh installation is seeded with
// one bootstrap administrator so the admin console is reachable.
func NewService(kvs kv.Store, logger *zap.Logger) (*Service, error) {
	col, err := store.Load(kvs, storageKey, seedUsers(), logger)
	if err != nil {
		return nil, err
	}
	return &Service{col: col}, nil
}

// List returns every staff account, hashes included. Callers strip
// credentials with Public() before anything leaves the process.
func (s *Service) List() []models.UserModel {
	return s.col.Items()
}

// GetByID returns the user with the given id.
func (s *Service) GetByID(id string) (*models.UserModel, bool) {
	u, ok := s.col.Find(func(u models.UserModel) bool { return u.ID == id })
	if !ok {
		return nil, false
	}
	return &u, true
}

// ByEmail returns the user with the exact login identifier.
func (s *Service) ByEmail(email string) (*models.UserModel, bool) {
	u, ok := s.col.Find(func(u models.UserModel) bool { return u.Email == email })
	if !ok {
		return nil, false
	}
	return &u, true
}

// Exists reports whether a user id is still present.
func (s *Service) Exists(id string) bool {
	_, ok := s.GetByID(id)
	return ok
}

// Create adds a staff account with a hashed credential.
func (s *Service) Create(dto *CreateUserDTO) (models.UserModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.UserModel{}, err
	}
	u := models.UserModel{
		ID:          models.NewID(),
		Name:        dto.Name,
		Role:        dto.Role,
		Email:       dto.Email,
		Password:    string(hash),
		Designation: dto.Designation,
		AvatarURL:   dto.AvatarURL,
		Bio:         dto.Bio,
		Social:      dto.Social,
		CreatedAt:   time.Now(),
	}
	s.col.Mutate(func(items []models.UserModel) []models.UserModel {
		return append(items, u)
	})
	return u, nil
}

// Update merges the patch into the account. A plaintext password in the
// patch is hashed before it is stored.
func (s *Service) Update(id string, dto *UpdateUserDTO) (*models.UserModel, error) {
	var hash string
	if dto.Password != nil {
		h, err := bcrypt.GenerateFromPassword([]byte(*dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	var updated *models.UserModel
	s.col.Mutate(func(items []models.UserModel) []models.UserModel {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if dto.Name != nil {
				items[i].Name = *dto.Name
			}
			if dto.Role != nil {
				items[i].Role = *dto.Role
			}
			if dto.Email != nil {
				items[i].Email = *dto.Email
			}
			if hash != "" {
				items[i].Password = hash
			}
			if dto.Designation != nil {
				items[i].Designation = *dto.Designation
			}
			if dto.AvatarURL != nil {
				items[i].AvatarURL = *dto.AvatarURL
			}
			if dto.Bio != nil {
				items[i].Bio = *dto.Bio
			}
			if dto.Social != nil {
				items[i].Social = dto.Social
			}
			u := items[i]
			updated = &u
			break
		}
		return items
	})
	return updated, nil
}

// Delete removes an account. Deleting the sole remaining user is a no-op;
// the portal must never lock itself out.
func (s *Service) Delete(id string) bool {
	removed := false
	s.col.Mutate(func(items []models.UserModel) []models.UserModel {
		if len(items) <= 1 {
			return items
		}
		out := items[:0]
		for _, u := range items {
			if u.ID == id {
				removed = true
				continue
			}
			out = append(out, u)
		}
		return out
	})
	return removed
}

// VerifyPassword compares a plaintext secret with the stored hash.
func (s *Service) VerifyPassword(u *models.UserModel, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

func seedUsers() []models.UserModel {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return nil
	}
	return []models.UserModel{
		{
			ID:          "1",
			Name:        "Super Admin",
			Role:        models.RoleAdmin,
			Email:       "admin",
			Password:    string(hash),
			Designation: "Chief Editor",
			AvatarURL:   "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?auto=format&fit=facearea&facepad=2&w=256&h=256&q=80",
			CreatedAt:   time.Now(),
		},
	}
}
