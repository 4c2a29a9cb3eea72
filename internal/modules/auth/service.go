package auth

import (
	"context"
	"errors"

	"github.com/majlis-kantho/core/internal/models"
	"github.com/majlis-kantho/core/internal/modules/user"
	"github.com/majlis-kantho/core/internal/pkg/jwt"
	"github.com/majlis-kantho/core/internal/pkg/kv"
	"github.com/majlis-kantho/core/internal/pkg/session"
	"go.uber.org/zap"
)

var (
	// ErrInvalidCredentials is returned for any login or re-auth failure.
	// The message never reveals whether the account exists.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordPolicy is returned when a new password is too short.
	ErrPasswordPolicy = errors.New("password must be at least 6 characters")
)

// Service issues and revokes admin sessions. It depends on the user store
// for credential checks and never touches the user snapshot directly.
type Service struct {
	users  *user.Service
	kvs    kv.Store
	logger *zap.Logger
}

func NewService(users *user.Service, kvs kv.Store, logger *zap.Logger) *Service {
	return &Service{users: users, kvs: kvs, logger: logger.Named("auth")}
}

// Login verifies the credential pair and, on success, opens a session and
// signs a token bound to it.
func (s *Service) Login(ctx context.Context, email, password, ip, ua string) (string, models.PublicUser, error) {
	u, ok := s.users.ByEmail(email)
	if !ok || !s.users.VerifyPassword(u, password) {
		return "", models.PublicUser{}, ErrInvalidCredentials
	}
	sess, err := session.Issue(ctx, s.kvs, u.ID, ip, ua, session.DefaultTTL)
	if err != nil {
		return "", models.PublicUser{}, err
	}
	token, err := jwt.Sign(u.ID, sess.ID, session.DefaultTTL)
	if err != nil {
		return "", models.PublicUser{}, err
	}
	s.logger.Info("session opened", zap.String("user", u.ID), zap.String("ip", ip))
	return token, u.Public(), nil
}

// Logout revokes the session behind the presented token.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return session.Revoke(ctx, s.kvs, sessionID)
}

// Me returns the authenticated account without its credential.
func (s *Service) Me(userID string) (models.PublicUser, bool) {
	u, ok := s.users.GetByID(userID)
	if !ok {
		return models.PublicUser{}, false
	}
	return u.Public(), true
}

// ProfileDTO is the self-service subset of the account. Role and email stay
// admin-only.
type ProfileDTO struct {
	Name        *string             `json:"name"`
	Designation *string             `json:"designation"`
	AvatarURL   *string             `json:"avatar_url"`
	Bio         *string             `json:"bio"`
	Social      *models.SocialLinks `json:"social_links"`
}

// UpdateProfile merges the self-service fields into the caller's account.
func (s *Service) UpdateProfile(userID string, dto *ProfileDTO) (models.PublicUser, error) {
	u, err := s.users.Update(userID, &user.UpdateUserDTO{
		Name:        dto.Name,
		Designation: dto.Designation,
		AvatarURL:   dto.AvatarURL,
		Bio:         dto.Bio,
		Social:      dto.Social,
	})
	if err != nil {
		return models.PublicUser{}, err
	}
	if u == nil {
		return models.PublicUser{}, ErrInvalidCredentials
	}
	return u.Public(), nil
}

// ChangePassword re-verifies the current secret before accepting a new one.
func (s *Service) ChangePassword(userID, current, next string) error {
	u, ok := s.users.GetByID(userID)
	if !ok || !s.users.VerifyPassword(u, current) {
		return ErrInvalidCredentials
	}
	if len(next) < 6 {
		return ErrPasswordPolicy
	}
	_, err := s.users.Update(userID, &user.UpdateUserDTO{Password: &next})
	return err
}
