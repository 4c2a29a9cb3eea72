package models

import "time"

// StaffRole is the access level of a staff account.
type StaffRole string

const (
	RoleAdmin    StaffRole = "ADMIN"
	RoleEditor   StaffRole = "EDITOR"
	RoleReporter StaffRole = "REPORTER"
)

// Valid reports whether r is a known role.
func (r StaffRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleReporter:
		return true
	}
	return false
}

// SocialLinks holds optional profile links.
type SocialLinks struct {
	Twitter  string `json:"twitter,omitempty"`
	Facebook string `json:"facebook,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// UserModel is a staff account. Password holds the bcrypt hash; it is part
// of the persisted snapshot but must never leave through the API — handlers
// and sessions use Public().
type UserModel struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Role        StaffRole    `json:"role"`
	Email       string       `json:"email"`
	Password    string       `json:"password"`
	Designation string       `json:"designation,omitempty"`
	AvatarURL   string       `json:"avatar_url,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	Social      *SocialLinks `json:"social_links,omitempty"`
	CreatedAt   time.Time    `json:"created"`
}

// PublicUser is the credential-stripped view of a staff account.
type PublicUser struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Role        StaffRole    `json:"role"`
	Email       string       `json:"email"`
	Designation string       `json:"designation,omitempty"`
	AvatarURL   string       `json:"avatar_url,omitempty"`
	Bio         string       `json:"bio,omitempty"`
	Social      *SocialLinks `json:"social_links,omitempty"`
	CreatedAt   time.Time    `json:"created"`
}

// Public strips the credential from a user record.
func (u UserModel) Public() PublicUser {
	return PublicUser{
		ID:          u.ID,
		Name:        u.Name,
		Role:        u.Role,
		Email:       u.Email,
		Designation: u.Designation,
		AvatarURL:   u.AvatarURL,
		Bio:         u.Bio,
		Social:      u.Social,
		CreatedAt:   u.CreatedAt,
	}
}
