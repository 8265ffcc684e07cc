package domain

import "time"

// AdminRole is the role stored on an Admin record.
type AdminRole string

const (
	AdminRoleAdmin     AdminRole = "admin"
	AdminRoleModerator AdminRole = "moderator"
)

func (r AdminRole) Valid() bool {
	return r == AdminRoleAdmin || r == AdminRoleModerator
}

// Admin is a platform administrator.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         AdminRole `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
