package model

import "time"

// Role grants access levels.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a site visitor account or the single admin.
type User struct {
	ID           string
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	Role         Role
	ProfileImage string
	CreatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Principal is the authenticated identity attached to a request.
type Principal struct {
	UserID   string
	Username string
	Email    string
	Role     Role
}

// PrincipalOf snapshots the identity fields of u.
func PrincipalOf(u *User) Principal {
	return Principal{UserID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
