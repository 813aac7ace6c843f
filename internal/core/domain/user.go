package domain

import "time"

// Roles issued by the DevApi backend. The panel only draws a binary
// admin/non-admin distinction from them.
const (
	RoleAdmin  = "ADMIN"
	RoleDriver = "DRIVER"
	RoleUser   = "USER"
)

// User models an authenticated actor as reported by the backend.
type User struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	FirstName string     `json:"firstName,omitempty"`
	LastName  string     `json:"lastName,omitempty"`
	Theme     string     `json:"theme,omitempty"`
	Language  string     `json:"language,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// IsAdmin reports whether the user may access the admin panel.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// DisplayName returns the best human-readable name available.
func (u User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.Username != "":
		return u.Username
	default:
		return u.Email
	}
}

// LoginResult is the payload of a successful POST /auth/login.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
