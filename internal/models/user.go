package models

import "time"

// User roles
const (
	RoleAdmin   = "admin"
	RoleAuditor = "auditor"
	RoleManager = "manager"
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"` // admin, auditor or manager
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsReviewer reports whether the user may resolve pending items.
func (u *User) IsReviewer() bool {
	return u.Role == RoleAdmin || u.Role == RoleAuditor
}

// RegisterRequest represents the request body for self-registration
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token       string      `json:"token"`
	User        *User       `json:"user"`
	Permissions Permissions `json:"permissions"`
}

// UpdateUserRequest represents the admin request body for updating a user
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"` // Optional, resets open requests when set
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// UpdateProfileRequest represents the self-service profile update body
type UpdateProfileRequest struct {
	Name     string `json:"name"`
	Password string `json:"password,omitempty"`
}

// NotificationCounts is the payload polled by admin/auditor dashboards.
type NotificationCounts struct {
	UnknownManagers int `json:"unknown_managers"`
	PasswordResets  int `json:"password_resets"`
}

// PasswordResetRequest is an open forgot-password request, pending until an
// admin sets a new password for the account.
type PasswordResetRequest struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
