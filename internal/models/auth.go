package models

// UserRole represents the dashboard roles.
type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
)

// AuthUser is the session record stored under the auth_user key.
type AuthUser struct {
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`
}

// LoginRequest holds the login form values.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"min=6"`
}

// LoginResponse returns the stored session and where the browser goes next.
type LoginResponse struct {
	User     AuthUser `json:"user"`
	Redirect string   `json:"redirect"`
}
