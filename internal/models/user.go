package models

import "time"

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPERADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleTeacher    UserRole = "TEACHER"
	RoleStudent    UserRole = "STUDENT"
)

// IsAdmin reports whether the role may use the admin portal.
func (r UserRole) IsAdmin() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// Admin is a back-office account stored in the admins table.
type Admin struct {
	ID           string     `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	PhoneNumber  *string    `db:"phone_number" json:"phone_number,omitempty"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         UserRole   `db:"role" json:"role"`
	Active       bool       `db:"active" json:"active"`
	LastLogin    *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// CreateAdminRequest is the payload for creating an ADMIN account.
type CreateAdminRequest struct {
	Username    string  `json:"username" validate:"required,min=3,max=64"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Password    string  `json:"password" validate:"required,min=6"`
}

// UpdateAdminRequest changes an admin account. Nil fields are left as-is.
type UpdateAdminRequest struct {
	Username    *string   `json:"username" validate:"omitempty,min=3,max=64"`
	PhoneNumber *string   `json:"phone_number" validate:"omitempty,min=7,max=20"`
	Role        *UserRole `json:"role" validate:"omitempty,oneof=ADMIN SUPERADMIN"`
}

// UpdateProfileRequest is what an admin may change about their own account.
type UpdateProfileRequest struct {
	Username    *string `json:"username" validate:"omitempty,min=3,max=64"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=7,max=20"`
}
