package domain

import "time"

// UserRole enumerates dashboard roles.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User is a dashboard account. Role gates destructive operations
// such as lead deletion.
type User struct {
	ID           int64
	UserName     string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
