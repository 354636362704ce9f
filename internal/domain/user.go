package domain

import "time"

// UserRole enumerates dashboard access levels.
type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleEditor UserRole = "EDITOR"
)

// User is a dashboard account that designs and manages templates.
type User struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	Role           UserRole
	OrganizationID string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
