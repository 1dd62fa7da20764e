package model

import (
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// ValidRole reports whether role is one of the roles accepted at registration.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleStudent
}

type User struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Not exposed
	Role           string    `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
}
