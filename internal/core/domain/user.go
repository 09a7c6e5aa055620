package domain

import (
	"strings"
	"time"
)

// Role identifies what a user may do and how their visibility is scoped.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleBranchManager Role = "branch manager"
)

// RoleFromString normalizes a stored or transmitted role value. Historical
// rows carry mixed casing ("Admin", "Branch Manager"), so comparison is
// case-insensitive after trimming.
func RoleFromString(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// User represents a back-office login.
type User struct {
	UserID       int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	BranchID     *int64     `json:"branchID,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}
