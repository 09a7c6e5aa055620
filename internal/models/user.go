package models

import "time"

// User mirrors the users table.
type User struct {
	ID           int64      `db:"id"`
	Username     string     `db:"username"`
	PasswordHash string     `db:"password"`
	Role         string     `db:"role"`
	BranchID     *int64     `db:"branch_id"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}
