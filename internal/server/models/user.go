package models

import "time"

// User is an account that can own locations and receive access grants.
// PasswordHash never leaves the repositories/services boundary.
type User struct {
	ID           int64
	Name         string
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}
