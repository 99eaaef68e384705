package users

import "time"

// User represents a user account for management.
type User struct {
	ID          int64      `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email"`
	IsActive    bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewUser carries the fields needed to create an account.
type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
	IsActive     bool
}
