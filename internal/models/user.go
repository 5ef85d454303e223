package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database.
type UserDB struct {
	UserID       uuid.UUID `json:"userId" db:"user_id"`        // Primary key
	Email        string    `json:"email" db:"email"`           // Unique email
	Username     string    `json:"username" db:"username"`     // Display name
	PasswordHash string    `json:"-" db:"password_hash"`       // bcrypt hash
	Verified     bool      `json:"verified" db:"verified"`     // Email verified flag
	Code         *string   `json:"-" db:"code"`                // Pending verification code, nil once verified
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
