package model

import "time"

// User represents a registered account: customer, tailor or admin.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile holds display data attached to a user account.
type Profile struct {
	ID        int64
	UserID    int64
	FullName  string
	Phone     *string
	AvatarURL *string
}
