package models

import "time"

// Member is a registered account. The password hash never leaves the server.
type Member struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Bio          string    `json:"bio"`
	AvatarURL    *string   `json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile is a member together with everything they have posted.
type Profile struct {
	Member
	Posts []Post `json:"posts"`
}
