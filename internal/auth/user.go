package auth

import "time"

// User is an account that owns day records and can appear on friends'
// leaderboards.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
