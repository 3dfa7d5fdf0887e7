package models

import (
	"time"
)

type Provider string

const (
	ProviderEmail    Provider = "email"
	ProviderGoogle   Provider = "google"
	ProviderFacebook Provider = "facebook"
	ProviderApple    Provider = "apple"
	ProviderTwitter  Provider = "twitter"
)

// Account is a stored user identity. ID is assigned by the storage backend and
// carried here in its text form (hex object id or decimal row id).
type Account struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Provider     Provider   `json:"provider"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}
