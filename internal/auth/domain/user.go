package domain

import (
	"errors"
	"time"
)

// Auth providers
const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

var (
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrNoGoogleAuth       = errors.New("google account not connected")
)

type User struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Password  string `json:"-"` // bcrypt hash, empty for OAuth-only accounts
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Provider  string `json:"provider" gorm:"default:local"`

	// Google linkage. GoogleToken holds the serialized OAuth token used
	// later for Docs export; never exposed over the API.
	GoogleSubject string `json:"-" gorm:"index"`
	GoogleToken   string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) HasGoogleAuth() bool {
	return u.GoogleToken != ""
}

// Session is a server-side session record referenced by an opaque cookie value.
type Session struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
