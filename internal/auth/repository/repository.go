package repository

import (
	"time"

	authdomain "noteflow-backend/internal/auth/domain"
)

// UserRepository defines the interface for user data access.
// Lookups return (nil, nil) when no record matches.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	FindByGoogleSubject(subject string) (*authdomain.User, error)
	Update(user *authdomain.User) error
}

// SessionRepository is the server-side session store. It is constructed once
// at process start and passed to the auth usecase; there is no ambient
// session state anywhere else.
type SessionRepository interface {
	Create(userID string, ttl time.Duration) (*authdomain.Session, error)
	Lookup(id string) (*authdomain.Session, error)
	Invalidate(id string) error
	InvalidateExpired(now time.Time) error
}
