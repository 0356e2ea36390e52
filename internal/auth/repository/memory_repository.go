package repository

import (
	"sync"
	"time"

	authdomain "noteflow-backend/internal/auth/domain"

	"github.com/google/uuid"
)

// memoryUserRepository is an in-memory UserRepository used when no database
// is configured and by tests.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*authdomain.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]*authdomain.User)}
}

func (r *memoryUserRepository) Create(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Uniqueness is enforced here, under the lock, so two concurrent
	// registrations for the same email cannot both pass the usecase's
	// pre-check and land.
	for _, u := range r.users {
		if u.Email == user.Email {
			return authdomain.ErrDuplicateEmail
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memoryUserRepository) FindByEmail(email string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByID(id string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memoryUserRepository) FindByGoogleSubject(subject string) (*authdomain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if subject == "" {
		return nil, nil
	}
	for _, u := range r.users {
		if u.GoogleSubject == subject {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepository) Update(user *authdomain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.UpdatedAt = time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

// memorySessionRepository is the in-memory counterpart of the session store.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*authdomain.Session
}

func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{sessions: make(map[string]*authdomain.Session)}
}

func (r *memorySessionRepository) Create(userID string, ttl time.Duration) (*authdomain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session := &authdomain.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
		CreatedAt: time.Now(),
	}
	r.sessions[session.ID] = session
	cp := *session
	return &cp, nil
}

func (r *memorySessionRepository) Lookup(id string) (*authdomain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.sessions[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memorySessionRepository) Invalidate(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

func (r *memorySessionRepository) InvalidateExpired(now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		if s.Expired(now) {
			delete(r.sessions, id)
		}
	}
	return nil
}
