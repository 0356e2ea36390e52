package repository

import (
	"errors"
	"time"

	authdomain "noteflow-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sessionRepository implements SessionRepository using GORM
type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(userID string, ttl time.Duration) (*authdomain.Session, error) {
	session := &authdomain.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
		CreatedAt: time.Now(),
	}
	if err := r.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (r *sessionRepository) Lookup(id string) (*authdomain.Session, error) {
	var session authdomain.Session
	err := r.db.Where("id = ?", id).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Invalidate(id string) error {
	return r.db.Where("id = ?", id).Delete(&authdomain.Session{}).Error
}

// InvalidateExpired is a cleanup, not an invalidation of live sessions.
func (r *sessionRepository) InvalidateExpired(now time.Time) error {
	return r.db.Where("expires_at < ?", now).Delete(&authdomain.Session{}).Error
}
