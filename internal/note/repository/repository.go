package repository

import (
	"noteflow-backend/internal/note/domain"
)

// NoteRepository defines the interface for note data access. Every lookup and
// mutation is scoped by (id, userID) in a single query, so ownership and
// existence are checked atomically with the operation itself. Not-found
// lookups return (nil, nil).
type NoteRepository interface {
	Create(note *domain.Note) error

	// FindByUser returns the user's notes newest-first by creation time.
	FindByUser(userID string) ([]*domain.Note, error)

	FindByID(userID, id string) (*domain.Note, error)

	// UpdateFields applies the given column updates where the note exists and
	// is owned; returns the updated note or (nil, nil).
	UpdateFields(userID, id string, fields map[string]interface{}) (*domain.Note, error)

	// Delete reports whether a row was removed.
	Delete(userID, id string) (bool, error)

	// ToggleFavorite flips the flag in place and returns the updated note.
	ToggleFavorite(userID, id string) (*domain.Note, error)

	// FilterOwned narrows ids down to those owned by the user, preserving the
	// input order.
	FilterOwned(userID string, ids []string) ([]string, error)
}
