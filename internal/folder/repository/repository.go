package repository

import (
	"noteflow-backend/internal/folder/domain"
)

// FolderRepository defines the interface for folder data access. Mutations
// are ownership-scoped in the same query (or transaction) that performs
// them; not-found lookups return (nil, nil).
type FolderRepository interface {
	Create(folder *domain.Folder) error

	// FindByUser returns the user's folders newest-first by creation time.
	FindByUser(userID string) ([]*domain.Folder, error)

	FindByID(userID, id string) (*domain.Folder, error)

	// Rename changes the name; returns the updated folder or (nil, nil).
	Rename(userID, id, name string) (*domain.Folder, error)

	// Delete reports whether a row was removed.
	Delete(userID, id string) (bool, error)

	// AddNoteIDs unions ids into the member set atomically with the ownership
	// check; returns the updated folder or (nil, nil).
	AddNoteIDs(userID, id string, noteIDs []string) (*domain.Folder, error)

	// RemoveNoteFromAll drops noteID from every folder the user owns.
	RemoveNoteFromAll(userID, noteID string) error
}
