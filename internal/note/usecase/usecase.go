package usecase

import (
	"noteflow-backend/internal/note/domain"
	"noteflow-backend/internal/note/dto"
)

// NoteUsecase defines the interface for note business logic. All operations
// fail with domain.ErrNotFound when the note is absent or owned by another
// user — the two cases are indistinguishable.
type NoteUsecase interface {
	ListNotes(userID string) ([]*domain.Note, error)
	GetNote(userID, id string) (*domain.Note, error)
	CreateNote(userID string, req *dto.CreateNoteRequest) (*domain.Note, error)
	UpdateNote(userID, id string, req *dto.UpdateNoteRequest) (*domain.Note, error)

	// DeleteNote removes the note and scrubs its id from the owner's folders.
	DeleteNote(userID, id string) error

	// ToggleFavorite flips the flag and returns the new value.
	ToggleFavorite(userID, id string) (bool, error)
}

// FolderCleaner removes a deleted note's id from every folder of its owner.
// Implemented by the folder repository.
type FolderCleaner interface {
	RemoveNoteFromAll(userID, noteID string) error
}
