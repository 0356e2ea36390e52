package usecase

import (
	"noteflow-backend/internal/folder/domain"
	"noteflow-backend/internal/folder/repository"
)

// NoteOwnership narrows a list of note ids down to those the user owns.
// Implemented by the note repository.
type NoteOwnership interface {
	FilterOwned(userID string, ids []string) ([]string, error)
}

// FolderUsecase defines the interface for folder business logic
type FolderUsecase interface {
	ListFolders(userID string) ([]*domain.Folder, error)
	CreateFolder(userID, name string) (*domain.Folder, error)
	RenameFolder(userID, id, name string) (*domain.Folder, error)
	DeleteFolder(userID, id string) error

	// AddNotes unions the given note ids into the folder. Ids the caller does
	// not own are silently dropped before the union.
	AddNotes(userID, id string, noteIDs []string) (*domain.Folder, error)
}

type folderUsecase struct {
	folderRepo repository.FolderRepository
	notes      NoteOwnership
}

func NewFolderUsecase(folderRepo repository.FolderRepository, notes NoteOwnership) FolderUsecase {
	return &folderUsecase{
		folderRepo: folderRepo,
		notes:      notes,
	}
}

func (u *folderUsecase) ListFolders(userID string) ([]*domain.Folder, error) {
	folders, err := u.folderRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if folders == nil {
		folders = []*domain.Folder{}
	}
	return folders, nil
}

func (u *folderUsecase) CreateFolder(userID, name string) (*domain.Folder, error) {
	folder := &domain.Folder{
		UserID:  userID,
		Name:    name,
		NoteIDs: []string{},
	}
	if err := u.folderRepo.Create(folder); err != nil {
		return nil, err
	}
	return folder, nil
}

func (u *folderUsecase) RenameFolder(userID, id, name string) (*domain.Folder, error) {
	folder, err := u.folderRepo.Rename(userID, id, name)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, domain.ErrNotFound
	}
	return folder, nil
}

func (u *folderUsecase) DeleteFolder(userID, id string) error {
	deleted, err := u.folderRepo.Delete(userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func (u *folderUsecase) AddNotes(userID, id string, noteIDs []string) (*domain.Folder, error) {
	owned, err := u.notes.FilterOwned(userID, noteIDs)
	if err != nil {
		return nil, err
	}

	folder, err := u.folderRepo.AddNoteIDs(userID, id, owned)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, domain.ErrNotFound
	}
	return folder, nil
}
