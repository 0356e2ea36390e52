package repository

import (
	"sort"
	"sync"
	"time"

	"noteflow-backend/internal/folder/domain"

	"github.com/google/uuid"
)

// memoryFolderRepository is an in-memory FolderRepository used when no
// database is configured and by tests.
type memoryFolderRepository struct {
	mu      sync.RWMutex
	folders map[string]*domain.Folder
}

func NewMemoryFolderRepository() FolderRepository {
	return &memoryFolderRepository{folders: make(map[string]*domain.Folder)}
}

func copyFolder(f *domain.Folder) *domain.Folder {
	cp := *f
	cp.NoteIDs = append([]string{}, f.NoteIDs...)
	return &cp
}

func (r *memoryFolderRepository) Create(folder *domain.Folder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if folder.ID == "" {
		folder.ID = uuid.New().String()
	}
	if folder.NoteIDs == nil {
		folder.NoteIDs = []string{}
	}
	folder.CreatedAt = time.Now().Unix()
	r.folders[folder.ID] = copyFolder(folder)
	return nil
}

func (r *memoryFolderRepository) FindByUser(userID string) ([]*domain.Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var folders []*domain.Folder
	for _, f := range r.folders {
		if f.UserID == userID {
			folders = append(folders, copyFolder(f))
		}
	}
	sort.Slice(folders, func(i, j int) bool {
		if folders[i].CreatedAt != folders[j].CreatedAt {
			return folders[i].CreatedAt > folders[j].CreatedAt
		}
		return folders[i].ID > folders[j].ID
	})
	return folders, nil
}

func (r *memoryFolderRepository) FindByID(userID, id string) (*domain.Folder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f := r.folders[id]
	if f == nil || f.UserID != userID {
		return nil, nil
	}
	return copyFolder(f), nil
}

func (r *memoryFolderRepository) Rename(userID, id, name string) (*domain.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := r.folders[id]
	if f == nil || f.UserID != userID {
		return nil, nil
	}
	f.Name = name
	return copyFolder(f), nil
}

func (r *memoryFolderRepository) Delete(userID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := r.folders[id]
	if f == nil || f.UserID != userID {
		return false, nil
	}
	delete(r.folders, id)
	return true, nil
}

func (r *memoryFolderRepository) AddNoteIDs(userID, id string, noteIDs []string) (*domain.Folder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f := r.folders[id]
	if f == nil || f.UserID != userID {
		return nil, nil
	}
	f.Union(noteIDs)
	return copyFolder(f), nil
}

func (r *memoryFolderRepository) RemoveNoteFromAll(userID, noteID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.folders {
		if f.UserID == userID {
			f.Remove(noteID)
		}
	}
	return nil
}
