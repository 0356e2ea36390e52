package repository

import (
	"sort"
	"sync"
	"time"

	"noteflow-backend/internal/note/domain"

	"github.com/google/uuid"
)

// memoryNoteRepository is an in-memory NoteRepository used when no database
// is configured and by tests.
type memoryNoteRepository struct {
	mu    sync.RWMutex
	notes map[string]*domain.Note
}

func NewMemoryNoteRepository() NoteRepository {
	return &memoryNoteRepository{notes: make(map[string]*domain.Note)}
}

func (r *memoryNoteRepository) Create(note *domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	note.CreatedAt = now
	note.UpdatedAt = now
	cp := *note
	r.notes[note.ID] = &cp
	return nil
}

func (r *memoryNoteRepository) FindByUser(userID string) ([]*domain.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var notes []*domain.Note
	for _, n := range r.notes {
		if n.UserID == userID {
			cp := *n
			notes = append(notes, &cp)
		}
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedAt != notes[j].CreatedAt {
			return notes[i].CreatedAt > notes[j].CreatedAt
		}
		return notes[i].ID > notes[j].ID
	})
	return notes, nil
}

func (r *memoryNoteRepository) FindByID(userID, id string) (*domain.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := r.notes[id]
	if n == nil || n.UserID != userID {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *memoryNoteRepository) UpdateFields(userID, id string, fields map[string]interface{}) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.notes[id]
	if n == nil || n.UserID != userID {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "title":
			n.Title = v.(string)
		case "content":
			n.Content = v.(string)
		case "transcript":
			n.Transcript = v.(string)
		case "preview":
			n.Preview = v.(string)
		case "google_doc_id":
			n.GoogleDocID = v.(string)
		case "google_doc_url":
			n.GoogleDocURL = v.(string)
		}
	}
	n.UpdatedAt = time.Now().Unix()
	cp := *n
	return &cp, nil
}

func (r *memoryNoteRepository) Delete(userID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.notes[id]
	if n == nil || n.UserID != userID {
		return false, nil
	}
	delete(r.notes, id)
	return true, nil
}

func (r *memoryNoteRepository) ToggleFavorite(userID, id string) (*domain.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := r.notes[id]
	if n == nil || n.UserID != userID {
		return nil, nil
	}
	n.IsFavorite = !n.IsFavorite
	n.UpdatedAt = time.Now().Unix()
	cp := *n
	return &cp, nil
}

func (r *memoryNoteRepository) FilterOwned(userID string, ids []string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var owned []string
	for _, id := range ids {
		if n := r.notes[id]; n != nil && n.UserID == userID {
			owned = append(owned, id)
		}
	}
	return owned, nil
}
