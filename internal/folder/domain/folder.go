package domain

import "errors"

// ErrNotFound covers both a missing folder and one owned by another user.
var ErrNotFound = errors.New("folder not found")

// Folder groups notes by id. Membership is a set: AddNotes unions, never
// duplicates, and existing order is preserved. Deleting a folder does not
// touch the notes it references.
type Folder struct {
	ID        string   `json:"id" gorm:"primaryKey"`
	UserID    string   `json:"-" gorm:"index;not null"`
	Name      string   `json:"name"`
	NoteIDs   []string `json:"note_ids" gorm:"serializer:json"`
	CreatedAt int64    `json:"created_at"`
}

// Union appends the ids not already present, keeping existing order.
func (f *Folder) Union(ids []string) {
	present := make(map[string]bool, len(f.NoteIDs))
	for _, id := range f.NoteIDs {
		present[id] = true
	}
	for _, id := range ids {
		if !present[id] {
			f.NoteIDs = append(f.NoteIDs, id)
			present[id] = true
		}
	}
}

// Remove drops an id from the member set if present.
func (f *Folder) Remove(noteID string) bool {
	for i, id := range f.NoteIDs {
		if id == noteID {
			f.NoteIDs = append(f.NoteIDs[:i], f.NoteIDs[i+1:]...)
			return true
		}
	}
	return false
}
