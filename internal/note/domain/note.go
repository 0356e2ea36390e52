package domain

import "errors"

const (
	// DefaultTitle is used when a note is created with an empty title.
	DefaultTitle = "Untitled Note"

	// PreviewLength bounds the derived excerpt of a note's content.
	PreviewLength = 150
)

// ErrNotFound covers both a missing note and a note owned by someone else;
// callers cannot tell the two apart.
var ErrNotFound = errors.New("note not found")

// Note is a generated or hand-written lecture note. Timestamps are epoch
// seconds. UserID is set at creation and never changes.
type Note struct {
	ID           string `json:"id" gorm:"primaryKey"`
	UserID       string `json:"-" gorm:"index;not null"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Transcript   string `json:"transcript,omitempty"`
	Preview      string `json:"preview"`
	GoogleDocID  string `json:"google_doc_id,omitempty"`
	GoogleDocURL string `json:"google_doc_url,omitempty"`
	IsFavorite   bool   `json:"is_favorite" gorm:"default:false"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

// MakePreview derives the bounded excerpt shown in note lists.
func MakePreview(content string) string {
	runes := []rune(content)
	if len(runes) <= PreviewLength {
		return content
	}
	return string(runes[:PreviewLength])
}
