package dto

type GenerateNotesRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

type PushToDocsRequest struct {
	Title  string `json:"title"`
	Notes  string `json:"notes" binding:"required"`
	NoteID string `json:"note_id"`
}

type PushToDocsResult struct {
	DocURL string `json:"doc_url"`
	DocID  string `json:"doc_id"`
	NoteID string `json:"note_id"`
}
