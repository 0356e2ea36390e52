package dto

type CreateFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

type RenameFolderRequest struct {
	Name string `json:"name" binding:"required"`
}

type AddNotesRequest struct {
	NoteIDs []string `json:"note_ids" binding:"required"`
}
