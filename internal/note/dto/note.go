package dto

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Preview string `json:"preview"`
}

type UpdateNoteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}
