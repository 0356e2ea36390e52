package delivery

import (
	"errors"
	"log"
	"net/http"

	"noteflow-backend/internal/note/domain"
	"noteflow-backend/internal/note/dto"
	"noteflow-backend/internal/note/usecase"

	"github.com/gin-gonic/gin"
)

// NoteHandler handles note-related HTTP requests
type NoteHandler struct {
	noteUsecase usecase.NoteUsecase
}

func NewNoteHandler(noteUsecase usecase.NoteUsecase) *NoteHandler {
	return &NoteHandler{noteUsecase: noteUsecase}
}

// GetNotes handles GET /notes
func (h *NoteHandler) GetNotes(c *gin.Context) {
	userID := c.GetString("userID")

	notes, err := h.noteUsecase.ListNotes(userID)
	if err != nil {
		log.Printf("[NoteHandler] list error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "notes": notes})
}

// GetNote handles GET /notes/:id
func (h *NoteHandler) GetNote(c *gin.Context) {
	userID := c.GetString("userID")

	note, err := h.noteUsecase.GetNote(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		log.Printf("[NoteHandler] get error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch note"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "note": note})
}

// CreateNote handles POST /notes
func (h *NoteHandler) CreateNote(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	note, err := h.noteUsecase.CreateNote(userID, &req)
	if err != nil {
		log.Printf("[NoteHandler] create error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "note": note})
}

// UpdateNote handles PUT /notes/:id
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	note, err := h.noteUsecase.UpdateNote(userID, c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		log.Printf("[NoteHandler] update error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update note"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "note": note})
}

// DeleteNote handles DELETE /notes/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	userID := c.GetString("userID")

	err := h.noteUsecase.DeleteNote(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		log.Printf("[NoteHandler] delete error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Note deleted"})
}

// ToggleFavorite handles POST /notes/:id/favorite. The response is kept
// minimal (just the new flag) since the UI calls this on every star click.
func (h *NoteHandler) ToggleFavorite(c *gin.Context) {
	userID := c.GetString("userID")

	isFavorite, err := h.noteUsecase.ToggleFavorite(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		log.Printf("[NoteHandler] toggle favorite error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle favorite"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "is_favorite": isFavorite})
}
