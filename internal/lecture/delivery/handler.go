package delivery

import (
	"errors"
	"log"
	"net/http"

	authdomain "noteflow-backend/internal/auth/domain"
	"noteflow-backend/internal/lecture/dto"
	"noteflow-backend/internal/lecture/usecase"
	notedomain "noteflow-backend/internal/note/domain"
	notedto "noteflow-backend/internal/note/dto"
	"noteflow-backend/pkg/docs"
	"noteflow-backend/pkg/transcribe"

	"github.com/gin-gonic/gin"
)

// LectureHandler handles the transcription / generation / export endpoints
type LectureHandler struct {
	lectureUsecase usecase.LectureUsecase
}

func NewLectureHandler(lectureUsecase usecase.LectureUsecase) *LectureHandler {
	return &LectureHandler{lectureUsecase: lectureUsecase}
}

// Transcribe handles POST /transcribe (multipart "audio" file).
func (h *LectureHandler) Transcribe(c *gin.Context) {
	file, header, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Audio file is required"})
		return
	}
	defer file.Close()

	transcript, err := h.lectureUsecase.Transcribe(c.Request.Context(), header.Filename, file)
	if err != nil {
		if errors.Is(err, transcribe.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Transcription timed out"})
			return
		}
		log.Printf("[LectureHandler] transcription failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Transcription failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "transcript": transcript})
}

// GenerateNotes handles POST /generate-notes.
func (h *LectureHandler) GenerateNotes(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.GenerateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No transcript provided"})
		return
	}

	note, err := h.lectureUsecase.GenerateNotes(c.Request.Context(), userID, req.Transcript)
	if err != nil {
		log.Printf("[LectureHandler] note generation failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate notes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"notes":   note.Content,
		"note_id": note.ID,
	})
}

// Chat handles POST /notes/:id/chat.
func (h *LectureHandler) Chat(c *gin.Context) {
	userID := c.GetString("userID")

	var req notedto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
		return
	}

	answer, err := h.lectureUsecase.ChatWithNote(c.Request.Context(), userID, c.Param("id"), req.Question)
	if err != nil {
		if errors.Is(err, notedomain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		log.Printf("[LectureHandler] chat failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to answer question"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "answer": answer})
}

// PushToDocs handles POST /push-to-docs.
func (h *LectureHandler) PushToDocs(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.PushToDocsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No notes provided"})
		return
	}

	result, err := h.lectureUsecase.PushToDocs(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, authdomain.ErrNoGoogleAuth) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Google account not connected", "needs_auth": true})
			return
		}
		if errors.Is(err, notedomain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}
		if errors.Is(err, docs.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Document export timed out"})
			return
		}
		log.Printf("[LectureHandler] docs export failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to export to Google Docs"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"doc_url": result.DocURL,
		"doc_id":  result.DocID,
		"note_id": result.NoteID,
	})
}
