package delivery

import (
	"errors"
	"log"
	"net/http"

	"noteflow-backend/internal/folder/domain"
	"noteflow-backend/internal/folder/dto"
	"noteflow-backend/internal/folder/usecase"

	"github.com/gin-gonic/gin"
)

// FolderHandler handles folder-related HTTP requests
type FolderHandler struct {
	folderUsecase usecase.FolderUsecase
}

func NewFolderHandler(folderUsecase usecase.FolderUsecase) *FolderHandler {
	return &FolderHandler{folderUsecase: folderUsecase}
}

// GetFolders handles GET /folders
func (h *FolderHandler) GetFolders(c *gin.Context) {
	userID := c.GetString("userID")

	folders, err := h.folderUsecase.ListFolders(userID)
	if err != nil {
		log.Printf("[FolderHandler] list error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch folders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "folders": folders})
}

// CreateFolder handles POST /folders
func (h *FolderHandler) CreateFolder(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Folder name is required"})
		return
	}

	folder, err := h.folderUsecase.CreateFolder(userID, req.Name)
	if err != nil {
		log.Printf("[FolderHandler] create error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create folder"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "folder": folder})
}

// RenameFolder handles PUT /folders/:id
func (h *FolderHandler) RenameFolder(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.RenameFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Folder name is required"})
		return
	}

	folder, err := h.folderUsecase.RenameFolder(userID, c.Param("id"), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
			return
		}
		log.Printf("[FolderHandler] rename error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename folder"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "folder": folder})
}

// DeleteFolder handles DELETE /folders/:id. Member notes are untouched.
func (h *FolderHandler) DeleteFolder(c *gin.Context) {
	userID := c.GetString("userID")

	err := h.folderUsecase.DeleteFolder(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
			return
		}
		log.Printf("[FolderHandler] delete error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete folder"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Folder deleted"})
}

// AddNotes handles POST /folders/:id/notes
func (h *FolderHandler) AddNotes(c *gin.Context) {
	userID := c.GetString("userID")

	var req dto.AddNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "note_ids is required"})
		return
	}

	folder, err := h.folderUsecase.AddNotes(userID, c.Param("id"), req.NoteIDs)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Folder not found"})
			return
		}
		log.Printf("[FolderHandler] add notes error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add notes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "folder": folder})
}
