package api

import (
	"net/http"

	"noteflow-backend/internal/auth/delivery"
	authUsecase "noteflow-backend/internal/auth/usecase"
	folderDelivery "noteflow-backend/internal/folder/delivery"
	lectureDelivery "noteflow-backend/internal/lecture/delivery"
	noteDelivery "noteflow-backend/internal/note/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authUc authUsecase.AuthUsecase,
	authHandler *delivery.AuthHandler,
	noteHandler *noteDelivery.NoteHandler,
	folderHandler *folderDelivery.FolderHandler,
	lectureHandler *lectureDelivery.LectureHandler,
) {
	// Health check (no auth required)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "running"})
	})

	// Local auth
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/me", delivery.AuthMiddleware(authUc), authHandler.Me)

	// Session, status and OAuth
	auth := r.Group("/auth")
	{
		auth.GET("/logout", delivery.AuthMiddleware(authUc), authHandler.Logout)
		auth.GET("/status", authHandler.Status)
		auth.GET("/google", delivery.AuthMiddleware(authUc), authHandler.DocsConnect)
		auth.GET("/google/login", authHandler.GoogleLogin)
		auth.GET("/google/callback", authHandler.GoogleLoginCallback)
	}
	r.GET("/oauth2callback", authHandler.DocsCallback)

	// Notes (protected)
	notes := r.Group("/notes")
	notes.Use(delivery.AuthMiddleware(authUc))
	{
		notes.GET("", noteHandler.GetNotes)
		notes.POST("", noteHandler.CreateNote)
		notes.GET("/:id", noteHandler.GetNote)
		notes.PUT("/:id", noteHandler.UpdateNote)
		notes.DELETE("/:id", noteHandler.DeleteNote)
		notes.POST("/:id/favorite", noteHandler.ToggleFavorite)
		notes.POST("/:id/chat", lectureHandler.Chat)
	}

	// Folders (protected)
	folders := r.Group("/folders")
	folders.Use(delivery.AuthMiddleware(authUc))
	{
		folders.GET("", folderHandler.GetFolders)
		folders.POST("", folderHandler.CreateFolder)
		folders.PUT("/:id", folderHandler.RenameFolder)
		folders.DELETE("/:id", folderHandler.DeleteFolder)
		folders.POST("/:id/notes", folderHandler.AddNotes)
	}

	// Lecture pipeline (protected)
	r.POST("/transcribe", delivery.AuthMiddleware(authUc), lectureHandler.Transcribe)
	r.POST("/generate-notes", delivery.AuthMiddleware(authUc), lectureHandler.GenerateNotes)
	r.POST("/push-to-docs", delivery.AuthMiddleware(authUc), lectureHandler.PushToDocs)
}
