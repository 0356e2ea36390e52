package api

import (
	authDelivery "noteflow-backend/internal/auth/delivery"
	authUsecasePkg "noteflow-backend/internal/auth/usecase"
	folderDelivery "noteflow-backend/internal/folder/delivery"
	folderUsecasePkg "noteflow-backend/internal/folder/usecase"
	lectureDelivery "noteflow-backend/internal/lecture/delivery"
	lectureUsecasePkg "noteflow-backend/internal/lecture/usecase"
	noteDelivery "noteflow-backend/internal/note/delivery"
	noteUsecasePkg "noteflow-backend/internal/note/usecase"
	"noteflow-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase    authUsecasePkg.AuthUsecase
	authHandler    *authDelivery.AuthHandler
	noteHandler    *noteDelivery.NoteHandler
	folderHandler  *folderDelivery.FolderHandler
	lectureHandler *lectureDelivery.LectureHandler
	config         *config.Config
}

func NewHandler(
	authUc authUsecasePkg.AuthUsecase,
	noteUc noteUsecasePkg.NoteUsecase,
	folderUc folderUsecasePkg.FolderUsecase,
	lectureUc lectureUsecasePkg.LectureUsecase,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:    authUc,
		authHandler:    authDelivery.NewAuthHandler(authUc, cfg),
		noteHandler:    noteDelivery.NewNoteHandler(noteUc),
		folderHandler:  folderDelivery.NewFolderHandler(folderUc),
		lectureHandler: lectureDelivery.NewLectureHandler(lectureUc),
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware. Origins are echoed back because the frontend sends
	// credentialed requests and "*" is not allowed with credentials.
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.authHandler, h.noteHandler, h.folderHandler, h.lectureHandler)

	return r.Run(addr)
}
