package main

import (
	"log"

	authdomain "noteflow-backend/internal/auth/domain"
	authrepo "noteflow-backend/internal/auth/repository"
	authusecase "noteflow-backend/internal/auth/usecase"
	folderdomain "noteflow-backend/internal/folder/domain"
	folderrepo "noteflow-backend/internal/folder/repository"
	folderusecase "noteflow-backend/internal/folder/usecase"
	lectureusecase "noteflow-backend/internal/lecture/usecase"
	notedomain "noteflow-backend/internal/note/domain"
	noterepo "noteflow-backend/internal/note/repository"
	noteusecase "noteflow-backend/internal/note/usecase"

	"noteflow-backend/cmd/api"
	"noteflow-backend/pkg/ai"
	"noteflow-backend/pkg/config"
	"noteflow-backend/pkg/database"
	"noteflow-backend/pkg/docs"
	"noteflow-backend/pkg/transcribe"
)

func main() {
	cfg := config.Load()

	var (
		userRepo    authrepo.UserRepository
		sessionRepo authrepo.SessionRepository
		noteRepo    noterepo.NoteRepository
		folderRepo  folderrepo.FolderRepository
	)

	if cfg.DatabaseURL != "" {
		db, err := database.NewPostgresConnection(cfg)
		if err != nil {
			log.Fatalf("[Main] Failed to connect to database: %v", err)
		}

		if err := db.AutoMigrate(
			&authdomain.User{},
			&authdomain.Session{},
			&notedomain.Note{},
			&folderdomain.Folder{},
		); err != nil {
			log.Fatalf("[Main] Failed to migrate database: %v", err)
		}

		userRepo = authrepo.NewUserRepository(db)
		sessionRepo = authrepo.NewSessionRepository(db)
		noteRepo = noterepo.NewGormNoteRepository(db)
		folderRepo = folderrepo.NewGormFolderRepository(db)
	} else {
		log.Println("[Main] DATABASE_URL not set, using in-memory storage")
		userRepo = authrepo.NewMemoryUserRepository()
		sessionRepo = authrepo.NewMemorySessionRepository()
		noteRepo = noterepo.NewMemoryNoteRepository()
		folderRepo = folderrepo.NewMemoryFolderRepository()
	}

	authUc := authusecase.NewAuthUsecase(userRepo, sessionRepo, cfg)
	noteUc := noteusecase.NewNoteUsecase(noteRepo, folderRepo)
	folderUc := folderusecase.NewFolderUsecase(folderRepo, noteRepo)

	transcriber := transcribe.NewService(cfg.TranscribeURL, cfg.TranscribeTimeout)
	notesAI := ai.NewNotesService(ai.Config{
		Provider:      ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:  cfg.GeminiApiKey,
		OllamaBaseURL: cfg.OllamaBaseURL,
		OllamaModel:   cfg.OllamaModel,
		Timeout:       cfg.AITimeout,
	})
	lectureUc := lectureusecase.NewLectureUsecase(transcriber, notesAI, noteRepo, docs.NewExporter(cfg.GoogleTimeout), authUc)

	handler := api.NewHandler(authUc, noteUc, folderUc, lectureUc, cfg)

	log.Printf("[Main] Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatalf("[Main] Failed to start server: %v", err)
	}
}
