package usecase

import (
	"context"
	"io"
	"net/http"
	"time"

	"noteflow-backend/internal/lecture/dto"
	notedomain "noteflow-backend/internal/note/domain"
	noterepo "noteflow-backend/internal/note/repository"
	"noteflow-backend/pkg/ai"
	"noteflow-backend/pkg/docs"
	"noteflow-backend/pkg/transcribe"
)

const generatedTitleLayout = "2006-01-02 15:04"

// GoogleClientProvider returns an http.Client authenticated with the user's
// stored Google token. Implemented by the auth usecase.
type GoogleClientProvider interface {
	GoogleClient(ctx context.Context, userID string) (*http.Client, error)
}

// LectureUsecase ties the lecture pipeline together: transcription, AI note
// generation, note-scoped chat and Docs export.
type LectureUsecase interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
	GenerateNotes(ctx context.Context, userID, transcript string) (*notedomain.Note, error)
	ChatWithNote(ctx context.Context, userID, noteID, question string) (string, error)
	PushToDocs(ctx context.Context, userID string, req *dto.PushToDocsRequest) (*dto.PushToDocsResult, error)
}

type lectureUsecase struct {
	transcriber *transcribe.Service
	notesAI     ai.NotesService
	noteRepo    noterepo.NoteRepository
	exporter    *docs.Exporter
	google      GoogleClientProvider
}

func NewLectureUsecase(
	transcriber *transcribe.Service,
	notesAI ai.NotesService,
	noteRepo noterepo.NoteRepository,
	exporter *docs.Exporter,
	google GoogleClientProvider,
) LectureUsecase {
	return &lectureUsecase{
		transcriber: transcriber,
		notesAI:     notesAI,
		noteRepo:    noteRepo,
		exporter:    exporter,
		google:      google,
	}
}

func (u *lectureUsecase) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	return u.transcriber.Transcribe(ctx, filename, audio)
}

func (u *lectureUsecase) GenerateNotes(ctx context.Context, userID, transcript string) (*notedomain.Note, error) {
	content, err := u.notesAI.GenerateNotes(ctx, transcript)
	if err != nil {
		return nil, err
	}

	note := &notedomain.Note{
		UserID:     userID,
		Title:      "Lecture Notes " + time.Now().Format(generatedTitleLayout),
		Content:    content,
		Transcript: transcript,
		Preview:    notedomain.MakePreview(content),
	}
	if err := u.noteRepo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (u *lectureUsecase) ChatWithNote(ctx context.Context, userID, noteID, question string) (string, error) {
	note, err := u.noteRepo.FindByID(userID, noteID)
	if err != nil {
		return "", err
	}
	if note == nil {
		return "", notedomain.ErrNotFound
	}
	return u.notesAI.AnswerQuestion(ctx, note.Content, question)
}

func (u *lectureUsecase) PushToDocs(ctx context.Context, userID string, req *dto.PushToDocsRequest) (*dto.PushToDocsResult, error) {
	client, err := u.google.GoogleClient(ctx, userID)
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = "Lecture Notes"
	}

	docID, docURL, err := u.exporter.Export(ctx, client, title, req.Notes)
	if err != nil {
		return nil, err
	}

	noteID := req.NoteID
	if noteID != "" {
		updated, err := u.noteRepo.UpdateFields(userID, noteID, map[string]interface{}{
			"google_doc_id":  docID,
			"google_doc_url": docURL,
		})
		if err != nil {
			return nil, err
		}
		if updated == nil {
			return nil, notedomain.ErrNotFound
		}
	} else {
		// No existing note: record the export as new note metadata.
		note := &notedomain.Note{
			UserID:       userID,
			Title:        title,
			Content:      req.Notes,
			Preview:      notedomain.MakePreview(req.Notes),
			GoogleDocID:  docID,
			GoogleDocURL: docURL,
		}
		if err := u.noteRepo.Create(note); err != nil {
			return nil, err
		}
		noteID = note.ID
	}

	return &dto.PushToDocsResult{
		DocURL: docURL,
		DocID:  docID,
		NoteID: noteID,
	}, nil
}
