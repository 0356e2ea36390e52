package usecase

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	authdomain "noteflow-backend/internal/auth/domain"
	"noteflow-backend/internal/lecture/dto"
	notedomain "noteflow-backend/internal/note/domain"
	noterepo "noteflow-backend/internal/note/repository"
	"noteflow-backend/pkg/docs"
	"noteflow-backend/pkg/transcribe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotesAI struct {
	generated string
	answer    string
	lastQ     string
	lastNote  string
}

func (f *fakeNotesAI) GenerateNotes(ctx context.Context, transcript string) (string, error) {
	return f.generated, nil
}

func (f *fakeNotesAI) AnswerQuestion(ctx context.Context, noteContent, question string) (string, error) {
	f.lastNote = noteContent
	f.lastQ = question
	return f.answer, nil
}

type fakeGoogleProvider struct {
	err error
}

func (f *fakeGoogleProvider) GoogleClient(ctx context.Context, userID string) (*http.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	return http.DefaultClient, nil
}

func newTestUsecase(ai *fakeNotesAI, google *fakeGoogleProvider) (LectureUsecase, noterepo.NoteRepository) {
	notes := noterepo.NewMemoryNoteRepository()
	uc := NewLectureUsecase(
		transcribe.NewService("", time.Second),
		ai,
		notes,
		docs.NewExporter(time.Second),
		google,
	)
	return uc, notes
}

func TestGenerateNotesCreatesNote(t *testing.T) {
	ai := &fakeNotesAI{generated: "## Main Topic\n\nGoroutines"}
	uc, notes := newTestUsecase(ai, &fakeGoogleProvider{})

	note, err := uc.GenerateNotes(context.Background(), "u1", "today we cover goroutines")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(note.Title, "Lecture Notes "))
	assert.Equal(t, "## Main Topic\n\nGoroutines", note.Content)
	assert.Equal(t, "today we cover goroutines", note.Transcript)
	assert.Equal(t, notedomain.MakePreview(note.Content), note.Preview)

	// The note is persisted and owned by the caller.
	stored, err := notes.FindByID("u1", note.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, note.Transcript, stored.Transcript)
}

func TestChatWithNote(t *testing.T) {
	ai := &fakeNotesAI{answer: "a lightweight thread"}
	uc, notes := newTestUsecase(ai, &fakeGoogleProvider{})

	note := &notedomain.Note{UserID: "u1", Title: "T", Content: "notes about goroutines"}
	require.NoError(t, notes.Create(note))

	answer, err := uc.ChatWithNote(context.Background(), "u1", note.ID, "what is a goroutine")
	require.NoError(t, err)
	assert.Equal(t, "a lightweight thread", answer)
	assert.Equal(t, "notes about goroutines", ai.lastNote, "answer is grounded in the note content")
	assert.Equal(t, "what is a goroutine", ai.lastQ)
}

func TestChatWithNoteOwnership(t *testing.T) {
	uc, notes := newTestUsecase(&fakeNotesAI{}, &fakeGoogleProvider{})

	note := &notedomain.Note{UserID: "owner", Title: "T", Content: "c"}
	require.NoError(t, notes.Create(note))

	_, err := uc.ChatWithNote(context.Background(), "intruder", note.ID, "q")
	assert.ErrorIs(t, err, notedomain.ErrNotFound)

	_, err = uc.ChatWithNote(context.Background(), "owner", "no-such-note", "q")
	assert.ErrorIs(t, err, notedomain.ErrNotFound)
}

func TestPushToDocsWithoutGoogleAuth(t *testing.T) {
	uc, _ := newTestUsecase(&fakeNotesAI{}, &fakeGoogleProvider{err: authdomain.ErrNoGoogleAuth})

	_, err := uc.PushToDocs(context.Background(), "u1", &dto.PushToDocsRequest{
		Title: "T",
		Notes: "content",
	})
	assert.ErrorIs(t, err, authdomain.ErrNoGoogleAuth)
}
