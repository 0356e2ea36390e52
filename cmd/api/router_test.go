package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authDelivery "noteflow-backend/internal/auth/delivery"
	authrepo "noteflow-backend/internal/auth/repository"
	authusecase "noteflow-backend/internal/auth/usecase"
	folderDelivery "noteflow-backend/internal/folder/delivery"
	folderrepo "noteflow-backend/internal/folder/repository"
	folderusecase "noteflow-backend/internal/folder/usecase"
	lectureDelivery "noteflow-backend/internal/lecture/delivery"
	lectureusecase "noteflow-backend/internal/lecture/usecase"
	noteDelivery "noteflow-backend/internal/note/delivery"
	noterepo "noteflow-backend/internal/note/repository"
	noteusecase "noteflow-backend/internal/note/usecase"
	"noteflow-backend/pkg/config"
	"noteflow-backend/pkg/docs"
	"noteflow-backend/pkg/transcribe"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubNotesAI struct{}

func (stubNotesAI) GenerateNotes(ctx context.Context, transcript string) (string, error) {
	return "## Generated\n\n" + transcript, nil
}

func (stubNotesAI) AnswerQuestion(ctx context.Context, noteContent, question string) (string, error) {
	return "answer", nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		JWTAccessExpiry: time.Hour,
		SessionTTL:      time.Hour,
	}
	noteRepo := noterepo.NewMemoryNoteRepository()
	folderRepo := folderrepo.NewMemoryFolderRepository()

	authUc := authusecase.NewAuthUsecase(
		authrepo.NewMemoryUserRepository(),
		authrepo.NewMemorySessionRepository(),
		cfg,
	)
	noteUc := noteusecase.NewNoteUsecase(noteRepo, folderRepo)
	folderUc := folderusecase.NewFolderUsecase(folderRepo, noteRepo)
	lectureUc := lectureusecase.NewLectureUsecase(
		transcribe.NewService("", time.Second),
		stubNotesAI{},
		noteRepo,
		docs.NewExporter(time.Second),
		authUc,
	)

	r := gin.New()
	SetupRoutes(
		r,
		authUc,
		authDelivery.NewAuthHandler(authUc, cfg),
		noteDelivery.NewNoteHandler(noteUc),
		folderDelivery.NewFolderHandler(folderUc),
		lectureDelivery.NewLectureHandler(lectureUc),
	)
	return r
}

func doJSON(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(r, "POST", "/register", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "running"}`, w.Body.String())
}

func TestRegisterSetsSessionCookie(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, "POST", "/register", "", map[string]string{
		"email":    "new@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == authDelivery.SessionCookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "register must open a cookie session")
	assert.True(t, sessionCookie.HttpOnly)

	// The cookie alone authenticates follow-up requests.
	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(sessionCookie)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "new@example.com")
}

func TestRegisterValidation(t *testing.T) {
	r := newTestRouter(t)

	// Missing password.
	w := doJSON(r, "POST", "/register", "", map[string]string{"email": "a@b.c"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Password too short.
	w = doJSON(r, "POST", "/register", "", map[string]string{"email": "a@b.c", "password": "123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email.
	w = doJSON(r, "POST", "/register", "", map[string]string{"email": "nope", "password": "secret123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRouter(t)
	registerUser(t, r, "a@example.com")

	w := doJSON(r, "POST", "/login", "", map[string]string{
		"email":    "a@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "Invalid credentials"}`, w.Body.String())
}

func TestAuthStatus(t *testing.T) {
	r := newTestRouter(t)

	// Anonymous callers get a 200 with authenticated=false, never a 401.
	w := doJSON(r, "GET", "/auth/status", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	token := registerUser(t, r, "b@example.com")
	w = doJSON(r, "GET", "/auth/status", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}

func TestNotesCRUD(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "crud@example.com")

	// Create.
	w := doJSON(r, "POST", "/notes", token, map[string]string{"title": "Lecture 1", "content": "intro"})
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		Note struct {
			ID      string `json:"id"`
			Preview string `json:"preview"`
		} `json:"note"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	noteID := created.Note.ID
	require.NotEmpty(t, noteID)
	assert.Equal(t, "intro", created.Note.Preview)

	// List.
	w = doJSON(r, "GET", "/notes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), noteID)

	// Update.
	w = doJSON(r, "PUT", "/notes/"+noteID, token, map[string]string{"content": "updated body"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "updated body")

	// Favorite toggle.
	w = doJSON(r, "POST", "/notes/"+noteID+"/favorite", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_favorite":true`)

	// Delete, then a fetch 404s.
	w = doJSON(r, "DELETE", "/notes/"+noteID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, "GET", "/notes/"+noteID, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotesAreTenantScoped(t *testing.T) {
	r := newTestRouter(t)
	alice := registerUser(t, r, "alice@example.com")
	mallory := registerUser(t, r, "mallory@example.com")

	w := doJSON(r, "POST", "/notes", alice, map[string]string{"title": "private", "content": "x"})
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		Note struct {
			ID string `json:"id"`
		} `json:"note"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Another tenant sees 404, not 403: existence is not disclosed.
	w = doJSON(r, "GET", "/notes/"+created.Note.ID, mallory, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(r, "DELETE", "/notes/"+created.Note.ID, mallory, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFoldersFlow(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "folders@example.com")

	w := doJSON(r, "POST", "/notes", token, map[string]string{"title": "n1", "content": "c"})
	require.Equal(t, http.StatusOK, w.Code)
	var note struct {
		Note struct {
			ID string `json:"id"`
		} `json:"note"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &note))

	w = doJSON(r, "POST", "/folders", token, map[string]string{"name": "Week 1"})
	require.Equal(t, http.StatusOK, w.Code)
	var folder struct {
		Folder struct {
			ID string `json:"id"`
		} `json:"folder"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &folder))

	w = doJSON(r, "POST", "/folders/"+folder.Folder.ID+"/notes", token, map[string][]string{
		"note_ids": {note.Note.ID, "not-mine"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), note.Note.ID)
	assert.NotContains(t, w.Body.String(), "not-mine")

	w = doJSON(r, "PUT", "/folders/"+folder.Folder.ID, token, map[string]string{"name": "Week 2"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Week 2")

	w = doJSON(r, "DELETE", "/folders/"+folder.Folder.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The note referenced by the deleted folder still exists.
	w = doJSON(r, "GET", "/notes/"+note.Note.ID, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGenerateNotesEndpoint(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "gen@example.com")

	w := doJSON(r, "POST", "/generate-notes", token, map[string]string{"transcript": "лекция"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"note_id"`)
	assert.Contains(t, w.Body.String(), "Generated")

	// Empty transcript is rejected.
	w = doJSON(r, "POST", "/generate-notes", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	r := newTestRouter(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{"GET", "/notes"},
		{"POST", "/notes"},
		{"GET", "/folders"},
		{"GET", "/me"},
		{"POST", "/generate-notes"},
		{"POST", "/push-to-docs"},
	} {
		w := doJSON(r, route.method, route.path, "", nil)
		assert.Equalf(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}
