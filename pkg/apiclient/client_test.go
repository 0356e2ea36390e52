package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresTokenAndAttachesBearer(t *testing.T) {
	var sawAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "session_token", Value: "sess-1", Path: "/"})
			json.NewEncoder(w).Encode(map[string]interface{}{
				"message": "Login successful",
				"user":    map[string]string{"id": "u1", "email": "a@b.c"},
				"token":   "jwt-token",
			})
		case "/notes":
			sawAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "notes": []interface{}{}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	user, err := c.Login(context.Background(), "a@b.c", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	notes, err := c.ListNotes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notes)
	assert.Equal(t, "Bearer jwt-token", sawAuth)
}

func TestCookieSessionWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "session_token", Value: "sess-1", Path: "/"})
			// No bearer token in the reply.
			json.NewEncoder(w).Encode(map[string]interface{}{"user": map[string]string{"id": "u1"}})
		case "/me":
			cookie, err := r.Cookie("session_token")
			if err != nil || cookie.Value != "sess-1" {
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Not authenticated"})
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"user": map[string]string{"id": "u1"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Login(context.Background(), "a@b.c", "secret123")
	require.NoError(t, err)
	assert.Empty(t, c.tokens.Token())

	// The jar carries the session cookie on the next call.
	user, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestUnauthorizedClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Not authenticated"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.tokens.SetToken("stale-token")

	_, err := c.ListNotes(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.Empty(t, c.tokens.Token(), "stale token is dropped so the caller can re-login")
}

func TestServerErrorMessageSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Note not found"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetNote(context.Background(), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Note not found")
	assert.NotErrorIs(t, err, ErrSessionExpired)
}

func TestLogoutClearsTokenEvenOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.tokens.SetToken("old")
	require.NoError(t, c.Logout(context.Background()))
	assert.Empty(t, c.tokens.Token())
}
