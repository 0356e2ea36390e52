package transcribe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/transcribe", r.URL.Path)
		require.Equal(t, "POST", r.Method)

		file, header, err := r.FormFile("audio")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "lecture.webm", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"transcript": "hello world"}`))
	}))
	defer srv.Close()

	svc := NewService(srv.URL, 5*time.Second)
	transcript, err := svc.Transcribe(context.Background(), "lecture.webm", strings.NewReader("fake audio bytes"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", transcript)
}

func TestTranscribeTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"transcript": "too late"}`))
	}))
	defer srv.Close()

	svc := NewService(srv.URL, 20*time.Millisecond)
	_, err := svc.Transcribe(context.Background(), "a.webm", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestTranscribeUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewService(srv.URL, 5*time.Second)
	_, err := svc.Transcribe(context.Background(), "a.webm", strings.NewReader("x"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.Contains(t, err.Error(), "500")
}

func TestTranscribeNotConfigured(t *testing.T) {
	svc := NewService("", time.Second)
	assert.False(t, svc.Configured())

	_, err := svc.Transcribe(context.Background(), "a.webm", strings.NewReader("x"))
	assert.Error(t, err)
}
