// Package apiclient is a typed Go client for the noteflow backend API. It
// mirrors the behavior of the web frontend's fetch wrapper: a bearer token is
// attached when one is held, cookie sessions work through the jar otherwise,
// and any 401 clears the token so the caller can send the user back to login.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"
)

// ErrSessionExpired is returned when the server answers 401. The stored
// bearer token (if any) has already been cleared by the time the caller
// sees this error.
var ErrSessionExpired = errors.New("apiclient: session expired")

// TokenStore holds the bearer token between calls.
type TokenStore interface {
	Token() string
	SetToken(token string)
	Clear()
}

// MemoryTokenStore is a mutex-guarded in-process TokenStore.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryTokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

// New builds a client for the given base URL. The underlying http.Client
// carries a cookie jar so cookie-backed sessions survive across calls even
// when no bearer token is stored.
func New(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
		tokens: NewMemoryTokenStore(),
	}
}

// WithTokenStore swaps the token store, for callers that persist tokens
// somewhere other than process memory.
func (c *Client) WithTokenStore(store TokenStore) *Client {
	c.tokens = store
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.tokens.Clear()
		return ErrSessionExpired
	}
	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			return fmt.Errorf("apiclient: %s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("apiclient: unexpected status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
