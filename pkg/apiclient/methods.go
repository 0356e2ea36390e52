package apiclient

import (
	"context"
	"fmt"
	"net/url"
)

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Provider  string `json:"provider"`
}

type Note struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Transcript   string `json:"transcript,omitempty"`
	Preview      string `json:"preview"`
	GoogleDocID  string `json:"google_doc_id,omitempty"`
	GoogleDocURL string `json:"google_doc_url,omitempty"`
	IsFavorite   bool   `json:"is_favorite"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

type Folder struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	NoteIDs   []string `json:"note_ids"`
	CreatedAt int64    `json:"created_at"`
}

type authResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
	Token   string `json:"token"`
}

// Register creates an account and stores the returned bearer token.
func (c *Client) Register(ctx context.Context, email, password, firstName, lastName string) (*User, error) {
	body := map[string]string{
		"email":     email,
		"password":  password,
		"firstName": firstName,
		"lastName":  lastName,
	}
	var resp authResponse
	if err := c.do(ctx, "POST", "/register", body, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		c.tokens.SetToken(resp.Token)
	}
	return resp.User, nil
}

// Login authenticates and stores the returned bearer token. The session
// cookie set by the server lands in the cookie jar as well.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, "POST", "/login", body, &resp); err != nil {
		return nil, err
	}
	if resp.Token != "" {
		c.tokens.SetToken(resp.Token)
	}
	return resp.User, nil
}

// Logout invalidates the server session and drops the local token either way.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, "GET", "/auth/logout", nil, nil)
	c.tokens.Clear()
	if err == ErrSessionExpired {
		return nil
	}
	return err
}

type StatusResponse struct {
	Authenticated bool  `json:"authenticated"`
	User          *User `json:"user,omitempty"`
}

// AuthStatus never fails with ErrSessionExpired: an unauthenticated answer is
// a valid 200 response with authenticated=false.
func (c *Client) AuthStatus(ctx context.Context) (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.do(ctx, "GET", "/auth/status", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := c.do(ctx, "GET", "/me", nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) ListNotes(ctx context.Context) ([]*Note, error) {
	var resp struct {
		Notes []*Note `json:"notes"`
	}
	if err := c.do(ctx, "GET", "/notes", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

func (c *Client) GetNote(ctx context.Context, id string) (*Note, error) {
	var resp struct {
		Note *Note `json:"note"`
	}
	if err := c.do(ctx, "GET", "/notes/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Note, nil
}

func (c *Client) CreateNote(ctx context.Context, title, content string) (*Note, error) {
	body := map[string]string{"title": title, "content": content}
	var resp struct {
		Note *Note `json:"note"`
	}
	if err := c.do(ctx, "POST", "/notes", body, &resp); err != nil {
		return nil, err
	}
	return resp.Note, nil
}

// UpdateNote patches the given fields. Nil fields are left untouched.
func (c *Client) UpdateNote(ctx context.Context, id string, title, content *string) (*Note, error) {
	body := map[string]interface{}{}
	if title != nil {
		body["title"] = *title
	}
	if content != nil {
		body["content"] = *content
	}
	var resp struct {
		Note *Note `json:"note"`
	}
	if err := c.do(ctx, "PUT", "/notes/"+url.PathEscape(id), body, &resp); err != nil {
		return nil, err
	}
	return resp.Note, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/notes/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	var resp struct {
		IsFavorite bool `json:"is_favorite"`
	}
	if err := c.do(ctx, "POST", "/notes/"+url.PathEscape(id)+"/favorite", nil, &resp); err != nil {
		return false, err
	}
	return resp.IsFavorite, nil
}

func (c *Client) ChatWithNote(ctx context.Context, id, question string) (string, error) {
	body := map[string]string{"question": question}
	var resp struct {
		Answer string `json:"answer"`
	}
	if err := c.do(ctx, "POST", "/notes/"+url.PathEscape(id)+"/chat", body, &resp); err != nil {
		return "", err
	}
	return resp.Answer, nil
}

func (c *Client) ListFolders(ctx context.Context) ([]*Folder, error) {
	var resp struct {
		Folders []*Folder `json:"folders"`
	}
	if err := c.do(ctx, "GET", "/folders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Folders, nil
}

func (c *Client) CreateFolder(ctx context.Context, name string) (*Folder, error) {
	body := map[string]string{"name": name}
	var resp struct {
		Folder *Folder `json:"folder"`
	}
	if err := c.do(ctx, "POST", "/folders", body, &resp); err != nil {
		return nil, err
	}
	return resp.Folder, nil
}

func (c *Client) RenameFolder(ctx context.Context, id, name string) (*Folder, error) {
	body := map[string]string{"name": name}
	var resp struct {
		Folder *Folder `json:"folder"`
	}
	if err := c.do(ctx, "PUT", "/folders/"+url.PathEscape(id), body, &resp); err != nil {
		return nil, err
	}
	return resp.Folder, nil
}

func (c *Client) DeleteFolder(ctx context.Context, id string) error {
	return c.do(ctx, "DELETE", "/folders/"+url.PathEscape(id), nil, nil)
}

func (c *Client) AddNotesToFolder(ctx context.Context, id string, noteIDs []string) (*Folder, error) {
	body := map[string][]string{"note_ids": noteIDs}
	var resp struct {
		Folder *Folder `json:"folder"`
	}
	if err := c.do(ctx, "POST", fmt.Sprintf("/folders/%s/notes", url.PathEscape(id)), body, &resp); err != nil {
		return nil, err
	}
	return resp.Folder, nil
}

// GenerateNotes sends a transcript through the AI pipeline and returns the
// generated markdown plus the id of the note the server created for it.
func (c *Client) GenerateNotes(ctx context.Context, transcript string) (string, string, error) {
	body := map[string]string{"transcript": transcript}
	var resp struct {
		Notes  string `json:"notes"`
		NoteID string `json:"note_id"`
	}
	if err := c.do(ctx, "POST", "/generate-notes", body, &resp); err != nil {
		return "", "", err
	}
	return resp.Notes, resp.NoteID, nil
}
