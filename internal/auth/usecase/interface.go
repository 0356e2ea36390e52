package usecase

import (
	"context"
	"net/http"

	authdomain "noteflow-backend/internal/auth/domain"
	authdto "noteflow-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates a local account and returns the user with a signed
	// bearer token. Fails with domain.ErrDuplicateEmail on an existing email.
	Register(req *authdto.RegisterRequest) (*authdomain.User, string, error)

	// Login verifies local credentials. Unknown email and wrong password are
	// indistinguishable: both fail with domain.ErrInvalidCredentials.
	Login(req *authdto.LoginRequest) (*authdomain.User, string, error)

	// CreateSession opens a server-side session for the user.
	CreateSession(userID string) (*authdomain.Session, error)

	// InvalidateSession removes a server-side session. Bearer tokens are not
	// revoked; the client discards its own token on logout.
	InvalidateSession(sessionID string) error

	// ResolveToken validates a bearer token and loads its user.
	ResolveToken(token string) (*authdomain.User, error)

	// ResolveSession validates a session cookie value and loads its user.
	ResolveSession(sessionID string) (*authdomain.User, error)

	// GoogleLoginURL returns the provider authorization URL for the login flow.
	GoogleLoginURL(state string) string

	// CompleteGoogleLogin exchanges the callback code, resolves or creates the
	// linked user and returns it.
	CompleteGoogleLogin(ctx context.Context, code string) (*authdomain.User, error)

	// GoogleDocsURL returns the consent URL for the Docs-scope connect flow.
	GoogleDocsURL(state string) string

	// CompleteDocsConnect stores the Docs-scoped token on the user.
	CompleteDocsConnect(ctx context.Context, userID, code string) error

	// GoogleClient returns an authenticated http.Client for the user's stored
	// Google token. Fails with domain.ErrNoGoogleAuth when none is stored.
	GoogleClient(ctx context.Context, userID string) (*http.Client, error)
}
