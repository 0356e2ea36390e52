package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	authdomain "noteflow-backend/internal/auth/domain"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// withGoogleDeadline bounds every call to Google's endpoints; a stalled
// provider must not hold the request slot open.
func (u *authUsecase) withGoogleDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := u.config.GoogleTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

// loginOAuthConfig covers the sign-in flow (identity only).
func (u *authUsecase) loginOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     u.config.GoogleClientID,
		ClientSecret: u.config.GoogleClientSecret,
		RedirectURL:  u.config.GoogleLoginRedirectURI,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

// docsOAuthConfig covers the Docs-export connect flow.
func (u *authUsecase) docsOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     u.config.GoogleClientID,
		ClientSecret: u.config.GoogleClientSecret,
		RedirectURL:  u.config.GoogleDocsRedirectURI,
		Scopes: []string{
			"https://www.googleapis.com/auth/documents",
			"https://www.googleapis.com/auth/drive.file",
		},
		Endpoint: google.Endpoint,
	}
}

func (u *authUsecase) GoogleLoginURL(state string) string {
	return u.loginOAuthConfig().AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (u *authUsecase) GoogleDocsURL(state string) string {
	return u.docsOAuthConfig().AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (u *authUsecase) CompleteGoogleLogin(ctx context.Context, code string) (*authdomain.User, error) {
	cfg := u.loginOAuthConfig()

	ctx, cancel := u.withGoogleDeadline(ctx)
	defer cancel()

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(cfg.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create oauth2 service: %w", err)
	}
	userinfo, err := svc.Userinfo.Get().Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	if userinfo.Email == "" {
		return nil, fmt.Errorf("could not retrieve email from google")
	}
	if userinfo.Id == "" {
		return nil, fmt.Errorf("could not retrieve subject from google")
	}

	user, err := u.userRepo.FindByGoogleSubject(userinfo.Id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = u.userRepo.FindByEmail(normalizeEmail(userinfo.Email))
		if err != nil {
			return nil, err
		}
	}

	if user == nil {
		// First-time OAuth login: create the user with no local password.
		user = &authdomain.User{
			Email:         normalizeEmail(userinfo.Email),
			FirstName:     userinfo.GivenName,
			LastName:      userinfo.FamilyName,
			Provider:      authdomain.ProviderGoogle,
			GoogleSubject: userinfo.Id,
		}
		if err := u.userRepo.Create(user); err != nil {
			return nil, err
		}
	} else if user.GoogleSubject == "" {
		user.GoogleSubject = userinfo.Id
		if err := u.userRepo.Update(user); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func (u *authUsecase) CompleteDocsConnect(ctx context.Context, userID, code string) error {
	cfg := u.docsOAuthConfig()

	ctx, cancel := u.withGoogleDeadline(ctx)
	defer cancel()

	token, err := cfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange code: %w", err)
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return authdomain.ErrUnauthenticated
	}

	raw, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to serialize token: %w", err)
	}
	user.GoogleToken = string(raw)
	return u.userRepo.Update(user)
}

func (u *authUsecase) GoogleClient(ctx context.Context, userID string) (*http.Client, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.HasGoogleAuth() {
		return nil, authdomain.ErrNoGoogleAuth
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(user.GoogleToken), &token); err != nil {
		return nil, fmt.Errorf("failed to parse stored token: %w", err)
	}

	// TokenSource refreshes transparently when the access token is stale.
	tokenSource := u.docsOAuthConfig().TokenSource(ctx, &token)
	return oauth2.NewClient(ctx, tokenSource), nil
}
