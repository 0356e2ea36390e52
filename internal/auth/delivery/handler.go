package delivery

import (
	"errors"
	"log"
	"net/http"

	authdomain "noteflow-backend/internal/auth/domain"
	authdto "noteflow-backend/internal/auth/dto"
	"noteflow-backend/internal/auth/usecase"
	"noteflow-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const stateCookieName = "oauth_state"

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	config      *config.Config
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, config: cfg}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, sessionID, int(h.config.SessionTTL.Seconds()), "/", "", false, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// openSession establishes the server-side session after register/login/OAuth.
func (h *AuthHandler) openSession(c *gin.Context, userID string) bool {
	session, err := h.authUsecase.CreateSession(userID)
	if err != nil {
		log.Printf("[AuthHandler] failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return false
	}
	h.setSessionCookie(c, session.ID)
	return true
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, token, err := h.authUsecase.Register(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		log.Printf("[AuthHandler] registration error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	if !h.openSession(c, user.ID) {
		return
	}
	c.JSON(http.StatusOK, authdto.AuthResponse{
		Message: "Registration successful",
		User:    user,
		Token:   token,
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, token, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, authdomain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("[AuthHandler] login error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication error"})
		return
	}

	if !h.openSession(c, user.ID) {
		return
	}
	c.JSON(http.StatusOK, authdto.AuthResponse{
		Message: "Login successful",
		User:    user,
		Token:   token,
	})
}

// Logout handles GET /auth/logout. Only the server-side session is touched;
// the client discards its own bearer token.
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		if err := h.authUsecase.InvalidateSession(cookie); err != nil {
			log.Printf("[AuthHandler] logout error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
			return
		}
	}
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Status handles GET /auth/status. It never errors: absence of a valid
// credential is {authenticated:false}, not a failure.
func (h *AuthHandler) Status(c *gin.Context) {
	user, err := ResolveIdentity(c, h.authUsecase)
	if err != nil {
		c.JSON(http.StatusOK, authdto.StatusResponse{Authenticated: false})
		return
	}
	c.JSON(http.StatusOK, authdto.StatusResponse{Authenticated: true, User: user})
}

// Me handles GET /me (requires auth via middleware).
func (h *AuthHandler) Me(c *gin.Context) {
	user := c.MustGet("user").(*authdomain.User)
	c.JSON(http.StatusOK, gin.H{
		"authenticated":   true,
		"user":            user,
		"has_google_auth": user.HasGoogleAuth(),
	})
}

// GoogleLogin handles GET /auth/google/login: redirect to the provider.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state := uuid.New().String()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, h.authUsecase.GoogleLoginURL(state))
}

// GoogleLoginCallback handles GET /auth/google/callback.
func (h *AuthHandler) GoogleLoginCallback(c *gin.Context) {
	failureURL := h.config.FrontendURL + "/login"

	state, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != c.Query("state") {
		c.Redirect(http.StatusFound, failureURL)
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, failureURL)
		return
	}

	user, err := h.authUsecase.CompleteGoogleLogin(c.Request.Context(), code)
	if err != nil {
		log.Printf("[AuthHandler] google login failed: %v", err)
		c.Redirect(http.StatusFound, failureURL)
		return
	}

	session, err := h.authUsecase.CreateSession(user.ID)
	if err != nil {
		log.Printf("[AuthHandler] failed to create session: %v", err)
		c.Redirect(http.StatusFound, failureURL)
		return
	}
	h.setSessionCookie(c, session.ID)

	c.Redirect(http.StatusFound, h.config.FrontendURL+"/dashboard")
}

// DocsConnect handles GET /auth/google: returns the consent URL for the
// Docs-scope flow so the frontend can navigate to it.
func (h *AuthHandler) DocsConnect(c *gin.Context) {
	state := uuid.New().String()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, 300, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"auth_url": h.authUsecase.GoogleDocsURL(state)})
}

// DocsCallback handles GET /oauth2callback. The caller must already hold a
// session; the exchanged token is stored on their user record.
func (h *AuthHandler) DocsCallback(c *gin.Context) {
	user, err := ResolveIdentity(c, h.authUsecase)
	if err != nil {
		c.Redirect(http.StatusFound, h.config.FrontendURL+"/login")
		return
	}

	state, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != c.Query("state") {
		c.Redirect(http.StatusFound, h.config.FrontendURL+"/dashboard")
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", false, true)

	if err := h.authUsecase.CompleteDocsConnect(c.Request.Context(), user.ID, c.Query("code")); err != nil {
		log.Printf("[AuthHandler] docs connect failed: %v", err)
	}
	c.Redirect(http.StatusFound, h.config.FrontendURL+"/dashboard/record")
}
