package delivery

import (
	"errors"
	"net/http"
	"strings"

	authdomain "noteflow-backend/internal/auth/domain"
	"noteflow-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the opaque server-session id.
const SessionCookieName = "session_token"

// ResolveIdentity runs the ordered credential chain: a present Authorization
// header is authoritative — if its token is malformed, expired or references
// a deleted user the request is rejected without falling back to the cookie,
// so an explicit credential never silently downgrades. Only when no bearer
// credential is present at all does the session cookie get a look.
func ResolveIdentity(c *gin.Context, authUsecase usecase.AuthUsecase) (*authdomain.User, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return nil, authdomain.ErrUnauthenticated
		}
		return authUsecase.ResolveToken(parts[1])
	}

	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return authUsecase.ResolveSession(cookie)
	}

	return nil, authdomain.ErrUnauthenticated
}

// AuthMiddleware rejects unauthenticated callers before any resource handler
// runs. Every failure is a uniform 401.
func AuthMiddleware(authUsecase usecase.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := ResolveIdentity(c, authUsecase)
		if err != nil {
			if !errors.Is(err, authdomain.ErrUnauthenticated) {
				// Store failure, but the caller still only learns "401".
				c.Error(err) //nolint:errcheck
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID)
		c.Next()
	}
}
