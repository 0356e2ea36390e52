package usecase

import (
	"errors"
	"strings"
	"time"

	authdomain "noteflow-backend/internal/auth/domain"
	authdto "noteflow-backend/internal/auth/dto"
	"noteflow-backend/internal/auth/repository"
	"noteflow-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	config      *config.Config
}

func NewAuthUsecase(userRepo repository.UserRepository, sessionRepo repository.SessionRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		config:      cfg,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdomain.User, string, error) {
	email := normalizeEmail(req.Email)

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", authdomain.ErrDuplicateEmail
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &authdomain.User{
		Email:     email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Provider:  authdomain.ProviderLocal,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := u.generateAccessToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdomain.User, string, error) {
	user, err := u.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, "", err
	}

	// Unknown email, OAuth-only account and wrong password all collapse into
	// the same failure so callers cannot enumerate accounts.
	if user == nil || user.Password == "" {
		return nil, "", authdomain.ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, "", authdomain.ErrInvalidCredentials
	}

	token, err := u.generateAccessToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (u *authUsecase) CreateSession(userID string) (*authdomain.Session, error) {
	return u.sessionRepo.Create(userID, u.config.SessionTTL)
}

func (u *authUsecase) InvalidateSession(sessionID string) error {
	return u.sessionRepo.Invalidate(sessionID)
}

func (u *authUsecase) ResolveSession(sessionID string) (*authdomain.User, error) {
	session, err := u.sessionRepo.Lookup(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.Expired(time.Now()) {
		return nil, authdomain.ErrUnauthenticated
	}

	user, err := u.userRepo.FindByID(session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrUnauthenticated
	}
	return user, nil
}

func (u *authUsecase) ResolveToken(tokenString string) (*authdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, authdomain.ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, authdomain.ErrUnauthenticated
	}
	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, authdomain.ErrUnauthenticated
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Token references a since-deleted user.
		return nil, authdomain.ErrUnauthenticated
	}
	return user, nil
}

func (u *authUsecase) generateAccessToken(user *authdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(u.config.JWTAccessExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}
