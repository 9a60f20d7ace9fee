package service

import (
	"context"
	"strings"
	"time"

	"github.com/mrpavithran/WorkShop/internal/auth"
	"github.com/mrpavithran/WorkShop/internal/config"
	"github.com/mrpavithran/WorkShop/internal/domain"
	"github.com/mrpavithran/WorkShop/internal/ledger"
	"github.com/mrpavithran/WorkShop/pkg/util/errorutil"
)

// AuthService coordinates account registration and login flows.
type AuthService struct {
	store      *ledger.Store
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, store *ledger.Store) *AuthService {
	return &AuthService{
		store:      store,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterUser creates an account and issues an access token.
func (s *AuthService) RegisterUser(ctx context.Context, name, email, password string, role domain.Role) (domain.User, string, time.Time, error) {
	details := map[string]any{}
	if strings.TrimSpace(name) == "" {
		details["name"] = "name is required"
	}
	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		details["email"] = "please enter a valid email address"
	}
	if password == "" {
		details["password"] = "password is required"
	}
	if !domain.ValidRole(role) {
		details["role"] = "role must be CREATOR or PARTICIPANT"
	}
	if len(details) > 0 {
		return domain.User{}, "", time.Time{}, errorutil.NewValidationError("invalid account data", details)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return domain.User{}, "", time.Time{}, errorutil.NewInternalError(err)
	}

	user, err := s.store.CreateUser(domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return domain.User{}, "", time.Time{}, err
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return domain.User{}, "", time.Time{}, errorutil.NewInternalError(err)
	}
	return user, token, expiresAt, nil
}

// LoginUser verifies credentials and issues an access token.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (domain.User, string, time.Time, error) {
	user, err := s.store.GetUserByEmail(email)
	if err != nil {
		return domain.User{}, "", time.Time{}, errorutil.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return domain.User{}, "", time.Time{}, errorutil.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return domain.User{}, "", time.Time{}, errorutil.NewInternalError(err)
	}
	return user, token, expiresAt, nil
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
