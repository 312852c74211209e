package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
)

// TokenClaims are the JWT claims issued and verified by AuthService.
type TokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies the HS256 bearer tokens protecting
// the API. The user record backing a token must still exist and be
// active at verification time.
type AuthService struct {
	secret   []byte
	tokenTTL time.Duration
	users    *repository.UserRepository
}

// NewAuthService creates an auth service.
func NewAuthService(secret string, tokenTTL time.Duration, users *repository.UserRepository) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		users:    users,
	}
}

// IssueToken signs a token for the given user.
// Parameters:
//   - user: the principal to issue for.
// Returns:
//   - string: the signed token.
//   - error: non-nil if signing fails.
func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses the token and resolves it to an active user.
// Parameters:
//   - ctx: request context.
//   - tokenString: the raw bearer token.
// Returns:
//   - *domain.User: the authenticated principal.
//   - error: non-nil if the token is invalid or the user is inactive.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*domain.User, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("invalid token")
	}

	user, err := s.users.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("unknown principal: %w", err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("user %s is deactivated", user.ID)
	}
	return user, nil
}
