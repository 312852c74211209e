package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmoreno/solarops/internal/domain"
	"github.com/jmoreno/solarops/internal/repository"
)

func newAuthFixture(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	users := repository.NewUserRepository(newTestDB(t))
	return NewAuthService("test-secret", time.Hour, users), users
}

func TestAuthIssueAndVerify(t *testing.T) {
	svc, users := newAuthFixture(t)
	ctx := context.Background()

	user := &domain.User{
		ID:       "user-1",
		Email:    "dispatcher@example.com",
		Role:     domain.RoleManager,
		IsActive: true,
	}
	require.NoError(t, users.Create(ctx, user))

	token, err := svc.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verified, err := svc.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified.ID)
	assert.Equal(t, domain.RoleManager, verified.Role)
}

func TestAuthVerifyRejectsDeactivatedUser(t *testing.T) {
	svc, users := newAuthFixture(t)
	ctx := context.Background()

	user := &domain.User{
		ID:       "user-1",
		Email:    "former@example.com",
		Role:     domain.RoleTech,
		IsActive: true,
	}
	require.NoError(t, users.Create(ctx, user))

	token, err := svc.IssueToken(user)
	require.NoError(t, err)

	user.IsActive = false
	require.NoError(t, users.Update(ctx, user))

	_, err = svc.VerifyToken(ctx, token)
	require.Error(t, err)
}

func TestAuthVerifyRejectsWrongSecret(t *testing.T) {
	svc, users := newAuthFixture(t)
	ctx := context.Background()

	user := &domain.User{ID: "user-1", Email: "a@example.com", Role: domain.RoleAdmin, IsActive: true}
	require.NoError(t, users.Create(ctx, user))

	other := NewAuthService("different-secret", time.Hour, users)
	token, err := other.IssueToken(user)
	require.NoError(t, err)

	_, err = svc.VerifyToken(ctx, token)
	require.Error(t, err)
}

func TestAuthVerifyRejectsUnknownUser(t *testing.T) {
	svc, _ := newAuthFixture(t)

	token, err := svc.IssueToken(&domain.User{ID: "ghost", Role: domain.RoleTech})
	require.NoError(t, err)

	_, err = svc.VerifyToken(context.Background(), token)
	require.Error(t, err)
}

func TestAuthVerifyRejectsGarbage(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.VerifyToken(context.Background(), "not.a.token")
	require.Error(t, err)
}
