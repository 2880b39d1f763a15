package service

import (
	"context"
	"testing"
	"time"

	"rental-management-backend/internal/domain"
	"rental-management-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testTokenManager() security.TokenManager {
	return security.NewTokenManager("test-secret-test-secret-test-secret!", time.Hour, 24*time.Hour)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{ID: 1, Name: "Op", Email: "op@example.com", PasswordHash: string(hash), Role: domain.RoleStaff}

	t.Run("Valid credentials", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetByEmail", mock.Anything, "op@example.com").Return(user, nil)
		svc := NewAuthService(userRepo, testTokenManager())

		got, access, refresh, err := svc.Login(context.Background(), "op@example.com", "hunter2hunter2")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetByEmail", mock.Anything, "op@example.com").Return(user, nil)
		svc := NewAuthService(userRepo, testTokenManager())

		_, _, _, err := svc.Login(context.Background(), "op@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown email", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrUserNotFound)
		svc := NewAuthService(userRepo, testTokenManager())

		_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "hunter2hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestSignup(t *testing.T) {
	t.Run("New user gets tokens", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, domain.ErrUserNotFound)
		userRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 2
		}).Return(nil)
		svc := NewAuthService(userRepo, testTokenManager())

		user, access, refresh, err := svc.Signup(context.Background(), "New", "new@example.com", "hunter2hunter2")
		require.NoError(t, err)
		assert.Equal(t, int64(2), user.ID)
		assert.Equal(t, domain.RoleStaff, user.Role)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		// The stored hash must verify against the original password.
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2hunter2")))
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetByEmail", mock.Anything, "op@example.com").Return(&domain.User{ID: 1}, nil)
		svc := NewAuthService(userRepo, testTokenManager())

		_, _, _, err := svc.Signup(context.Background(), "Op", "op@example.com", "hunter2hunter2")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestRefreshToken(t *testing.T) {
	tokens := testTokenManager()
	user := &domain.User{ID: 1, Email: "op@example.com", Role: domain.RoleStaff}

	t.Run("Refresh token rotates the pair", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		userRepo.On("GetByID", mock.Anything, int64(1)).Return(user, nil)
		svc := NewAuthService(userRepo, tokens)

		refresh, err := tokens.GenerateRefreshToken(user.ID, user.Email, string(user.Role))
		require.NoError(t, err)

		access, newRefresh, err := svc.RefreshToken(context.Background(), refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("Access token is not accepted for refresh", func(t *testing.T) {
		svc := NewAuthService(new(mockUserRepo), tokens)

		access, err := tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
		require.NoError(t, err)

		_, _, err = svc.RefreshToken(context.Background(), access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}
