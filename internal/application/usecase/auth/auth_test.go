package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/infra/kv"
	"github.com/expense-tracker/backend/internal/integration/adapters"
	"github.com/expense-tracker/backend/internal/integration/persistence"
)

func newServices(t *testing.T) (adapter.UserRepository, adapter.PasswordService, adapter.TokenService) {
	t.Helper()
	userRepo := persistence.NewUserRepository(kv.NewMemory())
	passwordService := adapters.NewBcryptPasswordService()
	tokenService := adapters.NewJWTTokenService("test-secret", 15*time.Minute)
	return userRepo, passwordService, tokenService
}

func TestRegisterUser(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid account", email: "me@example.com", password: "password123"},
		{name: "missing email", email: "  ", password: "password123", wantErr: domainerror.ErrEmailRequired},
		{name: "malformed email", email: "not-an-email", password: "password123", wantErr: domainerror.ErrEmailRequired},
		{name: "short password", email: "me@example.com", password: "short", wantErr: domainerror.ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			userRepo, passwordService, _ := newServices(t)
			uc := NewRegisterUserUseCase(userRepo, passwordService)

			out, err := uc.Execute(ctx, RegisterUserInput{Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "me@example.com", out.Email)

			stored, err := userRepo.Find(ctx)
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.NotEqual(t, tt.password, stored.PasswordHash)
			assert.NoError(t, passwordService.VerifyPassword(stored.PasswordHash, tt.password))
		})
	}
}

func TestRegisterOverwritesExistingAccount(t *testing.T) {
	ctx := context.Background()
	userRepo, passwordService, _ := newServices(t)
	uc := NewRegisterUserUseCase(userRepo, passwordService)

	_, err := uc.Execute(ctx, RegisterUserInput{Email: "first@example.com", Password: "password123"})
	require.NoError(t, err)
	_, err = uc.Execute(ctx, RegisterUserInput{Email: "second@example.com", Password: "password456"})
	require.NoError(t, err)

	stored, err := userRepo.Find(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second@example.com", stored.Email)
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	userRepo, passwordService, tokenService := newServices(t)

	_, err := NewRegisterUserUseCase(userRepo, passwordService).
		Execute(ctx, RegisterUserInput{Email: "me@example.com", Password: "password123"})
	require.NoError(t, err)

	uc := NewLoginUserUseCase(userRepo, passwordService, tokenService)

	out, err := uc.Execute(ctx, LoginUserInput{Email: "me@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)

	claims, err := tokenService.ValidateAccessToken(ctx, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", claims.Email)

	_, err = uc.Execute(ctx, LoginUserInput{Email: "me@example.com", Password: "wrong-password"})
	require.ErrorIs(t, err, domainerror.ErrInvalidCredentials)
}

func TestLoginDefaultAdminFallback(t *testing.T) {
	ctx := context.Background()
	userRepo, passwordService, tokenService := newServices(t)
	uc := NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// no registered account at all
	out, err := uc.Execute(ctx, LoginUserInput{Email: DefaultAdminEmail, Password: DefaultAdminPassword})
	require.NoError(t, err)
	assert.Equal(t, DefaultAdminEmail, out.Email)

	_, err = uc.Execute(ctx, LoginUserInput{Email: DefaultAdminEmail, Password: "nope"})
	require.ErrorIs(t, err, domainerror.ErrInvalidCredentials)
}
