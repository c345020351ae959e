package auth

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// The built-in fallback account. It works whether or not a local account has
// been registered, matching the original single-user setup.
const (
	DefaultAdminEmail    = "admin@example.com"
	DefaultAdminPassword = "admin123"
)

// LoginUserInput represents the input for logging in.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of a successful login.
type LoginUserOutput struct {
	Email       string
	AccessToken string
}

// LoginUserUseCase handles login logic.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute checks the credentials against the stored account, falling back to
// the built-in default account, and issues an access token on success.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	if !uc.matches(ctx, input) {
		return nil, domainerror.NewValidationError(
			"credentials",
			domainerror.ErrCodeInvalidCredentials,
			"Invalid email or password",
			domainerror.ErrInvalidCredentials,
		)
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginUserOutput{Email: input.Email, AccessToken: token}, nil
}

func (uc *LoginUserUseCase) matches(ctx context.Context, input LoginUserInput) bool {
	user, err := uc.userRepo.Find(ctx)
	if err == nil && user != nil && user.Email == input.Email {
		if uc.passwordService.VerifyPassword(user.PasswordHash, input.Password) == nil {
			return true
		}
	}
	return input.Email == DefaultAdminEmail && input.Password == DefaultAdminPassword
}
