package usecase

import (
	"context"
	"time"

	"dressly/internal/domain/entity"
	"dressly/internal/domain/repository"
	"dressly/internal/infrastructure/auth"
	"dressly/pkg/errors"
	"dressly/pkg/logger"

	"github.com/google/uuid"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	tokenService TokenProvider
}

func NewAuthUseCase(userRepo repository.UserRepository, tokenService TokenProvider) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already registered", nil)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, err := uc.tokenService.CreateToken(user.ID)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, errors.Unauthorized("Invalid credentials", nil)
	}

	token, err := uc.tokenService.CreateToken(user.ID)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

func (uc *AuthUseCase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
