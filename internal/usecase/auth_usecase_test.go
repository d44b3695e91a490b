package usecase

import (
	"context"
	"testing"

	"dressly/internal/domain/entity"
	"dressly/internal/infrastructure/auth"
	"dressly/pkg/errors"

	"github.com/stretchr/testify/assert"
)

type memoryUserRepo struct {
	users map[string]*entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: map[string]*entity.User{}}
}

func (r *memoryUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func newTestAuthUseCase() (*AuthUseCase, *memoryUserRepo) {
	repo := newMemoryUserRepo()
	tokens := auth.NewTokenService("test-secret", 3600)
	return NewAuthUseCase(repo, tokens), repo
}

func TestRegisterAndLogin(t *testing.T) {
	uc, repo := newTestAuthUseCase()

	registered, err := uc.Register(context.Background(), RegisterInput{
		Email:    "ada@example.com",
		Password: "correct horse",
		Name:     "Ada",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, registered.Token)
	assert.Len(t, repo.users, 1)
	// Password is stored hashed
	stored := repo.users[registered.User.ID]
	assert.NotEqual(t, "correct horse", stored.PasswordHash)

	loggedIn, err := uc.Login(context.Background(), "ada@example.com", "correct horse")
	assert.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)
	assert.NotEmpty(t, loggedIn.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newTestAuthUseCase()

	_, err := uc.Register(context.Background(), RegisterInput{
		Email: "ada@example.com", Password: "correct horse", Name: "Ada",
	})
	assert.NoError(t, err)

	_, err = uc.Register(context.Background(), RegisterInput{
		Email: "ada@example.com", Password: "other pass", Name: "Ada Again",
	})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _ := newTestAuthUseCase()

	_, err := uc.Register(context.Background(), RegisterInput{
		Email: "ada@example.com", Password: "correct horse", Name: "Ada",
	})
	assert.NoError(t, err)

	_, err = uc.Login(context.Background(), "ada@example.com", "wrong")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}

func TestLoginUnknownEmail(t *testing.T) {
	uc, _ := newTestAuthUseCase()

	_, err := uc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, "UNAUTHORIZED"))
}
