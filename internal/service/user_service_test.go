package service

import (
	"context"
	"strings"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateUser_Validation(t *testing.T) {
	t.Parallel()

	svc := NewUserService(noopUserRepo(), noopCommentRepo())
	ctx := context.Background()

	t.Run("empty username", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateUser(ctx, CreateUserInput{})
		assertValidationError(t, err)
	})

	t.Run("username too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CreateUser(ctx, CreateUserInput{Username: strings.Repeat("x", 65)})
		assertValidationError(t, err)
	})
}

func TestUserService_CreateUser_Success(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	userRepo.createFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 42, Username: username}, nil
	}

	svc := NewUserService(userRepo, noopCommentRepo())
	user, err := svc.CreateUser(context.Background(), CreateUserInput{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, uint(42), user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestUserService_FindUser_PassesKeyThrough(t *testing.T) {
	t.Parallel()

	userRepo := noopUserRepo()
	var gotKey repository.UserKey
	userRepo.findFn = func(_ context.Context, key repository.UserKey) (*models.User, error) {
		gotKey = key
		return &models.User{ID: 7, Username: "alice"}, nil
	}

	svc := NewUserService(userRepo, noopCommentRepo())
	_, err := svc.FindUser(context.Background(), repository.UsernameKey("alice"))
	require.NoError(t, err)
	assert.Equal(t, repository.UsernameKey("alice"), gotKey)
}

func TestUserService_CommentsByUser_EmptyIsNotError(t *testing.T) {
	t.Parallel()

	svc := NewUserService(noopUserRepo(), noopCommentRepo())
	comments, err := svc.CommentsByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, comments)
}
