package service

import (
	"context"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidationError, appErr.Code)
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn func(context.Context, string) (*models.User, error)
	findFn   func(context.Context, repository.UserKey) (*models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, username string) (*models.User, error) {
	return s.createFn(ctx, username)
}
func (s *userRepoStub) Find(ctx context.Context, key repository.UserKey) (*models.User, error) {
	return s.findFn(ctx, key)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, username string) (*models.User, error) {
			return &models.User{ID: 1, Username: username}, nil
		},
		findFn: func(_ context.Context, _ repository.UserKey) (*models.User, error) {
			return &models.User{ID: 1}, nil
		},
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn    func(context.Context, uint, string, string) (*models.Post, error)
	publishFn   func(context.Context, uint) (*models.Post, error)
	publishedFn func(context.Context) ([]repository.PostWithAuthor, error)
	byUserFn    func(context.Context, uint) ([]models.Post, error)
}

func (s *postRepoStub) Create(ctx context.Context, authorID uint, title, body string) (*models.Post, error) {
	return s.createFn(ctx, authorID, title, body)
}
func (s *postRepoStub) Publish(ctx context.Context, postID uint) (*models.Post, error) {
	return s.publishFn(ctx, postID)
}
func (s *postRepoStub) Published(ctx context.Context) ([]repository.PostWithAuthor, error) {
	return s.publishedFn(ctx)
}
func (s *postRepoStub) ByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	return s.byUserFn(ctx, userID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, authorID uint, title, body string) (*models.Post, error) {
			return &models.Post{ID: 1, UserID: authorID, Title: title, Body: body}, nil
		},
		publishFn: func(_ context.Context, postID uint) (*models.Post, error) {
			return &models.Post{ID: postID, Published: true}, nil
		},
		publishedFn: func(_ context.Context) ([]repository.PostWithAuthor, error) {
			return []repository.PostWithAuthor{}, nil
		},
		byUserFn: func(_ context.Context, _ uint) ([]models.Post, error) {
			return []models.Post{}, nil
		},
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn   func(context.Context, uint, uint, string) (*models.Comment, error)
	forPostFn  func(context.Context, uint) ([]repository.CommentWithAuthor, error)
	forPostsFn func(context.Context, []uint) ([]repository.CommentWithAuthor, error)
	byUserFn   func(context.Context, uint) ([]repository.CommentWithPost, error)
}

func (s *commentRepoStub) Create(ctx context.Context, userID, postID uint, body string) (*models.Comment, error) {
	return s.createFn(ctx, userID, postID, body)
}
func (s *commentRepoStub) ForPost(ctx context.Context, postID uint) ([]repository.CommentWithAuthor, error) {
	return s.forPostFn(ctx, postID)
}
func (s *commentRepoStub) ForPosts(ctx context.Context, postIDs []uint) ([]repository.CommentWithAuthor, error) {
	return s.forPostsFn(ctx, postIDs)
}
func (s *commentRepoStub) ByUser(ctx context.Context, userID uint) ([]repository.CommentWithPost, error) {
	return s.byUserFn(ctx, userID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, userID, postID uint, body string) (*models.Comment, error) {
			return &models.Comment{ID: 1, UserID: userID, PostID: postID, Body: body}, nil
		},
		forPostFn: func(_ context.Context, _ uint) ([]repository.CommentWithAuthor, error) {
			return []repository.CommentWithAuthor{}, nil
		},
		forPostsFn: func(_ context.Context, _ []uint) ([]repository.CommentWithAuthor, error) {
			return []repository.CommentWithAuthor{}, nil
		},
		byUserFn: func(_ context.Context, _ uint) ([]repository.CommentWithPost, error) {
			return []repository.CommentWithPost{}, nil
		},
	}
}
