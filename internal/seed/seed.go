// Package seed provides helpers to create development and demo data. These
// helpers are intended for development and testing only.
package seed

import (
	"context"
	"fmt"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
)

// Options controls how much data Run generates.
type Options struct {
	Users           int
	PostsPerUser    int
	CommentsPerPost int
	PublishRatio    float32
}

// DefaultOptions returns a small, readable data set.
func DefaultOptions() Options {
	return Options{
		Users:           5,
		PostsPerUser:    3,
		CommentsPerPost: 2,
		PublishRatio:    0.7,
	}
}

// Factory builds domain entities through the repositories so every seeded row
// goes through the same atomic create path as production writes.
type Factory struct {
	users    repository.UserRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
}

// NewFactory creates a Factory bound to the given repositories.
func NewFactory(
	users repository.UserRepository,
	posts repository.PostRepository,
	comments repository.CommentRepository,
) *Factory {
	return &Factory{users: users, posts: posts, comments: comments}
}

// CreateUser persists a user with a unique fake username.
func (f *Factory) CreateUser(ctx context.Context) (*models.User, error) {
	username := fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999))
	return f.users.Create(ctx, username)
}

// CreatePost persists an unpublished post for the given author.
func (f *Factory) CreatePost(ctx context.Context, author *models.User) (*models.Post, error) {
	return f.posts.Create(ctx, author.ID, gofakeit.Sentence(5), gofakeit.Paragraph(1, 3, 8, "\n"))
}

// CreateComment persists a comment by the given user on the given post.
func (f *Factory) CreateComment(ctx context.Context, user *models.User, post *models.Post) (*models.Comment, error) {
	return f.comments.Create(ctx, user.ID, post.ID, gofakeit.Sentence(8))
}

// Run populates the store per the options: users, posts per user, comments
// per post (each by a random seeded user), publishing a ratio of the posts.
func (f *Factory) Run(ctx context.Context, opts Options) error {
	users := make([]*models.User, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		user, err := f.CreateUser(ctx)
		if err != nil {
			return fmt.Errorf("seed user: %w", err)
		}
		users = append(users, user)
	}

	for _, author := range users {
		for i := 0; i < opts.PostsPerUser; i++ {
			post, err := f.CreatePost(ctx, author)
			if err != nil {
				return fmt.Errorf("seed post: %w", err)
			}

			if gofakeit.Float32Range(0, 1) < opts.PublishRatio {
				if _, err := f.posts.Publish(ctx, post.ID); err != nil {
					return fmt.Errorf("seed publish: %w", err)
				}
			}

			for j := 0; j < opts.CommentsPerPost; j++ {
				commenter := users[gofakeit.Number(0, len(users)-1)]
				if _, err := f.CreateComment(ctx, commenter, post); err != nil {
					return fmt.Errorf("seed comment: %w", err)
				}
			}
		}
	}

	return nil
}
