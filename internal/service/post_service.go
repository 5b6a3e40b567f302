package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// PostService orchestrates post creation and publishing.
type PostService struct {
	postRepo repository.PostRepository
}

// CreatePostInput carries the fields for a new post.
type CreatePostInput struct {
	AuthorID uint
	Title    string
	Body     string
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost validates input and creates an unpublished post atomically.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.AuthorID == 0 {
		return nil, models.NewValidationError("Author is required")
	}
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	const maxTitleLen = 200
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 200 characters)")
	}
	return s.postRepo.Create(ctx, in.AuthorID, in.Title, in.Body)
}

// PublishPost marks a post published. Publishing an already published post is
// a no-op success.
func (s *PostService) PublishPost(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.Publish(ctx, postID)
}
