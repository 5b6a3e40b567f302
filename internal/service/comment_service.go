package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// CommentService orchestrates comment creation and flat comment reads.
type CommentService struct {
	commentRepo repository.CommentRepository
}

// CreateCommentInput carries the fields for a new comment.
type CreateCommentInput struct {
	UserID uint
	PostID uint
	Body   string
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// CreateComment validates input and creates the comment atomically. Dangling
// user or post ids surface as constraint violations from the store; no
// separate existence pre-check is issued.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Body == "" {
		return nil, models.NewValidationError("Body is required")
	}
	const maxCommentLen = 10000
	if len(in.Body) > maxCommentLen {
		return nil, models.NewValidationError("Comment too long (max 10000 characters)")
	}
	return s.commentRepo.Create(ctx, in.UserID, in.PostID, in.Body)
}

// CommentsForPost returns all comments on a post with their commenters, in
// store-native order.
func (s *CommentService) CommentsForPost(ctx context.Context, postID uint) ([]repository.CommentWithAuthor, error) {
	return s.commentRepo.ForPost(ctx, postID)
}
