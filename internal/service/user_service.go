// Package service contains application use cases built on the repositories.
package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// UserService orchestrates user creation and lookup.
type UserService struct {
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
}

// CreateUserInput carries the fields for a new user.
type CreateUserInput struct {
	Username string
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, commentRepo repository.CommentRepository) *UserService {
	return &UserService{userRepo: userRepo, commentRepo: commentRepo}
}

// CreateUser validates the username and creates the user atomically.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, models.NewValidationError("Username is required")
	}
	const maxUsernameLen = 64
	if len(username) > maxUsernameLen {
		return nil, models.NewValidationError("Username too long (max 64 characters)")
	}
	return s.userRepo.Create(ctx, username)
}

// FindUser resolves a user by username or id.
func (s *UserService) FindUser(ctx context.Context, key repository.UserKey) (*models.User, error) {
	return s.userRepo.Find(ctx, key)
}

// CommentsByUser returns the user's comments, each with its post summary.
func (s *UserService) CommentsByUser(ctx context.Context, userID uint) ([]repository.CommentWithPost, error) {
	return s.commentRepo.ByUser(ctx, userID)
}
