// Package repository implements the data access layer for the application.
package repository

import (
	"context"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// CommentWithAuthor pairs a comment with its commenter.
type CommentWithAuthor struct {
	Comment models.Comment `json:"comment"`
	Author  models.User    `json:"author"`
}

// CommentWithPost pairs a comment with a summary projection of its parent post.
type CommentWithPost struct {
	Comment models.Comment     `json:"comment"`
	Post    models.PostSummary `json:"post"`
}

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, userID, postID uint, body string) (*models.Comment, error)
	ForPost(ctx context.Context, postID uint) ([]CommentWithAuthor, error)
	ForPosts(ctx context.Context, postIDs []uint) ([]CommentWithAuthor, error)
	ByUser(ctx context.Context, userID uint) ([]CommentWithPost, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository returns a new CommentRepository implementation.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts a comment and returns it with the store-assigned id. Both
// foreign keys are enforced by the store inside the insert transaction.
func (r *commentRepository) Create(ctx context.Context, userID, postID uint, body string) (*models.Comment, error) {
	comment := &models.Comment{UserID: userID, PostID: postID, Body: body}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(comment).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return comment, nil
}

// commentAuthorRow is the flat shape produced by the comment/commenter join.
type commentAuthorRow struct {
	ID             uint
	UserID         uint
	PostID         uint
	Body           string
	AuthorID       uint
	AuthorUsername string
}

func (row commentAuthorRow) pair() CommentWithAuthor {
	return CommentWithAuthor{
		Comment: models.Comment{
			ID:     row.ID,
			UserID: row.UserID,
			PostID: row.PostID,
			Body:   row.Body,
		},
		Author: models.User{ID: row.AuthorID, Username: row.AuthorUsername},
	}
}

// ForPost returns all comments on one post, each paired with its commenter.
// No ORDER BY is imposed; the store's scan order is preserved as-is.
func (r *commentRepository) ForPost(ctx context.Context, postID uint) ([]CommentWithAuthor, error) {
	return r.forPostSet(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("comments.post_id = ?", postID)
	})
}

// ForPosts returns the comments for a whole parent set in one query, joined
// with their commenters. This is the batch read the assembler depends on; it
// must never be replaced by a per-parent loop.
func (r *commentRepository) ForPosts(ctx context.Context, postIDs []uint) ([]CommentWithAuthor, error) {
	if len(postIDs) == 0 {
		return []CommentWithAuthor{}, nil
	}
	return r.forPostSet(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("comments.post_id IN ?", postIDs)
	})
}

func (r *commentRepository) forPostSet(ctx context.Context, filter func(*gorm.DB) *gorm.DB) ([]CommentWithAuthor, error) {
	var rows []commentAuthorRow
	q := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.user_id, comments.post_id, comments.body, users.id AS author_id, users.username AS author_username").
		Joins("INNER JOIN users ON users.id = comments.user_id")
	if err := filter(q).Scan(&rows).Error; err != nil {
		return nil, translateStoreError(err)
	}

	out := make([]CommentWithAuthor, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.pair())
	}
	return out, nil
}

// commentPostRow is the flat shape produced by the comment/post join. The
// summary id equals the comment's post_id, so only title and published need
// extra columns.
type commentPostRow struct {
	ID            uint
	UserID        uint
	PostID        uint
	Body          string
	PostTitle     string
	PostPublished bool
}

// ByUser returns all comments by one user, each paired with a summary
// projection of its parent post. A user with no comments yields an empty
// slice, not an error. Scan order is preserved as-is.
func (r *commentRepository) ByUser(ctx context.Context, userID uint) ([]CommentWithPost, error) {
	var rows []commentPostRow
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.user_id, comments.post_id, comments.body, posts.title AS post_title, posts.published AS post_published").
		Joins("INNER JOIN posts ON posts.id = comments.post_id").
		Where("comments.user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, translateStoreError(err)
	}

	out := make([]CommentWithPost, 0, len(rows))
	for _, row := range rows {
		out = append(out, CommentWithPost{
			Comment: models.Comment{
				ID:     row.ID,
				UserID: row.UserID,
				PostID: row.PostID,
				Body:   row.Body,
			},
			Post: models.PostSummary{
				ID:        row.PostID,
				Title:     row.PostTitle,
				Published: row.PostPublished,
			},
		})
	}
	return out, nil
}
