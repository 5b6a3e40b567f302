// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// PostWithAuthor pairs a post with its author, as returned by joined reads.
type PostWithAuthor struct {
	Post   models.Post `json:"post"`
	Author models.User `json:"author"`
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, authorID uint, title, body string) (*models.Post, error)
	Publish(ctx context.Context, postID uint) (*models.Post, error)
	Published(ctx context.Context) ([]PostWithAuthor, error)
	ByUser(ctx context.Context, userID uint) ([]models.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository returns a new PostRepository implementation.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a post and returns it with the store-assigned id, captured
// within the insert transaction. The author foreign key is enforced by the
// store; a dangling authorID surfaces as a constraint violation.
func (r *postRepository) Create(ctx context.Context, authorID uint, title, body string) (*models.Post, error) {
	post := &models.Post{UserID: authorID, Title: title, Body: body}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(post).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return post, nil
}

// Publish flips published to true and returns the updated post. The update
// and the re-read by primary key share one transaction; the re-read is what
// decides NotFound, so re-publishing an already published post succeeds.
func (r *postRepository) Publish(ctx context.Context, postID uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Update("published", true).Error; err != nil {
			return err
		}
		return tx.First(&post, postID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", postID)
		}
		return nil, translateStoreError(err)
	}
	return &post, nil
}

// postAuthorRow is the flat shape produced by the post/author join.
type postAuthorRow struct {
	ID             uint
	UserID         uint
	Title          string
	Body           string
	Published      bool
	AuthorID       uint
	AuthorUsername string
}

func (row postAuthorRow) pair() PostWithAuthor {
	return PostWithAuthor{
		Post: models.Post{
			ID:        row.ID,
			UserID:    row.UserID,
			Title:     row.Title,
			Body:      row.Body,
			Published: row.Published,
		},
		Author: models.User{ID: row.AuthorID, Username: row.AuthorUsername},
	}
}

// Published returns every published post paired with its author, most recent
// post id first. One joined query; rows stay flat for the assembler.
func (r *postRepository) Published(ctx context.Context) ([]PostWithAuthor, error) {
	var rows []postAuthorRow
	err := r.db.WithContext(ctx).
		Table("posts").
		Select("posts.id, posts.user_id, posts.title, posts.body, posts.published, users.id AS author_id, users.username AS author_username").
		Joins("INNER JOIN users ON users.id = posts.user_id").
		Where("posts.published = ?", true).
		Order("posts.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, translateStoreError(err)
	}

	out := make([]PostWithAuthor, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.pair())
	}
	return out, nil
}

// ByUser returns all posts by one author, id descending. The author is
// omitted; the caller already resolved it.
func (r *postRepository) ByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	posts := []models.Post{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, translateStoreError(err)
	}
	return posts, nil
}
