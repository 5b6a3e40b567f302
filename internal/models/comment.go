// Package models contains data structures for the application's domain models.
package models

// Comment represents a comment left by a user on a post.
type Comment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`
	PostID uint   `gorm:"not null;index" json:"post_id"`
	Body   string `gorm:"type:text" json:"body"`

	// Declared for the migration-time foreign key constraints only.
	Author *User `gorm:"foreignKey:UserID" json:"-"`
	Post   *Post `gorm:"foreignKey:PostID" json:"-"`
}
