// Package models contains data structures for the application's domain models.
package models

// Post represents a blog post authored by a user. Published starts false and
// only ever flips to true.
type Post struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	Title     string `json:"title"`
	Body      string `gorm:"type:text" json:"body"`
	Published bool   `gorm:"not null;default:false" json:"published"`

	// Author is declared only so migration emits the foreign key constraint.
	// Reads resolve authors through joins, never by loading this field.
	Author *User `gorm:"foreignKey:UserID" json:"-"`
}

// PostSummary is a read-only projection of Post used when a post is embedded
// in a comment-centric result. It is never persisted and deliberately omits
// body and user_id.
type PostSummary struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Published bool   `json:"published"`
}
