// Package models contains data structures for the application's domain models.
package models

// User represents an author or commenter.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
}
