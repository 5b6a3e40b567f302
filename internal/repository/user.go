// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// UserKey selects the lookup key for Find: by username or by numeric id.
type UserKey interface {
	isUserKey()
}

// UsernameKey looks a user up by unique username.
type UsernameKey string

func (UsernameKey) isUserKey() {}

// IDKey looks a user up by primary key.
type IDKey uint

func (IDKey) isUserKey() {}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, username string) (*models.User, error)
	Find(ctx context.Context, key UserKey) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a user and returns it with the store-assigned id. The id is
// captured from the insert itself inside the transaction; reselecting "the
// most recent row" would race with concurrent writers.
func (r *userRepository) Create(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{Username: username}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
	if err != nil {
		return nil, translateStoreError(err)
	}
	return user, nil
}

// Find resolves a user from either variant of UserKey. Every call queries the
// store; this is a lookup, not a cache.
func (r *userRepository) Find(ctx context.Context, key UserKey) (*models.User, error) {
	var user models.User
	var err error

	switch k := key.(type) {
	case UsernameKey:
		err = r.db.WithContext(ctx).Where("username = ?", string(k)).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", string(k))
		}
	case IDKey:
		err = r.db.WithContext(ctx).First(&user, uint(k)).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("User", uint(k))
		}
	default:
		return nil, models.NewValidationError("Unsupported user lookup key")
	}

	if err != nil {
		return nil, translateStoreError(err)
	}
	return &user, nil
}
