package repository

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func TestUserRepository_CreateAndFindRoundTrip(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, "alice")
	require.NoError(t, err)
	require.NotZero(t, created.ID, "create must yield the assigned id")
	assert.Equal(t, "alice", created.Username)

	byID, err := repo.Find(ctx, IDKey(created.ID))
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byName, err := repo.Find(ctx, UsernameKey("alice"))
	require.NoError(t, err)
	assert.Equal(t, created, byName)
}

func TestUserRepository_CreateAssignsDistinctIDs(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.Create(ctx, "alice")
	require.NoError(t, err)
	second, err := repo.Create(ctx, "bob")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	// Each created value carries its own row's identity, not the latest row's.
	found, err := repo.Find(ctx, IDKey(first.ID))
	require.NoError(t, err)
	assert.Equal(t, "alice", found.Username)
}

func TestUserRepository_DuplicateUsernameIsConstraintViolation(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, "alice")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "alice")
	assertErrorCode(t, err, models.CodeConstraintViolation)
}

func TestUserRepository_FindMissingIsNotFound(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Find(ctx, IDKey(12345))
	assertErrorCode(t, err, models.CodeNotFound)

	_, err = repo.Find(ctx, UsernameKey("nobody"))
	assertErrorCode(t, err, models.CodeNotFound)
}
