package repository

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commentFixture struct {
	users    UserRepository
	posts    PostRepository
	comments CommentRepository
	alice    *models.User
	bob      *models.User
	post     *models.Post
}

func newCommentFixture(t *testing.T) *commentFixture {
	t.Helper()
	db := newTestDB(t)
	f := &commentFixture{
		users:    NewUserRepository(db),
		posts:    NewPostRepository(db),
		comments: NewCommentRepository(db),
	}
	ctx := context.Background()

	var err error
	f.alice, err = f.users.Create(ctx, "alice")
	require.NoError(t, err)
	f.bob, err = f.users.Create(ctx, "bob")
	require.NoError(t, err)
	f.post, err = f.posts.Create(ctx, f.alice.ID, "Hello", "World")
	require.NoError(t, err)
	return f
}

func TestCommentRepository_CreateYieldsIdentity(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)
	ctx := context.Background()

	comment, err := f.comments.Create(ctx, f.bob.ID, f.post.ID, "Nice")
	require.NoError(t, err)
	require.NotZero(t, comment.ID)
	assert.Equal(t, f.bob.ID, comment.UserID)
	assert.Equal(t, f.post.ID, comment.PostID)
}

func TestCommentRepository_DanglingForeignKeysAreConstraintViolations(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)
	ctx := context.Background()

	_, err := f.comments.Create(ctx, 9999, f.post.ID, "ghost user")
	assertErrorCode(t, err, models.CodeConstraintViolation)

	_, err = f.comments.Create(ctx, f.bob.ID, 9999, "ghost post")
	assertErrorCode(t, err, models.CodeConstraintViolation)
}

func TestCommentRepository_ForPostPairsCommenters(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)
	ctx := context.Background()

	c1, err := f.comments.Create(ctx, f.bob.ID, f.post.ID, "first")
	require.NoError(t, err)
	c2, err := f.comments.Create(ctx, f.alice.ID, f.post.ID, "second")
	require.NoError(t, err)

	got, err := f.comments.ForPost(ctx, f.post.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byID := map[uint]CommentWithAuthor{}
	for _, pair := range got {
		byID[pair.Comment.ID] = pair
	}
	assert.Equal(t, "bob", byID[c1.ID].Author.Username)
	assert.Equal(t, "alice", byID[c2.ID].Author.Username)
}

func TestCommentRepository_ForPostsBatchesAcrossParents(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)
	ctx := context.Background()

	other, err := f.posts.Create(ctx, f.bob.ID, "Other", "")
	require.NoError(t, err)
	third, err := f.posts.Create(ctx, f.bob.ID, "Third", "")
	require.NoError(t, err)

	_, err = f.comments.Create(ctx, f.bob.ID, f.post.ID, "on first")
	require.NoError(t, err)
	_, err = f.comments.Create(ctx, f.alice.ID, other.ID, "on other")
	require.NoError(t, err)
	_, err = f.comments.Create(ctx, f.alice.ID, third.ID, "outside the set")
	require.NoError(t, err)

	got, err := f.comments.ForPosts(ctx, []uint{f.post.ID, other.ID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, pair := range got {
		assert.Contains(t, []uint{f.post.ID, other.ID}, pair.Comment.PostID)
	}
}

func TestCommentRepository_ForPostsEmptyParentSet(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)

	got, err := f.comments.ForPosts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCommentRepository_ByUserCarriesPostSummary(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)
	ctx := context.Background()

	_, err := f.posts.Publish(ctx, f.post.ID)
	require.NoError(t, err)
	_, err = f.comments.Create(ctx, f.bob.ID, f.post.ID, "Nice")
	require.NoError(t, err)

	got, err := f.comments.ByUser(ctx, f.bob.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "Nice", got[0].Comment.Body)
	assert.Equal(t, models.PostSummary{
		ID:        f.post.ID,
		Title:     "Hello",
		Published: true,
	}, got[0].Post, "summary carries id, title and published only")
}

func TestCommentRepository_ByUserWithoutCommentsIsEmptyNotError(t *testing.T) {
	t.Parallel()

	f := newCommentFixture(t)

	got, err := f.comments.ByUser(context.Background(), f.alice.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
