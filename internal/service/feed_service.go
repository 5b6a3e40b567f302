package service

import (
	"context"

	"inkwell/internal/assemble"
	"inkwell/internal/models"
	"inkwell/internal/repository"
)

// FeedService builds nested post threads out of the flat query layer. It
// issues exactly two reads per operation — parents, then every child for the
// whole parent set — and delegates the nesting to the assembler. The two
// reads share no transaction; read skew between them is accepted, and a
// comment whose post slipped out between reads is dropped by the assembler.
type FeedService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

// PostThread is a post with its author (when the read carries one) and its
// comments in child-read order.
type PostThread struct {
	Post     models.Post                    `json:"post"`
	Author   *models.User                   `json:"author,omitempty"`
	Comments []repository.CommentWithAuthor `json:"comments"`
}

// NewFeedService creates a new FeedService.
func NewFeedService(postRepo repository.PostRepository, commentRepo repository.CommentRepository) *FeedService {
	return &FeedService{postRepo: postRepo, commentRepo: commentRepo}
}

// AssembledPublishedPosts returns every published post, most recent first,
// with author and nested comments.
func (s *FeedService) AssembledPublishedPosts(ctx context.Context) ([]PostThread, error) {
	parents, err := s.postRepo.Published(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(parents))
	for _, p := range parents {
		ids = append(ids, p.Post.ID)
	}

	children, err := s.commentRepo.ForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}

	grouped := assemble.Group(parents, children,
		func(p repository.PostWithAuthor) uint { return p.Post.ID },
		func(c repository.CommentWithAuthor) uint { return c.Comment.PostID },
	)

	threads := make([]PostThread, 0, len(grouped))
	for _, g := range grouped {
		author := g.Parent.Author
		threads = append(threads, PostThread{
			Post:     g.Parent.Post,
			Author:   &author,
			Comments: g.Children,
		})
	}
	return threads, nil
}

// AssembledUserPosts returns one author's posts, id descending, with nested
// comments. Authors are omitted from the parents — the caller knows them —
// but each comment still carries its commenter.
func (s *FeedService) AssembledUserPosts(ctx context.Context, userID uint) ([]PostThread, error) {
	parents, err := s.postRepo.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(parents))
	for _, p := range parents {
		ids = append(ids, p.ID)
	}

	children, err := s.commentRepo.ForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}

	grouped := assemble.Group(parents, children,
		func(p models.Post) uint { return p.ID },
		func(c repository.CommentWithAuthor) uint { return c.Comment.PostID },
	)

	threads := make([]PostThread, 0, len(grouped))
	for _, g := range grouped {
		threads = append(threads, PostThread{
			Post:     g.Parent,
			Comments: g.Children,
		})
	}
	return threads, nil
}
