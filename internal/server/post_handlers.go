package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost creates an unpublished post.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		AuthorID uint   `json:"author_id"`
		Title    string `json:"title"`
		Body     string `json:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.CreatePost(ctx, service.CreatePostInput{
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Body:     req.Body,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// PublishPost marks a post published and returns it.
func (s *Server) PublishPost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.PublishPost(ctx, postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// GetPublishedPosts returns the assembled feed: published posts with authors
// and nested comments.
func (s *Server) GetPublishedPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	threads, err := s.feedService.AssembledPublishedPosts(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(threads)
}

// GetUserPosts returns one author's posts with nested comments.
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	threads, err := s.feedService.AssembledUserPosts(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(threads)
}
