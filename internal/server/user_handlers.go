package server

import (
	"strconv"

	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateUser creates a user.
func (s *Server) CreateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(ctx, service.CreateUserInput{Username: req.Username})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// FindUser resolves a user by id or username. A numeric path segment is
// treated as an id, anything else as a username.
func (s *Server) FindUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	raw := c.Params("key")
	var key repository.UserKey
	if id, err := strconv.ParseUint(raw, 10, 32); err == nil && id > 0 {
		key = repository.IDKey(id)
	} else {
		key = repository.UsernameKey(raw)
	}

	user, err := s.userService.FindUser(ctx, key)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// GetUserComments returns a user's comments, each with its post summary.
func (s *Server) GetUserComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.userService.CommentsByUser(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(comments)
}
