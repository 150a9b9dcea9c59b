package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"devconnector/dto"
	"devconnector/internal/middleware"
	"devconnector/internal/services"
	"devconnector/internal/validation"
)

var textRules = []validation.Rule{
	validation.Required("text", "Text is required"),
}

type PostHandler struct {
	Service *services.PostService
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param body body dto.CreatePostRequest true "Post body"
// @Success 200 {object} model.Post
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	uid, _ := middleware.UIDFromLocals(c)

	var body dto.CreatePostRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "invalid body"})
	}
	if errs := validation.Apply(map[string]string{"text": body.Text}, textRules...); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := requestContext()
	defer cancel()

	post, err := h.Service.Create(ctx, uid, body.Text)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "User not Found"})
		}
		return serverError(c, err)
	}
	return c.JSON(post)
}

// List godoc
// @Summary List all posts, newest first
// @Tags posts
// @Produce json
// @Success 200 {array} model.Post
// @Failure 401 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	ctx, cancel := requestContext()
	defer cancel()

	posts, err := h.Service.List(ctx)
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(posts)
}

// Get godoc
// @Summary Get a post by id
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/posts/{id} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	ctx, cancel := requestContext()
	defer cancel()

	post, err := h.Service.Get(ctx, c.Params("id"))
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not Found"})
		}
		return serverError(c, err)
	}
	return c.JSON(post)
}

// Delete godoc
// @Summary Delete a post owned by the caller
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	uid, _ := middleware.UIDFromLocals(c)

	ctx, cancel := requestContext()
	defer cancel()

	err := h.Service.Delete(ctx, c.Params("id"), uid)
	switch {
	case err == nil:
		return c.JSON(dto.MessageResponse{Msg: "Post removed"})
	case errors.Is(err, services.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not Found"})
	case errors.Is(err, services.ErrNotPostOwner):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Msg: "User not authorized"})
	default:
		return serverError(c, err)
	}
}

// Like godoc
// @Summary Like a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {array} model.Like
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/posts/like/{id} [put]
func (h *PostHandler) Like(c *fiber.Ctx) error {
	uid, _ := middleware.UIDFromLocals(c)

	ctx, cancel := requestContext()
	defer cancel()

	likes, err := h.Service.Like(ctx, c.Params("id"), uid)
	switch {
	case err == nil:
		return c.JSON(likes)
	case errors.Is(err, services.ErrAlreadyLiked):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Post already liked"})
	case errors.Is(err, services.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not Found"})
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "User not Found"})
	default:
		return serverError(c, err)
	}
}

// Unlike godoc
// @Summary Remove the caller's like from a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {array} model.Like
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/posts/unlike/{id} [put]
func (h *PostHandler) Unlike(c *fiber.Ctx) error {
	uid, _ := middleware.UIDFromLocals(c)

	ctx, cancel := requestContext()
	defer cancel()

	likes, err := h.Service.Unlike(ctx, c.Params("id"), uid)
	switch {
	case err == nil:
		return c.JSON(likes)
	case errors.Is(err, services.ErrNotLiked):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "Post has not yet been liked"})
	case errors.Is(err, services.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not Found"})
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "User not Found"})
	default:
		return serverError(c, err)
	}
}

// AddComment godoc
// @Summary Comment on a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param body body dto.CreateCommentRequest true "Comment body"
// @Success 200 {array} model.Comment
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/posts/comment/{id} [post]
func (h *PostHandler) AddComment(c *fiber.Ctx) error {
	uid, _ := middleware.UIDFromLocals(c)

	var body dto.CreateCommentRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "invalid body"})
	}
	if errs := validation.Apply(map[string]string{"text": body.Text}, textRules...); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := requestContext()
	defer cancel()

	comments, err := h.Service.AddComment(ctx, c.Params("id"), uid, body.Text)
	switch {
	case err == nil:
		return c.JSON(comments)
	case errors.Is(err, services.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not Found"})
	case errors.Is(err, services.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "User not Found"})
	default:
		return serverError(c, err)
	}
}

// DeleteComment godoc
// @Summary Delete the caller's comment from a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Param comment_id path string true "Comment ID"
// @Success 200 {array} model.Comment
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/posts/comment/{id}/{comment_id} [delete]
func (h *PostHandler) DeleteComment(c *fiber.Ctx) error {
	uid, _ := middleware.UIDFromLocals(c)

	ctx, cancel := requestContext()
	defer cancel()

	comments, err := h.Service.DeleteComment(ctx, c.Params("id"), c.Params("comment_id"), uid)
	switch {
	case err == nil:
		return c.JSON(comments)
	case errors.Is(err, services.ErrPostNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Post not Found"})
	case errors.Is(err, services.ErrCommentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "Comment does not exist"})
	case errors.Is(err, services.ErrNotCommentOwner):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "User not authorized"})
	default:
		return serverError(c, err)
	}
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

// serverError hides the failure detail from the client and keeps it in the
// server log.
func serverError(c *fiber.Ctx, err error) error {
	log.Println("server error:", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Msg: "Server Error"})
}
