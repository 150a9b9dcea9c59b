package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"devconnector/dto"
	"devconnector/internal/middleware"
	"devconnector/internal/services"
	"devconnector/internal/validation"
)

var registerRules = []validation.Rule{
	validation.Required("name", "Name is required"),
	validation.Email("email", "Please include a valid email"),
	validation.MinLength("password", 6, "Please enter a password with 6 or more characters"),
}

var loginRules = []validation.Rule{
	validation.Email("email", "Please include a valid email"),
	validation.Required("password", "Password is required"),
}

type AuthHandler struct {
	Service *services.AuthService
}

// Register godoc
// @Summary Register a user and return a token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Registration body"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/users [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "invalid body"})
	}
	values := map[string]string{"name": body.Name, "email": body.Email, "password": body.Password}
	if errs := validation.Apply(values, registerRules...); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := requestContext()
	defer cancel()

	token, err := h.Service.Register(ctx, body.Name, body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": []validation.FieldError{{Msg: "User already exists", Param: "email"}},
			})
		}
		return serverError(c, err)
	}
	return c.JSON(dto.TokenResponse{Token: token})
}

// Login godoc
// @Summary Authenticate a user and return a token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Login body"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/auth [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Msg: "invalid body"})
	}
	values := map[string]string{"email": body.Email, "password": body.Password}
	if errs := validation.Apply(values, loginRules...); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	ctx, cancel := requestContext()
	defer cancel()

	token, err := h.Service.Login(ctx, body.Email, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": []validation.FieldError{{Msg: "Invalid Credentials", Param: "email"}},
			})
		}
		return serverError(c, err)
	}
	return c.JSON(dto.TokenResponse{Token: token})
}

// CurrentUser godoc
// @Summary Return the authenticated user, without the password hash
// @Tags auth
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /api/auth [get]
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	uid, _ := middleware.UIDFromLocals(c)

	ctx, cancel := requestContext()
	defer cancel()

	user, err := h.Service.CurrentUser(ctx, uid)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Msg: "User not Found"})
		}
		return serverError(c, err)
	}
	return c.JSON(user)
}
