package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CFBruna/fullstack-product-manager/internal/apperrors"
	"github.com/CFBruna/fullstack-product-manager/internal/services"
	"github.com/CFBruna/fullstack-product-manager/internal/validation"
)

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	authService *services.AuthService
	validator   *validation.Validator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, validator *validation.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// HandleRegister handles new user registration.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var payload validation.RegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.New("Invalid request body", fiber.StatusBadRequest)
	}

	input, err := h.validator.Register(payload)
	if err != nil {
		return err
	}

	user, err := h.authService.Register(input)
	if err != nil {
		return err
	}

	// The password field is excluded by its json:"-" tag.
	return c.Status(fiber.StatusCreated).JSON(user)
}

// HandleLogin handles user login and issues a JWT token.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var payload validation.LoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return apperrors.New("Invalid request body", fiber.StatusBadRequest)
	}

	input, err := h.validator.Login(payload)
	if err != nil {
		return err
	}

	user, token, err := h.authService.Login(input)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"user":  user,
		"token": token,
	})
}
