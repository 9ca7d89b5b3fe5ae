package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/diefthyntis/Savasana/internal/apperr"
)

type Handler struct {
	Auth *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Auth: svc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var body loginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	result, err := h.Auth.Login(c.UserContext(), body.Email, body.Password)
	if errors.Is(err, apperr.ErrInvalidCredentials) {
		return c.Status(fiber.StatusUnauthorized).JSON(messageResponse{Message: "Bad credentials"})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "login failed")
	}

	return c.JSON(result)
}

func (h *Handler) Register(c *fiber.Ctx) error {
	var body registerRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.Email == "" || body.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password required")
	}

	err := h.Auth.Register(c.UserContext(), body.Email, body.Password, body.FirstName, body.LastName)
	if errors.Is(err, apperr.ErrDuplicateEmail) {
		return c.Status(fiber.StatusBadRequest).JSON(messageResponse{Message: "Error: Email is already taken!"})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "registration failed")
	}

	return c.JSON(messageResponse{Message: "User registered successfully!"})
}
