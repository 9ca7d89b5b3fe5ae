package users

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/diefthyntis/Savasana/internal/apperr"
)

type Handler struct {
	Users *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Users: svc}
}

func (h *Handler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	u, err := h.Users.FindByID(c.UserContext(), id)
	if errors.Is(err, apperr.ErrNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch user")
	}

	return c.JSON(u)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	err = h.Users.Delete(c.UserContext(), id, principalEmail(c))
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	case errors.Is(err, apperr.ErrForbidden):
		return c.SendStatus(fiber.StatusUnauthorized)
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete user")
	}

	return c.SendStatus(fiber.StatusOK)
}

// principalEmail reads the subject the auth middleware stored in the locals.
func principalEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("principal_email").(string)
	return email
}
