package teachers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/diefthyntis/Savasana/internal/apperr"
)

// Store is what the handler needs from persistence; *Repository implements it.
type Store interface {
	GetByID(ctx context.Context, id int64) (*Teacher, error)
	FindAll(ctx context.Context) ([]Teacher, error)
	Insert(ctx context.Context, t *Teacher) error
	Update(ctx context.Context, t *Teacher) error
}

type Handler struct {
	Teachers Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Teachers: store}
}

type teacherRequest struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
}

func (h *Handler) List(c *fiber.Ctx) error {
	teachers, err := h.Teachers.FindAll(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch teachers")
	}
	return c.JSON(teachers)
}

func (h *Handler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	t, err := h.Teachers.GetByID(c.UserContext(), id)
	if errors.Is(err, apperr.ErrNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch teacher")
	}
	return c.JSON(t)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var body teacherRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.LastName == "" || body.FirstName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "lastName and firstName required")
	}

	t := &Teacher{LastName: body.LastName, FirstName: body.FirstName}
	if err := h.Teachers.Insert(c.UserContext(), t); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create teacher")
	}
	return c.JSON(t)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	var body teacherRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	t := &Teacher{ID: id, LastName: body.LastName, FirstName: body.FirstName}
	err = h.Teachers.Update(c.UserContext(), t)
	if errors.Is(err, apperr.ErrNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update teacher")
	}

	updated, err := h.Teachers.GetByID(c.UserContext(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch teacher")
	}
	return c.JSON(updated)
}
