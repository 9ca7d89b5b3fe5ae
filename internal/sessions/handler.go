package sessions

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/diefthyntis/Savasana/internal/apperr"
)

type Handler struct {
	Sessions *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Sessions: svc}
}

type sessionRequest struct {
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	TeacherID   *int64    `json:"teacher_id"`
	Description string    `json:"description"`
}

func (h *Handler) List(c *fiber.Ctx) error {
	list, err := h.Sessions.FindAll(c.UserContext())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch sessions")
	}
	return c.JSON(list)
}

func (h *Handler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	sess, err := h.Sessions.GetByID(c.UserContext(), id)
	if errors.Is(err, apperr.ErrNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch session")
	}
	return c.JSON(sess)
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var body sessionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}
	if body.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name required")
	}

	sess := &Session{
		Name:        body.Name,
		Date:        body.Date,
		TeacherID:   body.TeacherID,
		Description: body.Description,
	}
	if err := h.Sessions.Create(c.UserContext(), sess); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(sess)
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	var body sessionRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid body")
	}

	sess := &Session{
		Name:        body.Name,
		Date:        body.Date,
		TeacherID:   body.TeacherID,
		Description: body.Description,
	}
	err = h.Sessions.Update(c.UserContext(), id, sess)
	if errors.Is(err, apperr.ErrNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update session")
	}

	updated, err := h.Sessions.GetByID(c.UserContext(), id)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch session")
	}
	return c.JSON(updated)
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	err = h.Sessions.Delete(c.UserContext(), id)
	if errors.Is(err, apperr.ErrNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete session")
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handler) Participate(c *fiber.Ctx) error {
	sessionID, userID, ok := rosterIDs(c)
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	err := h.Sessions.Participate(c.UserContext(), sessionID, userID)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	case errors.Is(err, apperr.ErrAlreadyParticipating):
		return c.SendStatus(fiber.StatusBadRequest)
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to join session")
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handler) NoLongerParticipate(c *fiber.Ctx) error {
	sessionID, userID, ok := rosterIDs(c)
	if !ok {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	err := h.Sessions.NoLongerParticipate(c.UserContext(), sessionID, userID)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	case errors.Is(err, apperr.ErrNotParticipating):
		return c.SendStatus(fiber.StatusBadRequest)
	case err != nil:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to leave session")
	}
	return c.SendStatus(fiber.StatusOK)
}

func rosterIDs(c *fiber.Ctx) (sessionID, userID int64, ok bool) {
	sessionID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	userID, err = strconv.ParseInt(c.Params("userId"), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return sessionID, userID, true
}
