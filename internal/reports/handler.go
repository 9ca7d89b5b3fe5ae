package reports

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/diefthyntis/Savasana/internal/apperr"
	"github.com/diefthyntis/Savasana/internal/sessions"
	"github.com/diefthyntis/Savasana/internal/teachers"
	"github.com/diefthyntis/Savasana/internal/users"
)

type SessionStore interface {
	GetByID(ctx context.Context, id int64) (*sessions.Session, error)
}

type TeacherStore interface {
	GetByID(ctx context.Context, id int64) (*teachers.Teacher, error)
}

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*users.User, error)
}

type Handler struct {
	Sessions SessionStore
	Teachers TeacherStore
	Users    UserStore
}

func NewHandler(sessionStore SessionStore, teacherStore TeacherStore, userStore UserStore) *Handler {
	return &Handler{Sessions: sessionStore, Teachers: teacherStore, Users: userStore}
}

// Attendance serves the roster sheet PDF for a session.
func (h *Handler) Attendance(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	ctx := c.UserContext()
	sess, err := h.Sessions.GetByID(ctx, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch session")
	}

	teacherName := ""
	if sess.TeacherID != nil {
		t, err := h.Teachers.GetByID(ctx, *sess.TeacherID)
		if err == nil {
			teacherName = fmt.Sprintf("%s %s", t.FirstName, t.LastName)
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch teacher")
		}
	}

	attendees := make([]users.User, 0, len(sess.Users))
	for _, userID := range sess.Users {
		u, err := h.Users.GetByID(ctx, userID)
		if errors.Is(err, apperr.ErrNotFound) {
			// Roster row outlived the account; skip it on the sheet.
			continue
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch participant")
		}
		attendees = append(attendees, *u)
	}

	pdfBytes, err := BuildAttendancePDF(sess, teacherName, attendees)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build pdf")
	}

	filename := fmt.Sprintf("attendance-session-%d.pdf", sess.ID)
	c.Set("Content-Disposition", `attachment; filename="`+strings.ReplaceAll(filename, `"`, "")+`"`)
	c.Type("pdf")
	return c.Send(pdfBytes)
}
