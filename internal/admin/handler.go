package admin

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/diefthyntis/Savasana/internal/apperr"
	"github.com/diefthyntis/Savasana/internal/auth"
	"github.com/diefthyntis/Savasana/internal/users"
)

// Store provides the studio-wide stats; *Repository implements it.
type Store interface {
	Totals(ctx context.Context) (Totals, error)
	LatestUsers(ctx context.Context, limit int) ([]LatestUser, error)
}

// UserStore resolves the authenticated principal so the admin flag can be
// checked.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*users.User, error)
}

type Handler struct {
	Stats Store
	Users UserStore
}

func NewHandler(stats Store, userStore UserStore) *Handler {
	return &Handler{Stats: stats, Users: userStore}
}

type Totals struct {
	Users    int64
	Teachers int64
	Sessions int64
}

type LatestUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type OverviewResponse struct {
	UsersTotal    int64        `json:"users_total"`
	TeachersTotal int64        `json:"teachers_total"`
	SessionsTotal int64        `json:"sessions_total"`
	LatestUsers   []LatestUser `json:"latest_users"`
}

// Overview returns studio-wide counts and the latest signups. Admins only.
func (h *Handler) Overview(c *fiber.Ctx) error {
	ctx := c.UserContext()

	principal, err := h.Users.GetByEmail(ctx, auth.Principal(c))
	if errors.Is(err, apperr.ErrNotFound) {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to resolve principal")
	}
	if !principal.Admin {
		return fiber.NewError(fiber.StatusForbidden, "admin only")
	}

	totals, err := h.Stats.Totals(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed totals: "+err.Error())
	}
	latest, err := h.Stats.LatestUsers(ctx, 20)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed latest_users: "+err.Error())
	}

	return c.JSON(OverviewResponse{
		UsersTotal:    totals.Users,
		TeachersTotal: totals.Teachers,
		SessionsTotal: totals.Sessions,
		LatestUsers:   latest,
	})
}
