package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/diefthyntis/Savasana/internal/admin"
	"github.com/diefthyntis/Savasana/internal/auth"
	"github.com/diefthyntis/Savasana/internal/reports"
	"github.com/diefthyntis/Savasana/internal/sessions"
	"github.com/diefthyntis/Savasana/internal/teachers"
	"github.com/diefthyntis/Savasana/internal/users"
)

type Router struct {
	AuthHandler    *auth.Handler
	UserHandler    *users.Handler
	TeacherHandler *teachers.Handler
	SessionHandler *sessions.Handler
	ReportsHandler *reports.Handler
	AdminHandler   *admin.Handler
	AuthMW         fiber.Handler
	LoginRateLimit fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	app.Post("/api/auth/register", r.AuthHandler.Register)
	if r.LoginRateLimit != nil {
		app.Post("/api/auth/login", r.LoginRateLimit, r.AuthHandler.Login)
	} else {
		app.Post("/api/auth/login", r.AuthHandler.Login)
	}

	app.Get("/api/session", r.AuthMW, r.SessionHandler.List)
	app.Get("/api/session/:id", r.AuthMW, r.SessionHandler.GetByID)
	app.Post("/api/session", r.AuthMW, r.SessionHandler.Create)
	app.Put("/api/session/:id", r.AuthMW, r.SessionHandler.Update)
	app.Delete("/api/session/:id", r.AuthMW, r.SessionHandler.Delete)
	app.Post("/api/session/:id/participate/:userId", r.AuthMW, r.SessionHandler.Participate)
	app.Delete("/api/session/:id/participate/:userId", r.AuthMW, r.SessionHandler.NoLongerParticipate)

	app.Get("/api/teacher", r.AuthMW, r.TeacherHandler.List)
	app.Get("/api/teacher/:id", r.AuthMW, r.TeacherHandler.GetByID)
	app.Post("/api/teacher", r.AuthMW, r.TeacherHandler.Create)
	app.Put("/api/teacher/:id", r.AuthMW, r.TeacherHandler.Update)

	app.Get("/api/user/:id", r.AuthMW, r.UserHandler.GetByID)
	app.Delete("/api/user/:id", r.AuthMW, r.UserHandler.Delete)

	if r.ReportsHandler != nil {
		app.Get("/api/session/:id/attendance", r.AuthMW, r.ReportsHandler.Attendance)
	}
	if r.AdminHandler != nil {
		app.Get("/api/admin/overview", r.AuthMW, r.AdminHandler.Overview)
	}
}
