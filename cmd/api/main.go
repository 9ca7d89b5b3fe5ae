package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/diefthyntis/Savasana/internal/admin"
	"github.com/diefthyntis/Savasana/internal/auth"
	"github.com/diefthyntis/Savasana/internal/config"
	"github.com/diefthyntis/Savasana/internal/reports"
	"github.com/diefthyntis/Savasana/internal/router"
	"github.com/diefthyntis/Savasana/internal/sessions"
	"github.com/diefthyntis/Savasana/internal/teachers"
	"github.com/diefthyntis/Savasana/internal/users"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("error creating pgx pool: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "internal server error"

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
				message = fiberErr.Message
			}

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Use(router.CorsMiddleware(cfg.CORSOrigin))
	app.Use(requestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	userRepo := users.NewRepository(pool)
	teacherRepo := teachers.NewRepository(pool)
	sessionRepo := sessions.NewRepository(pool)

	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	authService := auth.NewService(userRepo, tokenService, bcrypt.DefaultCost)
	userService := users.NewService(userRepo, cfg.EnforceOwnerDelete)
	sessionService := sessions.NewService(sessionRepo, userRepo)

	r := &router.Router{
		AuthHandler:    auth.NewHandler(authService),
		UserHandler:    users.NewHandler(userService),
		TeacherHandler: teachers.NewHandler(teacherRepo),
		SessionHandler: sessions.NewHandler(sessionService),
		ReportsHandler: reports.NewHandler(sessionRepo, teacherRepo, userRepo),
		AdminHandler:   admin.NewHandler(admin.NewRepository(pool), userRepo),
		AuthMW:         auth.Middleware(tokenService),
		LoginRateLimit: limiter.New(limiter.Config{
			Max:        cfg.LoginRateMax,
			Expiration: cfg.LoginRateWindow,
		}),
	}
	r.RegisterRoutes(app)

	log.Println("Listening on port", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid := uuid.NewString()
		c.Set("X-Request-Id", rid)
		err := c.Next()
		status := c.Response().StatusCode()
		log.Printf("%s %s %s %d %s", rid, c.Method(), c.Path(), status, time.Since(start))
		return err
	}
}
